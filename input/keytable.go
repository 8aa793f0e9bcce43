package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, escape)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings, matched case-insensitively by the adapter
	Runes map[rune]Action
}

// DefaultKeyTable returns arrows plus WASD movement, E for use
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:    ActionJump,
			tcell.KeyDown:  ActionMoveDown,
			tcell.KeyLeft:  ActionMoveLeft,
			tcell.KeyRight: ActionMoveRight,
			tcell.KeyCtrlQ: ActionQuit,
			tcell.KeyCtrlC: ActionQuit,
			tcell.KeyEsc:   ActionQuit,
			tcell.KeyCtrlR: ActionReload,
			tcell.KeyCtrlS: ActionToggleMute,
		},
		Runes: map[rune]Action{
			'w': ActionJump,
			's': ActionMoveDown,
			'a': ActionMoveLeft,
			'd': ActionMoveRight,
			' ': ActionJump,
			'e': ActionUse,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event to its bound action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if a, ok := kt.Runes[r]; ok {
			return a
		}
		// Shifted letters fall back to their lowercase binding
		if r >= 'A' && r <= 'Z' {
			return kt.Runes[r+'a'-'A']
		}
		return ActionNone
	}
	return kt.SpecialKeys[ev.Key()]
}
