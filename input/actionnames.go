package input

// actionRegistry maps canonical action names to actions
// Used by keymap config loader to resolve TOML action strings to bindings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"move_left":  ActionMoveLeft,
	"move_right": ActionMoveRight,
	"jump":       ActionJump,
	"move_up":    ActionJump,
	"move_down":  ActionMoveDown,
	"use":        ActionUse,

	"quit":        ActionQuit,
	"reload":      ActionReload,
	"toggle_mute": ActionToggleMute,
}

// ActionEntry resolves an action name
func ActionEntry(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

var actionNames = [actionCount]string{
	ActionNone:       "none",
	ActionMoveLeft:   "move_left",
	ActionMoveRight:  "move_right",
	ActionJump:       "jump",
	ActionMoveDown:   "move_down",
	ActionUse:        "use",
	ActionQuit:       "quit",
	ActionReload:     "reload",
	ActionToggleMute: "toggle_mute",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}
