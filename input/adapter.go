package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/elf-bizniz/parameter"
)

// holdDeadline tracks when a terminal key press expires without a release report
type holdDeadline struct {
	action Action
	until  time.Time
}

// Adapter translates tcell key events into State transitions
// Terminals report presses and auto-repeat but no releases, so every press holds the action
// for HoldTimeout and each auto-repeat extends it; Expire synthesizes the missing key-up
type Adapter struct {
	table       *KeyTable
	state       *State
	HoldTimeout time.Duration

	deadlines []holdDeadline
}

// NewAdapter creates an adapter over table, nil selects the default bindings
func NewAdapter(table *KeyTable, state *State) *Adapter {
	if table == nil {
		table = DefaultKeyTable()
	}
	if state == nil {
		state = NewState()
	}
	return &Adapter{
		table:       table,
		state:       state,
		HoldTimeout: parameter.KeyHoldTimeout,
	}
}

// State returns the folded input state
func (ad *Adapter) State() *State {
	return ad.state
}

// HandleKey applies a key event at now and returns its action
// System actions are returned without touching the state
func (ad *Adapter) HandleKey(ev *tcell.EventKey, now time.Time) Action {
	a := ad.table.Lookup(ev)
	if a == ActionNone || a.System() {
		return a
	}

	ad.state.Press(a)
	until := now.Add(ad.HoldTimeout)
	for i := range ad.deadlines {
		if ad.deadlines[i].action == a {
			ad.deadlines[i].until = until
			return a
		}
	}
	ad.deadlines = append(ad.deadlines, holdDeadline{action: a, until: until})
	return a
}

// Expire releases every action whose hold deadline has passed
func (ad *Adapter) Expire(now time.Time) {
	kept := ad.deadlines[:0]
	for _, d := range ad.deadlines {
		if now.Before(d.until) {
			kept = append(kept, d)
			continue
		}
		ad.state.Release(d.action)
	}
	ad.deadlines = kept
}

// Reset drops every hold
func (ad *Adapter) Reset() {
	ad.deadlines = ad.deadlines[:0]
	ad.state.Reset()
}
