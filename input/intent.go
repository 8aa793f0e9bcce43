package input

// Action discriminates semantic key actions
type Action uint8

const (
	ActionNone Action = iota

	// Movement, folded into the physics intent
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionMoveDown

	// Pass-through, surfaced as a game event
	ActionUse

	// System-level, handled by the frame loop
	ActionQuit
	ActionReload
	ActionToggleMute

	actionCount
)

// Movement reports whether the action is held as part of the intent
func (a Action) Movement() bool {
	return a >= ActionMoveLeft && a <= ActionMoveDown
}

// System reports whether the action is handled outside the simulation
func (a Action) System() bool {
	return a >= ActionQuit && a < actionCount
}
