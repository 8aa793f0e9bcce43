package input

// State folds key down/up transitions into a movement intent
// Horizontal direction follows the most recent held key; jump fires once per press
type State struct {
	held        [actionCount]bool
	lastHorz    Action
	jumpPending bool
	usePending  bool
}

// NewState returns an idle state
func NewState() *State {
	return &State{}
}

// Press marks an action held, returns true on an up to down transition
func (s *State) Press(a Action) bool {
	if a == ActionNone || a >= actionCount {
		return false
	}
	if s.held[a] {
		return false
	}
	s.held[a] = true
	switch a {
	case ActionMoveLeft, ActionMoveRight:
		s.lastHorz = a
	case ActionJump:
		s.jumpPending = true
	case ActionUse:
		s.usePending = true
	}
	return true
}

// Release marks an action no longer held
func (s *State) Release(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	s.held[a] = false
	if a == s.lastHorz {
		s.lastHorz = ActionNone
		switch {
		case a == ActionMoveLeft && s.held[ActionMoveRight]:
			s.lastHorz = ActionMoveRight
		case a == ActionMoveRight && s.held[ActionMoveLeft]:
			s.lastHorz = ActionMoveLeft
		}
	}
}

// Held reports whether an action is currently down
func (s *State) Held(a Action) bool {
	return a < actionCount && s.held[a]
}

// Intent returns the absolute velocity intent and consumes a pending jump
// vy is +jumpSpeed on the frame after a jump press, -moveSpeed while move-down is held, else 0
func (s *State) Intent(moveSpeed, jumpSpeed float64) (vx, vy float64) {
	switch s.lastHorz {
	case ActionMoveLeft:
		vx = -moveSpeed
	case ActionMoveRight:
		vx = moveSpeed
	}

	switch {
	case s.jumpPending:
		vy = jumpSpeed
		s.jumpPending = false
	case s.held[ActionMoveDown]:
		vy = -moveSpeed
	}
	return vx, vy
}

// TakeUse consumes a pending use press
func (s *State) TakeUse() bool {
	u := s.usePending
	s.usePending = false
	return u
}

// Reset releases everything
func (s *State) Reset() {
	*s = State{}
}
