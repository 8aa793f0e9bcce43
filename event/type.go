package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value, never emitted
	EventNone EventType = iota

	// === Interaction Event ===

	// EventCollected reports a collectible removed from the registry
	// Trigger: Interaction pass overlap | Consumer: Audio, score display | Payload: *CollectedPayload
	EventCollected

	// EventContact reports the actor starting to overlap a passive entity
	// Trigger: Interaction pass, edge-triggered | Consumer: Audio, game rules | Payload: *ContactPayload
	EventContact

	// === Physics Event ===

	// EventJump reports an honored jump intent
	// Trigger: Physics update | Consumer: Audio | Payload: *JumpPayload
	EventJump

	// EventLanded reports ground contact after being airborne
	// Trigger: Physics update | Consumer: Audio, render | Payload: *LandedPayload
	EventLanded

	// EventBump reports the actor's head hitting geometry
	// Trigger: Physics update | Consumer: Audio | Payload: nil
	EventBump

	// === Pass-through Event ===

	// EventAction is the action button, passed through untouched
	// Trigger: Input | Consumer: Audio | Payload: nil
	EventAction

	// === Session Event ===

	// EventLevelLoaded reports a fresh or reloaded level
	// Trigger: Session load/reload | Consumer: Render, recorder | Payload: *LevelLoadedPayload
	EventLevelLoaded

	eventTypeCount
)

// GameEvent is one discrete event emitted by a frame step
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
