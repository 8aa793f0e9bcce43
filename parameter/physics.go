package parameter

// Movement and gravity defaults, pixels and seconds, +y up
// Reference tuning ran at 60 ticks per second with per-tick increments; values below are those
// increments scaled to per-second units so the simulation is framerate independent
const (
	// PlayerMovementSpeed is the absolute horizontal speed of a held move key (5 px/tick)
	PlayerMovementSpeed = 300.0

	// PlayerJumpSpeed is the initial upward speed of an honored jump (20 px/tick)
	PlayerJumpSpeed = 1200.0

	// GravityConstant is the downward acceleration (1 px/tick per tick)
	GravityConstant = 3600.0

	// MaxFallSpeed caps downward speed, 0 disables the cap
	MaxFallSpeed = 0.0

	// MaxResolveIterations bounds the de-penetration pass per resolve
	MaxResolveIterations = 8
)
