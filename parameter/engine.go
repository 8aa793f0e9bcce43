package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the fixed frame step interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the dt handed to a single step after a stall (debugger, suspended terminal)
	MaxFrameDelta = 100 * time.Millisecond

	// KeyHoldTimeout is how long a terminal key press is held before a synthetic release
	// Terminals report presses and auto-repeat only, never releases
	KeyHoldTimeout = 120 * time.Millisecond
)

// Screen defaults, in world pixels
const (
	ScreenWidth  = 1000
	ScreenHeight = 650
	ScreenTitle  = "Elf Bizniz!"
)
