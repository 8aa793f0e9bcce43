package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap between two plays of the same sound
	MinSoundGap = 50 * time.Millisecond

	AudioMasterVolume = 0.5
)

// Coin Sound
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)

// Jump Sound
const (
	JumpSoundDuration = 150 * time.Millisecond
	JumpSoundAttack   = 5 * time.Millisecond
	JumpSoundRelease  = 100 * time.Millisecond
	JumpSoundFromHz   = 220.0
	JumpSoundToHz     = 660.0
)

// Action Sound, the "eugh" grunt
const (
	ActionSoundDuration = 350 * time.Millisecond
	ActionSoundAttack   = 30 * time.Millisecond
	ActionSoundRelease  = 200 * time.Millisecond
)

// Bump Sound
const (
	BumpSoundDuration = 60 * time.Millisecond
	BumpSoundAttack   = 2 * time.Millisecond
	BumpSoundRelease  = 40 * time.Millisecond
)
