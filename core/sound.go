package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundCoin   SoundType = iota // Collectible picked up
	SoundJump                    // Jump honored
	SoundAction                  // Action button pass-through
	SoundBump                    // Head hit a ceiling
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundCoin:   "coin",
	SoundJump:   "jump",
	SoundAction: "action",
	SoundBump:   "bump",
}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType maps a lowercase sound name to its type
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}
