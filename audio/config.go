package audio

import (
	"time"

	"github.com/lixenwraith/elf-bizniz/core"
	"github.com/lixenwraith/elf-bizniz/parameter"
)

// Config holds audio sink settings
type Config struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[core.SoundType]float64
	MinSoundGap   time.Duration // Repeat suppression per sound type
}

// DefaultConfig returns parameter defaults
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundCoin:   0.5,
			core.SoundJump:   0.4,
			core.SoundAction: 0.8,
			core.SoundBump:   0.3,
		},
		MinSoundGap: parameter.MinSoundGap,
	}
}

// volume returns the effective gain for a sound type
func (c *Config) volume(st core.SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}
