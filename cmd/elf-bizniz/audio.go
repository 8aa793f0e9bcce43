package main

import (
	"github.com/lixenwraith/elf-bizniz/audio"
	"github.com/lixenwraith/elf-bizniz/config"
	"github.com/lixenwraith/elf-bizniz/core"
)

// audioConfig maps the audio section onto the sink settings, unknown sound names are skipped
func audioConfig(c *config.Config) *audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	for name, vol := range c.Audio.EffectVolumes {
		if st, ok := core.ParseSoundType(name); ok {
			ac.EffectVolumes[st] = vol
		}
	}
	return ac
}
