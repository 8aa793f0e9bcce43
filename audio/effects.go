package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/elf-bizniz/core"
	"github.com/lixenwraith/elf-bizniz/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally gliding linearly to a target frequency
type oscillator struct {
	freq     float64
	toFreq   float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another over its duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		toFreq:   to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.toFreq != o.freq && o.duration > 0 {
			freq += (o.toFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain, zero gain is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateCoinSound generates a two-note chime for a pickup
func CreateCoinSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5
	n1 := NewOscillator(987.77, parameter.CoinSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.CoinSoundNote1Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote1Release, rate)

	// E6
	n2 := NewOscillator(1318.51, parameter.CoinSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.CoinSoundNote2Duration, parameter.CoinSoundAttack, parameter.CoinSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.volume(core.SoundCoin))
}

// CreateJumpSound generates an upward sweep
func CreateJumpSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sweep := NewSweep(parameter.JumpSoundFromHz, parameter.JumpSoundToHz, parameter.JumpSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(sweep, parameter.JumpSoundDuration, parameter.JumpSoundAttack, parameter.JumpSoundRelease, rate)

	return newVolume(shaped, cfg.volume(core.SoundJump))
}

// CreateActionSound generates a low falling grunt with a breathy noise layer
func CreateActionSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	voice := NewSweep(180, 110, parameter.ActionSoundDuration, WaveSaw, rate)
	voiceShaped := NewEnvelope(voice, parameter.ActionSoundDuration, parameter.ActionSoundAttack, parameter.ActionSoundRelease, rate)

	breath := NewOscillator(0, parameter.ActionSoundDuration, WaveNoise, rate)
	breathShaped := NewEnvelope(breath, parameter.ActionSoundDuration, parameter.ActionSoundAttack, parameter.ActionSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(voiceShaped, 0.8),
		newVolume(breathShaped, 0.2),
	)
	return newVolume(mixed, cfg.volume(core.SoundAction))
}

// CreateBumpSound generates a short thud followed by a brief rest
func CreateBumpSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	thud := NewOscillator(90, parameter.BumpSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(thud, parameter.BumpSoundDuration, parameter.BumpSoundAttack, parameter.BumpSoundRelease, rate)

	rest := generators.Silence(rate.N(parameter.BumpSoundDuration))
	return newVolume(beep.Seq(shaped, rest), cfg.volume(core.SoundBump))
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType core.SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case core.SoundCoin:
		return CreateCoinSound(cfg)
	case core.SoundJump:
		return CreateJumpSound(cfg)
	case core.SoundAction:
		return CreateActionSound(cfg)
	case core.SoundBump:
		return CreateBumpSound(cfg)
	default:
		return nil
	}
}
