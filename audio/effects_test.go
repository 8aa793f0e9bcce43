package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/elf-bizniz/core"
	"github.com/lixenwraith/elf-bizniz/parameter"
)

// TestOscillatorWaveforms streams each waveform and checks its amplitude rule
func TestOscillatorWaveforms(t *testing.T) {
	rate := beep.SampleRate(44100)
	testCases := []struct {
		name  string
		wave  WaveType
		freq  float64
		check func(v float64) bool
	}{
		{"sine", WaveSine, 440, func(v float64) bool { return v >= -1 && v <= 1 }},
		{"square", WaveSquare, 220, func(v float64) bool { return v == -1 || v == 1 }},
		{"saw", WaveSaw, 110, func(v float64) bool { return v >= -1 && v <= 1 }},
		{"noise", WaveNoise, 0, func(v float64) bool { return v >= -1 && v <= 1 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			osc := NewOscillator(tc.freq, 50*time.Millisecond, tc.wave, rate)
			samples := make([][2]float64, 64)
			n, ok := osc.Stream(samples)
			if !ok || n != len(samples) {
				t.Fatalf("Expected %d samples with ok=true, got %d ok=%v", len(samples), n, ok)
			}
			distinct := map[float64]bool{}
			for i := 0; i < n; i++ {
				if !tc.check(samples[i][0]) || samples[i][0] != samples[i][1] {
					t.Fatalf("Sample %d invalid: %v", i, samples[i])
				}
				distinct[samples[i][0]] = true
			}
			if tc.wave != WaveSquare && len(distinct) < 2 {
				t.Error("Expected samples to vary")
			}
			if osc.Err() != nil {
				t.Errorf("Expected no error, got: %v", osc.Err())
			}
		})
	}
}

// TestOscillatorDuration verifies the stream ends after its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	want := rate.N(10 * time.Millisecond)
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, rate)

	n, _ := osc.Stream(make([][2]float64, want*2))
	if n != want {
		t.Errorf("Expected %d samples, got %d", want, n)
	}
	if n, ok := osc.Stream(make([][2]float64, 10)); ok || n != 0 {
		t.Errorf("Expected drained oscillator, got n=%d ok=%v", n, ok)
	}
}

// TestEnvelopeBasic verifies envelope shaping
func TestEnvelopeBasic(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	attack := 20 * time.Millisecond
	release := 20 * time.Millisecond

	osc := NewOscillator(440.0, duration, WaveSine, rate)
	env := NewEnvelope(osc, duration, attack, release, rate)

	if env == nil {
		t.Fatal("Expected non-nil envelope")
	}

	samples := make([][2]float64, rate.N(duration))
	n, ok := env.Stream(samples)

	if !ok {
		t.Error("Expected envelope to stream successfully")
	}

	if n != len(samples) {
		t.Errorf("Expected %d samples, got %d", len(samples), n)
	}

	// Verify envelope has no error
	if env.Err() != nil {
		t.Errorf("Expected no error, got: %v", env.Err())
	}
}

// TestEnvelopeAttackPhase verifies attack ramp-up
func TestEnvelopeAttackPhase(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	attack := 50 * time.Millisecond
	release := 10 * time.Millisecond

	// Use square wave for consistent amplitude
	osc := NewOscillator(100.0, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, attack, release, rate)

	attackSamples := rate.N(attack)
	samples := make([][2]float64, attackSamples)
	n, ok := env.Stream(samples)

	if !ok {
		t.Error("Expected envelope to stream successfully")
	}

	// First sample should have lower amplitude than last
	firstAmp := abs(samples[0][0])
	lastAmp := abs(samples[n-1][0])

	if firstAmp >= lastAmp {
		t.Errorf("Expected attack phase to ramp up, but first=%f >= last=%f", firstAmp, lastAmp)
	}
}

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if a := abs(buf[j][0]); a > peak {
				peak = a
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Expected sound to terminate")
	return 0, 0
}

// TestSoundEffects verifies every effect streams a bounded, finite sound
func TestSoundEffects(t *testing.T) {
	cfg := DefaultConfig()

	testCases := []struct {
		soundType core.SoundType
		minLen    time.Duration
	}{
		{core.SoundCoin, parameter.CoinSoundNote1Duration + parameter.CoinSoundNote2Duration},
		{core.SoundJump, parameter.JumpSoundDuration},
		{core.SoundAction, parameter.ActionSoundDuration},
		{core.SoundBump, parameter.BumpSoundDuration},
	}

	for _, tc := range testCases {
		t.Run(tc.soundType.String(), func(t *testing.T) {
			sound := GetSoundEffect(tc.soundType, cfg)
			if sound == nil {
				t.Fatalf("Expected non-nil sound for %s", tc.soundType)
			}

			n, peak := drain(t, sound)
			want := beep.SampleRate(cfg.SampleRate).N(tc.minLen)
			if n < want-1 {
				t.Errorf("Expected at least %d samples, got %d", want, n)
			}
			if peak == 0 {
				t.Error("Expected audible output")
			}
			if peak > 1.0 {
				t.Errorf("Expected peak within unity, got %f", peak)
			}
		})
	}
}

// TestGetSoundEffectInvalid verifies handling of invalid sound type
func TestGetSoundEffectInvalid(t *testing.T) {
	if sound := GetSoundEffect(core.SoundType(999), DefaultConfig()); sound != nil {
		t.Error("Expected nil for invalid sound type")
	}
}

// TestSoundEffectVolume verifies master volume scaling
func TestSoundEffectVolume(t *testing.T) {
	cfg := DefaultConfig()

	cfg.MasterVolume = 0
	_, silent := drain(t, CreateJumpSound(cfg))
	if silent > 0.01 {
		t.Errorf("Expected near-zero amplitude for zero volume, got max %f", silent)
	}

	cfg.MasterVolume = 1
	_, loud := drain(t, CreateJumpSound(cfg))
	cfg.MasterVolume = 0.25
	_, quiet := drain(t, CreateJumpSound(cfg))
	if quiet >= loud {
		t.Errorf("Expected lower master volume to be quieter, got %f >= %f", quiet, loud)
	}
}

// TestSweepChangesPitch verifies the sweep crosses zero more often at its end
func TestSweepChangesPitch(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewSweep(100, 2000, time.Second, WaveSine, rate)

	buf := make([][2]float64, rate.N(time.Second))
	n, _ := osc.Stream(buf)
	quarter := n / 4

	crossings := func(from, to int) int {
		c := 0
		for i := from + 1; i < to; i++ {
			if (buf[i-1][0] < 0) != (buf[i][0] < 0) {
				c++
			}
		}
		return c
	}
	if first, last := crossings(0, quarter), crossings(n-quarter, n); last <= first {
		t.Errorf("Expected rising pitch, got %d crossings early vs %d late", first, last)
	}
}

// TestNewVolumeZero verifies zero volume handling
func TestNewVolumeZero(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 50*time.Millisecond, WaveSine, rate)

	vol := newVolume(osc, 0.0)
	samples := make([][2]float64, 100)
	n, ok := vol.Stream(samples)

	if !ok {
		t.Error("Expected volume effect to stream")
	}
	if n == 0 {
		t.Error("Expected volume effect to produce samples")
	}
}

// Helper function for absolute value
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
