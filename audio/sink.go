package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/elf-bizniz/core"
	"github.com/lixenwraith/elf-bizniz/event"
	"github.com/lixenwraith/elf-bizniz/parameter"
)

// SoundFor maps a game event to the sound it triggers
func SoundFor(ev event.GameEvent) (core.SoundType, bool) {
	switch ev.Type {
	case event.EventCollected:
		return core.SoundCoin, true
	case event.EventJump:
		return core.SoundJump, true
	case event.EventAction:
		return core.SoundAction, true
	case event.EventBump:
		return core.SoundBump, true
	default:
		return 0, false
	}
}

// Sink plays event sounds through a beep mixer, never blocking the frame loop
// An uninitialized or disabled sink drops every sound
type Sink struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPlayed  [core.SoundTypeCount]time.Time

	now  func() time.Time
	play func(beep.Streamer)
}

// NewSink creates a sink, call Init to open the device
func NewSink(cfg *Config) *Sink {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Sink{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Init opens the speaker, a failure leaves the sink silent and is returned for logging
func (s *Sink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized || !s.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(s.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(s.mixer)
	s.play = func(st beep.Streamer) {
		speaker.Lock()
		s.mixer.Add(st)
		speaker.Unlock()
	}
	s.initialized = true
	log.Printf("Audio initialized at %d Hz", s.cfg.SampleRate)
	return nil
}

// Play queues a sound, repeats of the same type inside MinSoundGap are dropped
func (s *Sink) Play(st core.SoundType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.muted || st < 0 || st >= core.SoundTypeCount {
		return false
	}

	now := s.now()
	if last := s.lastPlayed[st]; !last.IsZero() && now.Sub(last) < s.cfg.MinSoundGap {
		return false
	}

	streamer := GetSoundEffect(st, s.cfg)
	if streamer == nil {
		return false
	}
	s.lastPlayed[st] = now
	s.play(streamer)
	return true
}

// ToggleMute flips the mute state and returns the new value
func (s *Sink) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
	return s.muted
}

// Handle plays the sound of every mapped event, returns the number queued
func (s *Sink) Handle(events []event.GameEvent) int {
	played := 0
	for _, ev := range events {
		if st, ok := SoundFor(ev); ok && s.Play(st) {
			played++
		}
	}
	return played
}

// Close silences the mixer
func (s *Sink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close in v1, clearing the mixer stops all output
	s.initialized = false
}
