package session

import (
	"fmt"

	"github.com/lixenwraith/elf-bizniz/config"
	"github.com/lixenwraith/elf-bizniz/core"
	"github.com/lixenwraith/elf-bizniz/event"
	"github.com/lixenwraith/elf-bizniz/interaction"
	"github.com/lixenwraith/elf-bizniz/level"
	"github.com/lixenwraith/elf-bizniz/physics"
	"github.com/lixenwraith/elf-bizniz/viewport"
)

// Session owns one playable level and advances it frame by frame
// Not safe for concurrent use, the frame loop is the only caller
type Session struct {
	cfg *config.Config
	src level.Source

	level  *level.Level
	actor  *core.Actor
	engine *physics.Engine
	pass   *interaction.Pass
	view   *viewport.Controller

	score   int
	frame   int64
	action  bool
	pending []event.GameEvent
}

// New loads src and places the actor at its spawn point
func New(src level.Source, cfg *config.Config) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Session{
		cfg: cfg,
		src: src,
		view: viewport.New(
			float64(cfg.Screen.Width),
			float64(cfg.Screen.Height),
			cfg.Margins(),
		),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload rebuilds the level from its source, resetting score, viewport, registry and actor
// On failure the running level is left untouched
func (s *Session) Reload() error {
	lvl, err := level.Load(s.src, s.cfg.LevelConfig())
	if err != nil {
		return fmt.Errorf("load level: %w", err)
	}

	s.level = lvl
	s.actor = lvl.NewActor()
	s.engine = physics.New(s.actor, lvl.World, s.cfg.PhysicsConfig())

	s.pass = interaction.NewPass()
	s.pass.PointsPerItem = s.cfg.Scoring.PointsPerItem

	s.view.Reset()
	s.view.Clamp = nil
	if s.cfg.Viewport.Clamp {
		bounds := lvl.Bounds
		s.view.Clamp = &bounds
	}

	s.score = 0
	s.frame = 0
	s.action = false
	s.pending = append(s.pending[:0], event.GameEvent{
		Type: event.EventLevelLoaded,
		Payload: &event.LevelLoadedPayload{
			Name:     lvl.Name,
			Tiles:    lvl.World.Len(),
			Entities: lvl.Registry.Len(),
		},
	})
	return nil
}

// SetIntent records the absolute velocity intent for the next Step, last write wins
func (s *Session) SetIntent(vx, vy float64) {
	s.engine.SetIntent(vx, vy)
}

// Action queues the pass-through action event for the next Step
func (s *Session) Action() {
	s.action = true
}

// Step advances one frame of dt seconds: physics, interaction, viewport, in that order
// A physics invariant failure aborts the frame and is returned wrapped in physics.ErrInvariant
func (s *Session) Step(dt float64) ([]event.GameEvent, error) {
	s.frame++
	events := s.pending
	s.pending = nil
	for i := range events {
		events[i].Frame = s.frame
	}

	res, err := s.engine.Update(dt)
	if err != nil {
		return events, fmt.Errorf("frame %d: %w", s.frame, err)
	}

	if res.Jumped {
		events = append(events, event.GameEvent{Type: event.EventJump, Payload: &event.JumpPayload{VY: res.LaunchVY}, Frame: s.frame})
	}
	if res.Contact.BlockedAbove {
		events = append(events, event.GameEvent{Type: event.EventBump, Frame: s.frame})
	}
	if res.Landed {
		events = append(events, event.GameEvent{Type: event.EventLanded, Payload: &event.LandedPayload{ImpactVY: res.ImpactVY}, Frame: s.frame})
	}
	if s.action {
		s.action = false
		events = append(events, event.GameEvent{Type: event.EventAction, Frame: s.frame})
	}

	gained, hits := s.pass.Run(s.level.Registry, s.actor.Box(), s.score, s.frame)
	s.score += gained
	events = append(events, hits...)

	s.view.Update(s.actor.Box())

	return events, nil
}

// Score returns the number of points collected since the last (re)load
func (s *Session) Score() int { return s.score }

// Frame returns the number of steps since the last (re)load
func (s *Session) Frame() int64 { return s.frame }

// CanJump reports whether a jump intent would be honored next Step
func (s *Session) CanJump() bool { return s.engine.CanJump() }

// Actor returns a copy of the actor state
func (s *Session) Actor() core.Actor { return *s.actor }

// Level returns the loaded level
func (s *Session) Level() *level.Level { return s.level }

// Viewport returns the scroll controller
func (s *Session) Viewport() *viewport.Controller { return s.view }

// Snapshot captures everything a renderer needs for the current frame
func (s *Session) Snapshot() Snapshot {
	left, bottom := s.view.Offset()
	snap := Snapshot{
		Frame:      s.frame,
		Score:      s.score,
		ViewLeft:   left,
		ViewBottom: bottom,
		Player: Sprite{
			Category: core.CategoryPlayer,
			Box:      s.actor.Box(),
			Ref:      s.level.Spawn.Ref,
		},
		OnGround:   s.engine.Contact().OnGround,
		Background: s.level.Background,
	}

	tiles := s.level.World.Tiles()
	snap.Walls = make([]Sprite, len(tiles))
	for i, t := range tiles {
		snap.Walls[i] = Sprite{ID: core.EntityID(t.ID), Category: core.CategoryPlatform, Box: t.Box, Ref: t.Ref}
	}

	for _, cat := range core.EntityCategories {
		for _, e := range s.level.Registry.List(cat) {
			snap.Entities = append(snap.Entities, Sprite{ID: e.ID, Category: cat, Box: e.Box, Ref: e.Ref})
		}
	}
	return snap
}
