package physics

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/elf-bizniz/core"
	"github.com/lixenwraith/elf-bizniz/geom"
	"github.com/lixenwraith/elf-bizniz/parameter"
)

// ErrInvariant marks a corrupted simulation state, the frame step must abort
var ErrInvariant = errors.New("physics invariant violated")

// Resolver moves an actor through static geometry, implemented by world.TileWorld
type Resolver interface {
	Resolve(a *core.Actor, dt float64) (core.ContactState, error)
}

// JumpGate decides jump legality from the most recent contact state
// Extension point for coyote time or double jumps; the default is ground-only
type JumpGate interface {
	CanJump(last core.ContactState) bool
}

// GroundGate allows a jump only while the last resolve reported ground support
type GroundGate struct{}

func (GroundGate) CanJump(last core.ContactState) bool { return last.OnGround }

// Config holds movement tuning, pixels and seconds
type Config struct {
	Gravity      float64 // Downward acceleration, scaled by dt
	MaxRunSpeed  float64 // Horizontal intent clamp
	MaxJumpSpeed float64 // Jump intent clamp
	MaxFallSpeed float64 // Terminal fall speed, 0 disables
}

// DefaultConfig returns parameter defaults
func DefaultConfig() Config {
	return Config{
		Gravity:      parameter.GravityConstant,
		MaxRunSpeed:  parameter.PlayerMovementSpeed,
		MaxJumpSpeed: parameter.PlayerJumpSpeed,
		MaxFallSpeed: parameter.MaxFallSpeed,
	}
}

// Result summarizes one Update
type Result struct {
	Contact  core.ContactState
	Jumped   bool
	LaunchVY float64 // Clamped jump speed, set when Jumped
	Landed   bool
	ImpactVY float64 // Vertical speed just before touchdown, set when Landed
}

// Engine integrates one actor under gravity and intent against a Resolver
type Engine struct {
	actor    *core.Actor
	resolver Resolver
	gate     JumpGate
	cfg      Config

	intentVX float64 // Held horizontal intent, absolute
	intentVY float64 // One-shot vertical intent, consumed by Update

	contact core.ContactState
	stepped bool
}

// New creates an engine driving actor against resolver
func New(actor *core.Actor, resolver Resolver, cfg Config) *Engine {
	return &Engine{
		actor:    actor,
		resolver: resolver,
		gate:     GroundGate{},
		cfg:      cfg,
	}
}

// SetJumpGate replaces the jump legality rule, nil restores the ground-only gate
func (e *Engine) SetJumpGate(g JumpGate) {
	if g == nil {
		g = GroundGate{}
	}
	e.gate = g
}

// SetIntent records the intent applied at the start of the next Update, last write wins
// Horizontal intent is held until replaced; vertical intent is a single attempt
func (e *Engine) SetIntent(vx, vy float64) {
	e.intentVX = vx
	e.intentVY = vy
}

// CanJump reports whether the most recent resolve allows a jump
func (e *Engine) CanJump() bool {
	return e.gate.CanJump(e.contact)
}

// Contact returns the contact state of the most recent resolve
func (e *Engine) Contact() core.ContactState {
	return e.contact
}

// Actor returns the driven actor
func (e *Engine) Actor() *core.Actor {
	return e.actor
}

// Update applies intent, gravity and collision resolution for one tick of dt seconds
// Gravity is always applied; ground contact only zeroes vy when the resolver reports it
func (e *Engine) Update(dt float64) (Result, error) {
	var res Result

	if !geom.Finite(dt) || dt <= 0 {
		return res, fmt.Errorf("%w: dt=%v", ErrInvariant, dt)
	}
	if !e.actor.Valid() {
		return res, fmt.Errorf("%w: actor %+v", ErrInvariant, *e.actor)
	}

	a := e.actor

	// Intent
	a.VX = e.intentVX
	CapSpeed(&a.VX, e.cfg.MaxRunSpeed)

	switch {
	case e.intentVY > 0:
		if e.CanJump() {
			a.VY = e.intentVY
			CapSpeed(&a.VY, e.cfg.MaxJumpSpeed)
			res.Jumped = true
			res.LaunchVY = a.VY
		}
	case e.intentVY < 0:
		if !e.contact.OnGround && e.intentVY < a.VY {
			a.VY = e.intentVY
		}
	}
	e.intentVY = 0

	ApplyGravity(a, e.cfg.Gravity, e.cfg.MaxFallSpeed, dt)
	preVY := a.VY

	contact, err := e.resolver.Resolve(a, dt)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrInvariant, err)
	}
	if !a.Valid() {
		return res, fmt.Errorf("%w: actor after resolve %+v", ErrInvariant, *a)
	}

	if contact.OnGround && e.stepped && !e.contact.OnGround {
		res.Landed = true
		res.ImpactVY = preVY
	}

	e.contact = contact
	e.stepped = true
	res.Contact = contact
	return res, nil
}
