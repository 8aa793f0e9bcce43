package core

import (
	"github.com/lixenwraith/elf-bizniz/geom"
)

// Actor is a moving body driven by physics: the player, and structurally any NPC
type Actor struct {
	// X and Y are the center position in world pixels, +y up
	X, Y float64
	// VX and VY are velocity in pixels per second
	VX, VY float64
	// HW and HH are the half extents of the collision footprint after scaling
	HW, HH float64
}

// NewActor creates an actor centered at (x, y) with a w*h footprint scaled uniformly by scale
func NewActor(x, y, w, h, scale float64) *Actor {
	return &Actor{
		X:  x,
		Y:  y,
		HW: w * scale / 2,
		HH: h * scale / 2,
	}
}

// Box returns the actor's current bounding box
func (a *Actor) Box() geom.Box {
	return geom.Box{CX: a.X, CY: a.Y, HW: a.HW, HH: a.HH}
}

// SetBottom places the actor so that its bottom edge sits at y
func (a *Actor) SetBottom(y float64) { a.Y = y + a.HH }

// SetTop places the actor so that its top edge sits at y
func (a *Actor) SetTop(y float64) { a.Y = y - a.HH }

// SetLeft places the actor so that its left edge sits at x
func (a *Actor) SetLeft(x float64) { a.X = x + a.HW }

// SetRight places the actor so that its right edge sits at x
func (a *Actor) SetRight(x float64) { a.X = x - a.HW }

// Valid reports finite position/velocity and non-negative extents
func (a *Actor) Valid() bool {
	return geom.Finite(a.X, a.Y, a.VX, a.VY, a.HW, a.HH) && a.HW >= 0 && a.HH >= 0
}

// ContactState is the support/contact result of one collision resolution
type ContactState struct {
	OnGround     bool
	BlockedLeft  bool
	BlockedRight bool
	BlockedAbove bool
}
