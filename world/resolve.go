package world

import (
	"fmt"
	"math"
	"sort"

	"github.com/lixenwraith/elf-bizniz/core"
	"github.com/lixenwraith/elf-bizniz/geom"
)

// Resolve advances the actor by velocity*dt and pushes it out of static geometry
// Vertical motion resolves before horizontal each sub-step, sub-steps never exceed half the
// thinnest tile so fast actors cannot tunnel. Touching edges are contact, not overlap
func (w *TileWorld) Resolve(a *core.Actor, dt float64) (core.ContactState, error) {
	var contact core.ContactState

	if !a.Valid() {
		return contact, fmt.Errorf("%w: %+v", ErrInvalidActor, *a)
	}
	if !geom.Finite(dt) || dt < 0 {
		return contact, fmt.Errorf("%w: dt=%v", ErrInvalidActor, dt)
	}

	dx, dy := a.VX*dt, a.VY*dt
	start := a.Box()
	swept := geom.Union(start, start.Translate(dx, dy))
	candidates := w.Query(swept)

	maxStep := w.minHalf
	if a.HW > 0 {
		maxStep = math.Min(maxStep, a.HW)
	}
	if a.HH > 0 {
		maxStep = math.Min(maxStep, a.HH)
	}
	steps := 1
	if maxStep > 0 {
		steps = max(int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))/maxStep)), 1)
	}
	sdx, sdy := dx/float64(steps), dy/float64(steps)

	for i := 0; i < steps; i++ {
		if sdy != 0 {
			a.Y += sdy
			if w.resolveVertical(a, candidates, sdy, &contact) {
				sdy = 0
			}
		}
		if sdx != 0 {
			a.X += sdx
			if w.resolveHorizontal(a, candidates, sdx, &contact) {
				sdx = 0
			}
		}
	}

	w.depenetrate(a, &contact)

	if !contact.OnGround && a.VY <= 0 && w.supported(a) {
		contact.OnGround = true
		a.VY = 0
	}

	return contact, nil
}

// penetrating reports a real overlap, contact within Epsilon on either axis does not count
func penetrating(a, b geom.Box) bool {
	iw, ih := geom.Intersection(a, b)
	return iw > geom.Epsilon && ih > geom.Epsilon
}

// byDistance orders candidate tiles by center distance to the actor, nearest first
func byDistance(a *core.Actor, tiles []Tile) []Tile {
	if len(tiles) < 2 {
		return tiles
	}
	box := a.Box()
	ordered := make([]Tile, len(tiles))
	copy(ordered, tiles)
	sort.SliceStable(ordered, func(i, j int) bool {
		return geom.DistanceSq(box, ordered[i].Box) < geom.DistanceSq(box, ordered[j].Box)
	})
	return ordered
}

// resolveVertical snaps the actor above or below each overlapping tile, returns true on any hit
func (w *TileWorld) resolveVertical(a *core.Actor, tiles []Tile, dir float64, contact *core.ContactState) bool {
	hit := false
	for _, t := range byDistance(a, tiles) {
		if !penetrating(a.Box(), t.Box) {
			continue
		}
		hit = true
		a.VY = 0
		if dir < 0 {
			a.SetBottom(t.Box.Top())
			contact.OnGround = true
		} else {
			a.SetTop(t.Box.Bottom())
			contact.BlockedAbove = true
		}
	}
	return hit
}

// resolveHorizontal snaps the offending actor edge to each overlapping tile edge
func (w *TileWorld) resolveHorizontal(a *core.Actor, tiles []Tile, dir float64, contact *core.ContactState) bool {
	hit := false
	for _, t := range byDistance(a, tiles) {
		if !penetrating(a.Box(), t.Box) {
			continue
		}
		hit = true
		a.VX = 0
		if dir > 0 {
			a.SetRight(t.Box.Left())
			contact.BlockedRight = true
		} else {
			a.SetLeft(t.Box.Right())
			contact.BlockedLeft = true
		}
	}
	return hit
}

// escape is one axis-aligned move that clears a tile
type escape struct {
	dx, dy float64
}

// escapes lists the four moves clearing box from tile, shortest first, vertical before horizontal on ties
func escapes(box, tile geom.Box) []escape {
	out := []escape{
		{dy: tile.Top() - box.Bottom()},
		{dy: tile.Bottom() - box.Top()},
		{dx: tile.Right() - box.Left()},
		{dx: tile.Left() - box.Right()},
	}
	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].dx+out[i].dy) < math.Abs(out[j].dx+out[j].dy)
	})
	return out
}

// clear reports whether box penetrates no tile
func (w *TileWorld) clear(box geom.Box) bool {
	for _, t := range w.Query(box) {
		if penetrating(box, t.Box) {
			return false
		}
	}
	return true
}

// depenetrate clears residual overlap, re-querying around the actor every pass
// Each pass takes the shortest escape from the nearest penetrated tile that lands clear of all
// tiles, falling back to the shortest escape when none does. Bounded by maxIter passes
func (w *TileWorld) depenetrate(a *core.Actor, contact *core.ContactState) {
	for iter := 0; iter < w.maxIter; iter++ {
		box := a.Box()
		hit := -1
		nearby := byDistance(a, w.Query(box))
		for i := range nearby {
			if penetrating(box, nearby[i].Box) {
				hit = i
				break
			}
		}
		if hit < 0 {
			return
		}

		options := escapes(box, nearby[hit].Box)
		move := options[0]
		for _, e := range options {
			if w.clear(box.Translate(e.dx, e.dy)) {
				move = e
				break
			}
		}

		a.X += move.dx
		a.Y += move.dy
		switch {
		case move.dy > 0:
			contact.OnGround = true
			if a.VY < 0 {
				a.VY = 0
			}
		case move.dy < 0:
			contact.BlockedAbove = true
			if a.VY > 0 {
				a.VY = 0
			}
		case move.dx > 0:
			contact.BlockedLeft = true
			if a.VX < 0 {
				a.VX = 0
			}
		case move.dx < 0:
			contact.BlockedRight = true
			if a.VX > 0 {
				a.VX = 0
			}
		}
	}
}

// supported reports a tile top within Epsilon under the actor's bottom edge
// Catches resting contact whose per-tick penetration is below Epsilon (tiny dt, zero gravity)
func (w *TileWorld) supported(a *core.Actor) bool {
	box := a.Box()
	probe := geom.FromEdges(box.Left(), box.Bottom()-geom.Epsilon, box.Right(), box.Bottom())
	for _, t := range w.Query(probe) {
		iw := math.Min(box.Right(), t.Box.Right()) - math.Max(box.Left(), t.Box.Left())
		if iw > geom.Epsilon && math.Abs(t.Box.Top()-box.Bottom()) <= geom.Epsilon {
			return true
		}
	}
	return false
}
