package geom

import "math"

// Epsilon is the tolerance below which a penetration counts as contact rather than overlap
const Epsilon = 1e-6

// Box is an axis-aligned bounding box in center/half-extent form, +y is up
type Box struct {
	CX, CY float64 // Center
	HW, HH float64 // Half width, half height (>= 0)
}

// FromCenter builds a box from its center and full dimensions
func FromCenter(cx, cy, w, h float64) Box {
	return Box{CX: cx, CY: cy, HW: w / 2, HH: h / 2}
}

// FromEdges builds a box from left/bottom/right/top edges
func FromEdges(left, bottom, right, top float64) Box {
	return Box{
		CX: (left + right) / 2,
		CY: (bottom + top) / 2,
		HW: (right - left) / 2,
		HH: (top - bottom) / 2,
	}
}

func (b Box) Left() float64   { return b.CX - b.HW }
func (b Box) Right() float64  { return b.CX + b.HW }
func (b Box) Bottom() float64 { return b.CY - b.HH }
func (b Box) Top() float64    { return b.CY + b.HH }
func (b Box) Width() float64  { return b.HW * 2 }
func (b Box) Height() float64 { return b.HH * 2 }

// Degenerate reports a zero-area box
func (b Box) Degenerate() bool {
	return b.HW <= 0 || b.HH <= 0
}

// Valid reports finite center and finite non-negative extents
func (b Box) Valid() bool {
	return finite(b.CX) && finite(b.CY) && finite(b.HW) && finite(b.HH) && b.HW >= 0 && b.HH >= 0
}

// Translate returns the box moved by (dx, dy)
func (b Box) Translate(dx, dy float64) Box {
	b.CX += dx
	b.CY += dy
	return b
}

// Scale returns the box with extents multiplied by s, center unchanged
func (b Box) Scale(s float64) Box {
	b.HW *= s
	b.HH *= s
	return b
}

// Overlaps is the standard AABB test, degenerate boxes never overlap
func Overlaps(a, b Box) bool {
	if a.Degenerate() || b.Degenerate() {
		return false
	}
	return math.Abs(a.CX-b.CX) < a.HW+b.HW && math.Abs(a.CY-b.CY) < a.HH+b.HH
}

// Intersection returns the width and height of the overlapping region, zero when disjoint
func Intersection(a, b Box) (w, h float64) {
	if !Overlaps(a, b) {
		return 0, 0
	}
	w = math.Min(a.Right(), b.Right()) - math.Max(a.Left(), b.Left())
	h = math.Min(a.Top(), b.Top()) - math.Max(a.Bottom(), b.Bottom())
	return w, h
}

// Penetration returns the per-axis translation that moves a out of b
// Sign gives the push direction; both zero when boxes do not overlap
func Penetration(a, b Box) (dx, dy float64) {
	if !Overlaps(a, b) {
		return 0, 0
	}

	ox := a.HW + b.HW - math.Abs(a.CX-b.CX)
	oy := a.HH + b.HH - math.Abs(a.CY-b.CY)

	if a.CX < b.CX {
		dx = -ox
	} else {
		dx = ox
	}
	if a.CY < b.CY {
		dy = -oy
	} else {
		dy = oy
	}
	return dx, dy
}

// Union returns the smallest box containing both a and b
func Union(a, b Box) Box {
	return FromEdges(
		math.Min(a.Left(), b.Left()),
		math.Min(a.Bottom(), b.Bottom()),
		math.Max(a.Right(), b.Right()),
		math.Max(a.Top(), b.Top()),
	)
}

// DistanceSq returns squared distance between box centers
func DistanceSq(a, b Box) float64 {
	dx := a.CX - b.CX
	dy := a.CY - b.CY
	return dx*dx + dy*dy
}

// Clamp restricts v to [lo, hi], lo wins when the range is inverted
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Finite reports whether every value is neither NaN nor infinite
func Finite(vals ...float64) bool {
	for _, v := range vals {
		if !finite(v) {
			return false
		}
	}
	return true
}
