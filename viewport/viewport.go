package viewport

import (
	"math"

	"github.com/lixenwraith/elf-bizniz/geom"
	"github.com/lixenwraith/elf-bizniz/parameter"
)

// Margins are distances in pixels from each screen edge the actor may not cross
type Margins struct {
	Left, Right, Top, Bottom float64
}

// DefaultMargins returns parameter defaults
func DefaultMargins() Margins {
	return Margins{
		Left:   parameter.LeftViewportMargin,
		Right:  parameter.RightViewportMargin,
		Top:    parameter.TopViewportMargin,
		Bottom: parameter.BottomViewportMargin,
	}
}

// Controller tracks the scroll offset of the camera, in world pixels
// Scrolling is minimal: the offset moves only by the distance the actor crosses a margin
type Controller struct {
	ScreenW, ScreenH float64
	Margins          Margins

	// Clamp bounds the camera to a world region when non-nil, nil scrolls without bound
	Clamp *geom.Box

	left, bottom float64
}

// New creates a controller at the origin
func New(screenW, screenH float64, m Margins) *Controller {
	return &Controller{ScreenW: screenW, ScreenH: screenH, Margins: m}
}

// Update moves the viewport so actor stays inside the margins, returns true when it scrolled
func (c *Controller) Update(actor geom.Box) bool {
	changed := false

	leftBoundary := c.left + c.Margins.Left
	if actor.Left() < leftBoundary {
		c.left -= leftBoundary - actor.Left()
		changed = true
	}

	rightBoundary := c.left + c.ScreenW - c.Margins.Right
	if actor.Right() > rightBoundary {
		c.left += actor.Right() - rightBoundary
		changed = true
	}

	topBoundary := c.bottom + c.ScreenH - c.Margins.Top
	if actor.Top() > topBoundary {
		c.bottom += actor.Top() - topBoundary
		changed = true
	}

	bottomBoundary := c.bottom + c.Margins.Bottom
	if actor.Bottom() < bottomBoundary {
		c.bottom -= bottomBoundary - actor.Bottom()
		changed = true
	}

	if !changed {
		return false
	}

	if c.Clamp != nil {
		c.left = geom.Clamp(c.left, c.Clamp.Left(), c.Clamp.Right()-c.ScreenW)
		c.bottom = geom.Clamp(c.bottom, c.Clamp.Bottom(), c.Clamp.Top()-c.ScreenH)
	}

	// Whole pixels only, sub-pixel offsets make the camera jitter
	c.left = math.Trunc(c.left)
	c.bottom = math.Trunc(c.bottom)
	return true
}

// Offset returns the current (view_left, view_bottom)
func (c *Controller) Offset() (left, bottom int) {
	return int(c.left), int(c.bottom)
}

// ViewLeft returns the horizontal scroll offset
func (c *Controller) ViewLeft() int { return int(c.left) }

// ViewBottom returns the vertical scroll offset
func (c *Controller) ViewBottom() int { return int(c.bottom) }

// visible returns the world region currently on screen
func (c *Controller) visible() geom.Box {
	return geom.FromEdges(c.left, c.bottom, c.left+c.ScreenW, c.bottom+c.ScreenH)
}

// ToScreen converts world coordinates to screen coordinates, +y still up
func (c *Controller) ToScreen(x, y float64) (float64, float64) {
	return x - c.left, y - c.bottom
}

// Reset returns the viewport to the origin
func (c *Controller) Reset() {
	c.left, c.bottom = 0, 0
}
