package world

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/lixenwraith/elf-bizniz/core"
	"github.com/lixenwraith/elf-bizniz/geom"
	"github.com/lixenwraith/elf-bizniz/parameter"
)

// Sentinel errors
var (
	ErrInvalidTile  = errors.New("invalid tile geometry")
	ErrInvalidActor = errors.New("invalid actor state")
	ErrNoTiles      = errors.New("tile world has no tiles")
)

// cellPad widens each indexed footprint so fractional edges never fall outside their cells
const cellPad = 1.0

// Tile is one static collision box plus its opaque visual reference
type Tile struct {
	ID  int
	Box geom.Box
	Ref core.TileRef
}

// Config tunes broad-phase indexing and resolution
type Config struct {
	CellSize      int // Broad-phase grid cell size in pixels
	MaxIterations int // De-penetration passes per Resolve
}

// DefaultConfig returns parameter defaults
func DefaultConfig() Config {
	return Config{
		CellSize:      parameter.SpatialCellSize,
		MaxIterations: parameter.MaxResolveIterations,
	}
}

// TileWorld is the static collision geometry of a level, read-only after construction
type TileWorld struct {
	tiles   []Tile
	bounds  geom.Box
	space   *resolv.Space
	cell    float64
	cols    int
	rows    int
	minHalf float64
	maxIter int
}

// New indexes tiles into a broad-phase grid, tile IDs are reassigned to their slice index
func New(tiles []Tile, cfg Config) (*TileWorld, error) {
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = parameter.SpatialCellSize
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = parameter.MaxResolveIterations
	}

	w := &TileWorld{
		tiles:   make([]Tile, len(tiles)),
		cell:    float64(cfg.CellSize),
		maxIter: cfg.MaxIterations,
		minHalf: math.Inf(1),
	}

	for i, t := range tiles {
		if !t.Box.Valid() || t.Box.Degenerate() {
			return nil, fmt.Errorf("%w: tile %d %+v", ErrInvalidTile, i, t.Box)
		}
		t.ID = i
		w.tiles[i] = t
		if i == 0 {
			w.bounds = t.Box
		} else {
			w.bounds = geom.Union(w.bounds, t.Box)
		}
		w.minHalf = math.Min(w.minHalf, math.Min(t.Box.HW, t.Box.HH))
	}

	// Grid origin sits one padded cell outside the bounds on every side
	w.cols = int(math.Ceil(w.bounds.Width()/w.cell)) + 2
	w.rows = int(math.Ceil(w.bounds.Height()/w.cell)) + 2
	w.space = resolv.NewSpace(w.cols*cfg.CellSize, w.rows*cfg.CellSize, cfg.CellSize, cfg.CellSize)

	for i := range w.tiles {
		b := w.tiles[i].Box
		sx, sy := w.toSpace(b.Left(), b.Bottom())
		obj := resolv.NewObject(sx-cellPad, sy-cellPad, b.Width()+2*cellPad, b.Height()+2*cellPad, "platform")
		obj.Data = i
		w.space.Add(obj)
	}

	return w, nil
}

// toSpace converts world coordinates to grid-local coordinates
func (w *TileWorld) toSpace(x, y float64) (float64, float64) {
	return x - w.bounds.Left() + w.cell, y - w.bounds.Bottom() + w.cell
}

// cellRange returns the clamped grid cell range covering region
func (w *TileWorld) cellRange(region geom.Box) (x0, y0, x1, y1 int, ok bool) {
	lx, ly := w.toSpace(region.Left(), region.Bottom())
	hx, hy := w.toSpace(region.Right(), region.Top())

	x0 = max(int(math.Floor(lx/w.cell)), 0)
	y0 = max(int(math.Floor(ly/w.cell)), 0)
	x1 = min(int(math.Floor(hx/w.cell)), w.cols-1)
	y1 = min(int(math.Floor(hy/w.cell)), w.rows-1)
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}

// Query returns tiles overlapping region in ascending ID order
// Broad phase walks the grid cells under region, narrow phase is an exact AABB test
func (w *TileWorld) Query(region geom.Box) []Tile {
	if !region.Valid() || region.Degenerate() {
		return nil
	}
	x0, y0, x1, y1, ok := w.cellRange(region)
	if !ok {
		return nil
	}

	seen := make(map[int]struct{})
	var result []Tile
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			cell := w.space.Cell(cx, cy)
			if cell == nil {
				continue
			}
			for _, obj := range cell.Objects {
				idx, ok := obj.Data.(int)
				if !ok {
					continue
				}
				if _, dup := seen[idx]; dup {
					continue
				}
				seen[idx] = struct{}{}
				if geom.Overlaps(w.tiles[idx].Box, region) {
					result = append(result, w.tiles[idx])
				}
			}
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Tiles returns a copy of all tiles in ID order
func (w *TileWorld) Tiles() []Tile {
	out := make([]Tile, len(w.tiles))
	copy(out, w.tiles)
	return out
}

// Len returns the number of tiles
func (w *TileWorld) Len() int {
	return len(w.tiles)
}

// Bounds returns the union of all tile boxes
func (w *TileWorld) Bounds() geom.Box {
	return w.bounds
}
