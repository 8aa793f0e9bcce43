package level

import (
	"math/rand"

	"github.com/lixenwraith/elf-bizniz/core"
	"github.com/lixenwraith/elf-bizniz/parameter"
)

// Source provides tile-map layers by name plus an optional background color hint
// Placement footprints are unscaled source sizes, Load applies per-category scaling
type Source interface {
	Layer(name string) ([]core.Placement, bool)
	Background() (string, bool)
}

// MapSource is an in-memory source keyed by layer name
type MapSource struct {
	Layers map[string][]core.Placement
	Color  string
}

func (m *MapSource) Layer(name string) ([]core.Placement, bool) {
	p, ok := m.Layers[name]
	return p, ok
}

func (m *MapSource) Background() (string, bool) {
	return m.Color, m.Color != ""
}

// Procedural generates the tutorial level: a grass floor row along y=32 and a seeded coin scatter
// Extra placements are appended after generation, letting tests pin a coin at a known position
// TileScaling and CoinScaling must match the Config the level is loaded with
type Procedural struct {
	Seed        int64
	Width       float64
	Height      float64
	Coins       int
	TileScaling float64
	CoinScaling float64
	Extra       map[string][]core.Placement
}

// NewProcedural returns the default screen-sized procedural level
func NewProcedural(seed int64) *Procedural {
	return &Procedural{
		Seed:        seed,
		Width:       parameter.ScreenWidth,
		Height:      parameter.ScreenHeight,
		Coins:       parameter.ProceduralCoinCount,
		TileScaling: parameter.TileScaling,
		CoinScaling: parameter.CoinScaling,
	}
}

func (p *Procedural) Layer(name string) ([]core.Placement, bool) {
	var out []core.Placement
	switch name {
	case core.LayerPlatforms:
		out = p.floor()
	case core.LayerCoins:
		out = p.scatter()
	}
	out = append(out, p.Extra[name]...)
	if name == core.LayerPlatforms || name == core.LayerCoins {
		return out, true
	}
	return out, len(out) > 0
}

func (p *Procedural) Background() (string, bool) {
	return parameter.DefaultBackground, true
}

// floor places source-size tiles every scaled tile width, centered on the scaled half height
func (p *Procedural) floor() []core.Placement {
	size := float64(parameter.TileSourceSize)
	step := size * p.TileScaling
	if step <= 0 {
		return nil
	}
	var tiles []core.Placement
	for x := 0.0; x < p.Width; x += step {
		tiles = append(tiles, core.Placement{X: x, Y: step / 2, W: size, H: size, Ref: "grassMid"})
	}
	return tiles
}

// scatter places coins above the floor, deterministic for a given seed
func (p *Procedural) scatter() []core.Placement {
	size := float64(parameter.TileSourceSize)
	half := size * p.CoinScaling / 2
	floorTop := size * p.TileScaling

	minY := floorTop + half
	maxY := p.Height - half
	if maxY < minY {
		maxY = minY
	}
	maxX := p.Width - half
	if maxX < half {
		maxX = half
	}

	rng := rand.New(rand.NewSource(p.Seed))
	coins := make([]core.Placement, 0, p.Coins)
	for i := 0; i < p.Coins; i++ {
		coins = append(coins, core.Placement{
			X:   half + rng.Float64()*(maxX-half),
			Y:   minY + rng.Float64()*(maxY-minY),
			W:   size,
			H:   size,
			Ref: "coinGold",
		})
	}
	return coins
}
