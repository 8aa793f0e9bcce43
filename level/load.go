package level

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/lixenwraith/elf-bizniz/core"
	"github.com/lixenwraith/elf-bizniz/geom"
	"github.com/lixenwraith/elf-bizniz/parameter"
	"github.com/lixenwraith/elf-bizniz/registry"
	"github.com/lixenwraith/elf-bizniz/world"
)

var (
	// ErrMissingLayer is returned when a required layer is absent from the source
	ErrMissingLayer = errors.New("missing level layer")
	// ErrInvalidPlacement is returned for non-finite or non-positive placement footprints
	ErrInvalidPlacement = errors.New("invalid placement")
)

// Config controls how placements become boxes
type Config struct {
	TileScaling      float64
	CoinScaling      float64
	CharacterScaling float64

	// Spawn applies when the source has no player layer, footprint is unscaled
	Spawn core.Placement

	// Bounds start at the origin and always cover [0,MinWidth]x[0,MinHeight]
	MinWidth  float64
	MinHeight float64

	World world.Config
}

// DefaultConfig returns parameter defaults
func DefaultConfig() Config {
	return Config{
		TileScaling:      parameter.TileScaling,
		CoinScaling:      parameter.CoinScaling,
		CharacterScaling: parameter.CharacterScaling,
		Spawn: core.Placement{
			X: parameter.PlayerStartX,
			Y: parameter.PlayerStartY,
			W: parameter.CharacterSourceW,
			H: parameter.CharacterSourceH,
		},
		MinWidth:  parameter.ScreenWidth,
		MinHeight: parameter.ScreenHeight,
		World:     world.DefaultConfig(),
	}
}

// scaling returns the footprint scale applied to a category
func (c Config) scaling(cat core.Category) float64 {
	switch cat {
	case core.CategoryCoin, core.CategoryKey:
		return c.CoinScaling
	case core.CategoryEnemy, core.CategoryBoss, core.CategoryPlayer:
		return c.CharacterScaling
	default:
		return c.TileScaling
	}
}

// Level is a loaded, ready-to-simulate level
type Level struct {
	Name       string
	World      *world.TileWorld
	Registry   *registry.Registry
	Spawn      core.Placement // Scaled player footprint
	Background string
	Bounds     geom.Box // Camera bounds, origin anchored
}

// NewActor creates the player actor at the spawn placement
func (l *Level) NewActor() *core.Actor {
	return core.NewActor(l.Spawn.X, l.Spawn.Y, l.Spawn.W, l.Spawn.H, 1)
}

// Load builds the tile world and entity registry from src
// The platforms layer is required, every other layer is optional. Nothing partial is returned
func Load(src Source, cfg Config) (*Level, error) {
	platforms, ok := src.Layer(core.LayerPlatforms)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingLayer, core.LayerPlatforms)
	}

	tiles := make([]world.Tile, 0, len(platforms))
	for i, p := range platforms {
		box, err := placementBox(p, cfg.scaling(core.CategoryPlatform))
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", core.LayerPlatforms, i, err)
		}
		tiles = append(tiles, world.Tile{Box: box, Ref: p.Ref})
	}

	tw, err := world.New(tiles, cfg.World)
	if err != nil {
		return nil, fmt.Errorf("build tile world: %w", err)
	}
	bounds := tw.Bounds()

	reg := registry.New()
	for _, cat := range core.EntityCategories {
		placements, ok := src.Layer(cat.Layer())
		if !ok {
			continue
		}
		for i, p := range placements {
			box, err := placementBox(p, cfg.scaling(cat))
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", cat.Layer(), i, err)
			}
			if _, err := reg.Add(cat, box, p.Ref); err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", cat.Layer(), i, err)
			}
			bounds = geom.Union(bounds, box)
		}
	}

	spawn := cfg.Spawn
	if players, ok := src.Layer(core.LayerPlayer); ok && len(players) > 0 {
		spawn = players[0]
	}
	spawnBox, err := placementBox(spawn, cfg.scaling(core.CategoryPlayer))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", core.LayerPlayer, err)
	}
	bounds = geom.Union(bounds, spawnBox)

	// Scrolling never reveals space left of or below the origin
	bounds = geom.FromEdges(
		0,
		0,
		math.Max(bounds.Right(), cfg.MinWidth),
		math.Max(bounds.Top(), cfg.MinHeight),
	)

	bg := parameter.DefaultBackground
	if c, ok := src.Background(); ok {
		bg = c
	}

	log.Printf("Level loaded: %d tiles, %d entities, bounds %.0fx%.0f", tw.Len(), reg.Len(), bounds.Width(), bounds.Height())

	return &Level{
		Name:     sourceName(src),
		World:    tw,
		Registry: reg,
		Spawn: core.Placement{
			X:   spawnBox.CX,
			Y:   spawnBox.CY,
			W:   spawnBox.Width(),
			H:   spawnBox.Height(),
			Ref: spawn.Ref,
		},
		Background: bg,
		Bounds:     bounds,
	}, nil
}

// placementBox scales a placement footprint about its center
func placementBox(p core.Placement, scale float64) (geom.Box, error) {
	if !geom.Finite(p.X, p.Y, p.W, p.H, scale) || p.W <= 0 || p.H <= 0 || scale <= 0 {
		return geom.Box{}, fmt.Errorf("%w: %+v scale %v", ErrInvalidPlacement, p, scale)
	}
	return geom.FromCenter(p.X, p.Y, p.W, p.H).Scale(scale), nil
}

func sourceName(src Source) string {
	switch s := src.(type) {
	case *FileSource:
		return s.Name
	case *Procedural:
		return "procedural"
	default:
		return ""
	}
}
