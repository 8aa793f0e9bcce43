package event

import (
	"github.com/lixenwraith/elf-bizniz/core"
)

// CollectedPayload describes a removed collectible
type CollectedPayload struct {
	Entity   core.EntityID `toml:"entity"`
	Category core.Category `toml:"category"`
	X        float64       `toml:"x"`
	Y        float64       `toml:"y"`
	Points   int           `toml:"points"`
	Score    int           `toml:"score"` // Score after this pickup
}

// ContactPayload describes a passive entity the actor started touching
type ContactPayload struct {
	Entity   core.EntityID `toml:"entity"`
	Category core.Category `toml:"category"`
}

// JumpPayload carries the launch speed of an honored jump
type JumpPayload struct {
	VY float64 `toml:"vy"`
}

// LandedPayload carries the vertical speed just before touchdown
type LandedPayload struct {
	ImpactVY float64 `toml:"impact_vy"`
}

// LevelLoadedPayload summarizes a loaded level
type LevelLoadedPayload struct {
	Name     string `toml:"name"`
	Tiles    int    `toml:"tiles"`
	Entities int    `toml:"entities"`
}
