package interaction

import (
	"github.com/lixenwraith/elf-bizniz/core"
	"github.com/lixenwraith/elf-bizniz/event"
	"github.com/lixenwraith/elf-bizniz/geom"
	"github.com/lixenwraith/elf-bizniz/parameter"
	"github.com/lixenwraith/elf-bizniz/registry"
)

// Pass tests the actor against registry categories once per frame, after physics
// Collectible categories are removed and scored, passive categories report contact on entry
type Pass struct {
	Collectible   map[core.Category]bool
	Passive       map[core.Category]bool
	PointsPerItem int

	touching map[core.EntityID]bool
}

// NewPass returns the default pass: coins and keys collectible, enemies and boss passive
func NewPass() *Pass {
	return &Pass{
		Collectible: map[core.Category]bool{
			core.CategoryCoin: true,
			core.CategoryKey:  true,
		},
		Passive: map[core.Category]bool{
			core.CategoryEnemy: true,
			core.CategoryBoss:  true,
		},
		PointsPerItem: parameter.PointsPerPickup,
		touching:      make(map[core.EntityID]bool),
	}
}

// Run removes every collectible overlapping actor and returns points gained plus events
// score is the score before this pass, used to stamp CollectedPayload.Score
func (p *Pass) Run(reg *registry.Registry, actor geom.Box, score int, frame int64) (int, []event.GameEvent) {
	gained := 0
	var events []event.GameEvent

	for _, cat := range core.EntityCategories {
		if !p.Collectible[cat] {
			continue
		}
		// Overlap set is gathered before removal, removal order cannot affect membership
		for _, e := range reg.Overlapping(cat, actor) {
			if !reg.Remove(e.ID) {
				continue
			}
			gained += p.PointsPerItem
			events = append(events, event.GameEvent{
				Type: event.EventCollected,
				Payload: &event.CollectedPayload{
					Entity:   e.ID,
					Category: cat,
					X:        e.Box.CX,
					Y:        e.Box.CY,
					Points:   p.PointsPerItem,
					Score:    score + gained,
				},
				Frame: frame,
			})
		}
	}

	now := make(map[core.EntityID]bool, len(p.touching))
	for _, cat := range core.EntityCategories {
		if !p.Passive[cat] {
			continue
		}
		for _, e := range reg.Overlapping(cat, actor) {
			now[e.ID] = true
			if p.touching[e.ID] {
				continue
			}
			events = append(events, event.GameEvent{
				Type:    event.EventContact,
				Payload: &event.ContactPayload{Entity: e.ID, Category: cat},
				Frame:   frame,
			})
		}
	}
	p.touching = now

	return gained, events
}

// Reset forgets contact history, used on level reload
func (p *Pass) Reset() {
	p.touching = make(map[core.EntityID]bool)
}
