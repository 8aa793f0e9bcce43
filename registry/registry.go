package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/component"
	"github.com/yohamta/donburi/filter"

	"github.com/lixenwraith/elf-bizniz/core"
	"github.com/lixenwraith/elf-bizniz/geom"
)

// Sentinel errors
var (
	ErrCategory   = errors.New("category not held by the entity registry")
	ErrInvalidBox = errors.New("invalid entity box")
)

// BodyData is the spatial component every registry entity carries
type BodyData struct {
	ID       core.EntityID
	Category core.Category
	Box      geom.Box
	Ref      core.TileRef
}

// Body is the donburi component type for BodyData
var Body = donburi.NewComponentType[BodyData]()

// Category tags, one per registry category, so each category is its own query
var (
	BackgroundTag = donburi.NewTag()
	CoinTag       = donburi.NewTag()
	KeyTag        = donburi.NewTag()
	EnemyTag      = donburi.NewTag()
	BossTag       = donburi.NewTag()
)

var categoryTags = map[core.Category]component.IComponentType{
	core.CategoryBackground: BackgroundTag,
	core.CategoryCoin:       CoinTag,
	core.CategoryKey:        KeyTag,
	core.CategoryEnemy:      EnemyTag,
	core.CategoryBoss:       BossTag,
}

// Entity is a read-only view of a registry entity
type Entity = BodyData

// Registry holds dynamic, pickup and enemy entities grouped by category
// Not safe for concurrent mutation; the interaction pass is its only writer during play
type Registry struct {
	world    donburi.World
	handles  map[core.EntityID]donburi.Entity
	queries  map[core.Category]*donburi.Query
	counts   [core.CategoryCount]int
	nextID   core.EntityID
	removals int
}

// New creates an empty registry
func New() *Registry {
	r := &Registry{
		world:   donburi.NewWorld(),
		handles: make(map[core.EntityID]donburi.Entity),
		queries: make(map[core.Category]*donburi.Query, len(categoryTags)),
		nextID:  1,
	}
	for cat, tag := range categoryTags {
		r.queries[cat] = donburi.NewQuery(filter.Contains(Body, tag))
	}
	return r
}

// Holds reports whether the registry stores the category
func Holds(cat core.Category) bool {
	_, ok := categoryTags[cat]
	return ok
}

// Add creates an entity in cat with the given box, returning its ID
func (r *Registry) Add(cat core.Category, box geom.Box, ref core.TileRef) (core.EntityID, error) {
	tag, ok := categoryTags[cat]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrCategory, cat)
	}
	if !box.Valid() {
		return 0, fmt.Errorf("%w: %+v", ErrInvalidBox, box)
	}

	id := r.nextID
	r.nextID++

	e := r.world.Create(Body, tag)
	Body.SetValue(r.world.Entry(e), BodyData{
		ID:       id,
		Category: cat,
		Box:      box,
		Ref:      ref,
	})
	r.handles[id] = e
	r.counts[cat]++
	return id, nil
}

// Remove deletes the entity, returns false if it was already gone
func (r *Registry) Remove(id core.EntityID) bool {
	e, ok := r.handles[id]
	if !ok || !r.world.Valid(e) {
		return false
	}
	cat := Body.Get(r.world.Entry(e)).Category
	r.world.Remove(e)
	delete(r.handles, id)
	r.counts[cat]--
	r.removals++
	return true
}

// Get returns the entity by ID
func (r *Registry) Get(id core.EntityID) (Entity, bool) {
	e, ok := r.handles[id]
	if !ok || !r.world.Valid(e) {
		return Entity{}, false
	}
	return *Body.Get(r.world.Entry(e)), true
}

// Count returns live entities in cat
func (r *Registry) Count(cat core.Category) int {
	if cat >= core.CategoryCount {
		return 0
	}
	return r.counts[cat]
}

// Len returns all live entities
func (r *Registry) Len() int {
	return len(r.handles)
}

// Removals returns how many entities were removed since creation
func (r *Registry) Removals() int {
	return r.removals
}

// List returns the live entities of cat in ascending ID order
func (r *Registry) List(cat core.Category) []Entity {
	q, ok := r.queries[cat]
	if !ok {
		return nil
	}
	out := make([]Entity, 0, r.Count(cat))
	q.Each(r.world, func(entry *donburi.Entry) {
		out = append(out, *Body.Get(entry))
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Overlapping returns entities of cat whose box overlaps box, ascending ID order
func (r *Registry) Overlapping(cat core.Category, box geom.Box) []Entity {
	var out []Entity
	for _, e := range r.List(cat) {
		if geom.Overlaps(e.Box, box) {
			out = append(out, e)
		}
	}
	return out
}
