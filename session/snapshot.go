package session

import (
	"github.com/lixenwraith/elf-bizniz/core"
	"github.com/lixenwraith/elf-bizniz/geom"
)

// Sprite is one drawable box with its opaque visual reference
type Sprite struct {
	ID       core.EntityID `msgpack:"id"`
	Category core.Category `msgpack:"cat"`
	Box      geom.Box      `msgpack:"box"`
	Ref      core.TileRef  `msgpack:"ref"`
}

// Snapshot is the per-frame render view of a session
// Entities are in core.EntityCategories order, ascending ID within a category
type Snapshot struct {
	Frame      int64    `msgpack:"frame"`
	Score      int      `msgpack:"score"`
	ViewLeft   int      `msgpack:"view_left"`
	ViewBottom int      `msgpack:"view_bottom"`
	Player     Sprite   `msgpack:"player"`
	OnGround   bool     `msgpack:"on_ground"`
	Walls      []Sprite `msgpack:"walls,omitempty"`
	Entities   []Sprite `msgpack:"entities"`
	Background string   `msgpack:"background,omitempty"`
}
