package core

// Category tags an entity with the semantic layer it was loaded from
type Category uint8

const (
	CategoryPlatform Category = iota
	CategoryCoin
	CategoryKey
	CategoryEnemy
	CategoryBoss
	CategoryBackground
	CategoryPlayer
	CategoryCount
)

// Layer names as they appear in a tile-map source
const (
	LayerPlatforms  = "platforms"
	LayerCoins      = "coins"
	LayerKeys       = "keys"
	LayerEnemies    = "enemies"
	LayerBoss       = "boss"
	LayerBackground = "background"
	LayerPlayer     = "player"
)

var categoryLayers = [CategoryCount]string{
	CategoryPlatform:   LayerPlatforms,
	CategoryCoin:       LayerCoins,
	CategoryKey:        LayerKeys,
	CategoryEnemy:      LayerEnemies,
	CategoryBoss:       LayerBoss,
	CategoryBackground: LayerBackground,
	CategoryPlayer:     LayerPlayer,
}

// Layer returns the tile-map layer name for the category
func (c Category) Layer() string {
	if c >= CategoryCount {
		return "unknown"
	}
	return categoryLayers[c]
}

func (c Category) String() string {
	return c.Layer()
}

// ParseCategory maps a layer name back to its category
func ParseCategory(layer string) (Category, bool) {
	for i, name := range categoryLayers {
		if name == layer {
			return Category(i), true
		}
	}
	return 0, false
}

// EntityCategories lists the categories held by the entity registry, in render order
var EntityCategories = []Category{
	CategoryBackground,
	CategoryCoin,
	CategoryKey,
	CategoryEnemy,
	CategoryBoss,
}

// EntityID identifies a registry entity for the lifetime of a loaded level
type EntityID uint32

// TileRef is an opaque visual reference passed through to the render collaborator
type TileRef string

// Placement is one placed tile from a tile-map layer: center position and footprint
type Placement struct {
	X, Y float64
	W, H float64
	Ref  TileRef
}
