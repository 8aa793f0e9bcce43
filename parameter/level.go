package parameter

// Sprite scaling applied to placed footprints
const (
	CharacterScaling = 1.0
	TileScaling      = 0.5
	CoinScaling      = 0.5
)

// Unscaled source footprints, in pixels
const (
	TileSourceSize      = 128
	CharacterSourceW    = 64
	CharacterSourceH    = 128
	PlayerStartX        = 64
	PlayerStartY        = 128
	ProceduralCoinCount = 10
)

// Broad-phase grid cell size for tile indexing, in pixels
const SpatialCellSize = 64

// Viewport margins, in pixels from the screen edge
const (
	LeftViewportMargin   = 250
	RightViewportMargin  = 250
	BottomViewportMargin = 50
	TopViewportMargin    = 100
)

// Scoring
const (
	PointsPerPickup = 1
)

// Default background hint when the level supplies none
const DefaultBackground = "cornflowerblue"
