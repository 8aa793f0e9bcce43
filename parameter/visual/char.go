package visual

// Sprite glyphs, one per cell
const (
	CharPlatform = '█'
	CharCoin     = 'o'
	CharKey      = 'k'
	CharEnemy    = 'E'
	CharBoss     = 'B'
	CharScenery  = '░'
	CharPlayer   = '@'
)
