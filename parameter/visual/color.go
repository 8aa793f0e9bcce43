package visual

import (
	"github.com/lixenwraith/elf-bizniz/core"
)

// core.RGB color definitions for sprites and UI
var (
	RgbGrass   = core.RGB{R: 76, G: 153, B: 0}    // Platform top row
	RgbDirt    = core.RGB{R: 101, G: 67, B: 33}   // Platform rows below the top
	RgbCoin    = core.RGB{R: 255, G: 215, B: 0}   // Gold
	RgbKey     = core.RGB{R: 255, G: 255, B: 120} // Pale yellow
	RgbEnemy   = core.RGB{R: 220, G: 60, B: 60}
	RgbBoss    = core.RGB{R: 170, G: 40, B: 170}
	RgbScenery = core.RGB{R: 200, G: 200, B: 200} // Background decorations
	RgbPlayer  = core.RGB{R: 255, G: 255, B: 255}

	RgbStatusText = core.RGB{R: 0, G: 0, B: 0}
	RgbStatusBg   = core.RGB{R: 135, G: 206, B: 250} // Light sky blue
)
