package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/elf-bizniz/core"
	"github.com/lixenwraith/elf-bizniz/parameter/visual"
)

var (
	colorDirt       = toTcell(visual.RgbDirt)
	colorStatusText = toTcell(visual.RgbStatusText)
	colorStatusBg   = toTcell(visual.RgbStatusBg)
)

// categoryGlyph is the cell glyph and foreground color for each category
var categoryGlyph = [core.CategoryCount]struct {
	ch rune
	fg tcell.Color
}{
	core.CategoryPlatform:   {visual.CharPlatform, toTcell(visual.RgbGrass)},
	core.CategoryCoin:       {visual.CharCoin, toTcell(visual.RgbCoin)},
	core.CategoryKey:        {visual.CharKey, toTcell(visual.RgbKey)},
	core.CategoryEnemy:      {visual.CharEnemy, toTcell(visual.RgbEnemy)},
	core.CategoryBoss:       {visual.CharBoss, toTcell(visual.RgbBoss)},
	core.CategoryBackground: {visual.CharScenery, toTcell(visual.RgbScenery)},
	core.CategoryPlayer:     {visual.CharPlayer, toTcell(visual.RgbPlayer)},
}

// toTcell converts an explicit RGB to a tcell color
func toTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// BackgroundColor resolves a level background hint, unknown hints fall back to cornflower blue
func BackgroundColor(hint string) tcell.Color {
	c, err := core.ParseColor(hint)
	if err != nil {
		c = core.RGBCornflowerBlue
	}
	return toTcell(c)
}
