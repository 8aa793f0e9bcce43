package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/elf-bizniz/core"
	"github.com/lixenwraith/elf-bizniz/geom"
	"github.com/lixenwraith/elf-bizniz/session"
)

// statusRows is the number of terminal rows reserved below the play field
const statusRows = 1

// TerminalRenderer draws session snapshots onto a tcell screen
// The world-pixel screen (ScreenW x ScreenH) is scaled to fit the terminal play field
type TerminalRenderer struct {
	screen  tcell.Screen
	ScreenW float64
	ScreenH float64
	Title   string // Status bar prefix, empty hides it

	cols, rows int     // Play field size in cells
	cellW      float64 // World pixels per cell column
	cellH      float64 // World pixels per cell row
}

// NewTerminalRenderer creates a renderer for a screenW x screenH world-pixel view
func NewTerminalRenderer(screen tcell.Screen, screenW, screenH float64) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, ScreenW: screenW, ScreenH: screenH}
	r.Resize()
	return r
}

// Resize recomputes the cell scale from the current terminal size
func (r *TerminalRenderer) Resize() {
	w, h := r.screen.Size()
	r.cols = max(w, 1)
	r.rows = max(h-statusRows, 1)
	r.cellW = r.ScreenW / float64(r.cols)
	r.cellH = r.ScreenH / float64(r.rows)
}

// CellOf maps a screen-space point (origin bottom-left, y up) to a terminal cell
func (r *TerminalRenderer) CellOf(sx, sy float64) (col, row int) {
	col = int(math.Floor(sx / r.cellW))
	row = r.rows - 1 - int(math.Floor(sy/r.cellH))
	return col, row
}

// RenderFrame draws one snapshot and shows it
func (r *TerminalRenderer) RenderFrame(snap session.Snapshot) {
	r.screen.Clear()
	bg := BackgroundColor(snap.Background)
	base := tcell.StyleDefault.Background(bg)

	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			r.screen.SetContent(col, row, ' ', nil, base)
		}
	}

	view := geom.FromEdges(float64(snap.ViewLeft), float64(snap.ViewBottom),
		float64(snap.ViewLeft)+r.ScreenW, float64(snap.ViewBottom)+r.ScreenH)

	for _, w := range snap.Walls {
		r.drawSprite(w, view, base)
	}
	for _, e := range snap.Entities {
		r.drawSprite(e, view, base)
	}
	r.drawSprite(snap.Player, view, base)

	r.drawStatusBar(snap)
	r.screen.Show()
}

// drawSprite fills every cell whose center lies inside the sprite, sprites smaller than a cell get one
func (r *TerminalRenderer) drawSprite(sp session.Sprite, view geom.Box, base tcell.Style) {
	if !geom.Overlaps(sp.Box, view) || sp.Category >= core.CategoryCount {
		return
	}
	glyph := categoryGlyph[sp.Category]

	// Screen space, origin at the view's bottom-left
	box := sp.Box.Translate(-view.Left(), -view.Bottom())
	centerCol, centerRow := r.CellOf(box.CX, box.CY)

	colFrom := int(math.Ceil(box.Left()/r.cellW - 0.5))
	colTo := int(math.Floor(box.Right()/r.cellW - 0.5))
	if colFrom > colTo {
		colFrom, colTo = centerCol, centerCol
	}

	// Rows count down from the top, so the box top maps to the smallest row
	rowFrom := r.rows - 1 - int(math.Floor(box.Top()/r.cellH-0.5))
	rowTo := r.rows - 1 - int(math.Ceil(box.Bottom()/r.cellH-0.5))
	if rowFrom > rowTo {
		rowFrom, rowTo = centerRow, centerRow
	}

	for row := max(rowFrom, 0); row <= min(rowTo, r.rows-1); row++ {
		style := base.Foreground(glyph.fg)
		// Below the top row a platform reads as dirt
		if sp.Category == core.CategoryPlatform && row != rowFrom {
			style = base.Foreground(colorDirt)
		}
		for col := max(colFrom, 0); col <= min(colTo, r.cols-1); col++ {
			r.screen.SetContent(col, row, glyph.ch, nil, style)
		}
	}
}

// drawStatusBar draws the score overlay anchored below the play field
func (r *TerminalRenderer) drawStatusBar(snap session.Snapshot) {
	style := tcell.StyleDefault.Foreground(colorStatusText).Background(colorStatusBg)
	row := r.rows
	text := fmt.Sprintf(" Score: %d  Frame: %d  View: %d,%d ", snap.Score, snap.Frame, snap.ViewLeft, snap.ViewBottom)
	if r.Title != "" {
		text = " " + r.Title + " |" + text
	}

	col := 0
	for _, ch := range text {
		if col >= r.cols {
			break
		}
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
	for ; col < r.cols; col++ {
		r.screen.SetContent(col, row, ' ', nil, style)
	}
}
