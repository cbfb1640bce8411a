// Package tui draws the battle into a terminal and turns keys into intents.
package tui

import "github.com/Garsondee/Frontline/internal/sim"

// statusRows is the space under the field reserved for the status lines.
const statusRows = 3

// Layout maps the camera viewport onto a grid of terminal cells.
type Layout struct {
	Cols, FieldRows int
	cellW, cellH    float64
	viewW           float64
}

// NewLayout fits the viewport of t into a cols x rows terminal.
func NewLayout(t sim.Tuning, cols, rows int) Layout {
	field := rows - statusRows
	if field < 1 {
		field = 1
	}
	if cols < 1 {
		cols = 1
	}
	return Layout{
		Cols:      cols,
		FieldRows: field,
		cellW:     t.ViewportWidth / float64(cols),
		cellH:     t.WorldHeight / float64(field),
		viewW:     t.ViewportWidth,
	}
}

// ToCell returns the cell under world point p, or false when p is off screen.
func (l Layout) ToCell(p sim.Point, scrollX float64) (int, int, bool) {
	vx := p.X - scrollX
	if vx < 0 || vx >= l.viewW || p.Y < 0 {
		return 0, 0, false
	}
	cx, cy := int(vx/l.cellW), int(p.Y/l.cellH)
	if cx >= l.Cols || cy >= l.FieldRows {
		return 0, 0, false
	}
	return cx, cy, true
}

// ToWorld returns the world point at the centre of cell (cx, cy).
func (l Layout) ToWorld(cx, cy int, scrollX float64) sim.Point {
	return sim.Point{
		X: scrollX + (float64(cx)+0.5)*l.cellW,
		Y: (float64(cy) + 0.5) * l.cellH,
	}
}
