package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Frontline/internal/sim"
)

var (
	styleGround    = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleLane      = tcell.StyleDefault.Background(tcell.NewRGBColor(24, 34, 22))
	styleFrontline = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.NewRGBColor(24, 34, 22))
	styleFallen    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleAlert     = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
)

// glyphs per unit type, in UnitType order.
var glyphs = [...]rune{'i', 'm', 'T'}

// Glyph returns the rune drawn for a unit type.
func Glyph(ut sim.UnitType) rune {
	if int(ut) < len(glyphs) {
		return glyphs[ut]
	}
	return '?'
}

func teamStyle(team sim.Team) tcell.Style {
	if team == sim.TeamRed {
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)
}

func zoneStyle(team sim.Team) tcell.Style {
	if team == sim.TeamRed {
		return tcell.StyleDefault.Background(tcell.NewRGBColor(50, 18, 18))
	}
	return tcell.StyleDefault.Background(tcell.NewRGBColor(18, 26, 56))
}

// View is the front-end state drawn on top of a snapshot.
type View struct {
	Cursor sim.Point // world-space cursor
	Status string    // transient message
}

// Render draws snap into screen and shows it.
func Render(screen tcell.Screen, snap sim.Snapshot, t sim.Tuning, zones [2][3]sim.Rect, v View) {
	cols, rows := screen.Size()
	l := NewLayout(t, cols, rows)
	screen.Clear()

	// Ground, lanes and zones, one cell at a time.
	for cy := 0; cy < l.FieldRows; cy++ {
		for cx := 0; cx < l.Cols; cx++ {
			p := l.ToWorld(cx, cy, snap.ScrollX)
			style := styleGround
			if inLane(t, p.Y) {
				style = styleLane
			}
			for _, team := range sim.Teams {
				for _, z := range zones[team] {
					if z.Contains(p) {
						style = zoneStyle(team)
					}
				}
			}
			screen.SetContent(cx, cy, ' ', nil, style)
		}
	}

	// Frontline markers.
	for _, lane := range sim.Lanes {
		b := t.Lanes[lane]
		for y := b.Y1; y <= b.Y2; y += l.cellH {
			if cx, cy, ok := l.ToCell(sim.Point{X: snap.Frontline[lane], Y: y}, snap.ScrollX); ok {
				screen.SetContent(cx, cy, '|', nil, styleFrontline)
			}
		}
	}

	for _, u := range snap.Fallen {
		if cx, cy, ok := l.ToCell(sim.Point{X: u.X, Y: u.Y}, snap.ScrollX); ok {
			screen.SetContent(cx, cy, 'x', nil, styleFallen)
		}
	}
	for _, u := range snap.Units {
		if cx, cy, ok := l.ToCell(sim.Point{X: u.X, Y: u.Y}, snap.ScrollX); ok {
			screen.SetContent(cx, cy, Glyph(u.Type), nil, teamStyle(u.Team))
		}
	}

	// Cursor.
	if cx, cy, ok := l.ToCell(v.Cursor, snap.ScrollX); ok {
		mainc, _, style, _ := screen.GetContent(cx, cy)
		if mainc == ' ' {
			mainc = '+'
		}
		screen.SetContent(cx, cy, mainc, nil, style.Reverse(true))
	}

	drawStatus(screen, l, snap, v)
	screen.Show()
}

func inLane(t sim.Tuning, y float64) bool {
	for _, b := range t.Lanes {
		if y >= b.Y1 && y <= b.Y2 {
			return true
		}
	}
	return false
}

func drawStatus(screen tcell.Screen, l Layout, snap sim.Snapshot, v View) {
	p := snap.Player
	if p == sim.TeamNone {
		p = sim.TeamBlue
	}
	a := snap.Artillery[p]
	art := fmt.Sprintf("Artillery (%d)", a.Cost)
	artStyle := styleStatus
	switch {
	case a.Stage == sim.ArtilleryPending:
		art += " ARMED: Enter fires, Esc cancels"
		artStyle = styleAlert
	case a.Cooldown > 0:
		art += fmt.Sprintf(" %ds", (a.Cooldown+59)/60)
	}

	y := l.FieldRows
	x := drawText(screen, 0, y, styleStatus, fmt.Sprintf("T=%d  %s  res %d  supply %d/%d  unit %s  ",
		snap.Frame, p, snap.Resources[p], snap.LiveCount(p), snap.SupplyCap[p], snap.Selected))
	drawText(screen, x, y, artStyle, art)

	drawText(screen, 0, y+1, styleStatus, fmt.Sprintf("blue %d v red %d  front %.0f/%.0f/%.0f  [1-3] unit  hjkl move  Enter place  Space strike  [ ] scroll  q quit",
		snap.LiveCount(sim.TeamBlue), snap.LiveCount(sim.TeamRed),
		snap.Frontline[sim.LaneTop], snap.Frontline[sim.LaneMid], snap.Frontline[sim.LaneBottom]))

	msg := v.Status
	style := styleStatus
	if snap.GameOver() {
		msg = fmt.Sprintf("%s: %s", snap.Outcome.Result, snap.Outcome.Description)
		style = styleAlert
	}
	drawText(screen, 0, y+2, style, msg)
}

// drawText writes s from (x, y) and returns the column after it.
func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
