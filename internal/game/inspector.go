package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Frontline/internal/sim"
)

// Inspector panel, rendered into an offscreen buffer at 1x then blitted at
// inspScale.
const (
	inspScale     = 2
	inspBufW      = 170
	inspBufH      = 150
	inspPad       = 4
	inspLineH     = 13
	inspPickRange = 12 // world units around a right click
)

// Inspector holds the unit picked with the right mouse button.
type Inspector struct {
	selected int64
	active   bool
}

// pickUnit returns the living unit nearest p within radius.
func pickUnit(units []sim.UnitView, p sim.Point, radius float64) (int64, bool) {
	best2 := radius * radius
	var id int64
	found := false
	for _, u := range units {
		dx, dy := u.X-p.X, u.Y-p.Y
		if d2 := dx*dx + dy*dy; d2 <= best2 {
			best2, id, found = d2, u.ID, true
		}
	}
	return id, found
}

// handleInspectorClick selects the unit under p, or clears the selection
// when the click hit nothing.
func (g *Game) handleInspectorClick(p sim.Point) {
	g.inspector.selected, g.inspector.active = pickUnit(g.snap.Units, p, inspPickRange)
}

// inspectorLines describes a unit from its record and, while it still stands,
// its live view.
func inspectorLines(t sim.Tuning, rec sim.UnitRecord, live *sim.UnitView, frame int) []string {
	grade := sim.GradeUnits(t, []sim.UnitRecord{rec}, frame)[0]
	lines := []string{
		fmt.Sprintf("[ %s %s ]", rec.Team, rec.Label),
		fmt.Sprintf("type: %s", rec.Type),
	}
	if live != nil {
		lines = append(lines,
			fmt.Sprintf("lane: %s  x=%.0f", live.Lane, live.X),
			fmt.Sprintf("hp:   %.0f/%.0f", live.HP, live.MaxHP))
	} else {
		lines = append(lines, fmt.Sprintf("fate: %s at T=%d", rec.Fate, rec.EndTick))
	}
	lines = append(lines,
		fmt.Sprintf("dealt %.0f  taken %.0f", rec.DamageDealt, rec.DamageTaken),
		fmt.Sprintf("kills %d  engaged %ds", rec.Kills, rec.TicksEngaged/60),
		fmt.Sprintf("ground %+.0f", rec.Advance()),
		fmt.Sprintf("grade %s (%.0f)", grade.Grade, grade.Score),
	)
	return lines
}

func (g *Game) drawInspector(screen *ebiten.Image) {
	if !g.inspector.active {
		return
	}
	rec, ok := g.sim.Record(g.inspector.selected)
	if !ok {
		return
	}
	var live *sim.UnitView
	for i := range g.snap.Units {
		if g.snap.Units[i].ID == rec.ID {
			live = &g.snap.Units[i]
			break
		}
	}

	buf := g.inspBuf
	buf.Clear()
	bw, bh := float32(inspBufW), float32(inspBufH)
	panelBorder := color.RGBA{R: 55, G: 80, B: 55, A: 255}
	vector.FillRect(buf, 0, 0, bw, bh, color.RGBA{R: 14, G: 16, B: 14, A: 230}, false)
	vector.StrokeRect(buf, 0, 0, bw, bh, 1.0, panelBorder, false)
	vector.FillRect(buf, 0, 0, 3, bh, teamColor(rec.Team, 255), false)

	ly := inspPad
	for i, line := range inspectorLines(g.tuning, rec, live, g.snap.Frame) {
		ebitenutil.DebugPrintAt(buf, line, inspPad+4, ly)
		ly += inspLineH
		if i == 0 {
			ly += 2
			vector.StrokeLine(buf, inspPad, float32(ly), bw-inspPad, float32(ly), 1.0, panelBorder, false)
			ly += 3
		}
	}

	// Bottom-right of the battlefield view.
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(inspScale, inspScale)
	opts.GeoM.Translate(float64(g.viewW-inspBufW*inspScale-8), float64(g.viewH-inspBufH*inspScale-8))
	screen.DrawImage(buf, opts)

	// Ring the unit in the world view while it stands.
	if live != nil {
		x := float32(live.X - g.snap.ScrollX)
		r := unitRadius(live.Type) + 5
		if x >= -r && x <= float32(g.viewW)+r {
			vector.StrokeCircle(screen, x, float32(live.Y), r, 1.5, frontlineCol, true)
		}
	}
}
