package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Frontline/internal/sim"
)

var (
	groundCol    = color.RGBA{R: 28, G: 42, B: 28, A: 255}
	laneCol      = color.RGBA{R: 44, G: 58, B: 40, A: 255}
	laneEdgeCol  = color.RGBA{R: 70, G: 90, B: 60, A: 255}
	frontlineCol = color.RGBA{R: 240, G: 200, B: 60, A: 220}
	fallenCol    = color.RGBA{R: 90, G: 90, B: 90, A: 160}
	strikeCol    = color.RGBA{R: 255, G: 120, B: 40, A: 255}
)

// teamColor returns the fill for a team's units; zone tints use a low alpha.
func teamColor(team sim.Team, alpha uint8) color.RGBA {
	if team == sim.TeamRed {
		return color.RGBA{R: 210, G: 70, B: 70, A: alpha}
	}
	return color.RGBA{R: 70, G: 110, B: 210, A: alpha}
}

// unitRadius sizes a unit glyph by type.
func unitRadius(ut sim.UnitType) float32 {
	switch ut {
	case sim.MachineGun:
		return 6
	case sim.Tank:
		return 9
	default:
		return 5
	}
}

func (g *Game) drawWorld(dst *ebiten.Image) {
	t := g.tuning
	ww, wh := float32(t.WorldWidth), float32(t.WorldHeight)
	vector.FillRect(dst, 0, 0, ww, wh, groundCol, false)

	// Lanes.
	for _, l := range sim.Lanes {
		b := t.Lanes[l]
		y1, h := float32(b.Y1), float32(b.Y2-b.Y1)
		vector.FillRect(dst, 0, y1, ww, h, laneCol, false)
		vector.StrokeLine(dst, 0, y1, ww, y1, 1.0, laneEdgeCol, false)
		vector.StrokeLine(dst, 0, y1+h, ww, y1+h, 1.0, laneEdgeCol, false)
	}

	// Deploy zones; the player's own are brighter.
	for _, team := range sim.Teams {
		alpha := uint8(40)
		if team == g.snap.Player {
			alpha = 70
		}
		for _, z := range g.sim.DeployZone(team) {
			vector.FillRect(dst, float32(z.X1), float32(z.Y1), float32(z.X2-z.X1), float32(z.Y2-z.Y1),
				teamColor(team, alpha), false)
		}
	}

	// Base lines.
	bm := float32(t.BaseMargin)
	vector.StrokeLine(dst, bm, 0, bm, wh, 2.0, teamColor(sim.TeamBlue, 255), false)
	vector.StrokeLine(dst, ww-bm, 0, ww-bm, wh, 2.0, teamColor(sim.TeamRed, 255), false)

	// Frontline markers.
	for _, l := range sim.Lanes {
		b := t.Lanes[l]
		x := float32(g.snap.Frontline[l])
		vector.StrokeLine(dst, x, float32(b.Y1), x, float32(b.Y2), 2.0, frontlineCol, false)
	}

	for _, u := range g.snap.Fallen {
		drawFallen(dst, u)
	}
	for _, u := range g.snap.Units {
		drawUnit(dst, u)
	}

	g.drawArtillery(dst)
}

func drawUnit(dst *ebiten.Image, u sim.UnitView) {
	x, y := float32(u.X), float32(u.Y)
	r := unitRadius(u.Type)
	c := teamColor(u.Team, 255)
	if u.Type == sim.Tank {
		vector.FillRect(dst, x-r, y-r*0.7, r*2, r*1.4, c, false)
	} else {
		vector.FillCircle(dst, x, y, r, c, true)
	}
	if u.Type == sim.MachineGun {
		vector.StrokeCircle(dst, x, y, r+2, 1.0, c, true)
	}

	// Health bar.
	const barW, barH = 14, 2
	bx, by := x-barW/2, y-r-5
	vector.FillRect(dst, bx, by, barW, barH, color.RGBA{R: 40, G: 10, B: 10, A: 200}, false)
	vector.FillRect(dst, bx, by, barW*float32(u.Health), barH, color.RGBA{R: 80, G: 220, B: 80, A: 230}, false)
}

func drawFallen(dst *ebiten.Image, u sim.UnitView) {
	x, y := float32(u.X), float32(u.Y)
	r := unitRadius(u.Type)
	vector.StrokeLine(dst, x-r, y-r, x+r, y+r, 1.5, fallenCol, true)
	vector.StrokeLine(dst, x-r, y+r, x+r, y-r, 1.5, fallenCol, true)
}

// drawArtillery shows the player's strike preview and recent impacts.
func (g *Game) drawArtillery(dst *ebiten.Image) {
	radius := float32(g.tuning.Artillery.Radius)
	if g.snap.Player != sim.TeamNone && g.snap.Artillery[g.snap.Player].Stage == sim.ArtilleryPending {
		cx, cy := float32(g.cursor.X), float32(g.cursor.Y)
		vector.StrokeCircle(dst, cx, cy, radius, 1.5, strikeCol, true)
		vector.StrokeLine(dst, cx-6, cy, cx+6, cy, 1.0, strikeCol, false)
		vector.StrokeLine(dst, cx, cy-6, cx, cy+6, 1.0, strikeCol, false)
	}
	for _, b := range g.blasts {
		fade := float32(b.ttl) / blastTicks
		vector.FillCircle(dst, float32(b.x), float32(b.y), radius*fade,
			color.RGBA{R: 255, G: 160, B: 60, A: uint8(160 * fade)}, true)
	}
}

func (g *Game) drawOutcome(screen *ebiten.Image) {
	msg := g.snap.Outcome.Result.String() + ": " + g.snap.Outcome.Description
	w := float32(len(msg)*7 + 24)
	x := float32(g.viewW)/2 - w/2
	y := float32(g.viewH)/2 - 16
	vector.FillRect(screen, x, y, w, 32, color.RGBA{R: 6, G: 10, B: 6, A: 220}, false)
	vector.StrokeRect(screen, x, y, w, 32, 1.0, frontlineCol, false)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+12, float64(y)+10)
	op.ColorScale.ScaleWithColor(frontlineCol)
	text.Draw(screen, msg, g.face, op)
}

func (g *Game) drawHelp(screen *ebiten.Image) {
	lines := []string{
		"1/2/3  select infantry / machinegun / tank",
		"click  deploy in your zone, or place a strike",
		"Space  arm artillery   Esc  cancel",
		"right  inspect a unit",
		"A/D    scroll          P  pause  ,/.  speed",
		"C      copy report     H  close help",
	}
	const lineH = 14
	w, h := float32(300), float32(len(lines)*lineH+10)
	vector.FillRect(screen, 8, 8, w, h, color.RGBA{R: 6, G: 10, B: 6, A: 210}, false)
	vector.StrokeRect(screen, 8, 8, w, h, 1.0, color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 14, 12+i*lineH)
	}
}
