package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Frontline/internal/sim"
)

var (
	hudTextCol  = color.RGBA{R: 210, G: 225, B: 200, A: 255}
	hudAlertCol = color.RGBA{R: 255, G: 170, B: 80, A: 255}
)

// Label is a positioned line of HUD text. The HUD creates its labels once;
// updates only replace their text.
type Label struct {
	X, Y  int
	Color color.RGBA
	text  string
}

// SetText replaces the label's text.
func (l *Label) SetText(s string) { l.text = s }

// Text returns the current text.
func (l *Label) Text() string { return l.text }

// HUD is the status strip under the battlefield. It implements sim.Observer.
type HUD struct {
	Resources *Label
	Supply    *Label
	Selected  *Label
	Artillery *Label
	Frontline *Label
	Clock     *Label

	x, y   int
	labels []*Label
}

// NewHUD lays out the labels with the strip's top-left corner at (x, y).
func NewHUD(x, y int) *HUD {
	h := &HUD{x: x, y: y}
	mk := func(col, row int) *Label {
		l := &Label{X: x + 12 + col*300, Y: y + 14 + row*22, Color: hudTextCol}
		h.labels = append(h.labels, l)
		return l
	}
	h.Resources = mk(0, 0)
	h.Supply = mk(0, 1)
	h.Selected = mk(0, 2)
	h.Artillery = mk(1, 0)
	h.Frontline = mk(1, 1)
	h.Clock = mk(1, 2)
	return h
}

// Labels returns every label in layout order.
func (h *HUD) Labels() []*Label { return h.labels }

// OnSnapshot refreshes label text from snap.
func (h *HUD) OnSnapshot(snap sim.Snapshot) {
	p := snap.Player
	if p == sim.TeamNone {
		p = sim.TeamBlue
	}
	h.Resources.SetText(fmt.Sprintf("Resources: %d", snap.Resources[p]))
	h.Supply.SetText(fmt.Sprintf("Supply: %d/%d", snap.LiveCount(p), snap.SupplyCap[p]))
	h.Selected.SetText(fmt.Sprintf("Selected: %s [1/2/3]", snap.Selected))

	a := snap.Artillery[p]
	h.Artillery.SetText(artilleryLabel(a))
	h.Artillery.Color = hudTextCol
	if a.Stage == sim.ArtilleryPending {
		h.Artillery.Color = hudAlertCol
	}

	h.Frontline.SetText(fmt.Sprintf("Front: %.0f / %.0f / %.0f",
		snap.Frontline[sim.LaneTop], snap.Frontline[sim.LaneMid], snap.Frontline[sim.LaneBottom]))
	h.Clock.SetText(fmt.Sprintf("T=%d  live %d v %d", snap.Frame,
		snap.LiveCount(sim.TeamBlue), snap.LiveCount(sim.TeamRed)))
}

// artilleryLabel renders the strike button text for one team's state.
func artilleryLabel(a sim.ArtilleryView) string {
	switch {
	case a.Stage == sim.ArtilleryPending:
		return fmt.Sprintf("Artillery (%d): click a target, Esc cancels", a.Cost)
	case a.Cooldown > 0:
		return fmt.Sprintf("Artillery (%d) ready in %ds", a.Cost, (a.Cooldown+59)/60)
	default:
		return fmt.Sprintf("Artillery (%d)", a.Cost)
	}
}

// Draw renders the strip and every label.
func (h *HUD) Draw(screen *ebiten.Image, face text.Face, width int) {
	vector.FillRect(screen, float32(h.x), float32(h.y), float32(width), hudHeight,
		color.RGBA{R: 10, G: 12, B: 10, A: 255}, false)
	vector.StrokeLine(screen, float32(h.x), float32(h.y), float32(h.x+width), float32(h.y),
		1.0, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)
	for _, l := range h.labels {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(l.X), float64(l.Y))
		op.ColorScale.ScaleWithColor(l.Color)
		text.Draw(screen, l.text, face, op)
	}
}
