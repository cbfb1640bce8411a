package game

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Frontline/internal/sim"
)

// speechLifetime is how many ticks a callout stays visible (~2 seconds).
const speechLifetime = 120

// speechCooldown is the minimum ticks between callouts per unit.
const speechCooldown = 240

// maxBubbles bounds the callouts on screen during a heavy exchange.
const maxBubbles = 12

// SpeechBubble is a short callout above a unit, anchored where the event
// happened.
type SpeechBubble struct {
	label  string
	team   sim.Team
	text   string
	detail string
	x, y   float64
	age    int
}

var (
	deployPhrases = []string{"Moving up!", "On the line!", "Deploying!"}
	deathPhrases  = []string{"Man down!", "We lost one!", "Medic!"}
	evictPhrases  = []string{"Pulling back", "Rotating out"}
)

// phraseFor picks a callout for a unit event. Events without one return
// false.
func phraseFor(rng *rand.Rand, e sim.SimLogEntry) (text, detail string, ok bool) {
	var pool []string
	switch {
	case e.Category == "deploy" && e.Key == "spawn":
		pool = deployPhrases
	case e.Category == "combat" && e.Key == "death":
		pool = deathPhrases
	case e.Category == "cap" && e.Key == "evict":
		pool = evictPhrases
	default:
		return "", "", false
	}
	return pool[rng.Intn(len(pool))], e.Value, true
}

// updateSpeech ages callouts and adds one per unit event of the tick.
func (g *Game) updateSpeech(snap sim.Snapshot) {
	kept := g.speechBubbles[:0]
	for _, b := range g.speechBubbles {
		b.age++
		if b.age < speechLifetime {
			kept = append(kept, b)
		}
	}
	g.speechBubbles = kept

	for _, e := range snap.Events {
		if e.Unit == "--" || len(g.speechBubbles) >= maxBubbles {
			continue
		}
		if last, ok := g.lastSpeech[e.Unit]; ok && snap.Frame-last < speechCooldown {
			continue
		}
		u, ok := findUnit(snap, e.Unit)
		if !ok {
			continue
		}
		text, detail, ok := phraseFor(g.rng, e)
		if !ok {
			continue
		}
		g.lastSpeech[e.Unit] = snap.Frame
		g.speechBubbles = append(g.speechBubbles, &SpeechBubble{
			label: e.Unit, team: u.Team, text: text, detail: detail, x: u.X, y: u.Y,
		})
	}
}

// findUnit looks a unit up by label among the living and the fallen.
func findUnit(snap sim.Snapshot, label string) (sim.UnitView, bool) {
	for _, u := range snap.Units {
		if u.Label == label {
			return u, true
		}
	}
	for _, u := range snap.Fallen {
		if u.Label == label {
			return u, true
		}
	}
	return sim.UnitView{}, false
}

// drawSpeechBubbles renders callouts in world space.
func (g *Game) drawSpeechBubbles(dst *ebiten.Image) {
	const charW = 6
	const lineH = 14
	const padX = 5
	const padY = 3

	occupied := map[string]float32{} // label -> top of the last bubble drawn
	for _, b := range g.speechBubbles {
		progress := float64(b.age) / float64(speechLifetime)
		alpha := float32(1.0)
		if progress > 0.70 {
			alpha = float32(1.0 - (progress-0.70)/0.30)
		}
		if alpha < 0.05 {
			continue
		}

		lines := 1
		maxLen := len(b.text)
		if b.detail != "" {
			lines = 2
			maxLen = max(maxLen, len(b.detail))
		}
		bgW := float32(maxLen*charW + padX*2)
		bgH := float32(lines*lineH + padY*2)

		sx := float32(b.x)
		bgY := float32(b.y) - 12 - bgH
		if prevY, ok := occupied[b.label]; ok && bgY+bgH > prevY {
			bgY = prevY - bgH - 2
		}
		occupied[b.label] = bgY
		bgX := sx - bgW/2

		vector.FillRect(dst, bgX, bgY, bgW, bgH, color.RGBA{R: 20, G: 22, B: 20, A: uint8(210 * alpha)}, false)
		accent := teamColor(b.team, uint8(220*alpha))
		vector.FillRect(dst, bgX, bgY, 3, bgH, accent, false)
		vector.StrokeRect(dst, bgX, bgY, bgW, bgH, 0.5,
			color.RGBA{R: 100, G: 100, B: 100, A: uint8(80 * alpha)}, false)

		textX := int(bgX + padX + 3)
		textY := int(bgY + padY)
		ebitenutil.DebugPrintAt(dst, b.text, textX, textY)
		if b.detail != "" {
			ebitenutil.DebugPrintAt(dst, b.detail, textX, textY+lineH)
		}

		vector.StrokeLine(dst, sx, bgY+bgH, sx, float32(b.y)-8,
			0.5, color.RGBA{R: 100, G: 100, B: 100, A: uint8(60 * alpha)}, false)
	}
}
