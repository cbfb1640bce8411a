package game

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Frontline/internal/sim"
)

// hudHeight is the strip under the battlefield that holds the HUD labels.
const hudHeight = 120

// Game is the ebiten front end. It owns no battle state: everything it draws
// comes from the last published snapshot, and everything the player does is
// turned into intents.
type Game struct {
	sim      *sim.Sim
	tuning   sim.Tuning
	snap     sim.Snapshot
	hud      *HUD
	feed     *BattleFeed
	reporter *sim.Reporter
	face     *text.GoXFace

	width  int
	height int
	viewW  int // battlefield viewport
	viewH  int

	// Offscreen buffer for the full world; the camera is a sub-image blit.
	worldBuf *ebiten.Image

	prevKeys       map[ebiten.Key]bool
	prevMouseLeft  bool
	prevMouseRight bool
	inspector      Inspector
	inspBuf        *ebiten.Image
	showHelp       bool
	cursor         sim.Point // world-space cursor, for the strike preview
	blasts         []blast

	rng           *rand.Rand
	speechBubbles []*SpeechBubble
	lastSpeech    map[string]int // unit label -> frame of its last callout

	// Simulation speed control.
	simSpeed  float64 // multiplier: 0=paused, 0.5, 1, 2, 4
	tickAccum float64 // fractional tick accumulator for sub-1x speeds
}

// blast is a fading artillery impact marker.
type blast struct {
	x, y float64
	ttl  int
}

const blastTicks = 45

// New builds a front end around a fresh simulation.
func New(t sim.Tuning, seed int64) (*Game, error) {
	g := &Game{
		tuning:     t,
		viewW:      int(t.ViewportWidth),
		viewH:      int(t.ViewportHeight),
		feed:       NewBattleFeed(),
		reporter:   sim.NewReporter(t, 0),
		face:       text.NewGoXFace(basicfont.Face7x13),
		prevKeys:   make(map[ebiten.Key]bool),
		rng:        rand.New(rand.NewSource(seed)), // #nosec G404 -- cosmetic callout choice
		lastSpeech: map[string]int{},
		simSpeed:   1,
	}
	g.width = g.viewW + feedPanelWidth
	g.height = g.viewH + hudHeight
	g.hud = NewHUD(0, g.viewH)

	s, err := sim.New(t,
		sim.WithSeed(seed),
		sim.WithObserver(g.hud),
		sim.WithObserver(g.feed),
		sim.WithObserver(g.reporter),
		sim.WithObserver(sim.ObserverFunc(g.trackBlasts)),
		sim.WithObserver(sim.ObserverFunc(g.updateSpeech)),
	)
	if err != nil {
		return nil, err
	}
	g.sim = s
	g.snap = s.Snapshot()
	g.hud.OnSnapshot(g.snap)
	g.worldBuf = ebiten.NewImage(int(t.WorldWidth), int(t.WorldHeight))
	g.inspBuf = ebiten.NewImage(inspBufW, inspBufH)
	return g, nil
}

func (g *Game) Update() error {
	// Handle input every frame regardless of sim speed.
	g.handleInput()

	if g.simSpeed <= 0 {
		return nil
	}

	// For speeds > 1 run multiple sim ticks per frame.
	// For speeds < 1 accumulate fractions.
	g.tickAccum += g.simSpeed
	for g.tickAccum >= 1.0 {
		g.tickAccum -= 1.0
		g.snap = g.sim.Tick()
	}
	return nil
}

// trackBlasts ages impact markers and adds one per strike fired this tick.
func (g *Game) trackBlasts(snap sim.Snapshot) {
	kept := g.blasts[:0]
	for _, b := range g.blasts {
		b.ttl--
		if b.ttl > 0 {
			kept = append(kept, b)
		}
	}
	g.blasts = kept
	for _, e := range snap.Events {
		if e.Category != "artillery" || e.Key != "fired" {
			continue
		}
		var x, y float64
		if _, err := fmt.Sscanf(e.Value, "(%f,%f)", &x, &y); err != nil {
			continue
		}
		g.blasts = append(g.blasts, blast{x: x, y: y, ttl: blastTicks})
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 14, B: 12, A: 255})

	// Render the world at origin, then blit the camera window.
	g.worldBuf.Clear()
	g.drawWorld(g.worldBuf)
	g.drawSpeechBubbles(g.worldBuf)
	sx := int(g.snap.ScrollX)
	view := g.worldBuf.SubImage(image.Rect(sx, 0, sx+g.viewW, g.viewH)).(*ebiten.Image)
	screen.DrawImage(view, &ebiten.DrawImageOptions{})

	g.drawInspector(screen)
	g.hud.Draw(screen, g.face, g.viewW)
	g.feed.Draw(screen, g.viewW, g.height)

	if g.snap.GameOver() {
		g.drawOutcome(screen)
	}
	if g.showHelp {
		g.drawHelp(screen)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// WindowSize returns the logical screen size.
func (g *Game) WindowSize() (int, int) {
	return g.width, g.height
}
