package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Frontline/internal/sim"
)

// speeds are the selectable sim speed multipliers, slowest first.
var speeds = []float64{0, 0.5, 1, 2, 4}

// unitKeys select a unit type, in hotkey order.
var unitKeys = [...]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// handleInput turns keyboard and mouse state into intents (edge-triggered
// where a key acts once).
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	// 1-3: select unit type.
	for i, k := range unitKeys {
		if pressed(k) && i < len(sim.UnitTypes) {
			g.sim.Enqueue(sim.SelectUnit(sim.UnitTypes[i]))
		}
	}

	// Camera scroll: A/D or arrow keys, held.
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.scroll(-g.tuning.ScrollSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.scroll(g.tuning.ScrollSpeed)
	}

	// Space/F: arm artillery. Esc: stand down.
	space, f := pressed(ebiten.KeySpace), pressed(ebiten.KeyF)
	if space || f {
		g.sim.Enqueue(sim.TriggerArtillery())
	}
	if pressed(ebiten.KeyEscape) {
		g.sim.Enqueue(sim.CancelArtillery())
	}

	// Sim speed controls: P=pause/resume, ,=slower, .=faster.
	if pressed(ebiten.KeyP) {
		if g.simSpeed > 0 {
			g.simSpeed = 0
		} else {
			g.simSpeed = 1
		}
	}
	if pressed(ebiten.KeyComma) {
		g.simSpeed = stepSpeed(g.simSpeed, -1)
	}
	if pressed(ebiten.KeyPeriod) {
		g.simSpeed = stepSpeed(g.simSpeed, 1)
	}

	// H: help overlay. C: copy the match report.
	if pressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	if pressed(ebiten.KeyC) {
		g.copyReport()
	}

	// Mouse: track the cursor in world space; left click confirms a pending
	// strike or deploys the selected unit.
	mx, my := ebiten.CursorPosition()
	inView := mx >= 0 && mx < g.viewW && my >= 0 && my < g.viewH
	if inView {
		g.cursor = screenToWorld(mx, my, g.snap.ScrollX)
	}
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if left && !g.prevMouseLeft && inView {
		g.sim.Enqueue(clickIntent(g.snap, g.cursor))
	}
	g.prevMouseLeft = left

	// Right click: inspect the unit under the cursor.
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if right && !g.prevMouseRight && inView {
		g.handleInspectorClick(g.cursor)
	}
	g.prevMouseRight = right

	g.prevKeys = currentKeys
}

// screenToWorld maps a viewport pixel to world coordinates.
func screenToWorld(x, y int, scrollX float64) sim.Point {
	return sim.Point{X: float64(x) + scrollX, Y: float64(y)}
}

// clickIntent is what a left click at p means given the player's strike state.
func clickIntent(snap sim.Snapshot, p sim.Point) sim.Intent {
	if snap.Player != sim.TeamNone && snap.Artillery[snap.Player].Stage == sim.ArtilleryPending {
		return sim.ConfirmArtillery(p)
	}
	return sim.DeployAt(p)
}

// stepSpeed moves one notch through speeds in direction dir (+1 faster, -1
// slower), staying put at either end.
func stepSpeed(cur float64, dir int) float64 {
	idx := 0
	for i, s := range speeds {
		if s <= cur {
			idx = i
		}
	}
	next := idx + dir
	if speeds[idx] < cur && dir < 0 {
		next = idx
	}
	if next < 0 || next >= len(speeds) {
		return speeds[idx]
	}
	return speeds[next]
}

// scroll pans the camera. Paused, no tick will drain an intent, so the sim
// pans at once.
func (g *Game) scroll(delta float64) {
	if g.simSpeed <= 0 {
		g.snap = g.sim.Pan(delta)
		return
	}
	g.sim.Enqueue(sim.Scroll(delta))
}
