package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Frontline/internal/sim"
)

// Controller keeps the terminal cursor and maps events to intents.
type Controller struct {
	tuning   sim.Tuning
	cursor   sim.Point
	buttonDn bool // left button held; drags do not repeat a click
}

// NewController starts the cursor in the middle of the player's top zone.
func NewController(t sim.Tuning, zones [3]sim.Rect) *Controller {
	return &Controller{tuning: t, cursor: zones[sim.LaneTop].Center()}
}

// Cursor returns the world-space cursor.
func (c *Controller) Cursor() sim.Point { return c.cursor }

// Handle translates one terminal event. It returns the intents to enqueue
// and false when the user asked to quit.
func (c *Controller) Handle(ev tcell.Event, snap sim.Snapshot, l Layout) ([]sim.Intent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.handleKey(ev, snap, l)
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		wasDown := c.buttonDn
		c.buttonDn = down
		if !down || wasDown {
			return nil, true
		}
		x, y := ev.Position()
		if x >= l.Cols || y >= l.FieldRows {
			return nil, true
		}
		c.cursor = l.ToWorld(x, y, snap.ScrollX)
		return []sim.Intent{c.place(snap)}, true
	}
	return nil, true
}

func (c *Controller) handleKey(ev *tcell.EventKey, snap sim.Snapshot, l Layout) ([]sim.Intent, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return nil, false
	case tcell.KeyEscape:
		return []sim.Intent{sim.CancelArtillery()}, true
	case tcell.KeyEnter:
		return []sim.Intent{c.place(snap)}, true
	case tcell.KeyLeft:
		c.move(-l.cellW, 0, snap)
		return nil, true
	case tcell.KeyRight:
		c.move(l.cellW, 0, snap)
		return nil, true
	case tcell.KeyUp:
		c.move(0, -l.cellH, snap)
		return nil, true
	case tcell.KeyDown:
		c.move(0, l.cellH, snap)
		return nil, true
	case tcell.KeyRune:
	default:
		return nil, true
	}

	switch r := ev.Rune(); r {
	case 'q':
		return nil, false
	case '1', '2', '3':
		return []sim.Intent{sim.SelectUnit(sim.UnitTypes[r-'1'])}, true
	case ' ', 'f':
		return []sim.Intent{sim.TriggerArtillery()}, true
	case 'h':
		c.move(-l.cellW, 0, snap)
	case 'l':
		c.move(l.cellW, 0, snap)
	case 'k':
		c.move(0, -l.cellH, snap)
	case 'j':
		c.move(0, l.cellH, snap)
	case '[':
		return []sim.Intent{sim.Scroll(-c.tuning.ViewportWidth / 4)}, true
	case ']':
		return []sim.Intent{sim.Scroll(c.tuning.ViewportWidth / 4)}, true
	}
	return nil, true
}

// place is Enter or a click: confirm a pending strike, else deploy.
func (c *Controller) place(snap sim.Snapshot) sim.Intent {
	if snap.Player != sim.TeamNone && snap.Artillery[snap.Player].Stage == sim.ArtilleryPending {
		return sim.ConfirmArtillery(c.cursor)
	}
	return sim.DeployAt(c.cursor)
}

// move shifts the cursor and keeps it inside the visible part of the world.
func (c *Controller) move(dx, dy float64, snap sim.Snapshot) {
	c.cursor.X += dx
	c.cursor.Y += dy
	c.Follow(snap.ScrollX)
}

// Follow clamps the cursor into the camera window at scrollX.
func (c *Controller) Follow(scrollX float64) {
	t := c.tuning
	c.cursor.X = clamp(c.cursor.X, scrollX, scrollX+t.ViewportWidth-1)
	c.cursor.Y = clamp(c.cursor.Y, 0, t.WorldHeight-1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
