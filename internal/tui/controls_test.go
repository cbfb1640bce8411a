package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Frontline/internal/sim"
)

func newController(t *testing.T) (*Controller, Layout) {
	t.Helper()
	tun := sim.DefaultTuning()
	s, err := sim.New(tun, sim.WithAI())
	if err != nil {
		t.Fatal(err)
	}
	return NewController(tun, s.DeployZone(sim.TeamBlue)), NewLayout(tun, 90, 26)
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestController_KeysToIntents(t *testing.T) {
	c, l := newController(t)
	snap := sim.Snapshot{Player: sim.TeamBlue}

	tests := []struct {
		ev   *tcell.EventKey
		want sim.IntentKind
	}{
		{key(tcell.KeyRune, '2'), sim.IntentSelectUnit},
		{key(tcell.KeyRune, ' '), sim.IntentTriggerArtillery},
		{key(tcell.KeyEscape, 0), sim.IntentCancelArtillery},
		{key(tcell.KeyEnter, 0), sim.IntentDeploy},
		{key(tcell.KeyRune, ']'), sim.IntentScroll},
	}
	for _, tt := range tests {
		intents, ok := c.Handle(tt.ev, snap, l)
		if !ok {
			t.Fatalf("%v should not quit", tt.ev.Name())
		}
		if len(intents) != 1 || intents[0].Kind != tt.want {
			t.Fatalf("%v -> %v, want %s", tt.ev.Name(), intents, tt.want)
		}
	}

	intents, _ := c.Handle(key(tcell.KeyRune, '3'), snap, l)
	if intents[0].Unit != sim.Tank {
		t.Fatalf("3 selected %s", intents[0].Unit)
	}
}

func TestController_EnterConfirmsPendingStrike(t *testing.T) {
	c, l := newController(t)
	var snap sim.Snapshot
	snap.Player = sim.TeamBlue
	snap.Artillery[sim.TeamBlue].Stage = sim.ArtilleryPending

	intents, _ := c.Handle(key(tcell.KeyEnter, 0), snap, l)
	if len(intents) != 1 || intents[0].Kind != sim.IntentConfirmArtillery || intents[0].Point != c.Cursor() {
		t.Fatalf("enter while armed -> %v", intents)
	}
}

func TestController_CursorStaysInView(t *testing.T) {
	c, l := newController(t)
	snap := sim.Snapshot{Player: sim.TeamBlue}
	for i := 0; i < 200; i++ {
		c.Handle(key(tcell.KeyRune, 'h'), snap, l)
		c.Handle(key(tcell.KeyRune, 'k'), snap, l)
	}
	if p := c.Cursor(); p.X != 0 || p.Y != 0 {
		t.Fatalf("cursor=%+v, want clamped at origin", p)
	}
	c.Follow(900)
	if c.Cursor().X != 900 {
		t.Fatalf("cursor should follow the camera, got %+v", c.Cursor())
	}
}

func TestController_Quit(t *testing.T) {
	c, l := newController(t)
	if _, ok := c.Handle(key(tcell.KeyRune, 'q'), sim.Snapshot{}, l); ok {
		t.Fatal("q should quit")
	}
	if _, ok := c.Handle(key(tcell.KeyCtrlC, 0), sim.Snapshot{}, l); ok {
		t.Fatal("Ctrl-C should quit")
	}
}

func TestController_MouseClickOnce(t *testing.T) {
	c, l := newController(t)
	snap := sim.Snapshot{Player: sim.TeamBlue}

	down := tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone)
	intents, _ := c.Handle(down, snap, l)
	if len(intents) != 1 || intents[0].Kind != sim.IntentDeploy {
		t.Fatalf("click -> %v", intents)
	}
	if intents, _ := c.Handle(tcell.NewEventMouse(6, 5, tcell.Button1, tcell.ModNone), snap, l); len(intents) != 0 {
		t.Fatal("drag repeated the click")
	}
	c.Handle(tcell.NewEventMouse(6, 5, tcell.ButtonNone, tcell.ModNone), snap, l)
	if intents, _ := c.Handle(down, snap, l); len(intents) != 1 {
		t.Fatal("second click ignored")
	}
}
