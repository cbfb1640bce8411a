package game

import (
	"strings"
	"testing"

	"github.com/Garsondee/Frontline/internal/sim"
)

func newSnapSim(t *testing.T) *sim.Sim {
	t.Helper()
	s, err := sim.New(sim.DefaultTuning(), sim.WithSeed(3), sim.WithAI())
	if err != nil {
		t.Fatalf("sim.New: %v", err)
	}
	return s
}

func TestHUD_LabelsKeepIdentity(t *testing.T) {
	s := newSnapSim(t)
	h := NewHUD(0, 460)
	s.Subscribe(h)

	before := append([]*Label(nil), h.Labels()...)
	art := h.Artillery

	s.Tick()
	if got := h.Artillery.Text(); got != "Artillery (50)" {
		t.Fatalf("artillery label=%q, want %q", got, "Artillery (50)")
	}
	s.Enqueue(sim.DeployAt(sim.Point{X: 100, Y: 115}))
	s.RunTicks(30)

	if h.Artillery != art {
		t.Fatal("artillery label was replaced instead of updated")
	}
	after := h.Labels()
	if len(after) != len(before) {
		t.Fatalf("label count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("label %d was replaced", i)
		}
	}
	if !strings.HasPrefix(h.Supply.Text(), "Supply: 1/") {
		t.Fatalf("supply label=%q", h.Supply.Text())
	}
}

func TestArtilleryLabel(t *testing.T) {
	tests := []struct {
		view sim.ArtilleryView
		want string
	}{
		{sim.ArtilleryView{Cost: 50}, "Artillery (50)"},
		{sim.ArtilleryView{Cost: 50, Cooldown: 600}, "Artillery (50) ready in 10s"},
		{sim.ArtilleryView{Cost: 50, Cooldown: 1}, "Artillery (50) ready in 1s"},
		{sim.ArtilleryView{Cost: 50, Stage: sim.ArtilleryPending}, "Artillery (50): click a target, Esc cancels"},
	}
	for _, tt := range tests {
		if got := artilleryLabel(tt.view); got != tt.want {
			t.Errorf("artilleryLabel(%+v)=%q, want %q", tt.view, got, tt.want)
		}
	}
}

func TestHUD_PendingStrikeHighlights(t *testing.T) {
	s := newSnapSim(t)
	h := NewHUD(0, 460)
	s.Subscribe(h)

	s.Enqueue(sim.TriggerArtillery())
	s.Tick()
	if h.Artillery.Color != hudAlertCol {
		t.Fatal("pending strike should use the alert colour")
	}
	s.Enqueue(sim.CancelArtillery())
	s.Tick()
	if h.Artillery.Color != hudTextCol {
		t.Fatal("colour should reset after cancel")
	}
}
