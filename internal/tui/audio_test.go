package tui

import (
	"testing"

	"github.com/Garsondee/Frontline/internal/sim"
)

func TestTonesFor(t *testing.T) {
	events := []sim.SimLogEntry{
		{Category: "deploy", Key: "spawn"},
		{Category: "artillery", Key: "trigger"},
		{Category: "artillery", Key: "fired"},
		{Category: "artillery", Key: "rejected"},
		{Category: "artillery", Key: "cancelled"},
	}
	got := tonesFor(events)
	if len(got) != 3 {
		t.Fatalf("tones=%d, want 3", len(got))
	}
	if got[1].freq != 110 {
		t.Fatalf("impact tone=%.0f Hz", got[1].freq)
	}
}

func TestCue_SilentWhenNotReady(t *testing.T) {
	var nilCue *Cue
	nilCue.OnSnapshot(sim.Snapshot{Events: []sim.SimLogEntry{{Category: "artillery", Key: "fired"}}})
	nilCue.Close()

	c := &Cue{}
	c.OnSnapshot(sim.Snapshot{Events: []sim.SimLogEntry{{Category: "artillery", Key: "fired"}}})
	c.Close()
}
