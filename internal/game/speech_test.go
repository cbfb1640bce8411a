package game

import (
	"math/rand"
	"testing"

	"github.com/Garsondee/Frontline/internal/sim"
)

func TestPhraseFor(t *testing.T) {
	rng := rand.New(rand.NewSource(1)) // #nosec G404 -- test determinism

	text, detail, ok := phraseFor(rng, sim.SimLogEntry{Category: "combat", Key: "death", Value: "killed by R3"})
	if !ok || detail != "killed by R3" {
		t.Fatalf("death callout ok=%v detail=%q", ok, detail)
	}
	found := false
	for _, p := range deathPhrases {
		found = found || p == text
	}
	if !found {
		t.Fatalf("death callout %q not from the death pool", text)
	}

	if _, _, ok := phraseFor(rng, sim.SimLogEntry{Category: "move", Key: "position"}); ok {
		t.Fatal("movement should not produce a callout")
	}
}

func TestUpdateSpeech_CooldownAndExpiry(t *testing.T) {
	g := &Game{
		rng:        rand.New(rand.NewSource(1)), // #nosec G404 -- test determinism
		lastSpeech: map[string]int{},
	}
	unit := sim.UnitView{ID: 1, Label: "B1", Team: sim.TeamBlue, X: 100, Y: 115}
	spawn := sim.SimLogEntry{Unit: "B1", Category: "deploy", Key: "spawn", Value: "infantry in top lane"}

	g.updateSpeech(sim.Snapshot{Frame: 1, Units: []sim.UnitView{unit}, Events: []sim.SimLogEntry{spawn}})
	if len(g.speechBubbles) != 1 || g.speechBubbles[0].x != 100 {
		t.Fatalf("bubbles=%d, want one above B1", len(g.speechBubbles))
	}

	evict := sim.SimLogEntry{Unit: "B1", Category: "cap", Key: "evict", Value: "hp 10%"}
	g.updateSpeech(sim.Snapshot{Frame: 2, Units: []sim.UnitView{unit}, Events: []sim.SimLogEntry{evict}})
	if len(g.speechBubbles) != 1 {
		t.Fatalf("cooldown ignored: %d bubbles", len(g.speechBubbles))
	}

	for f := 3; f <= speechLifetime+1; f++ {
		g.updateSpeech(sim.Snapshot{Frame: f})
	}
	if len(g.speechBubbles) != 0 {
		t.Fatalf("expired bubbles kept: %d", len(g.speechBubbles))
	}
}
