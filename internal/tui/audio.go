package tui

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/Garsondee/Frontline/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

// tone is one short sine burst.
type tone struct {
	freq float64
	dur  time.Duration
}

// Cue plays short tones for artillery events. It implements sim.Observer;
// a Cue whose speaker failed to start stays silent.
type Cue struct {
	ready bool
}

// NewCue starts the speaker. The returned Cue is usable even with an error.
func NewCue() (*Cue, error) {
	c := &Cue{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return c, err
	}
	c.ready = true
	return c, nil
}

// OnSnapshot plays one tone per artillery event of the tick.
func (c *Cue) OnSnapshot(snap sim.Snapshot) {
	if c == nil || !c.ready {
		return
	}
	for _, tn := range tonesFor(snap.Events) {
		sine, err := generators.SineTone(sampleRate, tn.freq)
		if err != nil {
			continue
		}
		speaker.Play(beep.Take(sampleRate.N(tn.dur), sine))
	}
}

// Close releases the speaker.
func (c *Cue) Close() {
	if c != nil && c.ready {
		speaker.Close()
		c.ready = false
	}
}

// tonesFor picks the tones for a tick's events: a low thump for an impact, a
// high blip when a strike is armed, a flat buzz for a cancelled one.
func tonesFor(events []sim.SimLogEntry) []tone {
	var out []tone
	for _, e := range events {
		if e.Category != "artillery" {
			continue
		}
		switch e.Key {
		case "fired":
			out = append(out, tone{freq: 110, dur: 250 * time.Millisecond})
		case "trigger":
			out = append(out, tone{freq: 880, dur: 60 * time.Millisecond})
		case "cancelled":
			out = append(out, tone{freq: 220, dur: 120 * time.Millisecond})
		}
	}
	return out
}
