package sim

import (
	"strings"
	"testing"
)

func TestReporter_SamplesEverySecond(t *testing.T) {
	s := newTestSim(t, WithAI())
	r := NewReporter(s.Tuning(), 0)
	s.Subscribe(r)
	placeUnit(s, TeamBlue, Infantry, 300, 115)

	s.RunTicks(300)

	if got := len(r.History()); got != 300/reportEvery {
		t.Fatalf("samples=%d, want %d", got, 300/reportEvery)
	}
	latest := r.Latest()
	if latest.Tick != 300 || latest.Teams[TeamBlue].Alive != 1 || latest.Teams[TeamBlue].ByType[Infantry] != 1 {
		t.Fatalf("latest sample %+v", latest)
	}
	if !strings.Contains(r.FormatLatest(), "infantry=1") {
		t.Fatalf("FormatLatest missing unit mix:\n%s", r.FormatLatest())
	}
}

func TestReporter_WindowSummary(t *testing.T) {
	r := NewReporter(DefaultTuning(), 120)
	if r.WindowSummary() != nil {
		t.Fatal("empty reporter should have no summary")
	}
	if !strings.Contains(r.WindowSummary().Format(), "No data") {
		t.Fatal("nil report should format as no data")
	}

	for i, x := range []float64{900, 1000, 1100, 1200} {
		r.Collect(Snapshot{
			Frame:     (i + 1) * 60,
			Frontline: [laneCount]float64{x, 900, 900},
			Resources: [teamCount]int{100, 50},
		})
	}
	wr := r.WindowSummary()
	if wr.SampleCount != 3 || wr.FromTick != 120 || wr.ToTick != 240 {
		t.Fatalf("window %d..%d with %d samples", wr.FromTick, wr.ToTick, wr.SampleCount)
	}
	if wr.FrontlineDrift[LaneTop] != 200 || wr.FrontlineDrift[LaneMid] != 0 {
		t.Fatalf("drift=%v", wr.FrontlineDrift)
	}
	if wr.AvgResources[TeamBlue] != 100 {
		t.Fatalf("avg blue resources=%.1f", wr.AvgResources[TeamBlue])
	}
	if !strings.Contains(wr.Format(), "Battle Report") {
		t.Fatal("format header missing")
	}
}
