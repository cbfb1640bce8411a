package sim

import "testing"

// newTestSim builds a seeded Sim from the default tuning. Tests that need a
// quiet field pass WithAI() to disable the red controller.
func newTestSim(t *testing.T, opts ...Option) *Sim {
	t.Helper()
	s, err := New(DefaultTuning(), append([]Option{WithSeed(42)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// placeUnit spawns a unit directly, bypassing zone, supply and cost checks.
func placeUnit(s *Sim, team Team, ut UnitType, x, y float64) *Unit {
	return s.state.spawn(s.tuning, team, ut, x, y)
}

// dumpLog prints the full SimLog so it appears in `go test -v` output.
func dumpLog(t *testing.T, s *Sim) {
	t.Helper()
	entries := s.Log().Entries()
	if len(entries) == 0 {
		t.Log("(no log entries)")
		return
	}
	for _, e := range entries {
		t.Log(e.String())
	}
}

func checkResourcesNonNegative(t *testing.T, snap Snapshot) {
	t.Helper()
	for _, team := range Teams {
		if snap.Resources[team] < 0 {
			t.Fatalf("T=%d: %s resources went negative: %d", snap.Frame, team, snap.Resources[team])
		}
	}
}

func checkUnitCap(t *testing.T, snap Snapshot, limit int) {
	t.Helper()
	if n := len(snap.Units); n > limit {
		t.Fatalf("T=%d: %d live units exceed cap %d", snap.Frame, n, limit)
	}
}
