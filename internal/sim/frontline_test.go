package sim

import "testing"

func TestFrontline_Midpoint(t *testing.T) {
	s := newTestSim(t, WithAI())
	placeUnit(s, TeamBlue, Infantry, 500, 115)
	placeUnit(s, TeamBlue, Infantry, 400, 115)
	placeUnit(s, TeamRed, Infantry, 700, 115)
	placeUnit(s, TeamBlue, Infantry, 300, 230)

	s.updateFrontline()

	fl := s.state.Frontline
	if fl[LaneTop] != 600 {
		t.Errorf("top frontline=%.1f, want 600", fl[LaneTop])
	}
	if fl[LaneMid] != 300 {
		t.Errorf("mid frontline=%.1f, want 300 (only blue present)", fl[LaneMid])
	}
	if fl[LaneBottom] != 900 {
		t.Errorf("bottom frontline=%.1f, want unchanged 900", fl[LaneBottom])
	}
}

func TestSupply_StartsEven(t *testing.T) {
	s := newTestSim(t, WithAI())
	caps := s.Snapshot().SupplyCap
	if caps[TeamBlue] != 50 || caps[TeamRed] != 50 {
		t.Fatalf("initial supply caps=%v, want 50/50", caps)
	}
}

func TestSupply_MonotoneInTerritory(t *testing.T) {
	tun := DefaultTuning()
	prev := supplyCaps(tun, [laneCount]float64{0, 0, 0})
	for x := 30.0; x <= tun.WorldWidth; x += 30 {
		caps := supplyCaps(tun, [laneCount]float64{x, x, x})
		if caps[TeamBlue] < prev[TeamBlue] {
			t.Fatalf("blue cap fell from %d to %d as frontline advanced to %.0f", prev[TeamBlue], caps[TeamBlue], x)
		}
		if caps[TeamRed] > prev[TeamRed] {
			t.Fatalf("red cap rose from %d to %d as it lost ground at %.0f", prev[TeamRed], caps[TeamRed], x)
		}
		prev = caps
	}
	end := supplyCaps(tun, [laneCount]float64{tun.WorldWidth, tun.WorldWidth, tun.WorldWidth})
	if end[TeamBlue] != tun.Supply.Base+int(tun.Supply.PerTerritory) || end[TeamRed] != tun.Supply.Base {
		t.Fatalf("caps at full blue control=%v", end)
	}
}

func TestSupply_FollowsFrontlineDuringPlay(t *testing.T) {
	s := newTestSim(t, WithAI())
	for _, l := range Lanes {
		placeUnit(s, TeamBlue, Infantry, 1500, s.tuning.Lanes[l].Center())
	}
	snap := s.Tick()
	if snap.SupplyCap[TeamBlue] <= 50 || snap.SupplyCap[TeamRed] >= 50 {
		t.Fatalf("caps=%v after blue pushed every lane", snap.SupplyCap)
	}
	if !s.Log().HasEntry("frontline", "supply", "") {
		t.Fatal("expected a supply change entry")
	}
}
