package sim

import "testing"

func TestDeploy_InZoneSpawns(t *testing.T) {
	s := newTestSim(t, WithAI())
	s.Enqueue(DeployAt(Point{X: 100, Y: 115}))
	snap := s.Tick()

	if snap.LiveCount(TeamBlue) != 1 {
		t.Fatalf("blue live=%d, want 1", snap.LiveCount(TeamBlue))
	}
	if snap.Resources[TeamBlue] != 60 {
		t.Fatalf("resources=%d, want 60", snap.Resources[TeamBlue])
	}
	u := snap.Units[0]
	if u.Type != Infantry || u.Lane != LaneTop || u.Health != 1 {
		t.Fatalf("unexpected unit %+v", u)
	}
	if got := s.Counters()[TeamBlue].Deployed; got != 1 {
		t.Fatalf("Deployed=%d, want 1", got)
	}
}

func TestDeploy_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(s *Sim)
		point  Point
		reason string
	}{
		{"midfield", nil, Point{X: 600, Y: 115}, rejectOutOfZone},
		{"lane gap", nil, Point{X: 100, Y: 172}, rejectOutOfZone},
		{"enemy zone", nil, Point{X: 1700, Y: 115}, rejectOutOfZone},
		{"broke", func(s *Sim) { s.state.Resources[TeamBlue] = 10 }, Point{X: 100, Y: 115}, rejectFunds},
		{"supply", func(s *Sim) {
			for i := 0; i < s.state.SupplyCap[TeamBlue]; i++ {
				placeUnit(s, TeamBlue, Infantry, 100, 230)
			}
		}, Point{X: 100, Y: 115}, rejectSupply},
		{"game over", func(s *Sim) {
			s.state.Outcome = Outcome{Result: OutcomeRedVictory}
		}, Point{X: 100, Y: 115}, rejectGameOver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(t, WithAI())
			if tt.setup != nil {
				tt.setup(s)
			}
			before := s.state.LiveCount(TeamBlue)
			funds := s.state.Resources[TeamBlue]

			s.Enqueue(DeployAt(tt.point))
			s.Tick()

			if got := s.state.LiveCount(TeamBlue); got != before {
				t.Fatalf("blue live=%d, want unchanged %d", got, before)
			}
			if got := s.state.Resources[TeamBlue]; got != funds {
				t.Fatalf("resources=%d, want unchanged %d", got, funds)
			}
			if !s.Log().HasEntry("deploy", "rejected", tt.reason) {
				dumpLog(t, s)
				t.Fatalf("expected rejection %q", tt.reason)
			}
		})
	}
}

func TestDeploy_SelectionDrivesType(t *testing.T) {
	s := newTestSim(t, WithAI())
	s.Enqueue(SelectUnit(Tank))
	s.Enqueue(DeployAt(Point{X: 150, Y: 340}))
	snap := s.Tick()

	if snap.Selected != Tank {
		t.Fatalf("selected=%s, want tank", snap.Selected)
	}
	if len(snap.Units) != 1 || snap.Units[0].Type != Tank || snap.Units[0].Lane != LaneBottom {
		t.Fatalf("expected a bottom-lane tank, got %+v", snap.Units)
	}
	if snap.Resources[TeamBlue] != 0 {
		t.Fatalf("resources=%d, want 0", snap.Resources[TeamBlue])
	}
}

func TestDeploy_EnqueueIsPlayerOnly(t *testing.T) {
	s := newTestSim(t, WithAI())
	s.Enqueue(DeployTypeAt(TeamRed, Infantry, Point{X: 1700, Y: 115}))
	snap := s.Tick()

	if snap.LiveCount(TeamRed) != 0 {
		t.Fatal("an enqueued intent must not act for the red team")
	}
	if snap.Resources[TeamRed] != s.tuning.StartingResources {
		t.Fatal("red resources changed")
	}
}

func TestDeploy_EventsReachObservers(t *testing.T) {
	var got []SimLogEntry
	s := newTestSim(t, WithAI(), WithObserver(ObserverFunc(func(snap Snapshot) {
		got = append(got, snap.Events...)
	})))
	s.Enqueue(DeployAt(Point{X: 100, Y: 230}))
	s.Tick()
	s.Tick()

	spawns := 0
	for _, e := range got {
		if e.Category == "deploy" && e.Key == "spawn" {
			spawns++
		}
	}
	if spawns != 1 {
		t.Fatalf("observer saw %d spawn events, want 1", spawns)
	}
}

func TestDeployZones_Mirror(t *testing.T) {
	tun := DefaultTuning()
	blue := deployZones(tun, TeamBlue)
	red := deployZones(tun, TeamRed)
	for _, l := range Lanes {
		if blue[l].X1 != tun.WorldWidth-red[l].X2 || blue[l].X2 != tun.WorldWidth-red[l].X1 {
			t.Errorf("%s: blue %+v and red %+v are not mirrored", l, blue[l], red[l])
		}
		if blue[l].Y1 != tun.Lanes[l].Y1 || blue[l].Y2 != tun.Lanes[l].Y2 {
			t.Errorf("%s: zone %+v does not span the lane band", l, blue[l])
		}
	}
}
