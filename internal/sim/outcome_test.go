package sim

import "testing"

func TestOutcome_Breakthrough(t *testing.T) {
	s := newTestSim(t, WithAI())
	u := placeUnit(s, TeamBlue, Infantry, 1779.8, 115)

	snap := s.Tick()
	if snap.Outcome.Result != OutcomeBlueVictory || snap.Outcome.Lane != LaneTop {
		t.Fatalf("outcome=%+v, want blue victory in top lane", snap.Outcome)
	}
	if !snap.GameOver() {
		t.Fatal("GameOver should be true")
	}

	x := u.X
	frame := snap.Frame
	snap = s.RunTicks(20)
	if u.X != x {
		t.Fatal("units kept moving after the match ended")
	}
	if snap.Frame != frame+20 {
		t.Fatalf("frame=%d, want the clock to keep running", snap.Frame)
	}
}

func TestOutcome_SameTickIsDraw(t *testing.T) {
	s := newTestSim(t, WithAI())
	placeUnit(s, TeamBlue, Infantry, 1779.8, 115)
	placeUnit(s, TeamRed, Infantry, 20.3, 340)

	snap := s.Tick()
	if snap.Outcome.Result != OutcomeDraw {
		t.Fatalf("outcome=%s, want draw", snap.Outcome.Result)
	}
}

func TestJudgeOutcome(t *testing.T) {
	tun := DefaultTuning()
	tests := []struct {
		name      string
		frontline [laneCount]float64
		want      BattleOutcome
	}{
		{"blue ahead", [laneCount]float64{1400, 1300, 1200}, OutcomeBlueVictory},
		{"red ahead", [laneCount]float64{300, 500, 400}, OutcomeRedVictory},
		{"even", [laneCount]float64{900, 950, 850}, OutcomeDraw},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JudgeOutcome(Snapshot{Frontline: tt.frontline}, tun, 0.1)
			if got.Result != tt.want {
				t.Fatalf("got %s (%s), want %s", got.Result, got.Description, tt.want)
			}
		})
	}

	decided := Snapshot{Outcome: Outcome{Result: OutcomeRedVictory, Tick: 77}}
	if got := JudgeOutcome(decided, tun, 0.1); got.Tick != 77 || got.Result != OutcomeRedVictory {
		t.Fatalf("decided outcome was overridden: %+v", got)
	}
}
