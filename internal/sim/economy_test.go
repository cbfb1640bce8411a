package sim

import "testing"

func TestEconomy_IncomeAccrues(t *testing.T) {
	s := newTestSim(t, WithAI())
	if got := s.Snapshot().Resources[TeamBlue]; got != 80 {
		t.Fatalf("starting resources=%d, want 80", got)
	}
	early := s.RunTicks(10).Resources[TeamBlue]
	late := s.RunTicks(170).Resources[TeamBlue]

	if early != 81 {
		t.Fatalf("resources at T=10 = %d, want 81", early)
	}
	if late <= early {
		t.Fatalf("resources did not grow: T=10 %d, T=180 %d", early, late)
	}
	if late != 98 {
		t.Fatalf("resources at T=180 = %d, want 98", late)
	}
}

func TestEconomy_TrySpendIsAllOrNothing(t *testing.T) {
	gs := newGameState(DefaultTuning())
	gs.Resources[TeamBlue] = 30

	if gs.TrySpend(TeamBlue, 50) {
		t.Fatal("TrySpend succeeded beyond the balance")
	}
	if gs.Resources[TeamBlue] != 30 {
		t.Fatalf("failed spend changed balance to %d", gs.Resources[TeamBlue])
	}
	if !gs.TrySpend(TeamBlue, 30) || gs.Resources[TeamBlue] != 0 {
		t.Fatalf("exact spend failed: balance=%d", gs.Resources[TeamBlue])
	}
	if gs.TrySpend(TeamBlue, -5) {
		t.Fatal("negative cost accepted")
	}
}

func TestEconomy_IncomeStopsWhenOver(t *testing.T) {
	s := newTestSim(t, WithAI())
	s.state.Outcome = Outcome{Result: OutcomeDraw}
	snap := s.RunTicks(50)
	if snap.Resources[TeamBlue] != s.tuning.StartingResources {
		t.Fatalf("income paid after the match ended: %d", snap.Resources[TeamBlue])
	}
}

func TestScroll_ClampedToWorld(t *testing.T) {
	s := newTestSim(t, WithAI())

	s.Enqueue(Scroll(50))
	first := s.Tick().ScrollX
	s.Enqueue(Scroll(50))
	second := s.Tick().ScrollX
	if !(second > first && first > 0) {
		t.Fatalf("scroll not increasing: %.0f then %.0f", first, second)
	}

	s.Enqueue(Scroll(1e6))
	if got := s.Tick().ScrollX; got != s.tuning.WorldWidth-s.tuning.ViewportWidth {
		t.Fatalf("ScrollX=%.0f, want clamp at %.0f", got, s.tuning.WorldWidth-s.tuning.ViewportWidth)
	}
	s.Enqueue(Scroll(-1e6))
	if got := s.Tick().ScrollX; got != 0 {
		t.Fatalf("ScrollX=%.0f, want 0", got)
	}
}

func TestPan_AppliesBetweenTicks(t *testing.T) {
	s := newTestSim(t, WithAI())
	frame := s.Snapshot().Frame

	if got := s.Pan(120).ScrollX; got != 120 {
		t.Fatalf("Pan ScrollX=%.0f, want 120", got)
	}
	if s.Snapshot().ScrollX != 120 || s.Snapshot().Frame != frame {
		t.Fatalf("published snapshot=%.0f at T=%d", s.Snapshot().ScrollX, s.Snapshot().Frame)
	}
	if got := s.Pan(-1e6).ScrollX; got != 0 {
		t.Fatalf("Pan below zero gave %.0f", got)
	}
}
