package sim

import "testing"

func TestArtillery_TriggerChargesNothing(t *testing.T) {
	s := newTestSim(t, WithAI())
	s.state.Resources[TeamBlue] = 100

	s.Enqueue(TriggerArtillery())
	snap := s.Tick()

	if snap.Artillery[TeamBlue].Stage != ArtilleryPending {
		t.Fatalf("expected pending after trigger, got %s", snap.Artillery[TeamBlue].Stage)
	}
	if snap.Resources[TeamBlue] != 100 {
		t.Fatalf("trigger must not charge: resources=%d, want 100", snap.Resources[TeamBlue])
	}
}

func TestArtillery_ConfirmFiresAndCharges(t *testing.T) {
	s := newTestSim(t, WithAI())
	s.state.Resources[TeamBlue] = 100
	target := placeUnit(s, TeamRed, Infantry, 500, 115)

	s.Enqueue(TriggerArtillery())
	s.Tick()
	s.Enqueue(ConfirmArtillery(Point{X: 500, Y: 115}))
	snap := s.Tick()
	dumpLog(t, s)

	if snap.Resources[TeamBlue] != 50 {
		t.Fatalf("resources=%d after strike, want 50", snap.Resources[TeamBlue])
	}
	if target.HP != 40 {
		t.Fatalf("target HP=%.0f, want 40", target.HP)
	}
	a := snap.Artillery[TeamBlue]
	if a.Stage != ArtilleryIdle || a.Cooldown != s.tuning.Artillery.CooldownTicks {
		t.Fatalf("after firing: stage=%s cooldown=%d", a.Stage, a.Cooldown)
	}
	if got := s.Counters()[TeamBlue].ArtilleryFired; got != 1 {
		t.Fatalf("ArtilleryFired=%d, want 1", got)
	}
}

func TestArtillery_StrikeSparesFriendlies(t *testing.T) {
	s := newTestSim(t, WithAI())
	s.state.Resources[TeamBlue] = 100
	friend := placeUnit(s, TeamBlue, Infantry, 500, 300)

	s.Enqueue(TriggerArtillery())
	s.Enqueue(ConfirmArtillery(Point{X: 500, Y: 300}))
	s.Tick()

	if friend.HP != friend.MaxHP {
		t.Fatalf("friendly unit took artillery damage: HP=%.0f", friend.HP)
	}
}

// A balance that covered the trigger but not the resolution cancels the
// strike with no charge.
func TestArtillery_ShortfallAtResolutionCancels(t *testing.T) {
	s := newTestSim(t, WithAI())
	s.state.Resources[TeamBlue] = 55

	s.Enqueue(TriggerArtillery())
	s.Tick()
	if !s.state.Artillery[TeamBlue].Pending() {
		t.Fatal("expected pending after trigger")
	}

	s.state.Resources[TeamBlue] = 10
	s.Enqueue(ConfirmArtillery(Point{X: 600, Y: 230}))
	snap := s.Tick()
	dumpLog(t, s)

	if snap.Resources[TeamBlue] != 10 {
		t.Fatalf("resources=%d, want 10 (no deduction)", snap.Resources[TeamBlue])
	}
	checkResourcesNonNegative(t, snap)
	if snap.Artillery[TeamBlue].Stage != ArtilleryIdle {
		t.Fatalf("strike still %s after shortfall", snap.Artillery[TeamBlue].Stage)
	}
	if !s.Log().HasEntry("artillery", "cancelled", "insufficient funds") {
		t.Fatal("expected an artillery cancelled entry")
	}
	if got := s.Counters()[TeamBlue].ArtilleryCancelled; got != 1 {
		t.Fatalf("ArtilleryCancelled=%d, want 1", got)
	}
}

func TestArtillery_TriggerRejectedWhenBroke(t *testing.T) {
	s := newTestSim(t, WithAI())
	s.state.Resources[TeamBlue] = 30

	s.Enqueue(TriggerArtillery())
	snap := s.Tick()

	if snap.Artillery[TeamBlue].Stage != ArtilleryIdle {
		t.Fatal("trigger should be rejected without funds")
	}
	if !s.Log().HasEntry("artillery", "rejected", rejectFunds) {
		t.Fatal("expected insufficient_funds rejection")
	}
}

func TestArtillery_CooldownBlocksRetrigger(t *testing.T) {
	s := newTestSim(t, WithAI())
	s.state.Resources[TeamBlue] = 200

	s.Enqueue(TriggerArtillery())
	s.Enqueue(ConfirmArtillery(Point{X: 900, Y: 115}))
	s.Tick()

	s.Enqueue(TriggerArtillery())
	snap := s.Tick()
	if snap.Artillery[TeamBlue].Stage != ArtilleryIdle {
		t.Fatal("retrigger during cooldown should be rejected")
	}
	if !s.Log().HasEntry("artillery", "rejected", "cooldown") {
		t.Fatal("expected cooldown rejection")
	}
}

func TestArtillery_CancelReturnsToIdle(t *testing.T) {
	s := newTestSim(t, WithAI())
	s.state.Resources[TeamBlue] = 100

	s.Enqueue(TriggerArtillery())
	s.Tick()
	s.Enqueue(CancelArtillery())
	snap := s.Tick()

	if snap.Artillery[TeamBlue].Stage != ArtilleryIdle {
		t.Fatal("cancel should return to idle")
	}
	if snap.Artillery[TeamBlue].Cooldown != 0 {
		t.Fatal("cancel must not start the cooldown")
	}
	if snap.Resources[TeamBlue] != 100 {
		t.Fatalf("cancel must not charge: resources=%d", snap.Resources[TeamBlue])
	}
}

func TestArtillery_ConfirmWithoutTriggerRejected(t *testing.T) {
	s := newTestSim(t, WithAI())
	s.Enqueue(ConfirmArtillery(Point{X: 900, Y: 115}))
	s.Tick()
	if !s.Log().HasEntry("artillery", "rejected", "not_pending") {
		t.Fatal("expected not_pending rejection")
	}
}
