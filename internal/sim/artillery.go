package sim

import (
	"fmt"
	"math"
)

// ArtilleryStage is the per-team strike state.
type ArtilleryStage int

const (
	ArtilleryIdle    ArtilleryStage = iota // ready, or cooling down
	ArtilleryPending                       // triggered, nothing charged yet
)

func (st ArtilleryStage) String() string {
	switch st {
	case ArtilleryIdle:
		return "idle"
	case ArtilleryPending:
		return "pending"
	default:
		return "unknown"
	}
}

// ArtilleryState is one team's strike state machine. Cost is committed at
// resolution, never at trigger.
type ArtilleryState struct {
	Stage    ArtilleryStage
	Cooldown int   // ticks until a new trigger is accepted
	Target   Point // committed target, valid when Targeted
	Targeted bool
}

// Pending reports whether a strike is waiting for confirmation or resolution.
func (a ArtilleryState) Pending() bool { return a.Stage == ArtilleryPending }

// triggerArtillery moves team from Idle to Pending. It charges nothing.
func (s *Sim) triggerArtillery(team Team) {
	gs := s.state
	a := &gs.Artillery[team]
	switch {
	case gs.Outcome.Over():
		s.reject("artillery", team, rejectGameOver)
	case a.Stage != ArtilleryIdle:
		s.reject("artillery", team, "already_pending")
	case a.Cooldown > 0:
		s.reject("artillery", team, "cooldown")
	case !gs.CanAfford(team, s.tuning.Artillery.Cost):
		s.reject("artillery", team, rejectFunds)
	default:
		a.Stage = ArtilleryPending
		a.Targeted = false
		s.log.Add(gs.Frame, "--", team.String(), "artillery", "trigger", "awaiting target", 0)
	}
}

// confirmArtillery commits the target of a pending strike. Resolution happens
// in the artillery phase of the same tick.
func (s *Sim) confirmArtillery(team Team, p Point) {
	a := &s.state.Artillery[team]
	if a.Stage != ArtilleryPending {
		s.reject("artillery", team, "not_pending")
		return
	}
	a.Target = p
	a.Targeted = true
	s.log.Add(s.state.Frame, "--", team.String(), "artillery", "target",
		fmt.Sprintf("(%.0f,%.0f)", p.X, p.Y), 0)
}

// cancelArtillery drops a pending strike without charging.
func (s *Sim) cancelArtillery(team Team) {
	a := &s.state.Artillery[team]
	if a.Stage != ArtilleryPending {
		return
	}
	*a = ArtilleryState{Cooldown: a.Cooldown}
	s.log.Add(s.state.Frame, "--", team.String(), "artillery", "cancelled", "withdrawn", 0)
}

// resolveArtillery ticks cooldowns and resolves every targeted strike. The
// balance is re-read here: a shortfall cancels the strike with no charge and
// no damage.
func (s *Sim) resolveArtillery() {
	gs := s.state
	at := s.tuning.Artillery
	for _, team := range Teams {
		a := &gs.Artillery[team]
		if a.Cooldown > 0 {
			a.Cooldown--
		}
		if a.Stage != ArtilleryPending || !a.Targeted {
			continue
		}
		target := a.Target
		if !gs.TrySpend(team, at.Cost) {
			*a = ArtilleryState{Cooldown: a.Cooldown}
			s.counters[team].ArtilleryCancelled++
			s.log.Add(gs.Frame, "--", team.String(), "artillery", "cancelled",
				fmt.Sprintf("insufficient funds (%d < %d)", gs.Resources[team], at.Cost), float64(gs.Resources[team]))
			continue
		}
		hits, kills := s.strike(team, target, at)
		*a = ArtilleryState{Cooldown: at.CooldownTicks}
		s.counters[team].ArtilleryFired++
		s.log.Add(gs.Frame, "--", team.String(), "artillery", "fired",
			fmt.Sprintf("(%.0f,%.0f) hit %d killed %d", target.X, target.Y, hits, kills), float64(hits))
	}
}

// strike applies area damage to team's opponents around p.
func (s *Sim) strike(team Team, p Point, at ArtilleryTuning) (hits, kills int) {
	enemy := team.Opponent()
	for _, u := range s.state.Units {
		if !u.Alive() || u.Team != enemy {
			continue
		}
		if math.Hypot(u.X-p.X, u.Y-p.Y) > at.Radius {
			continue
		}
		hits++
		dealt := math.Min(at.Damage, u.HP)
		killed := u.takeDamage(at.Damage)
		s.recordDamage(nil, u, dealt, killed)
		if killed {
			kills++
			s.counters[enemy].Lost++
			s.log.Add(s.state.Frame, u.Label(), enemy.String(), "combat", "death", "artillery", 0)
		}
	}
	return hits, kills
}
