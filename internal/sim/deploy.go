package sim

import "fmt"

// Deploy rejection reasons, as recorded in the log.
const (
	rejectOutOfZone = "out_of_zone"
	rejectSupply    = "supply_cap"
	rejectFunds     = "insufficient_funds"
	rejectGameOver  = "game_over"
)

// deployZones returns team's placement rectangle for every lane. Blue's zones
// hug the left edge and red's mirror them on the right.
func deployZones(t Tuning, team Team) [laneCount]Rect {
	var zones [laneCount]Rect
	x1 := t.BaseMargin
	x2 := t.BaseMargin + t.ZoneDepth
	if team == TeamRed {
		x1 = t.WorldWidth - t.BaseMargin - t.ZoneDepth
		x2 = t.WorldWidth - t.BaseMargin
	}
	for _, l := range Lanes {
		b := t.Lanes[l]
		zones[l] = Rect{X1: x1, Y1: b.Y1, X2: x2, Y2: b.Y2}
	}
	return zones
}

// zoneLaneAt returns the lane whose zone for team contains p.
func zoneLaneAt(t Tuning, team Team, p Point) (Lane, bool) {
	zones := deployZones(t, team)
	for _, l := range Lanes {
		if zones[l].Contains(p) {
			return l, true
		}
	}
	return 0, false
}

// deploy validates and applies one placement intent. Every failure leaves the
// state untouched.
func (s *Sim) deploy(team Team, ut UnitType, p Point) {
	gs := s.state
	if gs.Outcome.Over() {
		s.reject("deploy", team, rejectGameOver)
		return
	}
	lane, ok := zoneLaneAt(s.tuning, team, p)
	if !ok {
		s.reject("deploy", team, rejectOutOfZone)
		return
	}
	if gs.LiveCount(team) >= gs.SupplyCap[team] {
		s.reject("deploy", team, rejectSupply)
		return
	}
	cost := s.tuning.Units.Stats(ut).Cost
	if !gs.TrySpend(team, cost) {
		s.reject("deploy", team, rejectFunds)
		return
	}
	u := gs.spawn(s.tuning, team, ut, p.X, p.Y)
	s.counters[team].Deployed++
	s.rec(u)
	s.log.Add(gs.Frame, u.Label(), team.String(), "deploy", "spawn",
		fmt.Sprintf("%s in %s lane at (%.0f,%.0f) for %d", ut, lane, p.X, p.Y, cost), float64(cost))
}

func (s *Sim) reject(category string, team Team, reason string) {
	s.log.Add(s.state.Frame, "--", team.String(), category, "rejected", reason, 0)
}
