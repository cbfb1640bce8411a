package sim

import (
	"fmt"
	"math"
)

// mostAdvanced returns the furthest x reached by team's living units in lane.
func (gs *GameState) mostAdvanced(team Team, lane Lane) (float64, bool) {
	found := false
	best := 0.0
	for _, u := range gs.Units {
		if !u.Alive() || u.Team != team || u.Lane != lane {
			continue
		}
		if !found || u.X*team.Direction() > best*team.Direction() {
			best = u.X
			found = true
		}
	}
	return best, found
}

// updateFrontline recomputes the contested position of every lane and the
// supply caps derived from it. A lane with no living units keeps its line.
func (s *Sim) updateFrontline() {
	gs := s.state
	for _, l := range Lanes {
		blueX, blueOK := gs.mostAdvanced(TeamBlue, l)
		redX, redOK := gs.mostAdvanced(TeamRed, l)
		prev := gs.Frontline[l]
		switch {
		case blueOK && redOK:
			gs.Frontline[l] = (blueX + redX) / 2
		case blueOK:
			gs.Frontline[l] = blueX
		case redOK:
			gs.Frontline[l] = redX
		}
		if math.Abs(gs.Frontline[l]-prev) >= 1 {
			s.log.AddVerbose(gs.Frame, "--", "--", "frontline", "shift",
				fmt.Sprintf("%s %.0f → %.0f", l, prev, gs.Frontline[l]), gs.Frontline[l])
		}
	}

	caps := supplyCaps(s.tuning, gs.Frontline)
	for _, team := range Teams {
		if caps[team] != gs.SupplyCap[team] {
			s.log.Add(gs.Frame, "--", team.String(), "frontline", "supply",
				fmt.Sprintf("%d → %d", gs.SupplyCap[team], caps[team]), float64(caps[team]))
		}
	}
	gs.SupplyCap = caps
}

// territory returns the share of the field each team holds, by mean frontline.
func territory(t Tuning, frontline [laneCount]float64) [teamCount]float64 {
	sum := 0.0
	for _, x := range frontline {
		sum += x
	}
	blue := clamp01(sum / float64(laneCount) / t.WorldWidth)
	return [teamCount]float64{TeamBlue: blue, TeamRed: 1 - blue}
}

// supplyCaps is monotone in territory: losing ground lowers a team's cap.
func supplyCaps(t Tuning, frontline [laneCount]float64) [teamCount]int {
	share := territory(t, frontline)
	var caps [teamCount]int
	for _, team := range Teams {
		caps[team] = t.Supply.Base + int(math.Round(t.Supply.PerTerritory*share[team]))
	}
	return caps
}
