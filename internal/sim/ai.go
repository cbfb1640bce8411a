package sim

import (
	"fmt"
	"math"
	"math/rand"
)

// aiController drives one team. Its deploy and artillery countdowns are
// independent: a deploy cooldown never holds back a strike.
type aiController struct {
	team Team
	rng  *rand.Rand
}

func newAIController(team Team, seed int64) *aiController {
	return &aiController{
		team: team,
		rng:  rand.New(rand.NewSource(seed)), // #nosec G404 -- deterministic sim
	}
}

// think runs one decision pass. Deploy is decided first so the artillery check
// reads the balance left after any spawn.
func (ai *aiController) think(s *Sim) {
	gs := s.state
	if gs.Outcome.Over() {
		return
	}
	st := &gs.AI[ai.team]

	if st.DeployCooldown > 0 {
		st.DeployCooldown--
	}
	if st.DeployCooldown <= 0 {
		if in, ok := ai.planDeploy(s); ok {
			s.log.Add(gs.Frame, "--", ai.team.String(), "ai", "deploy", in.String(), 0)
			s.apply(in)
			st.DeployCooldown = s.tuning.AI.DeployInterval
		}
	}

	st.ArtilleryTimer++
	if st.ArtilleryTimer < s.tuning.AI.ArtilleryThreshold {
		return
	}
	a := gs.Artillery[ai.team]
	if a.Stage != ArtilleryIdle || a.Cooldown > 0 {
		return
	}
	if !gs.CanAfford(ai.team, s.tuning.Artillery.Cost) {
		return
	}
	target, size, ok := ai.findCluster(s)
	if !ok {
		return
	}
	s.log.Add(gs.Frame, "--", ai.team.String(), "ai", "artillery",
		fmt.Sprintf("cluster of %d at (%.0f,%.0f)", size, target.X, target.Y), float64(size))
	s.apply(Intent{Kind: IntentTriggerArtillery, Team: ai.team})
	s.apply(Intent{Kind: IntentConfirmArtillery, Team: ai.team, Point: target})
	st.ArtilleryTimer = 0
}

// planDeploy picks an affordable unit type and the lane where the frontline
// is pressed furthest toward this team's base.
func (ai *aiController) planDeploy(s *Sim) (Intent, bool) {
	gs := s.state
	if gs.LiveCount(ai.team) >= gs.SupplyCap[ai.team] {
		return Intent{}, false
	}
	ut, ok := ai.pickType(s)
	if !ok {
		return Intent{}, false
	}

	lane := LaneTop
	worst := math.Inf(-1)
	for _, l := range Lanes {
		// Larger is worse for us: the line sits closer to our own base.
		pressure := -ai.team.Direction() * gs.Frontline[l]
		if pressure > worst {
			lane, worst = l, pressure
		}
	}

	zone := deployZones(s.tuning, ai.team)[lane]
	p := Point{
		X: zone.X1 + ai.rng.Float64()*(zone.X2-zone.X1),
		Y: zone.Y1 + ai.rng.Float64()*(zone.Y2-zone.Y1),
	}
	return DeployTypeAt(ai.team, ut, p), true
}

// pickType draws an affordable unit type weighted by the tuning table.
func (ai *aiController) pickType(s *Sim) (UnitType, bool) {
	gs := s.state
	total := 0.0
	var candidates []UnitType
	for _, ut := range UnitTypes {
		w := s.tuning.AI.TypeWeights[ut]
		if w <= 0 || !gs.CanAfford(ai.team, s.tuning.Units.Stats(ut).Cost) {
			continue
		}
		candidates = append(candidates, ut)
		total += w
	}
	if len(candidates) == 0 {
		return 0, false
	}
	roll := ai.rng.Float64() * total
	for _, ut := range candidates {
		roll -= s.tuning.AI.TypeWeights[ut]
		if roll < 0 {
			return ut, true
		}
	}
	return candidates[len(candidates)-1], true
}

// findCluster returns the centroid of the densest group of living enemies
// within the strike radius of a seed unit in targeting range.
func (ai *aiController) findCluster(s *Sim) (Point, int, bool) {
	gs := s.state
	enemy := ai.team.Opponent()
	radius := s.tuning.Artillery.Radius
	base := 0.0
	if ai.team == TeamRed {
		base = s.tuning.WorldWidth
	}

	var bestGroup []*Unit
	var bestSeed *Unit
	for _, seed := range gs.Units {
		if !seed.Alive() || seed.Team != enemy {
			continue
		}
		if math.Abs(seed.X-base) > s.tuning.AI.TargetRange {
			continue
		}
		var group []*Unit
		for _, u := range gs.Units {
			if u.Alive() && u.Team == enemy && math.Hypot(u.X-seed.X, u.Y-seed.Y) <= radius {
				group = append(group, u)
			}
		}
		if len(group) > len(bestGroup) || (len(group) == len(bestGroup) && bestSeed != nil && seed.ID < bestSeed.ID) {
			bestGroup, bestSeed = group, seed
		}
	}
	if len(bestGroup) < s.tuning.AI.MinClusterSize {
		return Point{}, 0, false
	}
	var c Point
	for _, u := range bestGroup {
		c.X += u.X
		c.Y += u.Y
	}
	n := float64(len(bestGroup))
	return Point{X: c.X / n, Y: c.Y / n}, len(bestGroup), true
}
