package sim

import "math"

// hit is one attack chosen from the pre-damage state.
type hit struct {
	attacker *Unit
	target   *Unit
	damage   float64
}

// nearestOpponent returns the closest living enemy of u in u's lane within
// radius. Ties go to the lowest ID.
func (gs *GameState) nearestOpponent(u *Unit, radius float64) *Unit {
	var best *Unit
	bestDist := math.MaxFloat64
	for _, o := range gs.Units {
		if !o.Alive() || o.Team == u.Team || o.Lane != u.Lane {
			continue
		}
		d := math.Abs(o.X - u.X)
		if d > radius {
			continue
		}
		if d < bestDist || (d == bestDist && o.ID < best.ID) {
			best, bestDist = o, d
		}
	}
	return best
}

// resolveCombat selects every attack first and applies them together, so a
// unit killed this tick still lands the blow it had already chosen.
func (s *Sim) resolveCombat() {
	gs := s.state
	var hits []hit
	for _, u := range gs.Units {
		if !u.Alive() {
			continue
		}
		if u.cooldown > 0 {
			u.cooldown--
			continue
		}
		target := gs.nearestOpponent(u, s.tuning.EngageRadius)
		if target == nil {
			continue
		}
		stats := s.tuning.Units.Stats(u.Type)
		hits = append(hits, hit{attacker: u, target: target, damage: stats.Damage})
		u.cooldown = stats.AttackInterval - 1
	}

	for _, h := range hits {
		dealt := math.Min(h.damage, h.target.HP)
		killed := h.target.takeDamage(h.damage)
		s.recordDamage(h.attacker, h.target, dealt, killed)
		if killed {
			s.counters[h.target.Team].Lost++
			s.log.Add(gs.Frame, h.target.Label(), h.target.Team.String(), "combat", "death",
				"killed by "+h.attacker.Label(), 0)
		}
	}
}

// moveUnits advances every living unit that has no enemy in engagement range.
func (s *Sim) moveUnits() {
	gs := s.state
	for _, u := range gs.Units {
		if !u.Alive() {
			u.deadTicks++
			continue
		}
		u.Age++
		r := s.rec(u)
		if gs.nearestOpponent(u, s.tuning.EngageRadius) != nil {
			r.TicksEngaged++
			continue
		}
		speed := s.tuning.Units.Stats(u.Type).Speed
		u.X = u.advance(speed, 1, s.tuning.WorldWidth)
		r.lastX = u.X
		s.log.AddVerbose(gs.Frame, u.Label(), u.Team.String(), "move", "position", formatPos(u.X, u.Y), u.X)
	}
}
