package sim

import (
	"fmt"
	"sort"
)

// sweepDead drops dead units whose linger time has elapsed.
func (s *Sim) sweepDead() {
	gs := s.state
	kept := gs.Units[:0]
	for _, u := range gs.Units {
		if u.Dead && u.deadTicks >= s.tuning.DeathLingerTicks {
			continue
		}
		kept = append(kept, u)
	}
	clearTail(gs.Units, len(kept))
	gs.Units = kept
}

// enforceUnitCap evicts living units until at most cap remain. Units are
// ranked by health fraction, lowest first; among equals the earliest spawned
// goes first. Survivors keep their spawn order.
func (s *Sim) enforceUnitCap() {
	gs := s.state
	limit := s.tuning.UnitCap
	live := make([]*Unit, 0, len(gs.Units))
	for _, u := range gs.Units {
		if u.Alive() {
			live = append(live, u)
		}
	}
	excess := len(live) - limit
	if excess <= 0 {
		return
	}

	sort.SliceStable(live, func(i, j int) bool {
		return live[i].HealthFraction() < live[j].HealthFraction()
	})
	evicted := make(map[*Unit]bool, excess)
	for _, u := range live[:excess] {
		evicted[u] = true
		s.counters[u.Team].Evicted++
		s.recordEviction(u)
		s.log.Add(gs.Frame, u.Label(), u.Team.String(), "cap", "evict",
			fmt.Sprintf("hp %.0f%%", u.HealthFraction()*100), u.HealthFraction())
	}

	kept := gs.Units[:0]
	for _, u := range gs.Units {
		if !evicted[u] {
			kept = append(kept, u)
		}
	}
	clearTail(gs.Units, len(kept))
	gs.Units = kept
}

// clearTail nils out the abandoned tail of an in-place filtered slice so the
// dropped units can be collected.
func clearTail(units []*Unit, from int) {
	for i := from; i < len(units); i++ {
		units[i] = nil
	}
}
