package sim

// accrue pays income to both teams on every IncomeInterval-th frame.
func (gs *GameState) accrue(t Tuning) bool {
	if t.IncomeInterval <= 0 || gs.Frame%t.IncomeInterval != 0 {
		return false
	}
	for _, team := range Teams {
		gs.Resources[team] += t.IncomeAmount
	}
	return true
}

// TrySpend deducts cost from team only if the live balance covers it. The
// read and the write happen together; nothing can spend in between.
func (gs *GameState) TrySpend(team Team, cost int) bool {
	if cost < 0 || gs.Resources[team] < cost {
		return false
	}
	gs.Resources[team] -= cost
	return true
}

// CanAfford reports whether team's live balance covers cost. It is advisory
// only; commits must go through TrySpend.
func (gs *GameState) CanAfford(team Team, cost int) bool {
	return gs.Resources[team] >= cost
}
