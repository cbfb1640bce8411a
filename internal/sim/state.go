package sim

// Point is a world-space coordinate.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned world-space rectangle, inclusive on every edge.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}

// Center returns the middle of r.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// AIState holds the two decoupled AI countdowns for one team.
type AIState struct {
	DeployCooldown int // ticks until the next deploy decision
	ArtilleryTimer int // ticks since the last artillery decision
}

// GameState is the whole mutable world. Only Sim.Tick writes to it.
type GameState struct {
	Frame     int
	Resources [teamCount]int
	Units     []*Unit // spawn order
	ScrollX   float64
	Frontline [laneCount]float64
	SupplyCap [teamCount]int
	Artillery [teamCount]ArtilleryState
	AI        [teamCount]AIState
	Selected  UnitType
	Outcome   Outcome

	nextID int64
}

func newGameState(t Tuning) *GameState {
	gs := &GameState{Selected: Infantry}
	for _, team := range Teams {
		gs.Resources[team] = t.StartingResources
		gs.AI[team].DeployCooldown = t.AI.FirstDeployDelay
	}
	for _, l := range Lanes {
		gs.Frontline[l] = t.WorldWidth / 2
	}
	gs.SupplyCap = supplyCaps(t, gs.Frontline)
	return gs
}

// spawn constructs a unit from the stats table and appends it. Placement and
// cost must already have been validated by the caller.
func (gs *GameState) spawn(t Tuning, team Team, ut UnitType, x, y float64) *Unit {
	gs.nextID++
	stats := t.Units.Stats(ut)
	u := &Unit{
		ID:    gs.nextID,
		Team:  team,
		Type:  ut,
		Lane:  laneAt(t.Lanes, y),
		X:     x,
		Y:     y,
		HP:    stats.MaxHealth,
		MaxHP: stats.MaxHealth,
	}
	gs.Units = append(gs.Units, u)
	return u
}

// LiveCount returns the number of living units on team. Dead units awaiting
// the sweep are not counted.
func (gs *GameState) LiveCount(team Team) int {
	n := 0
	for _, u := range gs.Units {
		if u.Alive() && u.Team == team {
			n++
		}
	}
	return n
}

// LiveTotal returns the number of living units on both teams.
func (gs *GameState) LiveTotal() int {
	n := 0
	for _, u := range gs.Units {
		if u.Alive() {
			n++
		}
	}
	return n
}

// scroll moves the camera by delta, clamped to [0, world-viewport].
func (gs *GameState) scroll(t Tuning, delta float64) {
	gs.ScrollX += delta
	maxX := t.WorldWidth - t.ViewportWidth
	if gs.ScrollX > maxX {
		gs.ScrollX = maxX
	}
	if gs.ScrollX < 0 {
		gs.ScrollX = 0
	}
}
