package sim

// UnitView is a read-only copy of one unit.
type UnitView struct {
	ID     int64
	Label  string
	Team   Team
	Type   UnitType
	Lane   Lane
	X, Y   float64
	HP     float64
	MaxHP  float64
	Health float64 // fraction in [0,1]
}

// ArtilleryView is the read-only strike state of one team.
type ArtilleryView struct {
	Stage    ArtilleryStage
	Cooldown int
	Cost     int
	Target   Point
	Targeted bool
}

// Snapshot is the state published after every tick. It shares no memory with
// the simulation.
type Snapshot struct {
	Frame     int
	Outcome   Outcome
	Resources [teamCount]int
	Units     []UnitView // living units, spawn order
	Fallen    []UnitView // dead units still lingering
	ScrollX   float64
	Frontline [laneCount]float64
	SupplyCap [teamCount]int
	Artillery [teamCount]ArtilleryView
	Selected  UnitType
	Player    Team
	Events    []SimLogEntry // entries recorded during this tick
}

// GameOver reports whether the match has been decided.
func (s Snapshot) GameOver() bool { return s.Outcome.Over() }

// LiveCount returns the number of living units on team.
func (s Snapshot) LiveCount(team Team) int {
	n := 0
	for _, u := range s.Units {
		if u.Team == team {
			n++
		}
	}
	return n
}

// Observer receives every published snapshot. Implementations must treat the
// snapshot as read-only and must not call back into the Sim.
type Observer interface {
	OnSnapshot(Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Snapshot)

func (f ObserverFunc) OnSnapshot(s Snapshot) { f(s) }

func viewOf(u *Unit) UnitView {
	return UnitView{
		ID:     u.ID,
		Label:  u.Label(),
		Team:   u.Team,
		Type:   u.Type,
		Lane:   u.Lane,
		X:      u.X,
		Y:      u.Y,
		HP:     u.HP,
		MaxHP:  u.MaxHP,
		Health: u.HealthFraction(),
	}
}

func (s *Sim) snapshot(events []SimLogEntry) Snapshot {
	gs := s.state
	snap := Snapshot{
		Frame:     gs.Frame,
		Outcome:   gs.Outcome,
		Resources: gs.Resources,
		ScrollX:   gs.ScrollX,
		Frontline: gs.Frontline,
		SupplyCap: gs.SupplyCap,
		Selected:  gs.Selected,
		Player:    s.player,
		Units:     make([]UnitView, 0, len(gs.Units)),
	}
	for _, u := range gs.Units {
		if u.Alive() {
			snap.Units = append(snap.Units, viewOf(u))
		} else {
			snap.Fallen = append(snap.Fallen, viewOf(u))
		}
	}
	for _, team := range Teams {
		a := gs.Artillery[team]
		snap.Artillery[team] = ArtilleryView{
			Stage:    a.Stage,
			Cooldown: a.Cooldown,
			Cost:     s.tuning.Artillery.Cost,
			Target:   a.Target,
			Targeted: a.Targeted,
		}
	}
	if len(events) > 0 {
		snap.Events = append([]SimLogEntry(nil), events...)
	}
	return snap
}
