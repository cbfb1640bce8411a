package sim

import (
	"fmt"
	"strings"
)

// Team distinguishes the two sides. Blue is the human side by default.
type Team int

const (
	TeamBlue Team = iota // advances toward +x
	TeamRed              // advances toward -x
	teamCount

	// TeamNone marks the absence of a team, e.g. a Sim with no human player.
	TeamNone Team = -1
)

// Teams lists both sides in a fixed order.
var Teams = [teamCount]Team{TeamBlue, TeamRed}

func (t Team) String() string {
	switch t {
	case TeamBlue:
		return "blue"
	case TeamRed:
		return "red"
	default:
		return "unknown"
	}
}

func (t Team) valid() bool { return t >= 0 && t < teamCount }

// Opponent returns the other side.
func (t Team) Opponent() Team {
	if t == TeamBlue {
		return TeamRed
	}
	return TeamBlue
}

// Direction is the sign of x-velocity for the team's units.
func (t Team) Direction() float64 {
	if t == TeamBlue {
		return 1
	}
	return -1
}

// Lane is one of the three horizontal corridors.
type Lane int

const (
	LaneTop Lane = iota
	LaneMid
	LaneBottom
	laneCount
)

// Lanes lists every lane top to bottom.
var Lanes = [laneCount]Lane{LaneTop, LaneMid, LaneBottom}

func (l Lane) String() string {
	switch l {
	case LaneTop:
		return "top"
	case LaneMid:
		return "mid"
	case LaneBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// UnitType selects a stat record. The set is closed.
type UnitType int

const (
	Infantry UnitType = iota
	MachineGun
	Tank
	unitTypeCount
)

// UnitTypes lists every unit type in hotkey order.
var UnitTypes = [unitTypeCount]UnitType{Infantry, MachineGun, Tank}

func (ut UnitType) String() string {
	switch ut {
	case Infantry:
		return "infantry"
	case MachineGun:
		return "machinegun"
	case Tank:
		return "tank"
	default:
		return "unknown"
	}
}

// ParseUnitType is the inverse of UnitType.String.
func ParseUnitType(s string) (UnitType, error) {
	for _, ut := range UnitTypes {
		if strings.EqualFold(s, ut.String()) {
			return ut, nil
		}
	}
	return 0, fmt.Errorf("unknown unit type %q", s)
}

func (ut UnitType) MarshalText() ([]byte, error) { return []byte(ut.String()), nil }

func (ut *UnitType) UnmarshalText(b []byte) error {
	v, err := ParseUnitType(string(b))
	if err != nil {
		return err
	}
	*ut = v
	return nil
}

// Unit is one combatant on the field.
type Unit struct {
	ID    int64
	Team  Team
	Type  UnitType
	Lane  Lane
	X, Y  float64
	HP    float64
	MaxHP float64
	Dead  bool
	Age   int // ticks since spawn

	cooldown  int // ticks until the next attack
	deadTicks int // ticks since death
}

// Label is a short display tag, e.g. "B12" or "R3".
func (u *Unit) Label() string {
	if u.Team == TeamBlue {
		return fmt.Sprintf("B%d", u.ID)
	}
	return fmt.Sprintf("R%d", u.ID)
}

// HealthFraction is current over max health, in [0,1].
func (u *Unit) HealthFraction() float64 {
	if u.MaxHP <= 0 {
		return 0
	}
	return clamp01(u.HP / u.MaxHP)
}

// Alive reports whether the unit can still move, fight and be targeted.
func (u *Unit) Alive() bool { return !u.Dead }

// takeDamage applies dmg and flips the unit to dead when health is spent.
func (u *Unit) takeDamage(dmg float64) bool {
	if u.Dead {
		return false
	}
	u.HP -= dmg
	if u.HP <= 0 {
		u.HP = 0
		u.Dead = true
		return true
	}
	return false
}

// advance returns the x the unit reaches after dt ticks at speed. It does not
// mutate the unit.
func (u *Unit) advance(speed, dt, worldWidth float64) float64 {
	x := u.X + u.Team.Direction()*speed*dt
	if x < 0 {
		return 0
	}
	if x > worldWidth {
		return worldWidth
	}
	return x
}

// laneAt returns the lane whose band holds y, or the nearest band.
func laneAt(bands [laneCount]LaneBand, y float64) Lane {
	best := LaneTop
	bestDist := -1.0
	for _, l := range Lanes {
		b := bands[l]
		if y >= b.Y1 && y <= b.Y2 {
			return l
		}
		d := b.Y1 - y
		if y > b.Y2 {
			d = y - b.Y2
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = l, d
		}
	}
	return best
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
