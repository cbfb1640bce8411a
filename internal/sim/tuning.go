package sim

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds every numeric knob of the simulation. All durations are in
// ticks; all distances are in world units.
type Tuning struct {
	WorldWidth     float64 `yaml:"world_width"`
	WorldHeight    float64 `yaml:"world_height"`
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`
	ScrollSpeed    float64 `yaml:"scroll_speed"`

	Lanes      [laneCount]LaneBand `yaml:"lanes"`
	BaseMargin float64             `yaml:"base_margin"`
	ZoneDepth  float64             `yaml:"zone_depth"`

	StartingResources int `yaml:"starting_resources"`
	IncomeInterval    int `yaml:"income_interval"`
	IncomeAmount      int `yaml:"income_amount"`

	UnitCap          int       `yaml:"unit_cap"`
	EngageRadius     float64   `yaml:"engage_radius"`
	DeathLingerTicks int       `yaml:"death_linger_ticks"`
	Units            UnitTable `yaml:"units"`

	Artillery ArtilleryTuning `yaml:"artillery"`
	AI        AITuning        `yaml:"ai"`
	Supply    SupplyTuning    `yaml:"supply"`
}

// LaneBand is the vertical extent of one lane.
type LaneBand struct {
	Y1 float64 `yaml:"y1"`
	Y2 float64 `yaml:"y2"`
}

// Center returns the lane's vertical midpoint.
func (b LaneBand) Center() float64 { return (b.Y1 + b.Y2) / 2 }

type ArtilleryTuning struct {
	Cost          int     `yaml:"cost"`
	CooldownTicks int     `yaml:"cooldown_ticks"`
	Radius        float64 `yaml:"radius"`
	Damage        float64 `yaml:"damage"`
}

type AITuning struct {
	FirstDeployDelay   int                  `yaml:"first_deploy_delay"`
	DeployInterval     int                  `yaml:"deploy_interval"`
	ArtilleryThreshold int                  `yaml:"artillery_threshold"`
	MinClusterSize     int                  `yaml:"min_cluster_size"`
	TargetRange        float64              `yaml:"target_range"`
	TypeWeights        map[UnitType]float64 `yaml:"type_weights"`
}

// SupplyTuning shapes SupplyCap = Base + round(PerTerritory * territory).
type SupplyTuning struct {
	Base         int     `yaml:"base"`
	PerTerritory float64 `yaml:"per_territory"`
}

// UnitStats is the immutable stat record for one unit type.
type UnitStats struct {
	Speed          float64 `yaml:"speed"` // world units per tick
	MaxHealth      float64 `yaml:"max_health"`
	Damage         float64 `yaml:"damage"`
	Cost           int     `yaml:"cost"`
	AttackInterval int     `yaml:"attack_interval"`
}

// UnitTable maps every UnitType to its stats. In YAML it is a mapping keyed by
// type name.
type UnitTable [unitTypeCount]UnitStats

// Stats returns the record for t.
func (ut *UnitTable) Stats(t UnitType) UnitStats { return ut[t] }

func (ut UnitTable) MarshalYAML() (any, error) {
	out := make(map[string]UnitStats, unitTypeCount)
	for t := UnitType(0); t < unitTypeCount; t++ {
		out[t.String()] = ut[t]
	}
	return out, nil
}

// UnmarshalYAML decodes each entry over the existing record so a file may
// override a single field of one unit type.
func (ut *UnitTable) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: units must be a mapping", value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, body := value.Content[i], value.Content[i+1]
		t, err := ParseUnitType(key.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", key.Line, err)
		}
		stats := ut[t]
		if err := body.Decode(&stats); err != nil {
			return err
		}
		ut[t] = stats
	}
	return nil
}

// DefaultTuning returns the stock configuration. assets/tuning.yaml mirrors it.
func DefaultTuning() Tuning {
	return Tuning{
		WorldWidth:     1800,
		WorldHeight:    460,
		ViewportWidth:  900,
		ViewportHeight: 460,
		ScrollSpeed:    8,
		Lanes: [laneCount]LaneBand{
			LaneTop:    {Y1: 60, Y2: 170},
			LaneMid:    {Y1: 175, Y2: 285},
			LaneBottom: {Y1: 290, Y2: 400},
		},
		BaseMargin:        20,
		ZoneDepth:         200,
		StartingResources: 80,
		IncomeInterval:    10,
		IncomeAmount:      1,
		UnitCap:           100,
		EngageRadius:      40,
		DeathLingerTicks:  30,
		Units: UnitTable{
			Infantry:   {Speed: 0.6, MaxHealth: 100, Damage: 10, Cost: 20, AttackInterval: 30},
			MachineGun: {Speed: 0.4, MaxHealth: 120, Damage: 6, Cost: 35, AttackInterval: 10},
			Tank:       {Speed: 0.3, MaxHealth: 400, Damage: 40, Cost: 80, AttackInterval: 60},
		},
		Artillery: ArtilleryTuning{
			Cost:          50,
			CooldownTicks: 600,
			Radius:        60,
			Damage:        60,
		},
		AI: AITuning{
			FirstDeployDelay:   60,
			DeployInterval:     150,
			ArtilleryThreshold: 600,
			MinClusterSize:     3,
			TargetRange:        1800,
			TypeWeights: map[UnitType]float64{
				Infantry:   5,
				MachineGun: 3,
				Tank:       1,
			},
		},
		Supply: SupplyTuning{
			Base:         20,
			PerTerritory: 60,
		},
	}
}

// LoadTuning reads a YAML tuning file. Fields missing from the file keep their
// DefaultTuning values.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	b, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(b, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// MarshalTuning renders t as YAML.
func MarshalTuning(t Tuning) ([]byte, error) {
	return yaml.Marshal(t)
}

// Validate reports every inconsistent value in t.
func (t Tuning) Validate() error {
	var errs []error
	if t.WorldWidth <= 0 || t.WorldHeight <= 0 {
		errs = append(errs, errors.New("world dimensions must be positive"))
	}
	if t.ViewportWidth <= 0 || t.ViewportWidth > t.WorldWidth {
		errs = append(errs, fmt.Errorf("viewport width %.0f must be in (0, %.0f]", t.ViewportWidth, t.WorldWidth))
	}
	for l := Lane(0); l < laneCount; l++ {
		b := t.Lanes[l]
		if b.Y2 <= b.Y1 || b.Y1 < 0 || b.Y2 > t.WorldHeight {
			errs = append(errs, fmt.Errorf("lane %s band [%.0f,%.0f] is invalid", l, b.Y1, b.Y2))
		}
	}
	if t.ZoneDepth <= 0 || 2*(t.BaseMargin+t.ZoneDepth) > t.WorldWidth {
		errs = append(errs, errors.New("deploy zones must be non-empty and must not overlap"))
	}
	if t.StartingResources < 0 {
		errs = append(errs, errors.New("starting_resources must not be negative"))
	}
	if t.IncomeInterval <= 0 || t.IncomeAmount < 0 {
		errs = append(errs, errors.New("income_interval must be positive and income_amount non-negative"))
	}
	if t.UnitCap <= 0 {
		errs = append(errs, errors.New("unit_cap must be positive"))
	}
	if t.EngageRadius <= 0 {
		errs = append(errs, fmt.Errorf("engage_radius %.0f must be positive", t.EngageRadius))
	}
	for ut := UnitType(0); ut < unitTypeCount; ut++ {
		s := t.Units[ut]
		if s.MaxHealth <= 0 || s.Cost <= 0 || s.AttackInterval <= 0 || s.Speed < 0 {
			errs = append(errs, fmt.Errorf("unit %s has invalid stats %+v", ut, s))
		}
	}
	if t.Artillery.Cost <= 0 || t.Artillery.Radius <= 0 || t.Artillery.CooldownTicks < 0 {
		errs = append(errs, errors.New("artillery cost and radius must be positive"))
	}
	if t.AI.DeployInterval <= 0 || t.AI.MinClusterSize <= 0 {
		errs = append(errs, errors.New("ai deploy_interval and min_cluster_size must be positive"))
	}
	if t.AI.FirstDeployDelay < 0 || t.AI.ArtilleryThreshold < 0 || t.AI.TargetRange < 0 {
		errs = append(errs, errors.New("ai first_deploy_delay, artillery_threshold and target_range must not be negative"))
	}
	if t.Supply.Base < 0 || t.Supply.PerTerritory < 0 {
		errs = append(errs, errors.New("supply coefficients must not be negative"))
	}
	return errors.Join(errs...)
}
