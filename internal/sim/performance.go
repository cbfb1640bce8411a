package sim

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Fates of a unit record.
const (
	FateServing = "serving"
	FateKilled  = "killed"
	FateEvicted = "evicted"
)

// Grading thresholds.
const (
	perfFirepowerPerCost = 4.0  // damage per resource spent for a full firepower score
	perfFullService      = 1800 // ticks on the field for a full durability score
	perfKillerKills      = 3
	perfAnchorTicks      = 600
	perfSpearheadShare   = 0.4 // share of the field crossed
	perfIdleTicks        = 600
)

// UnitRecord accumulates one unit's service over a match.
type UnitRecord struct {
	ID    int64
	Label string
	Team  Team
	Type  UnitType

	SpawnTick int
	EndTick   int // -1 while serving
	Fate      string

	DamageDealt  float64
	DamageTaken  float64
	Kills        int
	TicksEngaged int

	spawnX, lastX float64
}

// Ticks is how long the unit served, up to frame for units still serving.
func (r *UnitRecord) Ticks(frame int) int {
	if r.EndTick >= 0 {
		return r.EndTick - r.SpawnTick
	}
	return frame - r.SpawnTick
}

// Advance is the ground the unit gained toward the enemy base.
func (r *UnitRecord) Advance() float64 {
	return (r.lastX - r.spawnX) * r.Team.Direction()
}

// rec returns u's record, opening one on first sight.
func (s *Sim) rec(u *Unit) *UnitRecord {
	r, ok := s.records[u.ID]
	if !ok {
		r = &UnitRecord{
			ID:        u.ID,
			Label:     u.Label(),
			Team:      u.Team,
			Type:      u.Type,
			SpawnTick: s.state.Frame,
			EndTick:   -1,
			Fate:      FateServing,
			spawnX:    u.X,
			lastX:     u.X,
		}
		s.records[u.ID] = r
	}
	return r
}

// recordDamage books dmg from attacker (nil for artillery) onto target.
func (s *Sim) recordDamage(attacker, target *Unit, dmg float64, killed bool) {
	tr := s.rec(target)
	tr.DamageTaken += dmg
	if killed {
		tr.Fate = FateKilled
		tr.EndTick = s.state.Frame
	}
	if attacker == nil {
		return
	}
	ar := s.rec(attacker)
	ar.DamageDealt += dmg
	if killed {
		ar.Kills++
	}
}

func (s *Sim) recordEviction(u *Unit) {
	r := s.rec(u)
	r.Fate = FateEvicted
	r.EndTick = s.state.Frame
}

// Records returns a copy of every unit record in spawn order.
func (s *Sim) Records() []UnitRecord {
	out := make([]UnitRecord, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Record returns the record of the unit with id.
func (s *Sim) Record(id int64) (UnitRecord, bool) {
	r, ok := s.records[id]
	if !ok {
		return UnitRecord{}, false
	}
	return *r, true
}

// UnitGrade is the end-of-match assessment of one unit.
type UnitGrade struct {
	Label string
	Team  Team
	Type  UnitType
	Fate  string
	Score float64 // 0-100
	Grade string

	FirepowerScore  float64
	DurabilityScore float64
	GroundScore     float64

	GoodTraits []string
	BadTraits  []string

	DamageDealt float64
	Kills       int
	Ticks       int
}

// GradeUnits grades every record as of frame. Grades are ordered by team,
// best first.
func GradeUnits(t Tuning, records []UnitRecord, frame int) []UnitGrade {
	grades := make([]UnitGrade, 0, len(records))
	for i := range records {
		grades = append(grades, computeGrade(t, &records[i], frame))
	}
	sort.SliceStable(grades, func(i, j int) bool {
		if grades[i].Team != grades[j].Team {
			return grades[i].Team < grades[j].Team
		}
		return grades[i].Score > grades[j].Score
	})
	return grades
}

func computeGrade(t Tuning, r *UnitRecord, frame int) UnitGrade {
	ticks := r.Ticks(frame)
	g := UnitGrade{
		Label:       r.Label,
		Team:        r.Team,
		Type:        r.Type,
		Fate:        r.Fate,
		DamageDealt: r.DamageDealt,
		Kills:       r.Kills,
		Ticks:       ticks,
	}

	cost := float64(t.Units.Stats(r.Type).Cost)
	if cost > 0 {
		g.FirepowerScore = perfClamp(r.DamageDealt / (cost * perfFirepowerPerCost) * 100)
	}
	if r.Fate == FateServing {
		g.DurabilityScore = 100
	} else {
		g.DurabilityScore = perfClamp(float64(ticks) / perfFullService * 100)
	}
	g.GroundScore = perfClamp(r.Advance() / (t.WorldWidth / 2) * 100)

	g.Score = 0.5*g.FirepowerScore + 0.3*g.DurabilityScore + 0.2*g.GroundScore
	g.Grade = LetterGrade(g.Score)
	g.GoodTraits, g.BadTraits = perfDetectTraits(t, r, ticks)
	return g
}

func perfDetectTraits(t Tuning, r *UnitRecord, ticks int) (good, bad []string) {
	if r.Kills >= perfKillerKills {
		good = append(good, "killer")
	}
	if r.Fate == FateServing && r.TicksEngaged >= perfAnchorTicks {
		good = append(good, "anchor")
	}
	if r.Advance() >= t.WorldWidth*perfSpearheadShare {
		good = append(good, "spearhead")
	}
	switch {
	case r.Fate == FateKilled && r.DamageDealt == 0:
		bad = append(bad, "fodder")
	case r.Fate == FateEvicted:
		bad = append(bad, "evicted")
	}
	if r.TicksEngaged == 0 && ticks >= perfIdleTicks {
		bad = append(bad, "idle")
	}
	return good, bad
}

// FormatGrades returns a human-readable per-unit report.
func FormatGrades(grades []UnitGrade) string {
	var sb strings.Builder
	sb.WriteString("=== Unit Performance Grades ===\n")

	currentTeam := TeamNone
	for _, g := range grades {
		if g.Team != currentTeam {
			currentTeam = g.Team
			fmt.Fprintf(&sb, "\n--- %s ---\n", strings.ToUpper(g.Team.String()))
		}
		fmt.Fprintf(&sb, "  %-3s  %-4s  %-11s [%s]  dmg=%.0f  kills=%d  ticks=%d\n",
			g.Grade, g.Label, g.Type, g.Fate, g.DamageDealt, g.Kills, g.Ticks)
		if len(g.GoodTraits) > 0 {
			fmt.Fprintf(&sb, "       Good: %s\n", strings.Join(g.GoodTraits, ", "))
		}
		if len(g.BadTraits) > 0 {
			fmt.Fprintf(&sb, "       Bad:  %s\n", strings.Join(g.BadTraits, ", "))
		}
	}
	return sb.String()
}

// FormatGradesSummary returns a compact team-level summary.
func FormatGradesSummary(grades []UnitGrade) string {
	type teamStats struct {
		count    int
		scoreSum float64
		serving  int
		kills    int
		good     map[string]int
		bad      map[string]int
	}
	var teams [teamCount]teamStats
	for i := range teams {
		teams[i].good = map[string]int{}
		teams[i].bad = map[string]int{}
	}
	for _, g := range grades {
		ts := &teams[g.Team]
		ts.count++
		ts.scoreSum += g.Score
		ts.kills += g.Kills
		if g.Fate == FateServing {
			ts.serving++
		}
		for _, tr := range g.GoodTraits {
			ts.good[tr]++
		}
		for _, tr := range g.BadTraits {
			ts.bad[tr]++
		}
	}

	var sb strings.Builder
	for _, team := range Teams {
		ts := teams[team]
		if ts.count == 0 {
			continue
		}
		avg := ts.scoreSum / float64(ts.count)
		fmt.Fprintf(&sb, "  %s: avg_score=%.1f (%s)  serving=%d/%d  kills=%d\n",
			strings.ToUpper(team.String()), avg, LetterGrade(avg), ts.serving, ts.count, ts.kills)
		if len(ts.good) > 0 {
			fmt.Fprintf(&sb, "    Top good: %s\n", perfTopTraits(ts.good, 3))
		}
		if len(ts.bad) > 0 {
			fmt.Fprintf(&sb, "    Top bad:  %s\n", perfTopTraits(ts.bad, 3))
		}
	}
	return sb.String()
}

func perfClamp(s float64) float64 {
	return math.Max(0, math.Min(100, s))
}

// LetterGrade maps a 0-100 score to a letter grade.
func LetterGrade(score float64) string {
	switch {
	case score >= 93:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 78:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 62:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 45:
		return "D"
	default:
		return "F"
	}
}

func perfTopTraits(counts map[string]int, n int) string {
	type kv struct {
		trait string
		count int
	}
	items := make([]kv, 0, len(counts))
	for k, v := range counts {
		items = append(items, kv{k, v})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].count != items[j].count {
			return items[i].count > items[j].count
		}
		return items[i].trait < items[j].trait
	})
	if len(items) > n {
		items = items[:n]
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%s(%d)", it.trait, it.count)
	}
	return strings.Join(parts, ", ")
}
