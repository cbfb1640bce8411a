package sim

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event.
type SimLogEntry struct {
	Tick     int
	Unit     string  // label e.g. "B4", "R12", or "--" for team/global events
	Team     string  // "blue", "red", or "--"
	Category string  // deploy, artillery, combat, cap, ai, economy, frontline, move, outcome
	Key      string  // event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // numeric detail, e.g. damage or position
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] B4   deploy    spawn            infantry in top lane at (120,115) for 20
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-16s %s",
		e.Tick, e.Unit, e.Category, e.Key, e.Value)
}

// LogQuery selects entries. Zero fields match anything; To of 0 means no
// upper bound.
type LogQuery struct {
	Category string
	Key      string
	Team     string
	Unit     string
	Contains string
	From, To int
}

// Match reports whether e satisfies every set field of q.
func (q LogQuery) Match(e SimLogEntry) bool {
	switch {
	case q.Category != "" && e.Category != q.Category,
		q.Key != "" && e.Key != q.Key,
		q.Team != "" && e.Team != q.Team,
		q.Unit != "" && e.Unit != q.Unit,
		e.Tick < q.From,
		q.To > 0 && e.Tick > q.To:
		return false
	}
	return q.Contains == "" || strings.Contains(e.Value, q.Contains)
}

// SimLog is the unbounded structured event record of a match. Front ends keep
// their own bounded feeds on top of it.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. Verbose logs also keep per-tick movement,
// income and frontline drift.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records an entry.
func (sl *SimLog) Add(tick int, unit, team, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick: tick, Unit: unit, Team: team,
		Category: category, Key: key, Value: value, NumVal: numVal,
	})
}

// AddVerbose is Add for per-tick noise; it is dropped unless verbose.
func (sl *SimLog) AddVerbose(tick int, unit, team, category, key, value string, numVal float64) {
	if sl.verbose {
		sl.Add(tick, unit, team, category, key, value, numVal)
	}
}

func (sl *SimLog) Len() int { return len(sl.entries) }

// Entries returns the whole log. Callers must not modify it.
func (sl *SimLog) Entries() []SimLogEntry { return sl.entries }

// Since returns the entries recorded after the first n.
func (sl *SimLog) Since(n int) []SimLogEntry {
	if n >= len(sl.entries) {
		return nil
	}
	return sl.entries[n:]
}

// Select returns the entries matching q in recording order.
func (sl *SimLog) Select(q LogQuery) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if q.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// First returns the earliest entry matching q.
func (sl *SimLog) First(q LogQuery) (SimLogEntry, bool) {
	for _, e := range sl.entries {
		if q.Match(e) {
			return e, true
		}
	}
	return SimLogEntry{}, false
}

// Count returns how many entries match q.
func (sl *SimLog) Count(q LogQuery) int {
	n := 0
	for _, e := range sl.entries {
		if q.Match(e) {
			n++
		}
	}
	return n
}

// CountCategory counts entries of one category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return sl.Count(LogQuery{Category: category, Key: key})
}

// HasEntry reports whether some entry has category, key and a value
// containing valueSubstr. Empty arguments match anything.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	_, ok := sl.First(LogQuery{Category: category, Key: key, Contains: valueSubstr})
	return ok
}

// Format renders the entries matching q, one per line.
func (sl *SimLog) Format(q LogQuery) string {
	var sb strings.Builder
	for _, e := range sl.Select(q) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary describes a snapshot along with the log's casualty totals.
func (sl *SimLog) Summary(snap Snapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%03d ---\n", snap.Frame)

	for _, team := range Teams {
		var byType [len(UnitTypes)]int
		for _, u := range snap.Units {
			if u.Team == team {
				byType[u.Type]++
			}
		}
		fmt.Fprintf(&sb, "%s: resources=%d supply=%d/%d  ",
			team, snap.Resources[team], snap.LiveCount(team), snap.SupplyCap[team])
		for _, ut := range UnitTypes {
			if byType[ut] > 0 {
				fmt.Fprintf(&sb, "%s=%d  ", ut, byType[ut])
			}
		}
		a := snap.Artillery[team]
		fmt.Fprintf(&sb, "artillery=%s cd=%d\n", a.Stage, a.Cooldown)
	}

	sb.WriteString("Frontline:")
	for _, l := range Lanes {
		fmt.Fprintf(&sb, " %s=%.0f", l, snap.Frontline[l])
	}
	fmt.Fprintf(&sb, "\nDeaths=%d  Evictions=%d  Strikes=%d\n",
		sl.CountCategory("combat", "death"),
		sl.CountCategory("cap", "evict"),
		sl.CountCategory("artillery", "fired"))
	if snap.Outcome.Over() {
		fmt.Fprintf(&sb, "Outcome: %s (%s)\n", snap.Outcome.Result, snap.Outcome.Description)
	}
	return sb.String()
}

func formatPos(x, y float64) string {
	return fmt.Sprintf("(%.1f,%.1f)", x, y)
}
