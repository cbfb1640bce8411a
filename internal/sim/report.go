package sim

import (
	"fmt"
	"strings"
)

// reportWindowTicks is the default sliding window for recent-behaviour reports (~10s at 60TPS).
const reportWindowTicks = 600

// reportEvery is how often the reporter samples a snapshot (~1s).
const reportEvery = 60

// --- Sample types ---

// TeamSample captures one team's state at one point in time.
type TeamSample struct {
	Alive     int
	Injured   int // health below max but alive
	ByType    [unitTypeCount]int
	Resources int
	SupplyCap int
	AvgHealth float64 // mean health fraction of living units
	Pending   bool    // artillery strike armed
}

// Sample is a full summary of the battle at one tick.
type Sample struct {
	Tick      int
	Teams     [teamCount]TeamSample
	Frontline [laneCount]float64
	Territory [teamCount]float64
}

// --- Reporter ---

// Reporter samples published snapshots periodically and can produce summaries
// over sliding time windows. It implements Observer.
type Reporter struct {
	tuning      Tuning
	history     []Sample
	windowTicks int
}

// NewReporter creates a reporter with the given window size.
func NewReporter(t Tuning, windowTicks int) *Reporter {
	if windowTicks <= 0 {
		windowTicks = reportWindowTicks
	}
	return &Reporter{tuning: t, windowTicks: windowTicks}
}

// OnSnapshot samples every reportEvery-th frame and the final frame of a match.
func (r *Reporter) OnSnapshot(snap Snapshot) {
	if snap.Frame%reportEvery == 0 || (snap.GameOver() && snap.Outcome.Tick == snap.Frame) {
		r.Collect(snap)
	}
}

// Collect records a sample from snap unconditionally.
func (r *Reporter) Collect(snap Snapshot) {
	s := Sample{
		Tick:      snap.Frame,
		Frontline: snap.Frontline,
		Territory: territory(r.tuning, snap.Frontline),
	}
	var healthSum [teamCount]float64
	for _, u := range snap.Units {
		ts := &s.Teams[u.Team]
		ts.Alive++
		ts.ByType[u.Type]++
		healthSum[u.Team] += u.Health
		if u.Health < 1 {
			ts.Injured++
		}
	}
	for _, team := range Teams {
		ts := &s.Teams[team]
		ts.Resources = snap.Resources[team]
		ts.SupplyCap = snap.SupplyCap[team]
		ts.Pending = snap.Artillery[team].Stage == ArtilleryPending
		if ts.Alive > 0 {
			ts.AvgHealth = healthSum[team] / float64(ts.Alive)
		}
	}
	r.history = append(r.history, s)
}

// Latest returns the most recent sample, or nil.
func (r *Reporter) Latest() *Sample {
	if len(r.history) == 0 {
		return nil
	}
	return &r.history[len(r.history)-1]
}

// History returns all collected samples.
func (r *Reporter) History() []Sample {
	return r.history
}

// WindowReport is an aggregated summary over a time window.
type WindowReport struct {
	FromTick, ToTick int
	SampleCount      int

	AvgAlive     [teamCount]float64
	AvgInjured   [teamCount]float64
	AvgHealth    [teamCount]float64
	AvgResources [teamCount]float64
	AvgTerritory [teamCount]float64

	// FrontlineDrift is the change in each lane's frontline over the window;
	// positive means blue gained ground.
	FrontlineDrift [laneCount]float64
}

// WindowSummary averages the samples inside the recent window.
func (r *Reporter) WindowSummary() *WindowReport {
	if len(r.history) == 0 {
		return nil
	}

	latestTick := r.history[len(r.history)-1].Tick
	cutoff := latestTick - r.windowTicks
	var window []Sample
	for i := len(r.history) - 1; i >= 0; i-- {
		if r.history[i].Tick < cutoff {
			break
		}
		window = append(window, r.history[i])
	}

	n := float64(len(window))
	oldest, newest := window[len(window)-1], window[0]
	wr := &WindowReport{
		FromTick:    oldest.Tick,
		ToTick:      newest.Tick,
		SampleCount: len(window),
	}
	for _, s := range window {
		for _, team := range Teams {
			ts := s.Teams[team]
			wr.AvgAlive[team] += float64(ts.Alive)
			wr.AvgInjured[team] += float64(ts.Injured)
			wr.AvgHealth[team] += ts.AvgHealth
			wr.AvgResources[team] += float64(ts.Resources)
			wr.AvgTerritory[team] += s.Territory[team]
		}
	}
	for _, team := range Teams {
		wr.AvgAlive[team] /= n
		wr.AvgInjured[team] /= n
		wr.AvgHealth[team] /= n
		wr.AvgResources[team] /= n
		wr.AvgTerritory[team] /= n
	}
	for _, l := range Lanes {
		wr.FrontlineDrift[l] = newest.Frontline[l] - oldest.Frontline[l]
	}
	return wr
}

// Format returns a human-readable multi-line string of the window summary.
func (wr *WindowReport) Format() string {
	if wr == nil {
		return "No data collected yet.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Battle Report (T=%d..%d, %d samples) ===\n",
		wr.FromTick, wr.ToTick, wr.SampleCount)

	sb.WriteString("\n--- Forces ---\n")
	for _, team := range Teams {
		fmt.Fprintf(&sb, "  %-5s alive=%.1f  injured=%.1f  health=%.0f%%  resources=%.0f\n",
			team, wr.AvgAlive[team], wr.AvgInjured[team], wr.AvgHealth[team]*100, wr.AvgResources[team])
	}

	sb.WriteString("\n--- Ground ---\n")
	fmt.Fprintf(&sb, "  blue territory=%.0f%% (%s)\n",
		wr.AvgTerritory[TeamBlue]*100, pressureLabel(wr.AvgTerritory[TeamBlue]))
	for _, l := range Lanes {
		fmt.Fprintf(&sb, "  %-6s drift=%+.0f\n", l, wr.FrontlineDrift[l])
	}
	return sb.String()
}

// pressureLabel describes blue's share of the field.
func pressureLabel(share float64) string {
	switch {
	case share > 0.75:
		return "blue breaking through"
	case share > 0.55:
		return "blue pushing"
	case share >= 0.45:
		return "contested"
	case share >= 0.25:
		return "red pushing"
	default:
		return "red breaking through"
	}
}

// FormatLatest returns a concise view of the most recent sample.
func (r *Reporter) FormatLatest() string {
	s := r.Latest()
	if s == nil {
		return "No data.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Sample T=%d ---\n", s.Tick)
	for _, team := range Teams {
		ts := s.Teams[team]
		fmt.Fprintf(&sb, "%-5s alive=%d/%d injured=%d resources=%d",
			team, ts.Alive, ts.SupplyCap, ts.Injured, ts.Resources)
		for _, ut := range UnitTypes {
			fmt.Fprintf(&sb, " %s=%d", ut, ts.ByType[ut])
		}
		if ts.Pending {
			sb.WriteString(" [artillery armed]")
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "frontline top=%.0f mid=%.0f bottom=%.0f\n",
		s.Frontline[LaneTop], s.Frontline[LaneMid], s.Frontline[LaneBottom])
	return sb.String()
}
