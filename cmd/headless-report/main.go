package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/Garsondee/Frontline/internal/sim"
)

// judgeMargin is the territory lead that wins an undecided run on points.
const judgeMargin = 0.1

// stalemateBand is how far from the centre every frontline may sit, as a share
// of the field, for an undecided run to count as stalled.
const stalemateBand = 0.1

type runStats struct {
	runIndex int
	runID    string
	seed     int64

	outcome     sim.Outcome
	decided     bool // ended by breakthrough rather than on points
	ticks       int
	worldWidth  float64
	frontline   [3]float64
	resources   [2]int
	survivors   [2]int
	counters    [2]sim.TeamCounters
	firstDeploy [2]int
	firstDeath  int
	firstStrike int

	windowSummary *sim.WindowReport
	grades        []sim.UnitGrade
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var tuningPath string
	var dumpTuning bool

	flag.IntVar(&runs, "runs", 5, "number of headless AI-vs-AI runs")
	flag.IntVar(&ticks, "ticks", 18000, "tick limit per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&tuningPath, "tuning", "", "YAML tuning file (default: built-in values)")
	flag.BoolVar(&dumpTuning, "dump-tuning", false, "print the effective tuning as YAML and exit")
	flag.Parse()

	t := sim.DefaultTuning()
	if tuningPath != "" {
		var err error
		if t, err = sim.LoadTuning(tuningPath); err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
	}
	if dumpTuning {
		b, err := sim.MarshalTuning(t)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(b)
		return
	}
	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(2)
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		os.Exit(2)
	}

	fmt.Printf("=== Headless Battle Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d tuning=%s\n\n",
		runs, ticks, seedBase, seedStep, orDefault(tuningPath))

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, err := runBattle(t, i+1, seed, ticks)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			os.Exit(1)
		}
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func runBattle(t sim.Tuning, runIndex int, seed int64, ticks int) (runStats, error) {
	reporter := sim.NewReporter(t, 0)
	s, err := sim.New(t,
		sim.WithSeed(seed),
		sim.WithPlayer(sim.TeamNone),
		sim.WithAI(sim.TeamBlue, sim.TeamRed),
		sim.WithObserver(reporter),
	)
	if err != nil {
		return runStats{}, err
	}

	s.RunUntil(sim.Snapshot.GameOver, ticks)
	snap := s.Snapshot()
	log := s.Log()

	rs := runStats{
		runIndex:      runIndex,
		runID:         uuid.NewString(),
		seed:          seed,
		outcome:       sim.JudgeOutcome(snap, t, judgeMargin),
		decided:       snap.GameOver(),
		ticks:         snap.Frame,
		worldWidth:    t.WorldWidth,
		frontline:     snap.Frontline,
		resources:     snap.Resources,
		counters:      s.Counters(),
		firstDeath:    firstTick(log, sim.LogQuery{Category: "combat", Key: "death"}),
		firstStrike:   firstTick(log, sim.LogQuery{Category: "artillery", Key: "fired"}),
		windowSummary: reporter.WindowSummary(),
		grades:        sim.GradeUnits(t, s.Records(), snap.Frame),
	}
	for _, team := range sim.Teams {
		rs.survivors[team] = snap.LiveCount(team)
		rs.firstDeploy[team] = firstTick(log, sim.LogQuery{Category: "deploy", Key: "spawn", Team: team.String()})
	}
	return rs, nil
}

// firstTick is the tick of the first entry matching q, or -1.
func firstTick(log *sim.SimLog, q sim.LogQuery) int {
	if e, ok := log.First(q); ok {
		return e.Tick
	}
	return -1
}

// teamLossCounts returns how many units each side fielded and how many it
// lost to combat or eviction.
func teamLossCounts(rs runStats) (blueFielded, redFielded, blueLost, redLost int) {
	b, r := rs.counters[sim.TeamBlue], rs.counters[sim.TeamRed]
	return b.Deployed, r.Deployed, b.Lost + b.Evicted, r.Lost + r.Evicted
}

// detectStalemate flags an undecided run whose frontlines never left the
// centre of the field.
func detectStalemate(rs runStats) (bool, string) {
	if rs.decided {
		return false, "breakthrough_" + rs.outcome.Result.String()
	}
	centre := rs.worldWidth / 2
	var reasons []string
	for i, f := range rs.frontline {
		if math.Abs(f-centre) > rs.worldWidth*stalemateBand {
			return false, fmt.Sprintf("lane_%d_pushed", i)
		}
	}
	reasons = append(reasons, "frontline_stalled")

	blueFielded, redFielded, blueLost, redLost := teamLossCounts(rs)
	if blueFielded > 0 && redFielded > 0 && blueLost*2 >= blueFielded && redLost*2 >= redFielded {
		reasons = append(reasons, "mutual_attrition")
	}
	return true, strings.Join(reasons, "+")
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d id=%s) ---\n", rs.runIndex, rs.seed, rs.runID)
	how := "on points"
	if rs.decided {
		how = "breakthrough"
	}
	fmt.Printf("outcome=%s (%s) at T=%d: %s\n", rs.outcome.Result, how, rs.ticks, rs.outcome.Description)
	fmt.Printf("phase_markers: blue_first_deploy=%d red_first_deploy=%d first_death=%d first_strike=%d\n",
		rs.firstDeploy[sim.TeamBlue], rs.firstDeploy[sim.TeamRed], rs.firstDeath, rs.firstStrike)
	for _, team := range sim.Teams {
		c := rs.counters[team]
		fmt.Printf("%-5s deployed=%d lost=%d evicted=%d strikes=%d cancelled=%d survivors=%d resources=%d\n",
			team, c.Deployed, c.Lost, c.Evicted, c.ArtilleryFired, c.ArtilleryCancelled, rs.survivors[team], rs.resources[team])
	}
	fmt.Printf("frontline: top=%.0f mid=%.0f bottom=%.0f\n", rs.frontline[0], rs.frontline[1], rs.frontline[2])
	if stalled, reason := detectStalemate(rs); stalled {
		fmt.Printf("stalemate: %s\n", reason)
	}
	if rs.windowSummary != nil {
		fmt.Printf("window_samples=%d window_tick_range=%d..%d\n",
			rs.windowSummary.SampleCount, rs.windowSummary.FromTick, rs.windowSummary.ToTick)
		fmt.Printf("window_avg: blue_alive=%.1f red_alive=%.1f blue_territory=%.2f drift=%+.0f/%+.0f/%+.0f\n",
			rs.windowSummary.AvgAlive[sim.TeamBlue],
			rs.windowSummary.AvgAlive[sim.TeamRed],
			rs.windowSummary.AvgTerritory[sim.TeamBlue],
			rs.windowSummary.FrontlineDrift[0],
			rs.windowSummary.FrontlineDrift[1],
			rs.windowSummary.FrontlineDrift[2],
		)
	}
	fmt.Print(sim.FormatGradesSummary(rs.grades))
	fmt.Println()
}

func printAggregate(all []runStats) {
	results := map[string]int{}
	stalemates := map[string]int{}
	var totals [2]sim.TeamCounters
	var endTicks, deathTicks, strikeTicks []int
	breakthroughs := 0

	for _, rs := range all {
		results[rs.outcome.Result.String()]++
		if rs.decided {
			breakthroughs++
			endTicks = append(endTicks, rs.ticks)
		}
		if stalled, reason := detectStalemate(rs); stalled {
			stalemates[reason]++
		}
		for _, team := range sim.Teams {
			c := rs.counters[team]
			totals[team].Deployed += c.Deployed
			totals[team].Lost += c.Lost
			totals[team].Evicted += c.Evicted
			totals[team].ArtilleryFired += c.ArtilleryFired
			totals[team].ArtilleryCancelled += c.ArtilleryCancelled
		}
		if rs.firstDeath >= 0 {
			deathTicks = append(deathTicks, rs.firstDeath)
		}
		if rs.firstStrike >= 0 {
			strikeTicks = append(strikeTicks, rs.firstStrike)
		}
	}

	n := len(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d breakthroughs=%d\n", n, breakthroughs)
	fmt.Printf("results: %s\n", joinCounts(results, n))
	fmt.Printf("stalemates: %s\n", joinCounts(stalemates, n))
	for _, team := range sim.Teams {
		c := totals[team]
		fmt.Printf("avg_per_run %-5s deployed=%.1f lost=%.1f evicted=%.1f strikes=%.1f cancelled=%.1f\n",
			team, avg(c.Deployed, n), avg(c.Lost, n), avg(c.Evicted, n), avg(c.ArtilleryFired, n), avg(c.ArtilleryCancelled, n))
	}
	fmt.Printf("phase_marker_avg_ticks: breakthrough=%s first_death=%s first_strike=%s\n",
		avgTickString(endTicks), avgTickString(deathTicks), avgTickString(strikeTicks))

	fmt.Println("\n--- Unit Grades (across all runs) ---")
	fmt.Print(sim.FormatGradesSummary(collectAllGrades(all)))
	for _, team := range sim.Teams {
		fmt.Printf("  %-5s best_type=%s\n", team, bestType(collectAllGrades(all), team))
	}
}

func collectAllGrades(all []runStats) []sim.UnitGrade {
	var out []sim.UnitGrade
	for _, rs := range all {
		out = append(out, rs.grades...)
	}
	return out
}

// bestType names the unit type with the highest average score for team.
func bestType(grades []sim.UnitGrade, team sim.Team) string {
	sums := map[sim.UnitType]float64{}
	counts := map[sim.UnitType]int{}
	for _, g := range grades {
		if g.Team == team {
			sums[g.Type] += g.Score
			counts[g.Type]++
		}
	}
	best, bestAvg := "n/a", -1.0
	for _, ut := range sim.UnitTypes {
		if counts[ut] == 0 {
			continue
		}
		if a := sums[ut] / float64(counts[ut]); a > bestAvg {
			best, bestAvg = fmt.Sprintf("%s(%.1f)", ut, a), a
		}
	}
	return best
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

// joinCounts formats counts as "key=n (pct%)" sorted by key.
func joinCounts(counts map[string]int, total int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d (%.0f%%)", k, counts[k], avg(counts[k]*100, total)))
	}
	return strings.Join(parts, " ")
}

func orDefault(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
