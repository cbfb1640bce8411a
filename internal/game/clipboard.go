package game

import (
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/Frontline/internal/sim"
)

// matchReport is the text the C key puts on the clipboard.
func matchReport(s *sim.Sim, snap sim.Snapshot, r *sim.Reporter) string {
	var sb strings.Builder
	sb.WriteString(s.Log().Summary(snap))
	sb.WriteByte('\n')
	sb.WriteString(r.FormatLatest())
	sb.WriteByte('\n')
	sb.WriteString(r.WindowSummary().Format())
	sb.WriteByte('\n')
	sb.WriteString(sim.FormatGrades(sim.GradeUnits(s.Tuning(), s.Records(), snap.Frame)))
	return sb.String()
}

func (g *Game) copyReport() {
	if err := clipboard.WriteAll(matchReport(g.sim, g.snap, g.reporter)); err != nil {
		g.feed.Add(g.snap.Frame, "--", "--", "clipboard unavailable: "+err.Error())
		return
	}
	g.feed.Add(g.snap.Frame, "--", "--", "report copied to clipboard")
}
