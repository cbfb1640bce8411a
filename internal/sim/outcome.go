package sim

import "fmt"

type BattleOutcome int

const (
	OutcomeInconclusive BattleOutcome = iota
	OutcomeBlueVictory
	OutcomeRedVictory
	OutcomeDraw
)

func (o BattleOutcome) String() string {
	switch o {
	case OutcomeBlueVictory:
		return "blue_victory"
	case OutcomeRedVictory:
		return "red_victory"
	case OutcomeDraw:
		return "draw"
	case OutcomeInconclusive:
		return "inconclusive"
	default:
		return "unknown"
	}
}

// Outcome is the terminal state of a match, if any.
type Outcome struct {
	Result      BattleOutcome
	Tick        int // frame at which the match ended
	Lane        Lane
	Description string
}

// Over reports whether the match has been decided.
func (o Outcome) Over() bool {
	return o.Result != OutcomeInconclusive
}

// checkBreakthrough ends the match when a living unit reaches the enemy base
// line. If both sides break through on the same tick the match is a draw.
func (s *Sim) checkBreakthrough() {
	gs := s.state
	if gs.Outcome.Over() {
		return
	}
	var through [teamCount]*Unit
	for _, u := range gs.Units {
		if !u.Alive() || through[u.Team] != nil {
			continue
		}
		if u.Team == TeamBlue && u.X >= s.tuning.WorldWidth-s.tuning.BaseMargin {
			through[TeamBlue] = u
		}
		if u.Team == TeamRed && u.X <= s.tuning.BaseMargin {
			through[TeamRed] = u
		}
	}
	blue, red := through[TeamBlue], through[TeamRed]
	switch {
	case blue != nil && red != nil:
		gs.Outcome = Outcome{Result: OutcomeDraw, Tick: gs.Frame, Lane: blue.Lane,
			Description: "both sides broke through on the same tick"}
	case blue != nil:
		gs.Outcome = Outcome{Result: OutcomeBlueVictory, Tick: gs.Frame, Lane: blue.Lane,
			Description: fmt.Sprintf("%s broke through the %s lane", blue.Label(), blue.Lane)}
	case red != nil:
		gs.Outcome = Outcome{Result: OutcomeRedVictory, Tick: gs.Frame, Lane: red.Lane,
			Description: fmt.Sprintf("%s broke through the %s lane", red.Label(), red.Lane)}
	default:
		return
	}
	s.log.Add(gs.Frame, "--", "--", "outcome", gs.Outcome.Result.String(), gs.Outcome.Description, 0)
}

// JudgeOutcome decides an undecided match on ground held: the team holding at
// least margin more territory share wins on points.
func JudgeOutcome(snap Snapshot, t Tuning, margin float64) Outcome {
	if snap.Outcome.Over() {
		return snap.Outcome
	}
	share := territory(t, snap.Frontline)
	diff := share[TeamBlue] - share[TeamRed]
	out := Outcome{Tick: snap.Frame}
	switch {
	case diff >= margin:
		out.Result = OutcomeBlueVictory
		out.Description = fmt.Sprintf("blue holds %.0f%% of the field", share[TeamBlue]*100)
	case -diff >= margin:
		out.Result = OutcomeRedVictory
		out.Description = fmt.Sprintf("red holds %.0f%% of the field", share[TeamRed]*100)
	default:
		out.Result = OutcomeDraw
		out.Description = "frontlines stalled near the centre"
	}
	return out
}
