package sim

import (
	"fmt"
)

// TeamCounters tallies what happened to one team over a match.
type TeamCounters struct {
	Deployed           int
	Lost               int
	Evicted            int
	ArtilleryFired     int
	ArtilleryCancelled int
}

// Sim is the simulation context. It is single-threaded: Enqueue and Tick must
// be called from the same goroutine.
type Sim struct {
	tuning    Tuning
	state     *GameState
	log       *SimLog
	player    Team
	ai        []*aiController
	queue     []Intent
	observers []Observer
	counters  [teamCount]TeamCounters
	records   map[int64]*UnitRecord
	last      Snapshot
	seed      int64
}

// Option configures a Sim at construction.
type Option func(*Sim)

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) Option {
	return func(s *Sim) { s.seed = seed }
}

// WithPlayer sets the team driven by Enqueue'd intents. Default blue.
// TeamNone leaves both sides to the AI and makes Enqueue a no-op.
func WithPlayer(team Team) Option {
	return func(s *Sim) { s.player = team }
}

// WithAI hands the listed teams to the AI controller. Default red only;
// passing no teams disables the AI.
func WithAI(teams ...Team) Option {
	return func(s *Sim) {
		s.ai = s.ai[:0]
		for _, team := range teams {
			s.ai = append(s.ai, &aiController{team: team})
		}
	}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) Option {
	return func(s *Sim) { s.log = NewSimLog(v) }
}

// WithObserver registers o to receive every published snapshot.
func WithObserver(o Observer) Option {
	return func(s *Sim) { s.observers = append(s.observers, o) }
}

// New builds a simulation from t.
func New(t Tuning, opts ...Option) (*Sim, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	s := &Sim{
		tuning:  t,
		state:   newGameState(t),
		log:     NewSimLog(false),
		player:  TeamBlue,
		ai:      []*aiController{{team: TeamRed}},
		records: map[int64]*UnitRecord{},
		seed:    1,
	}
	for _, o := range opts {
		o(s)
	}
	if s.player != TeamNone && !s.player.valid() {
		return nil, fmt.Errorf("invalid player team %d", s.player)
	}
	for i, ai := range s.ai {
		if !ai.team.valid() {
			return nil, fmt.Errorf("invalid AI team %d", ai.team)
		}
		if ai.team == s.player {
			return nil, fmt.Errorf("team %s cannot be both player and AI", ai.team)
		}
		s.ai[i] = newAIController(ai.team, s.seed+int64(ai.team)*7919)
	}
	s.last = s.snapshot(nil)
	return s, nil
}

// Enqueue queues a player intent for the next tick. The intent is addressed
// to the player team regardless of its Team field. Without a player only
// camera scrolls are kept.
func (s *Sim) Enqueue(in Intent) {
	if s.player == TeamNone && in.Kind != IntentScroll {
		return
	}
	in.Team = s.player
	s.queue = append(s.queue, in)
}

// Pan moves the camera now instead of on the next tick, for front ends that
// stop ticking while paused. It changes only ScrollX of the published
// snapshot; observers are not notified.
func (s *Sim) Pan(delta float64) Snapshot {
	s.state.scroll(s.tuning, delta)
	s.last.ScrollX = s.state.ScrollX
	return s.last
}

// Subscribe registers an observer after construction.
func (s *Sim) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// Tick advances the simulation by one step and publishes the new snapshot.
func (s *Sim) Tick() Snapshot {
	gs := s.state
	mark := s.log.Len()
	gs.Frame++

	// 1. INTENTS: drain the queue as one batch.
	queued := s.queue
	s.queue = nil
	for _, in := range queued {
		s.apply(in)
	}

	if !gs.Outcome.Over() {
		// 2. AI
		for _, ai := range s.ai {
			ai.think(s)
		}

		// 3. MOVE
		s.moveUnits()

		// 4. COMBAT
		s.resolveCombat()

		// 5. ARTILLERY
		s.resolveArtillery()

		// 6. CAP
		s.sweepDead()
		s.enforceUnitCap()

		// 7. FRONTLINE + SUPPLY
		s.updateFrontline()

		// 8. INCOME
		if gs.accrue(s.tuning) {
			s.log.AddVerbose(gs.Frame, "--", "--", "economy", "income",
				fmt.Sprintf("blue=%d red=%d", gs.Resources[TeamBlue], gs.Resources[TeamRed]), 0)
		}

		// 9. OUTCOME
		s.checkBreakthrough()
	}

	// 10. PUBLISH
	s.last = s.snapshot(s.log.Since(mark))
	for _, o := range s.observers {
		o.OnSnapshot(s.last)
	}
	return s.last
}

// apply routes one intent to the component that owns it.
func (s *Sim) apply(in Intent) {
	gs := s.state
	switch in.Kind {
	case IntentSelectUnit:
		if in.Unit >= 0 && in.Unit < unitTypeCount {
			gs.Selected = in.Unit
		}
	case IntentDeploy:
		ut := gs.Selected
		if in.explicitType {
			ut = in.Unit
		}
		s.deploy(in.Team, ut, in.Point)
	case IntentTriggerArtillery:
		s.triggerArtillery(in.Team)
	case IntentConfirmArtillery:
		s.confirmArtillery(in.Team, in.Point)
	case IntentCancelArtillery:
		s.cancelArtillery(in.Team)
	case IntentScroll:
		gs.scroll(s.tuning, in.Delta)
	}
}

// Snapshot returns the most recently published snapshot.
func (s *Sim) Snapshot() Snapshot { return s.last }

// DeployZone returns team's placement rectangle for every lane.
func (s *Sim) DeployZone(team Team) [laneCount]Rect {
	return deployZones(s.tuning, team)
}

// Tuning returns the configuration the sim was built with.
func (s *Sim) Tuning() Tuning { return s.tuning }

// Log returns the structured event log.
func (s *Sim) Log() *SimLog { return s.log }

// Counters returns the per-team match tallies.
func (s *Sim) Counters() [teamCount]TeamCounters { return s.counters }

// RunTicks advances n ticks and returns the last snapshot.
func (s *Sim) RunTicks(n int) Snapshot {
	for i := 0; i < n; i++ {
		s.Tick()
	}
	return s.last
}

// RunUntil advances up to maxTicks, stopping early if predicate returns true.
// Returns the frame at which the predicate was satisfied, or -1.
func (s *Sim) RunUntil(predicate func(Snapshot) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		snap := s.Tick()
		if predicate(snap) {
			return snap.Frame
		}
	}
	return -1
}
