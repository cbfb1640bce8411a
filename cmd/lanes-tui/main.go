// Command lanes-tui plays the battle in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Frontline/internal/sim"
	"github.com/Garsondee/Frontline/internal/tui"
)

const frameInterval = 16 * time.Millisecond

func main() {
	var (
		tuningPath string
		seed       int64
		spectate   bool
		mute       bool
	)
	flag.StringVar(&tuningPath, "tuning", "", "YAML tuning file (default: built-in values)")
	flag.Int64Var(&seed, "seed", 0, "AI seed (0 = time-based)")
	flag.BoolVar(&spectate, "spectate", false, "let the AI play both sides")
	flag.BoolVar(&mute, "mute", false, "disable sound cues")
	flag.Parse()

	if err := run(tuningPath, seed, spectate, mute); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(tuningPath string, seed int64, spectate, mute bool) error {
	t := sim.DefaultTuning()
	if tuningPath != "" {
		var err error
		if t, err = sim.LoadTuning(tuningPath); err != nil {
			return err
		}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := []sim.Option{sim.WithSeed(seed)}
	if spectate {
		opts = append(opts, sim.WithPlayer(sim.TeamNone), sim.WithAI(sim.TeamBlue, sim.TeamRed))
	}
	if !mute {
		cue, err := tui.NewCue()
		if err != nil {
			log.Printf("sound disabled: %v", err)
		}
		defer cue.Close()
		opts = append(opts, sim.WithObserver(cue))
	}
	s, err := sim.New(t, opts...)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	zones := [2][3]sim.Rect{s.DeployZone(sim.TeamBlue), s.DeployZone(sim.TeamRed)}
	ctrl := tui.NewController(t, zones[sim.TeamBlue])

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	snap := s.Snapshot()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
				continue
			}
			cols, rows := screen.Size()
			intents, keepGoing := ctrl.Handle(ev, snap, tui.NewLayout(t, cols, rows))
			if !keepGoing {
				return nil
			}
			for _, in := range intents {
				s.Enqueue(in)
			}
		case <-ticker.C:
			snap = s.Tick()
			ctrl.Follow(snap.ScrollX)
			tui.Render(screen, snap, t, zones, tui.View{Cursor: ctrl.Cursor()})
		}
	}
}
