package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Frontline/internal/game"
	"github.com/Garsondee/Frontline/internal/sim"
)

func main() {
	var tuningPath string
	var seed int64

	flag.StringVar(&tuningPath, "tuning", "", "YAML tuning file (default: built-in values)")
	flag.Int64Var(&seed, "seed", 0, "AI seed (0 = time-based)")
	flag.Parse()

	t := sim.DefaultTuning()
	if tuningPath != "" {
		var err error
		if t, err = sim.LoadTuning(tuningPath); err != nil {
			log.Fatal(err)
		}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := game.New(t, seed)
	if err != nil {
		log.Fatal(err)
	}
	w, h := g.WindowSize()
	ebiten.SetWindowTitle("Frontline")
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
