package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Frontline/internal/sim"
)

const (
	feedPanelWidth = 320
	feedCapacity   = 60
	feedLineH      = 11
	feedHighlight  = 3 // newest lines drawn on a lighter band
)

// FeedLine is one line of the battle feed.
type FeedLine struct {
	Tick     int
	Label    string // e.g. "B4", "R12", or "--"
	Team     string
	Category string
	Message  string
}

// BattleFeed keeps the newest notable events for the side panel. It
// implements sim.Observer.
type BattleFeed struct {
	lines []FeedLine
}

func NewBattleFeed() *BattleFeed {
	return &BattleFeed{lines: make([]FeedLine, 0, feedCapacity)}
}

// Add appends a line, dropping the oldest once the feed is full.
func (f *BattleFeed) Add(tick int, label, team, msg string) {
	f.push(FeedLine{Tick: tick, Label: label, Team: team, Message: msg})
}

func (f *BattleFeed) push(l FeedLine) {
	if len(f.lines) == feedCapacity {
		copy(f.lines, f.lines[1:])
		f.lines = f.lines[:feedCapacity-1]
	}
	f.lines = append(f.lines, l)
}

// OnSnapshot copies the tick's notable events into the feed. Movement,
// income and frontline drift stay in the structured log.
func (f *BattleFeed) OnSnapshot(snap sim.Snapshot) {
	for _, e := range snap.Events {
		if !feedWorthy(e) {
			continue
		}
		f.push(FeedLine{Tick: e.Tick, Label: e.Unit, Team: e.Team, Category: e.Category, Message: feedMessage(e)})
	}
}

func feedWorthy(e sim.SimLogEntry) bool {
	switch e.Category {
	case "move", "economy":
		return false
	case "frontline":
		return e.Key == "supply"
	}
	return true
}

func feedMessage(e sim.SimLogEntry) string {
	switch {
	case e.Key == "rejected":
		return fmt.Sprintf("%s rejected: %s", e.Category, e.Value)
	case e.Category == "combat":
		return e.Value
	default:
		return e.Key + " " + e.Value
	}
}

// Recent returns the feed oldest first.
func (f *BattleFeed) Recent() []FeedLine {
	out := make([]FeedLine, len(f.lines))
	copy(out, f.lines)
	return out
}

// lineColor is the marker colour for a line: team colour, amber for
// artillery, grey for global notices.
func lineColor(l FeedLine) color.RGBA {
	switch {
	case l.Category == "artillery":
		return color.RGBA{R: 230, G: 170, B: 60, A: 255}
	case l.Team == sim.TeamRed.String():
		return teamColor(sim.TeamRed, 255)
	case l.Team == sim.TeamBlue.String():
		return teamColor(sim.TeamBlue, 255)
	}
	return color.RGBA{R: 140, G: 140, B: 140, A: 255}
}

// Draw renders the feed as a side panel starting at column x.
func (f *BattleFeed) Draw(screen *ebiten.Image, x, h int) {
	px, ph := float32(x), float32(h)
	vector.FillRect(screen, px, 0, feedPanelWidth, ph, color.RGBA{R: 10, G: 12, B: 10, A: 248}, false)
	vector.StrokeLine(screen, px, 0, px, ph, 1, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)
	vector.FillRect(screen, px, 0, feedPanelWidth, 16, color.RGBA{R: 20, G: 30, B: 20, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("BATTLE FEED  (%d)", len(f.lines)), x+8, 2)

	rows := (h - 24) / feedLineH
	lines := f.lines
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	y := 20
	for i, l := range lines {
		if i >= len(lines)-feedHighlight {
			vector.FillRect(screen, px+2, float32(y), feedPanelWidth-4, feedLineH, color.RGBA{R: 30, G: 40, B: 30, A: 160}, false)
		}
		vector.FillRect(screen, px+5, float32(y+3), 3, 5, lineColor(l), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%4d [%s] %s", l.Tick, l.Label, l.Message), x+12, y)
		y += feedLineH
	}
}
