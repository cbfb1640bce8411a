package sim

import (
	"strings"
	"testing"
)

func TestSimLog_Query(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, "B1", "blue", "deploy", "spawn", "infantry in top lane", 20)
	sl.Add(3, "R1", "red", "deploy", "spawn", "tank in mid lane", 80)
	sl.Add(5, "B1", "blue", "combat", "death", "killed by R1", 0)
	sl.AddVerbose(5, "R1", "red", "move", "position", formatPos(300, 240), 300)

	if sl.Len() != 3 {
		t.Fatalf("verbose entry kept on a quiet log: len=%d", sl.Len())
	}

	tests := []struct {
		name string
		q    LogQuery
		want int
	}{
		{"all", LogQuery{}, 3},
		{"category", LogQuery{Category: "deploy"}, 2},
		{"team", LogQuery{Team: "blue"}, 2},
		{"unit and key", LogQuery{Unit: "R1", Key: "spawn"}, 1},
		{"contains", LogQuery{Contains: "tank"}, 1},
		{"tick window", LogQuery{From: 2, To: 4}, 1},
		{"open upper bound", LogQuery{From: 3}, 2},
		{"no match", LogQuery{Category: "artillery"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sl.Count(tt.q); got != tt.want {
				t.Errorf("Count = %d, want %d", got, tt.want)
			}
			if got := len(sl.Select(tt.q)); got != tt.want {
				t.Errorf("Select len = %d, want %d", got, tt.want)
			}
		})
	}

	e, ok := sl.First(LogQuery{Team: "red"})
	if !ok || e.Tick != 3 {
		t.Errorf("First red = %+v, %v", e, ok)
	}
	if !sl.HasEntry("combat", "death", "R1") || sl.HasEntry("combat", "death", "R9") {
		t.Error("HasEntry substring match wrong")
	}
	if got := sl.Since(2); len(got) != 1 || got[0].Key != "death" {
		t.Errorf("Since(2) = %+v", got)
	}
	out := sl.Format(LogQuery{Category: "deploy"})
	if strings.Count(out, "\n") != 2 || !strings.HasPrefix(out, "[T=001] B1") {
		t.Errorf("Format:\n%s", out)
	}
}

func TestSimLog_VerboseKeepsNoise(t *testing.T) {
	sl := NewSimLog(true)
	sl.AddVerbose(1, "B1", "blue", "move", "position", formatPos(1, 2), 1)
	if sl.Len() != 1 || sl.Entries()[0].Value != "(1.0,2.0)" {
		t.Fatalf("entries = %+v", sl.Entries())
	}
}
