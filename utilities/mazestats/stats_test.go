package mazestats

import (
	"testing"

	"github.com/lawnchairsociety/openmaze/server/internal/maze"
)

func TestAnalyzeCorridor(t *testing.T) {
	// A 1-wide extent is a single corridor: two dead ends, everything else
	// straight, spawn distance spanning the whole row.
	m := maze.Generate(maze.Range{Min: 0, Max: 6}, maze.Range{Min: 0, Max: 1}, 3, maze.Sizes{RoomSide: 1, WallRadius: 0.1})
	stats := Analyze(m)

	if stats.DeadEnds != 2 {
		t.Errorf("dead ends = %d, want 2", stats.DeadEnds)
	}
	if stats.Straights != 4 {
		t.Errorf("straights = %d, want 4", stats.Straights)
	}
	if stats.Turns != 0 || stats.Junctions != 0 || stats.Crossroads != 0 {
		t.Errorf("corridor has turns/junctions/crossroads: %+v", stats)
	}
	if stats.SpawnDistance != 5 {
		t.Errorf("spawn distance = %d, want 5", stats.SpawnDistance)
	}
}

func TestAnalyzeRoomClassesCoverAllRooms(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		m := maze.Generate(maze.Range{Min: 0, Max: 8}, maze.Range{Min: 0, Max: 8}, seed, maze.Sizes{RoomSide: 1, WallRadius: 0.1})
		stats := Analyze(m)

		classified := stats.DeadEnds + stats.Straights + stats.Turns + stats.Junctions + stats.Crossroads
		if classified != stats.Rooms {
			t.Errorf("seed %d: classified %d of %d rooms", seed, classified, stats.Rooms)
		}
		// Every spanning tree on more than one room has at least two leaves.
		if stats.DeadEnds < 2 {
			t.Errorf("seed %d: dead ends = %d, want >= 2", seed, stats.DeadEnds)
		}
	}
}

func TestRunSeeds(t *testing.T) {
	results := RunSeeds(5, 5, 100, 10)

	if len(results) != 10 {
		t.Fatalf("result count = %d, want 10", len(results))
	}
	for i, stats := range results {
		if stats.Seed != 100+int64(i) {
			t.Errorf("result %d seed = %d, want %d", i, stats.Seed, 100+int64(i))
		}
		if stats.Rooms != 25 {
			t.Errorf("result %d rooms = %d, want 25", i, stats.Rooms)
		}
	}
}

func TestSummarize(t *testing.T) {
	d := Summarize([]int{4, 2, 8, 6})

	if d.Min != 2 || d.Max != 8 {
		t.Errorf("min/max = %d/%d, want 2/8", d.Min, d.Max)
	}
	if d.Mean != 5.0 {
		t.Errorf("mean = %v, want 5.0", d.Mean)
	}

	if got := Summarize(nil); got != (Distribution{}) {
		t.Errorf("empty summary = %+v, want zero value", got)
	}
}
