package level

import (
	"reflect"
	"testing"

	"github.com/lawnchairsociety/openmaze/server/internal/maze"
)

func TestBuildDerivedStats(t *testing.T) {
	l := Build("trial", maze.Range{Min: 0, Max: 6}, maze.Range{Min: 0, Max: 4}, 17, maze.Sizes{RoomSide: 2, WallRadius: 0.1})

	if l.Name != "trial" {
		t.Errorf("name = %q, want %q", l.Name, "trial")
	}
	if l.RoomCount != 24 {
		t.Errorf("room count = %d, want 24", l.RoomCount)
	}
	if l.PassageCount != 23 {
		t.Errorf("passage count = %d, want 23", l.PassageCount)
	}
	if l.SpawnDistance <= 0 {
		t.Errorf("spawn distance = %d, want > 0", l.SpawnDistance)
	}
	if l.GeneratedAt.IsZero() {
		t.Error("generated timestamp not set")
	}
}

func TestBuildDeterministicTopology(t *testing.T) {
	sizes := maze.Sizes{RoomSide: 1, WallRadius: 0.1}
	a := Build("a", maze.Range{Min: 0, Max: 5}, maze.Range{Min: 0, Max: 5}, 42, sizes)
	b := Build("b", maze.Range{Min: 0, Max: 5}, maze.Range{Min: 0, Max: 5}, 42, sizes)

	if !reflect.DeepEqual(a.Walls, b.Walls) {
		t.Error("same seed produced different walls")
	}
	if a.Spawns != b.Spawns {
		t.Errorf("same seed produced different spawns: %v vs %v", a.Spawns, b.Spawns)
	}
}

func TestPresentWallsCount(t *testing.T) {
	l := Build("trial", maze.Range{Min: 0, Max: 4}, maze.Range{Min: 0, Max: 4}, 9, maze.Sizes{RoomSide: 1, WallRadius: 0.1})

	present := l.PresentWalls()
	for _, w := range present {
		if w.Disposition != maze.Present {
			t.Errorf("PresentWalls returned %+v", w)
		}
	}
	if got := len(present) + l.PassageCount; got != len(l.Walls) {
		t.Errorf("present + passages = %d, want %d", got, len(l.Walls))
	}
}
