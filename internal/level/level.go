// Package level assembles generator output into a named, saveable level:
// the wall list and spawn rooms from the maze generator plus the derived
// numbers and world-space placement data the game engine consumes.
package level

import (
	"time"

	"github.com/lawnchairsociety/openmaze/server/internal/maze"
)

// Level is one generated maze level, ready to serialize or serve.
type Level struct {
	Name        string
	Seed        int64
	XRange      maze.Range
	ZRange      maze.Range
	Sizes       maze.Sizes
	GeneratedAt time.Time

	Walls  []maze.Wall
	Spawns maze.SpawnPositions

	RoomCount     int
	PassageCount  int
	SpawnDistance int
}

// Build generates the maze for the given extent and wraps it as a Level.
// Same ranges and seed always produce the same level apart from the
// timestamp.
func Build(name string, xRange, zRange maze.Range, seed int64, sizes maze.Sizes) *Level {
	m := maze.Generate(xRange, zRange, seed, sizes)

	return &Level{
		Name:          name,
		Seed:          seed,
		XRange:        xRange,
		ZRange:        zRange,
		Sizes:         sizes,
		GeneratedAt:   time.Now().UTC(),
		Walls:         m.Walls,
		Spawns:        m.Spawns,
		RoomCount:     m.RoomCount(),
		PassageCount:  m.PassageCount(),
		SpawnDistance: m.SpawnDistance,
	}
}

// PresentWalls returns the walls that stand, border first then interior.
func (l *Level) PresentWalls() []maze.Wall {
	present := make([]maze.Wall, 0, len(l.Walls))
	for _, w := range l.Walls {
		if w.Disposition == maze.Present {
			present = append(present, w)
		}
	}
	return present
}
