// Package mazestats measures the shape of generated mazes across many
// seeds: dead ends, junctions, corridor straightness, spawn distance. Used
// when tuning level extents, not by the service itself.
package mazestats

import (
	"github.com/lawnchairsociety/openmaze/server/internal/maze"
)

// LevelStats summarizes the topology of one generated maze.
type LevelStats struct {
	Seed          int64
	Rooms         int
	DeadEnds      int // rooms with one passage
	Straights     int // two passages, same axis
	Turns         int // two passages, different axes
	Junctions     int // three passages
	Crossroads    int // four passages
	SpawnDistance int
}

// Analyze computes the stats for one maze.
func Analyze(m *maze.Maze) LevelStats {
	cols := m.XRange.Len()
	rows := m.ZRange.Len()

	// Per-room passage counts split by axis. Index is x-major to match the
	// generator's room order.
	index := func(x, z int) int {
		return (x-m.XRange.Min)*rows + (z - m.ZRange.Min)
	}
	xLinks := make([]int, cols*rows)
	zLinks := make([]int, cols*rows)

	for _, w := range m.Walls {
		if w.Disposition != maze.Absent {
			continue
		}
		switch w.Orientation {
		case maze.ParallelToZ:
			// Carved wall on line x separates rooms (x-1,z) and (x,z).
			xLinks[index(w.X-1, w.Z)]++
			xLinks[index(w.X, w.Z)]++
		case maze.ParallelToX:
			zLinks[index(w.X, w.Z-1)]++
			zLinks[index(w.X, w.Z)]++
		}
	}

	stats := LevelStats{
		Seed:          m.Seed,
		Rooms:         cols * rows,
		SpawnDistance: m.SpawnDistance,
	}
	for i := range xLinks {
		switch degree := xLinks[i] + zLinks[i]; degree {
		case 1:
			stats.DeadEnds++
		case 2:
			if xLinks[i] == 2 || zLinks[i] == 2 {
				stats.Straights++
			} else {
				stats.Turns++
			}
		case 3:
			stats.Junctions++
		case 4:
			stats.Crossroads++
		}
	}
	return stats
}

// RunSeeds generates runs mazes on the given extent with consecutive seeds
// starting at baseSeed and analyzes each.
func RunSeeds(width, depth int, baseSeed int64, runs int) []LevelStats {
	results := make([]LevelStats, 0, runs)
	for i := 0; i < runs; i++ {
		m := maze.Generate(
			maze.Range{Min: 0, Max: width},
			maze.Range{Min: 0, Max: depth},
			baseSeed+int64(i),
			maze.Sizes{RoomSide: 1, WallRadius: 0.1})
		results = append(results, Analyze(m))
	}
	return results
}

// Distribution holds summary statistics for one measured quantity.
type Distribution struct {
	Min  int
	Max  int
	Mean float64
}

// Summarize reduces a series of values to min/mean/max.
func Summarize(values []int) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	d := Distribution{Min: values[0], Max: values[0]}
	total := 0
	for _, v := range values {
		if v < d.Min {
			d.Min = v
		}
		if v > d.Max {
			d.Max = v
		}
		total += v
	}
	d.Mean = float64(total) / float64(len(values))
	return d
}
