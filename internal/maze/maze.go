// Package maze generates grid-maze topology for a level: which walls stand
// between axis-adjacent rooms, and the two rooms farthest apart through the
// carved passages. The output is pure data; placing meshes and colliders is
// the geometry layer's job.
package maze

import (
	"fmt"
	"math/rand"
)

// Range is a pair of inclusive integer bounds on one axis. Rooms occupy the
// half-open interior [Min, Max): the upper bound is the outer boundary line,
// not a room, so the range spans Max-Min rooms.
type Range struct {
	Min, Max int
}

// Len returns the number of rooms the range spans.
func (r Range) Len() int {
	return r.Max - r.Min
}

// Room is one maze cell, identified by the integer coordinates of its west
// and south edges. Rooms are values; two rooms are equal when their
// coordinates are.
type Room struct {
	X, Z int
}

// Sizes carries the geometric scale for the placement layer: the side length
// of one room and the half-thickness of a wall. The generator itself never
// reads it; it travels with the maze untouched.
type Sizes struct {
	RoomSide   float64
	WallRadius float64
}

// SpawnPositions are the two rooms separated by the longest shortest path
// through the carved maze: the endpoints of the spanning tree's diameter.
type SpawnPositions struct {
	Start Room
	Goal  Room
}

// Maze is one generated level topology. Walls holds the border walls first,
// then every interior wall in grid construction order, each with its final
// disposition. SpawnDistance is the passage count of the shortest path
// between Start and Goal, the carved tree's diameter.
type Maze struct {
	XRange        Range
	ZRange        Range
	Seed          int64
	Sizes         Sizes
	Walls         []Wall
	Spawns        SpawnPositions
	SpawnDistance int
}

// Generate builds the maze for the given extent. The carved (Absent) walls
// form a spanning tree of the rooms, the border is always fully enclosed,
// and Spawns are the farthest-apart pair of rooms with ties broken toward
// the lowest room coordinates.
//
// The result is a pure function of the arguments: the same ranges and seed
// always produce the same walls and the same spawns. Empty extents
// (Max <= Min on either axis) are a caller bug and panic.
func Generate(xRange, zRange Range, seed int64, sizes Sizes) *Maze {
	if xRange.Len() <= 0 || zRange.Len() <= 0 {
		panic(fmt.Sprintf("maze: empty extent x=[%d,%d] z=[%d,%d]", xRange.Min, xRange.Max, zRange.Min, zRange.Max))
	}

	grid := newGrid(xRange, zRange)
	grid.carve(rand.New(rand.NewSource(seed)))

	walls := BorderWalls(xRange, zRange)
	walls = append(walls, grid.interiorWalls()...)

	spawns, dist := grid.farthestPair()
	return &Maze{
		XRange:        xRange,
		ZRange:        zRange,
		Seed:          seed,
		Sizes:         sizes,
		Walls:         walls,
		Spawns:        spawns,
		SpawnDistance: dist,
	}
}

// RoomCount returns the number of rooms in the extent.
func (m *Maze) RoomCount() int {
	return m.XRange.Len() * m.ZRange.Len()
}

// PassageCount returns the number of carved (Absent) walls. For a valid
// maze this is always RoomCount()-1, one passage per spanning-tree edge.
func (m *Maze) PassageCount() int {
	count := 0
	for _, w := range m.Walls {
		if w.Disposition == Absent {
			count++
		}
	}
	return count
}

// PresentWalls returns only the walls that stand: the border plus every
// interior wall the carver kept. This is what the geometry layer renders
// and collides against.
func (m *Maze) PresentWalls() []Wall {
	present := make([]Wall, 0, len(m.Walls))
	for _, w := range m.Walls {
		if w.Disposition == Present {
			present = append(present, w)
		}
	}
	return present
}
