package maze

import "fmt"

// edge is one interior wall together with the two rooms it separates.
// Room indexes satisfy a < b.
type edge struct {
	a, b int
	wall Wall
}

// grid is the room graph for a rectangular extent: a dense arena of rooms
// plus exactly one interior edge per axis-adjacent room pair. Rooms are laid
// out x-major (x is the slow axis), so room index order is the
// lexicographic order of (X, Z) coordinates.
type grid struct {
	xRange, zRange Range
	rows           int // rooms along z, the fast axis
	rooms          []Room
	edges          []edge
	incident       [][]int // room index -> indexes into edges
}

// newGrid builds the full room arena and the Unknown interior edges for the
// extent. A single-room extent yields one node and no edges.
func newGrid(xRange, zRange Range) *grid {
	cols, rows := xRange.Len(), zRange.Len()

	g := &grid{
		xRange: xRange,
		zRange: zRange,
		rows:   rows,
		rooms:  make([]Room, 0, cols*rows),
	}
	for x := xRange.Min; x < xRange.Max; x++ {
		for z := zRange.Min; z < zRange.Max; z++ {
			g.rooms = append(g.rooms, Room{X: x, Z: z})
		}
	}

	g.incident = make([][]int, len(g.rooms))
	g.edges = make([]edge, 0, cols*(rows-1)+rows*(cols-1))
	for i, r := range g.rooms {
		// The wall separating (x,z) from its +x neighbor runs along z and is
		// anchored at the shared boundary line x+1; symmetrically for +z.
		if r.X+1 < xRange.Max {
			g.addEdge(i, g.index(r.X+1, r.Z), Wall{X: r.X + 1, Z: r.Z, Orientation: ParallelToZ, Disposition: Unknown})
		}
		if r.Z+1 < zRange.Max {
			g.addEdge(i, g.index(r.X, r.Z+1), Wall{X: r.X, Z: r.Z + 1, Orientation: ParallelToX, Disposition: Unknown})
		}
	}
	return g
}

// index returns the arena index of the room at (x, z). Asking for a room
// outside the extent is a defect in the generator itself.
func (g *grid) index(x, z int) int {
	if x < g.xRange.Min || x >= g.xRange.Max || z < g.zRange.Min || z >= g.zRange.Max {
		panic(fmt.Sprintf("maze: room (%d,%d) outside extent x=[%d,%d] z=[%d,%d]",
			x, z, g.xRange.Min, g.xRange.Max, g.zRange.Min, g.zRange.Max))
	}
	return (x-g.xRange.Min)*g.rows + (z - g.zRange.Min)
}

func (g *grid) addEdge(a, b int, w Wall) {
	if b < a {
		a, b = b, a
	}
	ei := len(g.edges)
	g.edges = append(g.edges, edge{a: a, b: b, wall: w})
	g.incident[a] = append(g.incident[a], ei)
	g.incident[b] = append(g.incident[b], ei)
}

// across returns the room on the other side of edge ei from room r.
func (g *grid) across(ei, r int) int {
	e := g.edges[ei]
	if e.a == r {
		return e.b
	}
	return e.a
}

// interiorWalls returns every interior wall in construction order with its
// current disposition.
func (g *grid) interiorWalls() []Wall {
	walls := make([]Wall, len(g.edges))
	for i, e := range g.edges {
		walls[i] = e.wall
	}
	return walls
}
