package maze

import (
	"math/rand"
	"testing"
)

func TestFarthestPairIsDiameter(t *testing.T) {
	tests := []struct {
		cols, rows int
	}{
		{2, 2},
		{4, 4},
		{7, 3},
		{6, 6},
	}

	for _, tc := range tests {
		for seed := int64(1); seed <= 5; seed++ {
			g := newGrid(Range{0, tc.cols}, Range{0, tc.rows})
			g.carve(rand.New(rand.NewSource(seed)))
			spawns, dist := g.farthestPair()

			// Recompute every pairwise distance independently and check no
			// pair beats the selected one.
			for i := range g.rooms {
				d := carvedDistances(g, i)
				for j := range g.rooms {
					if d[j] > dist {
						t.Errorf("%dx%d seed %d: rooms %v and %v are %d apart, selected pair %v only %d",
							tc.cols, tc.rows, seed, g.rooms[i], g.rooms[j], d[j], spawns, dist)
					}
				}
			}

			si := g.index(spawns.Start.X, spawns.Start.Z)
			gi := g.index(spawns.Goal.X, spawns.Goal.Z)
			if got := carvedDistances(g, si)[gi]; got != dist {
				t.Errorf("%dx%d seed %d: reported spawn distance %d, actual path is %d",
					tc.cols, tc.rows, seed, dist, got)
			}
		}
	}
}

func TestFarthestPairTieBreakOrder(t *testing.T) {
	// A single row of rooms is one corridor regardless of seed: the diameter
	// endpoints are the row's two ends, in index order.
	g := newGrid(Range{0, 5}, Range{0, 1})
	g.carve(rand.New(rand.NewSource(3)))
	spawns, dist := g.farthestPair()

	if spawns.Start != (Room{0, 0}) || spawns.Goal != (Room{4, 0}) {
		t.Errorf("corridor spawns = %v, want start {0 0} goal {4 0}", spawns)
	}
	if dist != 4 {
		t.Errorf("corridor spawn distance = %d, want 4", dist)
	}
}

func TestFarthestPairSingleRoom(t *testing.T) {
	g := newGrid(Range{0, 1}, Range{0, 1})
	g.carve(rand.New(rand.NewSource(1)))
	spawns, dist := g.farthestPair()

	if spawns.Start != spawns.Goal {
		t.Errorf("single room spawns = %v, want start == goal", spawns)
	}
	if dist != 0 {
		t.Errorf("single room spawn distance = %d, want 0", dist)
	}
}

// carvedDistances runs a BFS from the given room over Absent walls.
func carvedDistances(g *grid, from int) []int {
	dist := make([]int, len(g.rooms))
	for i := range dist {
		dist[i] = -1
	}
	dist[from] = 0
	queue := []int{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, ei := range g.incident[cur] {
			if g.edges[ei].wall.Disposition != Absent {
				continue
			}
			if n := g.across(ei, cur); dist[n] == -1 {
				dist[n] = dist[cur] + 1
				queue = append(queue, n)
			}
		}
	}
	return dist
}
