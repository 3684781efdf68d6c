package maze

import "fmt"

// farthestPair selects the start/goal rooms: the pair with the maximum
// shortest-path distance through carved (Absent) walls, returned together
// with that distance. Because the carved walls form a spanning tree every
// pair has exactly one path and a finite distance, and the winning pair are
// the endpoints of the tree's diameter.
//
// Distances come from a BFS rooted at every room in turn; the farthest pair
// is a global property, so nothing short of all pairs will do. The first
// maximum in room-index order wins, which makes ties resolve to the
// lexicographically smallest (start, goal) coordinates.
func (g *grid) farthestPair() (SpawnPositions, int) {
	n := len(g.rooms)

	adj := make([][]int, n)
	for _, e := range g.edges {
		if e.wall.Disposition == Absent {
			adj[e.a] = append(adj[e.a], e.b)
			adj[e.b] = append(adj[e.b], e.a)
		}
	}

	best := SpawnPositions{Start: g.rooms[0], Goal: g.rooms[0]}
	bestDist := 0
	dist := make([]int, n)

	for i := 0; i < n; i++ {
		for j := range dist {
			dist[j] = -1
		}
		dist[i] = 0
		queue := []int{i}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nb := range adj[cur] {
				if dist[nb] == -1 {
					dist[nb] = dist[cur] + 1
					queue = append(queue, nb)
				}
			}
		}

		for j := i + 1; j < n; j++ {
			if dist[j] == -1 {
				panic(fmt.Sprintf("maze: room (%d,%d) unreachable from (%d,%d) after carving",
					g.rooms[j].X, g.rooms[j].Z, g.rooms[i].X, g.rooms[i].Z))
			}
			if dist[j] > bestDist {
				bestDist = dist[j]
				best = SpawnPositions{Start: g.rooms[i], Goal: g.rooms[j]}
			}
		}
	}
	return best, bestDist
}
