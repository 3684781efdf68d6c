package maze

import (
	"fmt"
	"math/rand"
)

// Partition of the room set during carving. A room is reached exactly once:
// unfinished -> frontier when first connected, frontier -> finished when no
// Unknown walls touch it anymore.
type carveState uint8

const (
	stateUnfinished carveState = iota
	stateFrontier
	stateFinished
)

// carve resolves every Unknown interior wall to Present or Absent so that
// the Absent walls form a spanning tree over the rooms: connected, acyclic,
// exactly rooms-1 passages.
//
// Each iteration draws one frontier room uniformly at random; if the room
// still touches Unknown walls it resolves one of them (again drawn
// uniformly), carving only when the far side has never been reached.
// Carving into a reached room would close a cycle, so those walls stay.
// Drawing from the whole frontier rather than the most recent room is what
// keeps the maze branchy instead of one long corridor.
//
// All random draws use Intn over slices with deterministic order, so a
// fixed seed reproduces the same maze on every run.
func (g *grid) carve(rng *rand.Rand) {
	state := make([]carveState, len(g.rooms))
	frontier := make([]int, 0, len(g.rooms))

	first := rng.Intn(len(g.rooms))
	state[first] = stateFrontier
	frontier = append(frontier, first)

	unknown := make([]int, 0, 4)
	for len(frontier) > 0 {
		fi := rng.Intn(len(frontier))
		r := frontier[fi]

		unknown = unknown[:0]
		for _, ei := range g.incident[r] {
			if g.edges[ei].wall.Disposition == Unknown {
				unknown = append(unknown, ei)
			}
		}
		if len(unknown) == 0 {
			state[r] = stateFinished
			frontier = append(frontier[:fi], frontier[fi+1:]...)
			continue
		}

		ei := unknown[rng.Intn(len(unknown))]
		n := g.across(ei, r)
		if state[n] == stateUnfinished {
			g.edges[ei].wall.Disposition = Absent
			state[n] = stateFrontier
			frontier = append(frontier, n)
		} else {
			g.edges[ei].wall.Disposition = Present
		}
	}

	// An unreached room or an unresolved wall here is a defect in the
	// carver, not a bad input: fail fast.
	for i, s := range state {
		if s != stateFinished {
			panic(fmt.Sprintf("maze: room (%d,%d) never finished carving", g.rooms[i].X, g.rooms[i].Z))
		}
	}
	for _, e := range g.edges {
		if e.wall.Disposition == Unknown {
			panic(fmt.Sprintf("maze: wall at (%d,%d) %s left unresolved", e.wall.X, e.wall.Z, e.wall.Orientation))
		}
	}
}
