package level

import (
	"math"

	"github.com/lawnchairsociety/openmaze/server/internal/maze"
)

// WallPlacement is the world-space pose of one standing wall segment: the
// engine drops a box of the given extents at the center with the given yaw.
// A ParallelToX wall sits at (x+0.5, z) in room units with yaw 0; a
// ParallelToZ wall at (x, z+0.5) turned a quarter circle.
type WallPlacement struct {
	CenterX float64
	CenterZ float64
	Yaw     float64
	Length  float64
	Radius  float64
}

// CornerPost is a pillar at one lattice point of the grid, closing the gaps
// where wall segments meet.
type CornerPost struct {
	X      float64
	Z      float64
	Radius float64
}

// WallPlacements returns one placement per standing wall, scaled by the
// level's room side length.
func (l *Level) WallPlacements() []WallPlacement {
	side := l.Sizes.RoomSide
	placements := make([]WallPlacement, 0, len(l.Walls))
	for _, w := range l.Walls {
		if w.Disposition != maze.Present {
			continue
		}
		p := WallPlacement{
			Length: side,
			Radius: l.Sizes.WallRadius,
		}
		switch w.Orientation {
		case maze.ParallelToX:
			p.CenterX = (float64(w.X) + 0.5) * side
			p.CenterZ = float64(w.Z) * side
		case maze.ParallelToZ:
			p.CenterX = float64(w.X) * side
			p.CenterZ = (float64(w.Z) + 0.5) * side
			p.Yaw = math.Pi / 2
		}
		placements = append(placements, p)
	}
	return placements
}

// CornerPosts returns one post per lattice point of the extent, including
// the outer boundary lines.
func (l *Level) CornerPosts() []CornerPost {
	side := l.Sizes.RoomSide
	posts := make([]CornerPost, 0, (l.XRange.Len()+1)*(l.ZRange.Len()+1))
	for x := l.XRange.Min; x <= l.XRange.Max; x++ {
		for z := l.ZRange.Min; z <= l.ZRange.Max; z++ {
			posts = append(posts, CornerPost{
				X:      float64(x) * side,
				Z:      float64(z) * side,
				Radius: l.Sizes.WallRadius,
			})
		}
	}
	return posts
}

// SpawnPoint returns the world-space center of a room.
func (l *Level) SpawnPoint(r maze.Room) (x, z float64) {
	side := l.Sizes.RoomSide
	return (float64(r.X) + 0.5) * side, (float64(r.Z) + 0.5) * side
}
