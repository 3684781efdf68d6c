package maze

// BorderWalls returns the walls enclosing the extent's outer rectangle: one
// ParallelToX wall per unit x-step along both z extremes and one ParallelToZ
// wall per unit z-step along both x extremes. Border walls are always
// Present; no seed and no carving outcome changes them.
func BorderWalls(xRange, zRange Range) []Wall {
	walls := make([]Wall, 0, 2*(xRange.Len()+zRange.Len()))
	for x := xRange.Min; x < xRange.Max; x++ {
		walls = append(walls,
			Wall{X: x, Z: zRange.Min, Orientation: ParallelToX, Disposition: Present},
			Wall{X: x, Z: zRange.Max, Orientation: ParallelToX, Disposition: Present},
		)
	}
	for z := zRange.Min; z < zRange.Max; z++ {
		walls = append(walls,
			Wall{X: xRange.Min, Z: z, Orientation: ParallelToZ, Disposition: Present},
			Wall{X: xRange.Max, Z: z, Orientation: ParallelToZ, Disposition: Present},
		)
	}
	return walls
}
