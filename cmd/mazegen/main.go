// mazegen generates a single maze level and writes it to a YAML file.
//
// Usage:
//
//	mazegen -name catacombs -width 12 -depth 12 -seed 42 -out data/levels
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lawnchairsociety/openmaze/server/internal/level"
	"github.com/lawnchairsociety/openmaze/server/internal/maze"
)

func main() {
	name := flag.String("name", "level", "Level name (also the output file name)")
	width := flag.Int("width", 10, "Rooms along the x axis")
	depth := flag.Int("depth", 10, "Rooms along the z axis")
	seed := flag.Int64("seed", 0, "Generation seed (default: random based on current time)")
	roomSide := flag.Float64("room-side", 2.0, "World-space side length of one room")
	wallRadius := flag.Float64("wall-radius", 0.1, "World-space half-thickness of a wall")
	outDir := flag.String("out", ".", "Output directory")
	flag.Parse()

	if *width < 1 || *depth < 1 {
		fmt.Fprintln(os.Stderr, "Error: width and depth must be at least 1")
		os.Exit(1)
	}
	if *roomSide <= 0 || *wallRadius <= 0 {
		fmt.Fprintln(os.Stderr, "Error: room-side and wall-radius must be positive")
		os.Exit(1)
	}

	genSeed := *seed
	if genSeed == 0 {
		genSeed = time.Now().UnixNano()
	}

	l := level.Build(*name,
		maze.Range{Min: 0, Max: *width},
		maze.Range{Min: 0, Max: *depth},
		genSeed,
		maze.Sizes{RoomSide: *roomSide, WallRadius: *wallRadius})

	outPath := filepath.Join(*outDir, *name+".yaml")
	if err := l.Save(outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing level: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Level %q written to %s\n", *name, outPath)
	fmt.Printf("  Seed:           %d\n", l.Seed)
	fmt.Printf("  Rooms:          %d (%dx%d)\n", l.RoomCount, *width, *depth)
	fmt.Printf("  Walls standing: %d\n", len(l.PresentWalls()))
	fmt.Printf("  Passages:       %d\n", l.PassageCount)
	fmt.Printf("  Start:          (%d, %d)\n", l.Spawns.Start.X, l.Spawns.Start.Z)
	fmt.Printf("  Goal:           (%d, %d)\n", l.Spawns.Goal.X, l.Spawns.Goal.Z)
	fmt.Printf("  Spawn distance: %d passages\n", l.SpawnDistance)
}
