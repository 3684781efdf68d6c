// mazemap renders a saved level YAML file as an ASCII maze map.
//
// Usage:
//
//	mazemap -input data/levels/catacombs.yaml
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lawnchairsociety/openmaze/server/internal/level"
	"github.com/lawnchairsociety/openmaze/server/internal/maze"
)

func main() {
	inputFile := flag.String("input", "level.yaml", "Path to level YAML file")
	outputFile := flag.String("output", "", "Output file (empty for stdout)")
	showLegend := flag.Bool("legend", true, "Show legend")
	flag.Parse()

	l, err := level.Load(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading level: %v\n", err)
		os.Exit(1)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("Level %q (seed %d)\n", l.Name, l.Seed))
	output.WriteString(fmt.Sprintf("Extent: %dx%d rooms, spawn distance %d passages\n",
		l.XRange.Len(), l.ZRange.Len(), l.SpawnDistance))
	output.WriteString(strings.Repeat("=", 60) + "\n\n")

	renderMaze(&output, l)

	if *showLegend {
		output.WriteString(getLegend())
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output.String()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Map written to %s\n", *outputFile)
	} else {
		fmt.Print(output.String())
	}
}

type wallKey struct {
	x, z        int
	orientation maze.Orientation
}

// renderMaze draws the maze with north (+z) at the top. Each room is a
// 3-wide cell; standing walls draw as --- and |, lattice points as +.
func renderMaze(output *strings.Builder, l *level.Level) {
	standing := make(map[wallKey]bool)
	for _, w := range l.Walls {
		if w.Disposition == maze.Present {
			standing[wallKey{w.X, w.Z, w.Orientation}] = true
		}
	}

	for z := l.ZRange.Max; z >= l.ZRange.Min; z-- {
		// Lattice line at z.
		for x := l.XRange.Min; x < l.XRange.Max; x++ {
			output.WriteString("+")
			if standing[wallKey{x, z, maze.ParallelToX}] {
				output.WriteString("---")
			} else {
				output.WriteString("   ")
			}
		}
		output.WriteString("+\n")

		if z == l.ZRange.Min {
			break
		}

		// Room row between lattice lines z and z-1.
		roomZ := z - 1
		for x := l.XRange.Min; x <= l.XRange.Max; x++ {
			if standing[wallKey{x, roomZ, maze.ParallelToZ}] {
				output.WriteString("|")
			} else {
				output.WriteString(" ")
			}
			if x < l.XRange.Max {
				output.WriteString(roomGlyph(l, x, roomZ))
			}
		}
		output.WriteString("\n")
	}
	output.WriteString("\n")
}

func roomGlyph(l *level.Level, x, z int) string {
	room := maze.Room{X: x, Z: z}
	switch room {
	case l.Spawns.Start:
		return " S "
	case l.Spawns.Goal:
		return " G "
	}
	return "   "
}

func getLegend() string {
	return `Legend:
  S    start room
  G    goal room
  ---  standing wall (x-parallel)
  |    standing wall (z-parallel)
  +    lattice point
North is up (+z); east is right (+x).
`
}
