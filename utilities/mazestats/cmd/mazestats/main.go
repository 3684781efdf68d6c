// mazestats is a Monte Carlo analyzer for generated maze topology.
//
// It generates many mazes for one extent and reports how branchy they come
// out: dead ends, junctions, corridor straightness, and spawn distance.
//
// Usage:
//
//	mazestats -width 12 -depth 12 -runs 500
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lawnchairsociety/openmaze/server/utilities/mazestats"
)

func main() {
	width := flag.Int("width", 10, "Rooms along the x axis")
	depth := flag.Int("depth", 10, "Rooms along the z axis")
	runs := flag.Int("runs", 100, "Number of seeds to generate")
	baseSeed := flag.Int64("seed", 0, "First seed (default: current time)")
	flag.Parse()

	if *width < 1 || *depth < 1 || *runs < 1 {
		fmt.Fprintln(os.Stderr, "Error: width, depth and runs must be at least 1")
		os.Exit(1)
	}

	seed := *baseSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fmt.Printf("Analyzing %d mazes of %dx%d rooms (seeds %d..%d)\n\n",
		*runs, *width, *depth, seed, seed+int64(*runs)-1)

	results := mazestats.RunSeeds(*width, *depth, seed, *runs)

	deadEnds := make([]int, len(results))
	straights := make([]int, len(results))
	turns := make([]int, len(results))
	junctions := make([]int, len(results))
	crossroads := make([]int, len(results))
	spawnDist := make([]int, len(results))
	for i, stats := range results {
		deadEnds[i] = stats.DeadEnds
		straights[i] = stats.Straights
		turns[i] = stats.Turns
		junctions[i] = stats.Junctions
		crossroads[i] = stats.Crossroads
		spawnDist[i] = stats.SpawnDistance
	}

	rooms := *width * *depth
	fmt.Printf("%-16s %6s %8s %6s\n", "metric", "min", "mean", "max")
	printRow("dead ends", mazestats.Summarize(deadEnds))
	printRow("straights", mazestats.Summarize(straights))
	printRow("turns", mazestats.Summarize(turns))
	printRow("junctions", mazestats.Summarize(junctions))
	printRow("crossroads", mazestats.Summarize(crossroads))
	printRow("spawn distance", mazestats.Summarize(spawnDist))

	mean := mazestats.Summarize(spawnDist).Mean
	fmt.Printf("\nRooms per maze: %d; mean spawn distance covers %.0f%% of the room count.\n",
		rooms, 100*mean/float64(rooms))
}

func printRow(name string, d mazestats.Distribution) {
	fmt.Printf("%-16s %6d %8.1f %6d\n", name, d.Min, d.Mean, d.Max)
}
