package test

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/lawnchairsociety/openmaze/server/internal/testclient"
)

func ptr[T any](v T) *T { return &v }

// testGenerateLevel generates a level and checks the response shape.
func testGenerateLevel(baseURL string) TestResult {
	const name = "GenerateLevel"
	client := testclient.New(baseURL)

	levelName := uniqueName("gen")
	logAction(name, "generating 6x4 level "+levelName)
	lvl, err := client.GenerateLevel(testclient.GenerateRequest{
		Name:   levelName,
		XRange: &testclient.Range{Min: 0, Max: 6},
		ZRange: &testclient.Range{Min: 0, Max: 4},
		Seed:   ptr(int64(21)),
	})
	if err != nil {
		return fail(name, "generate failed: %v", err)
	}

	if lvl.RoomCount != 24 {
		return fail(name, "room count = %d, want 24", lvl.RoomCount)
	}
	if lvl.PassageCount != 23 {
		return fail(name, "passage count = %d, want 23", lvl.PassageCount)
	}
	// Border 2*(6+4) plus interior 6*3+4*5.
	if len(lvl.Walls) != 58 {
		return fail(name, "wall count = %d, want 58", len(lvl.Walls))
	}
	if lvl.Start == lvl.Goal {
		return fail(name, "start equals goal: %+v", lvl.Start)
	}
	if lvl.SpawnDistance <= 0 {
		return fail(name, "spawn distance = %d", lvl.SpawnDistance)
	}
	return pass(name)
}

// testDeterministicSeeds generates two levels from one seed and compares.
func testDeterministicSeeds(baseURL string) TestResult {
	const name = "DeterministicSeeds"
	client := testclient.New(baseURL)

	req := testclient.GenerateRequest{
		XRange: &testclient.Range{Min: 0, Max: 5},
		ZRange: &testclient.Range{Min: 0, Max: 5},
		Seed:   ptr(int64(314)),
	}

	req.Name = uniqueName("det")
	logAction(name, "generating first copy "+req.Name)
	a, err := client.GenerateLevel(req)
	if err != nil {
		return fail(name, "first generate failed: %v", err)
	}

	req.Name = uniqueName("det")
	logAction(name, "generating second copy "+req.Name)
	b, err := client.GenerateLevel(req)
	if err != nil {
		return fail(name, "second generate failed: %v", err)
	}

	if !reflect.DeepEqual(a.Walls, b.Walls) {
		return fail(name, "same seed produced different walls")
	}
	if a.Start != b.Start || a.Goal != b.Goal {
		return fail(name, "same seed produced different spawns")
	}
	return pass(name)
}

// testSpanningTreeInvariants checks passage count and start/goal distance
// through the walls the service reports.
func testSpanningTreeInvariants(baseURL string) TestResult {
	const name = "SpanningTreeInvariants"
	client := testclient.New(baseURL)

	lvl, err := client.GenerateLevel(testclient.GenerateRequest{
		Name:   uniqueName("tree"),
		XRange: &testclient.Range{Min: 0, Max: 7},
		ZRange: &testclient.Range{Min: 0, Max: 7},
		Seed:   ptr(int64(99)),
	})
	if err != nil {
		return fail(name, "generate failed: %v", err)
	}

	absent := 0
	for _, w := range lvl.Walls {
		switch w.Disposition {
		case "absent":
			absent++
		case "unknown":
			return fail(name, "wall at (%d,%d) is unresolved", w.X, w.Z)
		}
	}
	if absent != lvl.RoomCount-1 {
		return fail(name, "absent walls = %d, want %d", absent, lvl.RoomCount-1)
	}

	dist := passageDistance(lvl, lvl.Start, lvl.Goal)
	if dist != lvl.SpawnDistance {
		return fail(name, "recomputed spawn distance %d, service reported %d", dist, lvl.SpawnDistance)
	}
	return pass(name)
}

// passageDistance walks the carved passages from start to goal with a BFS
// over the reported wall list.
func passageDistance(lvl *testclient.Level, from, to testclient.Room) int {
	type link struct{ a, b testclient.Room }
	links := make([]link, 0, len(lvl.Walls))
	for _, w := range lvl.Walls {
		if w.Disposition != "absent" {
			continue
		}
		switch w.Orientation {
		case "parallel_to_z":
			links = append(links, link{testclient.Room{X: w.X - 1, Z: w.Z}, testclient.Room{X: w.X, Z: w.Z}})
		case "parallel_to_x":
			links = append(links, link{testclient.Room{X: w.X, Z: w.Z - 1}, testclient.Room{X: w.X, Z: w.Z}})
		}
	}

	adj := make(map[testclient.Room][]testclient.Room)
	for _, l := range links {
		adj[l.a] = append(adj[l.a], l.b)
		adj[l.b] = append(adj[l.b], l.a)
	}

	dist := map[testclient.Room]int{from: 0}
	queue := []testclient.Room{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range adj[cur] {
			if _, seen := dist[n]; !seen {
				dist[n] = dist[cur] + 1
				queue = append(queue, n)
			}
		}
	}
	d, ok := dist[to]
	if !ok {
		return -1
	}
	return d
}

// testListAndGet stores a level and reads it back both ways.
func testListAndGet(baseURL string) TestResult {
	const name = "ListAndGet"
	client := testclient.New(baseURL)

	levelName := uniqueName("fetch")
	created, err := client.GenerateLevel(testclient.GenerateRequest{
		Name: levelName,
		Seed: ptr(int64(5)),
	})
	if err != nil {
		return fail(name, "generate failed: %v", err)
	}

	logAction(name, "fetching "+levelName)
	got, err := client.GetLevel(levelName, false)
	if err != nil {
		return fail(name, "get failed: %v", err)
	}
	if !reflect.DeepEqual(got.Walls, created.Walls) {
		return fail(name, "stored walls differ from generated walls")
	}

	summaries, err := client.ListLevels()
	if err != nil {
		return fail(name, "list failed: %v", err)
	}
	for _, sum := range summaries {
		if sum.Name == levelName {
			return pass(name)
		}
	}
	return fail(name, "level %s missing from list", levelName)
}

// testPresentWallFilter checks the ?walls=present filter.
func testPresentWallFilter(baseURL string) TestResult {
	const name = "PresentWallFilter"
	client := testclient.New(baseURL)

	levelName := uniqueName("filter")
	full, err := client.GenerateLevel(testclient.GenerateRequest{
		Name: levelName,
		Seed: ptr(int64(12)),
	})
	if err != nil {
		return fail(name, "generate failed: %v", err)
	}

	filtered, err := client.GetLevel(levelName, true)
	if err != nil {
		return fail(name, "filtered get failed: %v", err)
	}
	for _, w := range filtered.Walls {
		if w.Disposition != "present" {
			return fail(name, "filtered response includes %s wall at (%d,%d)", w.Disposition, w.X, w.Z)
		}
	}
	if want := len(full.Walls) - full.PassageCount; len(filtered.Walls) != want {
		return fail(name, "filtered wall count = %d, want %d", len(filtered.Walls), want)
	}
	return pass(name)
}

// testDuplicateNameRejected checks the name-uniqueness contract.
func testDuplicateNameRejected(baseURL string) TestResult {
	const name = "DuplicateNameRejected"
	client := testclient.New(baseURL)

	levelName := uniqueName("dup")
	if _, err := client.GenerateLevel(testclient.GenerateRequest{Name: levelName, Seed: ptr(int64(1))}); err != nil {
		return fail(name, "first generate failed: %v", err)
	}

	_, err := client.GenerateLevel(testclient.GenerateRequest{Name: levelName, Seed: ptr(int64(2))})
	var apiErr *testclient.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusConflict {
		return fail(name, "duplicate generate error = %v, want 409", err)
	}
	return pass(name)
}

// testInvalidExtentRejected checks extent validation.
func testInvalidExtentRejected(baseURL string) TestResult {
	const name = "InvalidExtentRejected"
	client := testclient.New(baseURL)

	_, err := client.GenerateLevel(testclient.GenerateRequest{
		Name:   uniqueName("bad"),
		XRange: &testclient.Range{Min: 3, Max: 3},
	})
	var apiErr *testclient.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadRequest {
		return fail(name, "empty extent error = %v, want 400", err)
	}
	return pass(name)
}

// testDeleteLevel exercises the admin-only delete endpoint when a token is
// configured for the run.
func testDeleteLevel(baseURL string) TestResult {
	const name = "DeleteLevel"
	client := testclient.New(baseURL)

	levelName := uniqueName("doomed")
	if _, err := client.GenerateLevel(testclient.GenerateRequest{Name: levelName, Seed: ptr(int64(8))}); err != nil {
		return fail(name, "generate failed: %v", err)
	}

	// Without a token the delete must be refused.
	if err := client.DeleteLevel(levelName); err == nil {
		return fail(name, "unauthenticated delete succeeded")
	}

	if AdminToken == "" {
		logAction(name, "no admin token configured; skipping authorized delete")
		return pass(name)
	}

	client.SetAdminToken(AdminToken)
	if err := client.DeleteLevel(levelName); err != nil {
		return fail(name, "authorized delete failed: %v", err)
	}
	if _, err := client.GetLevel(levelName, false); err == nil {
		return fail(name, "level still exists after delete")
	}
	return pass(name)
}
