// Package test holds integration scenarios run against a live level
// service by cmd/testrunner.
package test

import (
	"fmt"
	"sync/atomic"
)

// uniqueCounter provides unique level names within a single run
var uniqueCounter uint64

// uniqueName generates a unique level name by appending a counter suffix
func uniqueName(base string) string {
	counter := atomic.AddUint64(&uniqueCounter, 1)
	return fmt.Sprintf("%s-%d", base, counter)
}

// Verbose controls whether detailed logging is shown during tests
var Verbose = false

// AdminToken is the bearer token used for destructive scenarios. Empty
// skips those scenarios.
var AdminToken = ""

// TestResult represents the result of a test
type TestResult struct {
	Name    string
	Passed  bool
	Message string
}

// logAction logs a test action when verbose mode is enabled
func logAction(testName, action string) {
	if Verbose {
		fmt.Printf("  [%s] %s\n", testName, action)
	}
}

// RunAllTests runs every scenario against the service at baseURL.
func RunAllTests(baseURL string) []TestResult {
	scenarios := []struct {
		name string
		run  func(baseURL string) TestResult
	}{
		{"GenerateLevel", testGenerateLevel},
		{"DeterministicSeeds", testDeterministicSeeds},
		{"SpanningTreeInvariants", testSpanningTreeInvariants},
		{"ListAndGet", testListAndGet},
		{"PresentWallFilter", testPresentWallFilter},
		{"DuplicateNameRejected", testDuplicateNameRejected},
		{"InvalidExtentRejected", testInvalidExtentRejected},
		{"FeedBroadcast", testFeedBroadcast},
		{"DeleteLevel", testDeleteLevel},
	}

	results := make([]TestResult, 0, len(scenarios))
	for _, s := range scenarios {
		if Verbose {
			fmt.Printf("Running %s...\n", s.name)
		}
		results = append(results, s.run(baseURL))
	}
	return results
}

// PrintResults prints a summary of the results.
func PrintResults(results []TestResult) {
	passed := 0
	for _, r := range results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		} else {
			passed++
		}
		fmt.Printf("[%s] %s", status, r.Name)
		if r.Message != "" {
			fmt.Printf(" - %s", r.Message)
		}
		fmt.Println()
	}
	fmt.Printf("\n%d/%d scenarios passed\n", passed, len(results))
}

func pass(name string) TestResult {
	return TestResult{Name: name, Passed: true}
}

func fail(name, format string, args ...any) TestResult {
	return TestResult{Name: name, Passed: false, Message: fmt.Sprintf(format, args...)}
}
