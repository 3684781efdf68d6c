package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lawnchairsociety/openmaze/server/test"
)

func main() {
	baseURL := flag.String("addr", "http://localhost:8080", "Level service base URL")
	verbose := flag.Bool("v", false, "Verbose output - show detailed actions for each scenario")
	adminToken := flag.String("admin-token", "", "Admin bearer token for destructive scenarios")
	flag.Parse()

	test.Verbose = *verbose
	test.AdminToken = *adminToken

	fmt.Printf("Running integration tests against %s\n", *baseURL)
	fmt.Println("Make sure the level service is running!")
	if *verbose {
		fmt.Println("Verbose mode enabled - showing detailed test actions")
	}
	fmt.Println()

	results := test.RunAllTests(*baseURL)
	test.PrintResults(results)

	// Exit with error code if any scenario failed
	for _, result := range results {
		if !result.Passed {
			os.Exit(1)
		}
	}
}
