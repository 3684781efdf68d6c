package test

import (
	"time"

	"github.com/lawnchairsociety/openmaze/server/internal/testclient"
)

// testFeedBroadcast subscribes to the feed and checks that a newly
// generated level arrives on it.
func testFeedBroadcast(baseURL string) TestResult {
	const name = "FeedBroadcast"
	client := testclient.New(baseURL)

	logAction(name, "subscribing to feed")
	feed, err := client.SubscribeFeed()
	if err != nil {
		return fail(name, "subscribe failed: %v", err)
	}
	defer feed.Close()

	// Give the service a moment to register the subscription.
	time.Sleep(200 * time.Millisecond)

	levelName := uniqueName("feed")
	logAction(name, "generating "+levelName)
	if _, err := client.GenerateLevel(testclient.GenerateRequest{Name: levelName, Seed: ptr(int64(7))}); err != nil {
		return fail(name, "generate failed: %v", err)
	}

	// The feed may carry levels from concurrent scenarios; read until ours
	// shows up or the window closes.
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		lvl, err := feed.Next(time.Until(deadline))
		if err != nil {
			return fail(name, "feed read failed: %v", err)
		}
		if lvl.Name == levelName {
			return pass(name)
		}
		logAction(name, "skipping feed level "+lvl.Name)
	}
	return fail(name, "level %s never arrived on the feed", levelName)
}
