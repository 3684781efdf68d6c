package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lawnchairsociety/openmaze/server/internal/config"
	"github.com/lawnchairsociety/openmaze/server/internal/logger"
	"github.com/lawnchairsociety/openmaze/server/internal/server"
	"github.com/lawnchairsociety/openmaze/server/internal/store"
)

func main() {
	addr := flag.String("addr", "", "Listen address (overrides config)")
	configFile := flag.String("config", "data/service.yaml", "Path to service config YAML file")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	dbFile := flag.String("db", "", "Path to SQLite level database (overrides config)")
	flag.Parse()

	// Initialize logger first (before any logging)
	logConfig, _ := logger.LoadConfig(*loggingConfig)
	logger.Initialize(logConfig)

	logger.Info("Starting OpenMaze level service")

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Warning("Failed to load service config, using defaults", "path", *configFile, "error", err)
		cfg = config.DefaultConfig()
	}
	if *addr != "" {
		cfg.Listen = *addr
	}
	if *dbFile != "" {
		cfg.Store.Driver = "sqlite"
		cfg.Store.SQLitePath = *dbFile
	}

	if len(cfg.WebSocket.AllowedOrigins) == 0 {
		logger.Info("Feed CORS policy", "mode", "same-origin")
	} else if len(cfg.WebSocket.AllowedOrigins) == 1 && cfg.WebSocket.AllowedOrigins[0] == "*" {
		logger.Warning("Feed CORS allows all origins (not recommended for production)")
	} else {
		logger.Info("Feed CORS policy", "allowed_origins", cfg.WebSocket.AllowedOrigins)
	}
	if cfg.Admin.TokenHash == "" {
		logger.Info("No admin token configured; destructive endpoints disabled")
	}

	st, err := store.Open(cfg.Store)
	if err != nil {
		log.Fatalf("Failed to open level store: %v", err)
	}
	defer st.Close()
	logger.Info("Level store initialized", "driver", cfg.Store.Driver)

	srv := server.NewServer(cfg, st)
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	logger.Info("Level service running", "address", cfg.Listen)
	logger.Info("Press Ctrl+C to shutdown")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down service")
	srv.Shutdown()
	logger.Info("Service stopped")
}
