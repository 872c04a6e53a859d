// Package main implements the entry point for the palabras study API server,
// which selects vocabulary challenges for learners, scores their free-text
// answers, and tracks per-item performance statistics.
package main

import (
	"log"
	"log/slog"

	"github.com/palabras-app/study-api/internal/config"
	"github.com/palabras-app/study-api/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	slog.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
