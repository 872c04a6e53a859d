package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/palabras-app/study-api/internal/config"
	"github.com/palabras-app/study-api/internal/domain/match"
	"github.com/palabras-app/study-api/internal/domain/retention"
	"github.com/palabras-app/study-api/internal/platform/database"
	"github.com/palabras-app/study-api/internal/platform/postgres"
	"github.com/palabras-app/study-api/internal/service/study"
)

// application holds the composed dependencies of the running server.
type application struct {
	config       *config.Config
	logger       *slog.Logger
	db           *sql.DB
	studyService study.StudyService
}

// newApplication opens the database, applies migrations, and wires the
// stores and services together.
func newApplication(cfg *config.Config, log *slog.Logger) (*application, error) {
	db, dialect, err := database.Open(cfg, log)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, dialect, log); err != nil {
		closeQuietly(db, log)
		return nil, err
	}

	matcher, err := buildMatcher(&cfg.Study)
	if err != nil {
		closeQuietly(db, log)
		return nil, err
	}

	retentionSvc, err := buildRetention(&cfg.Study)
	if err != nil {
		closeQuietly(db, log)
		return nil, err
	}

	vocabStore := postgres.NewSQLVocabStore(db, log)
	personStore := postgres.NewSQLPersonStore(db, log)
	sessionStore := postgres.NewSQLStudySessionStore(db, log)

	studyService := study.NewStudyService(
		vocabStore,
		personStore,
		sessionStore,
		matcher,
		retentionSvc,
		log,
	)

	return &application{
		config:       cfg,
		logger:       log,
		db:           db,
		studyService: studyService,
	}, nil
}

// buildMatcher constructs the answer-matching service, applying any
// configured threshold overrides on top of the defaults.
func buildMatcher(cfg *config.StudyConfig) (match.Service, error) {
	params := match.NewDefaultParams()
	if cfg.AcceptThreshold > 0 {
		params.AcceptThreshold = cfg.AcceptThreshold
	}
	if cfg.CloseThreshold > 0 {
		params.CloseThreshold = cfg.CloseThreshold
	}

	matcher, err := match.NewService(match.NewLevenshteinScorer(), params)
	if err != nil {
		return nil, fmt.Errorf("invalid match configuration: %w", err)
	}
	return matcher, nil
}

// buildRetention constructs the retention service, applying any configured
// overrides on top of the defaults.
func buildRetention(cfg *config.StudyConfig) (retention.Service, error) {
	params := retention.NewDefaultParams()
	if cfg.ConfidenceAlpha > 0 {
		params.Alpha = cfg.ConfidenceAlpha
	}
	if cfg.KnownConfidence > 0 {
		params.KnownConfidence = cfg.KnownConfidence
	}
	if cfg.MasteryRatio > 0 {
		params.MasteryRatio = cfg.MasteryRatio
	}
	if cfg.MasteryMinAttempts > 0 {
		params.MasteryMinAttempts = cfg.MasteryMinAttempts
	}
	if cfg.MinExposureAttempts > 0 {
		params.MinExposureAttempts = cfg.MinExposureAttempts
	}

	svc, err := retention.NewServiceWithParams(params)
	if err != nil {
		return nil, fmt.Errorf("invalid retention configuration: %w", err)
	}
	return svc, nil
}

// Close releases the application's resources.
func (app *application) Close() {
	closeQuietly(app.db, app.logger)
}

func closeQuietly(db *sql.DB, log *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		log.Error("failed to close database", slog.String("error", err.Error()))
	}
}
