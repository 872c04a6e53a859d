package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/palabras-app/study-api/migrations"
)

// runMigrations applies any pending schema migrations for the detected
// dialect. Migrations are embedded in the binary so deployment is a single
// artifact.
func runMigrations(db *sql.DB, dialect string, log *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set migration dialect %q: %w", dialect, err)
	}

	if err := goose.Up(db, migrations.DirFor(dialect)); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	log.Info("migrations applied", slog.Int64("version", version))
	return nil
}
