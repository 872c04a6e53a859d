// Package database opens the application's SQL connection, selecting the
// driver from the configured URL.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/palabras-app/study-api/internal/config"
)

// Open establishes a database connection and configures the pool.
// The URL scheme selects the engine: postgres:// / postgresql:// use the pgx
// driver; anything else is treated as a SQLite path or DSN, which is what
// local development uses. Returns the connection and the goose dialect name.
func Open(cfg *config.Config, log *slog.Logger) (*sql.DB, string, error) {
	driver, dialect := "pgx", "postgres"
	dsn := cfg.Database.URL

	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		driver, dialect = "sqlite", "sqlite3"
		dsn = strings.TrimPrefix(dsn, "sqlite://")
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, "", fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connection established", slog.String("dialect", dialect))
	return db, dialect, nil
}
