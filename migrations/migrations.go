// Package migrations embeds the goose SQL migrations. The schema is kept in
// per-dialect directories because identity columns and timestamp types
// differ between PostgreSQL and SQLite.
package migrations

import "embed"

// FS holds the embedded migration files, one subdirectory per dialect.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// DirFor returns the embedded migration directory for a goose dialect.
func DirFor(dialect string) string {
	if dialect == "sqlite3" || dialect == "sqlite" {
		return "sqlite"
	}
	return "postgres"
}
