// Package postgres provides SQL implementations for the data storage
// interfaces defined in the internal/store package. It handles the details
// of query execution and data mapping between domain entities and database
// records. The SQL is written to run unchanged on PostgreSQL (pgx driver)
// and SQLite (modernc driver), which is what local development and tests use.
package postgres
