package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/palabras-app/study-api/internal/domain"
	"github.com/palabras-app/study-api/internal/store"
)

// SQLPersonStore implements the store.PersonStore interface over a SQL database.
type SQLPersonStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSQLPersonStore creates a new SQL implementation of the PersonStore
// interface. If logger is nil, a default logger will be used.
func NewSQLPersonStore(db store.DBTX, logger *slog.Logger) *SQLPersonStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &SQLPersonStore{
		db:     db,
		logger: logger.With(slog.String("component", "person_store")),
	}
}

// Ensure SQLPersonStore implements store.PersonStore interface
var _ store.PersonStore = (*SQLPersonStore)(nil)

// GetPerson implements store.PersonStore.GetPerson.
// Returns store.ErrPersonNotFound if the person does not exist.
func (s *SQLPersonStore) GetPerson(ctx context.Context, awesomeID int64) (*domain.Person, error) {
	query := "SELECT id, name FROM persons WHERE id = $1"

	var person domain.Person
	err := s.db.QueryRowContext(ctx, query, awesomeID).Scan(&person.ID, &person.Name)
	if err != nil {
		if errors.Is(MapError(err), store.ErrNotFound) {
			return nil, store.ErrPersonNotFound
		}
		return nil, store.NewStoreError("person", "get", "query failed", MapError(err))
	}

	return &person, nil
}
