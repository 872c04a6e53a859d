package store

import (
	"context"

	"github.com/palabras-app/study-api/internal/domain"
)

// PersonStore defines the interface for person (learner profile) reads.
// Identity management lives with an external collaborator; this store only
// resolves an awesome ID to its display data.
type PersonStore interface {
	// GetPerson retrieves a person by their awesome ID.
	// Returns ErrPersonNotFound if the person does not exist.
	GetPerson(ctx context.Context, awesomeID int64) (*domain.Person, error)
}
