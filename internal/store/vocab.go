package store

import (
	"context"

	"github.com/palabras-app/study-api/internal/domain"
)

// VocabStore defines the interface for vocab item persistence.
// Vocab items are authored reference data: the engine only ever reads them;
// writes happen through content tooling (see cmd/vocab-import).
type VocabStore interface {
	// GetVocabItem retrieves a vocab item by its ID.
	// Returns ErrVocabNotFound if the item does not exist.
	GetVocabItem(ctx context.Context, vocabID int64) (*domain.VocabItem, error)

	// GetVocabItems retrieves the vocab items for the given IDs in one round
	// trip. Missing IDs are simply absent from the result map; it is the
	// caller's job to decide whether a gap is an error.
	GetVocabItems(ctx context.Context, vocabIDs []int64) (map[int64]*domain.VocabItem, error)

	// CreateVocabItem saves a new vocab item and assigns its ID.
	// It handles domain validation internally.
	// Returns validation errors from the domain VocabItem if data is invalid.
	CreateVocabItem(ctx context.Context, item *domain.VocabItem) error
}
