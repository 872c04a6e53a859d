package store

import (
	"context"

	"github.com/palabras-app/study-api/internal/domain"
)

// StudySessionStore defines the interface for study session persistence.
// Version: 1.0
type StudySessionStore interface {
	// GetStudySession retrieves a study session by its ID.
	// Returns ErrStudySessionNotFound if the session does not exist.
	GetStudySession(ctx context.Context, vocabStudyID int64) (*domain.StudySession, error)

	// GetOrCreate retrieves the session for a (person, item) pair, creating
	// it with zeroed counters if it does not exist yet. Sessions are created
	// lazily on first study and never deleted.
	// The create path must be safe under concurrent callers for the same pair:
	// exactly one row may exist afterwards.
	GetOrCreate(ctx context.Context, awesomeID, vocabID int64) (*domain.StudySession, error)

	// ListByPerson retrieves all study sessions owned by a person, ordered
	// by ID ascending (creation order). A person with no sessions yields an
	// empty slice, not an error.
	ListByPerson(ctx context.Context, awesomeID int64) ([]domain.StudySession, error)

	// Save persists a mutated session using optimistic concurrency: the row
	// is matched on (id, version) and the stored version is incremented.
	// On success the session's Version field is advanced to the stored value.
	// Returns ErrConflict if another writer got there first; callers should
	// re-read and reapply their change before retrying.
	// Returns ErrStudySessionNotFound if the session does not exist.
	// Returns validation errors from the domain StudySession if data is invalid.
	Save(ctx context.Context, sess *domain.StudySession) error
}
