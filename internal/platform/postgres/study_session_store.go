package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/palabras-app/study-api/internal/domain"
	"github.com/palabras-app/study-api/internal/store"
)

// SQLStudySessionStore implements the store.StudySessionStore interface over
// a SQL database. Concurrent updates to the same session are detected with an
// optimistic version column rather than row locks, so readers never block.
type SQLStudySessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSQLStudySessionStore creates a new SQL implementation of the
// StudySessionStore interface. It accepts a database connection or
// transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewSQLStudySessionStore(db store.DBTX, logger *slog.Logger) *SQLStudySessionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &SQLStudySessionStore{
		db:     db,
		logger: logger.With(slog.String("component", "study_session_store")),
	}
}

// Ensure SQLStudySessionStore implements store.StudySessionStore interface
var _ store.StudySessionStore = (*SQLStudySessionStore)(nil)

const sessionColumns = "id, vocab_id, awesome_id, attempts, correct_attempts, confidence, last_tested, version, created_at, updated_at"

// scanStudySession maps one row onto a domain.StudySession. last_tested is
// nullable: NULL means the item has never been tested.
func scanStudySession(row interface{ Scan(dest ...any) error }) (*domain.StudySession, error) {
	var sess domain.StudySession
	var lastTested sql.NullTime
	err := row.Scan(
		&sess.ID,
		&sess.VocabID,
		&sess.AwesomeID,
		&sess.Attempts,
		&sess.CorrectAttempts,
		&sess.Confidence,
		&lastTested,
		&sess.Version,
		&sess.CreatedAt,
		&sess.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lastTested.Valid {
		sess.LastTested = lastTested.Time.UTC()
	}
	return &sess, nil
}

// nullableTime converts the zero time to NULL on the way into the database.
func nullableTime(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

// GetStudySession implements store.StudySessionStore.GetStudySession.
// Returns store.ErrStudySessionNotFound if the session does not exist.
func (s *SQLStudySessionStore) GetStudySession(ctx context.Context, vocabStudyID int64) (*domain.StudySession, error) {
	query := "SELECT " + sessionColumns + " FROM study_sessions WHERE id = $1"

	sess, err := scanStudySession(s.db.QueryRowContext(ctx, query, vocabStudyID))
	if err != nil {
		if errors.Is(MapError(err), store.ErrNotFound) {
			return nil, store.ErrStudySessionNotFound
		}
		return nil, store.NewStoreError("study_session", "get", "query failed", MapError(err))
	}

	return sess, nil
}

// GetOrCreate implements store.StudySessionStore.GetOrCreate.
// The insert uses ON CONFLICT DO NOTHING so two concurrent first studies of
// the same (person, item) pair race harmlessly; both end up reading the one
// surviving row.
func (s *SQLStudySessionStore) GetOrCreate(ctx context.Context, awesomeID, vocabID int64) (*domain.StudySession, error) {
	fresh, err := domain.NewStudySession(awesomeID, vocabID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	insert := `
		INSERT INTO study_sessions (vocab_id, awesome_id, attempts, correct_attempts, confidence, last_tested, version, created_at, updated_at)
		VALUES ($1, $2, 0, 0, 0, NULL, 1, $3, $4)
		ON CONFLICT (awesome_id, vocab_id) DO NOTHING
	`
	if _, err := s.db.ExecContext(ctx, insert, vocabID, awesomeID, fresh.CreatedAt, fresh.UpdatedAt); err != nil {
		return nil, store.NewStoreError("study_session", "get_or_create", "insert failed", MapError(err))
	}

	query := "SELECT " + sessionColumns + " FROM study_sessions WHERE awesome_id = $1 AND vocab_id = $2"
	sess, err := scanStudySession(s.db.QueryRowContext(ctx, query, awesomeID, vocabID))
	if err != nil {
		return nil, store.NewStoreError("study_session", "get_or_create", "read-back failed", MapError(err))
	}

	return sess, nil
}

// ListByPerson implements store.StudySessionStore.ListByPerson.
// Sessions are returned in creation order (id ascending).
func (s *SQLStudySessionStore) ListByPerson(ctx context.Context, awesomeID int64) ([]domain.StudySession, error) {
	query := "SELECT " + sessionColumns + " FROM study_sessions WHERE awesome_id = $1 ORDER BY id ASC"

	rows, err := s.db.QueryContext(ctx, query, awesomeID)
	if err != nil {
		return nil, store.NewStoreError("study_session", "list", "query failed", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	var sessions []domain.StudySession
	for rows.Next() {
		sess, err := scanStudySession(rows)
		if err != nil {
			return nil, store.NewStoreError("study_session", "list", "scan failed", MapError(err))
		}
		sessions = append(sessions, *sess)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("study_session", "list", "iteration failed", MapError(err))
	}

	return sessions, nil
}

// Save implements store.StudySessionStore.Save.
// The UPDATE matches on (id, version); zero rows affected means either the
// session vanished or another writer bumped the version first. The two cases
// are told apart with a follow-up existence check so callers get the right
// sentinel.
func (s *SQLStudySessionStore) Save(ctx context.Context, sess *domain.StudySession) error {
	if err := sess.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE study_sessions
		SET attempts = $1,
		    correct_attempts = $2,
		    confidence = $3,
		    last_tested = $4,
		    updated_at = $5,
		    version = version + 1
		WHERE id = $6 AND version = $7
	`

	result, err := s.db.ExecContext(ctx, query,
		sess.Attempts,
		sess.CorrectAttempts,
		sess.Confidence,
		nullableTime(sess.LastTested),
		sess.UpdatedAt.UTC(),
		sess.ID,
		sess.Version,
	)
	if err != nil {
		return store.NewStoreError("study_session", "save", "update failed", MapError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return store.NewStoreError("study_session", "save", "rows affected unavailable", MapError(err))
	}

	if affected == 0 {
		var exists int
		err := s.db.QueryRowContext(ctx,
			"SELECT 1 FROM study_sessions WHERE id = $1", sess.ID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrStudySessionNotFound
		}
		if err != nil {
			return store.NewStoreError("study_session", "save", "existence check failed", MapError(err))
		}

		s.logger.Debug("optimistic concurrency conflict",
			slog.Int64("vocab_study_id", sess.ID),
			slog.Int("version", sess.Version))
		return store.ErrConflict
	}

	sess.Version++
	return nil
}
