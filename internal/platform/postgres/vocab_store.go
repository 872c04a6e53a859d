package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/palabras-app/study-api/internal/domain"
	"github.com/palabras-app/study-api/internal/store"
)

// SQLVocabStore implements the store.VocabStore interface over a SQL database.
type SQLVocabStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSQLVocabStore creates a new SQL implementation of the VocabStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller. If logger is nil, a default logger
// will be used.
func NewSQLVocabStore(db store.DBTX, logger *slog.Logger) *SQLVocabStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &SQLVocabStore{
		db:     db,
		logger: logger.With(slog.String("component", "vocab_store")),
	}
}

// Ensure SQLVocabStore implements store.VocabStore interface
var _ store.VocabStore = (*SQLVocabStore)(nil)

const vocabColumns = "id, infinitive, part_of_speech, known_lang_code, learning_lang_code, hint, user_notes"

// scanVocabItem maps one row onto a domain.VocabItem.
func scanVocabItem(row interface{ Scan(dest ...any) error }) (*domain.VocabItem, error) {
	var item domain.VocabItem
	err := row.Scan(
		&item.ID,
		&item.Infinitive,
		&item.PartOfSpeech,
		&item.KnownLangCode,
		&item.LearningLangCode,
		&item.Hint,
		&item.UserNotes,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetVocabItem implements store.VocabStore.GetVocabItem.
// Returns store.ErrVocabNotFound if the item does not exist.
func (s *SQLVocabStore) GetVocabItem(ctx context.Context, vocabID int64) (*domain.VocabItem, error) {
	query := "SELECT " + vocabColumns + " FROM vocab_items WHERE id = $1"

	item, err := scanVocabItem(s.db.QueryRowContext(ctx, query, vocabID))
	if err != nil {
		if errors.Is(MapError(err), store.ErrNotFound) {
			return nil, store.ErrVocabNotFound
		}
		return nil, store.NewStoreError("vocab_item", "get", "query failed", MapError(err))
	}

	return item, nil
}

// GetVocabItems implements store.VocabStore.GetVocabItems.
// Missing IDs are absent from the result map.
func (s *SQLVocabStore) GetVocabItems(ctx context.Context, vocabIDs []int64) (map[int64]*domain.VocabItem, error) {
	items := make(map[int64]*domain.VocabItem, len(vocabIDs))
	if len(vocabIDs) == 0 {
		return items, nil
	}

	placeholders := make([]string, len(vocabIDs))
	args := make([]any, len(vocabIDs))
	for i, id := range vocabIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := "SELECT " + vocabColumns + " FROM vocab_items WHERE id IN (" +
		strings.Join(placeholders, ", ") + ")"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, store.NewStoreError("vocab_item", "list", "query failed", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	for rows.Next() {
		item, err := scanVocabItem(rows)
		if err != nil {
			return nil, store.NewStoreError("vocab_item", "list", "scan failed", MapError(err))
		}
		items[item.ID] = item
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("vocab_item", "list", "iteration failed", MapError(err))
	}

	return items, nil
}

// CreateVocabItem implements store.VocabStore.CreateVocabItem.
// It validates the item, inserts it, and fills in the generated ID.
func (s *SQLVocabStore) CreateVocabItem(ctx context.Context, item *domain.VocabItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO vocab_items (infinitive, part_of_speech, known_lang_code, learning_lang_code, hint, user_notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		item.Infinitive,
		item.PartOfSpeech,
		item.KnownLangCode,
		item.LearningLangCode,
		item.Hint,
		item.UserNotes,
	).Scan(&item.ID)
	if err != nil {
		return store.NewStoreError("vocab_item", "create", "insert failed", MapError(err))
	}

	s.logger.Debug("created vocab item",
		slog.Int64("vocab_id", item.ID),
		slog.String("infinitive", item.Infinitive))
	return nil
}
