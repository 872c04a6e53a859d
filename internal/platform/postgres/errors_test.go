package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/palabras-app/study-api/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "Nil",
			err:  nil,
			want: nil,
		},
		{
			name: "NoRows",
			err:  sql.ErrNoRows,
			want: store.ErrNotFound,
		},
		{
			name: "WrappedNoRows",
			err:  fmt.Errorf("scanning session: %w", sql.ErrNoRows),
			want: store.ErrNotFound,
		},
		{
			name: "PgUniqueViolation",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "study_sessions_awesome_id_vocab_id_key"},
			want: store.ErrDuplicate,
		},
		{
			name: "PgForeignKeyViolation",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "study_sessions_vocab_id_fkey"},
			want: store.ErrInvalidEntity,
		},
		{
			name: "PgCheckViolation",
			err:  &pgconn.PgError{Code: "23514", ConstraintName: "study_sessions_confidence_check"},
			want: store.ErrInvalidEntity,
		},
		{
			name: "PgNotNullViolation",
			err:  &pgconn.PgError{Code: "23502", ColumnName: "infinitive"},
			want: store.ErrInvalidEntity,
		},
		{
			name: "SQLiteUniqueViolation",
			err:  errors.New("constraint failed: UNIQUE constraint failed: study_sessions.awesome_id, study_sessions.vocab_id (2067)"),
			want: store.ErrDuplicate,
		},
		{
			name: "SQLiteForeignKeyViolation",
			err:  errors.New("FOREIGN KEY constraint failed (787)"),
			want: store.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MapError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapError_PassesThroughUnknownErrors(t *testing.T) {
	t.Parallel()

	unknown := errors.New("dial tcp: connection refused")
	assert.Equal(t, unknown, MapError(unknown))
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed: persons.id")))
	assert.False(t, isUniqueViolation(errors.New("syntax error")))
	assert.False(t, isUniqueViolation(nil))
}
