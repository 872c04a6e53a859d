package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"GenericNotFound", ErrNotFound, true},
		{"VocabNotFound", ErrVocabNotFound, true},
		{"PersonNotFound", ErrPersonNotFound, true},
		{"StudySessionNotFound", ErrStudySessionNotFound, true},
		{"WrappedNotFound", fmt.Errorf("loading row: %w", ErrStudySessionNotFound), true},
		{"Conflict", ErrConflict, false},
		{"Duplicate", ErrDuplicate, false},
		{"Unrelated", errors.New("connection refused"), false},
		{"Nil", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsNotFoundError(tt.err))
		})
	}
}

func TestIsConflictError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsConflictError(ErrConflict))
	assert.True(t, IsConflictError(fmt.Errorf("saving session: %w", ErrConflict)))
	assert.False(t, IsConflictError(ErrNotFound))
	assert.False(t, IsConflictError(nil))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	underlying := errors.New("driver: bad connection")
	err := NewStoreError("study_session", "save", "update failed", underlying)

	assert.Equal(t, "save operation on study_session failed: update failed: driver: bad connection", err.Error())
	assert.ErrorIs(t, err, underlying)

	bare := &StoreError{Entity: "person", Operation: "get", Message: "lookup failed"}
	assert.Equal(t, "get operation on person failed: lookup failed", bare.Error())

	// Sentinel matching survives StoreError wrapping.
	wrapped := NewStoreError("vocab_item", "get", "row missing", ErrVocabNotFound)
	assert.True(t, IsNotFoundError(wrapped))
}
