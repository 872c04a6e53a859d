package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{
			name:   "defaults are valid",
			params: *NewDefaultParams(),
		},
		{
			name:    "zero accept threshold",
			params:  Params{AcceptThreshold: 0, CloseThreshold: 0.5},
			wantErr: ErrInvalidThreshold,
		},
		{
			name:    "accept threshold above one",
			params:  Params{AcceptThreshold: 1.2, CloseThreshold: 0.5},
			wantErr: ErrInvalidThreshold,
		},
		{
			name:    "close above accept",
			params:  Params{AcceptThreshold: 0.6, CloseThreshold: 0.8},
			wantErr: ErrThresholdOrdering,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.params.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestService_Evaluate(t *testing.T) {
	t.Parallel()

	svc := NewDefaultService()

	tests := []struct {
		name       string
		entered    string
		references []string
		verdict    Verdict
	}{
		{
			name:       "exact match is correct",
			entered:    "hablar",
			references: []string{"hablar"},
			verdict:    VerdictCorrect,
		},
		{
			name:       "exact match after normalization is correct",
			entered:    " Hablár ",
			references: []string{"hablar"},
			verdict:    VerdictCorrect,
		},
		{
			name:       "one typo in a six letter word is correct",
			entered:    "hablat",
			references: []string{"hablar"},
			verdict:    VerdictCorrect,
		},
		{
			name:       "two edits in a six letter word is close",
			entered:    "hablxt",
			references: []string{"hablar"},
			verdict:    VerdictClose,
		},
		{
			name:       "unrelated word is incorrect",
			entered:    "comer",
			references: []string{"hablar"},
			verdict:    VerdictIncorrect,
		},
		{
			name:       "empty entered is incorrect",
			entered:    "",
			references: []string{"hablar"},
			verdict:    VerdictIncorrect,
		},
		{
			name:       "best alternate wins",
			entered:    "comenzar",
			references: []string{"empezar", "comenzar"},
			verdict:    VerdictCorrect,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, err := svc.Evaluate(tt.entered, tt.references)
			require.NoError(t, err)
			assert.Equal(t, tt.verdict, result.Verdict)
		})
	}
}

func TestService_Evaluate_ReferenceEcho(t *testing.T) {
	t.Parallel()

	svc := NewDefaultService()

	result, err := svc.Evaluate("comenzar", []string{"empezar", "comenzar"})
	require.NoError(t, err)
	assert.Equal(t, "comenzar", result.Reference, "best-scoring reference should be echoed")
	assert.InDelta(t, 1.0, result.Best, 1e-9)
}

func TestService_Evaluate_NoReferences(t *testing.T) {
	t.Parallel()

	svc := NewDefaultService()

	_, err := svc.Evaluate("hablar", nil)
	assert.ErrorIs(t, err, ErrNoReferences)
}

func TestNewService_Validation(t *testing.T) {
	t.Parallel()

	t.Run("nil scorer rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewService(nil, NewDefaultParams())
		assert.ErrorIs(t, err, ErrNilScorer)
	})

	t.Run("nil params uses defaults", func(t *testing.T) {
		t.Parallel()
		svc, err := NewService(NewLevenshteinScorer(), nil)
		require.NoError(t, err)

		result, err := svc.Evaluate("hablar", []string{"hablar"})
		require.NoError(t, err)
		assert.Equal(t, VerdictCorrect, result.Verdict)
	})

	t.Run("invalid params rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewService(NewLevenshteinScorer(), &Params{AcceptThreshold: 0.5, CloseThreshold: 0.9})
		assert.ErrorIs(t, err, ErrInvalidParams)
	})
}
