package retention

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palabras-app/study-api/internal/domain"
	"github.com/palabras-app/study-api/internal/domain/match"
)

func testSession(t *testing.T) *domain.StudySession {
	t.Helper()
	sess, err := domain.NewStudySession(1, 10)
	require.NoError(t, err)
	sess.ID = 100
	return sess
}

func TestApplyOutcome_Counters(t *testing.T) {
	t.Parallel()

	params := NewDefaultParams()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		verdict     match.Verdict
		wantCorrect int
	}{
		{"correct increments both counters", match.VerdictCorrect, 1},
		{"close increments attempts only", match.VerdictClose, 0},
		{"incorrect increments attempts only", match.VerdictIncorrect, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sess := testSession(t)
			updated := applyOutcome(sess, tt.verdict, now, params)

			assert.Equal(t, 1, updated.Attempts)
			assert.Equal(t, tt.wantCorrect, updated.CorrectAttempts)
			assert.Equal(t, now, updated.LastTested)
			assert.Equal(t, now, updated.UpdatedAt)

			// Input must be untouched.
			assert.Equal(t, 0, sess.Attempts)
			assert.Equal(t, 0, sess.CorrectAttempts)
			assert.True(t, sess.LastTested.IsZero())
		})
	}
}

func TestApplyOutcome_ConfidenceEMA(t *testing.T) {
	t.Parallel()

	params := NewDefaultParams() // Alpha = 0.30
	now := time.Now().UTC()

	sess := testSession(t)
	sess.Confidence = 0.5

	correct := applyOutcome(sess, match.VerdictCorrect, now, params)
	assert.InDelta(t, 0.7*0.5+0.3*1.0, correct.Confidence, 1e-9)

	close := applyOutcome(sess, match.VerdictClose, now, params)
	assert.InDelta(t, 0.7*0.5+0.3*0.5, close.Confidence, 1e-9)

	incorrect := applyOutcome(sess, match.VerdictIncorrect, now, params)
	assert.InDelta(t, 0.7*0.5, incorrect.Confidence, 1e-9)
}

func TestApplyOutcome_InvariantHoldsUnderAnySequence(t *testing.T) {
	t.Parallel()

	params := NewDefaultParams()
	sess := testSession(t)
	now := time.Now().UTC()

	verdicts := []match.Verdict{
		match.VerdictCorrect, match.VerdictIncorrect, match.VerdictClose,
		match.VerdictCorrect, match.VerdictCorrect, match.VerdictIncorrect,
	}

	current := sess
	prevAttempts := 0
	for _, v := range verdicts {
		current = applyOutcome(current, v, now, params)
		require.Greater(t, current.Attempts, prevAttempts, "attempts never decrease")
		require.LessOrEqual(t, current.CorrectAttempts, current.Attempts)
		require.GreaterOrEqual(t, current.Confidence, 0.0)
		require.LessOrEqual(t, current.Confidence, 1.0)
		require.NoError(t, current.Validate())
		prevAttempts = current.Attempts
	}

	assert.Equal(t, 6, current.Attempts)
	assert.Equal(t, 3, current.CorrectAttempts)
}

func TestStageOf(t *testing.T) {
	t.Parallel()

	params := NewDefaultParams() // MasteryRatio 0.90, MasteryMinAttempts 5

	tests := []struct {
		name     string
		attempts int
		correct  int
		expected domain.StudyStage
	}{
		{"no attempts is unseen", 0, 0, domain.StageUnseen},
		{"below minimum exposure is seen", 3, 3, domain.StageSeen},
		{"high ratio with enough attempts is mastered", 10, 9, domain.StageMastered},
		{"perfect record is mastered", 5, 5, domain.StageMastered},
		{"low ratio with enough attempts is learning", 10, 5, domain.StageLearning},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sess := testSession(t)
			sess.Attempts = tt.attempts
			sess.CorrectAttempts = tt.correct

			assert.Equal(t, tt.expected, stageOf(sess, params))
		})
	}
}

func TestSortWeakestFirst(t *testing.T) {
	t.Parallel()

	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	sessions := []domain.StudySession{
		{ID: 1, Confidence: 0.9, LastTested: older},
		{ID: 2, Confidence: 0.2, LastTested: newer},
		{ID: 3, Confidence: 0.2, LastTested: older},
		{ID: 4, Confidence: 0.2, LastTested: older},
		{ID: 5, Confidence: 0.5},
	}

	SortWeakestFirst(sessions)

	ids := make([]int64, len(sessions))
	for i, s := range sessions {
		ids[i] = s.ID
	}

	// Lowest confidence first; within equal confidence the older (or never)
	// last-tested wins; equal timestamps fall back to creation order.
	assert.Equal(t, []int64{3, 4, 2, 5, 1}, ids)
}

func TestSortWeakestFirst_NeverTestedSortsBeforeTested(t *testing.T) {
	t.Parallel()

	sessions := []domain.StudySession{
		{ID: 1, Confidence: 0.4, LastTested: time.Now().UTC()},
		{ID: 2, Confidence: 0.4}, // never tested
	}

	SortWeakestFirst(sessions)
	assert.Equal(t, int64(2), sessions[0].ID)
}
