package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testThresholds = ProfileThresholds{
	KnownConfidence:     0.75,
	MinExposureAttempts: 3,
}

func TestComputeVocabStats(t *testing.T) {
	t.Parallel()

	tested := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	sess := &StudySession{
		ID:              11,
		Attempts:        4,
		CorrectAttempts: 3,
		LastTested:      tested,
	}

	stats := ComputeVocabStats(sess)

	assert.Equal(t, int64(11), stats.VocabStudyID)
	assert.Equal(t, 4, stats.Attempts)
	assert.Equal(t, 3, stats.CorrectAttempts)
	assert.InDelta(t, 0.75, stats.PercentageCorrect, 1e-9)
	assert.Equal(t, "2026-02-14 09:30", stats.LastTested)
}

func TestComputeVocabStats_NeverTested(t *testing.T) {
	t.Parallel()

	stats := ComputeVocabStats(&StudySession{ID: 5})

	assert.Zero(t, stats.PercentageCorrect)
	assert.Equal(t, "never", stats.LastTested)
}

func TestComputeProfile(t *testing.T) {
	t.Parallel()

	person := &Person{ID: 1, Name: "Frehi"}
	sessions := []StudySession{
		{ID: 1, Attempts: 10, CorrectAttempts: 9, Confidence: 0.9}, // known, exposed
		{ID: 2, Attempts: 4, CorrectAttempts: 1, Confidence: 0.3},  // exposed
		{ID: 3, Attempts: 2, CorrectAttempts: 2, Confidence: 0.8},  // known, under-exposed
		{ID: 4, Attempts: 0, CorrectAttempts: 0, Confidence: 0},    // under-exposed
	}

	profile := ComputeProfile(person, sessions, testThresholds)

	assert.Equal(t, int64(1), profile.AwesomeID)
	assert.Equal(t, "Frehi", profile.Name)
	assert.Equal(t, 2, profile.NumKnown)
	assert.Equal(t, 12, profile.NumCorrect)
	assert.Equal(t, 4, profile.NumIncorrect)
	assert.InDelta(t, 12.0/16.0, profile.TotalPercentage, 1e-9)
	assert.Equal(t, 2, profile.SmallestVocab)
}

func TestComputeProfile_NoSessions(t *testing.T) {
	t.Parallel()

	profile := ComputeProfile(&Person{ID: 9, Name: "Nuevo"}, nil, testThresholds)

	assert.Equal(t, int64(9), profile.AwesomeID)
	assert.Zero(t, profile.NumKnown)
	assert.Zero(t, profile.NumCorrect)
	assert.Zero(t, profile.NumIncorrect)
	assert.Zero(t, profile.TotalPercentage)
	assert.Zero(t, profile.SmallestVocab)
}

func TestComputeProfile_NilPerson(t *testing.T) {
	t.Parallel()

	profile := ComputeProfile(nil, nil, testThresholds)
	assert.Zero(t, profile.AwesomeID)
	assert.Empty(t, profile.Name)
}

func TestComputeProfile_ConsistencyWithSessions(t *testing.T) {
	t.Parallel()

	// The profile numbers must always be re-derivable from the sessions:
	// NumCorrect + NumIncorrect equals the total attempts.
	sessions := []StudySession{
		{Attempts: 3, CorrectAttempts: 1},
		{Attempts: 7, CorrectAttempts: 6},
		{Attempts: 5, CorrectAttempts: 0},
	}

	profile := ComputeProfile(&Person{ID: 1, Name: "x"}, sessions, testThresholds)

	totalAttempts := 0
	for _, s := range sessions {
		totalAttempts += s.Attempts
	}
	assert.Equal(t, totalAttempts, profile.NumCorrect+profile.NumIncorrect)
}

func TestFormatLastTested(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "never", FormatLastTested(time.Time{}))

	loc := time.FixedZone("CET", 3600)
	local := time.Date(2026, 2, 14, 10, 30, 0, 0, loc)
	assert.Equal(t, "2026-02-14 09:30", FormatLastTested(local), "display string is always UTC")
}
