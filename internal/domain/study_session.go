package domain

import (
	"time"
)

// StudyStage is the derived lifecycle classification of a StudySession.
// It is recomputed from counters on read and never persisted.
type StudyStage string

// Possible study stage values.
const (
	StageUnseen   StudyStage = "unseen"
	StageSeen     StudyStage = "seen"
	StageLearning StudyStage = "learning"
	StageMastered StudyStage = "mastered"
)

// StudySession tracks one person's cumulative performance on one vocab item.
// There is exactly one session per (person, item) pair; it is created lazily
// on first study and never deleted.
type StudySession struct {
	ID              int64     `json:"vocab_study_id"`
	VocabID         int64     `json:"vocab_id"`
	AwesomeID       int64     `json:"awesome_id"`
	Attempts        int       `json:"attempts"`
	CorrectAttempts int       `json:"correct_attempts"`
	Confidence      float64   `json:"confidence"`  // Smoothed retention strength in [0, 1]
	LastTested      time.Time `json:"last_tested"` // Zero until the first evaluated response
	Version         int       `json:"version"`     // Optimistic concurrency token
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewStudySession creates a fresh session for a person and vocab item with
// zeroed counters. The item is immediately eligible for selection.
func NewStudySession(awesomeID, vocabID int64) (*StudySession, error) {
	now := time.Now().UTC()
	sess := &StudySession{
		VocabID:    vocabID,
		AwesomeID:  awesomeID,
		Confidence: 0,
		LastTested: time.Time{},
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := sess.Validate(); err != nil {
		return nil, err
	}

	return sess, nil
}

// Validate checks if the StudySession has valid data.
// Returns an error if any field fails validation.
func (s *StudySession) Validate() error {
	if s.ID < 0 || s.VocabID < 0 || s.AwesomeID < 0 {
		return ErrInvalidID
	}

	if s.Attempts < 0 || s.CorrectAttempts < 0 || s.CorrectAttempts > s.Attempts {
		return ErrInvalidCounters
	}

	if s.Confidence < 0 || s.Confidence > 1 {
		return ErrInvalidConfidence
	}

	return nil
}

// PercentageCorrect returns the session's correctness ratio, defined as 0
// when no attempts have been made.
func (s *StudySession) PercentageCorrect() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.CorrectAttempts) / float64(s.Attempts)
}
