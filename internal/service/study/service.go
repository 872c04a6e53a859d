// Package study implements the study-session engine: selecting which vocab
// items a learner should see next, evaluating free-text answers, and deriving
// progress statistics. It is the single entry point the boundary layer
// (HTTP handlers, CLI, test harness) talks to.
package study

import (
	"context"
	"errors"
	"fmt"

	"github.com/palabras-app/study-api/internal/domain"
	"github.com/palabras-app/study-api/internal/domain/match"
)

// Feedback is the user-visible result of checking a response. Message is a
// human-readable string suitable for display as-is; the raw similarity score
// never leaves the engine.
type Feedback struct {
	Message string        `json:"feedback"`
	Verdict match.Verdict `json:"verdict"`
}

// StudyService provides the public study operations.
type StudyService interface {
	// StartStudy enrolls a learner on a vocab item, creating the study
	// session lazily if this is their first encounter with it. Calling it
	// again for the same pair returns the existing session unchanged.
	//
	// Returns:
	//   - (domain.Challenge, nil): the challenge for the pair, including its
	//     session ID for subsequent CheckResponse calls
	//   - ErrVocabNotFound: the item does not exist, nothing created
	//   - ErrInvalidID: negative IDs
	StartStudy(ctx context.Context, awesomeID, vocabID int64) (domain.Challenge, error)

	// SelectChallenges chooses up to limit vocab items for a learner,
	// weakest retention first, and formats a prompt for each.
	//
	// Returns:
	//   - ([]domain.Challenge, nil): at most limit challenges; fewer when the
	//     learner has fewer items, empty when they have none
	//   - (nil, ErrInvalidLimit): when limit is not positive
	//   - (nil, ErrInvalidID): when awesomeID is negative
	//
	// This method is read-only.
	SelectChallenges(ctx context.Context, awesomeID int64, limit int) ([]domain.Challenge, error)

	// CheckResponse evaluates a learner's entered text against a vocab
	// item's accepted answers and records the outcome on the study session.
	// This is the engine's sole mutating operation: exactly one session
	// mutation per successful call, none on failure.
	//
	// Returns:
	//   - (Feedback, nil): the display feedback for the learner
	//   - ErrVocabNotFound / ErrSessionNotFound: unknown IDs, nothing mutated
	//   - ErrInvalidID: negative IDs
	//
	// A concurrent-update conflict on save is retried once internally with a
	// fresh read before being surfaced.
	CheckResponse(ctx context.Context, vocabID, vocabStudyID int64, entered string) (Feedback, error)

	// VocabStats derives the per-session statistics summary.
	//
	// Returns ErrSessionNotFound for an unknown vocabStudyID.
	VocabStats(ctx context.Context, vocabStudyID int64) (domain.VocabStats, error)

	// Profile derives a person's aggregate progress profile. A missing
	// person or a person with no sessions yields the zero-valued profile,
	// never an error; this is the documented contract of getAwesomePerson.
	Profile(ctx context.Context, awesomeID int64) (domain.AwesomeProfile, error)
}

// Common error types for StudyService
var (
	// ErrInvalidLimit indicates a non-positive result-set limit.
	ErrInvalidLimit = errors.New("limit must be positive")

	// ErrInvalidID indicates a negative identifier.
	ErrInvalidID = errors.New("identifiers must be non-negative")

	// ErrVocabNotFound indicates that the vocab item does not exist.
	ErrVocabNotFound = errors.New("vocab item not found")

	// ErrSessionNotFound indicates that the study session does not exist.
	ErrSessionNotFound = errors.New("study session not found")

	// ErrSessionMismatch indicates the session exists but belongs to a
	// different vocab item than the one named in the request.
	ErrSessionMismatch = errors.New("study session does not belong to vocab item")
)

// ServiceError wraps errors from the study service with additional context.
// This allows consumers to differentiate between different types of service
// errors using errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "select_challenges")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError for the given operation.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
