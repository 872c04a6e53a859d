package retention

import (
	"errors"
	"time"

	"github.com/palabras-app/study-api/internal/domain"
	"github.com/palabras-app/study-api/internal/domain/match"
)

// Common errors
var (
	ErrNilSession     = errors.New("study session cannot be nil")
	ErrInvalidVerdict = errors.New("invalid verdict")
	ErrInvalidParams  = errors.New("invalid retention parameters")
)

// Service defines the interface for retention model operations.
type Service interface {
	// ApplyOutcome computes new session state for one evaluated answer.
	// It follows immutability principles by returning a new instance rather
	// than modifying the given one.
	ApplyOutcome(
		sess *domain.StudySession,
		verdict match.Verdict,
		now time.Time,
	) (*domain.StudySession, error)

	// Stage derives the lifecycle classification from the session counters.
	Stage(sess *domain.StudySession) domain.StudyStage

	// ProfileThresholds exposes the aggregation cut-offs for profile
	// computation.
	ProfileThresholds() domain.ProfileThresholds
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a retention service with default parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a retention service with custom parameters.
// Returns an error if the parameters are inconsistent.
func NewServiceWithParams(params *Params) (Service, error) {
	if params == nil {
		return NewDefaultService(), nil
	}
	if err := params.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidParams, err)
	}

	return &defaultService{params: params}, nil
}

// ApplyOutcome implements the Service interface.
func (s *defaultService) ApplyOutcome(
	sess *domain.StudySession,
	verdict match.Verdict,
	now time.Time,
) (*domain.StudySession, error) {
	if sess == nil {
		return nil, ErrNilSession
	}

	if !isValidVerdict(verdict) {
		return nil, ErrInvalidVerdict
	}

	return applyOutcome(sess, verdict, now, s.params), nil
}

// Stage implements the Service interface.
func (s *defaultService) Stage(sess *domain.StudySession) domain.StudyStage {
	return stageOf(sess, s.params)
}

// ProfileThresholds implements the Service interface.
func (s *defaultService) ProfileThresholds() domain.ProfileThresholds {
	return s.params.ProfileThresholds()
}

// isValidVerdict checks if the given verdict is valid.
func isValidVerdict(verdict match.Verdict) bool {
	switch verdict {
	case match.VerdictCorrect, match.VerdictClose, match.VerdictIncorrect:
		return true
	default:
		return false
	}
}
