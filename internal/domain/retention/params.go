// Package retention models how a study session's strength evolves as answers
// are evaluated, and how sessions rank for selection. Like the matching
// policy, everything here is pure: functions take a session and return a new
// one, never mutating their input.
package retention

import (
	"errors"

	"github.com/palabras-app/study-api/internal/domain"
)

// Common parameter validation errors.
var (
	ErrInvalidAlpha     = errors.New("alpha must be in (0, 1]")
	ErrInvalidThreshold = errors.New("thresholds must be in (0, 1]")
	ErrInvalidAttempts  = errors.New("attempt thresholds must be at least 1")
)

// Params defines all configurable parameters for the retention model.
type Params struct {
	// Alpha is the smoothing factor for the confidence moving average.
	// Larger values weight recent answers more heavily.
	Alpha float64

	// KnownConfidence is the confidence at or above which an item counts
	// as known in a person's profile.
	KnownConfidence float64

	// MasteryRatio is the correctness ratio at or above which a session
	// classifies as mastered.
	MasteryRatio float64

	// MasteryMinAttempts is the minimum exposure before a session can
	// classify as mastered, regardless of ratio.
	MasteryMinAttempts int

	// MinExposureAttempts is the attempt count below which an item counts
	// toward the smallest-vocabulary figure.
	MinExposureAttempts int
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		Alpha:               0.30,
		KnownConfidence:     0.75,
		MasteryRatio:        0.90,
		MasteryMinAttempts:  5,
		MinExposureAttempts: 3,
	}
}

// Validate checks the parameter values for internal consistency.
func (p *Params) Validate() error {
	if p.Alpha <= 0 || p.Alpha > 1 {
		return ErrInvalidAlpha
	}

	if p.KnownConfidence <= 0 || p.KnownConfidence > 1 ||
		p.MasteryRatio <= 0 || p.MasteryRatio > 1 {
		return ErrInvalidThreshold
	}

	if p.MasteryMinAttempts < 1 || p.MinExposureAttempts < 1 {
		return ErrInvalidAttempts
	}

	return nil
}

// ProfileThresholds projects the parameters relevant to profile aggregation.
func (p *Params) ProfileThresholds() domain.ProfileThresholds {
	return domain.ProfileThresholds{
		KnownConfidence:     p.KnownConfidence,
		MinExposureAttempts: p.MinExposureAttempts,
	}
}
