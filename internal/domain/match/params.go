// Package match scores a learner's free-text answer against the accepted
// reference answers for a vocab item. Scoring is pure and deterministic so it
// can be unit-tested and swapped independently of the evaluation policy that
// sits on top of it.
package match

import "errors"

// Common parameter validation errors.
var (
	ErrInvalidThreshold  = errors.New("thresholds must be in (0, 1]")
	ErrThresholdOrdering = errors.New("close threshold cannot exceed accept threshold")
)

// Params defines the configurable acceptance policy for answer matching.
type Params struct {
	// AcceptThreshold is the minimum similarity for a fully correct answer.
	AcceptThreshold float64
	// CloseThreshold is the minimum similarity for partial credit ("close").
	// Anything below is incorrect.
	CloseThreshold float64
}

// NewDefaultParams creates a new Params instance with default values.
// The defaults tolerate small typos (one edit in a five-letter word still
// accepts) while keeping unrelated words out.
func NewDefaultParams() *Params {
	return &Params{
		AcceptThreshold: 0.80,
		CloseThreshold:  0.60,
	}
}

// Validate checks the parameter values for internal consistency.
func (p *Params) Validate() error {
	if p.AcceptThreshold <= 0 || p.AcceptThreshold > 1 ||
		p.CloseThreshold <= 0 || p.CloseThreshold > 1 {
		return ErrInvalidThreshold
	}

	if p.CloseThreshold > p.AcceptThreshold {
		return ErrThresholdOrdering
	}

	return nil
}
