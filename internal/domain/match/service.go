package match

import "errors"

// Common errors
var (
	ErrNilScorer     = errors.New("scorer cannot be nil")
	ErrNoReferences  = errors.New("at least one reference answer is required")
	ErrInvalidParams = errors.New("invalid match parameters")
)

// Verdict classifies an evaluated answer.
type Verdict string

// Possible verdict values.
const (
	VerdictCorrect   Verdict = "correct"
	VerdictClose     Verdict = "close"
	VerdictIncorrect Verdict = "incorrect"
)

// Result is the outcome of evaluating one entered answer against an item's
// accepted references.
type Result struct {
	// Best is the highest similarity across the references.
	Best float64
	// Reference is the accepted answer that produced the best score; it is
	// echoed back to the learner in feedback.
	Reference string
	// Verdict is the classification of Best against the thresholds.
	Verdict Verdict
}

// Service applies the acceptance policy on top of a Scorer.
type Service interface {
	// Evaluate scores entered text against every accepted reference and
	// classifies the best score. An empty reference list is an error;
	// empty entered text is a valid (incorrect) answer.
	Evaluate(entered string, references []string) (Result, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	scorer Scorer
	params *Params
}

// NewDefaultService creates a match service with the default Levenshtein
// scorer and default thresholds.
func NewDefaultService() Service {
	return &defaultService{
		scorer: NewLevenshteinScorer(),
		params: NewDefaultParams(),
	}
}

// NewService creates a match service with a custom scorer and parameters.
// Returns an error if the scorer is nil or the parameters are inconsistent.
func NewService(scorer Scorer, params *Params) (Service, error) {
	if scorer == nil {
		return nil, ErrNilScorer
	}
	if params == nil {
		params = NewDefaultParams()
	}
	if err := params.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidParams, err)
	}

	return &defaultService{scorer: scorer, params: params}, nil
}

// Evaluate implements the Service interface.
func (s *defaultService) Evaluate(entered string, references []string) (Result, error) {
	if len(references) == 0 {
		return Result{}, ErrNoReferences
	}

	result := Result{
		Best:      0,
		Reference: references[0],
		Verdict:   VerdictIncorrect,
	}

	for _, ref := range references {
		score := s.scorer.Score(entered, ref)
		if score > result.Best {
			result.Best = score
			result.Reference = ref
		}
	}

	switch {
	case result.Best >= s.params.AcceptThreshold:
		result.Verdict = VerdictCorrect
	case result.Best >= s.params.CloseThreshold:
		result.Verdict = VerdictClose
	}

	return result, nil
}
