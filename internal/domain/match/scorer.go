package match

// Scorer computes a normalized similarity in [0, 1] between an entered string
// and a single reference answer. Implementations must be deterministic and
// side-effect free. Alternative algorithms (phonetic match, token-set overlap)
// can be substituted without touching the evaluation policy.
type Scorer interface {
	Score(entered, reference string) float64
}

// LevenshteinScorer scores by normalized edit distance over the rune sequences
// of the normalized inputs: 1 - dist/maxLen. Identical strings score 1.0 and
// each additional edit lowers the score by 1/maxLen, so small typos still
// score highly.
type LevenshteinScorer struct{}

// NewLevenshteinScorer creates the default edit-distance scorer.
func NewLevenshteinScorer() *LevenshteinScorer {
	return &LevenshteinScorer{}
}

// Ensure LevenshteinScorer implements the Scorer interface.
var _ Scorer = (*LevenshteinScorer)(nil)

// Score implements Scorer. Inputs are normalized before comparison. Empty
// entered text always scores 0; an answer must be offered to earn credit.
func (s *LevenshteinScorer) Score(entered, reference string) float64 {
	a := []rune(Normalize(entered))
	b := []rune(Normalize(reference))

	if len(a) == 0 {
		return 0
	}
	if len(b) == 0 {
		// Nothing to compare against; a non-empty answer to an empty
		// reference cannot match.
		return 0
	}

	dist := levenshtein(a, b)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}

	return 1 - float64(dist)/float64(maxLen)
}

// levenshtein computes the edit distance between two rune slices using the
// two-row dynamic programming formulation.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost

			min := del
			if ins < min {
				min = ins
			}
			if sub < min {
				min = sub
			}
			curr[j] = min
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
