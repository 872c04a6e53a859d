package domain

import "time"

// lastTestedLayout is the locale-stable display format for last-tested
// timestamps. Always rendered in UTC.
const lastTestedLayout = "2006-01-02 15:04"

// VocabStats is the derived per-session summary returned to callers.
// It is computed on demand and never stored.
type VocabStats struct {
	VocabStudyID      int64      `json:"vocab_study_id"`
	Attempts          int        `json:"attempts"`
	CorrectAttempts   int        `json:"correct_attempts"`
	PercentageCorrect float64    `json:"percentage_correct"`
	LastTested        string     `json:"last_tested"`
	Stage             StudyStage `json:"stage"`
}

// AwesomeProfile is the derived aggregate view of a person's progress.
// Every field must be re-derivable from the person's StudySessions; nothing
// here is stored independently, which rules out drift between the counters
// and the aggregates.
type AwesomeProfile struct {
	AwesomeID       int64   `json:"awesome_id"`
	Name            string  `json:"name"`
	NumKnown        int     `json:"num_known"`
	NumCorrect      int     `json:"num_correct"`
	NumIncorrect    int     `json:"num_incorrect"`
	TotalPercentage float64 `json:"total_percentage"`
	SmallestVocab   int     `json:"smallest_vocab"`
}

// ProfileThresholds are the cut-offs used when classifying sessions for an
// AwesomeProfile. They are configuration, not domain constants; the retention
// package supplies defaults.
type ProfileThresholds struct {
	// KnownConfidence is the minimum confidence at which an item counts as known.
	KnownConfidence float64
	// MinExposureAttempts is the attempt count below which an item counts
	// toward the smallest-vocabulary figure.
	MinExposureAttempts int
}

// ComputeVocabStats derives the VocabStats summary for a single session.
// PercentageCorrect is 0 when no attempts have been made; LastTested renders
// as "never" until the first evaluated response.
func ComputeVocabStats(sess *StudySession) VocabStats {
	return VocabStats{
		VocabStudyID:      sess.ID,
		Attempts:          sess.Attempts,
		CorrectAttempts:   sess.CorrectAttempts,
		PercentageCorrect: sess.PercentageCorrect(),
		LastTested:        FormatLastTested(sess.LastTested),
	}
}

// ComputeProfile derives a person's aggregate profile from their sessions.
// A person with no sessions gets an all-zero profile; this is the documented
// contract, not an error case.
func ComputeProfile(person *Person, sessions []StudySession, thresholds ProfileThresholds) AwesomeProfile {
	profile := AwesomeProfile{}
	if person != nil {
		profile.AwesomeID = person.ID
		profile.Name = person.Name
	}

	totalAttempts := 0
	for i := range sessions {
		sess := &sessions[i]
		totalAttempts += sess.Attempts
		profile.NumCorrect += sess.CorrectAttempts
		profile.NumIncorrect += sess.Attempts - sess.CorrectAttempts

		if sess.Confidence >= thresholds.KnownConfidence {
			profile.NumKnown++
		}
		if sess.Attempts < thresholds.MinExposureAttempts {
			profile.SmallestVocab++
		}
	}

	if totalAttempts > 0 {
		profile.TotalPercentage = float64(profile.NumCorrect) / float64(totalAttempts)
	}

	return profile
}

// FormatLastTested renders a last-tested timestamp as a locale-stable UTC
// string, or "never" for the zero time.
func FormatLastTested(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.UTC().Format(lastTestedLayout)
}
