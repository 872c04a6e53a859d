package retention

import (
	"sort"
	"time"

	"github.com/palabras-app/study-api/internal/domain"
	"github.com/palabras-app/study-api/internal/domain/match"
)

// outcomeValue maps a verdict to the observation fed into the confidence
// moving average. A close answer is worth half a correct one.
func outcomeValue(verdict match.Verdict) float64 {
	switch verdict {
	case match.VerdictCorrect:
		return 1.0
	case match.VerdictClose:
		return 0.5
	default:
		return 0.0
	}
}

// applyOutcome returns a copy of the session with counters and confidence
// advanced for one evaluated answer. Attempts always increments;
// CorrectAttempts increments only on a correct verdict, which keeps
// CorrectAttempts <= Attempts by construction.
func applyOutcome(sess *domain.StudySession, verdict match.Verdict, now time.Time, params *Params) *domain.StudySession {
	updated := *sess

	updated.Attempts++
	if verdict == match.VerdictCorrect {
		updated.CorrectAttempts++
	}

	updated.Confidence = (1-params.Alpha)*sess.Confidence + params.Alpha*outcomeValue(verdict)
	updated.LastTested = now
	updated.UpdatedAt = now

	return &updated
}

// stageOf derives the lifecycle classification from the session's counters.
func stageOf(sess *domain.StudySession, params *Params) domain.StudyStage {
	switch {
	case sess.Attempts == 0:
		return domain.StageUnseen
	case sess.Attempts < params.MasteryMinAttempts:
		return domain.StageSeen
	case sess.PercentageCorrect() >= params.MasteryRatio:
		return domain.StageMastered
	default:
		return domain.StageLearning
	}
}

// Weaker reports whether session a should be studied before session b.
// Ordering: lowest confidence first, then oldest last-tested (zero time, i.e.
// never tested, sorts first), then creation order by ID for determinism.
func Weaker(a, b *domain.StudySession) bool {
	if a.Confidence != b.Confidence {
		return a.Confidence < b.Confidence
	}
	if !a.LastTested.Equal(b.LastTested) {
		return a.LastTested.Before(b.LastTested)
	}
	return a.ID < b.ID
}

// SortWeakestFirst orders sessions in place so that struggling and stale
// items surface first. The sort is deterministic for any input permutation.
func SortWeakestFirst(sessions []domain.StudySession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return Weaker(&sessions[i], &sessions[j])
	})
}
