package study

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/palabras-app/study-api/internal/domain"
	"github.com/palabras-app/study-api/internal/domain/match"
	"github.com/palabras-app/study-api/internal/domain/retention"
	"github.com/palabras-app/study-api/internal/platform/logger"
	"github.com/palabras-app/study-api/internal/store"
)

// Verify interface compliance at compile time
var _ StudyService = (*studyServiceImpl)(nil)

// studyServiceImpl implements the StudyService interface.
type studyServiceImpl struct {
	vocabStore   store.VocabStore
	personStore  store.PersonStore
	sessionStore store.StudySessionStore
	matcher      match.Service
	retention    retention.Service
	logger       *slog.Logger
	now          func() time.Time
}

// NewStudyService creates a new StudyService implementation.
func NewStudyService(
	vocabStore store.VocabStore,
	personStore store.PersonStore,
	sessionStore store.StudySessionStore,
	matcher match.Service,
	retentionSvc retention.Service,
	log *slog.Logger,
) StudyService {
	if vocabStore == nil {
		panic("vocabStore cannot be nil")
	}
	if personStore == nil {
		panic("personStore cannot be nil")
	}
	if sessionStore == nil {
		panic("sessionStore cannot be nil")
	}
	if matcher == nil {
		panic("matcher cannot be nil")
	}
	if retentionSvc == nil {
		panic("retention service cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &studyServiceImpl{
		vocabStore:   vocabStore,
		personStore:  personStore,
		sessionStore: sessionStore,
		matcher:      matcher,
		retention:    retentionSvc,
		logger:       log.With(slog.String("component", "study_service")),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// StartStudy implements StudyService.StartStudy.
func (s *studyServiceImpl) StartStudy(
	ctx context.Context,
	awesomeID, vocabID int64,
) (domain.Challenge, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if awesomeID < 0 || vocabID < 0 {
		return domain.Challenge{}, fmt.Errorf("%w: awesome_id %d, vocab_id %d",
			ErrInvalidID, awesomeID, vocabID)
	}

	item, err := s.vocabStore.GetVocabItem(ctx, vocabID)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Warn("vocab item not found", slog.Int64("vocab_id", vocabID))
			return domain.Challenge{}, ErrVocabNotFound
		}
		return domain.Challenge{}, NewServiceError("start_study", "failed to load vocab item", err)
	}

	sess, err := s.sessionStore.GetOrCreate(ctx, awesomeID, vocabID)
	if err != nil {
		return domain.Challenge{}, NewServiceError("start_study", "failed to get or create study session", err)
	}

	log.Debug("study started",
		slog.Int64("awesome_id", awesomeID),
		slog.Int64("vocab_id", vocabID),
		slog.Int64("vocab_study_id", sess.ID))
	return domain.Challenge{
		VocabID:      vocabID,
		VocabStudyID: sess.ID,
		Prompt:       promptFor(item),
	}, nil
}

// SelectChallenges implements StudyService.SelectChallenges.
func (s *studyServiceImpl) SelectChallenges(
	ctx context.Context,
	awesomeID int64,
	limit int,
) ([]domain.Challenge, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}
	if awesomeID < 0 {
		return nil, fmt.Errorf("%w: awesome_id %d", ErrInvalidID, awesomeID)
	}

	sessions, err := s.sessionStore.ListByPerson(ctx, awesomeID)
	if err != nil {
		log.Error("failed to list study sessions",
			slog.String("error", err.Error()),
			slog.Int64("awesome_id", awesomeID))
		return nil, NewServiceError("select_challenges", "failed to list study sessions", err)
	}

	// Weakest retention first; fewer than limit is fine, never pad.
	retention.SortWeakestFirst(sessions)
	if len(sessions) > limit {
		sessions = sessions[:limit]
	}

	vocabIDs := make([]int64, len(sessions))
	for i := range sessions {
		vocabIDs[i] = sessions[i].VocabID
	}

	items, err := s.vocabStore.GetVocabItems(ctx, vocabIDs)
	if err != nil {
		log.Error("failed to load vocab items",
			slog.String("error", err.Error()),
			slog.Int64("awesome_id", awesomeID))
		return nil, NewServiceError("select_challenges", "failed to load vocab items", err)
	}

	challenges := make([]domain.Challenge, 0, len(sessions))
	for i := range sessions {
		sess := &sessions[i]
		item, ok := items[sess.VocabID]
		if !ok {
			// A session referencing a missing item indicates deleted
			// reference data; skip it rather than failing the whole list.
			log.Warn("study session references missing vocab item",
				slog.Int64("vocab_study_id", sess.ID),
				slog.Int64("vocab_id", sess.VocabID))
			continue
		}

		challenges = append(challenges, domain.Challenge{
			VocabID:      sess.VocabID,
			VocabStudyID: sess.ID,
			Prompt:       promptFor(item),
		})
	}

	log.Debug("selected challenges",
		slog.Int64("awesome_id", awesomeID),
		slog.Int("requested", limit),
		slog.Int("returned", len(challenges)))
	return challenges, nil
}

// CheckResponse implements StudyService.CheckResponse.
func (s *studyServiceImpl) CheckResponse(
	ctx context.Context,
	vocabID, vocabStudyID int64,
	entered string,
) (Feedback, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if vocabID < 0 || vocabStudyID < 0 {
		return Feedback{}, fmt.Errorf("%w: vocab_id %d, vocab_study_id %d",
			ErrInvalidID, vocabID, vocabStudyID)
	}

	sess, err := s.sessionStore.GetStudySession(ctx, vocabStudyID)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Warn("study session not found",
				slog.Int64("vocab_study_id", vocabStudyID))
			return Feedback{}, ErrSessionNotFound
		}
		return Feedback{}, NewServiceError("check_response", "failed to load study session", err)
	}

	if sess.VocabID != vocabID {
		log.Warn("study session does not belong to vocab item",
			slog.Int64("vocab_study_id", vocabStudyID),
			slog.Int64("vocab_id", vocabID),
			slog.Int64("session_vocab_id", sess.VocabID))
		return Feedback{}, ErrSessionMismatch
	}

	item, err := s.vocabStore.GetVocabItem(ctx, vocabID)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Warn("vocab item not found", slog.Int64("vocab_id", vocabID))
			return Feedback{}, ErrVocabNotFound
		}
		return Feedback{}, NewServiceError("check_response", "failed to load vocab item", err)
	}

	result, err := s.matcher.Evaluate(entered, item.AcceptedAnswers())
	if err != nil {
		return Feedback{}, NewServiceError("check_response", "failed to evaluate answer", err)
	}

	if err := s.recordOutcome(ctx, sess, result.Verdict); err != nil {
		return Feedback{}, err
	}

	log.Debug("response evaluated",
		slog.Int64("vocab_study_id", vocabStudyID),
		slog.String("verdict", string(result.Verdict)))
	return Feedback{
		Message: feedbackMessage(result, entered),
		Verdict: result.Verdict,
	}, nil
}

// recordOutcome applies the retention update and saves the session. A lost
// optimistic-concurrency race is retried exactly once against a fresh read;
// the second conflict surfaces to the caller.
func (s *studyServiceImpl) recordOutcome(
	ctx context.Context,
	sess *domain.StudySession,
	verdict match.Verdict,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	updated, err := s.retention.ApplyOutcome(sess, verdict, s.now())
	if err != nil {
		return NewServiceError("check_response", "failed to apply outcome", err)
	}

	err = s.sessionStore.Save(ctx, updated)
	if !store.IsConflictError(err) {
		if err != nil {
			return NewServiceError("check_response", "failed to save study session", err)
		}
		return nil
	}

	log.Debug("save conflict, retrying with fresh read",
		slog.Int64("vocab_study_id", sess.ID))

	fresh, err := s.sessionStore.GetStudySession(ctx, sess.ID)
	if err != nil {
		return NewServiceError("check_response", "failed to re-read study session after conflict", err)
	}

	updated, err = s.retention.ApplyOutcome(fresh, verdict, s.now())
	if err != nil {
		return NewServiceError("check_response", "failed to apply outcome on retry", err)
	}

	if err := s.sessionStore.Save(ctx, updated); err != nil {
		if store.IsConflictError(err) {
			log.Warn("save conflict persisted after retry",
				slog.Int64("vocab_study_id", sess.ID))
		}
		return NewServiceError("check_response", "failed to save study session after retry", err)
	}

	return nil
}

// VocabStats implements StudyService.VocabStats.
func (s *studyServiceImpl) VocabStats(ctx context.Context, vocabStudyID int64) (domain.VocabStats, error) {
	if vocabStudyID < 0 {
		return domain.VocabStats{}, fmt.Errorf("%w: vocab_study_id %d", ErrInvalidID, vocabStudyID)
	}

	sess, err := s.sessionStore.GetStudySession(ctx, vocabStudyID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return domain.VocabStats{}, ErrSessionNotFound
		}
		return domain.VocabStats{}, NewServiceError("vocab_stats", "failed to load study session", err)
	}

	stats := domain.ComputeVocabStats(sess)
	stats.Stage = s.retention.Stage(sess)
	return stats, nil
}

// Profile implements StudyService.Profile.
func (s *studyServiceImpl) Profile(ctx context.Context, awesomeID int64) (domain.AwesomeProfile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if awesomeID < 0 {
		return domain.AwesomeProfile{}, fmt.Errorf("%w: awesome_id %d", ErrInvalidID, awesomeID)
	}

	person, err := s.personStore.GetPerson(ctx, awesomeID)
	if err != nil {
		if store.IsNotFoundError(err) {
			// Unknown person: the contract is a zero-valued profile,
			// not an error.
			log.Debug("person not found, returning default profile",
				slog.Int64("awesome_id", awesomeID))
			return domain.AwesomeProfile{AwesomeID: awesomeID}, nil
		}
		return domain.AwesomeProfile{}, NewServiceError("profile", "failed to load person", err)
	}

	sessions, err := s.sessionStore.ListByPerson(ctx, awesomeID)
	if err != nil {
		return domain.AwesomeProfile{}, NewServiceError("profile", "failed to list study sessions", err)
	}

	return domain.ComputeProfile(person, sessions, s.retention.ProfileThresholds()), nil
}

// promptFor is the pure formatting rule for a challenge prompt:
// the infinitive, the hint in parentheses when present, and the author notes
// after a "; note:" marker when present. Nothing here is persisted.
func promptFor(item *domain.VocabItem) string {
	var b strings.Builder
	b.WriteString(item.Infinitive)

	if hint := strings.TrimSpace(item.Hint); hint != "" {
		b.WriteString(" (")
		b.WriteString(hint)
		b.WriteString(")")
	}

	if notes := strings.TrimSpace(item.UserNotes); notes != "" {
		b.WriteString("; note: ")
		b.WriteString(notes)
	}

	return b.String()
}

// feedbackMessage renders the learner-facing feedback string. The correct
// form is echoed back on any miss; the raw similarity score is never exposed.
func feedbackMessage(result match.Result, entered string) string {
	switch result.Verdict {
	case match.VerdictCorrect:
		return fmt.Sprintf("¡Muy bien! %s is correct.", strings.TrimSpace(entered))
	case match.VerdictClose:
		return fmt.Sprintf("Close! The answer is '%s'.", result.Reference)
	default:
		if strings.TrimSpace(entered) == "" {
			return fmt.Sprintf("No answer given. The correct answer is '%s'.", result.Reference)
		}
		return fmt.Sprintf("The correct answer is '%s'.", result.Reference)
	}
}
