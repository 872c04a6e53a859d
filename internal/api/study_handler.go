package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/palabras-app/study-api/internal/api/shared"
	"github.com/palabras-app/study-api/internal/platform/logger"
	"github.com/palabras-app/study-api/internal/service/study"
)

// StudyHandler handles study-related HTTP requests: listing challenges,
// checking responses, and serving derived statistics.
type StudyHandler struct {
	studyService study.StudyService
	logger       *slog.Logger
}

// NewStudyHandler creates a new StudyHandler.
func NewStudyHandler(studyService study.StudyService, log *slog.Logger) *StudyHandler {
	if studyService == nil {
		panic("studyService cannot be nil")
	}
	if log == nil {
		panic("logger cannot be nil for StudyHandler")
	}

	return &StudyHandler{
		studyService: studyService,
		logger:       log.With(slog.String("component", "study_handler")),
	}
}

// ChallengeResponse represents one entry of the study list.
type ChallengeResponse struct {
	VocabID      int64  `json:"vocab_id"`
	VocabStudyID int64  `json:"vocab_study_id"`
	Prompt       string `json:"prompt"`
}

// GetStudyList handles GET /study/list?awesome_id=&limit= requests.
// It returns up to limit challenges for the learner, weakest items first.
func (h *StudyHandler) GetStudyList(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	awesomeID, err := queryInt64(r, "awesome_id")
	if err != nil {
		log.Warn("invalid awesome_id query parameter", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "awesome_id must be an integer")
		return
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		log.Warn("invalid limit query parameter", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "limit must be an integer")
		return
	}

	challenges, err := h.studyService.SelectChallenges(r.Context(), awesomeID, limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := make([]ChallengeResponse, len(challenges))
	for i, c := range challenges {
		response[i] = ChallengeResponse{
			VocabID:      c.VocabID,
			VocabStudyID: c.VocabStudyID,
			Prompt:       c.Prompt,
		}
	}

	log.Debug("study list served",
		slog.Int64("awesome_id", awesomeID),
		slog.Int("count", len(response)))
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// StartStudyRequest represents the request body for enrolling a learner on
// a vocab item.
type StartStudyRequest struct {
	AwesomeID int64 `json:"awesome_id" validate:"gte=0"`
	VocabID   int64 `json:"vocab_id"   validate:"gte=0"`
}

// StartStudy handles POST /study/start requests. The study session is
// created on first call and simply returned on subsequent ones.
func (h *StudyHandler) StartStudy(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req StartStudyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		log.Warn("request validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Identifiers must be non-negative")
		return
	}

	challenge, err := h.studyService.StartStudy(r.Context(), req.AwesomeID, req.VocabID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ChallengeResponse{
		VocabID:      challenge.VocabID,
		VocabStudyID: challenge.VocabStudyID,
		Prompt:       challenge.Prompt,
	})
}

// CheckResponseRequest represents the request body for checking an answer.
// Entered may be empty: offering no answer is a valid (incorrect) response.
type CheckResponseRequest struct {
	VocabID      int64  `json:"vocab_id"       validate:"gte=0"`
	VocabStudyID int64  `json:"vocab_study_id" validate:"gte=0"`
	Entered      string `json:"entered"`
}

// FeedbackResponse represents the response body for a checked answer.
type FeedbackResponse struct {
	Feedback string `json:"feedback"`
}

// CheckResponse handles POST /study/check requests.
// This is the engine's only mutating endpoint.
func (h *StudyHandler) CheckResponse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CheckResponseRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		log.Warn("request validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Identifiers must be non-negative")
		return
	}

	feedback, err := h.studyService.CheckResponse(r.Context(), req.VocabID, req.VocabStudyID, req.Entered)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("response checked",
		slog.Int64("vocab_study_id", req.VocabStudyID),
		slog.String("verdict", string(feedback.Verdict)))
	shared.RespondWithJSON(w, r, http.StatusOK, FeedbackResponse{Feedback: feedback.Message})
}

// GetVocabStats handles GET /study/{id}/stats requests.
func (h *StudyHandler) GetVocabStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	vocabStudyID, err := pathInt64(r, "id")
	if err != nil {
		log.Warn("invalid vocab study ID in URL path", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Vocab study ID must be an integer")
		return
	}

	stats, err := h.studyService.VocabStats(r.Context(), vocabStudyID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}

// GetAwesomePerson handles GET /persons/{id} requests.
// A missing person yields a zero-valued profile, not a 404; this mirrors the
// documented contract of the operation.
func (h *StudyHandler) GetAwesomePerson(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	awesomeID, err := pathInt64(r, "id")
	if err != nil {
		log.Warn("invalid awesome ID in URL path", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Awesome ID must be an integer")
		return
	}

	profile, err := h.studyService.Profile(r.Context(), awesomeID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// queryInt64 parses a required int64 query parameter.
func queryInt64(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, errors.New(name + " is required")
	}
	return strconv.ParseInt(raw, 10, 64)
}

// queryInt parses a required int query parameter.
func queryInt(r *http.Request, name string) (int, error) {
	v, err := queryInt64(r, name)
	return int(v), err
}

// pathInt64 parses an int64 chi URL parameter.
func pathInt64(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errors.New(name + " is required")
	}
	return strconv.ParseInt(raw, 10, 64)
}
