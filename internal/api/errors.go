package api

import (
	"errors"
	"net/http"

	"github.com/palabras-app/study-api/internal/service/study"
	"github.com/palabras-app/study-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, study.ErrInvalidLimit),
		errors.Is(err, study.ErrInvalidID),
		errors.Is(err, study.ErrSessionMismatch),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, study.ErrVocabNotFound),
		errors.Is(err, study.ErrSessionNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors: the one internal retry already happened
	case errors.Is(err, store.ErrConflict):
		return http.StatusConflict

	// Default: internal server error (storage unavailable and unknowns)
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, study.ErrInvalidLimit):
		return "Limit must be a positive number"

	case errors.Is(err, study.ErrInvalidID):
		return "Identifiers must be non-negative"

	case errors.Is(err, study.ErrSessionMismatch):
		return "Study session does not belong to this vocab item"

	case errors.Is(err, study.ErrVocabNotFound):
		return "Vocab item not found"

	case errors.Is(err, study.ErrSessionNotFound):
		return "Study session not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, store.ErrConflict):
		return "The record was modified concurrently; please retry"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}
