// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is negative or malformed.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrInvalidCounters is returned when attempt counters are inconsistent,
	// i.e. correct attempts exceed total attempts or a counter is negative.
	ErrInvalidCounters = errors.New("invalid attempt counters")

	// ErrInvalidConfidence is returned when a confidence value falls outside [0, 1].
	ErrInvalidConfidence = errors.New("confidence must be between 0 and 1")
)
