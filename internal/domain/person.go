package domain

import (
	"errors"
	"strings"
)

// Common validation errors for Person.
var (
	ErrEmptyPersonName = errors.New("person name cannot be empty")
)

// Person is the learner profile (the "awesome person"). Identity comes from
// an external collaborator; the engine only reads it. All aggregate figures
// are derived from the person's StudySessions — see AwesomeProfile.
type Person struct {
	ID   int64  `json:"awesome_id"`
	Name string `json:"name"`
}

// Validate checks if the Person has valid data.
func (p *Person) Validate() error {
	if p.ID < 0 {
		return ErrInvalidID
	}

	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyPersonName
	}

	return nil
}

// Challenge is an ephemeral, request-scoped projection pairing a vocab item
// with its study session plus a generated prompt. It is never persisted.
type Challenge struct {
	VocabID      int64  `json:"vocab_id"`
	VocabStudyID int64  `json:"vocab_study_id"`
	Prompt       string `json:"prompt"`
}
