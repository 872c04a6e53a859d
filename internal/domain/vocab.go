package domain

import (
	"errors"
	"strings"
)

// Common validation errors for VocabItem.
var (
	ErrEmptyInfinitive = errors.New("vocab item infinitive cannot be empty")
)

// VocabItem is a single piece of vocabulary reference data: the form being
// learned, the language pair it belongs to, and any authoring hints. Items are
// created by content authors and are read-only to the study engine.
type VocabItem struct {
	ID               int64  `json:"vocab_id"`
	Infinitive       string `json:"infinitive"`
	PartOfSpeech     string `json:"part_of_speech"`
	KnownLangCode    string `json:"known_lang_code"`
	LearningLangCode string `json:"learning_lang_code"`
	Hint             string `json:"hint"`
	UserNotes        string `json:"user_notes"`
}

// Validate checks if the VocabItem has valid data.
// Returns an error if any field fails validation.
func (v *VocabItem) Validate() error {
	if v.ID < 0 {
		return ErrInvalidID
	}

	if strings.TrimSpace(v.Infinitive) == "" {
		return ErrEmptyInfinitive
	}

	return nil
}

// AcceptedAnswers returns the reference answers a learner's response is scored
// against. Content authors may list alternates in the infinitive field
// separated by commas ("empezar, comenzar"); each variant is accepted.
func (v *VocabItem) AcceptedAnswers() []string {
	parts := strings.Split(v.Infinitive, ",")
	answers := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			answers = append(answers, trimmed)
		}
	}
	return answers
}
