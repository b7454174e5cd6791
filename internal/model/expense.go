// Package model defines the core domain models used throughout the application.
package model

import "time"

// AmountUndetermined is the sentinel amount meaning no numeric value could be
// extracted. A result carrying it always needs user confirmation.
const AmountUndetermined float64 = -1

// CategoryOther is returned when no known category can be matched.
const CategoryOther = "Other"

// DefaultTitle is used when the input yields no usable title text.
const DefaultTitle = "Voice Expense"

// ParseRequest is a single extraction request. KnownCategories is read-only
// for the duration of the parse; the pipeline never modifies it.
type ParseRequest struct {
	Text            string
	LanguageHint    string
	KnownCategories []string
}

// ParsedExpense is the structured result of parsing one expense sentence.
// It is constructed once per request and never mutated afterwards.
type ParsedExpense struct {
	ParsedAt        time.Time `json:"parsed_at"`
	Date            time.Time `json:"date"`
	Category        string    `json:"category"`
	Title           string    `json:"title"`
	Language        string    `json:"language,omitempty"`
	CulturalContext string    `json:"cultural_context,omitempty"`
	OriginalText    string    `json:"original_text"`
	Amount          float64   `json:"amount"`
	Confidence      float64   `json:"confidence"`
	Accuracy        float64   `json:"accuracy"`
}

// NeedsReview reports whether the result is below the quality bar for
// unattended saving: either the amount was never determined or the
// orchestrator-trusted accuracy is low.
func (e ParsedExpense) NeedsReview() bool {
	return e.Amount == AmountUndetermined || e.Accuracy < 0.7
}

// Expense is a persisted expense record.
type Expense struct {
	CreatedAt    time.Time `json:"created_at"`
	Date         time.Time `json:"date"`
	ID           string    `json:"id"`
	UserID       string    `json:"user_id,omitempty"`
	Category     string    `json:"category"`
	Title        string    `json:"title"`
	Language     string    `json:"language,omitempty"`
	OriginalText string    `json:"original_text,omitempty"`
	Amount       float64   `json:"amount"`
	Confidence   float64   `json:"confidence"`
	Accuracy     float64   `json:"accuracy"`
	NeedsReview  bool      `json:"needs_review"`
}
