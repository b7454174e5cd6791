// Package llm adapts language-model backends for first-pass structured
// expense extraction. The backend is an untrusted collaborator: everything
// it returns is revalidated before the rest of the pipeline sees it.
package llm

import (
	"context"
	"encoding/json"
	"time"
)

// Client defines the interface for model providers. Implementations return
// the raw JSON object emitted by the model after transport-level cleanup
// (markdown fences stripped, surrounding prose discarded); they do not
// interpret its contents.
type Client interface {
	ExtractExpense(ctx context.Context, prompt string) (json.RawMessage, error)
}

// Config holds configuration for the primary extractor.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Timeout     time.Duration
	CacheTTL    time.Duration
	Temperature float64
	MaxTokens   int
	RateLimit   int
}

// Extraction is a validated extraction candidate, pre-normalization: the
// category is still the model's free-text label and the date is still a
// relative keyword. The orchestrator owns turning both into final values.
type Extraction struct {
	Category        string
	Title           string
	Date            string
	Language        string
	CulturalContext string
	Amount          float64
	Confidence      float64
}
