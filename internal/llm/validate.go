package llm

import (
	"encoding/json"
	"fmt"

	"kharcha/internal/common"
)

// defaultConfidence is assumed when the model omits its confidence score,
// matching the backend's behavior of trusting an unscored answer highly.
const defaultConfidence = 0.95

// validateExtraction turns the model's raw JSON into a typed Extraction,
// enforcing the shape contract: amount must be a JSON number and category,
// title and date must be strings. Everything else is optional with safe
// defaults. Any violation is reported as common.ErrMalformedResponse.
func validateExtraction(raw json.RawMessage) (Extraction, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Extraction{}, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}

	amount, ok := fields["amount"].(float64)
	if !ok {
		return Extraction{}, fmt.Errorf("%w: amount is not a number", common.ErrMalformedResponse)
	}

	category, ok := fields["category"].(string)
	if !ok {
		return Extraction{}, fmt.Errorf("%w: category is not a string", common.ErrMalformedResponse)
	}

	title, ok := fields["title"].(string)
	if !ok {
		return Extraction{}, fmt.Errorf("%w: title is not a string", common.ErrMalformedResponse)
	}

	date, ok := fields["date"].(string)
	if !ok {
		return Extraction{}, fmt.Errorf("%w: date is not a string", common.ErrMalformedResponse)
	}

	confidence := defaultConfidence
	if v, ok := fields["confidence"].(float64); ok {
		confidence = clamp01(v)
	}

	language, _ := fields["language"].(string)
	culturalContext, _ := fields["culturalContext"].(string)

	return Extraction{
		Amount:          amount,
		Category:        category,
		Title:           title,
		Date:            date,
		Confidence:      confidence,
		Language:        language,
		CulturalContext: culturalContext,
	}, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
