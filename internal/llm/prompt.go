package llm

import (
	"fmt"
	"strings"

	"kharcha/internal/model"
)

// buildPrompt creates the extraction prompt. Two rules in it are load
// bearing: the model must emit the relative-date keyword exactly as spoken
// (date arithmetic belongs to the resolver, not the model), and it must emit
// nothing but the JSON object.
func buildPrompt(req model.ParseRequest) string {
	language := req.LanguageHint
	if language == "" {
		language = "unknown"
	}

	return fmt.Sprintf(`You are a financial assistant that extracts expense details from a short sentence, possibly voice-transcribed, in any of these languages: English, Hindi, Marathi, Gujarati, Tamil, Telugu, Bengali, Punjabi.

USER INPUT: %q
USER LANGUAGE: %s
AVAILABLE CATEGORIES: %s

Respond with ONLY a valid JSON object in exactly this shape:
{
  "amount": <number>,
  "category": <string>,
  "title": <string>,
  "date": <string>,
  "confidence": <number>,
  "language": <string>,
  "culturalContext": <string>
}

Rules:
1. amount: extract the numeric value, resolving currency symbols and number words (hundred, thousand, lakh, crore). If several amounts appear, use the largest. Return -1 if no amount is clear.
2. category: pick the closest of the available categories, considering synonyms and regional terms. If none fits, return "Other".
3. title: a short descriptive title with the amount and category words removed.
4. date: return the relative date keyword EXACTLY as spoken ("yesterday", "काल", "परवा"). NEVER compute or return an absolute date. If no date is mentioned, return "today".
5. confidence: your confidence in the extraction, 0.0 to 1.0.
6. language: ISO code of the detected input language.
7. culturalContext: any cultural reference that helped the match, or "".

Return ONLY the JSON object, with no explanations, markdown or extra text.`,
		req.Text,
		language,
		strings.Join(req.KnownCategories, ", "),
	)
}
