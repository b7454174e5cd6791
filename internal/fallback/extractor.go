// Package fallback implements the deterministic, regex and keyword driven
// expense extractor used when the model-backed extractor is unavailable or
// returns an invalid result. It favors determinism over completeness: the
// date is always today and the confidence is a fixed low constant signaling
// that the result needs human confirmation.
package fallback

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"kharcha/internal/model"
)

// Confidence is the fixed quality score attached to every fallback result.
const Confidence = 0.5

const currencyWords = `rupees?|rs\.?|₹|dollars?|\$|euros?|€|pounds?|£|रुपये|रुपया|টাকা|রুপি|ரூபாய்|రూపాయలు|રૂપિયા`

const magnitudeWords = `hundred|thousand|k|lakh|lac|crore|सौ|हज़ार|हजार|लाख|करोड़|শত|হাজার|লক্ষ|நூறு|ஆயிரம்|லட்சம்|వంద|వేలు|లక్ష|સો|હજાર|લાખ|ਸੌ|ਹਜ਼ਾਰ|ਲੱਖ`

// multipliers maps a magnitude word to its numeric factor.
var multipliers = map[string]float64{
	"hundred": 100, "सौ": 100, "শত": 100, "நூறு": 100, "వంద": 100, "સો": 100, "ਸੌ": 100,
	"thousand": 1000, "k": 1000, "हज़ार": 1000, "हजार": 1000, "হাজার": 1000,
	"ஆயிரம்": 1000, "వేలు": 1000, "હજાર": 1000, "ਹਜ਼ਾਰ": 1000,
	"lakh": 100000, "lac": 100000, "लाख": 100000, "লক্ষ": 100000,
	"லட்சம்": 100000, "లక్ష": 100000, "લાખ": 100000, "ਲੱਖ": 100000,
	"crore": 10000000, "करोड़": 10000000,
}

// Extractor performs deterministic extraction. All patterns are compiled at
// construction; the extractor is stateless afterwards and safe for
// concurrent use.
type Extractor struct {
	now            func() time.Time
	amountCurrency *regexp.Regexp
	currencyAmount *regexp.Regexp
	amountScaled   *regexp.Regexp
	bareAmount     *regexp.Regexp
	keywords       []keywordEntry
}

// NewExtractor creates a fallback extractor with the default keyword tables.
func NewExtractor() *Extractor {
	return &Extractor{
		now:            time.Now,
		amountCurrency: regexp.MustCompile(`(?i)(\d+(?:\.\d{1,2})?)\s*(?:` + currencyWords + `)`),
		currencyAmount: regexp.MustCompile(`(?i)(?:` + currencyWords + `)\s*(\d+(?:\.\d{1,2})?)`),
		amountScaled:   regexp.MustCompile(`(?i)(\d+(?:\.\d{1,2})?)\s*(` + magnitudeWords + `)`),
		bareAmount:     regexp.MustCompile(`(\d+(?:\.\d{1,2})?)`),
		keywords:       defaultKeywords(),
	}
}

// NewExtractorAt creates an extractor with a fixed clock, for tests.
func NewExtractorAt(now func() time.Time) *Extractor {
	e := NewExtractor()
	e.now = now
	return e
}

// Extract builds a best-effort ParsedExpense from raw text. It never fails;
// an undeterminable amount is reported via the sentinel value.
func (e *Extractor) Extract(req model.ParseRequest) model.ParsedExpense {
	now := e.now()
	lowered := strings.ToLower(req.Text)

	return model.ParsedExpense{
		Amount:          e.extractAmount(req.Text),
		Category:        e.extractCategory(lowered, req.KnownCategories),
		Title:           extractTitle(req.Text),
		Date:            time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Confidence:      Confidence,
		Accuracy:        Confidence,
		Language:        req.LanguageHint,
		CulturalContext: "fallback parsing used",
		OriginalText:    req.Text,
		ParsedAt:        now,
	}
}

// extractAmount tries the amount patterns in order: number+currency,
// currency+number, number+magnitude word, bare number. The magnitude check
// runs before the bare-number one so "2 lakh" resolves to 200000 instead of
// stopping at the bare "2".
func (e *Extractor) extractAmount(text string) float64 {
	if m := e.amountCurrency.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v
		}
	}

	if m := e.currencyAmount.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v
		}
	}

	if m := e.amountScaled.FindStringSubmatch(text); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			if factor, ok := multipliers[strings.ToLower(m[2])]; ok {
				return v * factor
			}
			return v
		}
	}

	if m := e.bareAmount.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v
		}
	}

	return model.AmountUndetermined
}

// extractCategory returns the first known category whose keyword appears in
// the lowercased text. Categories the caller does not know are skipped.
func (e *Extractor) extractCategory(loweredText string, known []string) string {
	for _, entry := range e.keywords {
		canonical, ok := findKnown(known, entry.category)
		if !ok {
			continue
		}
		for _, kw := range entry.keywords {
			if strings.Contains(loweredText, strings.ToLower(kw)) {
				return canonical
			}
		}
	}
	return model.CategoryOther
}

// extractTitle takes the first 50 characters of the input, rune-safe.
func extractTitle(text string) string {
	title := strings.TrimSpace(text)
	if title == "" {
		return model.DefaultTitle
	}
	runes := []rune(title)
	if len(runes) > 50 {
		title = string(runes[:50])
	}
	return title
}

func findKnown(known []string, canonical string) (string, bool) {
	for _, cat := range known {
		if strings.EqualFold(cat, canonical) {
			return cat, true
		}
	}
	return "", false
}
