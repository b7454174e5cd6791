package match

import (
	"strings"

	"kharcha/internal/model"
)

// fuzzyThreshold is the minimum similarity score a known category must reach
// before the fuzzy stage accepts it.
const fuzzyThreshold = 0.6

// Matcher resolves a candidate category label to one of the caller's known
// categories. The synonym table is fixed at construction; Matcher is safe
// for concurrent use.
type Matcher struct {
	synonyms []synonymEntry
}

// NewMatcher creates a matcher with the default multilingual synonym table.
func NewMatcher() *Matcher {
	return &Matcher{synonyms: defaultSynonyms()}
}

// Match returns the known category the candidate label resolves to, or
// model.CategoryOther when nothing matches. Stages are tried in order:
// exact (case-insensitive), synonym containment, fuzzy similarity above
// fuzzyThreshold. Fuzzy ties are broken by the order of knownCategories.
// The result is always a member of knownCategories or model.CategoryOther.
func (m *Matcher) Match(candidate string, knownCategories []string) string {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" || len(knownCategories) == 0 {
		return model.CategoryOther
	}

	known := dedupe(knownCategories)
	lowered := strings.ToLower(candidate)

	// Stage 1: exact match.
	for _, cat := range known {
		if strings.ToLower(cat) == lowered {
			return cat
		}
	}

	// Stage 2: synonym containment, gated on the canonical category being
	// one the caller actually knows.
	for _, entry := range m.synonyms {
		canonical, ok := findKnown(known, entry.canonical)
		if !ok {
			continue
		}
		for _, syn := range entry.synonyms {
			syn = strings.ToLower(syn)
			if strings.Contains(lowered, syn) || strings.Contains(syn, lowered) {
				return canonical
			}
		}
	}

	// Stage 3: fuzzy fallback. First category encountered wins ties.
	best := model.CategoryOther
	bestScore := 0.0
	for _, cat := range known {
		score := Similarity(lowered, strings.ToLower(cat))
		if score > bestScore && score > fuzzyThreshold {
			bestScore = score
			best = cat
		}
	}

	return best
}

// findKnown locates a canonical name in the known list case-insensitively,
// returning the caller's spelling so the contract "result is a member of
// knownCategories" holds verbatim.
func findKnown(known []string, canonical string) (string, bool) {
	for _, cat := range known {
		if strings.EqualFold(cat, canonical) {
			return cat, true
		}
	}
	return "", false
}

// dedupe removes duplicate category names (case-insensitively), keeping the
// first occurrence so ordering stays meaningful for tie-breaking.
func dedupe(categories []string) []string {
	seen := make(map[string]struct{}, len(categories))
	out := make([]string, 0, len(categories))
	for _, cat := range categories {
		key := strings.ToLower(strings.TrimSpace(cat))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, cat)
	}
	return out
}
