// Package dates converts relative-date keywords in any supported language
// into concrete calendar dates. It is the single source of truth for
// relative-to-absolute conversion: the model backend is instructed to emit
// the relative keyword as spoken, never an absolute date, because date
// arithmetic by a language model is unreliable.
package dates

import (
	"strings"
	"time"
)

// absoluteLayouts are tried in order when the token looks like it might
// already be a concrete date.
var absoluteLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02/01/2006",
	"02-01-2006",
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// Resolver maps date tokens to calendar dates. It never fails: anything
// unparseable degrades to today, since an approximate date is preferable to
// blocking expense entry.
type Resolver struct {
	now     func() time.Time
	phrases []phrase
}

// NewResolver creates a resolver backed by the default phrase table.
func NewResolver() *Resolver {
	return &Resolver{
		now:     time.Now,
		phrases: relativePhrases(),
	}
}

// NewResolverAt creates a resolver with a fixed clock. Used in tests and
// anywhere "today" must be pinned.
func NewResolverAt(now func() time.Time) *Resolver {
	r := NewResolver()
	r.now = now
	return r
}

// Resolve converts a date token to a concrete calendar date, truncated to
// midnight local time. Empty tokens and unrecognized input resolve to today.
func (r *Resolver) Resolve(token string) time.Time {
	today := truncateToDay(r.now())

	token = strings.TrimSpace(token)
	if token == "" {
		return today
	}

	if abs, ok := parseAbsolute(token); ok {
		return abs
	}

	lowered := strings.ToLower(token)
	for _, p := range r.phrases {
		if strings.Contains(lowered, p.text) {
			return today.AddDate(0, 0, p.offsetDays)
		}
	}

	return today
}

// parseAbsolute attempts to read the token as an already-concrete date.
// Resolving an absolute date is idempotent: the same date comes back out.
func parseAbsolute(token string) (time.Time, bool) {
	for _, layout := range absoluteLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return truncateToDay(t), true
		}
	}
	return time.Time{}, false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
