package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixedNow pins "today" so relative offsets are deterministic.
var fixedNow = time.Date(2025, time.March, 15, 13, 45, 0, 0, time.UTC)

func newFixedResolver() *Resolver {
	return NewResolverAt(func() time.Time { return fixedNow })
}

func day(offset int) time.Time {
	return time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestResolver_EmptyTokenIsToday(t *testing.T) {
	resolver := newFixedResolver()

	assert.Equal(t, day(0), resolver.Resolve(""))
	assert.Equal(t, day(0), resolver.Resolve("   "))
}

func TestResolver_AbsoluteDatesAreIdempotent(t *testing.T) {
	resolver := newFixedResolver()

	got := resolver.Resolve("2024-11-03")
	assert.Equal(t, time.Date(2024, time.November, 3, 0, 0, 0, 0, time.UTC), got)

	// Resolving the already-resolved date again returns the same date.
	again := resolver.Resolve(got.Format("2006-01-02"))
	assert.Equal(t, got, again)
}

func TestResolver_RelativePhrases(t *testing.T) {
	resolver := newFixedResolver()

	tests := []struct {
		name  string
		token string
		want  time.Time
	}{
		{"english today", "today", day(0)},
		{"english yesterday", "yesterday", day(-1)},
		{"english day before yesterday", "day before yesterday", day(-2)},
		{"english tomorrow", "tomorrow", day(+1)},
		{"english last week", "last week", day(-7)},
		{"hindi today", "आज", day(0)},
		{"hindi yesterday", "कल", day(-1)},
		{"hindi day before yesterday", "परसों", day(-2)},
		{"marathi yesterday", "काल", day(-1)},
		{"marathi day before yesterday", "परवा", day(-2)},
		{"gujarati yesterday", "ગઈકાલે", day(-1)},
		{"tamil today", "இன்று", day(0)},
		{"tamil yesterday", "நேற்று", day(-1)},
		{"telugu yesterday", "నిన్న", day(-1)},
		{"telugu day before yesterday", "మొన్న", day(-2)},
		{"bengali today", "আজ", day(0)},
		{"bengali yesterday", "কাল", day(-1)},
		{"punjabi today", "ਅੱਜ", day(0)},
		{"punjabi yesterday", "ਕੱਲ੍ਹ", day(-1)},
		{"phrase embedded in sentence fragment", "on yesterday evening", day(-1)},
		{"uppercase token", "YESTERDAY", day(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.Resolve(tt.token))
		})
	}
}

func TestResolver_MoreSpecificPhraseWins(t *testing.T) {
	resolver := newFixedResolver()

	// "day before yesterday" contains "yesterday"; the longer phrase must
	// match first.
	assert.Equal(t, day(-2), resolver.Resolve("the day before yesterday"))
}

func TestResolver_UnknownTokenDefaultsToToday(t *testing.T) {
	resolver := newFixedResolver()

	for _, token := range []string{"sometime", "next diwali", "???", "32/13/9999"} {
		assert.Equal(t, day(0), resolver.Resolve(token), "token %q", token)
	}
}

func TestResolver_NeverErrors(t *testing.T) {
	resolver := NewResolver()

	// Smoke check with the real clock: every input yields a valid date.
	for _, token := range []string{"", "yesterday", "garbage", "2020-01-01"} {
		got := resolver.Resolve(token)
		assert.False(t, got.IsZero())
	}
}
