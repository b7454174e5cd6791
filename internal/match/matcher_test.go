package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher_Match(t *testing.T) {
	matcher := NewMatcher()

	tests := []struct {
		name      string
		candidate string
		known     []string
		want      string
	}{
		{
			name:      "exact match",
			candidate: "Food",
			known:     []string{"Food", "Transport"},
			want:      "Food",
		},
		{
			name:      "exact match is case insensitive",
			candidate: "fOOD",
			known:     []string{"Food", "Transport"},
			want:      "Food",
		},
		{
			name:      "exact match returns caller spelling",
			candidate: "transport",
			known:     []string{"TRANSPORT"},
			want:      "TRANSPORT",
		},
		{
			name:      "romanized synonym resolves to canonical",
			candidate: "khana",
			known:     []string{"Food"},
			want:      "Food",
		},
		{
			name:      "native script synonym resolves to canonical",
			candidate: "जेवण",
			known:     []string{"Food", "Transport"},
			want:      "Food",
		},
		{
			name:      "synonym ignored when canonical not known",
			candidate: "uber",
			known:     []string{"Bills"},
			want:      "Other",
		},
		{
			name:      "synonym containment within longer label",
			candidate: "uber ride home",
			known:     []string{"Transport", "Food"},
			want:      "Transport",
		},
		{
			name:      "fuzzy match above threshold",
			candidate: "Transprot",
			known:     []string{"Food", "Transport"},
			want:      "Transport",
		},
		{
			name:      "fuzzy below threshold returns Other",
			candidate: "zzqqwwx",
			known:     []string{"Bills"},
			want:      "Other",
		},
		{
			name:      "empty candidate returns Other",
			candidate: "",
			known:     []string{"Food"},
			want:      "Other",
		},
		{
			name:      "no known categories returns Other",
			candidate: "Food",
			known:     nil,
			want:      "Other",
		},
		{
			name:      "duplicates in known categories are ignored",
			candidate: "fod",
			known:     []string{"Food", "Food", "Food"},
			want:      "Food",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matcher.Match(tt.candidate, tt.known))
		})
	}
}

func TestMatcher_FuzzyTieBreaksOnOrder(t *testing.T) {
	matcher := NewMatcher()

	// "bakn" is equidistant from "bank" and "bakns"-like variants; with two
	// candidates at the same score the first in the list must win.
	got := matcher.Match("renx", []string{"rent", "renz"})
	assert.Equal(t, "rent", got)

	// Reversing the order flips the winner.
	got = matcher.Match("renx", []string{"renz", "rent"})
	assert.Equal(t, "renz", got)
}

func TestMatcher_NeverReturnsUnknownCategory(t *testing.T) {
	matcher := NewMatcher()
	known := []string{"Food", "Bills"}

	candidates := []string{"khana", "electricity", "Food", "garbage-label", "", "पील"}
	for _, candidate := range candidates {
		got := matcher.Match(candidate, known)
		assert.Contains(t, append(known, "Other"), got,
			"candidate %q resolved outside known set", candidate)
	}
}
