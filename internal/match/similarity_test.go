package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{
			name: "identical strings",
			a:    "groceries",
			b:    "groceries",
			want: 1.0,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 1.0,
		},
		{
			name: "one empty",
			a:    "food",
			b:    "",
			want: 0.0,
		},
		{
			name: "completely different same length",
			a:    "abcd",
			b:    "wxyz",
			want: 0.0,
		},
		{
			name: "single substitution",
			a:    "food",
			b:    "fond",
			want: 0.75,
		},
		{
			name: "single insertion",
			a:    "bill",
			b:    "bills",
			want: 0.8,
		},
		{
			name: "multibyte runes counted as single edits",
			a:    "खाना",
			b:    "खाणा",
			want: 0.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"food", "fond"},
		{"transport", "transprot"},
		{"", "entertainment"},
		{"खाना", "khana"},
	}

	for _, pair := range pairs {
		assert.Equal(t, Similarity(pair[0], pair[1]), Similarity(pair[1], pair[0]),
			"similarity(%q, %q) must be symmetric", pair[0], pair[1])
	}
}

func TestSimilarity_SelfIdentity(t *testing.T) {
	for _, s := range []string{"", "a", "groceries", "मनोरंजन"} {
		assert.Equal(t, 1.0, Similarity(s, s))
	}
}
