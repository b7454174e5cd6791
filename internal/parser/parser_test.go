package parser

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kharcha/internal/common"
	"kharcha/internal/dates"
	"kharcha/internal/fallback"
	"kharcha/internal/llm"
	"kharcha/internal/model"
)

type stubPrimary struct {
	extraction llm.Extraction
	err        error
	calls      int
}

func (s *stubPrimary) Extract(_ context.Context, _ model.ParseRequest) (llm.Extraction, error) {
	s.calls++
	return s.extraction, s.err
}

var testNow = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func newTestParser(primary PrimaryExtractor) *Parser {
	clock := func() time.Time { return testNow }
	p := New(primary, slog.New(slog.NewTextHandler(io.Discard, nil)))
	p.resolver = dates.NewResolverAt(clock)
	p.fallback = fallback.NewExtractorAt(clock)
	p.now = clock
	return p
}

func defaultRequest(text string) model.ParseRequest {
	return model.ParseRequest{
		Text:            text,
		LanguageHint:    "en",
		KnownCategories: model.DefaultCategories(),
	}
}

func TestParser_Parse_EmptyText(t *testing.T) {
	primary := &stubPrimary{}
	p := newTestParser(primary)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := p.Parse(context.Background(), defaultRequest(text))
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrEmptyText)
	}
	assert.Zero(t, primary.calls, "primary extractor must not run on empty input")
}

func TestParser_Parse_PrimarySuccess(t *testing.T) {
	primary := &stubPrimary{
		extraction: llm.Extraction{
			Amount:     500,
			Category:   "Food",
			Title:      "Lunch at dhaba",
			Date:       "today",
			Confidence: 0.95,
			Language:   "en",
		},
	}
	p := newTestParser(primary)

	result, err := p.Parse(context.Background(), defaultRequest("I spent 500 rupees on lunch today"))
	require.NoError(t, err)

	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 500.0, result.Amount)
	assert.Equal(t, "Food", result.Category)
	assert.Equal(t, "Lunch at dhaba", result.Title)
	assert.Equal(t, today, result.Date)
	assert.Equal(t, 0.95, result.Confidence)
	assert.Equal(t, 0.95, result.Accuracy)
	assert.Equal(t, "I spent 500 rupees on lunch today", result.OriginalText)
	assert.Equal(t, testNow, result.ParsedAt)
	assert.False(t, result.NeedsReview())
}

func TestParser_Parse_NormalizesCategoryAndDate(t *testing.T) {
	tests := []struct {
		name         string
		category     string
		date         string
		wantCategory string
		wantDate     time.Time
	}{
		{
			name:         "synonym category and relative date",
			category:     "khana",
			date:         "yesterday",
			wantCategory: "Food",
			wantDate:     time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "hindi relative date",
			category:     "Transport",
			date:         "परसों",
			wantCategory: "Transport",
			wantDate:     time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "unmatchable category becomes Other",
			category:     "quantum flux",
			date:         "today",
			wantCategory: model.CategoryOther,
			wantDate:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "absolute date passes through",
			category:     "Bills",
			date:         "2025-02-01",
			wantCategory: "Bills",
			wantDate:     time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &stubPrimary{
				extraction: llm.Extraction{
					Amount:     100,
					Category:   tt.category,
					Title:      "something",
					Date:       tt.date,
					Confidence: 0.9,
				},
			}
			p := newTestParser(primary)

			result, err := p.Parse(context.Background(), defaultRequest("paid 100"))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCategory, result.Category)
			assert.Equal(t, tt.wantDate, result.Date)
		})
	}
}

func TestParser_Parse_TitleDefaults(t *testing.T) {
	tests := []struct {
		name      string
		category  string
		wantTitle string
	}{
		{name: "matched category becomes title", category: "Groceries", wantTitle: "Groceries"},
		{name: "other falls back to placeholder", category: "nonsense text", wantTitle: model.DefaultTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &stubPrimary{
				extraction: llm.Extraction{
					Amount:     50,
					Category:   tt.category,
					Title:      "   ",
					Date:       "today",
					Confidence: 0.8,
				},
			}
			p := newTestParser(primary)

			result, err := p.Parse(context.Background(), defaultRequest("paid 50"))
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, result.Title)
		})
	}
}

func TestParser_Parse_LanguageHintDefault(t *testing.T) {
	primary := &stubPrimary{
		extraction: llm.Extraction{
			Amount:     75,
			Category:   "Food",
			Title:      "chai",
			Date:       "today",
			Confidence: 0.9,
		},
	}
	p := newTestParser(primary)

	req := defaultRequest("chai ke liye 75 diye")
	req.LanguageHint = "hi"
	result, err := p.Parse(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "hi", result.Language)
}

func TestParser_Parse_FallbackOnPrimaryError(t *testing.T) {
	primary := &stubPrimary{err: common.ErrBackendUnavailable}
	p := newTestParser(primary)

	result, err := p.Parse(context.Background(), defaultRequest("I spent 500 rupees on lunch"))
	require.NoError(t, err, "backend failure must degrade, not fail")

	assert.Equal(t, 500.0, result.Amount)
	assert.Equal(t, "Food", result.Category)
	assert.Equal(t, fallback.Confidence, result.Confidence)
	assert.Equal(t, fallback.Confidence, result.Accuracy)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), result.Date)
	assert.True(t, result.NeedsReview())
	assert.Equal(t, 1, primary.calls, "primary is attempted exactly once")
}

func TestParser_Parse_FallbackOnUndeterminedAmount(t *testing.T) {
	primary := &stubPrimary{
		extraction: llm.Extraction{
			Amount:     model.AmountUndetermined,
			Category:   "Food",
			Title:      "lunch",
			Date:       "today",
			Confidence: 0.9,
		},
	}
	p := newTestParser(primary)

	result, err := p.Parse(context.Background(), defaultRequest("bought groceries for ₹250"))
	require.NoError(t, err)

	assert.Equal(t, 250.0, result.Amount)
	assert.Equal(t, "Groceries", result.Category)
	assert.Equal(t, fallback.Confidence, result.Confidence)
}

func TestParser_Parse_FallbackWithoutAmount(t *testing.T) {
	primary := &stubPrimary{err: errors.New("timeout")}
	p := newTestParser(primary)

	result, err := p.Parse(context.Background(), defaultRequest("something happened"))
	require.NoError(t, err)

	assert.Equal(t, model.AmountUndetermined, result.Amount)
	assert.Equal(t, model.CategoryOther, result.Category)
	assert.True(t, result.NeedsReview())
}
