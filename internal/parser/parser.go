// Package parser implements the extraction orchestrator: it runs the
// model-backed primary extractor, validates and normalizes its output, and
// degrades to the deterministic fallback extractor on any failure. A caller
// always gets a ParsedExpense back; low confidence, not errors, is how poor
// extractions are signaled.
package parser

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"kharcha/internal/common"
	"kharcha/internal/dates"
	"kharcha/internal/fallback"
	"kharcha/internal/llm"
	"kharcha/internal/match"
	"kharcha/internal/model"
)

// PrimaryExtractor is the model-backed first-pass extractor boundary.
type PrimaryExtractor interface {
	Extract(ctx context.Context, req model.ParseRequest) (llm.Extraction, error)
}

// Parser orchestrates one parse per call. It is stateless across requests
// and safe for concurrent use.
type Parser struct {
	primary  PrimaryExtractor
	fallback *fallback.Extractor
	matcher  *match.Matcher
	resolver *dates.Resolver
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a parser around the given primary extractor.
func New(primary PrimaryExtractor, logger *slog.Logger) *Parser {
	return &Parser{
		primary:  primary,
		fallback: fallback.NewExtractor(),
		matcher:  match.NewMatcher(),
		resolver: dates.NewResolver(),
		logger:   logger,
		now:      time.Now,
	}
}

// Parse converts free-form text into a structured expense. The only loud
// failure is empty input text, a contract violation by the caller; every
// backend or extraction problem is recovered via the fallback path.
func (p *Parser) Parse(ctx context.Context, req model.ParseRequest) (model.ParsedExpense, error) {
	if strings.TrimSpace(req.Text) == "" {
		return model.ParsedExpense{}, common.ErrEmptyText
	}

	extraction, err := p.primary.Extract(ctx, req)
	if err != nil {
		p.logger.Warn("primary extractor failed, using fallback", "error", err)
		return p.fallback.Extract(req), nil
	}

	if extraction.Amount < 0 {
		// The model could not determine an amount; the fallback gets a
		// chance to find one deterministically.
		p.logger.Info("primary extractor returned undetermined amount, using fallback")
		return p.fallback.Extract(req), nil
	}

	return p.normalize(req, extraction), nil
}

// normalize turns a validated extraction candidate into the final result:
// the free-text category label becomes a known category (or "Other") and
// the relative date keyword becomes a concrete calendar date.
func (p *Parser) normalize(req model.ParseRequest, extraction llm.Extraction) model.ParsedExpense {
	category := p.matcher.Match(extraction.Category, req.KnownCategories)

	title := strings.TrimSpace(extraction.Title)
	if title == "" {
		title = category
		if title == model.CategoryOther {
			title = model.DefaultTitle
		}
	}

	language := extraction.Language
	if language == "" {
		language = req.LanguageHint
	}

	result := model.ParsedExpense{
		Amount:          extraction.Amount,
		Category:        category,
		Title:           title,
		Date:            p.resolver.Resolve(extraction.Date),
		Confidence:      extraction.Confidence,
		Accuracy:        extraction.Confidence,
		Language:        language,
		CulturalContext: extraction.CulturalContext,
		OriginalText:    req.Text,
		ParsedAt:        p.now(),
	}

	p.logger.Info("expense parsed",
		"category", result.Category,
		"amount", result.Amount,
		"date", result.Date.Format("2006-01-02"),
		"confidence", result.Confidence)

	return result
}
