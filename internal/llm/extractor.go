package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"kharcha/internal/common"
	"kharcha/internal/model"
)

// defaultTimeout bounds the single backend round trip. There is no retry:
// one failure is enough to hand the request to the fallback extractor, which
// favors availability over holding the caller.
const defaultTimeout = 15 * time.Second

// Extractor is the primary, model-backed extractor. It owns rate limiting,
// result caching and response validation around the raw provider client.
type Extractor struct {
	client  Client
	cache   *extractionCache
	limiter *rateLimiter
	logger  *slog.Logger
	timeout time.Duration
}

// NewExtractor creates a model-backed extractor for the configured provider.
func NewExtractor(cfg Config, logger *slog.Logger) (*Extractor, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Extractor{
		client:  client,
		cache:   newExtractionCache(cfg.CacheTTL),
		limiter: newRateLimiter(cfg.RateLimit),
		logger:  logger,
		timeout: timeout,
	}, nil
}

// NewExtractorWithClient wraps an existing client. Used in tests and by
// callers that construct providers themselves.
func NewExtractorWithClient(client Client, logger *slog.Logger) *Extractor {
	return &Extractor{
		client:  client,
		cache:   newExtractionCache(0),
		limiter: newRateLimiter(0),
		logger:  logger,
		timeout: defaultTimeout,
	}
}

// Extract runs one bounded extraction attempt and validates the result
// shape. Transport failures surface as common.ErrBackendUnavailable and
// shape violations as common.ErrMalformedResponse so the orchestrator can
// treat both uniformly as fallback triggers.
func (e *Extractor) Extract(ctx context.Context, req model.ParseRequest) (Extraction, error) {
	key := cacheKey(req.Text, req.LanguageHint, req.KnownCategories)
	if extraction, found := e.cache.get(key); found {
		e.logger.Debug("extraction cache hit", "text_len", len(req.Text))
		return extraction, nil
	}

	if err := e.limiter.wait(ctx); err != nil {
		return Extraction{}, fmt.Errorf("%w: %v", common.ErrBackendUnavailable, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.client.ExtractExpense(callCtx, buildPrompt(req))
	if err != nil {
		e.logger.Warn("primary extraction failed",
			"error", err,
			"timeout", errors.Is(callCtx.Err(), context.DeadlineExceeded))
		return Extraction{}, fmt.Errorf("%w: %v", common.ErrBackendUnavailable, err)
	}

	extraction, err := validateExtraction(raw)
	if err != nil {
		e.logger.Warn("primary extraction returned invalid shape", "error", err)
		return Extraction{}, err
	}

	e.cache.set(key, extraction)

	e.logger.Debug("primary extraction succeeded",
		"category", extraction.Category,
		"confidence", extraction.Confidence)

	return extraction, nil
}

// Close releases background resources.
func (e *Extractor) Close() error {
	if e.cache != nil {
		e.cache.Close()
	}
	return nil
}
