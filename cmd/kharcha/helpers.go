package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"kharcha/internal/common"
	"kharcha/internal/config"
	"kharcha/internal/llm"
	"kharcha/internal/parser"
	"kharcha/internal/storage"
)

// initStorage opens the SQLite store and runs pending migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initParser builds the full parsing pipeline around the configured model
// backend. The returned extractor must be closed after use.
func initParser() (*parser.Parser, *llm.Extractor, error) {
	extractor, err := llm.NewExtractor(config.LoadLLMConfig(), slog.Default())
	if errors.Is(err, common.ErrMissingConfig) {
		return nil, nil, common.NewUserError(
			"no API key configured; set GEMINI_API_KEY (or OPENAI_API_KEY) or llm.api_key in the config file", err)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize model backend: %w", err)
	}

	return parser.New(extractor, slog.Default()), extractor, nil
}
