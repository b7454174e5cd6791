// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"kharcha/internal/llm"
)

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DatabasePath returns the configured SQLite path, defaulting to the
// standard data directory.
func DatabasePath() string {
	path := viper.GetString("database.path")
	if path == "" {
		path = "~/.local/share/kharcha/kharcha.db"
	}
	return ExpandPath(path)
}

// ServerAddr returns the HTTP listen address.
func ServerAddr() string {
	if addr := viper.GetString("server.addr"); addr != "" {
		return addr
	}
	return ":8080"
}

// LoadLLMConfig loads the model backend configuration. Precedence:
// 1. Viper configuration (config file or KHARCHA_ env vars)
// 2. Provider-specific environment variables (GEMINI_API_KEY, OPENAI_API_KEY)
// 3. Defaults chosen by the llm package
func LoadLLMConfig() llm.Config {
	cfg := llm.Config{
		Provider:  viper.GetString("llm.provider"),
		APIKey:    viper.GetString("llm.api_key"),
		Model:     viper.GetString("llm.model"),
		BaseURL:   viper.GetString("llm.base_url"),
		RateLimit: viper.GetInt("llm.rate_limit"),
	}

	if v := viper.GetString("llm.timeout"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := viper.GetString("llm.cache_ttl"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.CacheTTL = d
		}
	}

	if cfg.APIKey == "" {
		switch cfg.Provider {
		case "openai":
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		default:
			cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		}
	}

	return cfg
}
