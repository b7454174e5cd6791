package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("KHARCHA_TEST_DIR", "/var/data")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain path unchanged", in: "/tmp/kharcha.db", want: "/tmp/kharcha.db"},
		{name: "tilde prefix", in: "~/data/kharcha.db", want: filepath.Join(home, "data/kharcha.db")},
		{name: "bare tilde", in: "~", want: home},
		{name: "env var", in: "$KHARCHA_TEST_DIR/kharcha.db", want: "/var/data/kharcha.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestLoadLLMConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("llm.provider", "gemini")
	viper.Set("llm.model", "gemini-2.0-flash")
	viper.Set("llm.timeout", "20s")
	viper.Set("llm.rate_limit", 30)
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := LoadLLMConfig()
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, 20*time.Second, cfg.Timeout)
	assert.Equal(t, 30, cfg.RateLimit)
	assert.Equal(t, "env-key", cfg.APIKey, "falls back to provider env var")

	viper.Set("llm.api_key", "config-key")
	cfg = LoadLLMConfig()
	assert.Equal(t, "config-key", cfg.APIKey, "explicit config wins over env")
}

func TestDatabasePath_Default(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	assert.Contains(t, DatabasePath(), "kharcha.db")

	viper.Set("database.path", "/tmp/other.db")
	assert.Equal(t, "/tmp/other.db", DatabasePath())
}
