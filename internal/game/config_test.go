package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg, err := DefaultConfig()
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
	assert.Zero(t, cfg.Seed)
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "SNAKE_ROWS=10\nSNAKE_COLS=12\nSNAKE_LENGTH=3\nSNAKE_APPLES=2\nSNAKE_TIMER_MIN_MS=25\nSNAKE_SEED=99\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Rows)
	assert.Equal(t, 12, cfg.Cols)
	assert.Equal(t, 3, cfg.SnakeLength)
	assert.Equal(t, 2, cfg.Apples)
	assert.Equal(t, 25*time.Millisecond, cfg.Timer.Min)
	assert.Equal(t, int64(99), cfg.Seed)
}

func TestLoadConfigEnvironmentWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SNAKE_ROWS=10\n"), 0o600))
	t.Setenv("SNAKE_ROWS", "16")
	t.Setenv("SNAKE_TIMER_START_MS", "300")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Rows)
	assert.Equal(t, 300*time.Millisecond, cfg.Timer.Start)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoadConfigBadNumber(t *testing.T) {
	t.Setenv("SNAKE_COLS", "wide")

	_, err := LoadConfig("")
	assert.ErrorContains(t, err, "SNAKE_COLS")
}

func TestConfigValidate(t *testing.T) {
	base, err := DefaultConfig()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty board", func(c *Config) { c.Rows = 0 }},
		{"zero length", func(c *Config) { c.SnakeLength = 0 }},
		{"snake too long", func(c *Config) { c.Rows, c.SnakeLength = 6, 4 }},
		{"negative apples", func(c *Config) { c.Apples = -1 }},
		{"no room for apples", func(c *Config) { c.Rows, c.Cols, c.SnakeLength, c.Apples = 2, 2, 1, 3 }},
		{"zero start", func(c *Config) { c.Timer.Start = 0 }},
		{"negative step", func(c *Config) { c.Timer.Step = -time.Millisecond }},
		{"zero every", func(c *Config) { c.Timer.Every = 0 }},
		{"zero minimum", func(c *Config) { c.Timer.Min = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
