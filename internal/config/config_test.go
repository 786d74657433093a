package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.ListenAddr)
	assert.Equal(t, "storders.db", cfg.DatabasePath)
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 100, cfg.MaxListLimit)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORDERS_LISTEN_ADDR", ":9090")
	t.Setenv("STORDERS_DB_PATH", "/tmp/test.db")
	t.Setenv("STORDERS_LOG_LEVEL", "debug")
	t.Setenv("STORDERS_MAX_LIST_LIMIT", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/test.db", cfg.DatabasePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 25, cfg.MaxListLimit)
}
