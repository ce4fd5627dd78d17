package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeTempConfig(t, `
api_key: k-from-file
api_secret: s-from-file
testnet: true
recv_window: 9000
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "k-from-file", cfg.APIKey)
	assert.Equal(t, "s-from-file", cfg.APISecret)
	assert.True(t, cfg.Testnet)
	assert.Equal(t, 9000, cfg.RecvWindow)
	assert.Equal(t, 15, cfg.TimeoutSec, "default applies when file omits it")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeTempConfig(t, `
api_key: k-from-file
api_secret: s-from-file
`)
	t.Setenv("BINANCE_API_KEY", "k-from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "k-from-env", cfg.APIKey)
	assert.Equal(t, "s-from-file", cfg.APISecret)
}

func TestLoadMissingCredentials(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BINANCE_API_KEY")
}

func TestLoadEnvOnly(t *testing.T) {
	t.Setenv("BINANCE_API_KEY", "k")
	t.Setenv("BINANCE_API_SECRET", "s")
	t.Setenv("BINANCE_RECV_WINDOW", "7000")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.RecvWindow)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadBadFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
