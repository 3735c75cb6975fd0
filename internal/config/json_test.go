package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_Full(t *testing.T) {
	path := writeJSONConfig(t, `{
		"api": {
			"address": "http://board.example/api",
			"uploads_address": "http://board.example/uploads",
			"request_timeout": "30s"
		},
		"session": {"path": "creds.json", "passphrase": "secret"},
		"storage": {"db": {"dsn": "cache.db"}},
		"workers": {"refresh_interval": "2m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "http://board.example/api", cfg.API.Address)
	assert.Equal(t, "http://board.example/uploads", cfg.API.UploadsAddress)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "creds.json", cfg.Session.Path)
	assert.Equal(t, "secret", cfg.Session.Passphrase)
	assert.Equal(t, "cache.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeJSONConfig(t, `{"api": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.API.RequestTimeout)
}

func TestParseJSON_BadDuration(t *testing.T) {
	path := writeJSONConfig(t, `{"api": {"request_timeout": "soon"}}`)

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
