package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFrom merges pre-built configs without touching env or flags, so the
// precedence rule can be tested in isolation.
func buildFrom(t *testing.T, configs ...*StructuredConfig) *StructuredConfig {
	t.Helper()
	b := newConfigBuilder()
	b.configs = append(b.configs, configs...)

	cfg, err := b.build()
	require.NoError(t, err)
	return cfg
}

func TestBuild_FirstSourceWins(t *testing.T) {
	envLayer := &StructuredConfig{
		API: API{Address: "http://from-env/api"},
	}
	flagLayer := &StructuredConfig{
		API: API{
			Address:        "http://from-flags/api",
			RequestTimeout: 30 * time.Second,
		},
	}

	cfg := buildFrom(t, envLayer, flagLayer)

	assert.Equal(t, "http://from-env/api", cfg.API.Address)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
}

func TestBuild_LaterLayersFillGaps(t *testing.T) {
	envLayer := &StructuredConfig{}
	jsonLayer := &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "from-json.db"}},
		Workers: Workers{RefreshInterval: time.Minute},
	}

	cfg := buildFrom(t, envLayer, jsonLayer)

	assert.Equal(t, "from-json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
}

func TestClientConfig_DefaultsAndValidation(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	require.NoError(t, cfg.validate())
	assert.Equal(t, defaultAPIAddress, cfg.Adapter.Address)
	assert.Equal(t, defaultUploadsAddress, cfg.Adapter.UploadsAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, defaultSessionPath, cfg.Session.Path)
	assert.Equal(t, defaultCacheDSN, cfg.Storage.DB.DSN)
}

func TestClientConfig_RejectsBadAddress(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()
	cfg.Adapter.Address = "not a url"

	err := cfg.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}
