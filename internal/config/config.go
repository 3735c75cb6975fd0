package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for trouvaille.
// It is populated by merging values from an optional .env file, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the addresses and timeout for the remote board service.
	API API `envPrefix:"API_"`

	// Session holds settings for the on-disk credential store.
	Session Session `envPrefix:"SESSION_"`

	// Storage holds settings for the local item cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged under the values already
	// loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds network settings for the board REST service.
type API struct {
	// Address is the base URL of the REST API (e.g. "http://localhost:8000/api").
	// Env: API_ADDRESS
	Address string `env:"ADDRESS"`

	// UploadsAddress is the base URL that serves stored item images
	// (e.g. "http://localhost:8000/uploads").
	// Env: API_UPLOADS_ADDRESS
	UploadsAddress string `env:"UPLOADS_ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds settings for the durable credential store.
type Session struct {
	// Path is where the credential file lives.
	// Env: SESSION_PATH
	Path string `env:"PATH"`

	// Passphrase, when non-empty, switches the credential store to the
	// encrypted-at-rest implementation keyed by this value. Empty keeps the
	// plain JSON file store.
	// Env: SESSION_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the local cache database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite item cache.
type DB struct {
	// DSN is the SQLite file path of the local cache.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval defines how often the board is re-fetched in the
	// background. Zero disables the refresh job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables (after an optional .env load)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
