package config

import (
	"fmt"
	"time"
)

// Defaults match the endpoints the board service ships with.
const (
	defaultAPIAddress     = "http://localhost:8000/api"
	defaultUploadsAddress = "http://localhost:8000/uploads"
	defaultRequestTimeout = 15 * time.Second
	defaultSessionPath    = "trouvaille-session.json"
	defaultCacheDSN       = "trouvaille-cache.db"
)

// ClientAdapter holds network settings used by the transport layer.
type ClientAdapter struct {
	// Address is the base URL of the board REST API.
	Address string
	// UploadsAddress is the base URL serving stored item images.
	UploadsAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientSession holds credential store settings.
type ClientSession struct {
	// Path is the credential file location.
	Path string
	// Passphrase selects and keys the encrypted store when non-empty.
	Passphrase string
}

// ClientDB contains local cache database settings.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups local storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the background refresh job re-fetches
	// the board. Zero disables the job.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains transport addresses and timeouts.
	Adapter ClientAdapter
	// Session contains credential store settings.
	Session ClientSession
	// Storage contains local cache settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration: it loads the
// merged structured config via [GetStructuredConfig], fills unset fields with
// defaults, and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			Address:        cfg.API.Address,
			UploadsAddress: cfg.API.UploadsAddress,
			RequestTimeout: cfg.API.RequestTimeout,
		},
		Session: ClientSession{
			Path:       cfg.Session.Path,
			Passphrase: cfg.Session.Passphrase,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.Address == "" {
		cfg.Adapter.Address = defaultAPIAddress
	}
	if cfg.Adapter.UploadsAddress == "" {
		cfg.Adapter.UploadsAddress = defaultUploadsAddress
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Session.Path == "" {
		cfg.Session.Path = defaultSessionPath
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultCacheDSN
	}
}
