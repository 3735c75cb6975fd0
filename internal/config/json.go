package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON configs can use human-readable values
// like "15s" or "5m".
type Duration time.Duration

// UnmarshalJSON accepts either a duration string or a bare number of
// nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch value := raw.(type) {
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		*d = Duration(parsed)
	case float64:
		*d = Duration(time.Duration(value))
	default:
		return fmt.Errorf("invalid duration value: %v", raw)
	}

	return nil
}

// StructuredJSONConfig mirrors [StructuredConfig] with json tags and
// [Duration] fields for file-based configuration.
type StructuredJSONConfig struct {
	API struct {
		Address        string   `json:"address"`
		UploadsAddress string   `json:"uploads_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"api,omitempty"`

	Session struct {
		Path       string `json:"path"`
		Passphrase string `json:"passphrase"`
	} `json:"session,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		API: API{
			Address:        jsonCfg.API.Address,
			UploadsAddress: jsonCfg.API.UploadsAddress,
			RequestTimeout: time.Duration(jsonCfg.API.RequestTimeout),
		},
		Session: Session{
			Path:       jsonCfg.Session.Path,
			Passphrase: jsonCfg.Session.Passphrase,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Workers: Workers{RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval)},
	}

	return cfg, nil
}
