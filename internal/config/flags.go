package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a API base URL
//	-uploads uploads base URL for item images
//	-request-timeout outbound request timeout (e.g., "15s")
//	-d local cache SQLite path
//	-session-path credential file path
//	-session-passphrase passphrase enabling the encrypted credential store
//	-refresh-interval background board refresh period (0 disables)
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var apiAddress string
	var uploadsAddress string
	var requestTimeout time.Duration
	var cacheDSN string
	var sessionPath string
	var sessionPassphrase string
	var refreshInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&apiAddress, "a", "", "Board API base URL")
	flag.StringVar(&uploadsAddress, "uploads", "", "Uploads base URL for item images")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.StringVar(&cacheDSN, "d", "", "Local cache SQLite path")
	flag.StringVar(&sessionPath, "session-path", "", "Credential file path")
	flag.StringVar(&sessionPassphrase, "session-passphrase", "", "Passphrase for the encrypted credential store")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh period (0 disables)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		API: API{
			Address:        apiAddress,
			UploadsAddress: uploadsAddress,
			RequestTimeout: requestTimeout,
		},
		Session: Session{
			Path:       sessionPath,
			Passphrase: sessionPassphrase,
		},
		Storage: Storage{
			DB: DB{DSN: cacheDSN},
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		JSONFilePath: jsonConfigPath,
	}
}
