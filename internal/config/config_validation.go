package config

import "net/url"

// validate checks that the merged [StructuredConfig] satisfies all invariants
// before it is used at startup. Addresses are validated after defaults are
// applied, in [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if !isValidBaseURL(cfg.Adapter.Address) || !isValidBaseURL(cfg.Adapter.UploadsAddress) {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Session.Path == "" {
		return ErrInvalidSessionConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func isValidBaseURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
