// Package config assembles the trouvaille configuration from layered
// sources: an optional .env file, environment variables, command-line flags,
// and an optional JSON file, merged in that priority order.
//
// [GetClientConfig] is the entry point used by the application; it returns a
// validated [ClientConfig] view with defaults applied.
package config
