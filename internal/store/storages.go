package store

import (
	"context"
	"fmt"

	"trouvaille/internal/config"
	"trouvaille/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// ItemCache is the SQLite-backed cache of the last fetched board.
	ItemCache ItemCache
}

// NewClientStorages initialises the client storage layer: it opens the
// SQLite cache file named in cfg, runs pending schema migrations, and wires
// a fresh [ItemCache] repository.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		ItemCache: NewItemCacheRepository(db, logger),
	}, nil
}
