// Package store implements the local SQLite item cache. The cache is
// supporting infrastructure, not the source of truth: it is rewritten on
// every successful board reload and read back only when the network is
// unavailable, so the last known board can still be shown.
package store

import (
	"context"

	"trouvaille/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/item_cache_mock.go -package=mock

// ItemCache persists the merged board between runs. Items are stored in
// merged order so a stale read reproduces the exact board that was last
// rendered.
type ItemCache interface {
	// ReplaceAll atomically swaps the cached board for items, preserving
	// slice order.
	ReplaceAll(ctx context.Context, items []models.Item) error

	// GetAll returns the cached board in stored order. An empty cache
	// yields an empty slice, not an error.
	GetAll(ctx context.Context) ([]models.Item, error)
}
