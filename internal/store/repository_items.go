package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"trouvaille/internal/logger"
	"trouvaille/models"
)

type itemCacheRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewItemCacheRepository returns the SQLite-backed [ItemCache].
func NewItemCacheRepository(db *DB, logger *logger.Logger) ItemCache {
	return &itemCacheRepository{db: db, logger: logger}
}

const itemColumns = "item_type, id, description, location, event_date, event_time, content_info, image_filename, created_at, fetch_order, possible_matches"

func (r *itemCacheRepository) ReplaceAll(ctx context.Context, items []models.Item) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache replace tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "DELETE FROM items"); err != nil {
		return fmt.Errorf("clear item cache: %w", err)
	}

	for order, item := range items {
		matches, err := json.Marshal(item.PossibleMatches)
		if err != nil {
			return fmt.Errorf("encode possible matches for %s/%s: %w", item.Type, item.ID, err)
		}

		query, args, err := sq.Insert("items").
			Columns("item_type", "id", "description", "location", "event_date", "event_time",
				"content_info", "image_filename", "created_at", "fetch_order", "possible_matches").
			Values(string(item.Type), item.ID, item.Description, item.Location, item.Date, item.Time,
				item.ContentInfo, item.ImageFilename, item.CreatedAt, order, string(matches)).
			ToSql()
		if err != nil {
			return fmt.Errorf("build cache insert: %w", err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).
				Str("func", "itemCacheRepository.ReplaceAll").
				Str("item_type", string(item.Type)).
				Str("id", item.ID).
				Msg("failed to insert item into cache")
			return fmt.Errorf("insert cached item %s/%s: %w", item.Type, item.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit cache replace tx: %w", err)
	}
	return nil
}

func (r *itemCacheRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	query, args, err := sq.Select(itemColumns).
		From("items").
		OrderBy("fetch_order ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cache select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "itemCacheRepository.GetAll").
			Msg("failed to query item cache")
		return nil, fmt.Errorf("query item cache: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate item cache rows: %w", err)
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var (
		item       models.Item
		itemType   string
		createdAt  time.Time
		fetchOrder int
		matchesRaw string
	)

	err := row.Scan(
		&itemType,
		&item.ID,
		&item.Description,
		&item.Location,
		&item.Date,
		&item.Time,
		&item.ContentInfo,
		&item.ImageFilename,
		&createdAt,
		&fetchOrder,
		&matchesRaw,
	)
	if err != nil {
		return models.Item{}, fmt.Errorf("scan cached item row: %w", err)
	}

	item.Type = models.ItemType(itemType)
	item.CreatedAt = createdAt
	if err = json.Unmarshal([]byte(matchesRaw), &item.PossibleMatches); err != nil {
		return models.Item{}, fmt.Errorf("decode possible matches: %w", err)
	}

	return item, nil
}
