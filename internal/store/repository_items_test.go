package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trouvaille/internal/logger"
	"trouvaille/models"
)

func newTestRepo(t *testing.T) (ItemCache, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := &DB{DB: mockDB, logger: logger.Nop()}
	return NewItemCacheRepository(db, logger.Nop()), mock
}

func cacheItem(id string, itemType models.ItemType) models.Item {
	return models.Item{
		ID:              id,
		Type:            itemType,
		Description:     "Black wallet",
		Location:        "Library",
		Date:            "2024-03-01",
		Time:            "14:30",
		CreatedAt:       time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC),
		PossibleMatches: []string{"l-9"},
	}
}

func TestReplaceAll_ClearsThenInserts(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM items").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO items").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO items").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.ReplaceAll(context.Background(), []models.Item{
		cacheItem("f-1", models.TypeFound),
		cacheItem("l-9", models.TypeLost),
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAll_RollsBackOnInsertError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM items").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO items").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.ReplaceAll(context.Background(), []models.Item{cacheItem("f-1", models.TypeFound)})

	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func itemRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"item_type", "id", "description", "location", "event_date", "event_time",
		"content_info", "image_filename", "created_at", "fetch_order", "possible_matches",
	})
}

func TestGetAll_ReturnsStoredOrder(t *testing.T) {
	repo, mock := newTestRepo(t)

	created := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)
	rows := itemRows().
		AddRow("found", "f-1", "Black wallet", "Library", "2024-03-01", "14:30", "", "wallet.jpg", created, 0, `["l-9"]`).
		AddRow("lost", "l-9", "Red wallet", "Cafeteria", "2024-02-28", "09:00", "", "", created, 1, `[]`)

	mock.ExpectQuery("SELECT .+ FROM items ORDER BY fetch_order ASC").WillReturnRows(rows)

	items, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.TypeFound, items[0].Type)
	assert.Equal(t, []string{"l-9"}, items[0].PossibleMatches)
	assert.Equal(t, "l-9", items[1].ID)
	assert.Empty(t, items[1].PossibleMatches)
	require.NoError(t, mock.ExpectationsWereMet())
}
