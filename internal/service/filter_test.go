package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trouvaille/models"
)

func boardItem(id string, itemType models.ItemType, description, location, date string, createdAt time.Time) models.Item {
	return models.Item{
		ID:          id,
		Type:        itemType,
		Description: description,
		Location:    location,
		Date:        date,
		Time:        "12:00",
		CreatedAt:   createdAt,
	}
}

// ── Merge ────────────────────────────────────────────────────────────────────

func TestMerge_SortsByCreatedAtDescending(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	found := []models.Item{
		boardItem("f-old", models.TypeFound, "Black wallet", "Library", "2024-02-20", base.Add(-48*time.Hour)),
		boardItem("f-new", models.TypeFound, "Keys", "Hall", "2024-03-01", base),
	}
	lost := []models.Item{
		boardItem("l-mid", models.TypeLost, "Red scarf", "Cafeteria", "2024-02-25", base.Add(-24*time.Hour)),
	}

	merged := Merge(found, lost)

	require.Len(t, merged, 3)
	assert.Equal(t, "f-new", merged[0].ID)
	assert.Equal(t, "l-mid", merged[1].ID)
	assert.Equal(t, "f-old", merged[2].ID)
}

func TestMerge_TiesKeepFetchOrder(t *testing.T) {
	same := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	found := []models.Item{
		boardItem("f-1", models.TypeFound, "Wallet", "Library", "2024-03-01", same),
		boardItem("f-2", models.TypeFound, "Keys", "Hall", "2024-03-01", same),
	}
	lost := []models.Item{
		boardItem("l-1", models.TypeLost, "Scarf", "Cafeteria", "2024-03-01", same),
	}

	merged := Merge(found, lost)

	// Identical timestamps: found before lost, each in server order.
	require.Len(t, merged, 3)
	assert.Equal(t, []string{"f-1", "f-2", "l-1"}, []string{merged[0].ID, merged[1].ID, merged[2].ID})
}

func TestMerge_EmptyInputs(t *testing.T) {
	assert.Empty(t, Merge(nil, nil))
}

// ── Apply ────────────────────────────────────────────────────────────────────

func testBoard() []models.Item {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []models.Item{
		boardItem("f-1", models.TypeFound, "Black wallet", "Library", "2024-03-01", base),
		boardItem("l-1", models.TypeLost, "Red wallet", "Cafeteria", "2024-02-28", base.Add(-time.Hour)),
		boardItem("f-2", models.TypeFound, "Umbrella", "Main hall", "2024-02-28", base.Add(-2*time.Hour)),
	}
}

func TestApply_EmptyStateReturnsEverything(t *testing.T) {
	items := testBoard()
	assert.Equal(t, items, Apply(items, FilterState{}))
}

func TestApply_TypeFilter(t *testing.T) {
	visible := Apply(testBoard(), FilterState{Type: models.TypeLost})

	require.Len(t, visible, 1)
	assert.Equal(t, "l-1", visible[0].ID)
}

func TestApply_SearchIsCaseInsensitiveOverDescriptionAndLocation(t *testing.T) {
	byDescription := Apply(testBoard(), FilterState{Search: "WALLET"})
	require.Len(t, byDescription, 2)

	byLocation := Apply(testBoard(), FilterState{Search: "library"})
	require.Len(t, byLocation, 1)
	assert.Equal(t, "f-1", byLocation[0].ID)
}

func TestApply_DateMustMatchExactly(t *testing.T) {
	visible := Apply(testBoard(), FilterState{Date: "2024-02-28"})

	require.Len(t, visible, 2)
	assert.Equal(t, "l-1", visible[0].ID)
	assert.Equal(t, "f-2", visible[1].ID)
}

func TestApply_FiltersComposeWithAnd(t *testing.T) {
	// Type and search together: only the found wallet passes.
	visible := Apply(testBoard(), FilterState{Type: models.TypeFound, Search: "wallet"})

	require.Len(t, visible, 1)
	assert.Equal(t, "Black wallet", visible[0].Description)
}

func TestApply_Idempotent(t *testing.T) {
	state := FilterState{Type: models.TypeFound, Search: "wallet"}

	once := Apply(testBoard(), state)
	twice := Apply(once, state)

	assert.Equal(t, once, twice)
}

func TestApply_NoMatchesReturnsEmpty(t *testing.T) {
	visible := Apply(testBoard(), FilterState{Search: "no such thing"})
	assert.Empty(t, visible)
}

func TestFilterState_Empty(t *testing.T) {
	assert.True(t, FilterState{}.Empty())
	assert.False(t, FilterState{Search: "x"}.Empty())
	assert.False(t, FilterState{Type: models.TypeFound}.Empty())
	assert.False(t, FilterState{Date: "2024-03-01"}.Empty())
}
