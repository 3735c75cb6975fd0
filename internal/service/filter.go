package service

import (
	"sort"
	"strings"

	"trouvaille/models"
)

// FilterState is the complete set of active board filters. The zero value
// means "show everything". Filters compose with AND: an item is visible only
// if it passes every non-empty criterion.
type FilterState struct {
	// Type restricts the board to one collection. Empty shows both.
	Type models.ItemType
	// Search is matched case-insensitively against description and location.
	Search string
	// Date must equal the item's event date exactly (YYYY-MM-DD).
	Date string
}

// Empty reports whether no filter is active.
func (s FilterState) Empty() bool {
	return s.Type == "" && s.Search == "" && s.Date == ""
}

// Outcome tells the rendering layer why a visible list is empty, so it can
// distinguish a board with no reports from one where the filters excluded
// everything.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeBoardEmpty
	OutcomeNoMatches
)

// Merge combines the found and lost collections into the single board list:
// found first, then lost, each in server order, stable-sorted by creation
// time descending. The stable sort is the documented tie-break: items
// created at the same instant keep their fetch order.
func Merge(found, lost []models.Item) []models.Item {
	merged := make([]models.Item, 0, len(found)+len(lost))
	merged = append(merged, found...)
	merged = append(merged, lost...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	return merged
}

// Apply returns the items passing every active filter in state, preserving
// input order. Applying the same state twice returns the same list.
func Apply(items []models.Item, state FilterState) []models.Item {
	if state.Empty() {
		return items
	}

	visible := make([]models.Item, 0, len(items))
	for _, item := range items {
		if matchesFilter(item, state) {
			visible = append(visible, item)
		}
	}
	return visible
}

func matchesFilter(item models.Item, state FilterState) bool {
	if state.Type != "" && item.Type != state.Type {
		return false
	}

	if state.Search != "" {
		term := strings.ToLower(state.Search)
		if !strings.Contains(strings.ToLower(item.Description), term) &&
			!strings.Contains(strings.ToLower(item.Location), term) {
			return false
		}
	}

	if state.Date != "" && item.Date != state.Date {
		return false
	}

	return true
}
