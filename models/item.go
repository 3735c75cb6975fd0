package models

import "time"

// ItemType discriminates the two report variants on the board.
type ItemType string

const (
	TypeFound ItemType = "found"
	TypeLost  ItemType = "lost"
)

// Valid reports whether t is one of the two known variants.
func (t ItemType) Valid() bool {
	return t == TypeFound || t == TypeLost
}

// Opposite returns the other variant. Matches are always cross-variant:
// a found item can only match lost items and vice versa.
func (t ItemType) Opposite() ItemType {
	if t == TypeFound {
		return TypeLost
	}
	return TypeFound
}

// Item is a single found or lost report in the merged board view. The wire
// format names the event date and time per variant (found_date/lost_date,
// found_time/lost_time); the adapter folds both into Date and Time so the
// rest of the client never branches on the variant for them.
type Item struct {
	// ID is the server-assigned identifier. Found ids and lost ids are
	// independent namespaces, so lookups are always keyed by (Type, ID).
	ID   string
	Type ItemType

	Description string
	Location    string

	// Date is the calendar date the item was found or lost, "2006-01-02".
	Date string
	// Time is the time of day, "15:04".
	Time string

	// ContentInfo is optional free-text supplementary information.
	ContentInfo string

	// ImageFilename references the stored photo of a found item; lost items
	// never carry one.
	ImageFilename string

	// CreatedAt is when the report was filed. Used only for board ordering.
	CreatedAt time.Time

	// PossibleMatches holds ids of opposite-variant items the server matched
	// against this one. Ids may dangle; resolution drops unknown ids.
	PossibleMatches []string
}

// Key identifies an item within the board index.
type Key struct {
	Type ItemType
	ID   string
}

// Key returns the index key of the item.
func (i Item) Key() Key {
	return Key{Type: i.Type, ID: i.ID}
}

// HasMatches reports whether the server proposed any cross-variant matches.
func (i Item) HasMatches() bool {
	return len(i.PossibleMatches) > 0
}

// ItemDraft carries user input for creating or updating a report. ImagePath
// points at a local file to upload; it is required when creating a found
// item and ignored entirely for lost items.
type ItemDraft struct {
	Description string
	Location    string
	Date        string
	Time        string
	ContentInfo string
	ImagePath   string
}
