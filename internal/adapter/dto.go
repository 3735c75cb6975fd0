package adapter

import (
	"time"

	"trouvaille/models"
)

// Wire shapes of the two report variants. The event date/time fields are
// named per variant on the wire; conversion folds them into the unified
// models.Item.

type foundItemDTO struct {
	ID              string   `json:"id"`
	Description     string   `json:"description"`
	FoundDate       string   `json:"found_date"`
	FoundTime       string   `json:"found_time"`
	Location        string   `json:"location"`
	ContentInfo     string   `json:"content_info"`
	ImageFilename   string   `json:"image_filename"`
	CreatedAt       string   `json:"created_at"`
	PossibleMatches []string `json:"possible_matches"`
}

type lostItemDTO struct {
	ID              string   `json:"id"`
	Description     string   `json:"description"`
	LostDate        string   `json:"lost_date"`
	LostTime        string   `json:"lost_time"`
	Location        string   `json:"location"`
	ContentInfo     string   `json:"content_info"`
	CreatedAt       string   `json:"created_at"`
	PossibleMatches []string `json:"possible_matches"`
}

func (d foundItemDTO) toItem() models.Item {
	return models.Item{
		ID:              d.ID,
		Type:            models.TypeFound,
		Description:     d.Description,
		Location:        d.Location,
		Date:            normalizeDate(d.FoundDate),
		Time:            d.FoundTime,
		ContentInfo:     d.ContentInfo,
		ImageFilename:   d.ImageFilename,
		CreatedAt:       parseCreatedAt(d.CreatedAt),
		PossibleMatches: d.PossibleMatches,
	}
}

func (d lostItemDTO) toItem() models.Item {
	return models.Item{
		ID:              d.ID,
		Type:            models.TypeLost,
		Description:     d.Description,
		Location:        d.Location,
		Date:            normalizeDate(d.LostDate),
		Time:            d.LostTime,
		ContentInfo:     d.ContentInfo,
		CreatedAt:       parseCreatedAt(d.CreatedAt),
		PossibleMatches: d.PossibleMatches,
	}
}

// normalizeDate trims a datetime string down to its calendar-date prefix.
// The server stores dates as plain "2006-01-02" strings but has historically
// also emitted full datetimes for the same field.
func normalizeDate(raw string) string {
	if len(raw) > 10 && raw[10] == 'T' {
		return raw[:10]
	}
	return raw
}

var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// parseCreatedAt accepts the timestamp layouts the server is known to emit.
// An unparseable value yields the zero time, which simply sorts last; the
// board tolerates it rather than failing the whole list.
func parseCreatedAt(raw string) time.Time {
	for _, layout := range createdAtLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// multipartFields flattens a draft into the form fields the server expects
// for the given variant. The image file part is attached separately.
func multipartFields(itemType models.ItemType, draft models.ItemDraft) map[string]string {
	fields := map[string]string{
		"description":  draft.Description,
		"location":     draft.Location,
		"content_info": draft.ContentInfo,
	}
	if itemType == models.TypeFound {
		fields["found_date"] = draft.Date
		fields["found_time"] = draft.Time
	} else {
		fields["lost_date"] = draft.Date
		fields["lost_time"] = draft.Time
	}
	return fields
}
