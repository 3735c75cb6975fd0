package tui

import (
	"fmt"

	"trouvaille/models"
)

type detailModel struct {
	item     models.Item
	matches  []models.Item
	imageURL string
	matchIdx int
	status   string
}

func typeName(t models.ItemType) string {
	switch t {
	case models.TypeFound:
		return "Found item"
	case models.TypeLost:
		return "Lost item"
	default:
		return "Item"
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func (m detailModel) View(admin bool) string {
	out := titleStyle.Render(fmt.Sprintf("%s  [%s]", m.item.Description, typeName(m.item.Type))) + "\n\n"

	out += fmt.Sprintf("Location:  %s\n", m.item.Location)
	out += fmt.Sprintf("Date:      %s at %s\n", m.item.Date, m.item.Time)
	out += fmt.Sprintf("Details:   %s\n", orDash(m.item.ContentInfo))
	if m.item.Type == models.TypeFound {
		out += fmt.Sprintf("Photo:     %s\n", orDash(m.imageURL))
	}
	out += fmt.Sprintf("Reported:  %s\n", m.item.CreatedAt.Format("2006-01-02 15:04"))

	if len(m.matches) > 0 {
		out += "\n" + titleStyle.Render("Possible matches") + "\n"
		for i, match := range m.matches {
			cursor := "  "
			if i == m.matchIdx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s %s — %s, %s\n", cursor, typeBadge(match.Type), match.Description, match.Location, match.Date)
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	help := "c copy id  esc back"
	if m.item.Type == models.TypeFound {
		help = "c copy id  u copy photo url  esc back"
	}
	if len(m.matches) > 0 {
		help = "enter open match  " + help
	}
	if admin {
		help = "e edit  d delete  " + help
	}
	out += "\n" + helpStyle.Render(help)
	return out
}
