package tui

import "trouvaille/models"

type typeSelectModel struct {
	items []string
	idx   int
}

func newTypeSelectModel() typeSelectModel {
	return typeSelectModel{items: []string{"I found something", "I lost something"}}
}

func (m typeSelectModel) chosen() models.ItemType {
	if m.idx == 0 {
		return models.TypeFound
	}
	return models.TypeLost
}

func (m typeSelectModel) View() string {
	out := titleStyle.Render("New report") + "\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	out += "\n" + helpStyle.Render("enter choose  esc cancel")
	return out
}
