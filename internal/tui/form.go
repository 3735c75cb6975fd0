package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"trouvaille/models"
)

// itemFormModel is the one form used for found reports, lost reports and
// edits: the field set is identical apart from the image path, which only
// found items carry.
type itemFormModel struct {
	inputs     []textinput.Model
	focus      int
	itemType   models.ItemType
	editing    bool
	key        models.Key
	submitting bool
}

const (
	fieldDescription = iota
	fieldLocation
	fieldDate
	fieldTime
	fieldContentInfo
	fieldImagePath
)

func newItemFormModel(itemType models.ItemType, item *models.Item) itemFormModel {
	count := fieldContentInfo + 1
	if itemType == models.TypeFound {
		count = fieldImagePath + 1
	}

	inputs := make([]textinput.Model, count)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[fieldDate].Placeholder = "YYYY-MM-DD"
	inputs[fieldTime].Placeholder = "HH:MM"
	inputs[fieldDescription].Focus()

	m := itemFormModel{inputs: inputs, itemType: itemType}
	if item == nil {
		return m
	}

	m.editing = true
	m.key = item.Key()
	m.inputs[fieldDescription].SetValue(item.Description)
	m.inputs[fieldLocation].SetValue(item.Location)
	m.inputs[fieldDate].SetValue(item.Date)
	m.inputs[fieldTime].SetValue(item.Time)
	m.inputs[fieldContentInfo].SetValue(item.ContentInfo)
	// Image path stays blank on edit: blank keeps the stored photo.
	return m
}

func (m itemFormModel) toDraft() models.ItemDraft {
	draft := models.ItemDraft{
		Description: m.inputs[fieldDescription].Value(),
		Location:    m.inputs[fieldLocation].Value(),
		Date:        m.inputs[fieldDate].Value(),
		Time:        m.inputs[fieldTime].Value(),
		ContentInfo: m.inputs[fieldContentInfo].Value(),
	}
	if m.itemType == models.TypeFound {
		draft.ImagePath = m.inputs[fieldImagePath].Value()
	}
	return draft
}

func (m itemFormModel) View() string {
	title := "Report a " + typeFilterLabel(m.itemType) + " item"
	if m.editing {
		title = "Edit: " + m.inputs[fieldDescription].Value()
	}

	out := titleStyle.Render(title) + "\n\n"
	out += "Description: [" + m.inputs[fieldDescription].View() + "]\n"
	out += "Location:    [" + m.inputs[fieldLocation].View() + "]\n"
	out += "Date:        [" + m.inputs[fieldDate].View() + "]\n"
	out += "Time:        [" + m.inputs[fieldTime].View() + "]\n"
	out += "Details:     [" + m.inputs[fieldContentInfo].View() + "]\n"
	if m.itemType == models.TypeFound {
		label := "Photo file:  ["
		if m.editing {
			label = "New photo:   ["
		}
		out += label + m.inputs[fieldImagePath].View() + "]\n"
	}

	out += "\n" + helpStyle.Render("esc cancel  tab next field  enter save")
	if m.submitting {
		out += "\n" + helpStyle.Render("Saving...")
	}
	return out
}
