package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"trouvaille/internal/service"
	"trouvaille/models"
)

type filterEntry int

const (
	entryNone filterEntry = iota
	entrySearch
	entryDate
)

type boardModel struct {
	visible []models.Item
	outcome service.Outcome
	state   service.FilterState
	idx     int
	loading bool
	stale   bool
	status  string
	spinner spinner.Model

	entry filterEntry
	input textinput.Model
}

func newBoardModel() boardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	in := textinput.New()
	in.Width = 40

	return boardModel{spinner: s, input: in, loading: true}
}

func (m boardModel) current() (models.Item, bool) {
	if len(m.visible) == 0 || m.idx < 0 || m.idx >= len(m.visible) {
		return models.Item{}, false
	}
	return m.visible[m.idx], true
}

func typeBadge(t models.ItemType) string {
	switch t {
	case models.TypeFound:
		return badgeFoundStyle.Render("[FOUND]")
	case models.TypeLost:
		return badgeLostStyle.Render("[LOST] ")
	default:
		return "[?]    "
	}
}

func typeFilterLabel(t models.ItemType) string {
	switch t {
	case models.TypeFound:
		return "found"
	case models.TypeLost:
		return "lost"
	default:
		return "all"
	}
}

// nextTypeFilter cycles all -> found -> lost -> all.
func nextTypeFilter(t models.ItemType) models.ItemType {
	switch t {
	case "":
		return models.TypeFound
	case models.TypeFound:
		return models.TypeLost
	default:
		return ""
	}
}

func (m boardModel) filterBar() string {
	bar := "type: " + typeFilterLabel(m.state.Type)
	if m.state.Search != "" {
		bar += "  search: " + m.state.Search
	}
	if m.state.Date != "" {
		bar += "  date: " + m.state.Date
	}

	switch m.entry {
	case entrySearch:
		bar += "\nsearch> " + m.input.View()
	case entryDate:
		bar += "\ndate (YYYY-MM-DD)> " + m.input.View()
	}
	return helpStyle.Render(bar)
}

func (m boardModel) View(admin bool) string {
	header := titleStyle.Render("Trouvaille — lost & found")
	if m.loading {
		header += "  " + m.spinner.View()
	}
	if m.stale {
		header += "  " + staleStyle.Render("offline, showing cached board")
	}
	out := header + "\n" + m.filterBar() + "\n\n"

	switch {
	case m.loading && len(m.visible) == 0:
		out += "Loading...\n"
	case m.outcome == service.OutcomeBoardEmpty:
		out += "No items to display\n"
	case m.outcome == service.OutcomeNoMatches:
		out += "No items match the current filters\n"
	default:
		for i, item := range m.visible {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%s %s", cursor, typeBadge(item.Type), item.Description)
			if item.HasMatches() {
				line += "  " + matchStyle.Render(fmt.Sprintf("~%d match(es)", len(item.PossibleMatches)))
			}
			out += line + "\n"
			out += helpStyle.Render(fmt.Sprintf("          %s · %s %s", item.Location, item.Date, item.Time)) + "\n"
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	help := "n report  / search  . date  t type  c clear  r refresh  enter open  l log in  q quit"
	if admin {
		help = "n report  / search  . date  t type  c clear  r refresh  enter open  l log out  q quit"
	}
	out += "\n" + helpStyle.Render(help)
	return out
}
