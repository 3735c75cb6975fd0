package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"trouvaille/internal/service"
	"trouvaille/models"
)

type screen int

const (
	screenBoard screen = iota
	screenDetail
	screenTypeSelect
	screenForm
	screenLogin
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	currentScreen screen
	admin         bool

	board       boardModel
	detail      detailModel
	detailStack []detailModel
	typeSelect  typeSelectModel
	form        itemFormModel
	login       loginModel

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel

	pendingDelete models.Key
}

func newAppModel(ctx context.Context, services *service.ClientServices) appModel {
	m := appModel{
		ctx:           ctx,
		services:      services,
		currentScreen: screenBoard,
		admin:         services.Session.IsAdmin(),
		board:         newBoardModel(),
		typeSelect:    newTypeSelectModel(),
	}
	// A primed cache renders immediately; the initial reload replaces it.
	m.board.visible, m.board.outcome = services.Board.Visible(service.FilterState{})
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.board.spinner.Tick, m.cmdReload())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdDelete(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = models.Key{}
			}
			return m, nil
		}
	case boardReloadedMsg:
		m.board.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.board.stale = msg.stale
		m.resetFilters()
		m.refreshVisible()
		return m, nil
	case itemSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenBoard
		m.detailStack = nil
		m.resetFilters()
		m.refreshVisible()
		m.board.status = "Saved"
		return m, cmdClearStatus()
	case itemDeletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.pendingDelete = models.Key{}
		m.currentScreen = screenBoard
		m.detailStack = nil
		m.resetFilters()
		m.refreshVisible()
		m.board.status = "Deleted"
		return m, cmdClearStatus()
	case sessionChangedMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.admin = msg.admin
		m.currentScreen = screenBoard
		if msg.admin {
			m.board.status = "Logged in as administrator"
		} else {
			m.board.status = "Logged out"
		}
		return m, cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		if m.currentScreen == screenDetail {
			m.detail.status = "Copied!"
		}
		m.board.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.board.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.board.loading {
			var cmd tea.Cmd
			m.board.spinner, cmd = m.board.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenBoard:
		return m.updateBoard(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenTypeSelect:
		return m.updateTypeSelect(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenLogin:
		return m.updateLogin(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenBoard:
		body = m.board.View(m.admin)
	case screenDetail:
		body = m.detail.View(m.admin)
	case screenTypeSelect:
		body = m.typeSelect.View()
	case screenForm:
		body = m.form.View()
	case screenLogin:
		body = m.login.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// resetFilters returns the board to the unfiltered view. Every full reload
// ends here: the fresh board always comes up with everything visible, the
// same way the original page re-rendered all cards after a fetch.
func (m *appModel) resetFilters() {
	m.board.state = service.FilterState{}
	m.board.entry = entryNone
	m.board.input.Reset()
	m.board.input.Blur()
}

// refreshVisible re-applies the current filter state to the held board and
// clamps the cursor.
func (m *appModel) refreshVisible() {
	m.board.visible, m.board.outcome = m.services.Board.Visible(m.board.state)
	if m.board.idx >= len(m.board.visible) {
		m.board.idx = len(m.board.visible) - 1
	}
	if m.board.idx < 0 {
		m.board.idx = 0
	}
}

// openDetail builds the detail model for item: resolves its possible matches
// and the public image URL.
func (m *appModel) openDetail(item models.Item) {
	m.detail = detailModel{
		item:     item,
		matches:  m.services.Board.ResolveMatches(item),
		imageURL: m.services.Board.ImageURL(item.ImageFilename),
	}
	m.currentScreen = screenDetail
}

func (m appModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// Filter entry mode: keystrokes go to the input until enter/esc.
	if m.board.entry != entryNone {
		switch {
		case key.Matches(keyMsg, keys.enter):
			value := strings.TrimSpace(m.board.input.Value())
			if m.board.entry == entrySearch {
				m.board.state.Search = value
			} else {
				m.board.state.Date = value
			}
			m.board.entry = entryNone
			m.board.input.Reset()
			m.board.input.Blur()
			m.refreshVisible()
			return m, nil
		case key.Matches(keyMsg, keys.esc):
			m.board.entry = entryNone
			m.board.input.Reset()
			m.board.input.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.board.input, cmd = m.board.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.board.idx > 0 {
			m.board.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.board.idx < len(m.board.visible)-1 {
			m.board.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		item, ok := m.board.current()
		if !ok {
			return m, nil
		}
		m.detailStack = nil
		m.openDetail(item)
	case key.Matches(keyMsg, keys.newItem):
		m.typeSelect.idx = 0
		m.currentScreen = screenTypeSelect
	case key.Matches(keyMsg, keys.search):
		m.board.entry = entrySearch
		m.board.input.SetValue(m.board.state.Search)
		m.board.input.Focus()
	case key.Matches(keyMsg, keys.date):
		m.board.entry = entryDate
		m.board.input.SetValue(m.board.state.Date)
		m.board.input.Focus()
	case key.Matches(keyMsg, keys.typeFlip):
		m.board.state.Type = nextTypeFilter(m.board.state.Type)
		m.refreshVisible()
	case key.Matches(keyMsg, keys.clear):
		m.board.state = service.FilterState{}
		m.refreshVisible()
	case key.Matches(keyMsg, keys.reload):
		if m.board.loading {
			return m, nil
		}
		m.board.loading = true
		return m, tea.Batch(m.board.spinner.Tick, m.cmdReload())
	case key.Matches(keyMsg, keys.login):
		if m.admin {
			return m, m.cmdLogout()
		}
		m.login = newLoginModel()
		m.currentScreen = screenLogin
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		if n := len(m.detailStack); n > 0 {
			m.detail = m.detailStack[n-1]
			m.detailStack = m.detailStack[:n-1]
			return m, nil
		}
		m.currentScreen = screenBoard
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.detail.matchIdx > 0 {
			m.detail.matchIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.detail.matchIdx < len(m.detail.matches)-1 {
			m.detail.matchIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(m.detail.matches) == 0 {
			return m, nil
		}
		match := m.detail.matches[m.detail.matchIdx]
		m.detailStack = append(m.detailStack, m.detail)
		m.openDetail(match)
	case key.Matches(keyMsg, keys.edit):
		if !m.admin {
			return m, nil
		}
		item := m.detail.item
		m.form = newItemFormModel(item.Type, &item)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		if !m.admin {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = m.detail.item.Description
		m.pendingDelete = m.detail.item.Key()
	case key.Matches(keyMsg, keys.copyID):
		return m, cmdCopyToClipboard(m.detail.item.ID)
	case key.Matches(keyMsg, keys.copyURL):
		if m.detail.item.Type != models.TypeFound || m.detail.imageURL == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.imageURL)
	}

	return m, nil
}

func (m appModel) updateTypeSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenBoard
	case key.Matches(keyMsg, keys.up):
		if m.typeSelect.idx > 0 {
			m.typeSelect.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.typeSelect.idx < len(m.typeSelect.items)-1 {
			m.typeSelect.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.form = newItemFormModel(m.typeSelect.chosen(), nil)
		m.currentScreen = screenForm
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.form.editing {
				m.currentScreen = screenDetail
			} else {
				m.currentScreen = screenBoard
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = focusNextForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = focusPrevForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			m.form.submitting = true
			draft := m.form.toDraft()
			if m.form.editing {
				return m, m.cmdUpdate(m.form.key, draft)
			}
			if m.form.itemType == models.TypeFound {
				return m, m.cmdSubmitFound(draft)
			}
			return m, m.cmdSubmitLost(draft)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenBoard
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			username := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if username == "" || password == "" {
				m.showErrorf("Username and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m appModel) cmdReload() tea.Cmd {
	ctx := m.ctx
	board := m.services.Board
	return func() tea.Msg {
		stale, err := board.Reload(ctx)
		return boardReloadedMsg{stale: stale, err: err}
	}
}

func (m appModel) cmdSubmitFound(draft models.ItemDraft) tea.Cmd {
	ctx := m.ctx
	board := m.services.Board
	return func() tea.Msg {
		return itemSavedMsg{err: board.SubmitFound(ctx, draft)}
	}
}

func (m appModel) cmdSubmitLost(draft models.ItemDraft) tea.Cmd {
	ctx := m.ctx
	board := m.services.Board
	return func() tea.Msg {
		return itemSavedMsg{err: board.SubmitLost(ctx, draft)}
	}
}

func (m appModel) cmdUpdate(key models.Key, draft models.ItemDraft) tea.Cmd {
	ctx := m.ctx
	board := m.services.Board
	return func() tea.Msg {
		return itemSavedMsg{err: board.Update(ctx, key, draft)}
	}
}

func (m appModel) cmdDelete(key models.Key) tea.Cmd {
	ctx := m.ctx
	board := m.services.Board
	return func() tea.Msg {
		return itemDeletedMsg{err: board.Delete(ctx, key)}
	}
}

func (m appModel) cmdLogin(username, password string) tea.Cmd {
	session := m.services.Session
	return func() tea.Msg {
		if err := session.Login(username, password); err != nil {
			return sessionChangedMsg{err: err}
		}
		return sessionChangedMsg{admin: true}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	session := m.services.Session
	return func() tea.Msg {
		if err := session.Logout(); err != nil {
			return sessionChangedMsg{admin: true, err: err}
		}
		return sessionChangedMsg{admin: false}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextForm(m itemFormModel) itemFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevForm(m itemFormModel) itemFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
