package tui

type boardReloadedMsg struct {
	stale bool
	err   error
}

type itemSavedMsg struct {
	err error
}

type itemDeletedMsg struct {
	err error
}

type sessionChangedMsg struct {
	admin bool
	err   error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
