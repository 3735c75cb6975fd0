package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	newItem  key.Binding
	reload   key.Binding
	search   key.Binding
	date     key.Binding
	typeFlip key.Binding
	clear    key.Binding
	login    key.Binding
	edit     key.Binding
	delete   key.Binding
	copyID   key.Binding
	copyURL  key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	reload:   key.NewBinding(key.WithKeys("r")),
	search:   key.NewBinding(key.WithKeys("/")),
	date:     key.NewBinding(key.WithKeys(".")),
	typeFlip: key.NewBinding(key.WithKeys("t")),
	clear:    key.NewBinding(key.WithKeys("c")),
	login:    key.NewBinding(key.WithKeys("l")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copyID:   key.NewBinding(key.WithKeys("c")),
	copyURL:  key.NewBinding(key.WithKeys("u")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
