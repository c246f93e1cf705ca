package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/desertthunder/playharmony/internal/i18n"
)

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	back      key.Binding
	add       key.Binding
	edit      key.Binding
	remove    key.Binding
	delete    key.Binding
	favourite key.Binding
	next      key.Binding
	prev      key.Binding
	role      key.Binding
	save      key.Binding
	login     key.Binding
	logout    key.Binding
	quit      key.Binding
}

func newKeyMap(loc *i18n.Localizer) keyMap {
	return keyMap{
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", loc.T(i18n.KeyHelpOpen))),
		back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", loc.T(i18n.KeyHelpBack))),
		add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", loc.T(i18n.KeyHelpAdd))),
		edit:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", loc.T(i18n.KeyHelpEdit))),
		remove:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", loc.T(i18n.KeyHelpRemove))),
		delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", loc.T(i18n.KeyHelpDelete))),
		favourite: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", loc.T(i18n.KeyHelpFavourite))),
		next:      key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", loc.T(i18n.KeyHelpNext))),
		prev:      key.NewBinding(key.WithKeys("shift+tab", "up")),
		role:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", loc.T(i18n.KeyHelpRole))),
		save:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", loc.T(i18n.KeyHelpSave))),
		login:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", loc.T(i18n.KeyHelpLogin))),
		logout:    key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", loc.T(i18n.KeyHelpLogout))),
		quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", loc.T(i18n.KeyHelpQuit))),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.back, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.add, k.edit, k.delete, k.remove},
		{k.back, k.login, k.logout, k.quit},
	}
}
