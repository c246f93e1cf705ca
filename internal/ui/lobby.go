package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/playharmony/internal/i18n"
)

// Lobby is the root menu. A new one is built every time the history empties.
type Lobby struct {
	env  *Env
	menu list.Model
}

func NewLobby(env *Env) *Lobby {
	items := []list.Item{
		menuItem{title: env.Loc.T(i18n.KeyMenuUsers), open: func() Screen { return NewUserList(env) }},
		menuItem{title: env.Loc.T(i18n.KeyMenuSongs), open: func() Screen { return NewSongList(env) }},
		menuItem{title: env.Loc.T(i18n.KeyMenuPlaylists), open: func() Screen { return NewPlaylistList(env) }},
	}

	menu := newList(env, items)
	menu.SetDelegate(compactDelegate())
	return &Lobby{env: env, menu: menu}
}

func (l *Lobby) Title() string { return l.env.Loc.T(i18n.KeyLobbyTitle) }
func (l *Lobby) Init() tea.Cmd { return nil }

func (l *Lobby) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, l.env.keys.enter) {
		if item, ok := l.menu.SelectedItem().(menuItem); ok {
			l.env.Nav.Push(item.open())
		}
		return nil
	}

	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return cmd
}

func (l *Lobby) SetSize(width, height int) { l.menu.SetSize(width, height) }

func (l *Lobby) View() string {
	return listView(l.env, l.menu)
}

func (l *Lobby) ShortHelp() []key.Binding {
	return []key.Binding{l.env.keys.up, l.env.keys.down, l.env.keys.enter}
}

// compactDelegate renders one line per item.
func compactDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)
	return d
}
