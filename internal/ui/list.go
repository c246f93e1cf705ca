package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/desertthunder/playharmony/internal/i18n"
	"github.com/desertthunder/playharmony/internal/models"
)

var (
	_ list.DefaultItem = menuItem{}
	_ list.DefaultItem = userItem{}
	_ list.DefaultItem = songItem{}
	_ list.DefaultItem = playlistItem{}
)

// menuItem is one [Lobby] entry.
type menuItem struct {
	title string
	open  func() Screen
}

func (i menuItem) FilterValue() string { return i.title }
func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return "" }

// userItem wraps [models.User] to implement [list.Item].
type userItem struct {
	user *models.User
}

func (i userItem) FilterValue() string { return i.user.FullName() }
func (i userItem) Title() string       { return i.user.FullName() }
func (i userItem) Description() string {
	desc := fmt.Sprintf("%s • %s", i.user.Email(), i.user.Role())
	if i.user.Category() != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.user.Category())
	}
	return desc
}

// songItem wraps [models.Song] to implement [list.Item].
type songItem struct {
	song *models.Song
}

func (i songItem) FilterValue() string { return i.song.Title() }
func (i songItem) Title() string       { return i.song.Title() }
func (i songItem) Description() string {
	desc := i.song.Author()
	if i.song.Date() != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.song.Date())
	}
	return desc
}

// playlistItem wraps [models.Playlist] to implement [list.Item].
type playlistItem struct {
	playlist *models.Playlist
	loc      *i18n.Localizer
}

func (i playlistItem) FilterValue() string { return i.Title() }
func (i playlistItem) Title() string       { return playlistName(i.loc, i.playlist) }
func (i playlistItem) Description() string {
	return i.loc.T(i18n.KeySongCount, map[string]any{"Count": i.playlist.SongCount()})
}

// playlistName localizes the favourites playlist and leaves the rest untouched.
func playlistName(loc *i18n.Localizer, p *models.Playlist) string {
	if p.Favourite() {
		return "★ " + loc.T(i18n.KeyFavourites)
	}
	return p.Name()
}

// newList builds a [list.Model] whose keys do not collide with the screen and app bindings.
func newList(env *Env, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.SetSize(env.contentSize())
	return l
}

// listView renders l, or the empty placeholder when it has no items.
func listView(env *Env, l list.Model) string {
	if len(l.Items()) == 0 {
		return styles.muted.Render(env.Loc.T(i18n.KeyEmpty))
	}
	return strings.TrimRight(l.View(), "\n")
}
