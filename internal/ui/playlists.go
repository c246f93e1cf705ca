package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/playharmony/internal/i18n"
	"github.com/desertthunder/playharmony/internal/models"
	"github.com/desertthunder/playharmony/internal/nav"
	"github.com/desertthunder/playharmony/internal/shared"
)

var (
	_ nav.Activator = (*PlaylistList)(nil)
	_ nav.Activator = (*PlaylistDetail)(nil)
)

// PlaylistList shows the playlists of the signed-in user, favourites first.
type PlaylistList struct {
	env    *Env
	list   list.Model
	loaded bool
	err    error
}

func NewPlaylistList(env *Env) *PlaylistList {
	return &PlaylistList{env: env, list: newList(env, nil)}
}

func (s *PlaylistList) Title() string { return s.env.Loc.T(i18n.KeyPlaylistsTitle) }

func (s *PlaylistList) Init() tea.Cmd {
	if s.loaded {
		return nil
	}
	if err := s.reload(); err != nil && !errors.Is(err, shared.ErrNotLoggedIn) {
		return fail(err)
	}
	return nil
}

func (s *PlaylistList) OnActivate() {
	if err := s.reload(); err != nil && !errors.Is(err, shared.ErrNotLoggedIn) {
		s.env.Logger.Error("failed to reload playlists", "error", err)
	}
}

func (s *PlaylistList) reload() error {
	user, err := s.env.Session.CurrentUser()
	if err != nil {
		s.err = err
		s.list.SetItems(nil)
		return err
	}
	s.err = nil

	playlists, err := s.env.Playlists.List(map[string]any{"user_id": user.ID()})
	if err != nil {
		return err
	}

	items := make([]list.Item, len(playlists))
	for i, p := range playlists {
		items[i] = playlistItem{playlist: p, loc: s.env.Loc}
	}
	s.list.SetItems(items)
	s.loaded = true
	return nil
}

func (s *PlaylistList) selected() *models.Playlist {
	if item, ok := s.list.SelectedItem().(playlistItem); ok {
		return item.playlist
	}
	return nil
}

func (s *PlaylistList) Update(msg tea.Msg) tea.Cmd {
	if s.err != nil {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, s.env.keys.add):
			s.env.Nav.Push(NewPlaylistForm(s.env))
			return nil
		case key.Matches(msg, s.env.keys.enter):
			if p := s.selected(); p != nil {
				s.env.Nav.Push(NewPlaylistDetail(s.env, p.ID()))
			}
			return nil
		case key.Matches(msg, s.env.keys.favourite):
			return s.openFavourites()
		case key.Matches(msg, s.env.keys.delete):
			return s.delete()
		}
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return cmd
}

func (s *PlaylistList) openFavourites() tea.Cmd {
	user, err := s.env.Session.CurrentUser()
	if err != nil {
		return fail(err)
	}
	fav, err := s.env.Playlists.Favourites(user.ID())
	if err != nil {
		return fail(err)
	}
	s.env.Nav.Push(NewPlaylistDetail(s.env, fav.ID()))
	return nil
}

func (s *PlaylistList) delete() tea.Cmd {
	p := s.selected()
	if p == nil {
		return nil
	}
	if err := s.env.Playlists.Delete(p.ID()); err != nil {
		return fail(err)
	}
	if err := s.reload(); err != nil {
		return fail(err)
	}
	return notify(s.env.Loc.T(i18n.KeyDeleted))
}

func (s *PlaylistList) SetSize(width, height int) { s.list.SetSize(width, height) }

func (s *PlaylistList) View() string {
	if s.err != nil {
		return styles.warn.Render(s.env.Loc.T(i18n.KeyNotLoggedIn))
	}
	return listView(s.env, s.list)
}

func (s *PlaylistList) ShortHelp() []key.Binding {
	if s.err != nil {
		return []key.Binding{s.env.keys.login}
	}
	return []key.Binding{s.env.keys.enter, s.env.keys.add, s.env.keys.favourite, s.env.keys.delete}
}

// PlaylistForm creates a playlist for the signed-in user.
type PlaylistForm struct {
	env  *Env
	form form
}

func NewPlaylistForm(env *Env) *PlaylistForm {
	return &PlaylistForm{env: env, form: newForm(env.keys, env.Loc.T(i18n.KeyPlaylistName))}
}

func (f *PlaylistForm) Title() string { return f.env.Loc.T(i18n.KeyNewPlaylist) }
func (f *PlaylistForm) Init() tea.Cmd { return textinput.Blink }

func (f *PlaylistForm) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, f.env.keys.save) {
		return f.submit()
	}
	return f.form.Update(msg)
}

func (f *PlaylistForm) submit() tea.Cmd {
	user, err := f.env.Session.CurrentUser()
	if err != nil {
		f.form.SetError(err)
		return nil
	}

	playlist := models.NewPlaylist(0, user.ID(), f.form.Value(0))
	if err := f.env.Playlists.Create(playlist); err != nil {
		f.form.SetError(err)
		return nil
	}

	f.env.Logger.Info("playlist created", "id", playlist.ID(), "user", user.ID())
	f.env.Nav.Clear()
	f.env.Nav.Push(NewPlaylistList(f.env))
	return notify(f.env.Loc.T(i18n.KeySaved))
}

func (f *PlaylistForm) View() string {
	return f.form.View()
}

func (f *PlaylistForm) ShortHelp() []key.Binding {
	return []key.Binding{f.env.keys.save}
}

// PlaylistDetail lists the songs of one playlist and reloads whenever it is exposed again.
type PlaylistDetail struct {
	env         *Env
	id          string
	playlist    *models.Playlist
	list        list.Model
	loaded      bool
	activations int
}

func NewPlaylistDetail(env *Env, id string) *PlaylistDetail {
	return &PlaylistDetail{env: env, id: id, list: newList(env, nil)}
}

func (d *PlaylistDetail) Title() string {
	if d.playlist == nil {
		return d.env.Loc.T(i18n.KeyPlaylistsTitle)
	}
	return playlistName(d.env.Loc, d.playlist)
}

func (d *PlaylistDetail) Init() tea.Cmd {
	if d.loaded {
		return nil
	}
	if err := d.reload(); err != nil {
		return fail(err)
	}
	return nil
}

// OnActivate picks up songs added by a [SongPicker] that was just popped.
func (d *PlaylistDetail) OnActivate() {
	d.activations++
	if err := d.reload(); err != nil {
		d.env.Logger.Error("failed to reload playlist", "id", d.id, "error", err)
	}
}

func (d *PlaylistDetail) reload() error {
	playlist, err := d.env.Playlists.Get(d.id)
	if err != nil {
		return err
	}
	d.playlist = playlist
	d.list.SetItems(songItems(playlist.Songs()))
	d.loaded = true
	return nil
}

func (d *PlaylistDetail) Update(msg tea.Msg) tea.Cmd {
	if d.playlist == nil {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, d.env.keys.add):
			d.env.Nav.Push(NewSongPicker(d.env, d.playlist))
			return nil
		case key.Matches(msg, d.env.keys.remove):
			item, ok := d.list.SelectedItem().(songItem)
			if !ok {
				return nil
			}
			if err := d.env.Playlists.RemoveSong(d.id, item.song.ID()); err != nil {
				return fail(err)
			}
			if err := d.reload(); err != nil {
				return fail(err)
			}
			return notify(d.env.Loc.T(i18n.KeySongRemoved, map[string]any{"Title": item.song.Title()}))
		}
	}

	var cmd tea.Cmd
	d.list, cmd = d.list.Update(msg)
	return cmd
}

func (d *PlaylistDetail) SetSize(width, height int) { d.list.SetSize(width, height) }

func (d *PlaylistDetail) View() string {
	if d.playlist == nil {
		return ""
	}
	count := d.env.Loc.T(i18n.KeySongCount, map[string]any{"Count": d.playlist.SongCount()})
	return styles.muted.Render(count) + "\n\n" + listView(d.env, d.list)
}

func (d *PlaylistDetail) ShortHelp() []key.Binding {
	return []key.Binding{d.env.keys.add, d.env.keys.remove}
}

// SongPicker adds one catalog song to a playlist and goes back.
type SongPicker struct {
	env      *Env
	playlist *models.Playlist
	list     list.Model
}

func NewSongPicker(env *Env, playlist *models.Playlist) *SongPicker {
	return &SongPicker{env: env, playlist: playlist, list: newList(env, nil)}
}

func (p *SongPicker) Title() string {
	return p.env.Loc.T(i18n.KeyPickSongTitle, map[string]any{"Name": playlistName(p.env.Loc, p.playlist)})
}

func (p *SongPicker) Init() tea.Cmd {
	if len(p.list.Items()) > 0 {
		return nil
	}
	songs, err := p.env.Songs.List(map[string]any{})
	if err != nil {
		return fail(err)
	}
	p.list.SetItems(songItems(songs))
	return nil
}

func (p *SongPicker) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, p.env.keys.enter) {
		item, ok := p.list.SelectedItem().(songItem)
		if !ok {
			return nil
		}

		err := p.env.Playlists.AddSong(p.playlist.ID(), item.song.ID())
		if errors.Is(err, shared.ErrAlreadyExists) {
			return notify(p.env.Loc.T(i18n.KeyAlreadyAdded, map[string]any{"Title": item.song.Title()}))
		}
		if err != nil {
			return fail(err)
		}

		p.env.Nav.Pop()
		return notify(p.env.Loc.T(i18n.KeySongAdded, map[string]any{"Title": item.song.Title()}))
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return cmd
}

func (p *SongPicker) SetSize(width, height int) { p.list.SetSize(width, height) }

func (p *SongPicker) View() string {
	return listView(p.env, p.list)
}

func (p *SongPicker) ShortHelp() []key.Binding {
	return []key.Binding{p.env.keys.enter}
}
