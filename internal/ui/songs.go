package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/playharmony/internal/i18n"
	"github.com/desertthunder/playharmony/internal/models"
	"github.com/desertthunder/playharmony/internal/nav"
)

var (
	_ nav.Activator = (*SongList)(nil)
)

// SongList shows the song catalog.
type SongList struct {
	env    *Env
	list   list.Model
	loaded bool
}

func NewSongList(env *Env) *SongList {
	return &SongList{env: env, list: newList(env, nil)}
}

func (s *SongList) Title() string { return s.env.Loc.T(i18n.KeySongsTitle) }

func (s *SongList) Init() tea.Cmd {
	if s.loaded {
		return nil
	}
	if err := s.reload(); err != nil {
		return fail(err)
	}
	return nil
}

func (s *SongList) OnActivate() {
	if err := s.reload(); err != nil {
		s.env.Logger.Error("failed to reload songs", "error", err)
	}
}

func (s *SongList) reload() error {
	songs, err := s.env.Songs.List(map[string]any{})
	if err != nil {
		return err
	}
	s.list.SetItems(songItems(songs))
	s.loaded = true
	return nil
}

func (s *SongList) selected() *models.Song {
	if item, ok := s.list.SelectedItem().(songItem); ok {
		return item.song
	}
	return nil
}

func (s *SongList) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, s.env.keys.add):
			s.env.Nav.Push(NewSongForm(s.env, nil))
			return nil
		case key.Matches(msg, s.env.keys.edit):
			if song := s.selected(); song != nil {
				s.env.Nav.Push(NewSongForm(s.env, song))
			}
			return nil
		case key.Matches(msg, s.env.keys.delete):
			song := s.selected()
			if song == nil {
				return nil
			}
			if err := s.env.Songs.Delete(song.ID()); err != nil {
				return fail(err)
			}
			if err := s.reload(); err != nil {
				return fail(err)
			}
			return notify(s.env.Loc.T(i18n.KeyDeleted))
		}
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return cmd
}

func (s *SongList) SetSize(width, height int) { s.list.SetSize(width, height) }

func (s *SongList) View() string {
	return listView(s.env, s.list)
}

func (s *SongList) ShortHelp() []key.Binding {
	return []key.Binding{s.env.keys.add, s.env.keys.edit, s.env.keys.delete}
}

func songItems(songs []*models.Song) []list.Item {
	items := make([]list.Item, len(songs))
	for i, song := range songs {
		items[i] = songItem{song: song}
	}
	return items
}

const (
	songTitle = iota
	songAuthor
	songDate
	songPhoto
)

// SongForm adds a song, or edits one when built with an existing song.
type SongForm struct {
	env  *Env
	song *models.Song
	form form
}

func NewSongForm(env *Env, song *models.Song) *SongForm {
	f := &SongForm{
		env:  env,
		song: song,
		form: newForm(env.keys,
			env.Loc.T(i18n.KeyTitleLabel),
			env.Loc.T(i18n.KeyAuthorLabel),
			env.Loc.T(i18n.KeyDateLabel),
			env.Loc.T(i18n.KeyPhotoLabel),
		),
	}

	if song != nil {
		f.form.SetValue(songTitle, song.Title())
		f.form.SetValue(songAuthor, song.Author())
		f.form.SetValue(songDate, song.Date())
		f.form.SetValue(songPhoto, song.Photo())
	}
	return f
}

func (f *SongForm) Title() string {
	if f.song != nil {
		return f.env.Loc.T(i18n.KeyEditSongTitle)
	}
	return f.env.Loc.T(i18n.KeyAddSongTitle)
}

func (f *SongForm) Init() tea.Cmd { return textinput.Blink }

func (f *SongForm) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, f.env.keys.save) {
		return f.submit()
	}
	return f.form.Update(msg)
}

func (f *SongForm) submit() tea.Cmd {
	song := f.song
	if song == nil {
		song = models.NewSong(0, f.form.Value(songTitle), f.form.Value(songAuthor))
	} else {
		song.SetTitle(f.form.Value(songTitle))
		song.SetAuthor(f.form.Value(songAuthor))
	}
	song.SetDate(f.form.Value(songDate))
	song.SetPhoto(f.form.Value(songPhoto))

	var err error
	if f.song == nil {
		err = f.env.Songs.Create(song)
	} else {
		err = f.env.Songs.Update(song)
	}
	if err != nil {
		f.form.SetError(err)
		return nil
	}

	f.env.Logger.Info("song saved", "id", song.ID(), "title", song.Title())
	f.env.Nav.Clear()
	f.env.Nav.Push(NewSongList(f.env))
	return notify(f.env.Loc.T(i18n.KeySaved))
}

func (f *SongForm) View() string {
	return f.form.View()
}

func (f *SongForm) ShortHelp() []key.Binding {
	return []key.Binding{f.env.keys.save, f.env.keys.next}
}
