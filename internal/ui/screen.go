package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/desertthunder/playharmony/internal/i18n"
	"github.com/desertthunder/playharmony/internal/models"
	"github.com/desertthunder/playharmony/internal/nav"
	"github.com/desertthunder/playharmony/internal/session"
)

// Screen is a page the navigation viewport can show.
type Screen interface {
	nav.Screen

	// Title names the screen in the header.
	Title() string
	// Init prepares the screen the first time it becomes visible. It is called again on
	// every later exposure and must be idempotent.
	Init() tea.Cmd
	// Update handles every message not consumed by the global keys.
	Update(msg tea.Msg) tea.Cmd
	// ShortHelp lists the screen's own bindings for the help bar.
	ShortHelp() []key.Binding
}

// UserStore is the user persistence the screens need.
type UserStore interface {
	models.Repository[*models.User]
	GetByEmail(email string) (*models.User, error)
}

// SongStore is the song persistence the screens need.
type SongStore interface {
	models.Repository[*models.Song]
}

// PlaylistStore is the playlist persistence the screens need.
type PlaylistStore interface {
	models.Repository[*models.Playlist]
	Favourites(userID string) (*models.Playlist, error)
	AddSong(playlistID, songID string) error
	RemoveSong(playlistID, songID string) error
	Songs(playlistID string) ([]*models.Song, error)
}

// Env carries the shared dependencies every screen is built with.
type Env struct {
	Nav       *nav.Controller[Screen]
	Users     UserStore
	Songs     SongStore
	Playlists PlaylistStore
	Session   *session.Session
	Loc       *i18n.Localizer
	Logger    *log.Logger

	keys   keyMap
	width  int
	height int
}

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 7 // header, status line and help bar
)

// contentSize is the area left to a screen below the header and above the help bar.
func (e *Env) contentSize() (int, int) {
	w, h := e.width-4, e.height-chromeHeight
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

func (e *Env) resize(width, height int) {
	e.width = width
	e.height = height
}
