package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/desertthunder/playharmony/internal/i18n"
	"github.com/desertthunder/playharmony/internal/nav"
	"github.com/desertthunder/playharmony/internal/session"
	"github.com/desertthunder/playharmony/internal/shared"
)

// Options holds the dependencies of an [App].
type Options struct {
	Users     UserStore
	Songs     SongStore
	Playlists PlaylistStore
	Session   *session.Session
	Localizer *i18n.Localizer
	Logger    *log.Logger
	// Viewport defaults to a new one. Passing a viewport that already has a controller fails with [nav.ErrAlreadyBound].
	Viewport *nav.Viewport[Screen]
}

// App is the root bubbletea model.
type App struct {
	env      *Env
	viewport *nav.Viewport[Screen]
	header   *Header
	help     help.Model
	pending  []tea.Cmd
	status   string
	failed   bool
}

var _ tea.Model = (*App)(nil)

// New wires the navigation controller, the header subscription and the root [Lobby].
func New(opts Options) (*App, error) {
	if opts.Users == nil || opts.Songs == nil || opts.Playlists == nil {
		return nil, fmt.Errorf("%w: stores are required", shared.ErrMissingArgument)
	}
	if opts.Session == nil {
		opts.Session = session.New()
	}
	if opts.Localizer == nil {
		loc, err := i18n.New(i18n.DefaultLocale)
		if err != nil {
			return nil, err
		}
		opts.Localizer = loc
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Viewport == nil {
		opts.Viewport = nav.NewViewport[Screen]()
	}

	env := &Env{
		Users:     opts.Users,
		Songs:     opts.Songs,
		Playlists: opts.Playlists,
		Session:   opts.Session,
		Loc:       opts.Localizer,
		Logger:    opts.Logger,
		keys:      newKeyMap(opts.Localizer),
		width:     defaultWidth,
		height:    defaultHeight,
	}

	controller, err := nav.New(opts.Viewport, func() Screen { return NewLobby(env) }, nav.Options{
		Logger: shared.WithLogger(opts.Logger, "component", "nav"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create navigation controller: %w", err)
	}
	env.Nav = controller

	a := &App{
		env:      env,
		viewport: opts.Viewport,
		header:   NewHeader(env),
		help:     help.New(),
	}

	controller.Subscribe(a.header.OnNavigate)
	controller.Subscribe(a.onNavigate)
	a.header.OnNavigate(controller.Current())

	return a, nil
}

// Env exposes the shared screen dependencies.
func (a *App) Env() *Env {
	return a.env
}

// onNavigate queues the visible screen's Init and clears the status line.
func (a *App) onNavigate(s Screen) {
	a.status = ""
	a.failed = false
	a.fit(s)
	if cmd := s.Init(); cmd != nil {
		a.pending = append(a.pending, cmd)
	}
}

// resizer is implemented by screens whose content depends on the terminal size.
type resizer interface {
	SetSize(width, height int)
}

func (a *App) fit(s Screen) {
	if r, ok := s.(resizer); ok {
		r.SetSize(a.env.contentSize())
	}
}

func (a *App) Init() tea.Cmd {
	return a.viewport.Current().Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.env.resize(msg.Width, msg.Height)
		a.help.Width = msg.Width
		a.fit(a.viewport.Current())
	case tea.KeyMsg:
		if handled, c := a.handleGlobalKeys(msg); handled {
			cmd = c
		} else {
			cmd = a.viewport.Current().Update(msg)
		}
	case Msg:
		a.handleMsg(msg)
	default:
		cmd = a.viewport.Current().Update(msg)
	}

	cmds := append(a.pending, cmd)
	a.pending = nil
	return a, tea.Batch(cmds...)
}

func (a *App) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	keys := a.env.keys
	switch {
	case key.Matches(msg, keys.quit):
		return true, tea.Quit
	case key.Matches(msg, keys.back):
		if a.env.Nav.CanGoBack() {
			a.env.Nav.Pop()
		}
		return true, nil
	case key.Matches(msg, keys.login):
		if _, ok := a.viewport.Current().(*Login); !ok {
			a.env.Nav.Push(NewLogin(a.env))
		}
		return true, nil
	case key.Matches(msg, keys.logout):
		if !a.env.Session.LoggedIn() {
			return true, nil
		}
		a.env.Session.Logout()
		a.env.Logger.Info("signed out")
		a.env.Nav.Set(NewLobby(a.env))
		return true, notify(a.env.Loc.T(i18n.KeyLoggedOut))
	}
	return false, nil
}

func (a *App) handleMsg(msg Msg) {
	switch msg.kind {
	case MsgStatus:
		a.status, a.failed = msg.data.(string), false
	case MsgFailed:
		err, _ := msg.data.(error)
		a.env.Logger.Error("screen action failed", "screen", a.viewport.Current().Title(), "error", err)
		a.status, a.failed = a.env.Loc.T(i18n.KeyErrorPrefix, map[string]any{"Error": err}), true
	}
}

func (a *App) View() string {
	content := lipgloss.NewStyle().Padding(0, 2).Render(a.viewport.Current().View())

	status := ""
	if a.status != "" {
		if a.failed {
			status = styles.err.Render(a.status)
		} else {
			status = styles.ok.Render(a.status)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.header.View(),
		"",
		content,
		"",
		status,
		a.help.ShortHelpView(a.helpKeys()),
	)
}

func (a *App) helpKeys() []key.Binding {
	keys := a.viewport.Current().ShortHelp()
	if a.env.Nav.CanGoBack() {
		keys = append(keys, a.env.keys.back)
	}
	if a.env.Session.LoggedIn() {
		keys = append(keys, a.env.keys.logout)
	} else {
		keys = append(keys, a.env.keys.login)
	}
	return append(keys, a.env.keys.quit)
}
