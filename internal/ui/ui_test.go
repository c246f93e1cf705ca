package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/desertthunder/playharmony/internal/i18n"
	"github.com/desertthunder/playharmony/internal/repositories"
	"github.com/desertthunder/playharmony/internal/session"
	tu "github.com/desertthunder/playharmony/internal/testing"
)

func newTestApp(t *testing.T) (*App, *repositories.Store) {
	t.Helper()

	store := tu.NewTestStore(t)
	app, err := New(Options{
		Users:     store.Users,
		Songs:     store.Songs,
		Playlists: store.Playlists,
		Session:   session.New(),
		Localizer: i18n.MustNew("en"),
	})
	require.NoError(t, err)
	return app, store
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case "ctrl+o":
		return tea.KeyMsg{Type: tea.KeyCtrlO}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// press sends k to the app and returns the resulting command without running it.
func press(a *App, k string) tea.Cmd {
	_, cmd := a.Update(keyMsg(k))
	return cmd
}

// run executes cmd and feeds the app's own messages back into it.
// Only use it for commands that return immediately.
func run(a *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			run(a, c)
		}
	case Msg:
		a.Update(msg)
	}
}

// login signs the given email in through the login screen.
func login(t *testing.T, a *App, email string) {
	t.Helper()

	press(a, "ctrl+l")
	screen, ok := a.viewport.Current().(*Login)
	require.True(t, ok, "expected the login screen")
	screen.form.SetValue(0, email)
	run(a, press(a, "enter"))
	require.True(t, a.env.Session.LoggedIn(), "login failed: %s", screen.form.err)
}
