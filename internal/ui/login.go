package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/playharmony/internal/i18n"
	"github.com/desertthunder/playharmony/internal/models"
	"github.com/desertthunder/playharmony/internal/shared"
)

// Login signs a user in by email.
type Login struct {
	env  *Env
	form form
}

func NewLogin(env *Env) *Login {
	return &Login{env: env, form: newForm(env.keys, env.Loc.T(i18n.KeyEmailLabel))}
}

func (l *Login) Title() string { return l.env.Loc.T(i18n.KeyLoginTitle) }
func (l *Login) Init() tea.Cmd { return textinput.Blink }

func (l *Login) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, l.env.keys.save) {
		return l.submit()
	}
	return l.form.Update(msg)
}

func (l *Login) submit() tea.Cmd {
	email := l.form.Value(0)
	if err := models.ValidateEmail(email); err != nil {
		l.form.SetError(errors.New(l.env.Loc.T(i18n.KeyInvalidEmail)))
		return nil
	}

	user, err := l.env.Users.GetByEmail(email)
	if errors.Is(err, shared.ErrNotFound) {
		l.form.SetError(errors.New(l.env.Loc.T(i18n.KeyUnknownEmail, map[string]any{"Email": email})))
		return nil
	}
	if err != nil {
		l.form.SetError(err)
		return nil
	}

	if err := l.env.Session.Login(user); err != nil {
		l.form.SetError(fmt.Errorf("login failed: %w", err))
		return nil
	}

	l.env.Logger.Info("signed in", "user", user.ID())
	l.env.Nav.Set(NewLobby(l.env))
	return notify(l.env.Loc.T(i18n.KeyWelcome, map[string]any{"Name": user.Name()}))
}

func (l *Login) View() string {
	return l.form.View()
}

func (l *Login) ShortHelp() []key.Binding {
	return []key.Binding{l.env.keys.save}
}
