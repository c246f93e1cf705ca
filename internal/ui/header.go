package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/desertthunder/playharmony/internal/i18n"
)

// Header shows the app title, the visible screen and the signed-in user.
//
// It learns about navigation only through its controller subscription.
type Header struct {
	env     *Env
	current Screen
	back    bool
	changes int
}

func NewHeader(env *Env) *Header {
	return &Header{env: env}
}

// OnNavigate is the header's [nav.Listener].
func (h *Header) OnNavigate(s Screen) {
	h.current = s
	h.back = h.env.Nav.CanGoBack()
	h.changes++
}

// Changes counts the notifications received so far.
func (h *Header) Changes() int {
	return h.changes
}

func (h *Header) View() string {
	title := h.env.Loc.T(i18n.KeyAppTitle)
	if h.current != nil {
		title += " › " + h.current.Title()
	}

	account := h.env.Loc.T(i18n.KeyLoginHint)
	if user, err := h.env.Session.CurrentUser(); err == nil {
		account = h.env.Loc.T(i18n.KeySignedInAs, map[string]any{"Name": user.FullName()})
	}

	left := styles.title.Render(title)
	right := styles.muted.Render(account)
	gap := h.env.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right)

	hint := ""
	if h.back {
		hint = styles.help.Render(h.env.Loc.T(i18n.KeyBackHint))
	}

	return lipgloss.JoinVertical(lipgloss.Left, line, hint)
}
