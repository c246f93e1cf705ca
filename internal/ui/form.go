package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// field is a labelled single-line input.
type field struct {
	label string
	input textinput.Model
}

// form is a column of fields with one focused at a time and an inline error line.
type form struct {
	keys   keyMap
	fields []field
	focus  int
	err    string
}

func newForm(keys keyMap, labels ...string) form {
	f := form{keys: keys, fields: make([]field, len(labels))}
	for i, label := range labels {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 256
		f.fields[i] = field{label: label, input: in}
	}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

func (f *form) Value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

func (f *form) SetValue(i int, v string) {
	f.fields[i].input.SetValue(v)
}

// Focused returns the index of the focused field.
func (f *form) Focused() int {
	return f.focus
}

func (f *form) SetError(err error) {
	if err == nil {
		f.err = ""
		return
	}
	f.err = err.Error()
}

// Update moves focus on tab/shift+tab and passes everything else to the focused input.
func (f *form) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, f.keys.next):
			return f.move(1)
		case key.Matches(msg, f.keys.prev):
			return f.move(-1)
		}
	}

	if len(f.fields) == 0 {
		return nil
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *form) move(delta int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	return f.fields[f.focus].input.Focus()
}

func (f *form) View() string {
	var b strings.Builder
	for i, fl := range f.fields {
		cursor := "  "
		if i == f.focus {
			cursor = styles.label.Render("› ")
		}
		fmt.Fprintf(&b, "%s%s\n  %s\n", cursor, styles.label.Render(fl.label), fl.input.View())
	}
	if f.err != "" {
		fmt.Fprintf(&b, "\n%s\n", styles.err.Render(f.err))
	}
	return strings.TrimRight(b.String(), "\n")
}
