package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgStatus MsgKind = iota
	MsgFailed
)

// statusMsg is the constructor for [MsgStatus]
func statusMsg(text string) Msg {
	return Msg{kind: MsgStatus, data: text}
}

// failedMsg is the constructor for [MsgFailed]
func failedMsg(err error) Msg {
	return Msg{kind: MsgFailed, data: err}
}

// notify returns a command that shows text in the status line.
func notify(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg(text) }
}

// fail returns a command that shows err in the status line.
func fail(err error) tea.Cmd {
	return func() tea.Msg { return failedMsg(err) }
}
