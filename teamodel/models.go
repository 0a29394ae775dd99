// Package teamodel adapts plain values to tea.Model so they can be layered
// by models that only accept tea.Model, like overlays.
package teamodel

import (
	tea "github.com/charmbracelet/bubbletea"
)

// String is a static view.
type String string

var _ tea.Model = String("")

func (m String) Init() tea.Cmd {
	return nil
}

func (m String) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

func (m String) View() string {
	return string(m)
}
