package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
)

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Log in", "Register"}}
}

func (m appModel) updateWelcome(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(msg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(msg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	}
	return m, nil
}

func (m appModel) viewWelcome() string {
	var b strings.Builder
	for i, item := range m.welcome.items {
		cursor := " "
		if i == m.welcome.idx {
			cursor = ">"
		}
		b.WriteString(cursor)
		b.WriteString(" ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return renderPage("LEARNING PROGRESS TRACKER", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move")
}
