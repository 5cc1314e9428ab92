// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-learn-tracker/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginModel renders two text inputs (email and password) and dispatches an
// async login command on submission.
type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	status     string
}

func newLoginModel() loginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 64
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{emailInput, passwordInput}}
}

func (m appModel) updateLogin(msg tea.Msg) (appModel, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.login.submitting = false
		if result.err != nil {
			m.login.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.session = result.session
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.login.submitting = false
			m.login.errMsg = ""
			m.login.status = ""
			m.currentScreen = screenWelcome
			return m, nil
		case "tab", "down":
			m.login.focus = focusInput(m.login.inputs, m.login.focus, +1)
			return m, nil
		case "shift+tab", "up":
			m.login.focus = focusInput(m.login.inputs, m.login.focus, -1)
			return m, nil
		case "ctrl+f":
			// password recovery has nowhere to send a mail in a local build
			m.login.status = "Password recovery is not available. Register a new account instead."
			return m, nil
		case "enter":
			if m.login.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if email == "" || pass == "" {
				m.login.errMsg = "Email and password are required"
				return m, nil
			}

			m.login.errMsg = ""
			m.login.status = ""
			m.login.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) viewLogin() string {
	var b strings.Builder
	b.WriteString("Email    │ [")
	b.WriteString(m.login.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.login.inputs[1].View())
	b.WriteString("]\n")

	if m.login.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	if m.login.status != "" {
		b.WriteString("\n")
		b.WriteString(m.login.status)
		b.WriteString("\n")
	}
	if m.login.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.login.errMsg))
		b.WriteString("\n")
	}

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit │ ctrl+f: forgot password")
}

func (m appModel) cmdLogin(email, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		session, err := auth.Login(ctx, models.LoginInput{Email: email, Password: pass})
		return authDoneMsg{session: session, err: err}
	}
}

// focusInput moves focus between inputs by delta and returns the new index.
func focusInput(inputs []textinput.Model, focus, delta int) int {
	inputs[focus].Blur()
	next := (focus + delta + len(inputs)) % len(inputs)
	inputs[next].Focus()
	return next
}
