package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// summaryModel is the logout screen: session duration, a couple of account
// aggregates, and a copy-to-clipboard action.
type summaryModel struct {
	forced     bool
	elapsed    time.Duration
	topicCount int
	totalHours float64
	status     string
}

func (m appModel) newSummaryModel(forced bool, elapsed time.Duration) summaryModel {
	return summaryModel{
		forced:     forced,
		elapsed:    elapsed,
		topicCount: len(m.session.Document.Topics),
		totalHours: m.services.LearningService.TotalStudyHours(m.session),
	}
}

func (s summaryModel) text() string {
	return fmt.Sprintf("Session duration: %s │ topics: %d │ total study time: %.1f h",
		formatClock(s.elapsed), s.topicCount, s.totalHours)
}

func (m appModel) updateSummary(msg tea.Msg) (appModel, tea.Cmd) {
	if result, ok := msg.(copiedMsg); ok {
		if result.err != nil {
			m.summary.status = "Copy failed: " + result.err.Error()
		} else {
			m.summary.status = "Summary copied to clipboard"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "c":
		text := m.summary.text()
		return m, func() tea.Msg {
			return copiedMsg{err: clipboard.WriteAll(text)}
		}
	case "enter":
		m.logout = true
		return m, tea.Quit
	case "q":
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) viewSummary() string {
	var b strings.Builder

	if m.summary.forced {
		b.WriteString(overdueStyle.Render("Session limit reached, you have been logged out."))
		b.WriteString("\n\n")
	}

	b.WriteString(summaryStyle.Render(m.summary.text()))
	b.WriteString("\n")

	if m.summary.status != "" {
		b.WriteString("\n")
		b.WriteString(m.summary.status)
		b.WriteString("\n")
	}

	return renderPage("GOODBYE", strings.TrimRight(b.String(), "\n"), "c: copy summary │ enter: back to login")
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	session := m.session

	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx, session)}
	}
}
