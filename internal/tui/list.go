// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-learn-tracker/internal/progress"
	"github.com/MKhiriev/go-learn-tracker/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// listModel is the dashboard: the filtered topic table plus the aggregate
// header. Filtering state (category cycle and name query) lives here.
type listModel struct {
	idx         int
	categoryIdx int
	searching   bool
	searchInput textinput.Model
	status      string
}

func newListModel() listModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "search topics"
	searchInput.CharLimit = 40
	searchInput.Width = 30

	return listModel{searchInput: searchInput}
}

// categoryFilters is the cycle order of the category filter: "all" first,
// then the fixed category set.
func categoryFilters() []string {
	filters := []string{progress.FilterAll}
	for _, c := range models.Categories() {
		filters = append(filters, string(c))
	}
	return filters
}

func (m appModel) currentFilter() string {
	return categoryFilters()[m.list.categoryIdx]
}

func (m appModel) filteredTopics() []models.Topic {
	return m.services.LearningService.FilteredTopics(m.session, m.currentFilter(), m.list.searchInput.Value())
}

func (m appModel) selectedTopic() *models.Topic {
	topics := m.filteredTopics()
	if m.list.idx < 0 || m.list.idx >= len(topics) {
		return nil
	}
	return &topics[m.list.idx]
}

func (m appModel) updateList(msg tea.Msg) (appModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.list.searching {
		switch keyMsg.String() {
		case "enter":
			m.list.searching = false
			m.list.searchInput.Blur()
		case "esc":
			m.list.searching = false
			m.list.searchInput.Blur()
			m.list.searchInput.SetValue("")
		default:
			var cmd tea.Cmd
			m.list.searchInput, cmd = m.list.searchInput.Update(msg)
			m.clampCursor()
			return m, cmd
		}
		m.clampCursor()
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.list.idx > 0 {
			m.list.idx--
		}
	case "down", "j":
		if m.list.idx < len(m.filteredTopics())-1 {
			m.list.idx++
		}
	case "left", "h":
		filters := categoryFilters()
		m.list.categoryIdx = (m.list.categoryIdx - 1 + len(filters)) % len(filters)
		m.clampCursor()
	case "right", "l":
		m.list.categoryIdx = (m.list.categoryIdx + 1) % len(categoryFilters())
		m.clampCursor()
	case "/":
		m.list.searching = true
		m.list.searchInput.Focus()
		return m, textinput.Blink
	case "esc":
		m.list.searchInput.SetValue("")
		m.list.categoryIdx = 0
		m.clampCursor()
	case "n":
		m.topicForm = newTopicFormModel(nil)
		m.currentScreen = screenTopicForm
		return m, textinput.Blink
	case "e":
		if topic := m.selectedTopic(); topic != nil {
			m.topicForm = newTopicFormModel(topic)
			m.currentScreen = screenTopicForm
			return m, textinput.Blink
		}
	case "d":
		if topic := m.selectedTopic(); topic != nil {
			m.showConfirm = true
			m.pendingDelete = topic.ID
		}
	case "s":
		if topic := m.selectedTopic(); topic != nil {
			m.sessionForm = m.newSessionFormModel(topic)
			m.currentScreen = screenSessionForm
			return m, textinput.Blink
		}
	case "x":
		m.summary = m.newSummaryModel(false, m.elapsed)
		m.currentScreen = screenSummary
		return m, m.cmdLogout()
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	return m, nil
}

func (m *appModel) clampCursor() {
	count := len(m.services.LearningService.FilteredTopics(m.session, categoryFilters()[m.list.categoryIdx], m.list.searchInput.Value()))
	if m.list.idx >= count {
		m.list.idx = count - 1
	}
	if m.list.idx < 0 {
		m.list.idx = 0
	}
}

func (m appModel) viewList() string {
	var b strings.Builder

	learning := m.services.LearningService

	b.WriteString(fmt.Sprintf("%s │ session %s\n", m.session.User.Name, formatClock(m.elapsed)))
	b.WriteString(fmt.Sprintf("active topics: %d │ total study time: %.1f h\n\n",
		learning.ActiveTopicCount(m.session, m.now()),
		learning.TotalStudyHours(m.session)))

	if m.list.searching || m.list.searchInput.Value() != "" {
		b.WriteString("search: [")
		b.WriteString(m.list.searchInput.View())
		b.WriteString("]\n")
	}
	b.WriteString("category: ")
	b.WriteString(m.currentFilter())
	b.WriteString("\n\n")

	topics := m.filteredTopics()
	if len(topics) == 0 {
		b.WriteString("No topics yet. Press n to add one.\n")
	}

	for i, topic := range topics {
		cursor := " "
		if i == m.list.idx {
			cursor = ">"
		}

		p, err := learning.Progress(m.session, topic.ID)
		if err != nil {
			continue
		}

		line := fmt.Sprintf("%s %-24s %-12s %-6s %s %5.1f%%",
			cursor, fitText(topic.Name, 24), topic.Category, topic.Priority,
			progressBar(p.PercentComplete, 10), p.PercentComplete)

		if topic.GoalHours > 0 {
			line += fmt.Sprintf("  %.1f/%.1f h", p.TotalHours, topic.GoalHours)
		} else {
			line += fmt.Sprintf("  %.1f h", p.TotalHours)
		}

		switch {
		case p.IsCompleted:
			line += " " + completedStyle.Render("DONE")
		case p.IsDeadlineExceeded:
			line += " " + overdueStyle.Render("OVERDUE")
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.list.status != "" {
		b.WriteString("\n")
		b.WriteString(m.list.status)
		b.WriteString("\n")
	}

	hotKeys := "n: new │ e: edit │ d: delete │ s: log session │ /: search │ ←/→: category │ x: log out"
	return renderPage("MY TOPICS", strings.TrimRight(b.String(), "\n"), hotKeys)
}
