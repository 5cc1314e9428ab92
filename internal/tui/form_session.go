package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-learn-tracker/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// sessionFormModel is the study-session logging form for one topic. The
// remaining-capacity hint is computed when the form opens so the user knows
// the cap before typing a duration.
type sessionFormModel struct {
	topicID    string
	topicName  string
	hint       string
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

const (
	sessionFieldDuration = iota
	sessionFieldNotes
	sessionFieldDate
)

func (m appModel) newSessionFormModel(topic *models.Topic) sessionFormModel {
	durationInput := textinput.New()
	durationInput.Placeholder = "duration in minutes"
	durationInput.CharLimit = 5
	durationInput.Width = 40
	durationInput.Focus()

	notesInput := textinput.New()
	notesInput.Placeholder = "notes (optional)"
	notesInput.CharLimit = 120
	notesInput.Width = 40

	dateInput := textinput.New()
	dateInput.Placeholder = "date YYYY-MM-DD (default: today)"
	dateInput.CharLimit = 10
	dateInput.Width = 40

	hint := "no goal set, any duration is fine"
	if remaining, bounded := m.services.LearningService.RemainingMinutes(m.session, topic.ID); bounded {
		hint = fmt.Sprintf("%d minutes left before the goal is reached", remaining)
	}

	return sessionFormModel{
		topicID:   topic.ID,
		topicName: topic.Name,
		hint:      hint,
		inputs:    []textinput.Model{durationInput, notesInput, dateInput},
	}
}

func (m appModel) updateSessionForm(msg tea.Msg) (appModel, tea.Cmd) {
	if result, ok := msg.(sessionLoggedMsg); ok {
		m.sessionForm.submitting = false
		if result.err != nil {
			m.sessionForm.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.currentScreen = screenList
		m.list.status = fmt.Sprintf("Logged %d minutes", result.session.Duration)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.currentScreen = screenList
			return m, nil
		case "tab", "down":
			m.sessionForm.focus = focusInput(m.sessionForm.inputs, m.sessionForm.focus, +1)
			return m, nil
		case "shift+tab", "up":
			m.sessionForm.focus = focusInput(m.sessionForm.inputs, m.sessionForm.focus, -1)
			return m, nil
		case "enter":
			if m.sessionForm.submitting {
				return m, nil
			}

			duration, err := strconv.Atoi(strings.TrimSpace(m.sessionForm.inputs[sessionFieldDuration].Value()))
			if err != nil {
				m.sessionForm.errMsg = "Duration must be a whole number of minutes"
				return m, nil
			}

			input := models.LogSessionInput{
				TopicID:  m.sessionForm.topicID,
				Duration: duration,
				Notes:    strings.TrimSpace(m.sessionForm.inputs[sessionFieldNotes].Value()),
				Date:     strings.TrimSpace(m.sessionForm.inputs[sessionFieldDate].Value()),
			}

			m.sessionForm.errMsg = ""
			m.sessionForm.submitting = true
			return m, m.cmdLogSession(input)
		}
	}

	var cmd tea.Cmd
	m.sessionForm.inputs[m.sessionForm.focus], cmd = m.sessionForm.inputs[m.sessionForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) viewSessionForm() string {
	var b strings.Builder

	b.WriteString("Topic: ")
	b.WriteString(m.sessionForm.topicName)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.sessionForm.hint))
	b.WriteString("\n\n")

	labels := []string{"Minutes", "Notes  ", "Date   "}
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(" │ [")
		b.WriteString(m.sessionForm.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.sessionForm.submitting {
		b.WriteString("\n[Logging...]\n")
	} else {
		b.WriteString("\n[Log session]\n")
	}

	if m.sessionForm.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.sessionForm.errMsg))
		b.WriteString("\n")
	}

	return renderPage("LOG STUDY SESSION", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: save")
}

func (m appModel) cmdLogSession(input models.LogSessionInput) tea.Cmd {
	ctx := m.ctx
	learning := m.services.LearningService
	session := m.session

	return func() tea.Msg {
		logged, err := learning.LogSession(ctx, session, input)
		return sessionLoggedMsg{session: logged, err: err}
	}
}
