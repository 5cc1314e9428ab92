package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-learn-tracker/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var priorities = []models.Priority{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}

// topicFormModel is the create/edit form for a topic. Category and priority
// cycle with left/right on their rows; the rest are text inputs.
type topicFormModel struct {
	editingID   string // empty for a new topic
	inputs      []textinput.Model
	categoryIdx int
	priorityIdx int
	focus       int
	submitting  bool
	errMsg      string
}

const (
	topicFieldName = iota
	topicFieldGoal
	topicFieldDate
	topicFieldCategory // virtual rows after the text inputs
	topicFieldPriority
)

func newTopicFormModel(topic *models.Topic) topicFormModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "topic name"
	nameInput.CharLimit = 64
	nameInput.Width = 40
	nameInput.Focus()

	goalInput := textinput.New()
	goalInput.Placeholder = "goal hours, e.g. 10"
	goalInput.CharLimit = 6
	goalInput.Width = 40

	dateInput := textinput.New()
	dateInput.Placeholder = "target date YYYY-MM-DD (optional)"
	dateInput.CharLimit = 10
	dateInput.Width = 40

	form := topicFormModel{
		inputs:      []textinput.Model{nameInput, goalInput, dateInput},
		priorityIdx: 1, // Medium
	}

	if topic != nil {
		form.editingID = topic.ID
		form.inputs[topicFieldName].SetValue(topic.Name)
		form.inputs[topicFieldGoal].SetValue(strconv.FormatFloat(topic.GoalHours, 'f', -1, 64))
		if topic.TargetDate != nil {
			form.inputs[topicFieldDate].SetValue(topic.TargetDate.Format(time.DateOnly))
		}
		for i, c := range models.Categories() {
			if c == topic.Category {
				form.categoryIdx = i
			}
		}
		for i, p := range priorities {
			if p == topic.Priority {
				form.priorityIdx = i
			}
		}
	}

	return form
}

func (m appModel) updateTopicForm(msg tea.Msg) (appModel, tea.Cmd) {
	if result, ok := msg.(topicSavedMsg); ok {
		m.topicForm.submitting = false
		if result.err != nil {
			m.topicForm.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.currentScreen = screenList
		m.list.status = fmt.Sprintf("Saved topic %q", result.topic.Name)
		m.clampCursor()
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.currentScreen = screenList
			return m, nil
		case "tab", "down":
			m.topicForm.focus = m.moveTopicFormFocus(+1)
			return m, nil
		case "shift+tab", "up":
			m.topicForm.focus = m.moveTopicFormFocus(-1)
			return m, nil
		case "left":
			switch m.topicForm.focus {
			case topicFieldCategory:
				count := len(models.Categories())
				m.topicForm.categoryIdx = (m.topicForm.categoryIdx - 1 + count) % count
				return m, nil
			case topicFieldPriority:
				m.topicForm.priorityIdx = (m.topicForm.priorityIdx - 1 + len(priorities)) % len(priorities)
				return m, nil
			}
		case "right":
			switch m.topicForm.focus {
			case topicFieldCategory:
				m.topicForm.categoryIdx = (m.topicForm.categoryIdx + 1) % len(models.Categories())
				return m, nil
			case topicFieldPriority:
				m.topicForm.priorityIdx = (m.topicForm.priorityIdx + 1) % len(priorities)
				return m, nil
			}
		case "enter":
			if m.topicForm.submitting {
				return m, nil
			}
			return m.submitTopicForm()
		}
	}

	if m.topicForm.focus < len(m.topicForm.inputs) {
		var cmd tea.Cmd
		m.topicForm.inputs[m.topicForm.focus], cmd = m.topicForm.inputs[m.topicForm.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *appModel) moveTopicFormFocus(delta int) int {
	total := len(m.topicForm.inputs) + 2
	if m.topicForm.focus < len(m.topicForm.inputs) {
		m.topicForm.inputs[m.topicForm.focus].Blur()
	}
	next := (m.topicForm.focus + delta + total) % total
	if next < len(m.topicForm.inputs) {
		m.topicForm.inputs[next].Focus()
	}
	return next
}

func (m appModel) submitTopicForm() (appModel, tea.Cmd) {
	name := strings.TrimSpace(m.topicForm.inputs[topicFieldName].Value())

	goalHours := 0.0
	if raw := strings.TrimSpace(m.topicForm.inputs[topicFieldGoal].Value()); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			m.topicForm.errMsg = "Goal hours must be a number"
			return m, nil
		}
		goalHours = parsed
	}

	var targetDate *time.Time
	if raw := strings.TrimSpace(m.topicForm.inputs[topicFieldDate].Value()); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			m.topicForm.errMsg = "Target date must be YYYY-MM-DD"
			return m, nil
		}
		targetDate = &parsed
	}

	category := models.Categories()[m.topicForm.categoryIdx]
	priority := priorities[m.topicForm.priorityIdx]

	m.topicForm.errMsg = ""
	m.topicForm.submitting = true

	if m.topicForm.editingID != "" {
		input := models.UpdateTopicInput{
			TopicID:    m.topicForm.editingID,
			Name:       &name,
			Category:   &category,
			Priority:   &priority,
			TargetDate: targetDate,
			GoalHours:  &goalHours,
		}
		return m, m.cmdUpdateTopic(input)
	}

	input := models.AddTopicInput{
		Name:       name,
		Category:   category,
		Priority:   priority,
		TargetDate: targetDate,
		GoalHours:  goalHours,
	}
	return m, m.cmdAddTopic(input)
}

func (m appModel) viewTopicForm() string {
	var b strings.Builder

	labels := []string{"Name      ", "Goal hours", "Deadline  "}
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(" │ [")
		b.WriteString(m.topicForm.inputs[i].View())
		b.WriteString("]\n")
	}

	writeCycleRow := func(label, value string, focused bool) {
		marker := " "
		if focused {
			marker = ">"
		}
		b.WriteString(label)
		b.WriteString(" │ ")
		b.WriteString(marker)
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}
	writeCycleRow("Category  ", string(models.Categories()[m.topicForm.categoryIdx]), m.topicForm.focus == topicFieldCategory)
	writeCycleRow("Priority  ", string(priorities[m.topicForm.priorityIdx]), m.topicForm.focus == topicFieldPriority)

	if m.topicForm.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if m.topicForm.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.topicForm.errMsg))
		b.WriteString("\n")
	}

	title := "NEW TOPIC"
	if m.topicForm.editingID != "" {
		title = "EDIT TOPIC"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ ←/→: cycle │ enter: save")
}

func (m appModel) cmdAddTopic(input models.AddTopicInput) tea.Cmd {
	ctx := m.ctx
	learning := m.services.LearningService
	session := m.session

	return func() tea.Msg {
		topic, err := learning.AddTopic(ctx, session, input)
		return topicSavedMsg{topic: topic, err: err}
	}
}

func (m appModel) cmdUpdateTopic(input models.UpdateTopicInput) tea.Cmd {
	ctx := m.ctx
	learning := m.services.LearningService
	session := m.session

	return func() tea.Msg {
		topic, err := learning.UpdateTopic(ctx, session, input)
		return topicSavedMsg{topic: topic, err: err}
	}
}

func (m appModel) cmdDeleteTopic(topicID string) tea.Cmd {
	ctx := m.ctx
	learning := m.services.LearningService
	session := m.session

	return func() tea.Msg {
		return topicDeletedMsg{err: learning.DeleteTopic(ctx, session, topicID)}
	}
}
