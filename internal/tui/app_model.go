// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-learn-tracker/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenTopicForm
	screenSessionForm
	screenSummary
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

// formatClock renders an elapsed duration as HH:MM:SS for the header and the
// logout summary.
var formatClock = service.FormatElapsed

// appModel is the root bubbletea model. One screen is active at a time; each
// screen keeps its state in a sub-model and its handlers in its own file.
type appModel struct {
	ctx      context.Context
	services *service.Services

	mode          appMode
	currentScreen screen
	session       *service.Session

	welcome     welcomeModel
	login       loginModel
	register    registerModel
	list        listModel
	topicForm   topicFormModel
	sessionForm sessionFormModel
	summary     summaryModel

	// delete confirmation overlay on top of the list screen
	showConfirm   bool
	pendingDelete string

	elapsed     time.Duration
	timerEvents chan tea.Msg
	logout      bool

	now func() time.Time
}

func newLoginAppModel(ctx context.Context, services *service.Services) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeLogin,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		now:           time.Now,
	}
}

func newMainAppModel(ctx context.Context, services *service.Services, session *service.Session) appModel {
	m := appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeMain,
		currentScreen: screenList,
		session:       session,
		list:          newListModel(),
		timerEvents:   make(chan tea.Msg, 16),
		now:           time.Now,
	}

	events := m.timerEvents
	services.SessionTimer.Start(ctx,
		func(elapsed time.Duration) {
			select {
			case events <- timerTickMsg{elapsed: elapsed}:
			default: // UI is behind, the next tick carries a fresher value
			}
		},
		func(elapsed time.Duration) {
			select {
			case events <- forcedLogoutMsg{elapsed: elapsed}:
			default:
			}
		})

	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return tea.Batch(m.cmdLoadDocument(), m.waitForTimerEvent())
	}
	return textinput.Blink
}

func (m appModel) waitForTimerEvent() tea.Cmd {
	ctx := m.ctx
	events := m.timerEvents

	return func() tea.Msg {
		select {
		case msg := <-events:
			return msg
		case <-ctx.Done():
			return nil
		}
	}
}

func (m appModel) cmdLoadDocument() tea.Cmd {
	ctx := m.ctx
	learning := m.services.LearningService
	session := m.session

	return func() tea.Msg {
		learning.LoadDocument(ctx, session)
		return documentLoadedMsg{}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		m.elapsed = msg.elapsed
		return m, m.waitForTimerEvent()

	case forcedLogoutMsg:
		m.elapsed = msg.elapsed
		m.showConfirm = false
		m.summary = m.newSummaryModel(true, msg.elapsed)
		m.currentScreen = screenSummary
		return m, m.cmdLogout()

	case logoutDoneMsg:
		if msg.err != nil {
			m.summary.status = "Sign-out warning: " + humanizeError(msg.err)
		}
		return m, nil

	case documentLoadedMsg:
		m.clampCursor()
		return m, nil

	case topicDeletedMsg:
		if msg.err != nil {
			m.list.status = humanizeError(msg.err)
		} else {
			m.list.status = "Topic deleted"
		}
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.currentScreen {
	case screenWelcome:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m.updateWelcome(keyMsg)
		}
		return m, nil
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenList:
		return m.updateList(msg)
	case screenTopicForm:
		return m.updateTopicForm(msg)
	case screenSessionForm:
		return m.updateSessionForm(msg)
	case screenSummary:
		return m.updateSummary(msg)
	}
	return m, nil
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		topicID := m.pendingDelete
		m.showConfirm = false
		m.pendingDelete = ""
		return m, m.cmdDeleteTopic(topicID)
	case "n", "esc":
		m.showConfirm = false
		m.pendingDelete = ""
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) View() string {
	if m.showConfirm {
		return m.viewConfirm()
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.viewWelcome()
	case screenLogin:
		return m.viewLogin()
	case screenRegister:
		return m.viewRegister()
	case screenList:
		return m.viewList()
	case screenTopicForm:
		return m.viewTopicForm()
	case screenSessionForm:
		return m.viewSessionForm()
	case screenSummary:
		return m.viewSummary()
	}
	return ""
}

func (m appModel) viewConfirm() string {
	name := m.pendingDelete
	for _, topic := range m.session.Document.Topics {
		if topic.ID == m.pendingDelete {
			name = topic.Name
			break
		}
	}

	data := "Delete topic \"" + name + "\" and all its logged sessions?\n\n" +
		errorStyle.Render("This cannot be undone.")
	return renderPage("CONFIRM DELETE", data, "y: delete │ n: cancel")
}
