package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-learn-tracker/internal/logger"
	"github.com/MKhiriev/go-learn-tracker/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

//go:generate mockgen -source=../service/interfaces.go -destination=service_mock_test.go -package=tui

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.Services
}

func New(services *service.Services, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// LoginFlow runs the welcome / login / register screens until the user is
// authenticated or quits. Returns the opened session on success.
func (t *TUI) LoginFlow(ctx context.Context) (*service.Session, error) {
	model := newLoginAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return nil, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.session == nil {
		return nil, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the dashboard for an authenticated session. It starts the
// session timer and blocks until the user logs out, is logged out by force,
// or quits the program. Returns true when control should go back to the
// login flow.
func (t *TUI) MainLoop(ctx context.Context, session *service.Session) (logout bool, err error) {
	model := newMainAppModel(ctx, t.services, session)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	t.services.SessionTimer.Stop()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
