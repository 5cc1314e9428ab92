package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-learn-tracker/internal/logger"
	"github.com/MKhiriev/go-learn-tracker/internal/service"
	"github.com/MKhiriev/go-learn-tracker/internal/tui"
)

// App drives the terminal application lifecycle: the login flow, the
// dashboard loop, and the hop back to login after a logout.
type App struct {
	services *service.Services
	tui      *tui.TUI
	log      *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app needs services and a ui")
	}
	return &App{services: services, tui: ui, log: log}, nil
}

// Run blocks until the user quits. A forced or voluntary logout returns
// control to the login flow; quitting any screen exits the process cleanly.
func (a *App) Run() error {
	ctx := a.log.WithContext(context.Background())

	for {
		session, err := a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}

		a.log.Info().Str("user_id", session.UserID()).Msg("session opened")

		logout, err := a.tui.MainLoop(ctx, session)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.log.Info().Str("user_id", session.UserID()).Msg("logged out, back to login")
	}
}
