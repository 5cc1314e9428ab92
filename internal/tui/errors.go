package tui

import (
	"errors"

	"github.com/MKhiriev/go-learn-tracker/internal/progress"
	"github.com/MKhiriev/go-learn-tracker/internal/service"
	"github.com/MKhiriev/go-learn-tracker/internal/store"
)

// humanizeError maps service and storage errors onto the short messages the
// screens print on their error line. Validation errors already read well and
// pass through as is.
func humanizeError(err error) string {
	var goalErr *progress.GoalExceededError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &goalErr):
		return goalErr.Error()
	case errors.Is(err, store.ErrEmailAlreadyRegistered):
		return "This email is already registered"
	case errors.Is(err, service.ErrUserNotFound):
		return "No account found for this email"
	case errors.Is(err, service.ErrWrongPassword):
		return "Wrong password"
	case errors.Is(err, service.ErrTopicNotFound):
		return "The topic no longer exists"
	case errors.Is(err, service.ErrNotAuthenticated):
		return "You are not logged in"
	case errors.Is(err, progress.ErrNoTopicSelected):
		return "Pick a topic before logging a session"
	case errors.Is(err, progress.ErrDeadlinePassed):
		return "The target date for this topic has passed"
	case errors.Is(err, progress.ErrInvalidDuration):
		return "Duration must be at least one minute"
	case errors.Is(err, store.ErrDocumentNotSaved):
		return "Could not save your data, the change is kept for this session only"
	default:
		return err.Error()
	}
}
