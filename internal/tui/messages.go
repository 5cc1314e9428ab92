package tui

import (
	"time"

	"github.com/MKhiriev/go-learn-tracker/internal/service"
	"github.com/MKhiriev/go-learn-tracker/models"
)

type authDoneMsg struct {
	session *service.Session
	err     error
}

type documentLoadedMsg struct{}

type topicSavedMsg struct {
	topic models.Topic
	err   error
}

type topicDeletedMsg struct {
	err error
}

type sessionLoggedMsg struct {
	session models.Session
	err     error
}

type logoutDoneMsg struct {
	err error
}

type timerTickMsg struct {
	elapsed time.Duration
}

type forcedLogoutMsg struct {
	elapsed time.Duration
}

type copiedMsg struct {
	err error
}
