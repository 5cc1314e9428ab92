package service

import (
	"time"

	"github.com/MKhiriev/go-learn-tracker/models"
)

// Session is the authenticated context of one logged-in user. It carries the
// account, the signed session token and the user's learning document, and is
// passed explicitly to every operation that needs it. There is no package or
// process level "current user".
//
// A Session is owned by a single UI goroutine and is not safe for concurrent
// mutation.
type Session struct {
	// User is the authenticated account.
	User models.User

	// Token is the signed session token issued at login.
	Token models.Token

	// StartedAt is the instant the session was opened.
	StartedAt time.Time

	// Document is the in-memory working copy of the user's topics and
	// study sessions. Mutations are applied here first, then persisted.
	Document models.Document
}

// UserID returns the id of the session's account.
func (s *Session) UserID() string {
	return s.User.UserID
}
