// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-learn-tracker/models"
)

// AuthService manages the account lifecycle: registration, credential
// verification, session-token issuance and logout bookkeeping.
type AuthService interface {
	// Register creates a new account from the registration form input and
	// opens a session for it.
	Register(ctx context.Context, input models.RegisterInput) (*Session, error)

	// Login verifies the credentials and opens a session.
	Login(ctx context.Context, input models.LoginInput) (*Session, error)

	// Logout clears the account's login timestamp. The session is unusable
	// afterwards.
	Logout(ctx context.Context, session *Session) error

	// ParseToken validates a raw session-token string and returns its
	// decoded form.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// LearningService owns all reads and mutations of a session's learning
// document: topics, sessions and the progress derived from them.
//
// Every mutation is applied to the in-memory document first and then
// persisted as a whole. A persistence failure never rolls the in-memory
// change back; it is logged and surfaced on the next explicit save.
type LearningService interface {
	// LoadDocument populates the session's document from storage. A load
	// failure degrades to an empty document so the UI always starts.
	LoadDocument(ctx context.Context, session *Session) error

	AddTopic(ctx context.Context, session *Session, input models.AddTopicInput) (models.Topic, error)
	UpdateTopic(ctx context.Context, session *Session, input models.UpdateTopicInput) (models.Topic, error)

	// DeleteTopic removes the topic and, as a cascade, every study session
	// logged against it.
	DeleteTopic(ctx context.Context, session *Session, topicID string) error

	// LogSession records a timed study interval against a topic after
	// running the domain guards (deadline, goal capacity, duration).
	LogSession(ctx context.Context, session *Session, input models.LogSessionInput) (models.Session, error)

	// Progress derives the current progress snapshot of one topic.
	Progress(session *Session, topicID string) (models.Progress, error)

	// RemainingMinutes reports the unlogged goal capacity of a topic.
	// The second value is false when the topic has no goal.
	RemainingMinutes(session *Session, topicID string) (int, bool)

	// FilteredTopics narrows the topic list by category and a
	// case-insensitive name query, preserving stored order.
	FilteredTopics(session *Session, category, query string) []models.Topic

	// ActiveTopicCount counts topics that are neither completed nor past
	// their deadline.
	ActiveTopicCount(session *Session, now time.Time) int

	// TotalStudyHours sums the logged time of all topics, in hours.
	TotalStudyHours(session *Session) float64
}

// SessionTimer tracks the wall-clock duration of one login session and
// forces a logout when the configured ceiling is reached. The timer is
// idle until Start is called.
type SessionTimer interface {
	// Start begins counting. onTick is invoked on every interval with the
	// elapsed duration; onCeiling is invoked exactly once when the elapsed
	// time reaches the ceiling. Both callbacks run on the timer goroutine.
	Start(ctx context.Context, onTick func(elapsed time.Duration), onCeiling func(elapsed time.Duration))

	// Stop halts the timer and blocks until its goroutine has exited.
	// Safe to call when the timer is not running.
	Stop()

	// Elapsed reports the time since Start. Zero when never started.
	Elapsed() time.Duration
}
