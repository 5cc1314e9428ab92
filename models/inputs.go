package models

import "time"

// RegisterInput carries the fields collected by the registration form.
// Plaintext passwords live only in this struct and are hashed before any
// persistence happens.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
	Age             int
	Gender          string
}

// LoginInput carries the credentials collected by the login form.
type LoginInput struct {
	Email    string
	Password string
}

// AddTopicInput carries the fields collected by the new-topic form.
type AddTopicInput struct {
	Name       string
	Category   Category
	Priority   Priority
	TargetDate *time.Time
	GoalHours  float64
}

// UpdateTopicInput is a partial update of an existing topic. Nil fields are
// left untouched by the merge.
type UpdateTopicInput struct {
	TopicID    string
	Name       *string
	Category   *Category
	Priority   *Priority
	TargetDate *time.Time
	GoalHours  *float64
}

// LogSessionInput carries the fields collected by the session-logging form.
// Date defaults to the current day when empty.
type LogSessionInput struct {
	TopicID  string
	Duration int
	Notes    string
	Date     string
}
