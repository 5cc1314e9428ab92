package progress

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by [ValidateSessionLog]. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoTopicSelected is returned when validation runs without a topic.
	ErrNoTopicSelected = errors.New("no topic selected")

	// ErrDeadlinePassed is returned when the topic's target date lies in
	// the past; no further sessions may be logged against it.
	ErrDeadlinePassed = errors.New("cannot log session - deadline has passed")

	// ErrInvalidDuration is returned when the candidate duration is not a
	// positive number of minutes.
	ErrInvalidDuration = errors.New("duration must be at least 1 minute")
)

// GoalExceededError is returned when a candidate session would push the
// logged total past the topic's goal. It carries the minute arithmetic so
// the caller can render guidance. Match with [errors.As].
type GoalExceededError struct {
	// PastMinutes is the total already logged against the topic.
	PastMinutes int
	// GoalMinutes is the goal converted to minutes.
	GoalMinutes int
	// RemainingMinutes is max(0, GoalMinutes-PastMinutes).
	RemainingMinutes int
}

func (e *GoalExceededError) Error() string {
	return fmt.Sprintf(
		"you've already logged %d minutes (%.1f hours); goal: %d minutes (%.1f hours); you can log up to %d more minutes",
		e.PastMinutes, float64(e.PastMinutes)/60,
		e.GoalMinutes, float64(e.GoalMinutes)/60,
		e.RemainingMinutes,
	)
}
