// Package progress derives completion, deadline and remaining-capacity
// state for a topic from its raw session log. Every function is pure:
// the caller supplies the topic, the sessions and the current instant,
// and nothing is cached or mutated.
package progress

import (
	"math"
	"time"

	"github.com/MKhiriev/go-learn-tracker/models"
)

// Compute derives the full [models.Progress] for topic from sessions.
//
// Only sessions whose TopicID matches topic.ID contribute; passing the
// whole session collection is safe.
//
// Rules:
//   - TotalHours is the minute sum divided by 60, rounded to one decimal
//     place for display. Percentage math uses the unrounded total.
//   - PercentComplete is 0 when GoalHours <= 0, otherwise
//     min(100, total/goal*100).
//   - IsCompleted requires a positive goal that has been reached.
//   - IsDeadlineExceeded compares the target date against now with full
//     timestamp precision: a target date without a time component expires
//     at midnight of that day.
//   - IsActive is the complement of completed-or-exceeded.
func Compute(topic models.Topic, sessions []models.Session, now time.Time) models.Progress {
	var totalMinutes int
	var count int
	for _, s := range sessions {
		if s.TopicID != topic.ID {
			continue
		}
		totalMinutes += s.Duration
		count++
	}

	totalHours := float64(totalMinutes) / 60

	var percent float64
	if topic.GoalHours > 0 {
		percent = math.Min(totalHours/topic.GoalHours*100, 100)
	}

	completed := topic.GoalHours > 0 && totalHours >= topic.GoalHours
	exceeded := topic.TargetDate != nil && topic.TargetDate.Before(now)

	return models.Progress{
		TotalHours:         math.Round(totalHours*10) / 10,
		SessionCount:       count,
		PercentComplete:    percent,
		IsCompleted:        completed,
		IsDeadlineExceeded: exceeded,
		IsActive:           !completed && !exceeded,
	}
}

// ValidateSessionLog checks whether a candidate session of
// durationMinutes may be logged against topic given its past sessions.
//
// It is an advisory pre-submission guard for the UI, not a security
// boundary: it runs in the same trust domain as the data it protects.
//
// Returns nil when the log is allowed, otherwise one of:
//   - [ErrNoTopicSelected] when topic is nil
//   - [ErrDeadlinePassed] when the topic's deadline has been exceeded
//   - [ErrInvalidDuration] when durationMinutes < 1
//   - a [*GoalExceededError] when the candidate would push the logged
//     total past a positive goal
//
// An approaching deadline never blocks logging; only an exceeded one does.
// A topic without a goal has no numeric cap on session duration.
func ValidateSessionLog(topic *models.Topic, pastSessions []models.Session, durationMinutes int, now time.Time) error {
	if topic == nil {
		return ErrNoTopicSelected
	}

	if p := Compute(*topic, pastSessions, now); p.IsDeadlineExceeded {
		return ErrDeadlinePassed
	}

	if durationMinutes < 1 {
		return ErrInvalidDuration
	}

	if topic.GoalHours <= 0 {
		return nil
	}

	pastMinutes := PastMinutes(*topic, pastSessions)
	goalMinutes := int(topic.GoalHours * 60)
	if pastMinutes+durationMinutes > goalMinutes {
		return &GoalExceededError{
			PastMinutes:      pastMinutes,
			GoalMinutes:      goalMinutes,
			RemainingMinutes: max(0, goalMinutes-pastMinutes),
		}
	}

	return nil
}

// PastMinutes sums the minutes already logged against topic.
func PastMinutes(topic models.Topic, sessions []models.Session) int {
	var total int
	for _, s := range sessions {
		if s.TopicID == topic.ID {
			total += s.Duration
		}
	}
	return total
}

// Remaining reports how many minutes may still be logged against topic.
// The second return value is false when the topic has no goal, meaning
// remaining capacity is unbounded and the minute count is meaningless.
func Remaining(topic models.Topic, sessions []models.Session) (int, bool) {
	if topic.GoalHours <= 0 {
		return 0, false
	}

	goalMinutes := int(topic.GoalHours * 60)
	return max(0, goalMinutes-PastMinutes(topic, sessions)), true
}
