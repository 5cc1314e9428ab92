package models

// Progress holds the derived completion state of a single topic.
// It is recomputed on demand from the topic and its sessions and is
// never persisted.
type Progress struct {
	// TotalHours is the sum of session durations converted to hours,
	// rounded to one decimal place for display. Percentage math uses
	// the unrounded total.
	TotalHours float64 `json:"totalHours"`

	// SessionCount is the number of sessions logged against the topic.
	SessionCount int `json:"sessions"`

	// PercentComplete is 0..100, capped at 100. Always 0 when the topic
	// has no goal hours, regardless of hours logged.
	PercentComplete float64 `json:"progress"`

	// IsCompleted reports whether a positive goal has been reached.
	IsCompleted bool `json:"isCompleted"`

	// IsDeadlineExceeded reports whether the target date lies strictly
	// before the current instant.
	IsDeadlineExceeded bool `json:"isDeadlineExceeded"`

	// IsActive is true while the topic is neither completed nor past
	// its deadline.
	IsActive bool `json:"isActive"`
}
