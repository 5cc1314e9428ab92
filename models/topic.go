package models

import "time"

// Category is a fixed learning-subject category.
type Category string

const (
	CategoryProgramming Category = "Programming"
	CategoryDesign      Category = "Design"
	CategoryLanguages   Category = "Languages"
	CategoryMathematics Category = "Mathematics"
	CategoryScience     Category = "Science"
	CategoryBusiness    Category = "Business"
	CategoryOther       Category = "Other"
)

// Categories returns the exhaustive ordered set of selectable categories.
func Categories() []Category {
	return []Category{
		CategoryProgramming,
		CategoryDesign,
		CategoryLanguages,
		CategoryMathematics,
		CategoryScience,
		CategoryBusiness,
		CategoryOther,
	}
}

// Priority is the subjective importance of a topic.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Topic is a learning subject with an optional goal and deadline.
// A topic is owned by exactly one user; ownership is carried by the
// per-user document it is stored in, not by a field on the topic itself.
type Topic struct {
	// ID is the unique, time-ordered identifier assigned at creation.
	ID string `json:"id"`

	// Name is the human-readable subject name. Never empty.
	Name string `json:"name"`

	// Category is one of the fixed set returned by [Categories],
	// or empty when unset.
	Category Category `json:"category"`

	// Priority defaults to [PriorityMedium] when absent at creation.
	Priority Priority `json:"priority"`

	// TargetDate is the optional deadline. The zero value means no deadline.
	// Compared against the current instant with full timestamp precision:
	// a date without a time component expires at midnight.
	TargetDate *time.Time `json:"targetDate,omitempty"`

	// GoalHours is the target total study hours. Zero means no goal:
	// the topic can never complete and session logging is unbounded.
	GoalHours float64 `json:"goalHours"`

	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
}
