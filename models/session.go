package models

// Session is one logged, timed study interval against a topic.
// Sessions are immutable once created and are destroyed only as a
// cascade of their owning topic's deletion.
type Session struct {
	// ID is the unique, time-ordered identifier assigned at creation.
	ID string `json:"id"`

	// TopicID references the owning topic. Always resolves to a live
	// topic in the same document; cascading delete enforces this.
	TopicID string `json:"topicId"`

	// Duration of the interval in whole minutes, always >= 1.
	Duration int `json:"duration"`

	// Notes is optional free text about what was studied.
	Notes string `json:"notes"`

	// Date is the calendar day of the session in YYYY-MM-DD form.
	// Defaults to "today" when not supplied at logging time.
	Date string `json:"date"`
}
