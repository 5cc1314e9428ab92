package models

import "time"

// Document is the per-user persisted unit: the full topic and session
// collections of one owner plus bookkeeping timestamps. The persistence
// layer stores one document per user id and overwrites it as a whole on
// every save.
type Document struct {
	Topics   []Topic   `json:"topics"`
	Sessions []Session `json:"sessions"`

	// LastUpdated is stamped on every save.
	LastUpdated time.Time `json:"lastUpdated,omitempty"`

	// MigratedAt is set once, when the document was populated from the
	// legacy un-keyed global document. Zero otherwise.
	MigratedAt time.Time `json:"migratedAt,omitempty"`
}

// Empty reports whether the document carries no topics and no sessions.
// An empty per-user slot makes the owner eligible for legacy migration.
func (d Document) Empty() bool {
	return len(d.Topics) == 0 && len(d.Sessions) == 0
}
