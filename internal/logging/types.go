package logging

import "time"

// #region event-type
// EventType enumerates audit event categories.
type EventType string

const (
	// EventProfileDefault marks a room whose profile inference fell through
	// to the default label. Not an error, but low confidence.
	EventProfileDefault EventType = "profile_default"
	// EventAliasHit marks a measured value found under a non-canonical key.
	EventAliasHit EventType = "alias_hit"
	// EventNoStandard marks a room that exhausted every matching tier.
	EventNoStandard EventType = "no_standard"
	// EventCatalogSkip marks a malformed catalog record excluded at load.
	EventCatalogSkip EventType = "catalog_skip"
)

// #endregion event-type

// #region entry
// AuditEntry is a single row for the audit_log table.
type AuditEntry struct {
	RunID     string
	Room      string
	Type      EventType
	Detail    string
	CreatedAt time.Time
}

// #endregion entry
