package logging

// #region imports
import (
	"database/sql"
	"fmt"
	"time"

	"github.com/luxscale/go-engine/internal/catalog"
	"github.com/luxscale/go-engine/internal/compliance"
	"github.com/luxscale/go-engine/internal/params"
	"github.com/luxscale/go-engine/internal/profile"
)

// #endregion

// #region log-event
// LogEvent writes one audit entry to the audit_log table.
func LogEvent(db *sql.DB, entry AuditEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO audit_log (run_id, room, event_type, detail, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.RunID,
		nullIfEmpty(entry.Room),
		string(entry.Type),
		nullIfEmpty(entry.Detail),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log event: %w", err)
	}
	return nil
}

// #endregion log-event

// #region audit-run

// canonicalByCheck maps check output keys back to the canonical parameter
// names the alias resolver was asked for.
var canonicalByCheck = map[string]string{
	compliance.CheckLux:        params.AverageLux,
	compliance.CheckUniformity: params.Uniformity,
	compliance.CheckRa:         params.ColorRenderingRa,
}

// AuditRun derives and persists audit entries for a completed run:
// low-confidence default profiles, unmatched rooms, and measured values
// resolved through non-canonical keys.
func AuditRun(db *sql.DB, runID string, result compliance.ReportResult) error {
	for _, room := range result.Checks {
		if room.ProfileSource == profile.SourceDefault {
			err := LogEvent(db, AuditEntry{
				RunID:  runID,
				Room:   room.Room,
				Type:   EventProfileDefault,
				Detail: fmt.Sprintf("fell through to %q", room.UtilisationProfile),
			})
			if err != nil {
				return err
			}
		}

		if room.Status == compliance.StatusNoStandard {
			err := LogEvent(db, AuditEntry{
				RunID:  runID,
				Room:   room.Room,
				Type:   EventNoStandard,
				Detail: fmt.Sprintf("no standard for profile %q", room.UtilisationProfile),
			})
			if err != nil {
				return err
			}
		}

		for name, check := range room.Checks {
			canonical := canonicalByCheck[name]
			if check.Source == "" || check.Source == canonical {
				continue
			}
			err := LogEvent(db, AuditEntry{
				RunID:  runID,
				Room:   room.Room,
				Type:   EventAliasHit,
				Detail: fmt.Sprintf("%s resolved from key %q", canonical, check.Source),
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// AuditCatalogSkips records catalog records excluded at load time. Skips are
// not tied to a room, only to the run that observed them.
func AuditCatalogSkips(db *sql.DB, runID string, skipped []catalog.SkippedRecord) error {
	for _, skip := range skipped {
		err := LogEvent(db, AuditEntry{
			RunID:  runID,
			Type:   EventCatalogSkip,
			Detail: fmt.Sprintf("record %d (ref_no %q): %s", skip.Index, skip.RefNo, skip.Reason),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// #endregion audit-run

// #region list-events

// ListEvents returns audit entries for one run in insertion order.
func ListEvents(db *sql.DB, runID string) ([]AuditEntry, error) {
	rows, err := db.Query(
		`SELECT run_id, room, event_type, detail, created_at
		 FROM audit_log WHERE run_id = ? ORDER BY id ASC`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		var room, detail sql.NullString
		var eventType, createdStr string
		if err := rows.Scan(&e.RunID, &room, &eventType, &detail, &createdStr); err != nil {
			return nil, fmt.Errorf("scan audit row: %w", err)
		}
		e.Room = room.String
		e.Detail = detail.String
		e.Type = EventType(eventType)
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion list-events

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
