package store

// #region imports
import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/luxscale/go-engine/internal/compliance"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS compliance_runs (
	run_id       TEXT PRIMARY KEY,
	project_name TEXT,
	source_file  TEXT,
	overall      TEXT NOT NULL,
	total_rooms  INTEGER NOT NULL,
	passed       INTEGER NOT NULL,
	failed       INTEGER NOT NULL,
	no_standard  INTEGER NOT NULL,
	pass_rate    REAL NOT NULL,
	report_json  TEXT,
	created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS room_checks (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id       TEXT NOT NULL,
	room         TEXT NOT NULL,
	status       TEXT NOT NULL,
	match_tier   INTEGER,
	result_json  TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES compliance_runs(run_id)
);

CREATE TABLE IF NOT EXISTS audit_log (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id       TEXT NOT NULL,
	room         TEXT,
	event_type   TEXT NOT NULL,
	detail       TEXT,
	created_at   TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES compliance_runs(run_id)
);
`

// #endregion schema

// #region run-record

// RunRecord is one persisted compliance run.
type RunRecord struct {
	RunID       string
	ProjectName string
	SourceFile  string
	Overall     compliance.Overall
	Summary     compliance.Summary
	ReportJSON  string
	CreatedAt   time.Time
	Rooms       []compliance.RoomResult
}

// #endregion run-record

// #region store-struct

// Store persists compliance runs in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion store-struct

// #region save-run

// SaveRun persists a report result and its per-room rows atomically.
// reportJSON is the raw extracted report, kept for replay.
func (s *Store) SaveRun(projectName, sourceFile string, reportJSON []byte, result compliance.ReportResult) (RunRecord, error) {
	rec := RunRecord{
		RunID:       uuid.New().String(),
		ProjectName: projectName,
		SourceFile:  sourceFile,
		Overall:     result.OverallCompliance,
		Summary:     result.Summary,
		ReportJSON:  string(reportJSON),
		CreatedAt:   time.Now().UTC(),
		Rooms:       result.Checks,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return RunRecord{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO compliance_runs
		 (run_id, project_name, source_file, overall, total_rooms, passed, failed, no_standard, pass_rate, report_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID,
		nullIfEmpty(rec.ProjectName),
		nullIfEmpty(rec.SourceFile),
		string(rec.Overall),
		rec.Summary.TotalRooms,
		rec.Summary.Passed,
		rec.Summary.Failed,
		rec.Summary.NoStandardFound,
		rec.Summary.PassRate,
		nullIfEmpty(rec.ReportJSON),
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("insert run: %w", err)
	}

	for _, room := range result.Checks {
		resultJSON, err := json.Marshal(room)
		if err != nil {
			return RunRecord{}, fmt.Errorf("marshal room result: %w", err)
		}
		_, err = tx.Exec(
			`INSERT INTO room_checks (run_id, room, status, match_tier, result_json)
			 VALUES (?, ?, ?, ?, ?)`,
			rec.RunID, room.Room, string(room.Status), room.MatchTier, string(resultJSON),
		)
		if err != nil {
			return RunRecord{}, fmt.Errorf("insert room check: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return RunRecord{}, fmt.Errorf("commit: %w", err)
	}
	return rec, nil
}

// #endregion save-run

// #region get-run

// GetRun retrieves a run and its room results by ID.
func (s *Store) GetRun(runID string) (RunRecord, error) {
	rec, err := s.scanRun(s.db.QueryRow(
		`SELECT run_id, project_name, source_file, overall, total_rooms, passed, failed, no_standard, pass_rate, report_json, created_at
		 FROM compliance_runs WHERE run_id = ?`, runID,
	))
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: %w", runID, err)
	}

	rows, err := s.db.Query(
		`SELECT result_json FROM room_checks WHERE run_id = ? ORDER BY id ASC`, runID,
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("query room checks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var resultJSON string
		if err := rows.Scan(&resultJSON); err != nil {
			return RunRecord{}, fmt.Errorf("scan room check: %w", err)
		}
		var room compliance.RoomResult
		if err := json.Unmarshal([]byte(resultJSON), &room); err != nil {
			return RunRecord{}, fmt.Errorf("unmarshal room result: %w", err)
		}
		rec.Rooms = append(rec.Rooms, room)
	}
	return rec, rows.Err()
}

// LatestRun returns the most recently saved run with its room results.
func (s *Store) LatestRun() (RunRecord, error) {
	var runID string
	err := s.db.QueryRow(
		`SELECT run_id FROM compliance_runs ORDER BY created_at DESC LIMIT 1`,
	).Scan(&runID)
	if err != nil {
		return RunRecord{}, fmt.Errorf("latest run: %w", err)
	}
	return s.GetRun(runID)
}

// ListRuns returns the most recent runs without room detail.
func (s *Store) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, project_name, source_file, overall, total_rooms, passed, failed, no_standard, pass_rate, report_json, created_at
		 FROM compliance_runs ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		rec, err := s.scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion get-run

// #region scan

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Store) scanRun(row rowScanner) (RunRecord, error) {
	var rec RunRecord
	var projectName, sourceFile, reportJSON sql.NullString
	var overall, createdStr string

	err := row.Scan(
		&rec.RunID, &projectName, &sourceFile, &overall,
		&rec.Summary.TotalRooms, &rec.Summary.Passed, &rec.Summary.Failed,
		&rec.Summary.NoStandardFound, &rec.Summary.PassRate,
		&reportJSON, &createdStr,
	)
	if err != nil {
		return RunRecord{}, err
	}

	rec.ProjectName = projectName.String
	rec.SourceFile = sourceFile.String
	rec.ReportJSON = reportJSON.String
	rec.Overall = compliance.Overall(overall)
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return rec, nil
}

// #endregion scan

// #region helpers

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
