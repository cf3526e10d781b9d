package records

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements LeadRepository and ReportRepository on a single
// SQLite database. Structured snapshots (the business profile and projection
// attached to a record) are stored as JSON text columns; identifiers are
// UUIDs assigned on insert, never supplied by callers.
type SQLiteStore struct {
	db *sqlx.DB
	mu sync.Mutex
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS leads (
	lead_id      TEXT PRIMARY KEY,
	profile      TEXT NOT NULL DEFAULT '{}',
	source       TEXT NOT NULL DEFAULT '',
	status       TEXT NOT NULL DEFAULT 'new',
	notes        TEXT NOT NULL DEFAULT '[]',
	created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS generated_reports (
	report_id    TEXT PRIMARY KEY,
	vertical     TEXT NOT NULL DEFAULT '',
	filename     TEXT NOT NULL DEFAULT '',
	lead_data    TEXT NOT NULL DEFAULT '{}',
	roas_results TEXT NOT NULL DEFAULT '{}',
	generated_at TEXT NOT NULL
);
`

func OpenSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// timeToString serializes with a fixed-width fraction. RFC3339Nano trims
// trailing zeros, which breaks the lexicographic ORDER BY for timestamps in
// the same second ('Z' sorts after '.').
func timeToString(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000000Z07:00")
}

func marshalJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// --- LeadRepository ---

func (s *SQLiteStore) InsertLead(lead LeadRecord) (LeadRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead.ID = uuid.NewString()
	if lead.Timestamp.IsZero() {
		lead.Timestamp = time.Now().UTC()
	}
	if lead.Status == "" {
		lead.Status = LeadStatusNew
	}
	if lead.Notes == nil {
		lead.Notes = []string{}
	}

	_, err := s.db.Exec(`INSERT INTO leads (lead_id, profile, source, status, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		lead.ID,
		marshalJSON(lead.BusinessProfile),
		lead.Source,
		lead.Status,
		marshalJSON(lead.Notes),
		timeToString(lead.Timestamp),
	)
	if err != nil {
		return LeadRecord{}, fmt.Errorf("insert lead: %w", err)
	}
	return lead, nil
}

func (s *SQLiteStore) ListLeads() ([]LeadRecord, error) {
	rows, err := s.db.Query(`SELECT lead_id, profile, source, status, notes, created_at
		FROM leads ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	out := []LeadRecord{}
	for rows.Next() {
		var l LeadRecord
		var profileJSON, notesJSON, createdAt string
		if err := rows.Scan(&l.ID, &profileJSON, &l.Source, &l.Status, &notesJSON, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(profileJSON), &l.BusinessProfile); err != nil {
			return nil, fmt.Errorf("decode lead %s profile: %w", l.ID, err)
		}
		_ = json.Unmarshal([]byte(notesJSON), &l.Notes)
		l.Timestamp, _ = time.Parse(time.RFC3339Nano, createdAt)
		out = append(out, l)
	}
	return out, rows.Err()
}

// --- ReportRepository ---

func (s *SQLiteStore) InsertReport(rec GeneratedReportRecord) (GeneratedReportRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = uuid.NewString()
	if rec.GeneratedAt.IsZero() {
		rec.GeneratedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(`INSERT INTO generated_reports (report_id, vertical, filename, lead_data, roas_results, generated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Vertical,
		rec.Filename,
		marshalJSON(rec.Lead),
		marshalJSON(rec.Projection),
		timeToString(rec.GeneratedAt),
	)
	if err != nil {
		return GeneratedReportRecord{}, fmt.Errorf("insert report record: %w", err)
	}
	return rec, nil
}

func (s *SQLiteStore) ListReports() ([]GeneratedReportRecord, error) {
	rows, err := s.db.Query(`SELECT report_id, vertical, filename, lead_data, roas_results, generated_at
		FROM generated_reports ORDER BY generated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list report records: %w", err)
	}
	defer rows.Close()

	out := []GeneratedReportRecord{}
	for rows.Next() {
		rec, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) GetReport(id string) (GeneratedReportRecord, bool, error) {
	rows, err := s.db.Query(`SELECT report_id, vertical, filename, lead_data, roas_results, generated_at
		FROM generated_reports WHERE report_id = ?`, id)
	if err != nil {
		return GeneratedReportRecord{}, false, fmt.Errorf("get report record: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return GeneratedReportRecord{}, false, rows.Err()
	}
	rec, err := scanReport(rows)
	if err != nil {
		return GeneratedReportRecord{}, false, err
	}
	return rec, true, nil
}

func (s *SQLiteStore) DeleteReport(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM generated_reports WHERE report_id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete report record: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (s *SQLiteStore) DeleteAllReports() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM generated_reports`)
	if err != nil {
		return 0, fmt.Errorf("delete report records: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func scanReport(rows *sql.Rows) (GeneratedReportRecord, error) {
	var rec GeneratedReportRecord
	var leadJSON, roasJSON, generatedAt string
	if err := rows.Scan(&rec.ID, &rec.Vertical, &rec.Filename, &leadJSON, &roasJSON, &generatedAt); err != nil {
		return GeneratedReportRecord{}, err
	}
	if err := json.Unmarshal([]byte(leadJSON), &rec.Lead); err != nil {
		return GeneratedReportRecord{}, fmt.Errorf("decode record %s lead data: %w", rec.ID, err)
	}
	if err := json.Unmarshal([]byte(roasJSON), &rec.Projection); err != nil {
		return GeneratedReportRecord{}, fmt.Errorf("decode record %s projection: %w", rec.ID, err)
	}
	rec.GeneratedAt, _ = time.Parse(time.RFC3339Nano, generatedAt)
	return rec, nil
}

// Compile-time interface checks.
var (
	_ LeadRepository   = (*SQLiteStore)(nil)
	_ ReportRepository = (*SQLiteStore)(nil)
)
