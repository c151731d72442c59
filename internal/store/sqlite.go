package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// ToolCall captures one MCP tool invocation handled by the server. Rows are
// written by the dispatch middleware and read only by the admin dashboard;
// the request path never consults them.
type ToolCall struct {
	ID         int64
	CallID     string
	ToolName   string
	Service    string
	Success    bool
	ErrorText  string
	DurationMS int64
	CreatedAt  time.Time
}

// HealthSnapshot is one observation of a remote service's /health state.
type HealthSnapshot struct {
	ID         int64
	Service    string
	Healthy    bool
	IssueCount int
	Message    string
	CheckedAt  time.Time
}

// Stats summarizes activity counters for admin dashboards.
type Stats struct {
	TotalCalls  int64
	FailedCalls int64
	Last24h     int64
}

// SQLiteStore is a SQLite-backed activity log.
type SQLiteStore struct {
	db     *sql.DB
	logger *log.Logger
}

// OpenSQLite opens and initializes the activity store.
func OpenSQLite(ctx context.Context, dbPath string, logger *log.Logger) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &SQLiteStore{db: db, logger: logger}
	if err := s.init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) init(ctx context.Context) error {
	for _, stmt := range splitSQLStatements(schemaSQL) {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("run schema stmt: %w", err)
		}
	}
	return nil
}

func splitSQLStatements(s string) []string {
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p+";")
	}
	return out
}

// InsertToolCall stores one tool invocation for admin observability.
func (s *SQLiteStore) InsertToolCall(ctx context.Context, rec ToolCall) error {
	ts := rec.CreatedAt.UTC()
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	success := 0
	if rec.Success {
		success = 1
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO tool_calls (
		call_id, tool_name, service, success, error_text, duration_ms, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		strings.TrimSpace(rec.CallID),
		strings.TrimSpace(rec.ToolName),
		strings.TrimSpace(rec.Service),
		success,
		strings.TrimSpace(rec.ErrorText),
		rec.DurationMS,
		ts.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert tool call: %w", err)
	}
	return nil
}

// RecentToolCalls returns the newest rows first.
func (s *SQLiteStore) RecentToolCalls(ctx context.Context, limit int) ([]ToolCall, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, call_id, tool_name, service, success, error_text, duration_ms, created_at
FROM tool_calls ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query tool calls: %w", err)
	}
	defer rows.Close()

	out := make([]ToolCall, 0, limit)
	for rows.Next() {
		var rec ToolCall
		var success int
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.CallID, &rec.ToolName, &rec.Service, &success, &rec.ErrorText, &rec.DurationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("scan tool call: %w", err)
		}
		rec.Success = success != 0
		rec.CreatedAt = parseTime(createdAt)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// InsertHealthSnapshot stores one health observation.
func (s *SQLiteStore) InsertHealthSnapshot(ctx context.Context, rec HealthSnapshot) error {
	ts := rec.CheckedAt.UTC()
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	healthy := 0
	if rec.Healthy {
		healthy = 1
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO health_checks (
		service, healthy, issue_count, message, checked_at
	) VALUES (?, ?, ?, ?, ?)`,
		strings.TrimSpace(rec.Service),
		healthy,
		rec.IssueCount,
		strings.TrimSpace(rec.Message),
		ts.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert health snapshot: %w", err)
	}
	return nil
}

// RecentHealthSnapshots returns the newest rows first.
func (s *SQLiteStore) RecentHealthSnapshots(ctx context.Context, limit int) ([]HealthSnapshot, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, service, healthy, issue_count, message, checked_at
FROM health_checks ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query health snapshots: %w", err)
	}
	defer rows.Close()

	out := make([]HealthSnapshot, 0, limit)
	for rows.Next() {
		var rec HealthSnapshot
		var healthy int
		var checkedAt string
		if err := rows.Scan(&rec.ID, &rec.Service, &healthy, &rec.IssueCount, &rec.Message, &checkedAt); err != nil {
			return nil, fmt.Errorf("scan health snapshot: %w", err)
		}
		rec.Healthy = healthy != 0
		rec.CheckedAt = parseTime(checkedAt)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Stats returns activity counters.
func (s *SQLiteStore) Stats(ctx context.Context, now time.Time) (Stats, error) {
	var st Stats
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM tool_calls`).Scan(&st.TotalCalls); err != nil {
		return st, err
	}
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM tool_calls WHERE success = 0`).Scan(&st.FailedCalls); err != nil {
		return st, err
	}
	cutoff := now.UTC().Add(-24 * time.Hour).Format(time.RFC3339Nano)
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM tool_calls WHERE created_at >= ?`, cutoff).Scan(&st.Last24h); err != nil {
		return st, err
	}
	return st, nil
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
