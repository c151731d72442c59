package store

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "activity.db"), logger)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestToolCalls_InsertAndRead(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	calls := []ToolCall{
		{CallID: "c1", ToolName: "sonarr_list_series", Service: "sonarr", Success: true, DurationMS: 42},
		{CallID: "c2", ToolName: "radarr_queue", Service: "radarr", Success: false, ErrorText: "radarr: unexpected status 401 Unauthorized", DurationMS: 7},
	}
	for _, c := range calls {
		if err := s.InsertToolCall(ctx, c); err != nil {
			t.Fatalf("InsertToolCall() error = %v", err)
		}
	}

	got, err := s.RecentToolCalls(ctx, 10)
	if err != nil {
		t.Fatalf("RecentToolCalls() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	// Newest first.
	if got[0].CallID != "c2" || got[1].CallID != "c1" {
		t.Fatalf("unexpected order: %q then %q", got[0].CallID, got[1].CallID)
	}
	if got[0].Success || !got[1].Success {
		t.Fatalf("success flags not preserved: %+v", got)
	}
	if got[0].ErrorText == "" {
		t.Fatal("error text lost on round trip")
	}
	if got[1].Service != "sonarr" || got[1].DurationMS != 42 {
		t.Fatalf("unexpected row: %+v", got[1])
	}
	if got[0].CreatedAt.IsZero() {
		t.Fatal("created_at not set")
	}
}

func TestRecentToolCalls_Limit(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := s.InsertToolCall(ctx, ToolCall{CallID: "x", ToolName: "sonarr_health", Service: "sonarr", Success: true}); err != nil {
			t.Fatalf("InsertToolCall() error = %v", err)
		}
	}
	got, err := s.RecentToolCalls(ctx, 3)
	if err != nil {
		t.Fatalf("RecentToolCalls() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
}

func TestHealthSnapshots_InsertAndRead(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.InsertHealthSnapshot(ctx, HealthSnapshot{Service: "lidarr", Healthy: false, IssueCount: 2, Message: "Indexer unavailable; Download client unreachable"}); err != nil {
		t.Fatalf("InsertHealthSnapshot() error = %v", err)
	}
	if err := s.InsertHealthSnapshot(ctx, HealthSnapshot{Service: "sonarr", Healthy: true}); err != nil {
		t.Fatalf("InsertHealthSnapshot() error = %v", err)
	}

	got, err := s.RecentHealthSnapshots(ctx, 10)
	if err != nil {
		t.Fatalf("RecentHealthSnapshots() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Service != "sonarr" || !got[0].Healthy {
		t.Fatalf("unexpected newest row: %+v", got[0])
	}
	if got[1].IssueCount != 2 || got[1].Healthy {
		t.Fatalf("unexpected oldest row: %+v", got[1])
	}
}

func TestStats(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	rows := []ToolCall{
		{CallID: "a", ToolName: "sonarr_queue", Service: "sonarr", Success: true, CreatedAt: now},
		{CallID: "b", ToolName: "sonarr_queue", Service: "sonarr", Success: false, CreatedAt: now},
		{CallID: "c", ToolName: "radarr_health", Service: "radarr", Success: true, CreatedAt: now.Add(-48 * time.Hour)},
	}
	for _, r := range rows {
		if err := s.InsertToolCall(ctx, r); err != nil {
			t.Fatalf("InsertToolCall() error = %v", err)
		}
	}

	st, err := s.Stats(ctx, now)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if st.TotalCalls != 3 {
		t.Fatalf("TotalCalls = %d, want 3", st.TotalCalls)
	}
	if st.FailedCalls != 1 {
		t.Fatalf("FailedCalls = %d, want 1", st.FailedCalls)
	}
	if st.Last24h != 2 {
		t.Fatalf("Last24h = %d, want 2", st.Last24h)
	}
}

func TestSplitSQLStatements(t *testing.T) {
	t.Parallel()
	got := splitSQLStatements("CREATE TABLE a (id INTEGER);\n\nCREATE INDEX i ON a (id);\n")
	if len(got) != 2 {
		t.Fatalf("expected 2 statements, got %d: %v", len(got), got)
	}
}
