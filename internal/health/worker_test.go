package health

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/xiy/arrstack-mcp/internal/arr"
	"github.com/xiy/arrstack-mcp/internal/store"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

type captureSink struct {
	mu    sync.Mutex
	snaps []store.HealthSnapshot
}

func (s *captureSink) InsertHealthSnapshot(_ context.Context, rec store.HealthSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps = append(s.snaps, rec)
	return nil
}

func TestPollAll_RecordsEveryConfiguredService(t *testing.T) {
	t.Parallel()
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer healthy.Close()
	degraded := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"source":"IndexerStatusCheck","type":"warning","message":"Indexers unavailable"},{"source":"DownloadClientCheck","type":"error","message":"No download client is available"}]`))
	}))
	defer degraded.Close()

	reg := arr.NewRegistry(map[arr.Service]arr.Endpoint{
		arr.Sonarr: {URL: healthy.URL, APIKey: "k"},
		arr.Radarr: {URL: degraded.URL, APIKey: "k"},
	}, testLogger())

	sink := &captureSink{}
	pollAll(context.Background(), testLogger(), reg, sink)

	if len(sink.snaps) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(sink.snaps))
	}
	byService := make(map[string]store.HealthSnapshot, 2)
	for _, s := range sink.snaps {
		byService[s.Service] = s
	}

	sonarr := byService["sonarr"]
	if !sonarr.Healthy || sonarr.IssueCount != 0 || sonarr.Message != "" {
		t.Fatalf("unexpected sonarr snapshot: %+v", sonarr)
	}

	radarr := byService["radarr"]
	if radarr.Healthy || radarr.IssueCount != 2 {
		t.Fatalf("unexpected radarr snapshot: %+v", radarr)
	}
	if radarr.Message != "Indexers unavailable; No download client is available" {
		t.Fatalf("joined message = %q", radarr.Message)
	}
}

func TestProbe_UnreachableService(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	reg := arr.NewRegistry(map[arr.Service]arr.Endpoint{
		arr.Lidarr: {URL: srv.URL, APIKey: "k"},
	}, testLogger())

	sink := &captureSink{}
	pollAll(context.Background(), testLogger(), reg, sink)

	if len(sink.snaps) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(sink.snaps))
	}
	snap := sink.snaps[0]
	if snap.Healthy {
		t.Fatal("unreachable service must be recorded unhealthy")
	}
	if !strings.Contains(snap.Message, "lidarr") {
		t.Fatalf("message must carry the failure: %q", snap.Message)
	}
	if snap.CheckedAt.IsZero() {
		t.Fatal("checked_at not set")
	}
}

func TestPollAll_NilSink(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	reg := arr.NewRegistry(map[arr.Service]arr.Endpoint{
		arr.Sonarr: {URL: srv.URL, APIKey: "k"},
	}, testLogger())

	// Must not panic without a sink.
	pollAll(context.Background(), testLogger(), reg, nil)
}
