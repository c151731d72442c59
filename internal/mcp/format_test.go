package mcp

import (
	"fmt"
	"strings"
	"testing"

	"github.com/xiy/arrstack-mcp/internal/arr"
)

func TestSizeString(t *testing.T) {
	t.Parallel()
	cases := []struct {
		bytes float64
		want  string
	}{
		{0, "0 B"},
		{-5, "0 B"},
		{1024, "1.0 KiB"},
		{1073741824, "1.0 GiB"},
	}
	for _, tc := range cases {
		if got := sizeString(tc.bytes); got != tc.want {
			t.Fatalf("sizeString(%v) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	if got := truncate("short", 70); got != "short" {
		t.Fatalf("truncate() = %q", got)
	}
	long := strings.Repeat("x", 80)
	got := truncate(long, 70)
	if len([]rune(got)) != 70 || !strings.HasSuffix(got, "...") {
		t.Fatalf("truncate() = %q (len %d)", got, len([]rune(got)))
	}
}

func TestTitleField(t *testing.T) {
	t.Parallel()
	cases := []struct {
		m    map[string]any
		want string
	}{
		{map[string]any{"title": "Breaking Bad"}, "Breaking Bad"},
		{map[string]any{"artistName": "Radiohead"}, "Radiohead"},
		{map[string]any{"authorName": "Brandon Sanderson"}, "Brandon Sanderson"},
		{map[string]any{"name": "fallback"}, "fallback"},
		{map[string]any{"title": "wins", "name": "loses"}, "wins"},
		{map[string]any{}, "(untitled)"},
	}
	for _, tc := range cases {
		if got := titleField(tc.m); got != tc.want {
			t.Fatalf("titleField(%v) = %q, want %q", tc.m, got, tc.want)
		}
	}
}

func TestRenderQueue(t *testing.T) {
	t.Parallel()
	page := arr.QueuePage{
		TotalRecords: 2,
		Records: []arr.QueueItem{
			{ID: 1, Title: "Show S01E01", Status: "downloading", Size: 1073741824, SizeLeft: 536870912, TimeLeft: "00:12:00", Indexer: "NZBgeek"},
			{ID: 2, Title: "Movie", Status: "queued"},
		},
	}
	got := renderQueue(arr.Sonarr, page)
	if !strings.Contains(got, "sonarr queue (2 total):") {
		t.Fatalf("missing header: %q", got)
	}
	if !strings.Contains(got, "512 MiB of 1.0 GiB left") {
		t.Fatalf("missing size rendering: %q", got)
	}
	if !strings.Contains(got, "eta 00:12:00") || !strings.Contains(got, "via NZBgeek") {
		t.Fatalf("missing eta/indexer: %q", got)
	}

	empty := renderQueue(arr.Radarr, arr.QueuePage{})
	if !strings.Contains(empty, "(empty)") {
		t.Fatalf("empty queue not marked: %q", empty)
	}
}

func TestRenderHealth(t *testing.T) {
	t.Parallel()
	if got := renderHealth(arr.Sonarr, nil); got != "sonarr: no health issues" {
		t.Fatalf("renderHealth(nil) = %q", got)
	}
	checks := []arr.HealthCheck{
		{Source: "IndexerStatusCheck", Type: "warning", Message: "Indexers unavailable due to failures"},
	}
	got := renderHealth(arr.Lidarr, checks)
	if !strings.Contains(got, "lidarr health issues (1):") || !strings.Contains(got, "[warning] IndexerStatusCheck:") {
		t.Fatalf("renderHealth() = %q", got)
	}
}

func TestRenderCalendar_NestedSeriesTitle(t *testing.T) {
	t.Parallel()
	items := []map[string]any{
		{
			"title":      "Ozymandias",
			"airDateUtc": "2025-01-05T02:00:00Z",
			"series":     map[string]any{"title": "Breaking Bad"},
		},
		{"title": "Dune", "releaseDate": "2025-03-01"},
	}
	got := renderCalendar(arr.Sonarr, items)
	if !strings.Contains(got, "Breaking Bad - Ozymandias") {
		t.Fatalf("series title not prefixed: %q", got)
	}
	if !strings.Contains(got, "2025-03-01  Dune") {
		t.Fatalf("release date missing: %q", got)
	}
}

func TestRenderItems_Cap(t *testing.T) {
	t.Parallel()
	items := make([]map[string]any, maxListLines+10)
	for i := range items {
		items[i] = map[string]any{"title": fmt.Sprintf("item %d", i)}
	}
	got := renderItems("stuff", items, titleField)
	if !strings.Contains(got, "... and 10 more") {
		t.Fatalf("cap marker missing: %q", got)
	}
	if strings.Count(got, "\n") > maxListLines+2 {
		t.Fatalf("too many lines rendered: %d", strings.Count(got, "\n"))
	}
}

func TestRenderRootFolders(t *testing.T) {
	t.Parallel()
	folders := []arr.RootFolder{
		{ID: 1, Path: "/tv", Accessible: true, FreeSpace: 1099511627776},
		{ID: 2, Path: "/mnt/gone", Accessible: false},
	}
	got := renderRootFolders(arr.Sonarr, folders)
	if !strings.Contains(got, "/tv - accessible, 1.0 TiB free") {
		t.Fatalf("accessible folder rendering: %q", got)
	}
	if !strings.Contains(got, "/mnt/gone - inaccessible") {
		t.Fatalf("inaccessible folder rendering: %q", got)
	}
}

func TestCommandResult(t *testing.T) {
	t.Parallel()
	res := commandResult(arr.CommandResponse{ID: 99, Name: "SeriesSearch", Status: "queued"})
	text := firstText(res)
	if text != "Search triggered. Command ID: 99 (SeriesSearch, status queued)" {
		t.Fatalf("commandResult text = %q", text)
	}
}
