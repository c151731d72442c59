package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xiy/arrstack-mcp/internal/arr"
)

const maxListLines = 50

// jsonResult pretty-prints v as the tool's text payload.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// Accessors for the raw-map domain entities. Upstream shapes are trusted,
// not validated; missing fields simply render as zero values.

func strField(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}

func intField(m map[string]any, key string) int64 {
	v, _ := m[key].(float64)
	return int64(v)
}

func boolField(m map[string]any, key string) bool {
	v, _ := m[key].(bool)
	return v
}

// titleField handles the name/title split across family vocabularies.
func titleField(m map[string]any) string {
	for _, key := range []string{"title", "artistName", "authorName", "name"} {
		if v := strField(m, key); v != "" {
			return v
		}
	}
	return "(untitled)"
}

func sizeString(bytes float64) string {
	if bytes <= 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(bytes))
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

// renderItems renders a capped list of domain entities, one per line.
func renderItems(header string, items []map[string]any, line func(map[string]any) string) string {
	lines := make([]string, 0, len(items)+2)
	lines = append(lines, fmt.Sprintf("%s (%d):", header, len(items)))
	for i, item := range items {
		if i >= maxListLines {
			lines = append(lines, fmt.Sprintf("  ... and %d more", len(items)-maxListLines))
			break
		}
		lines = append(lines, "  "+line(item))
	}
	if len(items) == 0 {
		lines = append(lines, "  (empty)")
	}
	return strings.Join(lines, "\n")
}

func renderQueue(service arr.Service, page arr.QueuePage) string {
	lines := make([]string, 0, len(page.Records)+2)
	lines = append(lines, fmt.Sprintf("%s queue (%d total):", service, page.TotalRecords))
	for _, rec := range page.Records {
		line := fmt.Sprintf("  [%d] %s - %s (%s of %s left)",
			rec.ID, truncate(rec.Title, 70), rec.Status,
			sizeString(rec.SizeLeft), sizeString(rec.Size))
		if rec.TimeLeft != "" {
			line += " eta " + rec.TimeLeft
		}
		if rec.Indexer != "" {
			line += " via " + rec.Indexer
		}
		lines = append(lines, line)
	}
	if len(page.Records) == 0 {
		lines = append(lines, "  (empty)")
	}
	return strings.Join(lines, "\n")
}

func renderCalendar(service arr.Service, items []map[string]any) string {
	return renderItems(fmt.Sprintf("%s calendar", service), items, func(m map[string]any) string {
		date := strField(m, "airDateUtc")
		if date == "" {
			date = strField(m, "airDate")
		}
		if date == "" {
			date = strField(m, "releaseDate")
		}
		title := titleField(m)
		// Episode entries nest the series title one level up.
		if series, ok := m["series"].(map[string]any); ok {
			if st := strField(series, "title"); st != "" {
				title = st + " - " + title
			}
		}
		if date == "" {
			return title
		}
		return fmt.Sprintf("%s  %s", date, title)
	})
}

func renderHealth(service arr.Service, checks []arr.HealthCheck) string {
	if len(checks) == 0 {
		return fmt.Sprintf("%s: no health issues", service)
	}
	lines := make([]string, 0, len(checks)+1)
	lines = append(lines, fmt.Sprintf("%s health issues (%d):", service, len(checks)))
	for _, check := range checks {
		lines = append(lines, fmt.Sprintf("  [%s] %s: %s", check.Type, check.Source, check.Message))
	}
	return strings.Join(lines, "\n")
}

func renderRootFolders(service arr.Service, folders []arr.RootFolder) string {
	lines := make([]string, 0, len(folders)+2)
	lines = append(lines, fmt.Sprintf("%s root folders (%d):", service, len(folders)))
	for _, folder := range folders {
		state := "accessible"
		if !folder.Accessible {
			state = "inaccessible"
		}
		lines = append(lines, fmt.Sprintf("  [%d] %s - %s, %s free",
			folder.ID, folder.Path, state, sizeString(float64(folder.FreeSpace))))
	}
	if len(folders) == 0 {
		lines = append(lines, "  (none)")
	}
	return strings.Join(lines, "\n")
}

func commandResult(resp arr.CommandResponse) *mcp.CallToolResult {
	return mcp.NewToolResultText(fmt.Sprintf("Search triggered. Command ID: %d (%s, status %s)",
		resp.ID, resp.Name, resp.Status))
}
