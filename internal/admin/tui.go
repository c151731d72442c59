package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xiy/arrstack-mcp/internal/store"
)

type tickMsg time.Time
type dashboardMsg struct {
	stats    store.Stats
	calls    []store.ToolCall
	health   []store.HealthSnapshot
	err      error
	duration time.Duration
}

type dashboardStore interface {
	Stats(ctx context.Context, now time.Time) (store.Stats, error)
	RecentToolCalls(ctx context.Context, limit int) ([]store.ToolCall, error)
	RecentHealthSnapshots(ctx context.Context, limit int) ([]store.HealthSnapshot, error)
}

type model struct {
	ctx         context.Context
	st          dashboardStore
	stats       store.Stats
	calls       []store.ToolCall
	health      []store.HealthSnapshot
	lastErr     error
	lastTick    time.Time
	logLines    []string
	maxLogs     int
	callsLimit  int
	healthLimit int
	width       int
	height      int
}

// Run starts a lightweight local admin dashboard over the activity store.
func Run(ctx context.Context, st dashboardStore) error {
	m := model{
		ctx:         ctx,
		st:          st,
		maxLogs:     10,
		callsLimit:  8,
		healthLimit: 8,
	}
	m = m.appendLog("admin UI started")
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd {
	return tea.Batch(fetchDashboardCmd(m.ctx, m.st, m.callsLimit, m.healthLimit), tickCmd())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m = m.appendLog("received quit signal")
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		m.lastTick = time.Time(msg)
		return m, tea.Batch(fetchDashboardCmd(m.ctx, m.st, m.callsLimit, m.healthLimit), tickCmd())
	case dashboardMsg:
		m.lastErr = msg.err
		if msg.err == nil {
			m.stats = msg.stats
			m.calls = msg.calls
			m.health = msg.health
			m = m.appendLog(fmt.Sprintf(
				"refresh ok calls=%d failed=%d recent=%d health=%d (%s)",
				msg.stats.TotalCalls,
				msg.stats.FailedCalls,
				len(msg.calls),
				len(msg.health),
				formatDuration(msg.duration),
			))
		} else {
			m = m.appendLog(fmt.Sprintf("refresh error: %v", msg.err))
		}
	}
	return m, nil
}

func (m model) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Render("arrstack-mcp admin")
	meta := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("q to quit • refresh every 2s")

	statsBody := m.renderStats()
	logBody := "(no log events yet)"
	if len(m.logLines) > 0 {
		logBody = strings.Join(m.logLines, "\n")
	}

	paneWidth := 54
	if m.width > 0 {
		paneWidth = max(38, (m.width-3)/2)
	}
	paneHeight := 9
	if m.height > 0 {
		paneHeight = max(8, (m.height-8)/2)
	}

	topRow := joinColumns(
		renderPane("Stats", statsBody, paneWidth, paneHeight),
		renderPane("General Logs", logBody, paneWidth, paneHeight),
	)
	bottomRow := joinColumns(
		renderPane("Tool Calls", formatCallsPane(m.calls), paneWidth, paneHeight),
		renderPane("Service Health", formatHealthPane(m.health), paneWidth, paneHeight),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		meta,
		"",
		topRow,
		bottomRow,
	)
}

func (m model) renderStats() string {
	body := fmt.Sprintf(
		"Total tool calls:  %d\nFailed calls:      %d\nLast 24h:          %d\nLast refresh:      %s",
		m.stats.TotalCalls,
		m.stats.FailedCalls,
		m.stats.Last24h,
		formatTime(m.lastTick),
	)
	if m.lastErr != nil {
		body += "\n\nLast error: " + truncateText(compactWhitespace(m.lastErr.Error()), 120)
	}
	return body
}

func fetchDashboardCmd(ctx context.Context, st dashboardStore, callsLimit, healthLimit int) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		now := time.Now().UTC()
		s, err := st.Stats(ctx, now)
		if err != nil {
			return dashboardMsg{err: err, duration: time.Since(start)}
		}

		calls, err := st.RecentToolCalls(ctx, callsLimit)
		if err != nil {
			return dashboardMsg{stats: s, err: err, duration: time.Since(start)}
		}

		health, err := st.RecentHealthSnapshots(ctx, healthLimit)
		if err != nil {
			return dashboardMsg{stats: s, calls: calls, err: err, duration: time.Since(start)}
		}

		return dashboardMsg{
			stats:    s,
			calls:    calls,
			health:   health,
			duration: time.Since(start),
		}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.RFC3339)
}

func (m model) appendLog(line string) model {
	if strings.TrimSpace(line) == "" {
		return m
	}
	entry := fmt.Sprintf("[%s] %s", time.Now().UTC().Format("15:04:05"), line)
	m.logLines = append(m.logLines, entry)
	if m.maxLogs <= 0 {
		m.maxLogs = 10
	}
	if len(m.logLines) > m.maxLogs {
		m.logLines = m.logLines[len(m.logLines)-m.maxLogs:]
	}
	return m
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.String()
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(10 * time.Millisecond).String()
}

func renderPane(title, body string, width, height int) string {
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	if width > 0 {
		style = style.Width(width)
	}
	if height > 0 {
		style = style.Height(height)
	}
	return style.Render(title + "\n\n" + body)
}

func joinColumns(left, right string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func formatCallsPane(rows []store.ToolCall) string {
	if len(rows) == 0 {
		return "(no tool calls yet)"
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		status := "ok"
		if !row.Success {
			status = "err"
		}
		line := fmt.Sprintf(
			"[%s] %-3s %-28s %4dms",
			formatClock(row.CreatedAt),
			status,
			truncateText(row.ToolName, 28),
			max(0, row.DurationMS),
		)
		if !row.Success && strings.TrimSpace(row.ErrorText) != "" {
			line += " " + truncateText(compactWhitespace(row.ErrorText), 48)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func formatHealthPane(rows []store.HealthSnapshot) string {
	if len(rows) == 0 {
		return "(no health snapshots yet)"
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		state := "ok"
		if !row.Healthy {
			state = fmt.Sprintf("%d issues", row.IssueCount)
			if row.IssueCount == 0 {
				state = "unreachable"
			}
		}
		line := fmt.Sprintf(
			"[%s] %-9s %s",
			formatClock(row.CheckedAt),
			truncateText(row.Service, 9),
			state,
		)
		if !row.Healthy && strings.TrimSpace(row.Message) != "" {
			line += " :: " + truncateText(compactWhitespace(row.Message), 52)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func formatClock(t time.Time) string {
	if t.IsZero() {
		return "--:--:--"
	}
	return t.UTC().Format("15:04:05")
}

func truncateText(s string, limit int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 3 {
		return string(r[:limit])
	}
	return string(r[:limit-3]) + "..."
}

func compactWhitespace(s string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(s)), " ")
}
