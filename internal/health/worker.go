package health

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/xiy/arrstack-mcp/internal/arr"
	"github.com/xiy/arrstack-mcp/internal/store"
)

// Prober provides clients to poll. *arr.Registry satisfies it.
type Prober interface {
	Configured() []arr.Service
	Client(arr.Service) (*arr.Client, error)
}

// Sink receives health observations.
type Sink interface {
	InsertHealthSnapshot(ctx context.Context, rec store.HealthSnapshot) error
}

// Start launches a periodic health poller over every configured service.
// It is purely observational: degradations are logged and recorded for the
// admin dashboard, never used to gate tool calls.
func Start(ctx context.Context, logger *log.Logger, interval time.Duration, prober Prober, sink Sink) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pollAll(ctx, logger, prober, sink)
		}
	}
}

func pollAll(ctx context.Context, logger *log.Logger, prober Prober, sink Sink) {
	now := time.Now().UTC()
	for _, service := range prober.Configured() {
		client, err := prober.Client(service)
		if err != nil {
			continue
		}
		snap := probe(ctx, client, now)
		if !snap.Healthy {
			logger.Warn("service health degraded", "service", service, "issues", snap.IssueCount, "message", snap.Message)
		}
		if sink == nil {
			continue
		}
		if err := sink.InsertHealthSnapshot(ctx, snap); err != nil {
			logger.Warn("failed to persist health snapshot", "service", service, "error", err)
		}
	}
}

func probe(ctx context.Context, client *arr.Client, now time.Time) store.HealthSnapshot {
	snap := store.HealthSnapshot{
		Service:   client.Service().String(),
		CheckedAt: now,
	}
	issues, err := client.Health(ctx)
	if err != nil {
		snap.Message = err.Error()
		return snap
	}
	snap.IssueCount = len(issues)
	snap.Healthy = len(issues) == 0
	if len(issues) > 0 {
		msgs := make([]string, 0, len(issues))
		for _, issue := range issues {
			msgs = append(msgs, issue.Message)
		}
		snap.Message = strings.Join(msgs, "; ")
	}
	return snap
}
