package arr

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ReportSection is one slice of the combined configuration report. Exactly
// one of Data and Error is meaningful.
type ReportSection struct {
	Name  string `json:"name"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// ConfigReport gathers every configuration-inspection payload for one
// service in parallel. The sub-calls are independent reads with no ordering
// dependency, and a failing section does not abort the others: each failure
// is recorded as a per-section error marker so one remote hiccup cannot
// blank the whole report.
func ConfigReport(ctx context.Context, c *Client) []ReportSection {
	type fetch struct {
		name string
		fn   func(context.Context) (any, error)
	}

	fetches := []fetch{
		{"qualityProfiles", func(ctx context.Context) (any, error) { return c.QualityProfiles(ctx) }},
		{"qualityDefinitions", func(ctx context.Context) (any, error) { return c.QualityDefinitions(ctx) }},
		{"health", func(ctx context.Context) (any, error) { return c.Health(ctx) }},
		{"rootFolders", func(ctx context.Context) (any, error) { return c.RootFolders(ctx) }},
		{"downloadClients", func(ctx context.Context) (any, error) { return c.DownloadClients(ctx) }},
		{"naming", func(ctx context.Context) (any, error) { return c.NamingConfig(ctx) }},
		{"mediaManagement", func(ctx context.Context) (any, error) { return c.MediaManagement(ctx) }},
		{"tags", func(ctx context.Context) (any, error) { return c.Tags(ctx) }},
		{"indexers", func(ctx context.Context) (any, error) { return c.Indexers(ctx) }},
	}
	if c.Service().HasMetadataProfiles() {
		fetches = append(fetches, fetch{
			"metadataProfiles", func(ctx context.Context) (any, error) { return c.MetadataProfiles(ctx) },
		})
	}

	sections := make([]ReportSection, len(fetches))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range fetches {
		g.Go(func() error {
			data, err := f.fn(gctx)
			if err != nil {
				sections[i] = ReportSection{Name: f.name, Error: err.Error()}
				return nil
			}
			sections[i] = ReportSection{Name: f.name, Data: data}
			return nil
		})
	}
	// Goroutines never return errors; Wait is only a join point.
	_ = g.Wait()
	return sections
}
