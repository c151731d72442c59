package arr

import (
	"context"
	"net/url"
)

// ProwlarrClient adds the indexer-aggregator operations on top of the
// generic client. Prowlarr tracks indexers rather than media, so it has no
// queue or calendar; its release search takes a query parameter instead of
// the media families' term.
type ProwlarrClient struct {
	*Client
}

// Search runs a release search across the configured indexers.
func (c *ProwlarrClient) Search(ctx context.Context, query string) ([]map[string]any, error) {
	q := url.Values{}
	q.Set("query", query)
	var out []map[string]any
	return out, c.Get(ctx, "/search", q, &out)
}

// IndexerStats returns grab/query statistics per indexer.
func (c *ProwlarrClient) IndexerStats(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	return out, c.Get(ctx, "/indexerstats", nil, &out)
}

// Applications lists the downstream applications Prowlarr syncs indexers to.
func (c *ProwlarrClient) Applications(ctx context.Context) ([]map[string]any, error) {
	return c.list(ctx, "/applications")
}

// TestAllIndexers asks Prowlarr to test every configured indexer. The result
// collection carries one validation entry per indexer.
func (c *ProwlarrClient) TestAllIndexers(ctx context.Context) ([]map[string]any, error) {
	var out []map[string]any
	return out, c.Post(ctx, "/indexer/testall", nil, &out)
}
