package arr

import "context"

// SonarrClient adds the TV-specific operations on top of the generic client.
type SonarrClient struct {
	*Client
}

// Series lists every tracked series.
func (c *SonarrClient) Series(ctx context.Context) ([]map[string]any, error) {
	return c.list(ctx, "/series")
}

// LookupSeries searches external metadata for series matching term.
func (c *SonarrClient) LookupSeries(ctx context.Context, term string) ([]map[string]any, error) {
	return c.lookup(ctx, "/series/lookup", term)
}

// SearchSeries asks Sonarr to hunt for releases of one series.
func (c *SonarrClient) SearchSeries(ctx context.Context, seriesID int64) (CommandResponse, error) {
	return c.Command(ctx, map[string]any{
		"name":     "SeriesSearch",
		"seriesId": seriesID,
	})
}
