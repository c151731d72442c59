package arr

import "context"

// LidarrClient adds the music-specific operations on top of the generic
// client.
type LidarrClient struct {
	*Client
}

// Artists lists every tracked artist.
func (c *LidarrClient) Artists(ctx context.Context) ([]map[string]any, error) {
	return c.list(ctx, "/artist")
}

// LookupArtists searches external metadata for artists matching term.
func (c *LidarrClient) LookupArtists(ctx context.Context, term string) ([]map[string]any, error) {
	return c.lookup(ctx, "/artist/lookup", term)
}

// SearchArtist asks Lidarr to hunt for releases of one artist's albums.
func (c *LidarrClient) SearchArtist(ctx context.Context, artistID int64) (CommandResponse, error) {
	return c.Command(ctx, map[string]any{
		"name":     "ArtistSearch",
		"artistId": artistID,
	})
}
