package arr

import "context"

// RadarrClient adds the movie-specific operations on top of the generic
// client.
type RadarrClient struct {
	*Client
}

// Movies lists every tracked movie.
func (c *RadarrClient) Movies(ctx context.Context) ([]map[string]any, error) {
	return c.list(ctx, "/movie")
}

// LookupMovies searches external metadata for movies matching term.
func (c *RadarrClient) LookupMovies(ctx context.Context, term string) ([]map[string]any, error) {
	return c.lookup(ctx, "/movie/lookup", term)
}

// SearchMovies asks Radarr to hunt for releases of the given movies. Radarr's
// command takes an id array where the other families take a single id.
func (c *RadarrClient) SearchMovies(ctx context.Context, movieIDs []int64) (CommandResponse, error) {
	return c.Command(ctx, map[string]any{
		"name":     "MoviesSearch",
		"movieIds": movieIDs,
	})
}
