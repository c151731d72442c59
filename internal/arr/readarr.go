package arr

import "context"

// ReadarrClient adds the book-specific operations on top of the generic
// client.
type ReadarrClient struct {
	*Client
}

// Authors lists every tracked author.
func (c *ReadarrClient) Authors(ctx context.Context) ([]map[string]any, error) {
	return c.list(ctx, "/author")
}

// LookupAuthors searches external metadata for authors matching term.
func (c *ReadarrClient) LookupAuthors(ctx context.Context, term string) ([]map[string]any, error) {
	return c.lookup(ctx, "/author/lookup", term)
}

// SearchAuthor asks Readarr to hunt for releases of one author's books.
func (c *ReadarrClient) SearchAuthor(ctx context.Context, authorID int64) (CommandResponse, error) {
	return c.Command(ctx, map[string]any{
		"name":     "AuthorSearch",
		"authorId": authorID,
	})
}
