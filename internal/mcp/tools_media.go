package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xiy/arrstack-mcp/internal/arr"
)

// transferBindings covers the queue and calendar tools shared by the four
// media families. Prowlarr tracks indexers, not media, so it gets neither.
func transferBindings(service arr.Service, client *arr.Client) []toolBinding {
	return []toolBinding{
		{
			tool: mcp.NewTool(fmt.Sprintf("%s_queue", service),
				mcp.WithDescription(fmt.Sprintf("Show the %s download queue.", service)),
				mcp.WithNumber("page", mcp.Description("Page number (default 1).")),
				mcp.WithNumber("page_size", mcp.Description("Records per page (default 20).")),
			),
			service: service,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				page, _ := intArg(req, "page")
				pageSize, _ := intArg(req, "page_size")
				queue, err := client.Queue(ctx, int(page), int(pageSize))
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return mcp.NewToolResultText(renderQueue(service, queue)), nil
			},
		},
		{
			tool: mcp.NewTool(fmt.Sprintf("%s_calendar", service),
				mcp.WithDescription(fmt.Sprintf("Show upcoming %s releases, optionally bounded by dates.", service)),
				mcp.WithString("start", mcp.Description("Start date, YYYY-MM-DD.")),
				mcp.WithString("end", mcp.Description("End date, YYYY-MM-DD.")),
			),
			service: service,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				start, _ := stringArg(req, "start")
				end, _ := stringArg(req, "end")
				items, err := client.Calendar(ctx, start, end)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return mcp.NewToolResultText(renderCalendar(service, items)), nil
			},
		},
	}
}

func sonarrBindings(client *arr.SonarrClient) []toolBinding {
	bindings := []toolBinding{
		{
			tool: mcp.NewTool("sonarr_list_series",
				mcp.WithDescription("List all TV series tracked by Sonarr."),
			),
			service: arr.Sonarr,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				series, err := client.Series(ctx)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return mcp.NewToolResultText(renderItems("Series in Sonarr", series, func(m map[string]any) string {
					line := fmt.Sprintf("[%d] %s (%d) - %s", intField(m, "id"), titleField(m), intField(m, "year"), strField(m, "status"))
					if !boolField(m, "monitored") {
						line += " [unmonitored]"
					}
					return line
				})), nil
			},
		},
		{
			tool: mcp.NewTool("sonarr_lookup_series",
				mcp.WithDescription("Search external metadata for TV series not yet tracked by Sonarr."),
				mcp.WithString("term", mcp.Required(), mcp.Description("Search term.")),
			),
			service: arr.Sonarr,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				term, err := requireString(req, "term")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				results, lerr := client.LookupSeries(ctx, term)
				if lerr != nil {
					return mcp.NewToolResultError(lerr.Error()), nil
				}
				return mcp.NewToolResultText(renderLookup("Series matches", results, "tvdbId")), nil
			},
		},
		{
			tool: mcp.NewTool("sonarr_search_series",
				mcp.WithDescription("Trigger a release search for one series. Returns the async command id; Sonarr processes the search in the background."),
				mcp.WithNumber("series_id", mcp.Required(), mcp.Description("Sonarr series ID.")),
			),
			service: arr.Sonarr,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				seriesID, err := requireInt(req, "series_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				resp, cerr := client.SearchSeries(ctx, seriesID)
				if cerr != nil {
					return mcp.NewToolResultError(cerr.Error()), nil
				}
				return commandResult(resp), nil
			},
		},
	}
	return append(bindings, transferBindings(arr.Sonarr, client.Client)...)
}

func radarrBindings(client *arr.RadarrClient) []toolBinding {
	bindings := []toolBinding{
		{
			tool: mcp.NewTool("radarr_list_movies",
				mcp.WithDescription("List all movies tracked by Radarr."),
			),
			service: arr.Radarr,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				movies, err := client.Movies(ctx)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return mcp.NewToolResultText(renderItems("Movies in Radarr", movies, func(m map[string]any) string {
					state := "missing"
					if boolField(m, "hasFile") {
						state = "downloaded"
					}
					line := fmt.Sprintf("[%d] %s (%d) - %s", intField(m, "id"), titleField(m), intField(m, "year"), state)
					if !boolField(m, "monitored") {
						line += " [unmonitored]"
					}
					return line
				})), nil
			},
		},
		{
			tool: mcp.NewTool("radarr_lookup_movies",
				mcp.WithDescription("Search external metadata for movies not yet tracked by Radarr."),
				mcp.WithString("term", mcp.Required(), mcp.Description("Search term.")),
			),
			service: arr.Radarr,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				term, err := requireString(req, "term")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				results, lerr := client.LookupMovies(ctx, term)
				if lerr != nil {
					return mcp.NewToolResultError(lerr.Error()), nil
				}
				return mcp.NewToolResultText(renderLookup("Movie matches", results, "tmdbId")), nil
			},
		},
		{
			tool: mcp.NewTool("radarr_search_movies",
				mcp.WithDescription("Trigger a release search for one movie. Returns the async command id."),
				mcp.WithNumber("movie_id", mcp.Required(), mcp.Description("Radarr movie ID.")),
			),
			service: arr.Radarr,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				movieID, err := requireInt(req, "movie_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				resp, cerr := client.SearchMovies(ctx, []int64{movieID})
				if cerr != nil {
					return mcp.NewToolResultError(cerr.Error()), nil
				}
				return commandResult(resp), nil
			},
		},
	}
	return append(bindings, transferBindings(arr.Radarr, client.Client)...)
}

func lidarrBindings(client *arr.LidarrClient) []toolBinding {
	bindings := []toolBinding{
		{
			tool: mcp.NewTool("lidarr_list_artists",
				mcp.WithDescription("List all artists tracked by Lidarr."),
			),
			service: arr.Lidarr,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				artists, err := client.Artists(ctx)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return mcp.NewToolResultText(renderItems("Artists in Lidarr", artists, func(m map[string]any) string {
					line := fmt.Sprintf("[%d] %s - %s", intField(m, "id"), titleField(m), strField(m, "status"))
					if !boolField(m, "monitored") {
						line += " [unmonitored]"
					}
					return line
				})), nil
			},
		},
		{
			tool: mcp.NewTool("lidarr_lookup_artists",
				mcp.WithDescription("Search external metadata for artists not yet tracked by Lidarr."),
				mcp.WithString("term", mcp.Required(), mcp.Description("Search term.")),
			),
			service: arr.Lidarr,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				term, err := requireString(req, "term")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				results, lerr := client.LookupArtists(ctx, term)
				if lerr != nil {
					return mcp.NewToolResultError(lerr.Error()), nil
				}
				return mcp.NewToolResultText(renderLookup("Artist matches", results, "foreignArtistId")), nil
			},
		},
		{
			tool: mcp.NewTool("lidarr_search_artist",
				mcp.WithDescription("Trigger a release search for one artist's albums. Returns the async command id."),
				mcp.WithNumber("artist_id", mcp.Required(), mcp.Description("Lidarr artist ID.")),
			),
			service: arr.Lidarr,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				artistID, err := requireInt(req, "artist_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				resp, cerr := client.SearchArtist(ctx, artistID)
				if cerr != nil {
					return mcp.NewToolResultError(cerr.Error()), nil
				}
				return commandResult(resp), nil
			},
		},
	}
	return append(bindings, transferBindings(arr.Lidarr, client.Client)...)
}

func readarrBindings(client *arr.ReadarrClient) []toolBinding {
	bindings := []toolBinding{
		{
			tool: mcp.NewTool("readarr_list_authors",
				mcp.WithDescription("List all authors tracked by Readarr."),
			),
			service: arr.Readarr,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				authors, err := client.Authors(ctx)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return mcp.NewToolResultText(renderItems("Authors in Readarr", authors, func(m map[string]any) string {
					line := fmt.Sprintf("[%d] %s - %s", intField(m, "id"), titleField(m), strField(m, "status"))
					if !boolField(m, "monitored") {
						line += " [unmonitored]"
					}
					return line
				})), nil
			},
		},
		{
			tool: mcp.NewTool("readarr_lookup_authors",
				mcp.WithDescription("Search external metadata for authors not yet tracked by Readarr."),
				mcp.WithString("term", mcp.Required(), mcp.Description("Search term.")),
			),
			service: arr.Readarr,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				term, err := requireString(req, "term")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				results, lerr := client.LookupAuthors(ctx, term)
				if lerr != nil {
					return mcp.NewToolResultError(lerr.Error()), nil
				}
				return mcp.NewToolResultText(renderLookup("Author matches", results, "foreignAuthorId")), nil
			},
		},
		{
			tool: mcp.NewTool("readarr_search_author",
				mcp.WithDescription("Trigger a release search for one author's books. Returns the async command id."),
				mcp.WithNumber("author_id", mcp.Required(), mcp.Description("Readarr author ID.")),
			),
			service: arr.Readarr,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				authorID, err := requireInt(req, "author_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				resp, cerr := client.SearchAuthor(ctx, authorID)
				if cerr != nil {
					return mcp.NewToolResultError(cerr.Error()), nil
				}
				return commandResult(resp), nil
			},
		},
	}
	return append(bindings, transferBindings(arr.Readarr, client.Client)...)
}

// renderLookup renders metadata search results with the external id the user
// needs to add the item.
func renderLookup(header string, items []map[string]any, foreignIDKey string) string {
	return renderItems(header, items, func(m map[string]any) string {
		line := titleField(m)
		if year := intField(m, "year"); year > 0 {
			line += fmt.Sprintf(" (%d)", year)
		}
		if id := intField(m, foreignIDKey); id > 0 {
			line += fmt.Sprintf(" - %s: %d", foreignIDKey, id)
		} else if id := strField(m, foreignIDKey); id != "" {
			line += fmt.Sprintf(" - %s: %s", foreignIDKey, id)
		}
		if intField(m, "id") > 0 {
			line += fmt.Sprintf(" [already tracked, id %d]", intField(m, "id"))
		}
		return line
	})
}
