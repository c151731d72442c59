package arr

import (
	"context"
	"net/url"
	"strconv"
)

// Configuration-inspection operations shared by every family. The relative
// paths are identical everywhere; only the version prefix (fixed at client
// construction) differs.

func (c *Client) QualityProfiles(ctx context.Context) ([]QualityProfile, error) {
	var out []QualityProfile
	return out, c.Get(ctx, "/qualityprofile", nil, &out)
}

func (c *Client) QualityDefinitions(ctx context.Context) ([]QualityDefinition, error) {
	var out []QualityDefinition
	return out, c.Get(ctx, "/qualitydefinition", nil, &out)
}

func (c *Client) MetadataProfiles(ctx context.Context) ([]MetadataProfile, error) {
	var out []MetadataProfile
	return out, c.Get(ctx, "/metadataprofile", nil, &out)
}

func (c *Client) Health(ctx context.Context) ([]HealthCheck, error) {
	var out []HealthCheck
	return out, c.Get(ctx, "/health", nil, &out)
}

func (c *Client) RootFolders(ctx context.Context) ([]RootFolder, error) {
	var out []RootFolder
	return out, c.Get(ctx, "/rootfolder", nil, &out)
}

func (c *Client) DownloadClients(ctx context.Context) ([]DownloadClient, error) {
	var out []DownloadClient
	return out, c.Get(ctx, "/downloadclient", nil, &out)
}

func (c *Client) Tags(ctx context.Context) ([]Tag, error) {
	var out []Tag
	return out, c.Get(ctx, "/tag", nil, &out)
}

func (c *Client) Indexers(ctx context.Context) ([]Indexer, error) {
	var out []Indexer
	return out, c.Get(ctx, "/indexer", nil, &out)
}

// NamingConfig returns /config/naming as-is; the field set differs per
// family, so no typed view exists.
func (c *Client) NamingConfig(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	return out, c.Get(ctx, "/config/naming", nil, &out)
}

// MediaManagement returns /config/mediamanagement as-is.
func (c *Client) MediaManagement(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	return out, c.Get(ctx, "/config/mediamanagement", nil, &out)
}

// Queue returns one page of the in-progress transfer queue. Zero page or
// pageSize values are left to the remote's defaults.
func (c *Client) Queue(ctx context.Context, page, pageSize int) (QueuePage, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		query.Set("pageSize", strconv.Itoa(pageSize))
	}
	var out QueuePage
	return out, c.Get(ctx, "/queue", query, &out)
}

// Calendar returns upcoming entries, optionally bounded by start and end
// dates in ISO YYYY-MM-DD form. When both are empty the request carries no
// query string at all.
func (c *Client) Calendar(ctx context.Context, start, end string) ([]map[string]any, error) {
	var query url.Values
	if start != "" || end != "" {
		query = url.Values{}
		if start != "" {
			query.Set("start", start)
		}
		if end != "" {
			query.Set("end", end)
		}
	}
	var out []map[string]any
	return out, c.Get(ctx, "/calendar", query, &out)
}

// Command submits an asynchronous command and returns the remote's tracking
// acknowledgement unchanged.
func (c *Client) Command(ctx context.Context, payload map[string]any) (CommandResponse, error) {
	var out CommandResponse
	return out, c.Post(ctx, "/command", payload, &out)
}

// list fetches a GET collection of family-specific entities.
func (c *Client) list(ctx context.Context, path string) ([]map[string]any, error) {
	var out []map[string]any
	return out, c.Get(ctx, path, nil, &out)
}

// lookup fetches a GET collection filtered by a term query parameter. The
// remote searches external metadata sources, so results may include items
// not yet tracked locally.
func (c *Client) lookup(ctx context.Context, path, term string) ([]map[string]any, error) {
	query := url.Values{}
	query.Set("term", term)
	var out []map[string]any
	return out, c.Get(ctx, path, query, &out)
}
