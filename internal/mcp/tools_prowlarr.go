package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xiy/arrstack-mcp/internal/arr"
)

func prowlarrBindings(client *arr.ProwlarrClient) []toolBinding {
	return []toolBinding{
		{
			tool: mcp.NewTool("prowlarr_search",
				mcp.WithDescription("Run a release search across all indexers configured in Prowlarr."),
				mcp.WithString("query", mcp.Required(), mcp.Description("Search query.")),
			),
			service: arr.Prowlarr,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				query, err := requireString(req, "query")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				releases, serr := client.Search(ctx, query)
				if serr != nil {
					return mcp.NewToolResultError(serr.Error()), nil
				}
				return mcp.NewToolResultText(renderItems("Releases", releases, func(m map[string]any) string {
					line := truncate(titleField(m), 70)
					if size := intField(m, "size"); size > 0 {
						line += fmt.Sprintf(" (%s)", sizeString(float64(size)))
					}
					if seeders, ok := m["seeders"].(float64); ok {
						line += fmt.Sprintf(" [%d seeders]", int(seeders))
					}
					if indexer := strField(m, "indexer"); indexer != "" {
						line += " via " + indexer
					}
					return line
				})), nil
			},
		},
		{
			tool: mcp.NewTool("prowlarr_indexer_stats",
				mcp.WithDescription("Show grab and query statistics per indexer."),
			),
			service: arr.Prowlarr,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				stats, err := client.IndexerStats(ctx)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return jsonResult(stats)
			},
		},
		{
			tool: mcp.NewTool("prowlarr_applications",
				mcp.WithDescription("List the applications Prowlarr syncs indexers to."),
			),
			service: arr.Prowlarr,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				apps, err := client.Applications(ctx)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return mcp.NewToolResultText(renderItems("Applications", apps, func(m map[string]any) string {
					return fmt.Sprintf("[%d] %s (%s)", intField(m, "id"), strField(m, "name"), strField(m, "implementation"))
				})), nil
			},
		},
		{
			tool: mcp.NewTool("prowlarr_test_indexers",
				mcp.WithDescription("Test every configured indexer and report validation failures."),
			),
			service: arr.Prowlarr,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				results, err := client.TestAllIndexers(ctx)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return jsonResult(results)
			},
		},
	}
}
