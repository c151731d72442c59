package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xiy/arrstack-mcp/internal/arr"
)

// sharedBindings covers the configuration-inspection surface every family
// exposes at identical paths. The tools are generated per configured family;
// only Lidarr and Readarr get the metadata-profile tool, and every family
// gets the combined report.
func sharedBindings(service arr.Service, client *arr.Client) []toolBinding {
	name := func(suffix string) string { return fmt.Sprintf("%s_%s", service, suffix) }
	desc := func(what string) string { return fmt.Sprintf("%s for the %s instance.", what, service) }

	bindings := []toolBinding{
		{
			tool: mcp.NewTool(name("quality_profiles"),
				mcp.WithDescription(desc("List quality profiles")),
			),
			service: service,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				profiles, err := client.QualityProfiles(ctx)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return jsonResult(profiles)
			},
		},
		{
			tool: mcp.NewTool(name("quality_definitions"),
				mcp.WithDescription(desc("List quality definitions with size limits")),
			),
			service: service,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				defs, err := client.QualityDefinitions(ctx)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return jsonResult(defs)
			},
		},
		{
			tool: mcp.NewTool(name("health"),
				mcp.WithDescription(desc("List active health check issues")),
			),
			service: service,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				checks, err := client.Health(ctx)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return mcp.NewToolResultText(renderHealth(service, checks)), nil
			},
		},
		{
			tool: mcp.NewTool(name("root_folders"),
				mcp.WithDescription(desc("List root folders with free space")),
			),
			service: service,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				folders, err := client.RootFolders(ctx)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return mcp.NewToolResultText(renderRootFolders(service, folders)), nil
			},
		},
		{
			tool: mcp.NewTool(name("download_clients"),
				mcp.WithDescription(desc("List configured download clients")),
			),
			service: service,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				clients, err := client.DownloadClients(ctx)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return jsonResult(clients)
			},
		},
		{
			tool: mcp.NewTool(name("naming_config"),
				mcp.WithDescription(desc("Show file and folder naming conventions")),
			),
			service: service,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				naming, err := client.NamingConfig(ctx)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return jsonResult(naming)
			},
		},
		{
			tool: mcp.NewTool(name("media_management"),
				mcp.WithDescription(desc("Show media management settings")),
			),
			service: service,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				mm, err := client.MediaManagement(ctx)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return jsonResult(mm)
			},
		},
		{
			tool: mcp.NewTool(name("tags"),
				mcp.WithDescription(desc("List tags")),
			),
			service: service,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				tags, err := client.Tags(ctx)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return jsonResult(tags)
			},
		},
		{
			tool: mcp.NewTool(name("indexers"),
				mcp.WithDescription(desc("List configured indexers")),
			),
			service: service,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				indexers, err := client.Indexers(ctx)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return jsonResult(indexers)
			},
		},
		{
			tool: mcp.NewTool(name("config_report"),
				mcp.WithDescription(desc("Fetch the full configuration report (profiles, health, folders, clients, naming, tags, indexers) in one call; failing sections are reported inline")),
			),
			service: service,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return jsonResult(arr.ConfigReport(ctx, client))
			},
		},
	}

	if service.HasMetadataProfiles() {
		bindings = append(bindings, toolBinding{
			tool: mcp.NewTool(name("metadata_profiles"),
				mcp.WithDescription(desc("List metadata profiles")),
			),
			service: service,
			handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				profiles, err := client.MetadataProfiles(ctx)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return jsonResult(profiles)
			},
		})
	}

	return bindings
}
