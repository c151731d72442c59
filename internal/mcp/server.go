// Package mcp exposes the configured *arr services as MCP tools over stdio.
package mcp

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/xiy/arrstack-mcp/internal/arr"
	"github.com/xiy/arrstack-mcp/internal/config"
	"github.com/xiy/arrstack-mcp/internal/store"
)

const serverVersion = "0.1.0"

// ActivitySink receives summarized tool-call events.
type ActivitySink interface {
	InsertToolCall(ctx context.Context, rec store.ToolCall) error
}

// toolBinding ties a tool definition to its handler and, explicitly, to the
// service family it targets. The family tag travels with the binding; it is
// never re-derived from the tool name.
type toolBinding struct {
	tool    mcp.Tool
	service arr.Service
	handler server.ToolHandlerFunc
}

// New builds the MCP server with tools for every configured family. Families
// without configuration contribute no tools at all.
func New(cfg config.Config, reg *arr.Registry, sink ActivitySink, logger *log.Logger) *server.MCPServer {
	bindings := allBindings(reg)

	serviceByTool := make(map[string]arr.Service, len(bindings))
	for _, b := range bindings {
		serviceByTool[b.tool.Name] = b.service
	}

	s := server.NewMCPServer(
		cfg.ServerName,
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithInstructions("Tools for managing Sonarr, Radarr, Lidarr, Readarr and Prowlarr instances. Only configured services expose tools."),
		server.WithToolHandlerMiddleware(auditMiddleware(serviceByTool, sink, logger)),
	)

	for _, b := range bindings {
		s.AddTool(b.tool, b.handler)
	}

	logger.Info("registered tools", "count", len(bindings), "services", len(reg.Configured()))
	return s
}

// ServeStdio blocks serving MCP over stdin/stdout.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func allBindings(reg *arr.Registry) []toolBinding {
	var bindings []toolBinding
	for _, service := range reg.Configured() {
		client, err := reg.Client(service)
		if err != nil {
			continue
		}
		bindings = append(bindings, sharedBindings(service, client)...)
	}

	if sonarr, err := reg.Sonarr(); err == nil {
		bindings = append(bindings, sonarrBindings(sonarr)...)
	}
	if radarr, err := reg.Radarr(); err == nil {
		bindings = append(bindings, radarrBindings(radarr)...)
	}
	if lidarr, err := reg.Lidarr(); err == nil {
		bindings = append(bindings, lidarrBindings(lidarr)...)
	}
	if readarr, err := reg.Readarr(); err == nil {
		bindings = append(bindings, readarrBindings(readarr)...)
	}
	if prowlarr, err := reg.Prowlarr(); err == nil {
		bindings = append(bindings, prowlarrBindings(prowlarr)...)
	}
	return bindings
}

func auditMiddleware(services map[string]arr.Service, sink ActivitySink, logger *log.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			callID := uuid.NewString()
			started := time.Now()
			result, err := next(ctx, req)
			duration := time.Since(started)

			name := req.Params.Name
			success := err == nil && (result == nil || !result.IsError)
			errText := ""
			switch {
			case err != nil:
				errText = err.Error()
			case result != nil && result.IsError:
				errText = firstText(result)
			}

			if success {
				logger.Debug("tool call", "call_id", callID, "tool", name, "duration", duration)
			} else {
				logger.Warn("tool call failed", "call_id", callID, "tool", name, "duration", duration, "error", errText)
			}

			if sink != nil {
				rec := store.ToolCall{
					CallID:     callID,
					ToolName:   name,
					Service:    services[name].String(),
					Success:    success,
					ErrorText:  errText,
					DurationMS: duration.Milliseconds(),
					CreatedAt:  time.Now().UTC(),
				}
				if serr := sink.InsertToolCall(ctx, rec); serr != nil {
					logger.Warn("failed to persist tool call", "error", serr)
				}
			}
			return result, err
		}
	}
}

func firstText(res *mcp.CallToolResult) string {
	for _, c := range res.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}
