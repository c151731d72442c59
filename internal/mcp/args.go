package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool arguments arrive as generic JSON values; numbers are float64. These
// helpers keep the handlers free of repeated type juggling.

func stringArg(req mcp.CallToolRequest, key string) (string, bool) {
	v, ok := req.GetArguments()[key].(string)
	return v, ok && v != ""
}

func requireString(req mcp.CallToolRequest, key string) (string, error) {
	v, ok := stringArg(req, key)
	if !ok {
		return "", fmt.Errorf("missing required argument %q", key)
	}
	return v, nil
}

func intArg(req mcp.CallToolRequest, key string) (int64, bool) {
	switch v := req.GetArguments()[key].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}

func requireInt(req mcp.CallToolRequest, key string) (int64, error) {
	v, ok := intArg(req, key)
	if !ok {
		return 0, fmt.Errorf("missing required numeric argument %q", key)
	}
	return v, nil
}
