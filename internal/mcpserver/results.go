package mcpserver

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult serializes an operation result as a JSON text payload.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}

// errResult maps an editor error to the structured failure payload callers
// expect: {"error": "<message>"}. The error never escapes as a fault.
func errResult(err error) (*mcp.CallToolResult, error) {
	b, merr := json.Marshal(map[string]string{"error": err.Error()})
	if merr != nil {
		return nil, fmt.Errorf("marshal error result: %w", merr)
	}
	return mcp.NewToolResultText(string(b)), nil
}
