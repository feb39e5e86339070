// Package mcpserver wires the editing session to an MCP stdio transport.
// It owns tool registration and the mapping from editor errors to structured
// error results; no editing logic lives here.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/linesmith/linesmith/internal/logging"
	"github.com/linesmith/linesmith/pkg/config"
	"github.com/linesmith/linesmith/pkg/editor"
	"github.com/linesmith/linesmith/pkg/syntax"
)

// New creates the MCP server with one editing session and all tools
// registered. version is reported to clients during initialization.
func New(cfg *config.Config, version string) *server.MCPServer {
	if cfg == nil {
		cfg = config.Default()
	}

	validators := syntax.DefaultRegistry(cfg)
	session := editor.NewSession(cfg, validators)

	logger := logging.Default()
	logger.Debug("session created",
		logging.FieldSession, session.ID(),
		logging.FieldMaxEditLines, cfg.MaxEditLines,
		logging.FieldValidators, validators.Languages(),
	)

	s := server.NewMCPServer(
		"linesmith",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
		server.WithToolHandlerMiddleware(sessionLogging(session.ID())),
	)

	registerTools(s, session)
	return s
}

// Serve runs the server on stdio until the client disconnects.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// sessionLogging tags every tool call's context logger with the session id.
func sessionLogging(sessionID string) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return next(logging.WithSession(ctx, sessionID), request)
		}
	}
}

func serverInstructions() string {
	return `linesmith edits text files by line range with a review step.

Workflow: set_file to target a file, select a 1-based inclusive line range,
overwrite with replacement lines to get a diff preview, then decide with
"accept" to apply or "reject" to discard. If the file changes on disk between
select and overwrite, the overwrite fails and the range must be re-selected.
Edits to recognized file types (Go, Python, JavaScript, JSON, YAML) are
rejected when the resulting file would not parse.`
}
