package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/linesmith/linesmith/internal/logging"
	"github.com/linesmith/linesmith/pkg/editor"
)

// registerTools binds all editing operations to the server. Every handler
// follows the same shape: parse arguments, invoke the session, and return
// either the operation result or a structured error payload.
func registerTools(s *server.MCPServer, session *editor.Session) {
	s.AddTool(mcp.NewTool("set_file",
		mcp.WithDescription("Set the file to edit. Must be called before any other operation."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path to an existing text file.")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := mcp.ParseString(request, "path", "")
		logCall(ctx, session, "set_file", logging.FieldPath, path)

		message, err := session.SetFile(ctx, path)
		if err != nil {
			// set_file reports failure as a plain string, matching its
			// plain-string success confirmation.
			return mcp.NewToolResultText(err.Error()), nil
		}
		return mcp.NewToolResultText(message), nil
	})

	s.AddTool(mcp.NewTool("read",
		mcp.WithDescription("Read lines start..end (1-based, inclusive) from the current file. No length ceiling applies."),
		mcp.WithNumber("start", mcp.Required(), mcp.Description("First line to read (1-based).")),
		mcp.WithNumber("end", mcp.Required(), mcp.Description("Last line to read (inclusive; clamped to the file length).")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := int(mcp.ParseFloat64(request, "start", 0))
		end := int(mcp.ParseFloat64(request, "end", 0))
		logCall(ctx, session, "read", logging.FieldStart, start, logging.FieldEnd, end)

		result, err := session.Read(ctx, start, end)
		if err != nil {
			return errResult(err)
		}
		return jsonResult(result)
	})

	s.AddTool(mcp.NewTool("select",
		mcp.WithDescription("Select lines start..end for editing. Returns a verification id; the subsequent overwrite fails if the file changes after this call."),
		mcp.WithNumber("start", mcp.Required(), mcp.Description("First line of the range (1-based).")),
		mcp.WithNumber("end", mcp.Required(), mcp.Description("Last line of the range (inclusive; clamped to the file length).")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := int(mcp.ParseFloat64(request, "start", 0))
		end := int(mcp.ParseFloat64(request, "end", 0))
		logCall(ctx, session, "select", logging.FieldStart, start, logging.FieldEnd, end)

		result, err := session.Select(ctx, start, end)
		if err != nil {
			return errResult(err)
		}
		logging.FromContext(ctx).Debug("selection stored",
			logging.FieldSelectionID, result.ID,
			logging.FieldEnd, result.End,
		)
		return jsonResult(result)
	})

	s.AddTool(mcp.NewTool("overwrite",
		mcp.WithDescription("Propose replacing the selected range with new lines. An empty list deletes the range. Returns a diff preview; nothing is written until decide."),
		mcp.WithArray("lines", mcp.Required(),
			mcp.Description("Replacement lines, without terminators."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		lines, err := parseLines(request)
		if err != nil {
			return errResult(&editor.ValidationError{Message: err.Error()})
		}
		logCall(ctx, session, "overwrite", logging.FieldLines, len(lines))

		result, err := session.Overwrite(ctx, lines)
		if err != nil {
			var serr *editor.SyntaxError
			if errors.As(err, &serr) {
				logging.FromContext(ctx).Debug("candidate failed validation",
					logging.FieldLanguage, serr.Language,
				)
			}
			return errResult(err)
		}
		return jsonResult(result)
	})

	s.AddTool(mcp.NewTool("decide",
		mcp.WithDescription("Apply or discard the pending edit from the last overwrite."),
		mcp.WithString("decision", mcp.Required(),
			mcp.Description("\"accept\" writes the change; \"reject\" discards it."),
			mcp.Enum("accept", "reject"),
		),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		decision := mcp.ParseString(request, "decision", "")
		logCall(ctx, session, "decide", logging.FieldDecision, decision)

		result, err := session.Decide(ctx, decision)
		if err != nil {
			return errResult(err)
		}
		return jsonResult(result)
	})

	s.AddTool(mcp.NewTool("new_file",
		mcp.WithDescription("Create an empty file and set it as the current file. Fails if the target already has content."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path for the new file.")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := mcp.ParseString(request, "path", "")
		logCall(ctx, session, "new_file", logging.FieldPath, path)

		result, err := session.NewFile(ctx, path)
		if err != nil {
			return errResult(err)
		}
		return jsonResult(result)
	})

	s.AddTool(mcp.NewTool("delete_file",
		mcp.WithDescription("Delete the current file and clear the session's target."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logCall(ctx, session, "delete_file")

		result, err := session.DeleteFile(ctx)
		if err != nil {
			return errResult(err)
		}
		return jsonResult(result)
	})

	s.AddTool(mcp.NewTool("find_line",
		mcp.WithDescription("Find all lines containing the search text. Each match carries a line-scoped verification id."),
		mcp.WithString("search_text", mcp.Required(), mcp.Description("Substring to search for.")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		searchText := mcp.ParseString(request, "search_text", "")
		logCall(ctx, session, "find_line")

		result, err := session.FindLine(ctx, searchText)
		if err != nil {
			return errResult(err)
		}
		return jsonResult(result)
	})
}

// parseLines extracts the replacement lines array from an overwrite request.
func parseLines(request mcp.CallToolRequest) ([]string, error) {
	raw, ok := request.GetArguments()["lines"]
	if !ok {
		return nil, fmt.Errorf("missing required argument: lines")
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("lines must be an array of strings")
	}
	lines := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("lines[%d] must be a string", i)
		}
		lines = append(lines, s)
	}
	return lines, nil
}

// logCall emits one debug entry per tool invocation with the current protocol
// state attached. The session id rides on the context logger.
func logCall(ctx context.Context, session *editor.Session, tool string, kv ...any) {
	logger := logging.FromContext(ctx)
	fields := append([]any{
		logging.FieldTool, tool,
		logging.FieldState, session.State().String(),
	}, kv...)
	logger.Debug("tool call", fields...)
}
