package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmith/linesmith/internal/logging"
	"github.com/linesmith/linesmith/pkg/editor"
)

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestJSONResult(t *testing.T) {
	result, err := jsonResult(&editor.SelectResult{Status: editor.StatusSuccess, ID: "L2-4-ab", End: 4})
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &payload))
	assert.Equal(t, "success", payload["status"])
	assert.Equal(t, "L2-4-ab", payload["id"])
	assert.Equal(t, float64(4), payload["end"])
}

func TestErrResult(t *testing.T) {
	result, err := errResult(&editor.StateError{Message: "No file path is set. Use set_file first."})
	require.NoError(t, err, "editor errors must not escape as protocol faults")

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &payload))
	assert.Equal(t, "No file path is set. Use set_file first.", payload["error"])
}

func TestLogCall(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	session := editor.NewSession(nil, nil)
	ctx := logging.WithSession(logging.WithLogger(context.Background(), logger), session.ID())

	logCall(ctx, session, "read", logging.FieldStart, 1, logging.FieldEnd, 5)

	out := buf.String()
	assert.Contains(t, out, "tool=read")
	assert.Contains(t, out, "state=idle")
	assert.Contains(t, out, "session_id="+session.ID())
	assert.Contains(t, out, "start=1")
	assert.Contains(t, out, "end=5")
}

func TestParseLines(t *testing.T) {
	makeRequest := func(args map[string]any) mcp.CallToolRequest {
		var request mcp.CallToolRequest
		request.Params.Arguments = args
		return request
	}

	t.Run("strings", func(t *testing.T) {
		lines, err := parseLines(makeRequest(map[string]any{"lines": []any{"a", "b"}}))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, lines)
	})

	t.Run("empty array", func(t *testing.T) {
		lines, err := parseLines(makeRequest(map[string]any{"lines": []any{}}))
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("missing argument", func(t *testing.T) {
		_, err := parseLines(makeRequest(map[string]any{}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required argument")
	})

	t.Run("non-array", func(t *testing.T) {
		_, err := parseLines(makeRequest(map[string]any{"lines": "a\nb"}))
		require.Error(t, err)
	})

	t.Run("non-string element", func(t *testing.T) {
		_, err := parseLines(makeRequest(map[string]any{"lines": []any{"a", 2}}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lines[1]")
	})
}
