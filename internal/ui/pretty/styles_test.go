package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmith/linesmith/internal/ui/pretty"
	"github.com/linesmith/linesmith/pkg/editor"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	// With color disabled, styles should return unmodified text
	text := "test"
	assert.Equal(t, text, styles.DiffAdd.Render(text), "No-color DiffAdd should not add formatting")
	assert.Equal(t, text, styles.DiffRemove.Render(text), "No-color DiffRemove should not add formatting")
	assert.Equal(t, text, styles.Bold.Render(text), "No-color Bold should not add formatting")
}

func TestNewStyles_ColorEnabled(t *testing.T) {
	styles := pretty.NewStyles(true)
	require.NotNil(t, styles)

	// Lipgloss may not render ANSI codes in non-TTY environments,
	// so just verify the struct is properly constructed
	assert.NotEmpty(t, styles.DiffHeader.Render("x"))
	assert.NotEmpty(t, styles.DiffAdd.Render("x"))
	assert.NotEmpty(t, styles.DiffRemove.Render("x"))
	assert.NotEmpty(t, styles.DiffContext.Render("x"))
	assert.NotEmpty(t, styles.LineTag.Render("x"))
	assert.NotEmpty(t, styles.Dim.Render("x"))
	assert.NotEmpty(t, styles.Bold.Render("x"))
}

func TestIsColorEnabled_AlwaysMode(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf), "always mode should return true")
}

func TestIsColorEnabled_NeverMode(t *testing.T) {
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout), "never mode should return false")
}

func TestIsColorEnabled_AutoMode_NonTTY(t *testing.T) {
	// bytes.Buffer is not a TTY
	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf), "auto mode with non-TTY should return false")
}

func TestIsColorEnabled_AutoMode_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout), "auto mode with NO_COLOR set should return false")
}

func TestRenderPreview(t *testing.T) {
	lines := []editor.DiffLine{
		{Tag: "2", Text: "Line 2"},
		{Tag: "-3", Text: "Line 3"},
		{Tag: "+1", Text: "New Line 3"},
		{Tag: "4", Text: "Line 4"},
	}

	var buf bytes.Buffer
	pretty.RenderPreview(&buf, pretty.NewStyles(false), "notes.txt", lines)

	out := buf.String()
	assert.Contains(t, out, "preview notes.txt")
	assert.Contains(t, out, "    -3  Line 3")
	assert.Contains(t, out, "    +1  New Line 3")
	assert.Contains(t, out, "     2  Line 2")

	// One header line plus one line per entry.
	assert.Equal(t, 1+len(lines), bytes.Count(buf.Bytes(), []byte("\n")))
}
