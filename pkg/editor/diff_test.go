package editor_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linesmith/linesmith/pkg/editor"
)

func tenLines() []string {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = fmt.Sprintf("Line %d", i+1)
	}
	return lines
}

func tags(preview []editor.DiffLine) []string {
	out := make([]string, len(preview))
	for i, d := range preview {
		out[i] = d.Tag
	}
	return out
}

func TestBuildPreview(t *testing.T) {
	t.Parallel()

	t.Run("interior replacement with context", func(t *testing.T) {
		t.Parallel()
		preview := editor.BuildPreview(tenLines(), []string{"New A", "New B"}, 5, 6, 2)

		assert.Equal(t, []string{"3", "4", "-5", "-6", "+1", "+2", "7", "8"}, tags(preview))
		assert.Equal(t, "Line 3", preview[0].Text)
		assert.Equal(t, "Line 5", preview[2].Text)
		assert.Equal(t, "New A", preview[4].Text)
		assert.Equal(t, "Line 8", preview[7].Text)
	})

	t.Run("context clipped at file start", func(t *testing.T) {
		t.Parallel()
		preview := editor.BuildPreview(tenLines(), []string{"x"}, 1, 1, 3)
		assert.Equal(t, []string{"-1", "+1", "2", "3", "4"}, tags(preview))
	})

	t.Run("context clipped at file end", func(t *testing.T) {
		t.Parallel()
		preview := editor.BuildPreview(tenLines(), []string{"x"}, 10, 10, 3)
		assert.Equal(t, []string{"7", "8", "9", "-10", "+1"}, tags(preview))
	})

	t.Run("zero context shows only the change", func(t *testing.T) {
		t.Parallel()
		preview := editor.BuildPreview(tenLines(), []string{"x"}, 5, 6, 0)
		assert.Equal(t, []string{"-5", "-6", "+1"}, tags(preview))
	})

	t.Run("negative context shows the whole file", func(t *testing.T) {
		t.Parallel()
		preview := editor.BuildPreview(tenLines(), []string{"x"}, 5, 6, -1)
		assert.Equal(t, []string{
			"1", "2", "3", "4", "-5", "-6", "+1", "7", "8", "9", "10",
		}, tags(preview))
	})

	t.Run("pure deletion emits no added entries", func(t *testing.T) {
		t.Parallel()
		preview := editor.BuildPreview(tenLines(), nil, 4, 5, 1)
		assert.Equal(t, []string{"3", "-4", "-5", "6"}, tags(preview))
	})

	t.Run("growing replacement keeps original numbering after the hunk", func(t *testing.T) {
		t.Parallel()
		preview := editor.BuildPreview(tenLines(), []string{"a", "b", "c", "d"}, 2, 2, 1)
		assert.Equal(t, []string{"1", "-2", "+1", "+2", "+3", "+4", "3"}, tags(preview))
	})
}
