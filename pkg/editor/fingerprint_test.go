package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linesmith/linesmith/pkg/editor"
)

func TestFingerprint(t *testing.T) {
	t.Parallel()

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, editor.Fingerprint("hello\n"), editor.Fingerprint("hello\n"))
	})

	t.Run("two hex characters", func(t *testing.T) {
		t.Parallel()
		for _, text := range []string{"", "a", "Line 1\nLine 2\n", "日本語\n"} {
			id := editor.Fingerprint(text)
			assert.Len(t, id, 2)
			assert.Regexp(t, `^[0-9a-f]{2}$`, id)
		}
	})

	t.Run("terminator changes the hash input", func(t *testing.T) {
		t.Parallel()
		// Short digests collide easily, but the inputs must at least differ
		// for the known sha256 prefixes of these two strings.
		assert.Equal(t, "b9", editor.Fingerprint("hello world"))
		assert.Equal(t, "a9", editor.Fingerprint("hello world\n"))
	})
}

func TestRangeFingerprint(t *testing.T) {
	t.Parallel()

	id := editor.RangeFingerprint("Line 2\nLine 3\n", 2, 3)
	assert.Regexp(t, `^L2-3-[0-9a-f]{2}$`, id)
	assert.Equal(t, "L2-3-"+editor.Fingerprint("Line 2\nLine 3\n"), id)

	// Same text at a different position yields a different id.
	other := editor.RangeFingerprint("Line 2\nLine 3\n", 4, 5)
	assert.NotEqual(t, id, other)
}
