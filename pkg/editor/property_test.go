package editor_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/linesmith/linesmith/pkg/editor"
)

var rangeIDPattern = regexp.MustCompile(`^L(\d+)-(\d+)-[0-9a-f]{2}$`)

// TestFingerprintProperties checks the shape and determinism of ids over
// arbitrary inputs.
func TestFingerprintProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.String().Draw(rt, "text")

		id := editor.Fingerprint(text)
		if len(id) != 2 {
			rt.Fatalf("fingerprint %q has length %d, want 2", id, len(id))
		}
		if id != editor.Fingerprint(text) {
			rt.Fatalf("fingerprint of %q is not deterministic", text)
		}

		start := rapid.IntRange(1, 10_000).Draw(rt, "start")
		end := rapid.IntRange(start, 10_000).Draw(rt, "end")
		rangeID := editor.RangeFingerprint(text, start, end)
		if !rangeIDPattern.MatchString(rangeID) {
			rt.Fatalf("range id %q does not match L{start}-{end}-{hash}", rangeID)
		}
		if !strings.HasPrefix(rangeID, fmt.Sprintf("L%d-%d-", start, end)) {
			rt.Fatalf("range id %q does not encode %d-%d", rangeID, start, end)
		}
	})
}

// TestOverwriteRoundTripProperty replaces a random range of a random file with
// a random block and checks the accepted result line by line: prefix before
// the range, the replacement block, suffix after the range.
func TestOverwriteRoundTripProperty(t *testing.T) {
	// Non-empty lines keep the unterminated-file case unambiguous when the
	// content is split back into lines.
	lineGen := rapid.StringMatching(`[a-zA-Z0-9 .,_-]{1,40}`)

	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 30).Draw(rt, "lines")
		original := make([]string, n)
		for i := range original {
			original[i] = lineGen.Draw(rt, fmt.Sprintf("line%d", i))
		}
		terminated := rapid.Bool().Draw(rt, "terminated")

		content := strings.Join(original, "\n")
		if terminated {
			content += "\n"
		}
		path := filepath.Join(t.TempDir(), fmt.Sprintf("prop-%d.txt", rapid.Int64().Draw(rt, "nonce")))
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			rt.Fatalf("write fixture: %v", err)
		}

		start := rapid.IntRange(1, n).Draw(rt, "start")
		end := rapid.IntRange(start, n).Draw(rt, "end")
		m := rapid.IntRange(0, 5).Draw(rt, "replacementLines")
		replacement := make([]string, m)
		for i := range replacement {
			replacement[i] = lineGen.Draw(rt, fmt.Sprintf("repl%d", i))
		}

		ctx := context.Background()
		session := editor.NewSession(nil, nil)
		if _, err := session.SetFile(ctx, path); err != nil {
			rt.Fatalf("set_file: %v", err)
		}
		if _, err := session.Select(ctx, start, end); err != nil {
			rt.Fatalf("select %d-%d of %d: %v", start, end, n, err)
		}
		if _, err := session.Overwrite(ctx, replacement); err != nil {
			rt.Fatalf("overwrite: %v", err)
		}
		if _, err := session.Decide(ctx, "accept"); err != nil {
			rt.Fatalf("decide accept: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			rt.Fatalf("read back: %v", err)
		}

		want := make([]string, 0, n+m)
		want = append(want, original[:start-1]...)
		want = append(want, replacement...)
		want = append(want, original[end:]...)
		wantText := strings.Join(want, "\n")
		if terminated && len(want) > 0 {
			wantText += "\n"
		}
		if string(got) != wantText {
			rt.Fatalf("splice mismatch:\n got  %q\n want %q", got, wantText)
		}
	})
}
