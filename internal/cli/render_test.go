package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/linesmith/linesmith/internal/cli"
)

func writeRenderFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func runRenderCommand(t *testing.T, args ...string) error {
	t.Helper()
	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	cmd.SetArgs(append([]string{"render"}, args...))
	return cmd.Execute()
}

func TestRenderCommand(t *testing.T) {
	t.Run("renders a valid range", func(t *testing.T) {
		file := writeRenderFixture(t, "file.txt", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5\n")
		repl := writeRenderFixture(t, "repl.txt", "New Line 2\n")

		err := runRenderCommand(t, file, repl, "--start", "2", "--end", "2", "--color", "never")
		if err != nil {
			t.Fatalf("render: %v", err)
		}
	})

	t.Run("start beyond end of file", func(t *testing.T) {
		file := writeRenderFixture(t, "file.txt", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5\n")
		repl := writeRenderFixture(t, "repl.txt", "replacement\n")

		err := runRenderCommand(t, file, repl, "--start", "10", "--end", "20")
		if err == nil {
			t.Fatal("expected error for start past the last line")
		}
		if !strings.Contains(err.Error(), "beyond the end") {
			t.Errorf("error = %q, want mention of the file end", err)
		}
	})

	t.Run("start after end", func(t *testing.T) {
		file := writeRenderFixture(t, "file.txt", "Line 1\nLine 2\n")
		repl := writeRenderFixture(t, "repl.txt", "x\n")

		err := runRenderCommand(t, file, repl, "--start", "2", "--end", "1")
		if err == nil {
			t.Fatal("expected error for start greater than end")
		}
	})
}
