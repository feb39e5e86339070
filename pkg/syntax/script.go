package syntax

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/linesmith/linesmith/pkg/editor"
)

// Interpreter binaries expected on PATH for script-language checks.
const (
	pythonBinary = "python3"
	nodeBinary   = "node"
)

// pyCompileSnippet compiles stdin without executing it. A SyntaxError is
// printed to stderr and exits non-zero.
const pyCompileSnippet = `import sys
try:
    compile(sys.stdin.read(), "<candidate>", "exec")
except SyntaxError as e:
    print(e, file=sys.stderr)
    sys.exit(1)
`

// validatePython compiles the candidate body with the system Python.
func (r *Registry) validatePython(ctx context.Context, body string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, pythonBinary, "-c", pyCompileSnippet)
	cmd.Stdin = strings.NewReader(body)
	return runCheck(ctx, cmd, "Python")
}

// validateJavaScript runs node --check over the candidate body. Node's
// checker wants a file, so the body goes through a temp file.
func (r *Registry) validateJavaScript(ctx context.Context, body string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tmp, err := os.CreateTemp("", "linesmith-check-*.js")
	if err != nil {
		return &editor.SyntaxError{Language: "JavaScript", Detail: fmt.Sprintf("cannot stage candidate: %v", err)}
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(body); err != nil {
		_ = tmp.Close()
		return &editor.SyntaxError{Language: "JavaScript", Detail: fmt.Sprintf("cannot stage candidate: %v", err)}
	}
	if err := tmp.Close(); err != nil {
		return &editor.SyntaxError{Language: "JavaScript", Detail: fmt.Sprintf("cannot stage candidate: %v", err)}
	}

	cmd := exec.CommandContext(ctx, nodeBinary, "--check", filepath.Clean(tmpPath))
	return runCheck(ctx, cmd, "JavaScript")
}

// runCheck executes an external syntax checker. Non-zero exit is a validation
// failure carrying the process's error stream; a timeout or any other process
// failure is likewise reported as a validation failure, never a crash.
func runCheck(ctx context.Context, cmd *exec.Cmd, language string) error {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &editor.SyntaxError{Language: language, Detail: "syntax check timed out"}
	}

	detail := strings.TrimSpace(stderr.String())
	if detail == "" {
		detail = err.Error()
	}
	return &editor.SyntaxError{Language: language, Detail: detail}
}
