// Package syntax gates structurally invalid writes. A Registry maps file
// extensions to validation capabilities; dispatch always receives the entire
// candidate file body, since syntactic validity is not a property of a
// sub-range. Unrecognized extensions pass without validation.
package syntax

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/linesmith/linesmith/pkg/config"
)

// ValidateFunc checks a full candidate body. It returns nil on success or a
// *editor.SyntaxError naming the language and detail on failure.
type ValidateFunc func(ctx context.Context, body string) error

// Checker is one registered validation capability.
type Checker struct {
	// Language is the display name used in error messages.
	Language string

	// Validate runs the structural check.
	Validate ValidateFunc
}

// Registry dispatches candidate bodies to checkers keyed by extension.
// It is used single-threaded alongside the session and holds no locks;
// Register is for setup time, not concurrent use.
type Registry struct {
	checkers map[string]Checker
	timeout  time.Duration
}

// NewRegistry creates an empty registry. External checkers started through
// it are bounded by timeout; zero means the default.
func NewRegistry(timeout time.Duration) *Registry {
	if timeout <= 0 {
		timeout = time.Duration(config.DefaultValidatorTimeoutSeconds) * time.Second
	}
	return &Registry{
		checkers: make(map[string]Checker),
		timeout:  timeout,
	}
}

// Register binds a checker to an extension (lowercase, with leading dot).
// A later registration for the same extension replaces the earlier one.
func (r *Registry) Register(ext string, c Checker) {
	r.checkers[ext] = c
}

// Languages returns the display names of all registered checkers, deduplicated.
func (r *Registry) Languages() []string {
	seen := make(map[string]bool, len(r.checkers))
	langs := make([]string, 0, len(r.checkers))
	for _, c := range r.checkers {
		if !seen[c.Language] {
			seen[c.Language] = true
			langs = append(langs, c.Language)
		}
	}
	return langs
}

// Validate dispatches body to the checker registered for path's extension.
// No checker means no validation: the body passes.
func (r *Registry) Validate(ctx context.Context, path, body string) error {
	ext := strings.ToLower(filepath.Ext(path))
	checker, ok := r.checkers[ext]
	if !ok {
		return nil
	}
	return checker.Validate(ctx, body)
}

// DefaultRegistry builds the standard checker set, honoring per-extension
// enablement from cfg. Script-language checkers that need an external
// interpreter are registered only when the interpreter is on PATH.
func DefaultRegistry(cfg *config.Config) *Registry {
	if cfg == nil {
		cfg = config.Default()
	}
	r := NewRegistry(cfg.ValidatorTimeout())

	register := func(ext string, c Checker) {
		if cfg.ValidatorEnabled(ext) {
			r.Register(ext, c)
		}
	}

	register(".go", Checker{Language: "Go", Validate: validateGo})
	register(".json", Checker{Language: "JSON", Validate: validateJSON})
	register(".yaml", Checker{Language: "YAML", Validate: validateYAML})
	register(".yml", Checker{Language: "YAML", Validate: validateYAML})

	if _, err := exec.LookPath(pythonBinary); err == nil {
		register(".py", Checker{Language: "Python", Validate: r.validatePython})
	}
	if _, err := exec.LookPath(nodeBinary); err == nil {
		for _, ext := range []string{".js", ".jsx", ".mjs", ".ts"} {
			register(ext, Checker{Language: "JavaScript", Validate: r.validateJavaScript})
		}
	}

	return r
}
