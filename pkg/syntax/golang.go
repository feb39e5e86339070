package syntax

import (
	"context"
	"go/parser"
	"go/token"

	"github.com/linesmith/linesmith/pkg/editor"
)

// validateGo parses the candidate body as a Go source file.
func validateGo(_ context.Context, body string) error {
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "candidate.go", body, parser.AllErrors); err != nil {
		return &editor.SyntaxError{Language: "Go", Detail: err.Error()}
	}
	return nil
}
