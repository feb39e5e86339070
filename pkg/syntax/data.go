package syntax

import (
	"context"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/linesmith/linesmith/pkg/editor"
)

// validateJSON checks that the candidate body is well-formed JSON.
// An empty body passes: an empty file is not yet a document.
func validateJSON(_ context.Context, body string) error {
	if body == "" {
		return nil
	}
	if !json.Valid([]byte(body)) {
		// json.Valid gives no detail; decode again for a positioned message.
		var v any
		if err := json.Unmarshal([]byte(body), &v); err != nil {
			return &editor.SyntaxError{Language: "JSON", Detail: err.Error()}
		}
		return &editor.SyntaxError{Language: "JSON", Detail: "invalid JSON"}
	}
	return nil
}

// validateYAML checks that the candidate body parses as YAML.
func validateYAML(_ context.Context, body string) error {
	var v any
	if err := yaml.Unmarshal([]byte(body), &v); err != nil {
		return &editor.SyntaxError{Language: "YAML", Detail: err.Error()}
	}
	return nil
}
