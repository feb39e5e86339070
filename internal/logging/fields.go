// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError   = "error"
	FieldPath    = "path"
	FieldSession = "session_id"
	FieldTool    = "tool"

	// Range fields.
	FieldStart = "start"
	FieldEnd   = "end"
	FieldLines = "lines"

	// Edit protocol fields.
	FieldSelectionID = "selection_id"
	FieldDecision    = "decision"
	FieldState       = "state"

	// Validation fields.
	FieldLanguage   = "language"
	FieldValidators = "validators"

	// Configuration fields.
	FieldMaxEditLines = "max_edit_lines"
	FieldContextLines = "context_lines"
	FieldConfigPath   = "config_path"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
