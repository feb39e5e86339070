package editor

import "fmt"

// The editor reports failures through a small taxonomy of typed errors.
// None of them escape the operation boundary as faults; the transport layer
// maps each to a structured error result.

// ValidationError reports malformed arguments or line ranges.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// StateError reports an operation invoked out of order: no file set,
// no active selection, or no pending edit.
type StateError struct {
	Message string
}

func (e *StateError) Error() string { return e.Message }

// ConcurrencyError reports a fingerprint mismatch at propose time,
// meaning the file was modified externally since the last select.
type ConcurrencyError struct {
	Message string
}

func (e *ConcurrencyError) Error() string { return e.Message }

// SyntaxError reports a candidate body that failed language validation.
type SyntaxError struct {
	Language string
	Detail   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s syntax error: %s", e.Language, e.Detail)
}

// IOError reports a read, write, or permission failure from the file store.
type IOError struct {
	Message string
	Err     error
}

func (e *IOError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *IOError) Unwrap() error { return e.Err }

func validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func statef(format string, args ...any) error {
	return &StateError{Message: fmt.Sprintf(format, args...)}
}

func iof(message string, err error) error {
	return &IOError{Message: message, Err: err}
}
