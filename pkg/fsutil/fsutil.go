// Package fsutil is the file store for linesmith sessions.
// It provides line-oriented reads that preserve the file's trailing-newline
// convention, and atomic whole-file writes.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel errors for categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// Document is the line-level view of a file's content at a point in time.
// Lines carry no terminators; TrailingNewline records whether the final
// line ended with one, so edits can preserve the file's convention.
type Document struct {
	// Lines holds the file content split on line terminators.
	Lines []string

	// TrailingNewline is true if the file's last line carried a terminator.
	// An empty file reports true, so new content picks up the usual convention.
	TrailingNewline bool
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// Text reassembles the document into its byte-exact file body.
func (d *Document) Text() string {
	body := strings.Join(d.Lines, "\n")
	if d.TrailingNewline && len(d.Lines) > 0 {
		body += "\n"
	}
	return body
}

// Slice returns lines [start, end] (1-based, inclusive).
// The range must have been validated by the caller.
func (d *Document) Slice(start, end int) []string {
	return d.Lines[start-1 : end]
}

// RangeText reassembles lines [start, end] the way they appear in the file,
// including the terminator after each line that carries one.
func (d *Document) RangeText(start, end int) string {
	text := strings.Join(d.Slice(start, end), "\n")
	if end < len(d.Lines) || d.TrailingNewline {
		text += "\n"
	}
	return text
}

// ReadDocument reads the file at path and splits it into lines.
func ReadDocument(ctx context.Context, path string) (*Document, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("read document: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return SplitDocument(string(content)), nil
}

// SplitDocument builds a Document from a raw file body.
func SplitDocument(content string) *Document {
	if content == "" {
		return &Document{TrailingNewline: true}
	}

	trailing := strings.HasSuffix(content, "\n")
	if trailing {
		content = content[:len(content)-1]
	}
	return &Document{
		Lines:           strings.Split(content, "\n"),
		TrailingNewline: trailing,
	}
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile reports whether path exists and is a regular file.
func IsFile(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.Mode().IsRegular()
}
