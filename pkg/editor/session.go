// Package editor implements line-addressable editing of text files behind a
// two-phase propose/decide protocol. A Session owns one target file, at most
// one fingerprinted selection, and at most one pending edit; no file mutation
// happens unless the propose step's verification and validation both succeed.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/linesmith/linesmith/pkg/config"
	"github.com/linesmith/linesmith/pkg/fsutil"
)

// Validator checks whether a full candidate file body is structurally valid
// for the language implied by path. A nil error means the body passes (or no
// gate applies). Implementations report failures as *SyntaxError where they
// can name the language.
type Validator interface {
	Validate(ctx context.Context, path, body string) error
}

// State identifies where a session is in the propose/decide protocol.
type State int

const (
	// StateIdle means no selection and no pending edit exist.
	StateIdle State = iota

	// StateSelected means a fingerprinted line range is addressed.
	StateSelected

	// StatePreviewing means a verified and validated edit awaits a decision.
	StatePreviewing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelected:
		return "selected"
	case StatePreviewing:
		return "previewing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Selection is the currently addressed line range and its fingerprint.
// It is created by a successful select and consulted, never mutated, by
// the propose step.
type Selection struct {
	Start int
	End   int
	ID    string
}

// PendingEdit snapshots a proposed range replacement after verification and
// validation both passed: the replacement lines, the whole-file candidate
// body, and the rendered preview. It is consumed exactly once by decide.
type PendingEdit struct {
	Start       int
	End         int
	Replacement []string
	Body        string
	Preview     []DiffLine
}

// Session holds the editing state for one caller. Operations are invoked one
// at a time; the session performs no internal locking. Concurrent external
// writers are handled by optimistic detection at propose time, not by locks.
type Session struct {
	id        string
	cfg       *config.Config
	validator Validator

	path      string
	selection *Selection
	pending   *PendingEdit
}

// NewSession creates a session with the given configuration and syntax
// validator. Both may be nil: nil config uses defaults, nil validator
// disables the syntax gate.
func NewSession(cfg *config.Config, validator Validator) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Session{
		id:        uuid.NewString(),
		cfg:       cfg,
		validator: validator,
	}
}

// ID returns the session's unique identifier, used in logs.
func (s *Session) ID() string { return s.id }

// CurrentFile returns the session's target file path, or "" if none is set.
func (s *Session) CurrentFile() string { return s.path }

// State reports the session's position in the propose/decide protocol.
func (s *Session) State() State {
	switch {
	case s.pending != nil:
		return StatePreviewing
	case s.selection != nil:
		return StateSelected
	default:
		return StateIdle
	}
}

// SetFile targets the session at an existing file. Any selection or pending
// edit from a previous target is discarded.
func (s *Session) SetFile(_ context.Context, path string) (string, error) {
	if !fsutil.IsFile(path) {
		return "", &IOError{Message: "Error: File not found"}
	}

	s.path = path
	s.selection = nil
	s.pending = nil
	return fmt.Sprintf("File set to: %s", path), nil
}

// Read returns the raw lines in [start, end]. It shares select's range
// validation but has no length ceiling and stores nothing.
func (s *Session) Read(ctx context.Context, start, end int) (*ReadResult, error) {
	if s.path == "" {
		return nil, statef("No file path is set")
	}
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	doc, err := fsutil.ReadDocument(ctx, s.path)
	if err != nil {
		return nil, iof("Error reading file", err)
	}

	if end > doc.LineCount() {
		end = doc.LineCount()
	}
	if start > end {
		return &ReadResult{Lines: []string{}}, nil
	}
	return &ReadResult{Lines: doc.Slice(start, end)}, nil
}

// Select validates and records the addressed line range. The end line is
// clamped to the file's last line and the clamped value is reported back.
// The selection's fingerprint is scoped to the clamped range.
func (s *Session) Select(ctx context.Context, start, end int) (*SelectResult, error) {
	if s.path == "" {
		return nil, statef("No file path is set")
	}
	if s.pending != nil {
		return nil, statef("A pending edit exists; decide accept or reject first")
	}
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	doc, err := fsutil.ReadDocument(ctx, s.path)
	if err != nil {
		return nil, iof("Error reading file", err)
	}

	if doc.LineCount() == 0 {
		return nil, validationf("Cannot select lines in an empty file")
	}
	if end > doc.LineCount() {
		end = doc.LineCount()
	}
	if start > end {
		return nil, validationf("start is beyond the end of the file (%d lines)", doc.LineCount())
	}
	if length := end - start + 1; length > s.cfg.MaxEditLines {
		return nil, validationf("Cannot select more than %d lines at once", s.cfg.MaxEditLines)
	}

	id := RangeFingerprint(doc.RangeText(start, end), start, end)
	s.selection = &Selection{Start: start, End: end, ID: id}

	return &SelectResult{Status: StatusSuccess, ID: id, End: end}, nil
}

// Overwrite proposes replacing the selected range with the given lines.
// An empty replacement deletes the range. The file is re-read fresh, the
// selection fingerprint is re-verified against live content, and the whole
// candidate body passes the syntax gate before a pending edit is parked.
// Nothing is written here.
func (s *Session) Overwrite(ctx context.Context, lines []string) (*PreviewResult, error) {
	if s.path == "" {
		return nil, statef("No file path is set")
	}
	if s.pending != nil {
		return nil, statef("A pending edit exists; decide accept or reject first")
	}
	sel := s.selection
	if sel == nil {
		return nil, statef("No selection is active")
	}

	doc, err := fsutil.ReadDocument(ctx, s.path)
	if err != nil {
		return nil, iof("Error reading file", err)
	}

	// Optimistic concurrency check: the stored fingerprint must match one
	// recomputed over the same range of the live file, byte for byte.
	if sel.End > doc.LineCount() ||
		RangeFingerprint(doc.RangeText(sel.Start, sel.End), sel.Start, sel.End) != sel.ID {
		return nil, &ConcurrencyError{
			Message: "Content mismatch: id verification failed. The file has changed since the last select; select the range again.",
		}
	}

	candidate := &fsutil.Document{
		Lines:           spliceLines(doc.Lines, lines, sel.Start, sel.End),
		TrailingNewline: doc.TrailingNewline,
	}
	body := candidate.Text()

	if s.validator != nil {
		if err := s.validator.Validate(ctx, s.path, body); err != nil {
			var serr *SyntaxError
			if errors.As(err, &serr) {
				return nil, serr
			}
			return nil, &SyntaxError{Language: languageLabel(s.path), Detail: err.Error()}
		}
	}

	preview := BuildPreview(doc.Lines, lines, sel.Start, sel.End, s.cfg.ContextLines)
	s.pending = &PendingEdit{
		Start:       sel.Start,
		End:         sel.End,
		Replacement: lines,
		Body:        body,
		Preview:     preview,
	}

	return &PreviewResult{
		Status:    StatusPreview,
		Message:   "Changes ready to apply",
		DiffLines: preview,
	}, nil
}

// Decide consumes the pending edit. "accept" writes the candidate body
// atomically and clears both the pending edit and the selection. "reject"
// discards the pending edit; the selection is retained so the caller can
// propose again without re-selecting. On a write failure the pending edit
// is kept so decide can be retried.
func (s *Session) Decide(ctx context.Context, decision string) (*DecideResult, error) {
	pending := s.pending
	if pending == nil {
		return nil, statef("No pending edit")
	}

	switch decision {
	case "accept":
		if err := fsutil.WriteAtomic(ctx, s.path, []byte(pending.Body), 0); err != nil {
			return nil, iof("Error writing to file", err)
		}
		s.pending = nil
		s.selection = nil
		return &DecideResult{Status: StatusSuccess, Message: "Changes applied successfully"}, nil

	case "reject":
		s.pending = nil
		return &DecideResult{Status: StatusSuccess, Message: "Changes discarded"}, nil

	default:
		return nil, validationf("Invalid decision %q: must be \"accept\" or \"reject\"", decision)
	}
}

// NewFile creates an empty file at path and targets the session at it.
// A target that already has content is refused.
func (s *Session) NewFile(ctx context.Context, path string) (*NewFileResult, error) {
	if doc, err := fsutil.ReadDocument(ctx, path); err == nil && doc.LineCount() > 0 {
		return nil, validationf("File %s already exists and has content", path)
	}

	if err := fsutil.WriteAtomic(ctx, path, nil, 0); err != nil {
		return nil, iof("Error creating file", err)
	}

	s.path = path
	s.selection = nil
	s.pending = nil
	return &NewFileResult{Status: StatusSuccess, ID: Fingerprint("")}, nil
}

// DeleteFile removes the session's target file. On success the session
// returns to an untargeted state; on failure (e.g. permission) the target
// is kept so the caller can retry.
func (s *Session) DeleteFile(_ context.Context) (*DeleteResult, error) {
	if s.path == "" {
		return nil, statef("No file path is set")
	}

	if err := fsutil.Remove(s.path); err != nil {
		return nil, iof("Error deleting file", err)
	}

	message := fmt.Sprintf("File %s successfully deleted", s.path)
	s.path = ""
	s.selection = nil
	s.pending = nil
	return &DeleteResult{Status: StatusSuccess, Message: message}, nil
}

// FindLine returns every line containing searchText, with each match tagged
// by its line-scoped fingerprint so a hit can be cross-checked against a
// later select of that line.
func (s *Session) FindLine(ctx context.Context, searchText string) (*FindResult, error) {
	if s.path == "" {
		return nil, statef("No file path is set")
	}

	doc, err := fsutil.ReadDocument(ctx, s.path)
	if err != nil {
		return nil, iof("Error searching file", err)
	}

	matches := []Match{}
	for i, line := range doc.Lines {
		if !strings.Contains(line, searchText) {
			continue
		}
		n := i + 1
		matches = append(matches, Match{
			LineNumber: n,
			ID:         RangeFingerprint(doc.RangeText(n, n), n, n),
			Text:       line,
		})
	}

	return &FindResult{
		Status:       StatusSuccess,
		Matches:      matches,
		TotalMatches: len(matches),
	}, nil
}

// validateRange applies the shared 1-based range checks.
func validateRange(start, end int) error {
	if start < 1 {
		return validationf("start must be at least 1")
	}
	if start > end {
		return validationf("start cannot be greater than end")
	}
	return nil
}

// spliceLines builds the candidate line set: everything before start, the
// replacement block, everything after end.
func spliceLines(original, replacement []string, start, end int) []string {
	if end > len(original) {
		end = len(original)
	}
	result := make([]string, 0, len(original)-(end-start+1)+len(replacement))
	result = append(result, original[:start-1]...)
	result = append(result, replacement...)
	result = append(result, original[end:]...)
	return result
}
