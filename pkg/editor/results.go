package editor

// Operation results are plain data with JSON tags; the transport layer
// serializes them verbatim.

// StatusSuccess and StatusPreview are the two success statuses operations report.
const (
	StatusSuccess = "success"
	StatusPreview = "preview"
)

// ReadResult holds the raw lines returned by a read.
type ReadResult struct {
	Lines []string `json:"lines"`
}

// SelectResult reports a stored selection: its fingerprint id and the
// (possibly clamped) end line.
type SelectResult struct {
	Status string `json:"status"`
	ID     string `json:"id"`
	End    int    `json:"end"`
}

// PreviewResult reports a parked pending edit awaiting a decision.
type PreviewResult struct {
	Status    string     `json:"status"`
	Message   string     `json:"message"`
	DiffLines []DiffLine `json:"diff_lines"`
}

// DecideResult reports the outcome of an accept or reject.
type DecideResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewFileResult reports a created file and the fingerprint of its
// (empty) content.
type NewFileResult struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// DeleteResult reports a deleted file.
type DeleteResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Match is one find_line hit. ID is the line-scoped fingerprint, usable to
// cross-check a subsequent select.
type Match struct {
	LineNumber int    `json:"line_number"`
	ID         string `json:"id"`
	Text       string `json:"text"`
}

// FindResult reports all lines containing the search text.
type FindResult struct {
	Status       string  `json:"status"`
	Matches      []Match `json:"matches"`
	TotalMatches int     `json:"total_matches"`
}
