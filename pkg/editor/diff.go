package editor

import "strconv"

// DiffLine is one entry of a diff preview. Context entries carry the original
// line number as their tag ("4"); removed entries carry "-{original_line}";
// added entries carry "+{index}", where index is the 1-based position within
// the replacement block. Context numbering after the change continues in
// original terms — the preview is a display aid, not a post-edit renumbering.
type DiffLine struct {
	Tag  string `json:"tag"`
	Text string `json:"text"`
}

// BuildPreview renders a coarse block diff for replacing original lines
// [start, end] (1-based, inclusive) with the replacement block. The whole
// selected range appears as one removed block and the whole replacement as
// one added block; no line-level equality detection shrinks the hunk.
//
// contextLines bounds the unchanged context shown on each side of the change.
// A negative value shows the whole remaining file.
func BuildPreview(original, replacement []string, start, end, contextLines int) []DiffLine {
	preview := make([]DiffLine, 0, len(original)+len(replacement))

	ctxStart := 1
	if contextLines >= 0 && start-contextLines > ctxStart {
		ctxStart = start - contextLines
	}
	for n := ctxStart; n < start; n++ {
		preview = append(preview, DiffLine{Tag: strconv.Itoa(n), Text: original[n-1]})
	}

	for n := start; n <= end && n <= len(original); n++ {
		preview = append(preview, DiffLine{Tag: "-" + strconv.Itoa(n), Text: original[n-1]})
	}

	for i, text := range replacement {
		preview = append(preview, DiffLine{Tag: "+" + strconv.Itoa(i+1), Text: text})
	}

	ctxEnd := len(original)
	if contextLines >= 0 && end+contextLines < ctxEnd {
		ctxEnd = end + contextLines
	}
	for n := end + 1; n <= ctxEnd; n++ {
		preview = append(preview, DiffLine{Tag: strconv.Itoa(n), Text: original[n-1]})
	}

	return preview
}
