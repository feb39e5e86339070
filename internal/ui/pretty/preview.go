package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/linesmith/linesmith/pkg/editor"
)

// RenderPreview writes a styled diff preview to w, one entry per line.
// Context entries show their original line number; removed and added entries
// keep their "-{n}" / "+{k}" tags.
func RenderPreview(w io.Writer, styles *Styles, path string, lines []editor.DiffLine) {
	fmt.Fprintln(w, styles.DiffHeader.Render("preview "+path))

	for _, line := range lines {
		var styled string
		switch {
		case strings.HasPrefix(line.Tag, "+"):
			styled = styles.DiffAdd.Render(fmt.Sprintf("%6s  %s", line.Tag, line.Text))
		case strings.HasPrefix(line.Tag, "-"):
			styled = styles.DiffRemove.Render(fmt.Sprintf("%6s  %s", line.Tag, line.Text))
		default:
			styled = styles.DiffContext.Render(fmt.Sprintf("%6s  %s", line.Tag, line.Text))
		}
		fmt.Fprintln(w, styled)
	}
}
