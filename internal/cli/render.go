package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/linesmith/linesmith/internal/ui/pretty"
	"github.com/linesmith/linesmith/pkg/editor"
	"github.com/linesmith/linesmith/pkg/fsutil"
)

type renderFlags struct {
	start        int
	end          int
	contextLines int
	color        string
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render <file> <replacement>",
		Short: "Render the diff preview for a range replacement",
		Long: `Render the block diff preview that an overwrite of <file> would produce,
taking the whole of <replacement> as the proposed lines for the range
--start..--end. This is an offline debugging aid; nothing is written.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], args[1], flags)
		},
	}

	cmd.Flags().IntVar(&flags.start, "start", 1, "first line of the replaced range (1-based)")
	cmd.Flags().IntVar(&flags.end, "end", 1, "last line of the replaced range (inclusive)")
	cmd.Flags().IntVar(&flags.contextLines, "context-lines", -1,
		"unchanged lines shown around the change; negative shows the whole file")
	cmd.Flags().StringVar(&flags.color, "color", "auto", "colorize output: auto, always, never")

	return cmd
}

func runRender(ctx context.Context, path, replacementPath string, flags *renderFlags) error {
	if flags.start < 1 {
		return fmt.Errorf("start must be at least 1")
	}
	if flags.start > flags.end {
		return fmt.Errorf("start cannot be greater than end")
	}

	doc, err := fsutil.ReadDocument(ctx, path)
	if err != nil {
		return err
	}
	replacement, err := fsutil.ReadDocument(ctx, replacementPath)
	if err != nil {
		return err
	}

	end := flags.end
	if end > doc.LineCount() {
		end = doc.LineCount()
	}
	if flags.start > end {
		return fmt.Errorf("start is beyond the end of %s (%d lines)", path, doc.LineCount())
	}

	preview := editor.BuildPreview(doc.Lines, replacement.Lines, flags.start, end, flags.contextLines)

	styles := pretty.NewStyles(pretty.IsColorEnabled(flags.color, os.Stdout))
	pretty.RenderPreview(os.Stdout, styles, path, preview)
	return nil
}
