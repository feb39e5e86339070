package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linesmith/linesmith/internal/logging"
	"github.com/linesmith/linesmith/internal/mcpserver"
	"github.com/linesmith/linesmith/pkg/config"
)

type serveFlags struct {
	configPath   string
	maxEditLines int
	contextLines int
}

func newServeCommand(info BuildInfo) *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP editing server on stdio",
		Long: `Run the linesmith MCP server, reading requests from stdin and writing
responses to stdout. Logs go to stderr.

Configuration is resolved from defaults, then an optional config file
(--config, or .linesmith.yaml in the working directory), then LINESMITH_*
environment variables, then flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags, info)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to config file")
	cmd.Flags().IntVar(&flags.maxEditLines, "max-edit-lines", 0,
		"maximum lines one select may cover (overrides config)")
	cmd.Flags().IntVar(&flags.contextLines, "context-lines", -2,
		"unchanged lines shown around diff previews; negative shows the whole file (overrides config)")

	return cmd
}

func runServe(cmd *cobra.Command, flags *serveFlags, info BuildInfo) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("max-edit-lines") {
		cfg.MaxEditLines = flags.maxEditLines
	}
	if cmd.Flags().Changed("context-lines") {
		cfg.ContextLines = flags.contextLines
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.LogLevel != "" && !cmd.Root().PersistentFlags().Changed("debug") {
		logging.SetLevel(cfg.LogLevel)
	}

	logger := logging.Default()
	fields := []any{
		logging.FieldMaxEditLines, cfg.MaxEditLines,
		logging.FieldContextLines, cfg.ContextLines,
	}
	if flags.configPath != "" {
		fields = append(fields, logging.FieldConfigPath, flags.configPath)
	}
	logger.Info("starting server", fields...)

	s := mcpserver.New(cfg, info.Version)
	if err := mcpserver.Serve(s); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
