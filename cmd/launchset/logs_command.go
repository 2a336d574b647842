package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"launchset/internal/logs"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var (
		lines     int
		follow    bool
		level     string
		component string
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print recent launchset log lines",
		Long: `Print the last lines of the launchset log file. Use --level warn to see
catalog lookup failures, or --component to narrow to one part of the pipeline
(resolver, assembler, pipeline, run).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := cfg.LogPath()
			if path == "" {
				return errors.New("file logging is disabled (paths.log_dir is empty)")
			}
			if level != "" && !logs.ValidLevel(level) {
				return fmt.Errorf("--level: unsupported value %q", level)
			}
			filter := logs.Filter{MinLevel: level, Component: component}

			out := cmd.OutOrStdout()
			result, err := logs.Tail(cmd.Context(), path, logs.TailOptions{Offset: -1, Limit: lines, Filter: filter})
			if err != nil {
				return err
			}
			writeLines(out, result.Lines...)
			for follow {
				result, err = logs.Tail(cmd.Context(), path, logs.TailOptions{
					Offset: result.Offset,
					Follow: true,
					Wait:   time.Minute,
					Filter: filter,
				})
				if err != nil {
					return err
				}
				writeLines(out, result.Lines...)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of lines to show")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing new lines until interrupted")
	cmd.Flags().StringVar(&level, "level", "", "Minimum level: debug, info, warn, or error")
	cmd.Flags().StringVar(&component, "component", "", "Only show lines from this component")
	return cmd
}
