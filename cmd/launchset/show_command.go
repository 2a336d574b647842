package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"launchset/internal/export"
	"launchset/internal/launch"
	"launchset/internal/report"
	"launchset/internal/store"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var (
		all     bool
		jsonOut bool
		yamlOut bool
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "show [RUN_ID]",
		Short: "Display the rows of a stored run",
		Long: `Display the rows of a stored run. RUN_ID may be a unique prefix; the
latest run is shown when omitted. Only rows of the run's family are shown
unless --all is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOut && yamlOut {
				return errors.New("--json and --yaml are mutually exclusive")
			}
			return ctx.withStore(func(st *store.Store) error {
				run, err := resolveRun(cmd, st, args)
				if err != nil {
					return err
				}
				rows, err := st.Launches(cmd.Context(), run.ID, !all)
				if err != nil {
					return err
				}
				if limit > 0 && len(rows) > limit {
					rows = rows[:limit]
				}

				switch {
				case jsonOut:
					return export.WriteJSON(cmd.OutOrStdout(), rows)
				case yamlOut:
					return export.WriteYAML(cmd.OutOrStdout(), rows)
				}

				out := cmd.OutOrStdout()
				scope := run.Family
				if all {
					scope = "all rows"
				}
				fmt.Fprintf(out, "Run %s (%s, cutoff %s): %s shown\n",
					run.ShortID(), scope, run.DateCutoff, formatCount(len(rows)))
				if len(rows) == 0 {
					return nil
				}
				fmt.Fprintln(out, renderLaunchTable(rows))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Show every enriched row, not just the family")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print rows as JSON")
	cmd.Flags().BoolVar(&yamlOut, "yaml", false, "Print rows as YAML")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum rows to print (0 prints all)")
	return cmd
}

func renderLaunchTable(rows []launch.EnrichedLaunch) string {
	aligns := make([]columnAlignment, len(launch.Columns))
	for i, name := range launch.Columns {
		if report.IsNumeric(name) {
			aligns[i] = alignRight
		}
	}
	body := make([][]string, 0, len(rows))
	for _, row := range rows {
		body = append(body, row.Values())
	}
	return renderTable(launch.Columns, body, aligns)
}
