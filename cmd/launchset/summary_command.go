package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"launchset/internal/report"
	"launchset/internal/store"
)

func newSummaryCommand(ctx *commandContext) *cobra.Command {
	var (
		all     bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "summary [RUN_ID]",
		Short: "Describe the columns of a stored run",
		Long: `Summarize a stored run column by column: missing values, numeric
statistics (mean, std, quartiles), and categorical frequencies.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				run, err := resolveRun(cmd, st, args)
				if err != nil {
					return err
				}
				rows, err := st.Launches(cmd.Context(), run.ID, !all)
				if err != nil {
					return err
				}
				summary := report.Describe(rows)
				if jsonOut {
					return writeJSON(cmd, summary)
				}
				renderSummary(cmd.OutOrStdout(), run, summary, all)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Summarize every enriched row, not just the family")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the summary as JSON")
	return cmd
}

func renderSummary(out io.Writer, run *store.Run, summary report.Summary, all bool) {
	colorize := shouldColorize(out)
	scope := run.Family
	if all {
		scope = "all rows"
	}
	writeLines(out, renderSectionHeader(fmt.Sprintf("Run %s (%s)", run.ShortID(), scope), colorize)...)
	writeLines(out, renderStatusLine("Rows", statusInfo, formatCount(summary.Rows), colorize))
	if summary.Rows == 0 {
		return
	}

	var missing [][]string
	var numeric [][]string
	var categorical [][]string
	for _, column := range summary.Columns {
		if column.Missing > 0 {
			missing = append(missing, []string{
				column.Name,
				formatCount(column.Missing),
				fmt.Sprintf("%.1f%%", column.MissingRatio()*100),
			})
		}
		switch {
		case column.Numeric != nil:
			n := column.Numeric
			std := "-"
			if n.Std != nil {
				std = formatStat(*n.Std)
			}
			numeric = append(numeric, []string{
				column.Name,
				formatCount(column.Count),
				formatStat(n.Mean),
				std,
				formatStat(n.Min),
				formatStat(n.Q25),
				formatStat(n.Median),
				formatStat(n.Q75),
				formatStat(n.Max),
			})
		case column.Categorical != nil:
			c := column.Categorical
			categorical = append(categorical, []string{
				column.Name,
				formatCount(column.Count),
				formatCount(c.Unique),
				c.Top,
				formatCount(c.Freq),
			})
		}
	}

	if len(missing) > 0 {
		fmt.Fprintln(out)
		writeLines(out, renderSectionHeader("Missing values", colorize)...)
		fmt.Fprintln(out, renderTable(
			[]string{"Column", "Missing", "Ratio"},
			missing,
			[]columnAlignment{alignLeft, alignRight, alignRight},
		))
	}
	if len(numeric) > 0 {
		fmt.Fprintln(out)
		writeLines(out, renderSectionHeader("Numeric columns", colorize)...)
		fmt.Fprintln(out, renderTable(
			[]string{"Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"},
			numeric,
			[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight},
		))
	}
	if len(categorical) > 0 {
		fmt.Fprintln(out)
		writeLines(out, renderSectionHeader("Categorical columns", colorize)...)
		fmt.Fprintln(out, renderTable(
			[]string{"Column", "Count", "Unique", "Top", "Freq"},
			categorical,
			[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft, alignRight},
		))
	}
}
