package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"launchset/internal/store"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var (
		limit   int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List stored runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				runs, err := st.ListRuns(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if jsonOut {
					if runs == nil {
						runs = []store.Run{}
					}
					return writeJSON(cmd, runs)
				}
				if len(runs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No runs stored")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderRunsTable(runs))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to list (0 lists all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print runs as JSON")

	cmd.AddCommand(newRunsPruneCommand(ctx))
	cmd.AddCommand(newRunsDeleteCommand(ctx))
	return cmd
}

func newRunsPruneCommand(ctx *commandContext) *cobra.Command {
	var keep int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete all but the most recent runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if keep < 0 {
				return errors.New("--keep must be zero or greater")
			}
			return ctx.withStore(func(st *store.Store) error {
				removed, err := st.Prune(cmd.Context(), keep)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s run(s), kept %d most recent\n", formatCount(removed), keep)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&keep, "keep", 10, "Number of most recent runs to keep")
	return cmd
}

func newRunsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete RUN_ID",
		Short: "Delete a stored run and its rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				run, err := st.GetRun(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if err := st.DeleteRun(cmd.Context(), run.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted run %s\n", run.ShortID())
				return nil
			})
		},
	}
}

func renderRunsTable(runs []store.Run) string {
	headers := []string{"ID", "Started", "Source", "Cutoff", "Family", "Rows", "Family Rows", "Failures", "Duration"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.ShortID(),
			humanize.Time(run.StartedAt),
			run.Source,
			run.DateCutoff,
			run.Family,
			formatCount(run.EnrichedCount),
			formatCount(run.FamilyCount),
			strconv.Itoa(run.LookupFailures),
			run.Duration().Round(10 * time.Millisecond).String(),
		})
	}
	return renderTable(headers, rows, aligns)
}
