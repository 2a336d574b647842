package main

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"launchset/internal/config"
	"launchset/internal/enrich"
	"launchset/internal/export"
	"launchset/internal/launch"
	"launchset/internal/logging"
	"launchset/internal/preflight"
	"launchset/internal/store"
)

type runOptions struct {
	source  string
	cutoff  string
	family  string
	noStore bool
	json    bool
}

type runReport struct {
	Run       store.Run            `json:"run"`
	Stored    bool                 `json:"stored"`
	Columns   []enrich.ColumnStats `json:"columns"`
	Artifacts []export.Artifact    `json:"artifacts"`
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch, enrich, and store the launch dataset",
		Long: `Fetch past launches from the catalog (or a static snapshot), resolve
their booster, site, payload, and core details, and store the result as a run.

Exports are written for the rows matching the configured family.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeRun(cmd, ctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.source, "source", store.SourceLive, "Launch source: live or snapshot")
	cmd.Flags().StringVar(&opts.cutoff, "cutoff", "", "Inclusive date cutoff (YYYY-MM-DD), overrides pipeline.date_cutoff")
	cmd.Flags().StringVar(&opts.family, "family", "", "Booster version to keep, overrides pipeline.family")
	cmd.Flags().BoolVar(&opts.noStore, "no-store", false, "Skip saving the run to the run store")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the run report as JSON")
	return cmd
}

func executeRun(cmd *cobra.Command, ctx *commandContext, opts runOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	if err := applyRunOverrides(cfg, opts); err != nil {
		return err
	}
	source := strings.ToLower(strings.TrimSpace(opts.source))
	if source != store.SourceLive && source != store.SourceSnapshot {
		return fmt.Errorf("--source: unsupported value %q (want live or snapshot)", opts.source)
	}

	if err := preflight.Err(preflight.CheckDirectories(cfg)); err != nil {
		return fmt.Errorf("preflight: %w", err)
	}

	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return errors.New("another launchset run is in progress")
	}
	defer func() {
		_ = lock.Unlock()
	}()

	client, err := newCatalogClient(cfg)
	if err != nil {
		return err
	}

	started := time.Now().UTC()
	runLogger := logging.NewComponentLogger(logger, "run").With(
		logging.String("source", source),
		logging.String("family", cfg.Pipeline.Family),
	)
	runLogger.Info("run started", logging.String("cutoff", cfg.Pipeline.DateCutoff))

	var raws []launch.RawLaunch
	switch source {
	case store.SourceSnapshot:
		raws, err = client.Snapshot(cmd.Context(), cfg.API.SnapshotURL)
	default:
		raws, err = client.PastLaunches(cmd.Context())
	}
	if err != nil {
		return fmt.Errorf("fetch launches: %w", err)
	}

	pipeline := enrich.NewPipeline(client, cfg.Cutoff(), cfg.Pipeline.Family, logger)
	result, err := pipeline.Run(cmd.Context(), raws)
	if err != nil {
		return err
	}

	run := store.Run{
		Source:         source,
		DateCutoff:     cfg.Pipeline.DateCutoff,
		Family:         cfg.Pipeline.Family,
		StartedAt:      started,
		FinishedAt:     time.Now().UTC(),
		RawCount:       result.Counts.Raw,
		FlatCount:      result.Counts.Flat,
		WindowCount:    result.Counts.InWindow,
		EnrichedCount:  result.Counts.Enriched,
		FamilyCount:    result.Counts.Family,
		LookupFailures: result.LookupFailures(),
	}

	report := runReport{Columns: result.Columns}
	if opts.noStore {
		run.ID = uuid.NewString()
	} else {
		err := ctx.withStore(func(st *store.Store) error {
			return st.SaveRun(cmd.Context(), &run, result.Dataset)
		})
		if err != nil {
			return err
		}
		report.Stored = true
	}
	report.Run = run

	formats := export.Formats(cfg.Export.CSV, cfg.Export.JSON, cfg.Export.YAML)
	if len(formats) > 0 {
		artifacts, err := export.Files(cfg.Paths.ExportDir, exportName(run), result.Family, formats)
		if err != nil {
			return fmt.Errorf("export run %s: %w", run.ShortID(), err)
		}
		report.Artifacts = artifacts
	}

	runLogger.Info("run finished",
		logging.String(logging.FieldRunID, run.ID),
		logging.Int("rows", run.EnrichedCount),
		logging.Int("family_rows", run.FamilyCount),
		logging.Duration("duration", run.Duration()),
	)

	if opts.json {
		return writeJSON(cmd, report)
	}
	out := cmd.OutOrStdout()
	writeLines(out, runStatusLines(report, shouldColorize(out))...)
	return nil
}

func applyRunOverrides(cfg *config.Config, opts runOptions) error {
	changed := false
	if cutoff := strings.TrimSpace(opts.cutoff); cutoff != "" {
		cfg.Pipeline.DateCutoff = cutoff
		changed = true
	}
	if family := strings.TrimSpace(opts.family); family != "" {
		cfg.Pipeline.Family = family
		changed = true
	}
	if !changed {
		return nil
	}
	return cfg.Validate()
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// exportName builds the export file stem, e.g. "falcon-9-1a2b3c4d".
func exportName(run store.Run) string {
	slug := strings.Trim(slugPattern.ReplaceAllString(strings.ToLower(run.Family), "-"), "-")
	if slug == "" {
		slug = "launches"
	}
	return slug + "-" + run.ShortID()
}
