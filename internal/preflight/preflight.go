package preflight

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"launchset/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll executes every applicable check for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := CheckDirectories(cfg)
	results = append(results, CheckCatalog(ctx, cfg.API.BaseURL, cfg.API.UserAgent))
	if strings.TrimSpace(cfg.API.SnapshotURL) != "" {
		results = append(results, CheckSnapshot(ctx, cfg.API.SnapshotURL, cfg.API.UserAgent))
	}
	results = append(results, CheckStore(ctx, cfg))
	return results
}

// CheckDirectories checks the data and log directories, plus the export
// directory when any export is enabled.
func CheckDirectories(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	results := []Result{CheckDirectoryAccess("Data directory", cfg.Paths.DataDir)}
	if cfg.Paths.LogDir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}
	if cfg.Export.CSV || cfg.Export.JSON || cfg.Export.YAML {
		results = append(results, CheckDirectoryAccess("Export directory", cfg.Paths.ExportDir))
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

// Err joins failed results into one error, or returns nil.
func Err(results []Result) error {
	var errs []error
	for _, r := range Failed(results) {
		errs = append(errs, fmt.Errorf("%s: %s", strings.ToLower(r.Name), r.Detail))
	}
	return errors.Join(errs...)
}
