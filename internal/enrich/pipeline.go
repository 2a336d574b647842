package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"launchset/internal/launch"
	"launchset/internal/logging"
)

// Counts records how many launches survived each stage.
type Counts struct {
	Raw      int `json:"raw"`
	Flat     int `json:"flat"`
	InWindow int `json:"in_window"`
	Enriched int `json:"enriched"`
	Family   int `json:"family"`
}

// Result is the output of one pipeline run.
type Result struct {
	// Dataset holds every enriched row before the family filter.
	Dataset []launch.EnrichedLaunch
	// Family holds the rows matching the target family.
	Family  []launch.EnrichedLaunch
	Counts  Counts
	Columns []ColumnStats
}

// LookupFailures totals failed lookups across all resolvers.
func (r *Result) LookupFailures() int {
	total := 0
	for _, column := range r.Columns {
		total += column.Failures
	}
	return total
}

// Pipeline runs the full enrichment sequence.
type Pipeline struct {
	assembler *Assembler
	cutoff    time.Time
	family    string
	logger    *slog.Logger
}

// NewPipeline builds a pipeline with an inclusive date cutoff and a target
// vehicle family.
func NewPipeline(catalog Catalog, cutoff time.Time, family string, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		assembler: NewAssembler(catalog, logger),
		cutoff:    launch.CalendarDate(cutoff),
		family:    family,
		logger:    logging.NewComponentLogger(logger, "pipeline"),
	}
}

// Run filters, enriches, splits, and narrows raws.
func (p *Pipeline) Run(ctx context.Context, raws []launch.RawLaunch) (*Result, error) {
	result := &Result{}
	result.Counts.Raw = len(raws)

	flat := FilterCardinality(raws)
	result.Counts.Flat = len(flat)
	p.logger.Debug("cardinality filter applied",
		logging.Int("kept", len(flat)),
		logging.Int("dropped", len(raws)-len(flat)),
	)

	windowed, err := FilterDateWindow(flat, p.cutoff)
	if err != nil {
		return nil, fmt.Errorf("date window: %w", err)
	}
	result.Counts.InWindow = len(windowed)
	p.logger.Debug("date window applied",
		logging.String("cutoff", p.cutoff.Format(launch.DateLayout)),
		logging.Int("kept", len(windowed)),
	)

	rows, stats, err := p.assembler.assemble(ctx, windowed)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	result.Columns = stats

	result.Dataset = SplitOutcomes(rows)
	result.Counts.Enriched = len(result.Dataset)
	result.Family = FilterFamily(result.Dataset, p.family)
	result.Counts.Family = len(result.Family)

	p.logger.Info("pipeline finished",
		logging.Int("raw", result.Counts.Raw),
		logging.Int("enriched", result.Counts.Enriched),
		logging.String("family", p.family),
		logging.Int("family_rows", result.Counts.Family),
		logging.Int("lookup_failures", result.LookupFailures()),
	)
	return result, nil
}
