package enrich

import (
	"context"
	"fmt"
	"log/slog"

	"launchset/internal/launch"
	"launchset/internal/logging"
)

// ColumnStats summarizes one resolver pass.
type ColumnStats struct {
	Column   string `json:"column"`
	Lookups  int    `json:"lookups"`
	Failures int    `json:"failures"`
}

// Assembler resolves every foreign key of a filtered launch sequence and zips
// the results into enriched rows.
type Assembler struct {
	booster *Resolver[BoosterFields]
	site    *Resolver[SiteFields]
	payload *Resolver[PayloadFields]
	core    *CoreResolver
	logger  *slog.Logger
}

// NewAssembler wires the four resolvers against catalog.
func NewAssembler(catalog Catalog, logger *slog.Logger) *Assembler {
	return &Assembler{
		booster: NewBoosterResolver(catalog, logger),
		site:    NewSiteResolver(catalog, logger),
		payload: NewPayloadResolver(catalog, logger),
		core:    NewCoreResolver(catalog, logger),
		logger:  logging.NewComponentLogger(logger, "assembler"),
	}
}

// Assemble returns one enriched row per record, in record order. Outcome
// columns are left for SplitOutcomes. Records must come out of
// FilterCardinality and FilterDateWindow: a record without a payload reference
// fails with ErrCardinality and an undated record with ErrInvalidTimestamp.
func (a *Assembler) Assemble(ctx context.Context, records []launch.FlatLaunch) ([]launch.EnrichedLaunch, error) {
	rows, _, err := a.assemble(ctx, records)
	return rows, err
}

func (a *Assembler) assemble(ctx context.Context, records []launch.FlatLaunch) ([]launch.EnrichedLaunch, []ColumnStats, error) {
	if err := validateRecords(records); err != nil {
		return nil, nil, err
	}

	keys := make([]int, len(records))
	rockets := make([]Ref, len(records))
	pads := make([]Ref, len(records))
	payloads := make([]Ref, len(records))
	cores := make([]CoreRef, len(records))
	for i, record := range records {
		keys[i] = record.FlightNumber
		rockets[i] = Ref{Key: record.FlightNumber, ID: record.Rocket}
		pads[i] = Ref{Key: record.FlightNumber, ID: record.Launchpad}
		payloads[i] = Ref{Key: record.FlightNumber, ID: record.Payload}
		cores[i] = CoreRef{Key: record.FlightNumber, Usage: record.Core}
	}

	boosters := a.booster.Resolve(ctx, rockets)
	if err := boosters.Check(keys); err != nil {
		return nil, nil, err
	}
	sites := a.site.Resolve(ctx, pads)
	if err := sites.Check(keys); err != nil {
		return nil, nil, err
	}
	cargo := a.payload.Resolve(ctx, payloads)
	if err := cargo.Check(keys); err != nil {
		return nil, nil, err
	}
	usage := a.core.Resolve(ctx, cores)
	if err := usage.Check(keys); err != nil {
		return nil, nil, err
	}

	stats := []ColumnStats{
		{Column: boosters.Column, Lookups: boosters.Lookups, Failures: boosters.Failures},
		{Column: sites.Column, Lookups: sites.Lookups, Failures: sites.Failures},
		{Column: cargo.Column, Lookups: cargo.Lookups, Failures: cargo.Failures},
		{Column: usage.Column, Lookups: usage.Lookups, Failures: usage.Failures},
	}

	rows := make([]launch.EnrichedLaunch, len(records))
	for i, record := range records {
		site := sites.Values[i]
		payload := cargo.Values[i]
		core := usage.Values[i]
		rows[i] = launch.EnrichedLaunch{
			FlightNumber:   record.FlightNumber,
			Date:           record.Date,
			BoosterVersion: boosters.Values[i].Name,
			PayloadMass:    payload.MassKg,
			Orbit:          payload.Orbit,
			LaunchSite:     site.Name,
			Outcome:        core.Outcome,
			Flights:        core.Flights,
			GridFins:       core.GridFins,
			Reused:         core.Reused,
			Legs:           core.Legs,
			LandingPad:     core.LandingPad,
			Block:          core.Block,
			ReusedCount:    core.ReuseCount,
			Serial:         core.Serial,
			Longitude:      site.Longitude,
			Latitude:       site.Latitude,
		}
	}

	for _, stat := range stats {
		a.logger.Debug("column resolved",
			logging.String("column", stat.Column),
			logging.Int("lookups", stat.Lookups),
			logging.Int("failures", stat.Failures),
		)
	}
	return rows, stats, nil
}

func validateRecords(records []launch.FlatLaunch) error {
	for _, record := range records {
		if !record.Payload.Present() {
			return fmt.Errorf("%w: flight %d has no payload reference", ErrCardinality, record.FlightNumber)
		}
		if record.Date.IsZero() {
			return fmt.Errorf("%w: flight %d has no parsed launch date", ErrInvalidTimestamp, record.FlightNumber)
		}
	}
	return nil
}
