package store

import (
	"database/sql"
	"time"

	"launchset/internal/launch"
)

const runColumns = "id, source, date_cutoff, family, started_at, finished_at, raw_count, flat_count, window_count, enriched_count, family_count, lookup_failures"

const launchColumns = "flight_number, launch_date, booster_version, payload_mass, orbit, launch_site, outcome, flights, grid_fins, reused, legs, landing_pad, block, reused_count, serial, longitude, latitude, landing_success, landing_type"

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*Run, error) {
	var (
		run         Run
		startedRaw  string
		finishedRaw string
	)
	if err := s.Scan(
		&run.ID,
		&run.Source,
		&run.DateCutoff,
		&run.Family,
		&startedRaw,
		&finishedRaw,
		&run.RawCount,
		&run.FlatCount,
		&run.WindowCount,
		&run.EnrichedCount,
		&run.FamilyCount,
		&run.LookupFailures,
	); err != nil {
		return nil, err
	}
	run.StartedAt = parseTime(startedRaw)
	run.FinishedAt = parseTime(finishedRaw)
	return &run, nil
}

func launchArgs(row launch.EnrichedLaunch) []any {
	return []any{
		row.FlightNumber,
		nullableDate(row.Date),
		row.BoosterVersion,
		nullableFloat(row.PayloadMass),
		row.Orbit,
		row.LaunchSite,
		row.Outcome,
		nullableInt(row.Flights),
		nullableBool(row.GridFins),
		nullableBool(row.Reused),
		nullableBool(row.Legs),
		nullableString(row.LandingPad),
		nullableInt(row.Block),
		nullableInt(row.ReusedCount),
		nullableString(row.Serial),
		nullableFloat(row.Longitude),
		nullableFloat(row.Latitude),
		row.LandingSuccess,
		row.LandingType,
	}
}

func scanLaunch(s scanner) (launch.EnrichedLaunch, error) {
	var (
		row         launch.EnrichedLaunch
		date        sql.NullString
		mass        sql.NullFloat64
		flights     sql.NullInt64
		gridFins    sql.NullBool
		reused      sql.NullBool
		legs        sql.NullBool
		landingPad  sql.NullString
		block       sql.NullInt64
		reusedCount sql.NullInt64
		serial      sql.NullString
		longitude   sql.NullFloat64
		latitude    sql.NullFloat64
	)
	if err := s.Scan(
		&row.FlightNumber,
		&date,
		&row.BoosterVersion,
		&mass,
		&row.Orbit,
		&row.LaunchSite,
		&row.Outcome,
		&flights,
		&gridFins,
		&reused,
		&legs,
		&landingPad,
		&block,
		&reusedCount,
		&serial,
		&longitude,
		&latitude,
		&row.LandingSuccess,
		&row.LandingType,
	); err != nil {
		return launch.EnrichedLaunch{}, err
	}
	if date.Valid {
		if parsed, err := launch.ParseDate(date.String); err == nil {
			row.Date = parsed
		}
	}
	row.PayloadMass = floatPtr(mass)
	row.Flights = intPtr(flights)
	row.GridFins = boolPtr(gridFins)
	row.Reused = boolPtr(reused)
	row.Legs = boolPtr(legs)
	row.LandingPad = stringPtr(landingPad)
	row.Block = intPtr(block)
	row.ReusedCount = intPtr(reusedCount)
	row.Serial = stringPtr(serial)
	row.Longitude = floatPtr(longitude)
	row.Latitude = floatPtr(latitude)
	return row, nil
}

// timestampLayout is fixed width so that text order in SQLite matches time order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTimestamp(value time.Time) string {
	return value.UTC().Format(timestampLayout)
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func nullableDate(value time.Time) any {
	if value.IsZero() {
		return nil
	}
	return value.Format(launch.DateLayout)
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableInt(value *int) any {
	if value == nil {
		return nil
	}
	return int64(*value)
}

func nullableFloat(value *float64) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableBool(value *bool) any {
	if value == nil {
		return nil
	}
	return *value
}

func stringPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	v := value.String
	return &v
}

func intPtr(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}
	v := int(value.Int64)
	return &v
}

func floatPtr(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}
	v := value.Float64
	return &v
}

func boolPtr(value sql.NullBool) *bool {
	if !value.Valid {
		return nil
	}
	v := value.Bool
	return &v
}
