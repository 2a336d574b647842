package enrich

import (
	"fmt"
	"strings"
	"time"

	"launchset/internal/launch"
)

// Unwrap flattens a launch with exactly one payload and one core usage.
func Unwrap(raw launch.RawLaunch) (launch.FlatLaunch, error) {
	if len(raw.Payloads) != 1 || len(raw.Cores) != 1 {
		return launch.FlatLaunch{}, fmt.Errorf("%w: flight %d has %d payloads and %d cores",
			ErrCardinality, raw.FlightNumber, len(raw.Payloads), len(raw.Cores))
	}
	return launch.FlatLaunch{
		FlightNumber: raw.FlightNumber,
		DateUTC:      raw.DateUTC,
		Rocket:       raw.Rocket,
		Launchpad:    raw.Launchpad,
		Payload:      raw.Payloads[0],
		Core:         raw.Cores[0],
	}, nil
}

// FilterCardinality keeps launches with exactly one payload and exactly one
// core usage, unwrapped into scalar fields. Other launches are dropped.
func FilterCardinality(raws []launch.RawLaunch) []launch.FlatLaunch {
	out := make([]launch.FlatLaunch, 0, len(raws))
	for _, raw := range raws {
		flat, err := Unwrap(raw)
		if err != nil {
			continue
		}
		out = append(out, flat)
	}
	return out
}

// ParseLaunchDate parses a date_utc timestamp and truncates it to the UTC
// calendar date.
func ParseLaunchDate(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, err
	}
	return launch.CalendarDate(parsed), nil
}

// FilterDateWindow keeps launches dated on or before cutoff and records the
// parsed calendar date on each. Any unparseable timestamp aborts the filter.
func FilterDateWindow(records []launch.FlatLaunch, cutoff time.Time) ([]launch.FlatLaunch, error) {
	limit := launch.CalendarDate(cutoff)
	out := make([]launch.FlatLaunch, 0, len(records))
	for _, record := range records {
		date, err := ParseLaunchDate(record.DateUTC)
		if err != nil {
			return nil, fmt.Errorf("%w: flight %d: date_utc %q: %v", ErrInvalidTimestamp, record.FlightNumber, record.DateUTC, err)
		}
		if date.After(limit) {
			continue
		}
		record.Date = date
		out = append(out, record)
	}
	return out, nil
}

// FilterFamily keeps rows whose booster version equals family exactly.
func FilterFamily(rows []launch.EnrichedLaunch, family string) []launch.EnrichedLaunch {
	out := make([]launch.EnrichedLaunch, 0, len(rows))
	for _, row := range rows {
		if row.BoosterVersion == family {
			out = append(out, row)
		}
	}
	return out
}
