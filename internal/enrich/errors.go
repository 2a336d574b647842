package enrich

import "errors"

var (
	// ErrAlignment marks resolver output whose length or order differs from
	// the records it was derived from.
	ErrAlignment = errors.New("resolver output misaligned")

	// ErrInvalidTimestamp marks a launch whose date_utc cannot be parsed.
	ErrInvalidTimestamp = errors.New("invalid launch timestamp")

	// ErrCardinality marks a launch that cannot be flattened to one payload
	// and one core usage.
	ErrCardinality = errors.New("launch cardinality violated")
)
