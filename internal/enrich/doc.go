// Package enrich turns raw catalog launches into denormalized, analysis-ready
// rows.
//
// The pipeline runs in a fixed order: FilterCardinality unwraps launches that
// carry exactly one payload and one core usage, FilterDateWindow keeps launches
// on or before the cutoff date, the Assembler resolves every foreign key through
// four Resolver instances and zips their outputs into launch.EnrichedLaunch rows,
// SplitOutcomes derives the landing columns, and FilterFamily narrows the result
// to one vehicle family.
//
// Resolvers never fail. A missing ID or a failed lookup yields the resolver's
// sentinel value and a warning. Structural problems abort the run: misaligned
// resolver output wraps ErrAlignment, an unparseable or missing launch date
// wraps ErrInvalidTimestamp, and a record reaching the Assembler without a
// payload reference wraps ErrCardinality.
//
// Lookups are issued one at a time in input order with no caching.
package enrich
