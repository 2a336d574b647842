// Package store persists pipeline runs and their enriched rows in SQLite.
//
// Each run is keyed by a UUID and records the source, cutoff, family, and the
// per-stage counts. The launches table holds every enriched row of the run
// with an in_family flag, so both the full dataset and the family subset can
// be read back. Schema changes ship as embedded SQL migrations.
package store
