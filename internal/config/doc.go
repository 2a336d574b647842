// Package config loads, normalizes, and validates launchset configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// LAUNCHSET_API_BASE_URL. The Config type centralizes the catalog endpoint,
// the pipeline's date cutoff and target vehicle family, output locations, and
// logging knobs.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, a parsed cutoff date, and clear validation errors.
package config
