// Package logging assembles structured slog loggers for launchset.
//
// It owns the console and JSON handlers, level parsing, per-component level
// overrides, and a no-op logger for tests. Components obtain a tagged logger
// through NewComponentLogger so every line carries a component attribute.
package logging
