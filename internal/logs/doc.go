// Package logs tails the launchset log file and filters its lines by level
// and component.
//
// Both log formats are understood: console lines
// ("2024-05-01 10:00:00 WARN resolver: ...") and JSON records with "level" and
// "component" keys. Negative offsets mean "the last N lines"; follow mode polls
// until new lines arrive or the wait elapses.
package logs
