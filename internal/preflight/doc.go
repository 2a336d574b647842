// Package preflight provides readiness checks for the directories and remote
// endpoints launchset depends on.
//
// These checks run in two contexts:
//   - The run command calls CheckDirectories before fetching anything and
//     refuses to start when a directory is unusable.
//   - The "launchset doctor" command calls RunAll, which adds catalog,
//     snapshot, and run store checks.
//
// Export directory checks are skipped when every export is disabled.
package preflight
