// Command launchset fetches historical launches from the launch catalog,
// enriches every launch with its vehicle, site, payload, and core details, and
// stores the resulting dataset for inspection and export.
//
// Typical use:
//
//	launchset config init
//	launchset run
//	launchset show
//	launchset summary
package main
