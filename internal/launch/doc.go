// Package launch defines the launch record shapes that flow through launchset.
//
// RawLaunch mirrors a launch as served by the catalog API, with every related
// entity referenced only by ID. FlatLaunch is the same record once its payload
// and core lists have been reduced to scalars, and EnrichedLaunch is the final
// denormalized row with all references resolved. The package also owns the
// fixed output column order so exporters, the store, and the CLI render rows
// identically.
package launch
