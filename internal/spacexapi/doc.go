// Package spacexapi is a thin HTTP client for the public launch catalog API.
//
// It fetches the bulk list of past launches (or a static snapshot of the same
// shape) and looks up rockets, launchpads, payloads, and cores by ID. Entity
// fields are pointers so callers can tell a missing field from a zero value.
// The client performs exactly one request per call: no caching, batching, or
// retries.
package spacexapi
