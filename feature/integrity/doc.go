// Package integrity provides health checks over the place store and the snapshot cache.
//
// Unlike the 'sync' package, which changes the store, every check here is read-only.
//
// # Checks Provided
//
//   - Schema: Validates that the places table has every model column and the expected NOT NULL constraints.
//   - Places: Counts live and soft-deleted places and reports the latest updated_at.
//   - Cache: Reports whether a snapshot is cached and whether it would normalize on the next sync.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/places : Runs the places check.
//   - GET /integrity/cache : Runs the cache check.
package integrity
