// Package places owns the persisted place set.
//
// Repository is the gorm-backed store. It serves the read queries and implements
// reconcile.Gateway, so every write of a sync run happens inside one database
// transaction and readers only ever see the state before or after a run.
//
// # API Endpoints
//
//   - GET /places: all places ordered by id.
//   - GET /places?updated_since=<RFC3339>: places updated after the given instant.
//   - GET /places/:id: one place, 404 when unknown.
//
// Soft-deleted places stay visible with deleted_at set. Soft-deletion does not
// advance updated_at, so the updated_since cursor only reports inserts, tag changes
// and revivals.
package places
