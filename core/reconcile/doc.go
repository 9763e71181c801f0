// Package reconcile keeps the persisted place set in line with fresh provider snapshots.
//
// A reconciliation pass is a pure diff followed by one transactional apply:
//   - Reconcile compares normalized snapshot elements with the cached records, keyed
//     by the provider id, and returns a Plan of actions.
//   - Apply executes the plan through a Gateway inside a single transaction, so a
//     failed step leaves the store exactly as it was.
//
// # Actions
//
//   - soft_delete: a live place is missing from the snapshot. Places already soft
//     deleted are left alone.
//   - insert: the id has never been persisted.
//   - update_tags: the canonical tag blobs differ. Equal blobs produce no action, so
//     a pass against an unchanged snapshot writes nothing.
//   - revive: opt-in, clears deleted_at when a deleted id reappears.
//
// # Tag comparison
//
// Tags are compared only as opaque canonical blobs (see Tags.Canonical). Stored blobs
// are re-canonicalized before comparison so key order in the database never causes a
// spurious update.
//
// # Usage Example
//
//	plan, err := reconcile.Reconcile(elements, cached, time.Now(), reconcile.ReconcileOptions{})
//	if err != nil {
//	    return err
//	}
//	executed, err := reconcile.ApplyPlan(ctx, repo, plan, opts)
package reconcile
