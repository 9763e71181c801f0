package reconcile

import (
	"context"
	"fmt"
	"time"
)

// Gateway is the transactional write side of the persisted record set.
type Gateway interface {
	// Transaction runs fn inside a write transaction. The transaction commits only
	// when fn returns nil and rolls back on any error or panic.
	Transaction(ctx context.Context, fn func(tx Txn) error) error
}

// Txn holds the single-row writes available inside a transaction.
// Each write is keyed by the place id.
type Txn interface {
	// Insert creates a place. It fails with ErrDuplicateID if the id exists.
	Insert(ctx context.Context, e Element, tags string, now time.Time) error

	// UpdateTags replaces the tag blob and advances updated_at.
	UpdateTags(ctx context.Context, id int64, tags string, now time.Time) error

	// SoftDelete sets deleted_at on a live place.
	SoftDelete(ctx context.Context, id int64, now time.Time) error

	// Revive clears deleted_at and advances updated_at.
	Revive(ctx context.Context, id int64, now time.Time) error
}

// Apply executes every action of the plan inside one transaction.
// If any step fails the transaction is rolled back, the returned error is an
// *ApplyError and the persisted state is unchanged.
func Apply(ctx context.Context, gw Gateway, plan *Plan) (executed int, err error) {
	if plan == nil || len(plan.Actions) == 0 {
		return 0, nil
	}

	err = gw.Transaction(ctx, func(tx Txn) error {
		for _, action := range plan.Actions {
			if err := applyAction(ctx, tx, action); err != nil {
				return &ApplyError{Action: action, Err: err}
			}
			executed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return executed, nil
}

// ApplyPlan executes the plan unless opts.DryRun is set.
// Returns the number of actions executed and any error encountered.
func ApplyPlan(ctx context.Context, gw Gateway, plan *Plan, opts ReconcileOptions) (int, error) {
	// Safety check: do not execute in dry-run
	if opts.DryRun {
		return 0, nil
	}
	return Apply(ctx, gw, plan)
}

// ReconcileAndApply is a convenience wrapper that plans and optionally applies actions.
// It returns the plan, number of actions executed, and any error.
func ReconcileAndApply(
	ctx context.Context,
	gw Gateway,
	fresh []Element,
	cached []Cached,
	now time.Time,
	opts ReconcileOptions,
) (*Plan, int, error) {
	plan, err := Reconcile(fresh, cached, now, opts)
	if err != nil {
		return nil, 0, err
	}

	executed, err := ApplyPlan(ctx, gw, plan, opts)
	if err != nil {
		return plan, 0, err
	}

	return plan, executed, nil
}

func applyAction(ctx context.Context, tx Txn, action Action) error {
	switch action.Type {
	case ActionInsert:
		if action.Element == nil {
			return fmt.Errorf("insert action without element")
		}
		return tx.Insert(ctx, *action.Element, action.Tags, action.At)
	case ActionUpdateTags:
		return tx.UpdateTags(ctx, action.ID, action.Tags, action.At)
	case ActionSoftDelete:
		return tx.SoftDelete(ctx, action.ID, action.At)
	case ActionRevive:
		return tx.Revive(ctx, action.ID, action.At)
	default:
		return fmt.Errorf("unknown action type %q", action.Type)
	}
}
