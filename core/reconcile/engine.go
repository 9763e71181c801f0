package reconcile

import (
	"fmt"
	"sort"
	"time"
)

// Reconcile computes the actions that bring the cached record set in line with a
// fresh snapshot. It performs no I/O; use Apply to execute the resulting plan.
//
// Places missing from the snapshot are soft-deleted once, new ids are inserted and
// known ids get a tag update only when the canonical tag blobs differ, so running it
// twice against an unchanged snapshot yields an empty plan.
func Reconcile(fresh []Element, cached []Cached, now time.Time, opts ReconcileOptions) (*Plan, error) {
	now = now.UTC()

	// Build fresh id set
	freshIDs := make(map[int64]struct{}, len(fresh))
	for _, e := range fresh {
		if _, dup := freshIDs[e.ID]; dup {
			return nil, fmt.Errorf("element %d: %w", e.ID, ErrDuplicateElement)
		}
		freshIDs[e.ID] = struct{}{}
	}

	// Build cached lookup
	cachedByID := make(map[int64]Cached, len(cached))
	for _, c := range cached {
		cachedByID[c.ID] = c
	}

	plan := &Plan{
		Actions: make([]Action, 0),
		Now:     now,
		Summary: PlanSummary{
			Fresh:  len(fresh),
			Cached: len(cached),
		},
	}

	// Soft-delete pass
	for _, c := range cached {
		if _, ok := freshIDs[c.ID]; ok {
			continue
		}
		if c.DeletedAt != nil {
			plan.Summary.AlreadyDeleted++
			continue
		}
		plan.Actions = append(plan.Actions, Action{
			Type:   ActionSoftDelete,
			ID:     c.ID,
			At:     now,
			Reason: "missing from snapshot",
		})
		plan.Summary.SoftDeletes++
	}

	// Insert / update pass
	for i := range fresh {
		e := fresh[i]

		freshTags, err := e.Tags.Canonical()
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", e.ID, err)
		}

		c, known := cachedByID[e.ID]
		if !known {
			plan.Actions = append(plan.Actions, Action{
				Type:    ActionInsert,
				ID:      e.ID,
				Element: &e,
				Tags:    freshTags,
				At:      now,
				Reason:  "new in snapshot",
			})
			plan.Summary.Inserts++
			continue
		}

		changed, reason := tagsChanged(c.Tags, freshTags)
		if changed {
			plan.Actions = append(plan.Actions, Action{
				Type:   ActionUpdateTags,
				ID:     e.ID,
				Tags:   freshTags,
				At:     now,
				Reason: reason,
			})
			plan.Summary.Updates++
		} else {
			plan.Summary.Unchanged++
		}

		if opts.ReviveDeleted && c.DeletedAt != nil {
			plan.Actions = append(plan.Actions, Action{
				Type:   ActionRevive,
				ID:     e.ID,
				At:     now,
				Reason: "reappeared in snapshot",
			})
			plan.Summary.Revivals++
		}
	}

	sortActions(plan.Actions)

	return plan, nil
}

// tagsChanged compares a stored blob with a fresh canonical blob.
// A stored blob that cannot be parsed counts as changed so the update repairs it.
func tagsChanged(stored []byte, fresh string) (bool, string) {
	canonical, err := CanonicalBlob(stored)
	if err != nil {
		return true, "stored tags unreadable"
	}
	if canonical != fresh {
		return true, "tags changed"
	}
	return false, ""
}

// sortActions orders actions by group, then by id, for deterministic output.
func sortActions(actions []Action) {
	sort.SliceStable(actions, func(i, j int) bool {
		oi, oj := actionOrder[actions[i].Type], actionOrder[actions[j].Type]
		if oi != oj {
			return oi < oj
		}
		return actions[i].ID < actions[j].ID
	})
}
