package reconcile

import "time"

// Element is a normalized entity from a fresh snapshot.
// It is produced per sync run and never persisted as-is.
type Element struct {
	// ID is the provider-stable identifier and the reconciliation key.
	ID int64 `json:"id"`

	// Lat and Lon are the point coordinates, or the centroid for areas.
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`

	// Tags is the element's tag set. Absent tags normalize to an empty set.
	Tags Tags `json:"tags"`
}

// Cached is the engine's view of a persisted place.
// Only the fields that take part in the diff are carried.
type Cached struct {
	// ID is the persisted identifier.
	ID int64

	// Tags is the stored tag blob, compared only in canonical form.
	Tags []byte

	// DeletedAt is nil while the place is live.
	DeletedAt *time.Time
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionSoftDelete marks a live place missing from the snapshot as deleted.
	ActionSoftDelete ActionType = "soft_delete"
	// ActionInsert creates a place seen for the first time.
	ActionInsert ActionType = "insert"
	// ActionUpdateTags replaces the tag blob of a known place.
	ActionUpdateTags ActionType = "update_tags"
	// ActionRevive clears deleted_at of a place that reappeared.
	// Only planned when ReconcileOptions.ReviveDeleted is set.
	ActionRevive ActionType = "revive"
)

// actionOrder fixes the order in which action groups appear in a plan.
var actionOrder = map[ActionType]int{
	ActionSoftDelete: 0,
	ActionInsert:     1,
	ActionUpdateTags: 2,
	ActionRevive:     3,
}

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// ID is the place identifier the action targets.
	ID int64 `json:"id"`

	// Element is the fresh element for inserts.
	Element *Element `json:"-"`

	// Tags is the canonical tag blob for inserts and tag updates.
	Tags string `json:"tags,omitempty"`

	// At is the reconciliation timestamp written by the action.
	At time.Time `json:"at"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// Plan contains the ordered actions of one reconciliation pass.
type Plan struct {
	// Actions contains planned mutation operations.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`

	// Now is the reconciliation timestamp shared by every action.
	Now time.Time `json:"now"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// Fresh is the number of elements in the snapshot.
	Fresh int `json:"fresh"`

	// Cached is the number of persisted places, deleted ones included.
	Cached int `json:"cached"`

	// Inserts counts planned inserts.
	Inserts int `json:"inserts"`

	// Updates counts planned tag updates.
	Updates int `json:"updates"`

	// SoftDeletes counts planned soft-deletes.
	SoftDeletes int `json:"soft_deletes"`

	// Revivals counts planned revivals.
	Revivals int `json:"revivals"`

	// Unchanged counts fresh elements whose tags match the store.
	Unchanged int `json:"unchanged"`

	// AlreadyDeleted counts missing places that were soft-deleted by an earlier run.
	AlreadyDeleted int `json:"already_deleted"`
}

// Writes returns the number of write actions in the plan.
func (s PlanSummary) Writes() int {
	return s.Inserts + s.Updates + s.SoftDeletes + s.Revivals
}

// ReconcileOptions controls reconcile behavior.
type ReconcileOptions struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// ReviveDeleted plans ActionRevive for soft-deleted places present in the snapshot.
	ReviveDeleted bool
}
