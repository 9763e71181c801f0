package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApply_InsertIntoEmptyStore covers a first sync against an empty store.
func TestApply_InsertIntoEmptyStore(t *testing.T) {
	gw := newMemGateway()
	fresh := []Element{{ID: 1, Lat: 10, Lon: 20, Tags: Tags{}}}

	plan, executed, err := ReconcileAndApply(context.Background(), gw, fresh, gw.cached(), testNow, ReconcileOptions{})
	require.NoError(t, err)
	require.Len(t, plan.Actions, 1)
	assert.Equal(t, ActionInsert, plan.Actions[0].Type)
	assert.Equal(t, 1, executed)

	row, ok := gw.rows[1]
	require.True(t, ok)
	assert.Equal(t, row.CreatedAt, row.UpdatedAt)
	assert.Nil(t, row.DeletedAt)
	assert.Equal(t, 10.0, row.Lat)
	assert.Equal(t, 20.0, row.Lon)
	assert.Equal(t, "{}", row.Tags)
}

// TestApply_UpdateTags covers a tag change on a known place.
func TestApply_UpdateTags(t *testing.T) {
	gw := newMemGateway()
	created := testNow.Add(-48 * time.Hour)
	gw.rows[1] = memRow{Tags: `{"amenity":"cafe"}`, CreatedAt: created, UpdatedAt: created}

	fresh := []Element{{ID: 1, Tags: Tags{"amenity": "bar"}}}
	plan, _, err := ReconcileAndApply(context.Background(), gw, fresh, gw.cached(), testNow, ReconcileOptions{})
	require.NoError(t, err)
	require.Len(t, plan.Actions, 1)
	assert.Equal(t, ActionUpdateTags, plan.Actions[0].Type)

	row := gw.rows[1]
	assert.Equal(t, `{"amenity":"bar"}`, row.Tags)
	assert.True(t, row.UpdatedAt.After(created))
	assert.Equal(t, created, row.CreatedAt)
}

// TestApply_SoftDelete covers a place that vanished from the snapshot.
func TestApply_SoftDelete(t *testing.T) {
	gw := newMemGateway()
	gw.rows[1] = memRow{Tags: `{}`, CreatedAt: testNow, UpdatedAt: testNow}

	plan, _, err := ReconcileAndApply(context.Background(), gw, nil, gw.cached(), testNow, ReconcileOptions{})
	require.NoError(t, err)
	require.Len(t, plan.Actions, 1)
	assert.Equal(t, ActionSoftDelete, plan.Actions[0].Type)
	require.NotNil(t, gw.rows[1].DeletedAt)
	assert.Equal(t, testNow, *gw.rows[1].DeletedAt)
}

func TestApply_Revive(t *testing.T) {
	gw := newMemGateway()
	gw.rows[1] = memRow{Tags: `{}`, CreatedAt: testNow, UpdatedAt: testNow, DeletedAt: ptrTime(testNow)}

	later := testNow.Add(time.Hour)
	fresh := []Element{{ID: 1}}
	_, executed, err := ReconcileAndApply(context.Background(), gw, fresh, gw.cached(), later, ReconcileOptions{ReviveDeleted: true})
	require.NoError(t, err)
	assert.Equal(t, 1, executed)
	assert.Nil(t, gw.rows[1].DeletedAt)
	assert.Equal(t, later, gw.rows[1].UpdatedAt)
}

func TestApply_ReviveLiveRowFails(t *testing.T) {
	gw := newMemGateway()
	gw.rows[1] = memRow{Tags: `{}`, CreatedAt: testNow, UpdatedAt: testNow}

	plan := &Plan{Actions: []Action{{Type: ActionRevive, ID: 1, At: testNow.Add(time.Hour)}}}
	_, err := Apply(context.Background(), gw, plan)
	assert.ErrorIs(t, err, ErrUnknownID)
	assert.ErrorIs(t, err, ErrApply)
	assert.Equal(t, testNow, gw.rows[1].UpdatedAt)
}

// TestApply_RollsBackOnFailure checks that a failing step leaves the store untouched.
func TestApply_RollsBackOnFailure(t *testing.T) {
	gw := newMemGateway()
	gw.rows[1] = memRow{Tags: `{}`, CreatedAt: testNow, UpdatedAt: testNow}
	gw.rows[2] = memRow{Tags: `{"a":"1"}`, CreatedAt: testNow, UpdatedAt: testNow}
	gw.failOn = &Action{Type: ActionUpdateTags, ID: 2}

	before := make(map[int64]memRow, len(gw.rows))
	for id, r := range gw.rows {
		before[id] = r
	}

	fresh := []Element{
		{ID: 2, Tags: Tags{"a": "2"}},
		{ID: 3, Tags: Tags{"b": "1"}},
	}
	plan, executed, err := ReconcileAndApply(context.Background(), gw, fresh, gw.cached(), testNow.Add(time.Hour), ReconcileOptions{})
	require.Error(t, err)
	require.NotNil(t, plan)
	assert.Equal(t, 0, executed)

	assert.ErrorIs(t, err, ErrApply)
	assert.ErrorIs(t, err, errInjected)

	var applyErr *ApplyError
	require.True(t, errors.As(err, &applyErr))
	assert.Equal(t, ActionUpdateTags, applyErr.Action.Type)
	assert.Equal(t, int64(2), applyErr.Action.ID)

	assert.Equal(t, before, gw.rows)
}

func TestApply_DuplicateInsertFails(t *testing.T) {
	gw := newMemGateway()
	gw.rows[1] = memRow{Tags: `{}`}

	plan := &Plan{Actions: []Action{{Type: ActionInsert, ID: 1, Element: &Element{ID: 1}, Tags: "{}", At: testNow}}}
	_, err := Apply(context.Background(), gw, plan)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.ErrorIs(t, err, ErrApply)
}

func TestApply_UnknownAction(t *testing.T) {
	gw := newMemGateway()
	plan := &Plan{Actions: []Action{{Type: "purge", ID: 1}}}

	_, err := Apply(context.Background(), gw, plan)
	assert.ErrorIs(t, err, ErrApply)
	assert.Contains(t, err.Error(), "unknown action type")
}

func TestApply_EmptyPlanOpensNoTransaction(t *testing.T) {
	gw := newMemGateway()

	executed, err := Apply(context.Background(), gw, &Plan{})
	require.NoError(t, err)
	assert.Equal(t, 0, executed)

	executed, err = Apply(context.Background(), gw, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, executed)

	assert.Equal(t, 0, gw.transactions)
}

func TestApplyPlan_DryRun(t *testing.T) {
	gw := newMemGateway()
	gw.rows[1] = memRow{Tags: `{}`}

	opts := ReconcileOptions{DryRun: true}
	plan, executed, err := ReconcileAndApply(context.Background(), gw, []Element{{ID: 2}}, gw.cached(), testNow, opts)
	require.NoError(t, err)
	assert.Len(t, plan.Actions, 2)
	assert.Equal(t, 0, executed)
	assert.Equal(t, 0, gw.transactions)
	assert.Len(t, gw.rows, 1)
	assert.Nil(t, gw.rows[1].DeletedAt)
}

func TestApplyError_Message(t *testing.T) {
	err := &ApplyError{Action: Action{Type: ActionSoftDelete, ID: 42}, Err: ErrUnknownID}
	assert.Equal(t, "soft_delete of place 42 failed: unknown place id", err.Error())
}
