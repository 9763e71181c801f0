package reconcile

import (
	"context"
	"errors"
	"time"
)

// memRow is a persisted place held by memGateway.
type memRow struct {
	Lat, Lon  float64
	Tags      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// memGateway is an in-memory Gateway. Transactions work on a copy of the rows
// and swap it in only on commit.
type memGateway struct {
	rows map[int64]memRow

	// failOn makes the write for this action type and id fail.
	failOn *Action

	transactions int
}

func newMemGateway() *memGateway {
	return &memGateway{rows: make(map[int64]memRow)}
}

func (g *memGateway) Transaction(ctx context.Context, fn func(tx Txn) error) error {
	g.transactions++
	work := make(map[int64]memRow, len(g.rows))
	for id, r := range g.rows {
		work[id] = r
	}
	if err := fn(&memTxn{gw: g, rows: work}); err != nil {
		return err
	}
	g.rows = work
	return nil
}

// cached returns the engine view of every persisted row.
func (g *memGateway) cached() []Cached {
	out := make([]Cached, 0, len(g.rows))
	for id, r := range g.rows {
		out = append(out, Cached{ID: id, Tags: []byte(r.Tags), DeletedAt: r.DeletedAt})
	}
	return out
}

type memTxn struct {
	gw   *memGateway
	rows map[int64]memRow
}

var errInjected = errors.New("injected failure")

func (t *memTxn) fail(typ ActionType, id int64) error {
	if f := t.gw.failOn; f != nil && f.Type == typ && f.ID == id {
		return errInjected
	}
	return nil
}

func (t *memTxn) Insert(ctx context.Context, e Element, tags string, now time.Time) error {
	if err := t.fail(ActionInsert, e.ID); err != nil {
		return err
	}
	if _, ok := t.rows[e.ID]; ok {
		return ErrDuplicateID
	}
	t.rows[e.ID] = memRow{Lat: e.Lat, Lon: e.Lon, Tags: tags, CreatedAt: now, UpdatedAt: now}
	return nil
}

func (t *memTxn) UpdateTags(ctx context.Context, id int64, tags string, now time.Time) error {
	if err := t.fail(ActionUpdateTags, id); err != nil {
		return err
	}
	r, ok := t.rows[id]
	if !ok {
		return ErrUnknownID
	}
	r.Tags = tags
	r.UpdatedAt = now
	t.rows[id] = r
	return nil
}

func (t *memTxn) SoftDelete(ctx context.Context, id int64, now time.Time) error {
	if err := t.fail(ActionSoftDelete, id); err != nil {
		return err
	}
	r, ok := t.rows[id]
	if !ok || r.DeletedAt != nil {
		return ErrUnknownID
	}
	at := now
	r.DeletedAt = &at
	t.rows[id] = r
	return nil
}

func (t *memTxn) Revive(ctx context.Context, id int64, now time.Time) error {
	if err := t.fail(ActionRevive, id); err != nil {
		return err
	}
	r, ok := t.rows[id]
	if !ok || r.DeletedAt == nil {
		return ErrUnknownID
	}
	r.DeletedAt = nil
	r.UpdatedAt = now
	t.rows[id] = r
	return nil
}
