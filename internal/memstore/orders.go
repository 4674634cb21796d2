package memstore

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/conflict"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
)

type OrderRepository struct {
	s *Store
}

func (r *OrderRepository) InTx(ctx context.Context, fn func(tx conflict.Tx[model.PendingOrder]) error) error {
	return r.s.write(func(t *txn) error {
		return fn(&orderTx{t: t})
	})
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*model.PendingOrder, error) {
	var out *model.PendingOrder
	err := r.s.read(func() error {
		if o, ok := r.s.orders[id]; ok {
			c := o.Clone()
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]model.PendingOrder, error) {
	out := []model.PendingOrder{}
	err := r.s.read(func() error {
		for _, o := range r.s.orders {
			if o.UserID == userID {
				out = append(out, o.Clone())
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out, err
}

func (r *OrderRepository) CountBoxReferences(ctx context.Context, userID, boxName string) (int, error) {
	n := 0
	err := r.s.read(func() error {
		for _, o := range r.s.orders {
			if o.UserID == userID && o.ReferencesBox(boxName) {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *OrderRepository) RewriteBoxReferences(ctx context.Context, userID, oldName, newName string) (int, error) {
	n := 0
	err := r.s.write(func(t *txn) error {
		nowMs := r.s.now().UnixMilli()
		for _, o := range r.s.orders {
			if o.UserID != userID || !o.ReferencesBox(oldName) {
				continue
			}
			c := o.Clone()
			c.RenameBox(oldName, newName)
			c.UpdatedAt = model.NextVersion(c.UpdatedAt, nowMs)
			t.putOrder(c)

			payload, err := json.Marshal(c)
			if err != nil {
				return err
			}
			t.append(&model.ChangeLogEntry{
				UserID:     userID,
				EntityType: model.EntityPendingOrder,
				EntityID:   c.ID,
				Action:     model.ActionUpdate,
				Payload:    payload,
				DeviceID:   model.ServerDeviceID,
			})
			n++
		}
		return nil
	})
	return n, err
}

type orderTx struct {
	t *txn
}

func (x *orderTx) ClaimKey(ctx context.Context, userID, key, entityID string, op conflict.Op) (*conflict.Claim, error) {
	k := keyID{userID: userID, key: key}
	if row, ok := x.t.s.keys[k]; ok {
		claim := &conflict.Claim{EntityID: row.entityID, Op: row.op}
		if row.outcome != nil {
			var out conflict.Outcome
			if err := json.Unmarshal(row.outcome, &out); err != nil {
				return nil, err
			}
			claim.Outcome = &out
		}
		return claim, nil
	}
	x.t.putKey(k, keyRow{entityID: entityID, op: op, createdAt: x.t.s.now()})
	return nil, nil
}

func (x *orderTx) Current(ctx context.Context, id string) (*conflict.Version, error) {
	o, ok := x.t.s.orders[id]
	if !ok {
		return nil, nil
	}
	return &conflict.Version{Owner: o.UserID, UpdatedAt: o.UpdatedAt}, nil
}

func (x *orderTx) Upsert(ctx context.Context, rec model.PendingOrder) (bool, bool, error) {
	cur, exists := x.t.s.orders[rec.ID]
	if exists && (cur.UserID != rec.UserID || cur.UpdatedAt >= rec.UpdatedAt) {
		return false, false, nil
	}
	x.t.putOrder(rec)
	return true, !exists, nil
}

func (x *orderTx) Delete(ctx context.Context, id, owner string, version int64) (bool, error) {
	cur, exists := x.t.s.orders[id]
	if !exists || cur.UserID != owner || cur.UpdatedAt >= version {
		return false, nil
	}
	x.t.deleteOrder(id)
	return true, nil
}

func (x *orderTx) Append(ctx context.Context, entry *model.ChangeLogEntry) (int64, error) {
	return x.t.append(entry), nil
}

func (x *orderTx) SaveOutcome(ctx context.Context, userID, key string, out conflict.Outcome) error {
	k := keyID{userID: userID, key: key}
	raw, err := json.Marshal(out)
	if err != nil {
		return err
	}
	row := x.t.s.keys[k]
	row.outcome = raw
	x.t.putKey(k, row)
	return nil
}
