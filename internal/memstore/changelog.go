package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/changelog/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
)

type ChangeLogRepository struct {
	s *Store
}

func (r *ChangeLogRepository) Counter(ctx context.Context, userID string) (*model.SyncCounter, error) {
	var c model.SyncCounter
	err := r.s.read(func() error {
		c = r.s.counters[userID]
		c.UserID = userID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChangeLogRepository) ListSince(ctx context.Context, userID string, after int64, limit int) ([]model.ChangeLogEntry, error) {
	out := []model.ChangeLogEntry{}
	err := r.s.read(func() error {
		entries := r.s.log[userID]
		i := sort.Search(len(entries), func(i int) bool { return entries[i].SyncID > after })
		for ; i < len(entries) && len(out) < limit; i++ {
			out = append(out, entries[i])
		}
		return nil
	})
	return out, err
}

func (r *ChangeLogRepository) Snapshot(ctx context.Context, userID string) (*model.FullState, error) {
	state := &model.FullState{
		Orders:         []model.PendingOrder{},
		WarehouseItems: []model.WarehouseItem{},
	}
	err := r.s.read(func() error {
		state.SyncID = r.s.counters[userID].LastSyncID
		for _, o := range r.s.orders {
			if o.UserID == userID {
				state.Orders = append(state.Orders, o.Clone())
			}
		}
		for _, it := range r.s.items {
			if it.UserID == userID {
				state.WarehouseItems = append(state.WarehouseItems, it)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(state.Orders, func(i, j int) bool {
		if state.Orders[i].CreatedAt != state.Orders[j].CreatedAt {
			return state.Orders[i].CreatedAt < state.Orders[j].CreatedAt
		}
		return state.Orders[i].ID < state.Orders[j].ID
	})
	sort.Slice(state.WarehouseItems, func(i, j int) bool {
		return state.WarehouseItems[i].ID < state.WarehouseItems[j].ID
	})
	return state, nil
}

func (r *ChangeLogRepository) Purge(ctx context.Context, cutoff time.Time) (*dto.PurgeResult, error) {
	res := &dto.PurgeResult{}
	err := r.s.write(func(t *txn) error {
		for userID, entries := range r.s.log {
			through := int64(0)
			for _, e := range entries {
				if e.CreatedAt.Before(cutoff) && e.SyncID > through {
					through = e.SyncID
				}
			}
			if through == 0 {
				continue
			}

			keep := entries[:0:0]
			for _, e := range entries {
				if e.SyncID > through {
					keep = append(keep, e)
				}
			}
			res.Entries += int64(len(entries) - len(keep))
			r.s.log[userID] = keep

			c := r.s.counters[userID]
			if c.PurgedThrough < through {
				c.PurgedThrough = through
				r.s.counters[userID] = c
			}
		}

		for k, row := range r.s.keys {
			if row.createdAt.Before(cutoff) {
				delete(r.s.keys, k)
				res.IdempotencyKeys++
			}
		}
		return nil
	})
	return res, err
}
