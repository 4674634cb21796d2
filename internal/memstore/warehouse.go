package memstore

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse/dto"
)

type WarehouseRepository struct {
	s *Store
}

// logItem writes the updated item and its change log entry.
func (r *WarehouseRepository) logItem(t *txn, it model.WarehouseItem, action model.ChangeAction, deviceID string) error {
	it.UpdatedAt = r.s.now().UTC()
	t.putItem(it)
	payload, err := json.Marshal(it)
	if err != nil {
		return err
	}
	if deviceID == "" {
		deviceID = model.ServerDeviceID
	}
	t.append(&model.ChangeLogEntry{
		UserID:     it.UserID,
		EntityType: model.EntityWarehouseItem,
		EntityID:   strconv.FormatInt(it.ID, 10),
		Action:     action,
		Payload:    payload,
		DeviceID:   deviceID,
	})
	return nil
}

// update applies change to every item of userID matching pred, in id order.
func (r *WarehouseRepository) update(userID, deviceID string, pred func(model.WarehouseItem) bool, change func(*model.WarehouseItem)) ([]model.WarehouseItem, error) {
	changed := []model.WarehouseItem{}
	err := r.s.write(func(t *txn) error {
		ids := make([]int64, 0)
		for id, it := range r.s.items {
			if it.UserID == userID && pred(it) {
				ids = append(ids, id)
			}
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		for _, id := range ids {
			it := r.s.items[id]
			change(&it)
			if err := r.logItem(t, it, model.ActionUpdate, deviceID); err != nil {
				return err
			}
			changed = append(changed, r.s.items[id])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return changed, nil
}

func (r *WarehouseRepository) Reserve(ctx context.Context, in *dto.BatchReserveInput) ([]model.WarehouseItem, error) {
	wanted := make(map[int64]bool, len(in.ItemIDs))
	for _, id := range in.ItemIDs {
		wanted[id] = true
	}
	return r.update(in.UserID, in.DeviceID,
		func(it model.WarehouseItem) bool {
			return wanted[it.ID] && it.State() == model.ItemAvailable
		},
		func(it *model.WarehouseItem) {
			it.ReservedForOrder = strPtr(in.OrderID)
			in.Tracking.ApplyTo(it)
		},
	)
}

func (r *WarehouseRepository) Release(ctx context.Context, in *dto.BatchReleaseInput) ([]model.WarehouseItem, error) {
	return r.update(in.UserID, in.DeviceID,
		func(it model.WarehouseItem) bool {
			return it.ReservedForOrder != nil && *it.ReservedForOrder == in.OrderID
		},
		func(it *model.WarehouseItem) {
			it.ReservedForOrder = nil
			it.ClearTracking()
		},
	)
}

func (r *WarehouseRepository) MarkSold(ctx context.Context, in *dto.BatchMarkSoldInput) ([]model.WarehouseItem, error) {
	return r.update(in.UserID, in.DeviceID,
		func(it model.WarehouseItem) bool {
			return it.SoldInOrder == nil && it.ReservedForOrder != nil && *it.ReservedForOrder == in.OrderID
		},
		func(it *model.WarehouseItem) {
			it.SoldInOrder = it.ReservedForOrder
			it.ReservedForOrder = nil
			in.Tracking.ApplyTo(it)
		},
	)
}

func (r *WarehouseRepository) Transfer(ctx context.Context, in *dto.BatchTransferInput) ([]model.WarehouseItem, error) {
	from := make(map[string]bool, len(in.FromOrderIDs))
	for _, id := range in.FromOrderIDs {
		if id != in.ToOrderID {
			from[id] = true
		}
	}
	return r.update(in.UserID, in.DeviceID,
		func(it model.WarehouseItem) bool {
			return it.ReservedForOrder != nil && from[*it.ReservedForOrder]
		},
		func(it *model.WarehouseItem) {
			it.ReservedForOrder = strPtr(in.ToOrderID)
		},
	)
}

func (r *WarehouseRepository) SaveItem(ctx context.Context, item *model.WarehouseItem, deviceID string) (*model.WarehouseItem, error) {
	var saved model.WarehouseItem
	err := r.s.write(func(t *txn) error {
		if _, ok := r.s.boxes[boxID{item.UserID, item.BoxName}]; !ok {
			return apperr.NotFound("box " + item.BoxName)
		}

		action := model.ActionInsert
		it := *item
		if it.ID == 0 {
			r.s.nextItemID++
			it.ID = r.s.nextItemID
			it.CreatedAt = r.s.now().UTC()
			it.ReservedForOrder, it.SoldInOrder = nil, nil
			it.ClearTracking()
		} else {
			cur, ok := r.s.items[it.ID]
			if !ok || cur.UserID != it.UserID {
				return apperr.NotFound("warehouse item")
			}
			action = model.ActionUpdate
			cur.ArticleCode = it.ArticleCode
			cur.Description = it.Description
			cur.Quantity = it.Quantity
			cur.BoxName = it.BoxName
			it = cur
		}

		if err := r.logItem(t, it, action, deviceID); err != nil {
			return err
		}
		saved = r.s.items[it.ID]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *WarehouseRepository) FindItems(ctx context.Context, f *dto.ItemFilters) ([]model.WarehouseItem, int, error) {
	var matched []model.WarehouseItem
	err := r.s.read(func() error {
		q := strings.ToLower(f.Query)
		for _, it := range r.s.items {
			if it.UserID != f.UserID {
				continue
			}
			if f.BoxName != "" && it.BoxName != f.BoxName {
				continue
			}
			if f.State != "" && string(it.State()) != f.State {
				continue
			}
			if q != "" && !strings.Contains(strings.ToLower(it.ArticleCode), q) &&
				!strings.Contains(strings.ToLower(it.Description), q) {
				continue
			}
			matched = append(matched, it)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	total := len(matched)
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * f.PageSize
		if start > total {
			start = total
		}
		end := start + f.PageSize
		if end > total {
			end = total
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}

func (r *WarehouseRepository) CreateBox(ctx context.Context, box *model.WarehouseBox) error {
	return r.s.write(func(t *txn) error {
		if _, ok := r.s.boxes[boxID{box.UserID, box.Name}]; ok {
			return apperr.Conflict(apperr.CodeBoxExists, "box "+box.Name+" already exists")
		}
		if box.CreatedAt.IsZero() {
			box.CreatedAt = r.s.now().UTC()
		}
		t.putBox(*box)
		return nil
	})
}

func (r *WarehouseRepository) ListBoxes(ctx context.Context, userID string) ([]model.WarehouseBox, error) {
	out := []model.WarehouseBox{}
	err := r.s.read(func() error {
		counts := map[string]int{}
		for _, it := range r.s.items {
			if it.UserID == userID {
				counts[it.BoxName]++
			}
		}
		for k, b := range r.s.boxes {
			if k.userID == userID {
				b.ItemCount = counts[b.Name]
				out = append(out, b)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, err
}

func (r *WarehouseRepository) DeleteBox(ctx context.Context, userID, name string) error {
	return r.s.write(func(t *txn) error {
		k := boxID{userID, name}
		if _, ok := r.s.boxes[k]; !ok {
			return apperr.NotFound("box " + name)
		}
		for _, it := range r.s.items {
			if it.UserID == userID && it.BoxName == name {
				return apperr.Conflict(apperr.CodeBoxNotEmpty, "box "+name+" still has items")
			}
		}
		t.deleteBox(k)
		return nil
	})
}

func (r *WarehouseRepository) RenameBox(ctx context.Context, in *dto.RenameBoxInput) ([]model.WarehouseItem, error) {
	moved := []model.WarehouseItem{}
	err := r.s.write(func(t *txn) error {
		oldKey := boxID{in.UserID, in.OldName}
		box, ok := r.s.boxes[oldKey]
		if !ok {
			return apperr.NotFound("box " + in.OldName)
		}
		if _, taken := r.s.boxes[boxID{in.UserID, in.NewName}]; taken {
			return apperr.Conflict(apperr.CodeBoxExists, "box "+in.NewName+" already exists")
		}

		t.deleteBox(oldKey)
		box.Name = in.NewName
		t.putBox(box)

		ids := make([]int64, 0)
		for id, it := range r.s.items {
			if it.UserID == in.UserID && it.BoxName == in.OldName {
				ids = append(ids, id)
			}
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			it := r.s.items[id]
			it.BoxName = in.NewName
			if err := r.logItem(t, it, model.ActionUpdate, in.DeviceID); err != nil {
				return err
			}
			moved = append(moved, r.s.items[id])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return moved, nil
}
