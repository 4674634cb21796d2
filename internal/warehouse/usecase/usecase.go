package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/notify"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/cache"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/search"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	itemsIndex = "warehouse_items"
	cacheTTL   = 5 * time.Minute
)

type warehouseUseCase struct {
	repo     warehouse.Repository
	orders   warehouse.OrderBoxReferences
	cache    *cache.RedisClient
	es       *search.Client
	notifier notify.Publisher
	validate *validator.Validate
	logger   logger.ZapLogger
}

// NewWarehouseUseCase wires the engine. cache and es are optional.
func NewWarehouseUseCase(
	repo warehouse.Repository,
	orders warehouse.OrderBoxReferences,
	cache *cache.RedisClient,
	es *search.Client,
	notifier notify.Publisher,
	log logger.ZapLogger,
) warehouse.UseCase {
	if notifier == nil {
		notifier = notify.NewNop()
	}
	return &warehouseUseCase{
		repo:     repo,
		orders:   orders,
		cache:    cache,
		es:       es,
		notifier: notifier,
		validate: validator.New(),
		logger:   log,
	}
}

func (uc *warehouseUseCase) check(input interface{}) error {
	if err := uc.validate.Struct(input); err != nil {
		return apperr.Wrap(err, apperr.KindValidation, "", err.Error())
	}
	return nil
}

func (uc *warehouseUseCase) BatchReserve(ctx context.Context, input *dto.BatchReserveInput) (*dto.BatchReserveResult, error) {
	if err := uc.check(input); err != nil {
		return nil, err
	}

	requested := make([]int64, 0, len(input.ItemIDs))
	seen := make(map[int64]bool, len(input.ItemIDs))
	for _, id := range input.ItemIDs {
		if !seen[id] {
			seen[id] = true
			requested = append(requested, id)
		}
	}
	input.ItemIDs = requested

	items, err := uc.repo.Reserve(ctx, input)
	if err != nil {
		return nil, apperr.Ensure(err, "reserve items")
	}

	res := &dto.BatchReserveResult{ReservedIDs: []int64{}, SkippedIDs: []int64{}}
	got := make(map[int64]bool, len(items))
	for _, it := range items {
		got[it.ID] = true
		res.ReservedIDs = append(res.ReservedIDs, it.ID)
	}
	// Items already held, sold, foreign or missing are skipped silently.
	for _, id := range requested {
		if !got[id] {
			res.SkippedIDs = append(res.SkippedIDs, id)
		}
	}
	res.Reserved = len(res.ReservedIDs)
	res.Skipped = len(res.SkippedIDs)

	uc.afterItemsChanged(ctx, input.UserID, notify.EventItemsReserved, items)
	return res, nil
}

func (uc *warehouseUseCase) BatchRelease(ctx context.Context, input *dto.BatchReleaseInput) (*dto.CountResult, error) {
	if err := uc.check(input); err != nil {
		return nil, err
	}
	items, err := uc.repo.Release(ctx, input)
	if err != nil {
		return nil, apperr.Ensure(err, "release items")
	}
	uc.afterItemsChanged(ctx, input.UserID, notify.EventItemsReleased, items)
	return &dto.CountResult{Count: len(items)}, nil
}

func (uc *warehouseUseCase) BatchMarkSold(ctx context.Context, input *dto.BatchMarkSoldInput) (*dto.CountResult, error) {
	if err := uc.check(input); err != nil {
		return nil, err
	}
	items, err := uc.repo.MarkSold(ctx, input)
	if err != nil {
		return nil, apperr.Ensure(err, "mark items sold")
	}
	uc.afterItemsChanged(ctx, input.UserID, notify.EventItemsSold, items)
	return &dto.CountResult{Count: len(items)}, nil
}

func (uc *warehouseUseCase) BatchTransfer(ctx context.Context, input *dto.BatchTransferInput) (*dto.CountResult, error) {
	if err := uc.check(input); err != nil {
		return nil, err
	}
	items, err := uc.repo.Transfer(ctx, input)
	if err != nil {
		return nil, apperr.Ensure(err, "transfer reservations")
	}
	uc.afterItemsChanged(ctx, input.UserID, notify.EventItemsMoved, items)
	return &dto.CountResult{Count: len(items)}, nil
}

func (uc *warehouseUseCase) UpsertItem(ctx context.Context, input *dto.UpsertItemInput) (*model.WarehouseItem, error) {
	if err := uc.check(input); err != nil {
		return nil, err
	}
	item, err := uc.repo.SaveItem(ctx, &model.WarehouseItem{
		ID:          input.ID,
		UserID:      input.UserID,
		ArticleCode: input.ArticleCode,
		Description: input.Description,
		Quantity:    input.Quantity,
		BoxName:     input.BoxName,
	}, input.DeviceID)
	if err != nil {
		return nil, apperr.Ensure(err, "save item")
	}
	uc.afterItemsChanged(ctx, input.UserID, "", []model.WarehouseItem{*item})
	return item, nil
}

// afterItemsChanged runs the side effects of a committed item change. An
// empty eventType skips the notification.
func (uc *warehouseUseCase) afterItemsChanged(ctx context.Context, userID, eventType string, items []model.WarehouseItem) {
	if len(items) == 0 {
		return
	}
	go uc.invalidateCache(context.Background(), userID)
	go uc.syncToElastic(context.Background(), items)

	if eventType != "" {
		ids := make([]int64, len(items))
		for i, it := range items {
			ids[i] = it.ID
		}
		uc.notifier.Publish(ctx, userID, eventType, map[string]interface{}{"itemIds": ids})
	}
}

func (uc *warehouseUseCase) syncToElastic(ctx context.Context, items []model.WarehouseItem) {
	if uc.es == nil {
		return
	}
	mapping := `{
		"mappings": {
			"properties": {
				"userId": { "type": "keyword" },
				"articleCode": { "type": "keyword" },
				"description": { "type": "text" },
				"boxName": { "type": "keyword" },
				"state": { "type": "keyword" },
				"updatedAt": { "type": "date" }
			}
		}
	}`
	_ = uc.es.CreateIndex(ctx, itemsIndex, mapping)

	for _, it := range items {
		doc := struct {
			model.WarehouseItem
			State model.ItemState `json:"state"`
		}{it, it.State()}
		if err := uc.es.Index(ctx, itemsIndex, strconv.FormatInt(it.ID, 10), doc); err != nil {
			uc.logger.Error("failed to index warehouse item", zap.Int64("item_id", it.ID), zap.Error(err))
		}
	}
}

func (uc *warehouseUseCase) SearchItems(ctx context.Context, filters *dto.ItemFilters) ([]model.WarehouseItem, int, error) {
	if filters.UserID == "" {
		return nil, 0, apperr.Validation("user id is required")
	}
	if filters.Page < 1 {
		filters.Page = 1
	}

	cacheKey := uc.itemsCacheKey(filters)
	if uc.cache != nil && cacheKey != "" {
		if val, err := uc.cache.Client.Get(ctx, cacheKey).Result(); err == nil {
			var cached struct {
				Items []model.WarehouseItem
				Count int
			}
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached.Items, cached.Count, nil
			}
		}
	}

	if filters.Query != "" && uc.es != nil {
		items, count, err := uc.searchElastic(ctx, filters)
		if err == nil {
			return items, count, nil
		}
		uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
	}

	items, count, err := uc.repo.FindItems(ctx, filters)
	if err != nil {
		return nil, 0, apperr.Ensure(err, "find items")
	}

	if uc.cache != nil && cacheKey != "" {
		data, err := json.Marshal(struct {
			Items []model.WarehouseItem
			Count int
		}{items, count})
		if err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, cacheTTL)
		}
	}
	return items, count, nil
}

func (uc *warehouseUseCase) searchElastic(ctx context.Context, f *dto.ItemFilters) ([]model.WarehouseItem, int, error) {
	must := []map[string]interface{}{
		{
			"query_string": map[string]interface{}{
				"query":  fmt.Sprintf("*%s*", f.Query),
				"fields": []string{"articleCode^3", "description"},
			},
		},
		{"term": map[string]interface{}{"userId": f.UserID}},
	}
	if f.BoxName != "" {
		must = append(must, map[string]interface{}{"term": map[string]interface{}{"boxName": f.BoxName}})
	}
	if f.State != "" {
		must = append(must, map[string]interface{}{"term": map[string]interface{}{"state": f.State}})
	}

	q := map[string]interface{}{
		"query": map[string]interface{}{"bool": map[string]interface{}{"must": must}},
		"from":  (f.Page - 1) * f.PageSize,
	}
	if f.PageSize > 0 {
		q["size"] = f.PageSize
	}

	res, err := uc.es.Search(ctx, itemsIndex, q)
	if err != nil {
		return nil, 0, err
	}
	items := make([]model.WarehouseItem, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var it model.WarehouseItem
		if err := json.Unmarshal(hit.Source, &it); err == nil {
			items = append(items, it)
		}
	}
	return items, res.Hits.Total.Value, nil
}

func (uc *warehouseUseCase) itemsCacheKey(f *dto.ItemFilters) string {
	data, err := json.Marshal(f)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("warehouse:items:%s:%x", f.UserID, md5.Sum(data))
}

func boxesCacheKey(userID string) string {
	return "warehouse:boxes:" + userID
}

func (uc *warehouseUseCase) invalidateCache(ctx context.Context, userID string) {
	if uc.cache == nil {
		return
	}
	keys, err := uc.cache.Client.Keys(ctx, fmt.Sprintf("warehouse:items:%s:*", userID)).Result()
	if err != nil {
		uc.logger.Warn("failed to scan warehouse cache", zap.String("user_id", userID), zap.Error(err))
	}
	keys = append(keys, boxesCacheKey(userID))
	uc.cache.Client.Del(ctx, keys...)
}

func (uc *warehouseUseCase) CreateBox(ctx context.Context, input *dto.CreateBoxInput) (*model.WarehouseBox, error) {
	if err := uc.check(input); err != nil {
		return nil, err
	}
	box := &model.WarehouseBox{UserID: input.UserID, Name: input.Name, CreatedAt: time.Now().UTC()}
	if err := uc.repo.CreateBox(ctx, box); err != nil {
		return nil, apperr.Ensure(err, "create box")
	}
	go uc.invalidateCache(context.Background(), input.UserID)
	return box, nil
}

func (uc *warehouseUseCase) ListBoxes(ctx context.Context, userID string) ([]model.WarehouseBox, error) {
	if userID == "" {
		return nil, apperr.Validation("user id is required")
	}

	if uc.cache != nil {
		if val, err := uc.cache.Client.Get(ctx, boxesCacheKey(userID)).Result(); err == nil {
			var boxes []model.WarehouseBox
			if err := json.Unmarshal([]byte(val), &boxes); err == nil {
				return boxes, nil
			}
		}
	}

	boxes, err := uc.repo.ListBoxes(ctx, userID)
	if err != nil {
		return nil, apperr.Ensure(err, "list boxes")
	}

	if uc.cache != nil {
		if data, err := json.Marshal(boxes); err == nil {
			uc.cache.Client.Set(ctx, boxesCacheKey(userID), data, cacheTTL)
		}
	}
	return boxes, nil
}

func (uc *warehouseUseCase) DeleteBox(ctx context.Context, input *dto.DeleteBoxInput) error {
	if err := uc.check(input); err != nil {
		return err
	}

	refs, err := uc.orders.CountBoxReferences(ctx, input.UserID, input.Name)
	if err != nil {
		return apperr.Internal(err, "count box references")
	}
	if refs > 0 {
		return apperr.Conflict(apperr.CodeBoxReferenced,
			fmt.Sprintf("box %s is referenced by %d pending orders", input.Name, refs))
	}

	if err := uc.repo.DeleteBox(ctx, input.UserID, input.Name); err != nil {
		return apperr.Ensure(err, "delete box")
	}
	go uc.invalidateCache(context.Background(), input.UserID)
	return nil
}

func (uc *warehouseUseCase) RenameBox(ctx context.Context, input *dto.RenameBoxInput) (*dto.RenameBoxResult, error) {
	if err := uc.check(input); err != nil {
		return nil, err
	}

	saga := newRenameBoxSaga(uc.repo, uc.orders, input, uc.logger)
	res, err := saga.Run(ctx)
	if err != nil {
		return nil, err
	}

	uc.afterItemsChanged(ctx, input.UserID, "", saga.moved)
	go uc.invalidateCache(context.Background(), input.UserID)
	uc.notifier.Publish(ctx, input.UserID, notify.EventBoxRenamed, map[string]interface{}{
		"oldName": input.OldName,
		"newName": input.NewName,
	})
	return res, nil
}
