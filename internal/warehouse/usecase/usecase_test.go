package usecase

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/memstore"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/notify"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *memstore.Store
	uc       warehouse.UseCase
	notifier *notify.Recorder
}

func newFixture(t *testing.T, wrap func(*memstore.Store) (warehouse.Repository, warehouse.OrderBoxReferences)) *fixture {
	t.Helper()
	store := memstore.New()
	t.Cleanup(func() { _ = store.Close() })

	var repo warehouse.Repository = store.Warehouse()
	var orders warehouse.OrderBoxReferences = store.Orders()
	if wrap != nil {
		repo, orders = wrap(store)
	}

	rec := notify.NewRecorder()
	return &fixture{
		store:    store,
		uc:       NewWarehouseUseCase(repo, orders, nil, nil, rec, logger.NewNop()),
		notifier: rec,
	}
}

// seed creates box and n items in it, returning their ids.
func (f *fixture) seed(t *testing.T, user, box string, n int) []int64 {
	t.Helper()
	ctx := context.Background()
	if _, err := f.uc.CreateBox(ctx, &dto.CreateBoxInput{UserID: user, Name: box}); err != nil {
		require.Equal(t, apperr.CodeBoxExists, apperr.CodeOf(err))
	}
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		it, err := f.uc.UpsertItem(ctx, &dto.UpsertItemInput{
			UserID:      user,
			ArticleCode: "ART-" + box,
			Quantity:    1,
			BoxName:     box,
		})
		require.NoError(t, err)
		ids = append(ids, it.ID)
	}
	return ids
}

func (f *fixture) item(t *testing.T, user string, id int64) model.WarehouseItem {
	t.Helper()
	items, _, err := f.store.Warehouse().FindItems(context.Background(), &dto.ItemFilters{UserID: user})
	require.NoError(t, err)
	for _, it := range items {
		if it.ID == id {
			return it
		}
	}
	t.Fatalf("item %d not found", id)
	return model.WarehouseItem{}
}

func TestBatchReserveSkipsHeldItems(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	ids := f.seed(t, "u1", "A1", 2)

	res, err := f.uc.BatchReserve(ctx, &dto.BatchReserveInput{UserID: "u1", ItemIDs: ids[:1], OrderID: "order-8"})
	require.NoError(t, err)
	require.Equal(t, 1, res.Reserved)

	res, err = f.uc.BatchReserve(ctx, &dto.BatchReserveInput{UserID: "u1", ItemIDs: ids, OrderID: "order-9"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Reserved)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, []int64{ids[1]}, res.ReservedIDs)
	assert.Equal(t, []int64{ids[0]}, res.SkippedIDs)

	assert.Equal(t, "order-8", *f.item(t, "u1", ids[0]).ReservedForOrder)
	assert.Equal(t, "order-9", *f.item(t, "u1", ids[1]).ReservedForOrder)
}

func TestBatchReserveDedupesAndIgnoresForeignItems(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	mine := f.seed(t, "u1", "A1", 1)
	theirs := f.seed(t, "u2", "B1", 1)

	res, err := f.uc.BatchReserve(ctx, &dto.BatchReserveInput{
		UserID:  "u1",
		ItemIDs: []int64{mine[0], mine[0], theirs[0]},
		OrderID: "order-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Reserved)
	assert.Equal(t, []int64{theirs[0]}, res.SkippedIDs)
	assert.Equal(t, model.ItemAvailable, f.item(t, "u2", theirs[0]).State())
}

func TestBatchReserveValidatesBeforeTouchingStore(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.uc.BatchReserve(context.Background(), &dto.BatchReserveInput{UserID: "u1", OrderID: "order-1"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestMarkSoldOnlyTouchesReservationsOfTheOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	ids := f.seed(t, "u1", "A1", 3)

	_, err := f.uc.BatchReserve(ctx, &dto.BatchReserveInput{UserID: "u1", ItemIDs: ids[:2], OrderID: "order-1"})
	require.NoError(t, err)

	customer := "Studio Rossi"
	res, err := f.uc.BatchMarkSold(ctx, &dto.BatchMarkSoldInput{
		UserID:   "u1",
		OrderID:  "order-1",
		Tracking: &model.Tracking{CustomerName: &customer},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)

	sold := f.item(t, "u1", ids[0])
	assert.Equal(t, model.ItemSold, sold.State())
	assert.Nil(t, sold.ReservedForOrder)
	assert.Equal(t, "order-1", *sold.SoldInOrder)
	assert.Equal(t, customer, *sold.CustomerName)
	assert.Equal(t, model.ItemAvailable, f.item(t, "u1", ids[2]).State())

	// Sold is terminal: neither release nor a second sale moves it.
	rel, err := f.uc.BatchRelease(ctx, &dto.BatchReleaseInput{UserID: "u1", OrderID: "order-1"})
	require.NoError(t, err)
	assert.Equal(t, 0, rel.Count)
	again, err := f.uc.BatchMarkSold(ctx, &dto.BatchMarkSoldInput{UserID: "u1", OrderID: "order-1"})
	require.NoError(t, err)
	assert.Equal(t, 0, again.Count)

	res2, err := f.uc.BatchReserve(ctx, &dto.BatchReserveInput{UserID: "u1", ItemIDs: ids[:1], OrderID: "order-2"})
	require.NoError(t, err)
	assert.Equal(t, 0, res2.Reserved)
}

func TestReleaseIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	ids := f.seed(t, "u1", "A1", 2)

	customer := "Studio Rossi"
	_, err := f.uc.BatchReserve(ctx, &dto.BatchReserveInput{
		UserID:   "u1",
		ItemIDs:  ids,
		OrderID:  "order-1",
		Tracking: &model.Tracking{CustomerName: &customer},
	})
	require.NoError(t, err)

	res, err := f.uc.BatchRelease(ctx, &dto.BatchReleaseInput{UserID: "u1", OrderID: "order-1"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)

	res, err = f.uc.BatchRelease(ctx, &dto.BatchReleaseInput{UserID: "u1", OrderID: "order-1"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)

	it := f.item(t, "u1", ids[0])
	assert.Equal(t, model.ItemAvailable, it.State())
	assert.Nil(t, it.CustomerName, "release clears tracking")
}

func TestTransferMovesOnlyListedReservations(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	ids := f.seed(t, "u1", "A1", 3)

	for i, order := range []string{"order-1", "order-2", "order-3"} {
		_, err := f.uc.BatchReserve(ctx, &dto.BatchReserveInput{UserID: "u1", ItemIDs: ids[i : i+1], OrderID: order})
		require.NoError(t, err)
	}

	res, err := f.uc.BatchTransfer(ctx, &dto.BatchTransferInput{
		UserID:       "u1",
		FromOrderIDs: []string{"order-1", "order-2"},
		ToOrderID:    "merged",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)

	assert.Equal(t, "merged", *f.item(t, "u1", ids[0]).ReservedForOrder)
	assert.Equal(t, "merged", *f.item(t, "u1", ids[1]).ReservedForOrder)
	assert.Equal(t, "order-3", *f.item(t, "u1", ids[2]).ReservedForOrder)
}

func TestBatchOpsAppendOneEntryPerItem(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	ids := f.seed(t, "u1", "A1", 2)

	before, err := f.store.ChangeLog().Counter(ctx, "u1")
	require.NoError(t, err)

	_, err = f.uc.BatchReserve(ctx, &dto.BatchReserveInput{UserID: "u1", ItemIDs: ids, OrderID: "order-1"})
	require.NoError(t, err)

	entries, err := f.store.ChangeLog().ListSince(ctx, "u1", before.LastSyncID, 100)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, model.EntityWarehouseItem, e.EntityType)
		assert.Equal(t, model.ActionUpdate, e.Action)
	}
	assert.Contains(t, f.notifier.Types(), notify.EventItemsReserved)
}

func TestDeleteBox(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	f.seed(t, "u1", "FULL", 1)

	_, err := f.uc.CreateBox(ctx, &dto.CreateBoxInput{UserID: "u1", Name: "EMPTY"})
	require.NoError(t, err)
	_, err = f.uc.CreateBox(ctx, &dto.CreateBoxInput{UserID: "u1", Name: "EMPTY"})
	assert.Equal(t, apperr.CodeBoxExists, apperr.CodeOf(err))

	err = f.uc.DeleteBox(ctx, &dto.DeleteBoxInput{UserID: "u1", Name: "FULL"})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, apperr.CodeBoxNotEmpty, apperr.CodeOf(err))

	err = f.uc.DeleteBox(ctx, &dto.DeleteBoxInput{UserID: "u1", Name: "MISSING"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	require.NoError(t, f.uc.DeleteBox(ctx, &dto.DeleteBoxInput{UserID: "u1", Name: "EMPTY"}))

	boxes, err := f.uc.ListBoxes(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, boxes, 1)
	assert.Equal(t, "FULL", boxes[0].Name)
	assert.Equal(t, 1, boxes[0].ItemCount)
}

func TestDeleteBoxReferencedByOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	_, err := f.uc.CreateBox(ctx, &dto.CreateBoxInput{UserID: "u1", Name: "A1"})
	require.NoError(t, err)
	putOrderFromBox(t, f.store, "u1", "o1", "A1")

	err = f.uc.DeleteBox(ctx, &dto.DeleteBoxInput{UserID: "u1", Name: "A1"})
	assert.Equal(t, apperr.CodeBoxReferenced, apperr.CodeOf(err))
}

func TestUpsertItemAndSearch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	ids := f.seed(t, "u1", "A1", 2)
	f.seed(t, "u2", "A1", 1)

	edited, err := f.uc.UpsertItem(ctx, &dto.UpsertItemInput{
		UserID:      "u1",
		ID:          ids[1],
		ArticleCode: "H1.314.012",
		Description: "Fresa diamantata",
		Quantity:    4,
		BoxName:     "A1",
	})
	require.NoError(t, err)
	assert.Equal(t, ids[1], edited.ID)
	assert.Equal(t, 4, edited.Quantity)

	_, err = f.uc.UpsertItem(ctx, &dto.UpsertItemInput{UserID: "u1", ArticleCode: "X", BoxName: "NOPE"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = f.uc.UpsertItem(ctx, &dto.UpsertItemInput{UserID: "u2", ID: ids[0], ArticleCode: "X", BoxName: "A1"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err), "items of other users are invisible")

	items, total, err := f.uc.SearchItems(ctx, &dto.ItemFilters{UserID: "u1", Query: "diamantata"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, ids[1], items[0].ID)

	_, err = f.uc.BatchReserve(ctx, &dto.BatchReserveInput{UserID: "u1", ItemIDs: ids[:1], OrderID: "o1"})
	require.NoError(t, err)
	items, total, err = f.uc.SearchItems(ctx, &dto.ItemFilters{UserID: "u1", State: string(model.ItemAvailable)})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, ids[1], items[0].ID)

	_, total, err = f.uc.SearchItems(ctx, &dto.ItemFilters{UserID: "u1", Page: 2, PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	_, _, err = f.uc.SearchItems(ctx, &dto.ItemFilters{})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestConcurrentReservationsNeverDoubleBook(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	ids := f.seed(t, "u1", "A1", 12)

	const orders = 16
	results := make([]*dto.BatchReserveResult, orders)
	var wg sync.WaitGroup
	for i := 0; i < orders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Overlapping windows of six items, each shifted by i.
			var want []int64
			for k := 0; k < 6; k++ {
				want = append(want, ids[(i+k)%len(ids)])
			}
			res, err := f.uc.BatchReserve(ctx, &dto.BatchReserveInput{
				UserID:  "u1",
				ItemIDs: want,
				OrderID: "order-" + strconv.Itoa(i),
			})
			assert.NoError(t, err)
			results[i] = res
		}(i)
	}
	wg.Wait()

	owner := map[int64]string{}
	total := 0
	for i, res := range results {
		require.NotNil(t, res)
		assert.Equal(t, 6, res.Reserved+res.Skipped)
		total += res.Reserved
		for _, id := range res.ReservedIDs {
			prev, taken := owner[id]
			assert.False(t, taken, "item %d reserved by %s and order-%d", id, prev, i)
			owner[id] = "order-" + strconv.Itoa(i)
		}
	}
	assert.Equal(t, len(ids), total)

	for _, id := range ids {
		it := f.item(t, "u1", id)
		require.NotNil(t, it.ReservedForOrder)
		assert.Equal(t, owner[id], *it.ReservedForOrder)
	}
}
