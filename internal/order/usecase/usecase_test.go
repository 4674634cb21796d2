package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"testing"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/agentlock"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/auth"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/changelog"
	changelogDTO "github.com/H4tholdir/archibaldblackant-sub008/internal/changelog/dto"
	changelogUC "github.com/H4tholdir/archibaldblackant-sub008/internal/changelog/usecase"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/conflict"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/job"
	jobDTO "github.com/H4tholdir/archibaldblackant-sub008/internal/job/dto"
	jobUC "github.com/H4tholdir/archibaldblackant-sub008/internal/job/usecase"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/memstore"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/notify"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/order"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/order/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse"
	warehouseDTO "github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse/dto"
	warehouseUC "github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse/usecase"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var agent = auth.Principal{UserID: "u1", Role: auth.RoleAgent}

type fixture struct {
	store    *memstore.Store
	orders   order.UseCase
	jobs     job.UseCase
	stock    warehouse.UseCase
	sync     changelog.UseCase
	notifier *notify.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.New()
	t.Cleanup(func() { _ = store.Close() })

	log := logger.NewNop()
	rec := notify.NewRecorder()
	jobs := jobUC.NewJobUseCase(store.Jobs(), agentlock.NewMemoryLocker(nil), rec, jobUC.Options{
		ExclusiveTypes: []string{dto.SubmitJobType},
	}, log)
	stock := warehouseUC.NewWarehouseUseCase(store.Warehouse(), store.Orders(), nil, nil, rec, log)
	orders := NewOrderUseCase(store.Orders(), jobs, stock, rec, log)
	jobs.RegisterHook(dto.SubmitJobType, orders)

	return &fixture{
		store:    store,
		orders:   orders,
		jobs:     jobs,
		stock:    stock,
		sync:     changelogUC.NewChangeLogUseCase(store.ChangeLog(), changelogUC.Options{PageSize: 3}, log),
		notifier: rec,
	}
}

func newOrder(id string, updatedAt int64, sources ...model.WarehouseSource) *model.PendingOrder {
	return &model.PendingOrder{
		ID:           id,
		CustomerID:   "C001",
		CustomerName: "Studio Rossi",
		Items: model.OrderItems{{
			ArticleCode:      "H1.314.012",
			Quantity:         2,
			Price:            decimal.NewFromInt(12),
			WarehouseSources: sources,
		}},
		UpdatedAt: updatedAt,
	}
}

func upsert(o *model.PendingOrder) dto.PushMutation {
	return dto.PushMutation{Op: "upsert", ID: o.ID, UpdatedAt: o.UpdatedAt, DeviceID: "tablet", Order: o}
}

func (f *fixture) push(t *testing.T, muts ...dto.PushMutation) []conflict.Outcome {
	t.Helper()
	out, err := f.orders.Push(context.Background(), &dto.PushInput{UserID: "u1", Mutations: muts})
	require.NoError(t, err)
	require.Len(t, out, len(muts))
	return out
}

func actions(outs []conflict.Outcome) []conflict.Action {
	res := make([]conflict.Action, len(outs))
	for i, o := range outs {
		res[i] = o.Action
	}
	return res
}

func TestPushOutcomes(t *testing.T) {
	f := newFixture(t)

	out := f.push(t,
		upsert(newOrder("o1", 100)),
		upsert(newOrder("o1", 200)),
		upsert(newOrder("o1", 150)),
		dto.PushMutation{Op: "delete", ID: "o1", UpdatedAt: 300},
		dto.PushMutation{Op: "delete", ID: "never-existed", UpdatedAt: 300},
	)
	assert.Equal(t, []conflict.Action{
		conflict.ActionCreated,
		conflict.ActionUpdated,
		conflict.ActionSkipped,
		conflict.ActionDeleted,
		conflict.ActionDeleted,
	}, actions(out))

	assert.Equal(t, conflict.ReasonServerNewer, out[2].Reason)
	require.NotNil(t, out[2].ServerUpdatedAt)
	assert.Equal(t, int64(200), *out[2].ServerUpdatedAt)
	assert.NotNil(t, out[3].SyncID)
	assert.Nil(t, out[4].SyncID, "deleting a missing order writes nothing")

	assert.Equal(t, []string{
		notify.EventOrderCreated, notify.EventOrderUpdated, notify.EventOrderDeleted,
	}, f.notifier.Types())
}

func TestPushRejectsInvalidItemsIndividually(t *testing.T) {
	f := newFixture(t)

	noCustomer := newOrder("o2", 100)
	noCustomer.CustomerID = ""

	out := f.push(t,
		upsert(newOrder("o1", 100)),
		upsert(noCustomer),
		dto.PushMutation{Op: "upsert", ID: "o3", UpdatedAt: 100},
		dto.PushMutation{Op: "merge", ID: "o4", UpdatedAt: 100},
	)
	assert.Equal(t, conflict.ActionCreated, out[0].Action)
	for _, o := range out[1:] {
		assert.Equal(t, conflict.ActionError, o.Action)
		assert.Equal(t, apperr.CodeInvalidRequest, o.Reason)
	}
}

func TestPushTakesIdentityFromTheMutation(t *testing.T) {
	f := newFixture(t)

	body := newOrder("", 0)
	badItem := newOrder("", 0)
	badItem.Items[0].Quantity = 0

	out := f.push(t,
		dto.PushMutation{Op: "upsert", ID: "o1", UpdatedAt: 100, DeviceID: "tablet", Order: body},
		dto.PushMutation{Op: "upsert", ID: "o2", UpdatedAt: 100, Order: badItem},
	)
	assert.Equal(t, conflict.ActionCreated, out[0].Action)
	assert.Equal(t, conflict.ActionError, out[1].Action)
	assert.Equal(t, apperr.CodeInvalidRequest, out[1].Reason)

	o, err := f.orders.GetOrder(context.Background(), agent, "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", o.ID)
	assert.Equal(t, int64(100), o.UpdatedAt)
	assert.Equal(t, "tablet", o.DeviceID)
}

func TestPushBatchLimits(t *testing.T) {
	f := newFixture(t)

	_, err := f.orders.Push(context.Background(), &dto.PushInput{Mutations: []dto.PushMutation{upsert(newOrder("o1", 1))}})
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))

	muts := make([]dto.PushMutation, maxPushBatch+1)
	_, err = f.orders.Push(context.Background(), &dto.PushInput{UserID: "u1", Mutations: muts})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestPushReplaysIdempotencyKey(t *testing.T) {
	f := newFixture(t)
	key := "m-1"

	m := upsert(newOrder("o1", 100))
	m.IdempotencyKey = &key
	first := f.push(t, m)[0]

	again := f.push(t, m)[0]
	assert.Equal(t, first, again)

	other := upsert(newOrder("o2", 100))
	other.IdempotencyKey = &key
	reused := f.push(t, other)[0]
	assert.Equal(t, conflict.ActionError, reused.Action)
	assert.Equal(t, conflict.ReasonKeyReused, reused.Reason)
}

func TestPushCannotTouchForeignOrders(t *testing.T) {
	f := newFixture(t)
	f.push(t, upsert(newOrder("o1", 100)))

	out, err := f.orders.Push(context.Background(), &dto.PushInput{
		UserID:    "u2",
		Mutations: []dto.PushMutation{upsert(newOrder("o1", 500))},
	})
	require.NoError(t, err)
	assert.Equal(t, conflict.ActionError, out[0].Action)
	assert.Equal(t, conflict.ReasonForbidden, out[0].Reason)

	_, err = f.orders.GetOrder(context.Background(), auth.Principal{UserID: "u2", Role: auth.RoleAgent}, "o1")
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

// replayLog rebuilds a client's state by pulling the whole change log from
// zero, page by page.
func replayLog(t *testing.T, f *fixture) (map[string]model.PendingOrder, map[string]model.WarehouseItem, int64) {
	t.Helper()
	orders := map[string]model.PendingOrder{}
	items := map[string]model.WarehouseItem{}

	last := int64(0)
	for {
		page, err := f.sync.Pull(context.Background(), &changelogDTO.PullInput{UserID: "u1", LastSyncID: &last})
		require.NoError(t, err)
		require.False(t, page.Resync)

		for _, e := range page.Entries {
			require.Greater(t, e.SyncID, last)
			last = e.SyncID
			switch e.EntityType {
			case model.EntityPendingOrder:
				if e.Action == model.ActionDelete {
					delete(orders, e.EntityID)
					continue
				}
				var o model.PendingOrder
				require.NoError(t, json.Unmarshal(e.Payload, &o))
				orders[e.EntityID] = o
			case model.EntityWarehouseItem:
				var it model.WarehouseItem
				require.NoError(t, json.Unmarshal(e.Payload, &it))
				items[e.EntityID] = it
			}
		}
		if !page.HasMore {
			return orders, items, last
		}
	}
}

func TestReplayingTheLogReproducesServerState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.stock.CreateBox(ctx, &warehouseDTO.CreateBoxInput{UserID: "u1", Name: "A1"})
	require.NoError(t, err)
	var ids []int64
	for i := 0; i < 3; i++ {
		it, err := f.stock.UpsertItem(ctx, &warehouseDTO.UpsertItemInput{UserID: "u1", ArticleCode: "H1", Quantity: 1, BoxName: "A1"})
		require.NoError(t, err)
		ids = append(ids, it.ID)
	}

	src := model.WarehouseSource{WarehouseItemID: ids[0], BoxName: "A1", Quantity: 1}
	f.push(t,
		upsert(newOrder("o1", 100, src)),
		upsert(newOrder("o2", 100)),
		upsert(newOrder("o2", 120)),
		upsert(newOrder("o3", 100)),
		dto.PushMutation{Op: "delete", ID: "o3", UpdatedAt: 130},
	)
	_, err = f.stock.BatchReserve(ctx, &warehouseDTO.BatchReserveInput{UserID: "u1", ItemIDs: ids[:2], OrderID: "o1"})
	require.NoError(t, err)
	_, err = f.stock.RenameBox(ctx, &warehouseDTO.RenameBoxInput{UserID: "u1", OldName: "A1", NewName: "B1"})
	require.NoError(t, err)
	_, err = f.orders.Submit(ctx, agent, &dto.SubmitInput{OrderID: "o2"})
	require.NoError(t, err)

	orders, items, last := replayLog(t, f)

	state, err := f.sync.FullState(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, state.SyncID, last)

	gotOrders := make([]model.PendingOrder, 0, len(orders))
	for _, o := range orders {
		gotOrders = append(gotOrders, o)
	}
	sort.Slice(gotOrders, func(i, j int) bool { return gotOrders[i].ID < gotOrders[j].ID })
	wantOrders := append([]model.PendingOrder(nil), state.Orders...)
	sort.Slice(wantOrders, func(i, j int) bool { return wantOrders[i].ID < wantOrders[j].ID })
	assertSameJSON(t, wantOrders, gotOrders)

	require.Len(t, items, len(state.WarehouseItems))
	for _, want := range state.WarehouseItems {
		got, ok := items[strconv.FormatInt(want.ID, 10)]
		require.True(t, ok)
		assertSameJSON(t, want, got)
	}
	assert.Equal(t, "B1", orders["o1"].Items[0].WarehouseSources[0].BoxName)
	assert.Equal(t, model.OrderStatusQueued, orders["o2"].Status)
}

func assertSameJSON(t *testing.T, want, got interface{}) {
	t.Helper()
	w, err := json.Marshal(want)
	require.NoError(t, err)
	g, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, string(w), string(g))
}

func TestSubmitQueuesOneJobPerOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.push(t, upsert(newOrder("o1", 100)))

	first, err := f.orders.Submit(ctx, agent, &dto.SubmitInput{OrderID: "o1"})
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, conflict.ActionUpdated, first.Order.Action)

	again, err := f.orders.Submit(ctx, agent, &dto.SubmitInput{OrderID: "o1"})
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, first.JobID, again.JobID)

	o, err := f.orders.GetOrder(ctx, agent, "o1")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusQueued, o.Status)
	assert.Equal(t, model.ServerDeviceID, o.DeviceID)
	assert.Greater(t, o.UpdatedAt, int64(100))

	j, err := f.jobs.GetStatus(ctx, agent, first.JobID)
	require.NoError(t, err)
	assert.Equal(t, dto.SubmitJobType, j.Type)
	assert.JSONEq(t, `{"orderId":"o1"}`, string(j.Data))

	_, err = f.orders.Submit(ctx, agent, &dto.SubmitInput{OrderID: "missing"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

// unavailableQueue refuses every enqueue.
type unavailableQueue struct {
	job.UseCase
}

func (unavailableQueue) Enqueue(ctx context.Context, input *jobDTO.EnqueueInput) (*jobDTO.EnqueueResult, error) {
	return nil, apperr.Internal(errors.New("queue down"), "create job")
}

func TestSubmitRestoresOrderWhenQueueFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	failed := newOrder("o1", 100)
	failed.Status = model.OrderStatusError
	failed.ErrorMessage = strPtr("timeout")
	f.push(t, upsert(failed))

	orders := NewOrderUseCase(f.store.Orders(), unavailableQueue{}, f.stock, notify.NewNop(), logger.NewNop())
	_, err := orders.Submit(ctx, agent, &dto.SubmitInput{OrderID: "o1"})
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))

	o, err := f.orders.GetOrder(ctx, agent, "o1")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusError, o.Status)
	require.NotNil(t, o.ErrorMessage)
	assert.Equal(t, "timeout", *o.ErrorMessage)
}

func TestServerWriteStaysAheadOfFutureClientClocks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	// A client clock far in the future.
	far := int64(1) << 50
	f.push(t, upsert(newOrder("o1", far)))

	_, err := f.orders.Submit(ctx, agent, &dto.SubmitInput{OrderID: "o1"})
	require.NoError(t, err)

	o, err := f.orders.GetOrder(ctx, agent, "o1")
	require.NoError(t, err)
	assert.Equal(t, far+1, o.UpdatedAt)
	assert.Equal(t, model.OrderStatusQueued, o.Status)
}

func runSubmission(t *testing.T, f *fixture, orderID string) string {
	t.Helper()
	res, err := f.orders.Submit(context.Background(), agent, &dto.SubmitInput{OrderID: orderID})
	require.NoError(t, err)
	j, err := f.jobs.Claim(context.Background(), &jobDTO.ClaimInput{Types: []string{dto.SubmitJobType}})
	require.NoError(t, err)
	require.NotNil(t, j)
	require.Equal(t, res.JobID, j.ID)
	return j.ID
}

func TestCompletedSubmissionSellsStockAndDropsOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.stock.CreateBox(ctx, &warehouseDTO.CreateBoxInput{UserID: "u1", Name: "A1"})
	require.NoError(t, err)
	it, err := f.stock.UpsertItem(ctx, &warehouseDTO.UpsertItemInput{UserID: "u1", ArticleCode: "H1", Quantity: 1, BoxName: "A1"})
	require.NoError(t, err)

	f.push(t, upsert(newOrder("o1", 100, model.WarehouseSource{WarehouseItemID: it.ID, BoxName: "A1", Quantity: 1})))
	_, err = f.stock.BatchReserve(ctx, &warehouseDTO.BatchReserveInput{UserID: "u1", ItemIDs: []int64{it.ID}, OrderID: "o1"})
	require.NoError(t, err)

	jobID := runSubmission(t, f, "o1")
	require.NoError(t, f.jobs.Complete(ctx, jobID, model.JSONB(`{"orderNumber":"ORD/2026/0042","orderDate":"2026-10-15"}`)))

	_, err = f.orders.GetOrder(ctx, agent, "o1")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	items, _, err := f.stock.SearchItems(ctx, &warehouseDTO.ItemFilters{UserID: "u1", State: string(model.ItemSold)})
	require.NoError(t, err)
	require.Len(t, items, 1)
	sold := items[0]
	assert.Equal(t, "o1", *sold.SoldInOrder)
	assert.Equal(t, "ORD/2026/0042", *sold.OrderNumber)
	assert.Equal(t, "2026-10-15", *sold.OrderDate)
	assert.Equal(t, "Studio Rossi", *sold.CustomerName)

	assert.Contains(t, f.notifier.Types(), notify.EventItemsSold)
	assert.Contains(t, f.notifier.Types(), notify.EventOrderDeleted)
}

func TestFailedSubmissionFlagsOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.push(t, upsert(newOrder("o1", 100)))

	jobID := runSubmission(t, f, "o1")
	require.NoError(t, f.jobs.Fail(ctx, jobID, "customer blocked in ERP"))

	o, err := f.orders.GetOrder(ctx, agent, "o1")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusError, o.Status)
	require.NotNil(t, o.ErrorMessage)
	assert.Equal(t, "customer blocked in ERP", *o.ErrorMessage)
	assert.Equal(t, 1, o.RetryCount)

	// Resubmitting clears the error and reuses the order key.
	require.NoError(t, f.jobs.Retry(ctx, agent, jobID))
	res, err := f.orders.Submit(ctx, agent, &dto.SubmitInput{OrderID: "o1"})
	require.NoError(t, err)
	assert.Equal(t, jobID, res.JobID)

	o, err = f.orders.GetOrder(ctx, agent, "o1")
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusQueued, o.Status)
	assert.Nil(t, o.ErrorMessage)
	assert.Equal(t, 1, o.RetryCount)
}

func TestCompletionForDeletedOrderIsHarmless(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.push(t, upsert(newOrder("o1", 100)))

	jobID := runSubmission(t, f, "o1")
	o, err := f.orders.GetOrder(ctx, agent, "o1")
	require.NoError(t, err)
	f.push(t, dto.PushMutation{Op: "delete", ID: "o1", UpdatedAt: o.UpdatedAt + 1})

	require.NoError(t, f.jobs.Complete(ctx, jobID, nil))
	j, err := f.jobs.GetStatus(ctx, agent, jobID)
	require.NoError(t, err)
	assert.Equal(t, model.JobCompleted, j.State)
}
