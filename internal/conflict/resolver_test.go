package conflict_test

import (
	"context"
	"sync"
	"testing"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/conflict"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/memstore"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T) (*conflict.Resolver[model.PendingOrder], *memstore.Store) {
	t.Helper()
	store := memstore.New()
	t.Cleanup(func() { _ = store.Close() })
	return conflict.NewResolver[model.PendingOrder](store.Orders(), model.EntityPendingOrder, logger.NewNop()), store
}

func order(id, user string, updatedAt int64, customer string) model.PendingOrder {
	return model.PendingOrder{
		ID:         id,
		UserID:     user,
		CustomerID: customer,
		Status:     model.OrderStatusPending,
		CreatedAt:  1,
		UpdatedAt:  updatedAt,
	}
}

func upsert(o model.PendingOrder, key string) conflict.Mutation[model.PendingOrder] {
	m := conflict.Mutation[model.PendingOrder]{Op: conflict.OpUpsert, Record: o, DeviceID: "tablet"}
	if key != "" {
		m.IdempotencyKey = &key
	}
	return m
}

func logEntries(t *testing.T, store *memstore.Store, user string) []model.ChangeLogEntry {
	t.Helper()
	entries, err := store.ChangeLog().ListSince(context.Background(), user, 0, 1000)
	require.NoError(t, err)
	return entries
}

func TestStaleWriteIsSkipped(t *testing.T) {
	ctx := context.Background()
	r, store := newResolver(t)

	out, err := r.Apply(ctx, "u1", upsert(order("o1", "u1", 100, "c1"), ""))
	require.NoError(t, err)
	assert.Equal(t, conflict.ActionCreated, out.Action)
	require.NotNil(t, out.SyncID)
	assert.Equal(t, int64(1), *out.SyncID)

	out, err = r.Apply(ctx, "u1", upsert(order("o1", "u1", 50, "c2"), ""))
	require.NoError(t, err)
	assert.Equal(t, conflict.ActionSkipped, out.Action)
	assert.Equal(t, conflict.ReasonServerNewer, out.Reason)
	require.NotNil(t, out.ServerUpdatedAt)
	assert.Equal(t, int64(100), *out.ServerUpdatedAt)
	assert.Nil(t, out.SyncID)

	stored, err := store.Orders().FindByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, "c1", stored.CustomerID)
	assert.Len(t, logEntries(t, store, "u1"), 1, "a skipped write is not logged")
}

func TestEqualTimestampIsSkipped(t *testing.T) {
	ctx := context.Background()
	r, _ := newResolver(t)

	_, err := r.Apply(ctx, "u1", upsert(order("o1", "u1", 100, "c1"), ""))
	require.NoError(t, err)
	out, err := r.Apply(ctx, "u1", upsert(order("o1", "u1", 100, "c2"), ""))
	require.NoError(t, err)
	assert.Equal(t, conflict.ActionSkipped, out.Action)
}

func TestLWWConvergesInEitherOrder(t *testing.T) {
	ctx := context.Background()
	early := order("o1", "u1", 10, "early")
	late := order("o1", "u1", 20, "late")

	for name, seq := range map[string][]model.PendingOrder{
		"in order":     {early, late},
		"out of order": {late, early},
	} {
		t.Run(name, func(t *testing.T) {
			r, store := newResolver(t)
			for _, o := range seq {
				_, err := r.Apply(ctx, "u1", upsert(o, ""))
				require.NoError(t, err)
			}
			stored, err := store.Orders().FindByID(ctx, "o1")
			require.NoError(t, err)
			assert.Equal(t, "late", stored.CustomerID)
			assert.Equal(t, int64(20), stored.UpdatedAt)
		})
	}
}

func TestIdempotentReplay(t *testing.T) {
	ctx := context.Background()
	r, store := newResolver(t)

	first, err := r.Apply(ctx, "u1", upsert(order("o1", "u1", 100, "c1"), "k1"))
	require.NoError(t, err)

	// Retried delivery of the same request, even carrying a newer timestamp,
	// returns the recorded outcome without touching the store.
	second, err := r.Apply(ctx, "u1", upsert(order("o1", "u1", 200, "c9"), "k1"))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	stored, _ := store.Orders().FindByID(ctx, "o1")
	assert.Equal(t, int64(100), stored.UpdatedAt)
	assert.Len(t, logEntries(t, store, "u1"), 1)
}

func TestIdempotentReplayOfSkip(t *testing.T) {
	ctx := context.Background()
	r, _ := newResolver(t)

	_, err := r.Apply(ctx, "u1", upsert(order("o1", "u1", 100, "c1"), ""))
	require.NoError(t, err)
	first, err := r.Apply(ctx, "u1", upsert(order("o1", "u1", 50, "c1"), "k-stale"))
	require.NoError(t, err)
	second, err := r.Apply(ctx, "u1", upsert(order("o1", "u1", 50, "c1"), "k-stale"))
	require.NoError(t, err)
	assert.Equal(t, conflict.ActionSkipped, first.Action)
	assert.Equal(t, first, second)
}

func TestConcurrentDuplicateKey(t *testing.T) {
	ctx := context.Background()
	r, store := newResolver(t)

	outs := make([]conflict.Outcome, 16)
	var wg sync.WaitGroup
	for i := range outs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := r.Apply(ctx, "u1", upsert(order("o1", "u1", 100, "c1"), "k1"))
			assert.NoError(t, err)
			outs[i] = out
		}(i)
	}
	wg.Wait()

	for _, o := range outs[1:] {
		assert.Equal(t, outs[0], o)
	}
	assert.Equal(t, conflict.ActionCreated, outs[0].Action)
	assert.Len(t, logEntries(t, store, "u1"), 1)
}

func TestConcurrentCreatesBecomeUpdate(t *testing.T) {
	ctx := context.Background()
	r, store := newResolver(t)

	var wg sync.WaitGroup
	outs := make([]conflict.Outcome, 2)
	for i, ts := range []int64{100, 200} {
		wg.Add(1)
		go func(i int, ts int64) {
			defer wg.Done()
			out, err := r.Apply(ctx, "u1", upsert(order("o1", "u1", ts, "c"), ""))
			assert.NoError(t, err)
			outs[i] = out
		}(i, ts)
	}
	wg.Wait()

	created := 0
	for _, o := range outs {
		if o.Action == conflict.ActionCreated {
			created++
		}
	}
	assert.Equal(t, 1, created, "exactly one arrival inserts")

	inserts := 0
	for _, e := range logEntries(t, store, "u1") {
		if e.Action == model.ActionInsert {
			inserts++
		}
	}
	assert.Equal(t, 1, inserts)

	stored, _ := store.Orders().FindByID(ctx, "o1")
	assert.Equal(t, int64(200), stored.UpdatedAt)
}

func TestOtherOwnerIsRejected(t *testing.T) {
	ctx := context.Background()
	r, store := newResolver(t)

	_, err := r.Apply(ctx, "u1", upsert(order("o1", "u1", 100, "c1"), ""))
	require.NoError(t, err)

	out, err := r.Apply(ctx, "u2", upsert(order("o1", "u2", 500, "stolen"), ""))
	require.NoError(t, err)
	assert.Equal(t, conflict.ActionError, out.Action)
	assert.Equal(t, conflict.ReasonForbidden, out.Reason)

	stored, _ := store.Orders().FindByID(ctx, "o1")
	assert.Equal(t, "u1", stored.UserID)
	assert.Empty(t, logEntries(t, store, "u2"))
}

func TestKeyReusedForAnotherEntity(t *testing.T) {
	ctx := context.Background()
	r, _ := newResolver(t)

	_, err := r.Apply(ctx, "u1", upsert(order("o1", "u1", 100, "c1"), "k1"))
	require.NoError(t, err)
	out, err := r.Apply(ctx, "u1", upsert(order("o2", "u1", 100, "c1"), "k1"))
	require.NoError(t, err)
	assert.Equal(t, conflict.ActionError, out.Action)
	assert.Equal(t, conflict.ReasonKeyReused, out.Reason)
}

func TestKeyReusedForAnotherOp(t *testing.T) {
	ctx := context.Background()
	r, store := newResolver(t)

	_, err := r.Apply(ctx, "u1", upsert(order("o1", "u1", 100, "c1"), "k1"))
	require.NoError(t, err)

	key := "k1"
	del := conflict.Mutation[model.PendingOrder]{Op: conflict.OpDelete, Record: order("o1", "u1", 200, ""), IdempotencyKey: &key}
	out, err := r.Apply(ctx, "u1", del)
	require.NoError(t, err)
	assert.Equal(t, conflict.ActionError, out.Action)
	assert.Equal(t, conflict.ReasonKeyReused, out.Reason)

	stored, err := store.Orders().FindByID(ctx, "o1")
	require.NoError(t, err)
	require.NotNil(t, stored, "the delete did not run")

	// The same op on the same entity still replays.
	out, err = r.Apply(ctx, "u1", upsert(order("o1", "u1", 100, "c1"), "k1"))
	require.NoError(t, err)
	assert.Equal(t, conflict.ActionCreated, out.Action)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	r, store := newResolver(t)

	_, err := r.Apply(ctx, "u1", upsert(order("o1", "u1", 100, "c1"), ""))
	require.NoError(t, err)

	stale := conflict.Mutation[model.PendingOrder]{Op: conflict.OpDelete, Record: order("o1", "u1", 90, "")}
	out, err := r.Apply(ctx, "u1", stale)
	require.NoError(t, err)
	assert.Equal(t, conflict.ActionSkipped, out.Action)

	fresh := conflict.Mutation[model.PendingOrder]{Op: conflict.OpDelete, Record: order("o1", "u1", 150, "")}
	out, err = r.Apply(ctx, "u1", fresh)
	require.NoError(t, err)
	assert.Equal(t, conflict.ActionDeleted, out.Action)
	require.NotNil(t, out.SyncID)

	stored, _ := store.Orders().FindByID(ctx, "o1")
	assert.Nil(t, stored)

	entries := logEntries(t, store, "u1")
	require.Len(t, entries, 2)
	assert.Equal(t, model.ActionDelete, entries[1].Action)

	// Deleting something already gone is a no-op success with nothing logged.
	out, err = r.Apply(ctx, "u1", fresh)
	require.NoError(t, err)
	assert.Equal(t, conflict.ActionDeleted, out.Action)
	assert.Nil(t, out.SyncID)
	assert.Len(t, logEntries(t, store, "u1"), 2)
}
