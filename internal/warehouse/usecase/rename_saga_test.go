package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/conflict"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/memstore"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putOrderFromBox(t *testing.T, store *memstore.Store, user, id, box string) {
	t.Helper()
	r := conflict.NewResolver[model.PendingOrder](store.Orders(), model.EntityPendingOrder, logger.NewNop())
	out, err := r.Apply(context.Background(), user, conflict.Mutation[model.PendingOrder]{
		Op: conflict.OpUpsert,
		Record: model.PendingOrder{
			ID:         id,
			UserID:     user,
			CustomerID: "c1",
			Status:     model.OrderStatusPending,
			Items: model.OrderItems{{
				ArticleCode:      "ART",
				Quantity:         1,
				WarehouseSources: []model.WarehouseSource{{WarehouseItemID: 1, BoxName: box, Quantity: 1}},
			}},
			CreatedAt: 100,
			UpdatedAt: 100,
		},
	})
	require.NoError(t, err)
	require.Equal(t, conflict.ActionCreated, out.Action)
}

type failingOrders struct {
	warehouse.OrderBoxReferences
}

func (failingOrders) RewriteBoxReferences(context.Context, string, string, string) (int, error) {
	return 0, errors.New("connection reset")
}

// renameOnce lets the first rename through and fails every later one.
type renameOnce struct {
	warehouse.Repository
	calls int
}

func (r *renameOnce) RenameBox(ctx context.Context, in *dto.RenameBoxInput) ([]model.WarehouseItem, error) {
	r.calls++
	if r.calls > 1 {
		return nil, errors.New("database unavailable")
	}
	return r.Repository.RenameBox(ctx, in)
}

func boxNames(t *testing.T, uc warehouse.UseCase, user string) []string {
	t.Helper()
	boxes, err := uc.ListBoxes(context.Background(), user)
	require.NoError(t, err)
	names := make([]string, len(boxes))
	for i, b := range boxes {
		names[i] = b.Name
	}
	return names
}

func TestRenameBoxRewritesOrders(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	ids := f.seed(t, "u1", "A1", 2)
	putOrderFromBox(t, f.store, "u1", "o1", "A1")

	res, err := f.uc.RenameBox(ctx, &dto.RenameBoxInput{UserID: "u1", OldName: "A1", NewName: "B1"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.ItemsMoved)
	assert.Equal(t, 1, res.OrdersUpdated)

	assert.Equal(t, []string{"B1"}, boxNames(t, f.uc, "u1"))
	assert.Equal(t, "B1", f.item(t, "u1", ids[0]).BoxName)

	o, err := f.store.Orders().FindByID(ctx, "o1")
	require.NoError(t, err)
	assert.True(t, o.ReferencesBox("B1"))
	assert.False(t, o.ReferencesBox("A1"))
	assert.Greater(t, o.UpdatedAt, int64(100))
}

func TestRenameBoxCompensates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func(s *memstore.Store) (warehouse.Repository, warehouse.OrderBoxReferences) {
		return s.Warehouse(), failingOrders{s.Orders()}
	})
	ids := f.seed(t, "u1", "A1", 1)

	_, err := f.uc.RenameBox(ctx, &dto.RenameBoxInput{UserID: "u1", OldName: "A1", NewName: "B1"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))

	assert.Equal(t, []string{"A1"}, boxNames(t, f.uc, "u1"))
	assert.Equal(t, "A1", f.item(t, "u1", ids[0]).BoxName)
}

func TestRenameBoxCompensationFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func(s *memstore.Store) (warehouse.Repository, warehouse.OrderBoxReferences) {
		return &renameOnce{Repository: s.Warehouse()}, failingOrders{s.Orders()}
	})
	f.seed(t, "u1", "A1", 1)

	_, err := f.uc.RenameBox(ctx, &dto.RenameBoxInput{UserID: "u1", OldName: "A1", NewName: "B1"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindCompensationFailed, apperr.KindOf(err))
	assert.Equal(t, []string{"B1"}, boxNames(t, f.uc, "u1"), "stays half-renamed until reconciled")
}

func TestRenameBoxRejectsTakenName(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	f.seed(t, "u1", "A1", 1)
	f.seed(t, "u1", "B1", 1)

	_, err := f.uc.RenameBox(ctx, &dto.RenameBoxInput{UserID: "u1", OldName: "A1", NewName: "B1"})
	assert.Equal(t, apperr.CodeBoxExists, apperr.CodeOf(err))

	_, err = f.uc.RenameBox(ctx, &dto.RenameBoxInput{UserID: "u1", OldName: "A1", NewName: "A1"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
