package warehouse

import (
	"context"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse/dto"
)

// Repository batch operations return the items they changed. Each runs in one
// transaction together with its change log entries.
type Repository interface {
	Reserve(ctx context.Context, in *dto.BatchReserveInput) ([]model.WarehouseItem, error)
	Release(ctx context.Context, in *dto.BatchReleaseInput) ([]model.WarehouseItem, error)
	MarkSold(ctx context.Context, in *dto.BatchMarkSoldInput) ([]model.WarehouseItem, error)
	Transfer(ctx context.Context, in *dto.BatchTransferInput) ([]model.WarehouseItem, error)

	SaveItem(ctx context.Context, item *model.WarehouseItem, deviceID string) (*model.WarehouseItem, error)
	FindItems(ctx context.Context, f *dto.ItemFilters) ([]model.WarehouseItem, int, error)

	CreateBox(ctx context.Context, box *model.WarehouseBox) error
	ListBoxes(ctx context.Context, userID string) ([]model.WarehouseBox, error)
	DeleteBox(ctx context.Context, userID, name string) error
	RenameBox(ctx context.Context, in *dto.RenameBoxInput) ([]model.WarehouseItem, error)
}

// OrderBoxReferences is the slice of the pending order store that box
// operations depend on.
type OrderBoxReferences interface {
	CountBoxReferences(ctx context.Context, userID, boxName string) (int, error)
	RewriteBoxReferences(ctx context.Context, userID, oldName, newName string) (int, error)
}
