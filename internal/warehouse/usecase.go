package warehouse

import (
	"context"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse/dto"
)

type UseCase interface {
	BatchReserve(ctx context.Context, input *dto.BatchReserveInput) (*dto.BatchReserveResult, error)
	BatchRelease(ctx context.Context, input *dto.BatchReleaseInput) (*dto.CountResult, error)
	BatchMarkSold(ctx context.Context, input *dto.BatchMarkSoldInput) (*dto.CountResult, error)
	BatchTransfer(ctx context.Context, input *dto.BatchTransferInput) (*dto.CountResult, error)

	UpsertItem(ctx context.Context, input *dto.UpsertItemInput) (*model.WarehouseItem, error)
	SearchItems(ctx context.Context, filters *dto.ItemFilters) ([]model.WarehouseItem, int, error)

	CreateBox(ctx context.Context, input *dto.CreateBoxInput) (*model.WarehouseBox, error)
	ListBoxes(ctx context.Context, userID string) ([]model.WarehouseBox, error)
	DeleteBox(ctx context.Context, input *dto.DeleteBoxInput) error
	RenameBox(ctx context.Context, input *dto.RenameBoxInput) (*dto.RenameBoxResult, error)
}
