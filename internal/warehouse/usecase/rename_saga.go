package usecase

import (
	"context"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"go.uber.org/zap"
)

// renameBoxSaga renames a box in two committed steps:
//
//  1. the box row and its items move to the new name;
//  2. pending orders drawing from the box are rewritten.
//
// If step 2 fails, compensate moves the box back. A crash between the steps
// leaves orders pointing at the old name until the rename is retried.
type renameBoxSaga struct {
	items  warehouse.Repository
	orders warehouse.OrderBoxReferences
	input  *dto.RenameBoxInput
	logger logger.ZapLogger

	moved []model.WarehouseItem
}

func newRenameBoxSaga(items warehouse.Repository, orders warehouse.OrderBoxReferences, input *dto.RenameBoxInput, log logger.ZapLogger) *renameBoxSaga {
	return &renameBoxSaga{items: items, orders: orders, input: input, logger: log}
}

func (s *renameBoxSaga) Run(ctx context.Context) (*dto.RenameBoxResult, error) {
	moved, err := s.items.RenameBox(ctx, s.input)
	if err != nil {
		return nil, apperr.Ensure(err, "rename box")
	}
	s.moved = moved

	updated, err := s.orders.RewriteBoxReferences(ctx, s.input.UserID, s.input.OldName, s.input.NewName)
	if err != nil {
		s.logger.Warn("rewriting order references failed, renaming box back",
			zap.String("user_id", s.input.UserID),
			zap.String("old_name", s.input.OldName),
			zap.String("new_name", s.input.NewName),
			zap.Error(err),
		)
		if cerr := s.compensate(ctx); cerr != nil {
			return nil, cerr
		}
		return nil, apperr.Internal(err, "rewrite order box references")
	}

	return &dto.RenameBoxResult{ItemsMoved: len(moved), OrdersUpdated: updated}, nil
}

// compensate undoes step 1. It runs even if the caller has gone away.
func (s *renameBoxSaga) compensate(ctx context.Context) error {
	back := &dto.RenameBoxInput{
		UserID:   s.input.UserID,
		OldName:  s.input.NewName,
		NewName:  s.input.OldName,
		DeviceID: s.input.DeviceID,
	}
	if _, err := s.items.RenameBox(context.WithoutCancel(ctx), back); err != nil {
		s.logger.Error("box rename compensation failed, manual reconciliation required",
			zap.String("user_id", s.input.UserID),
			zap.String("box", s.input.NewName),
			zap.String("expected_name", s.input.OldName),
			zap.Error(err),
		)
		return apperr.CompensationFailed(err, "box "+s.input.NewName+" could not be renamed back to "+s.input.OldName)
	}
	s.moved = nil
	return nil
}
