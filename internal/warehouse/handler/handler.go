package handler

import (
	"context"

	pb "github.com/H4tholdir/archibaldblackant-sub008/gen/go/archibald/v1"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/auth"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
)

var _ pb.WarehouseServiceServer = (*WarehouseHandler)(nil)

type WarehouseHandler struct {
	pb.UnimplementedWarehouseServiceServer
	uc     warehouse.UseCase
	logger logger.ZapLogger
}

func NewWarehouseHandler(uc warehouse.UseCase, log logger.ZapLogger) *WarehouseHandler {
	return &WarehouseHandler{
		uc:     uc,
		logger: log,
	}
}

// subject resolves the user a request acts for. Only admins may name someone
// other than themselves.
func subject(ctx context.Context, requested string) (string, error) {
	p, err := auth.FromContext(ctx)
	if err != nil {
		return "", err
	}
	return auth.Subject(p, requested)
}

func (h *WarehouseHandler) BatchReserve(ctx context.Context, req *pb.BatchReserveRequest) (*pb.BatchReserveResponse, error) {
	userID, err := subject(ctx, req.UserId)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	res, err := h.uc.BatchReserve(ctx, &dto.BatchReserveInput{
		UserID:   userID,
		ItemIDs:  req.ItemIds,
		OrderID:  req.OrderId,
		Tracking: trackingFromProto(req.Tracking),
		DeviceID: req.DeviceId,
	})
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	return &pb.BatchReserveResponse{
		Reserved:    int32(res.Reserved),
		Skipped:     int32(res.Skipped),
		ReservedIds: res.ReservedIDs,
		SkippedIds:  res.SkippedIDs,
	}, nil
}

func (h *WarehouseHandler) BatchRelease(ctx context.Context, req *pb.BatchReleaseRequest) (*pb.CountResponse, error) {
	userID, err := subject(ctx, req.UserId)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	res, err := h.uc.BatchRelease(ctx, &dto.BatchReleaseInput{UserID: userID, OrderID: req.OrderId, DeviceID: req.DeviceId})
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	return &pb.CountResponse{Count: int32(res.Count)}, nil
}

func (h *WarehouseHandler) BatchMarkSold(ctx context.Context, req *pb.BatchMarkSoldRequest) (*pb.CountResponse, error) {
	userID, err := subject(ctx, req.UserId)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	res, err := h.uc.BatchMarkSold(ctx, &dto.BatchMarkSoldInput{
		UserID:   userID,
		OrderID:  req.OrderId,
		Tracking: trackingFromProto(req.Tracking),
		DeviceID: req.DeviceId,
	})
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	return &pb.CountResponse{Count: int32(res.Count)}, nil
}

func (h *WarehouseHandler) BatchTransfer(ctx context.Context, req *pb.BatchTransferRequest) (*pb.CountResponse, error) {
	userID, err := subject(ctx, req.UserId)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	res, err := h.uc.BatchTransfer(ctx, &dto.BatchTransferInput{
		UserID:       userID,
		FromOrderIDs: req.FromOrderIds,
		ToOrderID:    req.ToOrderId,
		DeviceID:     req.DeviceId,
	})
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	return &pb.CountResponse{Count: int32(res.Count)}, nil
}

func (h *WarehouseHandler) UpsertItem(ctx context.Context, req *pb.UpsertItemRequest) (*pb.WarehouseItem, error) {
	userID, err := subject(ctx, req.UserId)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	item, err := h.uc.UpsertItem(ctx, &dto.UpsertItemInput{
		UserID:      userID,
		ID:          req.Id,
		ArticleCode: req.ArticleCode,
		Description: req.Description,
		Quantity:    int(req.Quantity),
		BoxName:     req.BoxName,
		DeviceID:    req.DeviceId,
	})
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	return ItemToProto(item), nil
}

func (h *WarehouseHandler) SearchItems(ctx context.Context, req *pb.SearchItemsRequest) (*pb.SearchItemsResponse, error) {
	userID, err := subject(ctx, req.UserId)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	items, total, err := h.uc.SearchItems(ctx, &dto.ItemFilters{
		UserID:   userID,
		Query:    req.Query,
		BoxName:  req.BoxName,
		State:    req.State,
		Page:     int(req.Page),
		PageSize: int(req.PageSize),
	})
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	out := make([]*pb.WarehouseItem, len(items))
	for i := range items {
		out[i] = ItemToProto(&items[i])
	}
	return &pb.SearchItemsResponse{Items: out, Total: int32(total)}, nil
}

func (h *WarehouseHandler) CreateBox(ctx context.Context, req *pb.CreateBoxRequest) (*pb.WarehouseBox, error) {
	userID, err := subject(ctx, req.UserId)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	box, err := h.uc.CreateBox(ctx, &dto.CreateBoxInput{UserID: userID, Name: req.Name})
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	return boxToProto(box), nil
}

func (h *WarehouseHandler) ListBoxes(ctx context.Context, req *pb.ListBoxesRequest) (*pb.ListBoxesResponse, error) {
	userID, err := subject(ctx, req.UserId)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	boxes, err := h.uc.ListBoxes(ctx, userID)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	out := make([]*pb.WarehouseBox, len(boxes))
	for i := range boxes {
		out[i] = boxToProto(&boxes[i])
	}
	return &pb.ListBoxesResponse{Boxes: out}, nil
}

func (h *WarehouseHandler) DeleteBox(ctx context.Context, req *pb.DeleteBoxRequest) (*pb.DeleteBoxResponse, error) {
	userID, err := subject(ctx, req.UserId)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	if err := h.uc.DeleteBox(ctx, &dto.DeleteBoxInput{UserID: userID, Name: req.Name}); err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	return &pb.DeleteBoxResponse{Success: true}, nil
}

func (h *WarehouseHandler) RenameBox(ctx context.Context, req *pb.RenameBoxRequest) (*pb.RenameBoxResponse, error) {
	userID, err := subject(ctx, req.UserId)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	res, err := h.uc.RenameBox(ctx, &dto.RenameBoxInput{
		UserID:   userID,
		OldName:  req.OldName,
		NewName:  req.NewName,
		DeviceID: req.DeviceId,
	})
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	return &pb.RenameBoxResponse{
		ItemsMoved:    int32(res.ItemsMoved),
		OrdersUpdated: int32(res.OrdersUpdated),
	}, nil
}
