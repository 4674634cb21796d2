package handler

import (
	"context"

	pb "github.com/H4tholdir/archibaldblackant-sub008/gen/go/archibald/v1"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/auth"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/changelog"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/changelog/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/order"
	orderDTO "github.com/H4tholdir/archibaldblackant-sub008/internal/order/dto"
	orderH "github.com/H4tholdir/archibaldblackant-sub008/internal/order/handler"
	whH "github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse/handler"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var _ pb.SyncServiceServer = (*SyncHandler)(nil)

type SyncHandler struct {
	pb.UnimplementedSyncServiceServer
	uc     changelog.UseCase
	orders order.UseCase
	logger logger.ZapLogger
}

func NewSyncHandler(uc changelog.UseCase, orders order.UseCase, log logger.ZapLogger) *SyncHandler {
	return &SyncHandler{
		uc:     uc,
		orders: orders,
		logger: log,
	}
}

func (h *SyncHandler) Pull(ctx context.Context, req *pb.PullRequest) (*pb.PullResponse, error) {
	p, err := auth.FromContext(ctx)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	res, err := h.uc.Pull(ctx, &dto.PullInput{UserID: p.UserID, LastSyncID: req.LastSyncId})
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	if res.Resync {
		return &pb.PullResponse{Resync: true}, nil
	}

	entries := make([]*pb.ChangeLogEntry, len(res.Entries))
	for i, e := range res.Entries {
		entries[i] = &pb.ChangeLogEntry{
			SyncId:         e.SyncID,
			EntityType:     string(e.EntityType),
			EntityId:       e.EntityID,
			Action:         string(e.Action),
			Data:           string(e.Payload),
			DeviceId:       e.DeviceID,
			IdempotencyKey: e.IdempotencyKey,
			CreatedAt:      timestamppb.New(e.CreatedAt),
		}
	}
	return &pb.PullResponse{
		Entries:    entries,
		LastSyncId: res.LastSyncID,
		HasMore:    res.HasMore,
	}, nil
}

func (h *SyncHandler) FullState(ctx context.Context, req *pb.FullStateRequest) (*pb.FullStateResponse, error) {
	p, err := auth.FromContext(ctx)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	state, err := h.uc.FullState(ctx, p.UserID)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	return fullStateToProto(state), nil
}

func (h *SyncHandler) Push(ctx context.Context, req *pb.PushRequest) (*pb.PushResponse, error) {
	p, err := auth.FromContext(ctx)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	mutations := make([]orderDTO.PushMutation, len(req.Mutations))
	for i, m := range req.Mutations {
		body, err := orderH.OrderFromProto(m.Order)
		if err != nil {
			return nil, apperr.ToStatus(ctx, err)
		}
		mutations[i] = orderDTO.PushMutation{
			Op:             m.Op,
			ID:             m.Id,
			UpdatedAt:      m.UpdatedAt,
			DeviceID:       m.DeviceId,
			IdempotencyKey: m.IdempotencyKey,
			Order:          body,
		}
	}

	results, err := h.orders.Push(ctx, &orderDTO.PushInput{UserID: p.UserID, Mutations: mutations})
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	h.logger.Debug("push handled",
		zap.String("user_id", p.UserID),
		zap.Int("mutations", len(mutations)),
	)

	out := make([]*pb.MutationOutcome, len(results))
	for i, r := range results {
		out[i] = orderH.OutcomeToProto(r)
	}
	return &pb.PushResponse{Results: out}, nil
}

func fullStateToProto(s *model.FullState) *pb.FullStateResponse {
	orders := make([]*pb.PendingOrder, len(s.Orders))
	for i := range s.Orders {
		orders[i] = orderH.OrderToProto(&s.Orders[i])
	}
	items := make([]*pb.WarehouseItem, len(s.WarehouseItems))
	for i := range s.WarehouseItems {
		items[i] = whH.ItemToProto(&s.WarehouseItems[i])
	}
	return &pb.FullStateResponse{
		Orders:         orders,
		WarehouseItems: items,
		SyncId:         s.SyncID,
	}
}
