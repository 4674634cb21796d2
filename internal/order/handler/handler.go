package handler

import (
	"context"

	pb "github.com/H4tholdir/archibaldblackant-sub008/gen/go/archibald/v1"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/auth"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/order"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/order/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"go.uber.org/zap"
)

var _ pb.OrderServiceServer = (*OrderHandler)(nil)

type OrderHandler struct {
	pb.UnimplementedOrderServiceServer
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *OrderHandler) Submit(ctx context.Context, req *pb.SubmitRequest) (*pb.SubmitResponse, error) {
	p, err := auth.FromContext(ctx)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	res, err := h.uc.Submit(ctx, p, &dto.SubmitInput{OrderID: req.OrderId, IdempotencyKey: req.IdempotencyKey})
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	h.logger.Debug("order submitted",
		zap.String("order_id", req.OrderId),
		zap.String("job_id", res.JobID),
		zap.Bool("created", res.Created),
	)
	return &pb.SubmitResponse{
		JobId:   res.JobID,
		Created: res.Created,
		Order:   OutcomeToProto(res.Order),
	}, nil
}

func (h *OrderHandler) GetOrder(ctx context.Context, req *pb.GetOrderRequest) (*pb.PendingOrder, error) {
	p, err := auth.FromContext(ctx)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	o, err := h.uc.GetOrder(ctx, p, req.OrderId)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	return OrderToProto(o), nil
}
