package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/auth"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/conflict"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/job"
	jobDTO "github.com/H4tholdir/archibaldblackant-sub008/internal/job/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/notify"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/order"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/order/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse"
	warehouseDTO "github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	maxPushBatch = 500
	// Server-side writes lose to a concurrent client write at most this
	// many times before giving up.
	maxServerWriteAttempts = 3
)

type orderUseCase struct {
	repo     order.Repository
	resolver *conflict.Resolver[model.PendingOrder]
	jobs     job.UseCase
	stock    warehouse.UseCase
	notifier notify.Publisher
	validate *validator.Validate
	now      func() time.Time
	logger   logger.ZapLogger
}

func NewOrderUseCase(
	repo order.Repository,
	jobs job.UseCase,
	stock warehouse.UseCase,
	notifier notify.Publisher,
	log logger.ZapLogger,
) order.UseCase {
	if notifier == nil {
		notifier = notify.NewNop()
	}
	return &orderUseCase{
		repo:     repo,
		resolver: conflict.NewResolver[model.PendingOrder](repo, model.EntityPendingOrder, log),
		jobs:     jobs,
		stock:    stock,
		notifier: notifier,
		validate: validator.New(),
		now:      time.Now,
		logger:   log,
	}
}

func (uc *orderUseCase) Push(ctx context.Context, input *dto.PushInput) ([]conflict.Outcome, error) {
	if input.UserID == "" {
		return nil, apperr.New(apperr.KindUnauthenticated, "", "missing user")
	}
	if len(input.Mutations) > maxPushBatch {
		return nil, apperr.Validation("too many mutations in one push")
	}

	outcomes := make([]conflict.Outcome, 0, len(input.Mutations))
	for i := range input.Mutations {
		outcomes = append(outcomes, uc.pushOne(ctx, input.UserID, &input.Mutations[i]))
	}
	return outcomes, nil
}

// pushOne never fails the batch: every problem becomes this item's outcome.
func (uc *orderUseCase) pushOne(ctx context.Context, userID string, m *dto.PushMutation) conflict.Outcome {
	mut, err := uc.toMutation(userID, m)
	if err != nil {
		uc.logger.Debug("rejected mutation", zap.String("order_id", m.ID), zap.Error(err))
		return conflict.Outcome{ID: m.ID, Action: conflict.ActionError, Reason: apperr.CodeInvalidRequest}
	}

	out, err := uc.resolver.Apply(ctx, userID, mut)
	if err != nil {
		uc.logger.Error("failed to apply mutation",
			zap.String("user_id", userID),
			zap.String("order_id", m.ID),
			zap.Error(err),
		)
		return conflict.Outcome{ID: m.ID, Action: conflict.ActionError, Reason: apperr.KindInternal.String()}
	}

	uc.publish(ctx, userID, out)
	return out
}

func (uc *orderUseCase) toMutation(userID string, m *dto.PushMutation) (conflict.Mutation[model.PendingOrder], error) {
	// The body is checked after the mutation's own fields are copied in.
	if err := uc.validate.StructExcept(m, "Order"); err != nil {
		return conflict.Mutation[model.PendingOrder]{}, err
	}

	mut := conflict.Mutation[model.PendingOrder]{
		Op:             conflict.Op(m.Op),
		DeviceID:       m.DeviceID,
		IdempotencyKey: m.IdempotencyKey,
	}

	if mut.Op == conflict.OpDelete {
		mut.Record = model.PendingOrder{ID: m.ID, UserID: userID, UpdatedAt: m.UpdatedAt}
		return mut, nil
	}

	if m.Order == nil {
		return mut, apperr.Validation("upsert without an order body")
	}
	rec := m.Order.Clone()
	rec.ID = m.ID
	rec.UserID = userID
	rec.UpdatedAt = m.UpdatedAt
	rec.DeviceID = m.DeviceID
	if rec.Status == "" {
		rec.Status = model.OrderStatusPending
	}
	if rec.CreatedAt == 0 {
		rec.CreatedAt = rec.UpdatedAt
	}
	if err := uc.validate.Struct(&rec); err != nil {
		return mut, err
	}
	mut.Record = rec
	return mut, nil
}

func (uc *orderUseCase) publish(ctx context.Context, userID string, out conflict.Outcome) {
	switch out.Action {
	case conflict.ActionCreated:
		uc.notifier.Publish(ctx, userID, notify.EventOrderCreated, out)
	case conflict.ActionUpdated:
		uc.notifier.Publish(ctx, userID, notify.EventOrderUpdated, out)
	case conflict.ActionDeleted:
		if out.SyncID != nil {
			uc.notifier.Publish(ctx, userID, notify.EventOrderDeleted, out)
		}
	}
}

func (uc *orderUseCase) GetOrder(ctx context.Context, p auth.Principal, id string) (*model.PendingOrder, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err, "find order")
	}
	if o == nil {
		return nil, apperr.NotFound("order")
	}
	if err := auth.Authorize(p, o.UserID); err != nil {
		return nil, err
	}
	return o, nil
}

func (uc *orderUseCase) Submit(ctx context.Context, p auth.Principal, input *dto.SubmitInput) (*dto.SubmitResult, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, apperr.Wrap(err, apperr.KindValidation, "", err.Error())
	}

	o, err := uc.GetOrder(ctx, p, input.OrderID)
	if err != nil {
		return nil, err
	}

	// Keyed on the order by default so double taps map to one live job.
	key := "submit:" + o.ID
	if input.IdempotencyKey != nil {
		key = *input.IdempotencyKey
	}

	// The order is queued before its job exists, so a worker never runs a
	// submission for an order that does not say so.
	prevStatus, prevError := o.Status, o.ErrorMessage
	out, err := uc.serverWrite(ctx, o.ID, conflict.OpUpsert, func(c *model.PendingOrder) {
		c.Status = model.OrderStatusQueued
		c.ErrorMessage = nil
	})
	if err != nil {
		return nil, err
	}

	enq, err := uc.jobs.Enqueue(ctx, &jobDTO.EnqueueInput{
		Type:           dto.SubmitJobType,
		UserID:         o.UserID,
		Data:           model.MustJSON(dto.SubmitJobData{OrderID: o.ID}),
		IdempotencyKey: &key,
	})
	if err != nil {
		uc.restoreStatus(ctx, o.UserID, o.ID, prevStatus, prevError)
		return nil, err
	}
	uc.publish(ctx, o.UserID, out)

	uc.logger.Info("order submitted",
		zap.String("order_id", o.ID),
		zap.String("job_id", enq.JobID),
		zap.Bool("job_created", enq.Created),
	)

	return &dto.SubmitResult{JobID: enq.JobID, Created: enq.Created, Order: out}, nil
}

// restoreStatus undoes the queued mark of a submission whose job could not be
// created. Failure leaves the order queued without a job and is logged.
func (uc *orderUseCase) restoreStatus(ctx context.Context, userID, id string, status model.OrderStatus, errMsg *string) {
	out, err := uc.serverWrite(ctx, id, conflict.OpUpsert, func(c *model.PendingOrder) {
		c.Status = status
		c.ErrorMessage = errMsg
	})
	if err != nil {
		uc.logger.Error("order left queued without a submission job",
			zap.String("order_id", id),
			zap.Error(err),
		)
		return
	}
	uc.publish(ctx, userID, out)
}

// serverWrite applies edit to the stored order as a server-originated write,
// retrying when a concurrent client write wins the version race.
func (uc *orderUseCase) serverWrite(ctx context.Context, id string, op conflict.Op, edit func(*model.PendingOrder)) (conflict.Outcome, error) {
	for attempt := 0; attempt < maxServerWriteAttempts; attempt++ {
		cur, err := uc.repo.FindByID(ctx, id)
		if err != nil {
			return conflict.Outcome{}, apperr.Internal(err, "find order")
		}
		if cur == nil {
			return conflict.Outcome{}, apperr.NotFound("order")
		}

		rec := cur.Clone()
		if edit != nil {
			edit(&rec)
		}
		rec.UpdatedAt = model.NextVersion(cur.UpdatedAt, uc.now().UnixMilli())
		rec.DeviceID = model.ServerDeviceID

		out, err := uc.resolver.Apply(ctx, cur.UserID, conflict.Mutation[model.PendingOrder]{
			Op:       op,
			Record:   rec,
			DeviceID: model.ServerDeviceID,
		})
		if err != nil {
			return conflict.Outcome{}, apperr.Internal(err, "write order")
		}
		if out.Action != conflict.ActionSkipped {
			return out, nil
		}
	}
	return conflict.Outcome{}, apperr.Conflict(apperr.CodeOrderBusy, "order is being modified concurrently")
}

func (uc *orderUseCase) OnCompleted(ctx context.Context, j *model.Job) error {
	var data dto.SubmitJobData
	if err := json.Unmarshal(j.Data, &data); err != nil {
		return apperr.Internal(err, "decode submit job data")
	}
	var result dto.SubmitJobResult
	if len(j.Result) > 0 {
		if err := json.Unmarshal(j.Result, &result); err != nil {
			uc.logger.Warn("unreadable submit job result", zap.String("job_id", j.ID), zap.Error(err))
		}
	}

	o, err := uc.repo.FindByID(ctx, data.OrderID)
	if err != nil {
		return apperr.Internal(err, "find order")
	}
	if o == nil {
		uc.logger.Warn("submitted order already gone", zap.String("order_id", data.OrderID), zap.String("job_id", j.ID))
		return nil
	}

	tracking := &model.Tracking{CustomerName: strPtr(o.CustomerName)}
	if o.SubClient != nil {
		tracking.SubClientName = strPtr(o.SubClient.Name)
	}
	tracking.OrderNumber = strPtr(result.OrderNumber)
	tracking.OrderDate = strPtr(result.OrderDate)

	sold, err := uc.stock.BatchMarkSold(ctx, &warehouseDTO.BatchMarkSoldInput{
		UserID:   o.UserID,
		OrderID:  o.ID,
		Tracking: tracking,
		DeviceID: model.ServerDeviceID,
	})
	if err != nil {
		return err
	}

	out, err := uc.serverWrite(ctx, o.ID, conflict.OpDelete, nil)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil
		}
		return err
	}
	uc.publish(ctx, o.UserID, out)

	uc.logger.Info("submitted order settled",
		zap.String("order_id", o.ID),
		zap.String("job_id", j.ID),
		zap.Int("items_sold", sold.Count),
	)
	return nil
}

func (uc *orderUseCase) OnFailed(ctx context.Context, j *model.Job) error {
	var data dto.SubmitJobData
	if err := json.Unmarshal(j.Data, &data); err != nil {
		return apperr.Internal(err, "decode submit job data")
	}

	reason := "submission failed"
	if j.FailedReason != nil && *j.FailedReason != "" {
		reason = *j.FailedReason
	}

	out, err := uc.serverWrite(ctx, data.OrderID, conflict.OpUpsert, func(c *model.PendingOrder) {
		c.Status = model.OrderStatusError
		c.ErrorMessage = &reason
		c.RetryCount++
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			uc.logger.Warn("failed submission for missing order", zap.String("order_id", data.OrderID))
			return nil
		}
		return err
	}

	uc.publish(ctx, j.UserID, out)
	return nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
