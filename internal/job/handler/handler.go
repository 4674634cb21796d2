package handler

import (
	"context"

	pb "github.com/H4tholdir/archibaldblackant-sub008/gen/go/archibald/v1"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/auth"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/job"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/job/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"go.uber.org/zap"
)

var _ pb.JobServiceServer = (*JobHandler)(nil)

type JobHandler struct {
	pb.UnimplementedJobServiceServer
	uc     job.UseCase
	logger logger.ZapLogger
}

func NewJobHandler(uc job.UseCase, log logger.ZapLogger) *JobHandler {
	return &JobHandler{
		uc:     uc,
		logger: log,
	}
}

func success() *pb.SuccessResponse { return &pb.SuccessResponse{Success: true} }

func (h *JobHandler) Enqueue(ctx context.Context, req *pb.EnqueueRequest) (*pb.EnqueueResponse, error) {
	p, err := auth.FromContext(ctx)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	userID, err := auth.Subject(p, req.UserId)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	data, err := jsonFromProto("data", req.Data)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	res, err := h.uc.Enqueue(ctx, &dto.EnqueueInput{
		Type:           req.Type,
		UserID:         userID,
		Data:           data,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	return &pb.EnqueueResponse{JobId: res.JobID, Created: res.Created}, nil
}

func (h *JobHandler) GetStatus(ctx context.Context, req *pb.JobRequest) (*pb.Job, error) {
	p, err := auth.FromContext(ctx)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	j, err := h.uc.GetStatus(ctx, p, req.JobId)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	return jobToProto(j), nil
}

func (h *JobHandler) Retry(ctx context.Context, req *pb.JobRequest) (*pb.SuccessResponse, error) {
	p, err := auth.FromContext(ctx)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	if err := h.uc.Retry(ctx, p, req.JobId); err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	return success(), nil
}

func (h *JobHandler) Cancel(ctx context.Context, req *pb.JobRequest) (*pb.SuccessResponse, error) {
	p, err := auth.FromContext(ctx)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	if err := h.uc.Cancel(ctx, p, req.JobId); err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	return success(), nil
}

func (h *JobHandler) History(ctx context.Context, req *pb.JobRequest) (*pb.HistoryResponse, error) {
	p, err := auth.FromContext(ctx)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	events, err := h.uc.History(ctx, p, req.JobId)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	out := make([]*pb.JobEvent, len(events))
	for i := range events {
		out[i] = eventToProto(&events[i])
	}
	return &pb.HistoryResponse{Events: out}, nil
}

// worker admits automation workers (and admins) to the worker-side calls.
func worker(ctx context.Context) (auth.Principal, error) {
	p, err := auth.FromContext(ctx)
	if err != nil {
		return p, err
	}
	return p, auth.RequireRole(p, auth.RoleWorker)
}

func (h *JobHandler) Claim(ctx context.Context, req *pb.ClaimRequest) (*pb.ClaimResponse, error) {
	p, err := worker(ctx)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}

	j, err := h.uc.Claim(ctx, &dto.ClaimInput{Types: req.Types})
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	if j != nil {
		h.logger.Debug("job handed to worker", zap.String("job_id", j.ID), zap.String("worker", p.UserID))
	}
	return &pb.ClaimResponse{Job: jobToProto(j)}, nil
}

func (h *JobHandler) ReportProgress(ctx context.Context, req *pb.ReportProgressRequest) (*pb.SuccessResponse, error) {
	if _, err := worker(ctx); err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	if err := h.uc.ReportProgress(ctx, req.JobId, int(req.Progress)); err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	return success(), nil
}

func (h *JobHandler) Complete(ctx context.Context, req *pb.CompleteRequest) (*pb.SuccessResponse, error) {
	if _, err := worker(ctx); err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	result, err := jsonFromProto("result", req.Result)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	if err := h.uc.Complete(ctx, req.JobId, result); err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	return success(), nil
}

func (h *JobHandler) Fail(ctx context.Context, req *pb.FailRequest) (*pb.SuccessResponse, error) {
	if _, err := worker(ctx); err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	if err := h.uc.Fail(ctx, req.JobId, req.Reason); err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	return success(), nil
}

func (h *JobHandler) ReleaseAgentLock(ctx context.Context, req *pb.ReleaseAgentLockRequest) (*pb.SuccessResponse, error) {
	p, err := auth.FromContext(ctx)
	if err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	if err := h.uc.ReleaseAgentLock(ctx, p, req.UserId); err != nil {
		return nil, apperr.ToStatus(ctx, err)
	}
	return success(), nil
}
