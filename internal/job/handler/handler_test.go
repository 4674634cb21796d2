package handler

import (
	"context"
	"testing"

	pb "github.com/H4tholdir/archibaldblackant-sub008/gen/go/archibald/v1"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/agentlock"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/auth"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/job/usecase"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/memstore"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/notify"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newHandler(t *testing.T) *JobHandler {
	t.Helper()
	store := memstore.New()
	t.Cleanup(func() { _ = store.Close() })
	uc := usecase.NewJobUseCase(store.Jobs(), agentlock.NewMemoryLocker(nil), notify.NewNop(),
		usecase.Options{ExclusiveTypes: []string{"submit-order"}}, logger.NewNop())
	return NewJobHandler(uc, logger.NewNop())
}

func as(user, role string) context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, user)
	return context.WithValue(ctx, middleware.RoleKey, role)
}

func TestJobLifecycleThroughHandler(t *testing.T) {
	h := newHandler(t)
	agent := as("u1", auth.RoleAgent)
	worker := as("bot-1", auth.RoleWorker)

	enq, err := h.Enqueue(agent, &pb.EnqueueRequest{Type: "submit-order", Data: `{"orderId":"o1"}`})
	require.NoError(t, err)

	_, err = h.Claim(agent, &pb.ClaimRequest{Types: []string{"submit-order"}})
	assert.Equal(t, codes.PermissionDenied, status.Code(err), "agents cannot act as workers")

	claimed, err := h.Claim(worker, &pb.ClaimRequest{Types: []string{"submit-order"}})
	require.NoError(t, err)
	require.NotNil(t, claimed.Job)
	assert.Equal(t, enq.JobId, claimed.Job.JobId)
	assert.JSONEq(t, `{"orderId":"o1"}`, claimed.Job.Data)

	_, err = h.Cancel(agent, &pb.JobRequest{JobId: enq.JobId})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "job_active")

	_, err = h.ReportProgress(worker, &pb.ReportProgressRequest{JobId: enq.JobId, Progress: 50})
	require.NoError(t, err)
	_, err = h.Complete(worker, &pb.CompleteRequest{JobId: enq.JobId, Result: `{"orderNumber":"ORD/1"}`})
	require.NoError(t, err)

	j, err := h.GetStatus(agent, &pb.JobRequest{JobId: enq.JobId})
	require.NoError(t, err)
	assert.Equal(t, string(model.JobCompleted), j.State)
	assert.Equal(t, int32(100), j.Progress)
	assert.JSONEq(t, `{"orderNumber":"ORD/1"}`, j.Result)
	assert.NotNil(t, j.FinishedAt)

	_, err = h.GetStatus(as("u2", auth.RoleAgent), &pb.JobRequest{JobId: enq.JobId})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = h.GetStatus(agent, &pb.JobRequest{JobId: "nope"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestEnqueueForAnotherUserNeedsAdmin(t *testing.T) {
	h := newHandler(t)

	_, err := h.Enqueue(as("u1", auth.RoleAgent), &pb.EnqueueRequest{Type: "sync-prices", UserId: "u2"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	res, err := h.Enqueue(as("ops", auth.RoleAdmin), &pb.EnqueueRequest{Type: "sync-prices", UserId: "u2"})
	require.NoError(t, err)
	j, err := h.GetStatus(as("u2", auth.RoleAgent), &pb.JobRequest{JobId: res.JobId})
	require.NoError(t, err)
	assert.Equal(t, "u2", j.UserId)
}

func TestReleaseAgentLockThroughHandler(t *testing.T) {
	h := newHandler(t)

	_, err := h.ReleaseAgentLock(as("u1", auth.RoleAgent), &pb.ReleaseAgentLockRequest{UserId: "u1"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	resp, err := h.ReleaseAgentLock(as("ops", auth.RoleAdmin), &pb.ReleaseAgentLockRequest{UserId: "u1"})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	_, err = h.ReleaseAgentLock(as("ops", auth.RoleAdmin), &pb.ReleaseAgentLockRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestJSONFieldsMustBeValid(t *testing.T) {
	h := newHandler(t)
	agent := as("u1", auth.RoleAgent)

	_, err := h.Enqueue(agent, &pb.EnqueueRequest{Type: "submit-order", Data: "{orderId"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	enq, err := h.Enqueue(agent, &pb.EnqueueRequest{Type: "sync-prices"})
	require.NoError(t, err)
	_, err = h.Claim(as("bot-1", auth.RoleWorker), &pb.ClaimRequest{Types: []string{"sync-prices"}})
	require.NoError(t, err)

	_, err = h.Complete(as("bot-1", auth.RoleWorker), &pb.CompleteRequest{JobId: enq.JobId, Result: "not json"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
