package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/agentlock"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/auth"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/job"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/job/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/memstore"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/notify"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const submitType = "submit-order"

var (
	agent1 = auth.Principal{UserID: "agent-1", Role: auth.RoleAgent}
	agent2 = auth.Principal{UserID: "agent-2", Role: auth.RoleAgent}
	admin  = auth.Principal{UserID: "ops", Role: auth.RoleAdmin}
)

func newUseCase(t *testing.T) (job.UseCase, agentlock.Locker) {
	t.Helper()
	store := memstore.New()
	t.Cleanup(func() { _ = store.Close() })
	locker := agentlock.NewMemoryLocker(nil)
	uc := NewJobUseCase(store.Jobs(), locker, notify.NewRecorder(), Options{
		ExclusiveTypes: []string{submitType},
		LockTTL:        time.Minute,
	}, logger.NewNop())
	return uc, locker
}

func enqueue(t *testing.T, uc job.UseCase, user, jobType string, key string) string {
	t.Helper()
	in := &dto.EnqueueInput{Type: jobType, UserID: user, Data: model.JSONB(`{"orderId":"o1"}`)}
	if key != "" {
		in.IdempotencyKey = &key
	}
	res, err := uc.Enqueue(context.Background(), in)
	require.NoError(t, err)
	return res.JobID
}

func claim(t *testing.T, uc job.UseCase) *model.Job {
	t.Helper()
	j, err := uc.Claim(context.Background(), &dto.ClaimInput{Types: []string{submitType, "sync-prices"}})
	require.NoError(t, err)
	return j
}

func TestConcurrentEnqueueSameKey(t *testing.T) {
	uc, _ := newUseCase(t)
	key := "k1"

	ids := make([]string, 20)
	created := make([]bool, 20)
	var wg sync.WaitGroup
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := uc.Enqueue(context.Background(), &dto.EnqueueInput{Type: submitType, UserID: "agent-1", IdempotencyKey: &key})
			assert.NoError(t, err)
			ids[i], created[i] = res.JobID, res.Created
		}(i)
	}
	wg.Wait()

	n := 0
	for i := range ids {
		assert.Equal(t, ids[0], ids[i])
		if created[i] {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

func TestKeyIsFreeAgainOnceJobIsTerminal(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)

	first := enqueue(t, uc, "agent-1", submitType, "k1")
	require.NoError(t, uc.Cancel(ctx, agent1, first))

	second := enqueue(t, uc, "agent-1", submitType, "k1")
	assert.NotEqual(t, first, second)

	other := enqueue(t, uc, "agent-2", submitType, "k1")
	assert.NotEqual(t, second, other, "keys are scoped per user")
}

func TestCancelRules(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)

	waiting := enqueue(t, uc, "agent-1", submitType, "")
	active := enqueue(t, uc, "agent-2", submitType, "")
	require.NotNil(t, claim(t, uc))
	require.NotNil(t, claim(t, uc))

	err := uc.Cancel(ctx, agent2, active)
	assert.Equal(t, apperr.CodeJobActive, apperr.CodeOf(err))

	fresh := enqueue(t, uc, "agent-1", "sync-prices", "")
	require.NoError(t, uc.Cancel(ctx, agent1, fresh))
	j, err := uc.GetStatus(ctx, agent1, fresh)
	require.NoError(t, err)
	assert.Equal(t, model.JobCancelled, j.State)

	err = uc.Cancel(ctx, agent1, fresh)
	assert.Equal(t, apperr.CodeJobTerminal, apperr.CodeOf(err))

	err = uc.Cancel(ctx, agent1, "missing")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// waiting was claimed above, so it is active now.
	err = uc.Cancel(ctx, agent1, waiting)
	assert.Equal(t, apperr.CodeJobActive, apperr.CodeOf(err))
}

func TestRetryKeepsIDAndHistory(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)

	id := enqueue(t, uc, "agent-1", submitType, "")
	err := uc.Retry(ctx, agent1, id)
	assert.Equal(t, apperr.CodeJobNotFailed, apperr.CodeOf(err))

	require.Equal(t, id, claim(t, uc).ID)
	require.NoError(t, uc.Fail(ctx, id, "erp timeout"))

	require.NoError(t, uc.Retry(ctx, agent1, id))
	j, err := uc.GetStatus(ctx, agent1, id)
	require.NoError(t, err)
	assert.Equal(t, model.JobWaiting, j.State)
	assert.Nil(t, j.FailedReason)
	assert.Equal(t, 1, j.Attempts)

	require.Equal(t, id, claim(t, uc).ID)
	j, _ = uc.GetStatus(ctx, agent1, id)
	assert.Equal(t, 2, j.Attempts)

	events, err := uc.History(ctx, agent1, id)
	require.NoError(t, err)
	states := make([]model.JobState, len(events))
	for i, e := range events {
		states[i] = e.ToState
	}
	assert.Equal(t, []model.JobState{
		model.JobWaiting, model.JobActive, model.JobFailed, model.JobWaiting, model.JobActive,
	}, states)
}

func TestRetryBlockedByLiveDuplicate(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)

	id := enqueue(t, uc, "agent-1", submitType, "k1")
	require.Equal(t, id, claim(t, uc).ID)
	require.NoError(t, uc.Fail(ctx, id, "boom"))

	enqueue(t, uc, "agent-1", submitType, "k1")

	err := uc.Retry(ctx, agent1, id)
	assert.Equal(t, apperr.CodeDuplicateJob, apperr.CodeOf(err))
}

func TestOwnershipIsChecked(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)
	id := enqueue(t, uc, "agent-1", submitType, "")

	_, err := uc.GetStatus(ctx, agent2, id)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(uc.Cancel(ctx, agent2, id)))
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(uc.Retry(ctx, agent2, id)))
	_, err = uc.History(ctx, agent2, id)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = uc.GetStatus(ctx, admin, id)
	assert.NoError(t, err)
}

func TestExclusiveJobsWaitForTheAgent(t *testing.T) {
	ctx := context.Background()
	uc, locker := newUseCase(t)

	first := enqueue(t, uc, "agent-1", submitType, "")
	second := enqueue(t, uc, "agent-1", submitType, "")
	other := enqueue(t, uc, "agent-2", submitType, "")

	assert.Equal(t, first, claim(t, uc).ID)
	assert.Equal(t, other, claim(t, uc).ID, "a busy agent does not block others")
	assert.Nil(t, claim(t, uc), "second job for agent-1 keeps waiting")

	h, err := locker.Holder(ctx, "agent-1")
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, first, h.JobID)

	require.NoError(t, uc.Complete(ctx, first, model.JSONB(`{"orderNumber":"ORD/1"}`)))
	assert.Equal(t, second, claim(t, uc).ID)
}

func TestNonExclusiveJobsRunConcurrently(t *testing.T) {
	uc, _ := newUseCase(t)
	enqueue(t, uc, "agent-1", "sync-prices", "")
	enqueue(t, uc, "agent-1", "sync-prices", "")

	assert.NotNil(t, claim(t, uc))
	assert.NotNil(t, claim(t, uc))
}

func TestConcurrentClaimsNeverDoubleBookAnAgent(t *testing.T) {
	uc, _ := newUseCase(t)
	for i := 0; i < 10; i++ {
		enqueue(t, uc, "agent-1", submitType, "")
	}

	var (
		mu      sync.Mutex
		claimed []string
		wg      sync.WaitGroup
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			j, err := uc.Claim(context.Background(), &dto.ClaimInput{Types: []string{submitType}})
			assert.NoError(t, err)
			if j != nil {
				mu.Lock()
				claimed = append(claimed, j.ID)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, claimed, 1)
}

type recordingHook struct {
	mu        sync.Mutex
	completed []string
	failed    []string
}

func (h *recordingHook) OnCompleted(ctx context.Context, j *model.Job) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completed = append(h.completed, j.ID)
	return nil
}

func (h *recordingHook) OnFailed(ctx context.Context, j *model.Job) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failed = append(h.failed, j.ID)
	return nil
}

func TestHooksRunOnFinish(t *testing.T) {
	ctx := context.Background()
	uc, locker := newUseCase(t)
	hook := &recordingHook{}
	uc.RegisterHook(submitType, hook)

	ok := enqueue(t, uc, "agent-1", submitType, "")
	require.Equal(t, ok, claim(t, uc).ID)
	require.NoError(t, uc.ReportProgress(ctx, ok, 40))
	require.NoError(t, uc.Complete(ctx, ok, nil))

	bad := enqueue(t, uc, "agent-1", submitType, "")
	require.Equal(t, bad, claim(t, uc).ID)
	require.NoError(t, uc.Fail(ctx, bad, "customer blocked"))

	assert.Equal(t, []string{ok}, hook.completed)
	assert.Equal(t, []string{bad}, hook.failed)

	h, _ := locker.Holder(ctx, "agent-1")
	assert.Nil(t, h, "finishing releases the agent")

	j, _ := uc.GetStatus(ctx, agent1, ok)
	assert.Equal(t, 100, j.Progress)
	j, _ = uc.GetStatus(ctx, agent1, bad)
	assert.Equal(t, "customer blocked", *j.FailedReason)
}

func TestWorkerReportsNeedAnActiveJob(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)
	id := enqueue(t, uc, "agent-1", submitType, "")

	assert.Equal(t, apperr.CodeJobNotActive, apperr.CodeOf(uc.ReportProgress(ctx, id, 10)))
	assert.Equal(t, apperr.CodeJobNotActive, apperr.CodeOf(uc.Complete(ctx, id, nil)))
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(uc.ReportProgress(ctx, id, 101)))
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(uc.Fail(ctx, "missing", "x")))

	require.Equal(t, id, claim(t, uc).ID)
	require.NoError(t, uc.Complete(ctx, id, nil))
	assert.Equal(t, apperr.CodeJobTerminal, apperr.CodeOf(uc.Complete(ctx, id, nil)))
}

func TestReleaseAgentLock(t *testing.T) {
	ctx := context.Background()
	uc, locker := newUseCase(t)

	stuck := enqueue(t, uc, "agent-1", submitType, "")
	next := enqueue(t, uc, "agent-1", submitType, "")
	require.Equal(t, stuck, claim(t, uc).ID)

	err := uc.ReleaseAgentLock(ctx, agent1, "agent-1")
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	require.NoError(t, uc.ReleaseAgentLock(ctx, admin, "agent-1"))

	j, err := uc.GetStatus(ctx, admin, stuck)
	require.NoError(t, err)
	assert.Equal(t, model.JobFailed, j.State)
	h, _ := locker.Holder(ctx, "agent-1")
	assert.Nil(t, h)

	assert.Equal(t, next, claim(t, uc).ID)
}

func TestReleaseAgentLockFailsJobWithLapsedLock(t *testing.T) {
	ctx := context.Background()
	uc, locker := newUseCase(t)

	stuck := enqueue(t, uc, "agent-1", submitType, "")
	next := enqueue(t, uc, "agent-1", submitType, "")
	require.Equal(t, stuck, claim(t, uc).ID)

	// Simulate TTL expiry of the holder.
	require.NoError(t, locker.ForceRelease(ctx, "agent-1"))
	assert.Nil(t, claim(t, uc), "an active job still owns the agent")

	require.NoError(t, uc.ReleaseAgentLock(ctx, admin, "agent-1"))
	assert.Equal(t, next, claim(t, uc).ID)
}

func TestBusyAgentBacklogDoesNotStarveOthers(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	var backlog []string
	for i := 0; i < 60; i++ {
		backlog = append(backlog, enqueue(t, uc, "agent-1", submitType, ""))
	}
	first := claim(t, uc)
	require.NotNil(t, first)
	assert.Equal(t, backlog[0], first.ID)

	other := enqueue(t, uc, "agent-2", submitType, "")
	next := claim(t, uc)
	require.NotNil(t, next, "agent-2 is free and must be served")
	assert.Equal(t, other, next.ID)

	assert.Nil(t, claim(t, uc))

	require.NoError(t, uc.Complete(ctx, first.ID, nil))
	next = claim(t, uc)
	require.NotNil(t, next)
	assert.Equal(t, backlog[1], next.ID)
}
