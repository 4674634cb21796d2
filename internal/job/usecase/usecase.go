package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/agentlock"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/auth"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/job"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/job/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/notify"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Options struct {
	// ExclusiveTypes run at most one at a time per agent.
	ExclusiveTypes []string
	LockTTL        time.Duration
	// ClaimScan bounds how many waiting jobs one Claim call inspects.
	ClaimScan int
	Now       func() time.Time
}

type jobUseCase struct {
	repo      job.Repository
	locker    agentlock.Locker
	notifier  notify.Publisher
	validate  *validator.Validate
	exclusive map[string]bool
	exTypes   []string
	lockTTL   time.Duration
	claimScan int
	now       func() time.Time
	logger    logger.ZapLogger

	mu    sync.RWMutex
	hooks map[string]job.Hook
}

func NewJobUseCase(repo job.Repository, locker agentlock.Locker, notifier notify.Publisher, opts Options, log logger.ZapLogger) job.UseCase {
	if opts.LockTTL <= 0 {
		opts.LockTTL = 5 * time.Minute
	}
	if opts.ClaimScan <= 0 {
		opts.ClaimScan = 50
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if notifier == nil {
		notifier = notify.NewNop()
	}

	exclusive := make(map[string]bool, len(opts.ExclusiveTypes))
	for _, t := range opts.ExclusiveTypes {
		exclusive[t] = true
	}

	return &jobUseCase{
		repo:      repo,
		locker:    locker,
		notifier:  notifier,
		validate:  validator.New(),
		exclusive: exclusive,
		exTypes:   opts.ExclusiveTypes,
		lockTTL:   opts.LockTTL,
		claimScan: opts.ClaimScan,
		now:       opts.Now,
		logger:    log,
		hooks:     map[string]job.Hook{},
	}
}

func (uc *jobUseCase) RegisterHook(jobType string, h job.Hook) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.hooks[jobType] = h
}

func (uc *jobUseCase) hook(jobType string) job.Hook {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.hooks[jobType]
}

func (uc *jobUseCase) Enqueue(ctx context.Context, input *dto.EnqueueInput) (*dto.EnqueueResult, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, apperr.Wrap(err, apperr.KindValidation, "", err.Error())
	}

	now := uc.now().UTC()
	j := &model.Job{
		ID:             uuid.New().String(),
		Type:           input.Type,
		UserID:         input.UserID,
		Data:           input.Data,
		IdempotencyKey: input.IdempotencyKey,
		State:          model.JobWaiting,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	stored, created, err := uc.repo.Create(ctx, j)
	if err != nil {
		return nil, apperr.Ensure(err, "create job")
	}

	if created {
		uc.logger.Info("job enqueued",
			zap.String("job_id", stored.ID),
			zap.String("type", stored.Type),
			zap.String("user_id", stored.UserID),
		)
		uc.changed(ctx, stored)
	}
	return &dto.EnqueueResult{JobID: stored.ID, Created: created}, nil
}

func (uc *jobUseCase) changed(ctx context.Context, j *model.Job) {
	uc.notifier.Publish(ctx, j.UserID, notify.EventJobChanged, map[string]interface{}{
		"jobId":    j.ID,
		"type":     j.Type,
		"state":    j.State,
		"progress": j.Progress,
	})
}

func (uc *jobUseCase) load(ctx context.Context, p auth.Principal, jobID string) (*model.Job, error) {
	j, err := uc.repo.FindByID(ctx, jobID)
	if err != nil {
		return nil, apperr.Internal(err, "find job")
	}
	if j == nil {
		return nil, apperr.NotFound("job")
	}
	if err := auth.Authorize(p, j.UserID); err != nil {
		return nil, err
	}
	return j, nil
}

func (uc *jobUseCase) GetStatus(ctx context.Context, p auth.Principal, jobID string) (*model.Job, error) {
	return uc.load(ctx, p, jobID)
}

func (uc *jobUseCase) History(ctx context.Context, p auth.Principal, jobID string) ([]model.JobEvent, error) {
	if _, err := uc.load(ctx, p, jobID); err != nil {
		return nil, err
	}
	events, err := uc.repo.ListEvents(ctx, jobID)
	if err != nil {
		return nil, apperr.Internal(err, "list job events")
	}
	return events, nil
}

// transition applies t and explains a refusal from the job's current state.
func (uc *jobUseCase) transition(ctx context.Context, jobID string, t *dto.Transition) (*model.Job, error) {
	updated, err := uc.repo.Transition(ctx, jobID, t)
	if err != nil {
		return nil, apperr.Ensure(err, "transition job")
	}
	if updated != nil {
		uc.changed(ctx, updated)
		return updated, nil
	}

	cur, err := uc.repo.FindByID(ctx, jobID)
	if err != nil {
		return nil, apperr.Internal(err, "find job")
	}
	if cur == nil {
		return nil, apperr.NotFound("job")
	}
	switch {
	case t.To == model.JobCancelled && cur.State == model.JobActive:
		return nil, apperr.Conflict(apperr.CodeJobActive, "job "+jobID+" is running")
	case t.To == model.JobWaiting:
		return nil, apperr.Conflict(apperr.CodeJobNotFailed, "job "+jobID+" is "+string(cur.State))
	case cur.State.IsTerminal():
		return nil, apperr.Conflict(apperr.CodeJobTerminal, "job "+jobID+" is "+string(cur.State))
	default:
		return nil, apperr.Conflict(apperr.CodeJobNotActive, "job "+jobID+" is "+string(cur.State))
	}
}

func (uc *jobUseCase) Cancel(ctx context.Context, p auth.Principal, jobID string) error {
	if _, err := uc.load(ctx, p, jobID); err != nil {
		return err
	}
	_, err := uc.transition(ctx, jobID, &dto.Transition{
		From: []model.JobState{model.JobWaiting},
		To:   model.JobCancelled,
		Note: "cancelled by " + p.UserID,
	})
	return err
}

func (uc *jobUseCase) Retry(ctx context.Context, p auth.Principal, jobID string) error {
	if _, err := uc.load(ctx, p, jobID); err != nil {
		return err
	}
	_, err := uc.transition(ctx, jobID, &dto.Transition{
		From: []model.JobState{model.JobFailed},
		To:   model.JobWaiting,
		Note: "retried by " + p.UserID,
	})
	return err
}

func (uc *jobUseCase) Claim(ctx context.Context, input *dto.ClaimInput) (*model.Job, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, apperr.Wrap(err, apperr.KindValidation, "", err.Error())
	}

	waiting, err := uc.repo.ListWaiting(ctx, input.Types, uc.exTypes, uc.claimScan)
	if err != nil {
		return nil, apperr.Internal(err, "list waiting jobs")
	}

	for i := range waiting {
		j, err := uc.tryClaim(ctx, &waiting[i])
		if err != nil {
			return nil, err
		}
		if j != nil {
			return j, nil
		}
	}
	return nil, nil
}

// tryClaim activates candidate if its agent is free. A nil job means it must
// keep waiting.
func (uc *jobUseCase) tryClaim(ctx context.Context, candidate *model.Job) (*model.Job, error) {
	exclusive := uc.exclusive[candidate.Type]
	if exclusive {
		// An active job whose lock lapsed still owns the agent.
		active, err := uc.repo.ListActive(ctx, candidate.UserID, uc.exTypes)
		if err != nil {
			return nil, apperr.Internal(err, "list active jobs")
		}
		if len(active) > 0 {
			return nil, nil
		}
		ok, err := uc.locker.Acquire(ctx, candidate.UserID, candidate.ID, candidate.Type, uc.lockTTL)
		if err != nil {
			return nil, apperr.Internal(err, "acquire agent lock")
		}
		if !ok {
			return nil, nil
		}
	}

	updated, err := uc.repo.Transition(ctx, candidate.ID, &dto.Transition{
		From: []model.JobState{model.JobWaiting},
		To:   model.JobActive,
		Note: "claimed",
	})
	if err != nil || updated == nil {
		if exclusive {
			if rerr := uc.locker.Release(ctx, candidate.UserID, candidate.ID); rerr != nil {
				uc.logger.Warn("failed to release agent lock", zap.String("job_id", candidate.ID), zap.Error(rerr))
			}
		}
		if err != nil {
			return nil, apperr.Internal(err, "activate job")
		}
		// Cancelled or claimed elsewhere in the meantime.
		return nil, nil
	}

	uc.logger.Info("job claimed",
		zap.String("job_id", updated.ID),
		zap.String("type", updated.Type),
		zap.String("user_id", updated.UserID),
		zap.Int("attempt", updated.Attempts),
	)
	uc.changed(ctx, updated)
	return updated, nil
}

func (uc *jobUseCase) ReportProgress(ctx context.Context, jobID string, progress int) error {
	if progress < 0 || progress > 100 {
		return apperr.Validation("progress must be between 0 and 100")
	}

	updated, err := uc.repo.UpdateProgress(ctx, jobID, progress)
	if err != nil {
		return apperr.Internal(err, "update progress")
	}
	if updated == nil {
		cur, err := uc.repo.FindByID(ctx, jobID)
		if err != nil {
			return apperr.Internal(err, "find job")
		}
		if cur == nil {
			return apperr.NotFound("job")
		}
		return apperr.Conflict(apperr.CodeJobNotActive, "job "+jobID+" is "+string(cur.State))
	}

	if uc.exclusive[updated.Type] {
		uc.keepLock(ctx, updated)
	}
	uc.changed(ctx, updated)
	return nil
}

// keepLock extends the holder's TTL, taking the lock back if it lapsed.
func (uc *jobUseCase) keepLock(ctx context.Context, j *model.Job) {
	ok, err := uc.locker.Refresh(ctx, j.UserID, j.ID, uc.lockTTL)
	if err == nil && !ok {
		ok, err = uc.locker.Acquire(ctx, j.UserID, j.ID, j.Type, uc.lockTTL)
	}
	if err != nil || !ok {
		uc.logger.Warn("running job does not hold its agent lock",
			zap.String("job_id", j.ID),
			zap.String("user_id", j.UserID),
			zap.Error(err),
		)
	}
}

func (uc *jobUseCase) Complete(ctx context.Context, jobID string, result model.JSONB) error {
	j, err := uc.transition(ctx, jobID, &dto.Transition{
		From:   []model.JobState{model.JobActive},
		To:     model.JobCompleted,
		Note:   "completed",
		Result: result,
	})
	if err != nil {
		return err
	}
	uc.finish(ctx, j)
	return nil
}

func (uc *jobUseCase) Fail(ctx context.Context, jobID string, reason string) error {
	j, err := uc.transition(ctx, jobID, &dto.Transition{
		From:         []model.JobState{model.JobActive},
		To:           model.JobFailed,
		Note:         "failed",
		FailedReason: &reason,
	})
	if err != nil {
		return err
	}
	uc.finish(ctx, j)
	return nil
}

// finish frees the agent and runs the type's hook. Hook errors are logged:
// the job outcome is already committed.
func (uc *jobUseCase) finish(ctx context.Context, j *model.Job) {
	if uc.exclusive[j.Type] {
		if err := uc.locker.Release(ctx, j.UserID, j.ID); err != nil {
			uc.logger.Warn("failed to release agent lock", zap.String("job_id", j.ID), zap.Error(err))
		}
	}

	h := uc.hook(j.Type)
	if h == nil {
		return
	}
	var err error
	if j.State == model.JobCompleted {
		err = h.OnCompleted(ctx, j)
	} else {
		err = h.OnFailed(ctx, j)
	}
	if err != nil {
		uc.logger.Error("job hook failed",
			zap.String("job_id", j.ID),
			zap.String("type", j.Type),
			zap.String("state", string(j.State)),
			zap.Error(err),
		)
	}
}

func (uc *jobUseCase) ReleaseAgentLock(ctx context.Context, p auth.Principal, userID string) error {
	if userID == "" {
		return apperr.Validation("user id is required")
	}
	if err := auth.RequireRole(p, auth.RoleAdmin); err != nil {
		return err
	}

	// Fail whatever occupies the agent: the lock holder, and any active
	// exclusive job whose lock already lapsed.
	victims := map[string]bool{}
	h, err := uc.locker.Holder(ctx, userID)
	if err != nil {
		return apperr.Internal(err, "read agent lock")
	}
	if h != nil {
		victims[h.JobID] = true
	}
	active, err := uc.repo.ListActive(ctx, userID, uc.exTypes)
	if err != nil {
		return apperr.Internal(err, "list active jobs")
	}
	for _, j := range active {
		victims[j.ID] = true
	}

	for id := range victims {
		err := uc.Fail(ctx, id, "agent lock released by "+p.UserID)
		if err != nil && apperr.KindOf(err) != apperr.KindConflict && apperr.KindOf(err) != apperr.KindNotFound {
			return err
		}
	}

	if err := uc.locker.ForceRelease(ctx, userID); err != nil {
		return apperr.Internal(err, "release agent lock")
	}
	uc.logger.Warn("agent lock force released",
		zap.String("user_id", userID),
		zap.String("by", p.UserID),
	)
	return nil
}
