package usecase

import (
	"context"
	"time"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/changelog"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/changelog/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Options struct {
	PageSize  int
	Retention time.Duration
	Now       func() time.Time
}

type changeLogUseCase struct {
	repo      changelog.Repository
	validate  *validator.Validate
	pageSize  int
	retention time.Duration
	now       func() time.Time
	logger    logger.ZapLogger
}

func NewChangeLogUseCase(repo changelog.Repository, opts Options, log logger.ZapLogger) changelog.UseCase {
	if opts.PageSize <= 0 {
		opts.PageSize = 500
	}
	if opts.Retention <= 0 {
		opts.Retention = 7 * 24 * time.Hour
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &changeLogUseCase{
		repo:      repo,
		validate:  validator.New(),
		pageSize:  opts.PageSize,
		retention: opts.Retention,
		now:       opts.Now,
		logger:    log,
	}
}

func (uc *changeLogUseCase) Pull(ctx context.Context, input *dto.PullInput) (*dto.PullResult, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, apperr.Wrap(err, apperr.KindValidation, "", err.Error())
	}

	if input.LastSyncID == nil {
		return &dto.PullResult{Resync: true}, nil
	}
	last := *input.LastSyncID

	counter, err := uc.repo.Counter(ctx, input.UserID)
	if err != nil {
		return nil, apperr.Internal(err, "read sync counter")
	}

	// A checkpoint the log can no longer continue from: entries after it were
	// purged, or it was never issued by this server.
	if last < counter.PurgedThrough || last > counter.LastSyncID {
		uc.logger.Info("checkpoint not continuable, client must resync",
			zap.String("user_id", input.UserID),
			zap.Int64("last_sync_id", last),
			zap.Int64("purged_through", counter.PurgedThrough),
			zap.Int64("server_sync_id", counter.LastSyncID),
		)
		return &dto.PullResult{Resync: true}, nil
	}

	entries, err := uc.repo.ListSince(ctx, input.UserID, last, uc.pageSize+1)
	if err != nil {
		return nil, apperr.Internal(err, "list change log")
	}

	// The log is gapless per user, so a hole after the checkpoint means a
	// purge committed between the counter read and this page.
	if (len(entries) > 0 && entries[0].SyncID != last+1) || (len(entries) == 0 && last < counter.LastSyncID) {
		uc.logger.Info("entries after checkpoint purged during pull, client must resync",
			zap.String("user_id", input.UserID),
			zap.Int64("last_sync_id", last),
		)
		return &dto.PullResult{Resync: true}, nil
	}

	hasMore := len(entries) > uc.pageSize
	if hasMore {
		entries = entries[:uc.pageSize]
	}

	newLast := last
	if len(entries) > 0 {
		newLast = entries[len(entries)-1].SyncID
	}

	return &dto.PullResult{
		Entries:    entries,
		LastSyncID: newLast,
		HasMore:    hasMore,
	}, nil
}

func (uc *changeLogUseCase) FullState(ctx context.Context, userID string) (*model.FullState, error) {
	if userID == "" {
		return nil, apperr.Validation("user id is required")
	}
	state, err := uc.repo.Snapshot(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err, "read full state")
	}
	return state, nil
}

func (uc *changeLogUseCase) Sweep(ctx context.Context) (*dto.PurgeResult, error) {
	cutoff := uc.now().Add(-uc.retention)
	res, err := uc.repo.Purge(ctx, cutoff)
	if err != nil {
		return nil, apperr.Internal(err, "purge change log")
	}
	uc.logger.Info("retention sweep finished",
		zap.Time("cutoff", cutoff),
		zap.Int64("entries", res.Entries),
		zap.Int64("idempotency_keys", res.IdempotencyKeys),
	)
	return res, nil
}
