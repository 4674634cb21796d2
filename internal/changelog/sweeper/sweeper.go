package sweeper

import (
	"context"
	"time"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/changelog"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/cache"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const lockKey = "lock:changelog:sweep"

// Sweeper runs the retention purge periodically. With a Redis client only one
// replica sweeps per tick.
type Sweeper struct {
	uc       changelog.UseCase
	cache    *cache.RedisClient
	interval time.Duration
	logger   logger.ZapLogger
}

func NewSweeper(uc changelog.UseCase, cache *cache.RedisClient, interval time.Duration, log logger.ZapLogger) *Sweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Sweeper{
		uc:       uc,
		cache:    cache,
		interval: interval,
		logger:   log,
	}
}

func (s *Sweeper) Start(ctx context.Context) error {
	s.logger.Info("Starting change log sweeper", zap.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Stopping change log sweeper")
			return nil
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Sweeper) runOnce(ctx context.Context) {
	if s.cache != nil {
		lockValue := uuid.New().String()
		ok, err := s.cache.AcquireLock(ctx, lockKey, lockValue, s.interval/2)
		if err != nil {
			s.logger.Error("failed to acquire sweep lock", zap.Error(err))
			return
		}
		if !ok {
			s.logger.Debug("another replica is sweeping")
			return
		}
		defer s.cache.ReleaseLock(context.Background(), lockKey, lockValue)
	}

	if _, err := s.uc.Sweep(ctx); err != nil {
		s.logger.Error("retention sweep failed", zap.Error(err))
	}
}
