package changelog

import (
	"context"
	"time"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/changelog/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
)

type Repository interface {
	// Counter returns the user's sequence state; a user with no writes yet
	// gets a zero counter, never nil.
	Counter(ctx context.Context, userID string) (*model.SyncCounter, error)
	// ListSince returns at most limit entries with syncId > after, ascending.
	ListSince(ctx context.Context, userID string, after int64, limit int) ([]model.ChangeLogEntry, error)
	// Snapshot reads orders, items and the current syncId in one consistent view.
	Snapshot(ctx context.Context, userID string) (*model.FullState, error)
	// Purge drops entries and idempotency outcomes created before cutoff.
	Purge(ctx context.Context, cutoff time.Time) (*dto.PurgeResult, error)
}
