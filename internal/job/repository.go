package job

import (
	"context"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/job/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
)

type Repository interface {
	// Create inserts j unless a waiting or active job of the same user holds
	// the same idempotency key, in which case that job is returned and
	// created is false.
	Create(ctx context.Context, j *model.Job) (stored *model.Job, created bool, err error)
	FindByID(ctx context.Context, id string) (*model.Job, error)
	// ListWaiting returns claimable waiting jobs of the given types, oldest
	// first. A job of an exclusive type is left out while its agent runs an
	// exclusive job, and only the oldest waiting exclusive job of each agent
	// is returned.
	ListWaiting(ctx context.Context, types, exclusive []string, limit int) ([]model.Job, error)
	ListActive(ctx context.Context, userID string, types []string) ([]model.Job, error)
	// Transition applies t atomically and records a history row. It returns
	// nil when the job does not exist or is not in one of t.From.
	Transition(ctx context.Context, id string, t *dto.Transition) (*model.Job, error)
	// UpdateProgress returns nil when the job is not active.
	UpdateProgress(ctx context.Context, id string, progress int) (*model.Job, error)
	ListEvents(ctx context.Context, jobID string) ([]model.JobEvent, error)
}
