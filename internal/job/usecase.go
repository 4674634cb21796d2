package job

import (
	"context"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/auth"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/job/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
)

type UseCase interface {
	Enqueue(ctx context.Context, input *dto.EnqueueInput) (*dto.EnqueueResult, error)
	GetStatus(ctx context.Context, p auth.Principal, jobID string) (*model.Job, error)
	History(ctx context.Context, p auth.Principal, jobID string) ([]model.JobEvent, error)
	Retry(ctx context.Context, p auth.Principal, jobID string) error
	Cancel(ctx context.Context, p auth.Principal, jobID string) error

	// Worker side.
	Claim(ctx context.Context, input *dto.ClaimInput) (*model.Job, error)
	ReportProgress(ctx context.Context, jobID string, progress int) error
	Complete(ctx context.Context, jobID string, result model.JSONB) error
	Fail(ctx context.Context, jobID string, reason string) error

	// ReleaseAgentLock frees userID's automation session, failing the job
	// that held it.
	ReleaseAgentLock(ctx context.Context, p auth.Principal, userID string) error

	RegisterHook(jobType string, h Hook)
}

// Hook is notified after a job of a registered type finishes.
type Hook interface {
	OnCompleted(ctx context.Context, job *model.Job) error
	OnFailed(ctx context.Context, job *model.Job) error
}
