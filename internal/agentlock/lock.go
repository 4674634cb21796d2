// Package agentlock serializes exclusive automation jobs per agent. A lock is
// held by a job id for a bounded TTL and must be refreshed while the job runs.
package agentlock

import (
	"context"
	"time"
)

type Holder struct {
	JobID      string
	JobType    string
	AcquiredAt time.Time
}

type Locker interface {
	// Acquire takes userID's lock for jobID. It returns false, without
	// blocking, when another job holds it.
	Acquire(ctx context.Context, userID, jobID, jobType string, ttl time.Duration) (bool, error)
	// Refresh extends the TTL if jobID still holds the lock.
	Refresh(ctx context.Context, userID, jobID string, ttl time.Duration) (bool, error)
	// Release frees the lock only if jobID holds it.
	Release(ctx context.Context, userID, jobID string) error
	// ForceRelease frees the lock whoever holds it.
	ForceRelease(ctx context.Context, userID string) error
	// Holder returns nil when the lock is free.
	Holder(ctx context.Context, userID string) (*Holder, error)
}
