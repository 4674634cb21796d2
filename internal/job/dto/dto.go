package dto

import (
	"time"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
)

type EnqueueInput struct {
	Type           string      `validate:"required,max=64"`
	UserID         string      `validate:"required"`
	Data           model.JSONB `validate:"omitempty"`
	IdempotencyKey *string     `validate:"omitempty,min=1,max=128"`
}

type EnqueueResult struct {
	JobID   string `json:"jobId"`
	Created bool   `json:"created"`
}

type ClaimInput struct {
	Types []string `validate:"required,min=1,dive,required"`
}

// Transition is a guarded state change. The repository applies it only when
// the job is currently in one of From.
type Transition struct {
	From         []model.JobState
	To           model.JobState
	Note         string
	Result       model.JSONB
	FailedReason *string
}

func (t *Transition) Allows(s model.JobState) bool {
	for _, f := range t.From {
		if f == s {
			return true
		}
	}
	return false
}

// Apply mutates j as the transition prescribes. Callers must check Allows first.
func (t *Transition) Apply(j *model.Job, now time.Time) {
	j.State = t.To
	j.UpdatedAt = now

	switch t.To {
	case model.JobActive:
		j.StartedAt = &now
		j.FinishedAt = nil
		j.Attempts++
	case model.JobWaiting:
		j.Progress = 0
		j.Result = nil
		j.FailedReason = nil
		j.StartedAt = nil
		j.FinishedAt = nil
	case model.JobCompleted:
		j.Progress = 100
		j.Result = t.Result
		j.FinishedAt = &now
	case model.JobFailed:
		j.FailedReason = t.FailedReason
		j.FinishedAt = &now
	case model.JobCancelled:
		j.FinishedAt = &now
	}
}
