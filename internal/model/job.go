package model

import "time"

type JobState string

const (
	JobWaiting   JobState = "waiting"
	JobActive    JobState = "active"
	JobCompleted JobState = "completed"
	JobFailed    JobState = "failed"
	JobCancelled JobState = "cancelled"
)

func (s JobState) IsTerminal() bool {
	return s == JobCompleted || s == JobFailed || s == JobCancelled
}

type Job struct {
	ID             string     `db:"id" json:"jobId"`
	Type           string     `db:"type" json:"type"`
	UserID         string     `db:"user_id" json:"userId"`
	Data           JSONB      `db:"data" json:"data"`
	IdempotencyKey *string    `db:"idempotency_key" json:"idempotencyKey,omitempty"`
	State          JobState   `db:"state" json:"state"`
	Progress       int        `db:"progress" json:"progress"`
	Result         JSONB      `db:"result" json:"result"`
	FailedReason   *string    `db:"failed_reason" json:"failedReason,omitempty"`
	Attempts       int        `db:"attempts" json:"attempts"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updatedAt"`
	StartedAt      *time.Time `db:"started_at" json:"startedAt,omitempty"`
	FinishedAt     *time.Time `db:"finished_at" json:"finishedAt,omitempty"`
}

// JobEvent is one row of a job's state history.
type JobEvent struct {
	ID        int64     `db:"id" json:"id"`
	JobID     string    `db:"job_id" json:"jobId"`
	FromState *JobState `db:"from_state" json:"from,omitempty"`
	ToState   JobState  `db:"to_state" json:"to"`
	Note      string    `db:"note" json:"note,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
