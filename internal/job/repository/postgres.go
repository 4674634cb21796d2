package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/job/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, j *model.Job) (*model.Job, bool, error) {
	// A live duplicate can finish between our failed insert and the lookup;
	// the next round then inserts normally.
	for attempt := 0; attempt < 3; attempt++ {
		err := r.insert(ctx, j)
		if err == nil {
			return j, true, nil
		}
		if !postgres.IsUniqueViolation(err) || j.IdempotencyKey == nil {
			return nil, false, err
		}

		var existing model.Job
		err = r.DB.GetContext(ctx, &existing, `
            SELECT * FROM jobs
            WHERE user_id = $1 AND idempotency_key = $2 AND state IN ('waiting', 'active')
            LIMIT 1
        `, j.UserID, *j.IdempotencyKey)
		if err == nil {
			return &existing, false, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, false, err
		}
	}
	return nil, false, fmt.Errorf("create job: idempotency key %q kept changing hands", *j.IdempotencyKey)
}

func (r *PGRepository) insert(ctx context.Context, j *model.Job) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.NamedExecContext(ctx, `
        INSERT INTO jobs (
            id, type, user_id, data, idempotency_key, state, progress,
            result, failed_reason, attempts, created_at, updated_at, started_at, finished_at
        )
        VALUES (
            :id, :type, :user_id, :data, :idempotency_key, :state, :progress,
            :result, :failed_reason, :attempts, :created_at, :updated_at, :started_at, :finished_at
        )
    `, j)
	if err != nil {
		return err
	}

	err = insertEvent(ctx, tx, &model.JobEvent{JobID: j.ID, ToState: j.State, Note: "enqueued", CreatedAt: j.CreatedAt})
	if err != nil {
		return err
	}
	return tx.Commit()
}

func insertEvent(ctx context.Context, tx *sqlx.Tx, ev *model.JobEvent) error {
	_, err := tx.NamedExecContext(ctx, `
        INSERT INTO job_events (job_id, from_state, to_state, note, created_at)
        VALUES (:job_id, :from_state, :to_state, :note, :created_at)
    `, ev)
	if err != nil {
		return fmt.Errorf("insert job event: %w", err)
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Job, error) {
	var j model.Job
	err := r.DB.GetContext(ctx, &j, `SELECT * FROM jobs WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &j, nil
}

func (r *PGRepository) ListWaiting(ctx context.Context, types, exclusive []string, limit int) ([]model.Job, error) {
	jobs := []model.Job{}
	if len(types) == 0 {
		return jobs, nil
	}

	var (
		query string
		args  []interface{}
		err   error
	)
	if len(exclusive) == 0 {
		query, args, err = sqlx.In(`
            SELECT * FROM jobs
            WHERE state = 'waiting' AND type IN (?)
            ORDER BY created_at, id
            LIMIT ?
        `, types, limit)
	} else {
		query, args, err = sqlx.In(`
            SELECT * FROM jobs j
            WHERE j.state = 'waiting' AND j.type IN (?)
              AND (j.type NOT IN (?) OR (
                  NOT EXISTS (
                      SELECT 1 FROM jobs a
                      WHERE a.user_id = j.user_id AND a.state = 'active' AND a.type IN (?)
                  )
                  AND NOT EXISTS (
                      SELECT 1 FROM jobs w
                      WHERE w.user_id = j.user_id AND w.state = 'waiting'
                        AND w.type IN (?) AND w.type IN (?)
                        AND (w.created_at, w.id) < (j.created_at, j.id)
                  )
              ))
            ORDER BY j.created_at, j.id
            LIMIT ?
        `, types, exclusive, exclusive, types, exclusive, limit)
	}
	if err != nil {
		return nil, err
	}
	err = r.DB.SelectContext(ctx, &jobs, r.DB.Rebind(query), args...)
	return jobs, err
}

func (r *PGRepository) ListActive(ctx context.Context, userID string, types []string) ([]model.Job, error) {
	jobs := []model.Job{}
	if len(types) == 0 {
		return jobs, nil
	}
	query, args, err := sqlx.In(`
        SELECT * FROM jobs
        WHERE user_id = ? AND state = 'active' AND type IN (?)
    `, userID, types)
	if err != nil {
		return nil, err
	}
	err = r.DB.SelectContext(ctx, &jobs, r.DB.Rebind(query), args...)
	return jobs, err
}

func (r *PGRepository) Transition(ctx context.Context, id string, t *dto.Transition) (*model.Job, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var j model.Job
	err = tx.GetContext(ctx, &j, `SELECT * FROM jobs WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if !t.Allows(j.State) {
		return nil, nil
	}

	from := j.State
	t.Apply(&j, time.Now().UTC())

	_, err = tx.NamedExecContext(ctx, `
        UPDATE jobs SET
            state = :state,
            progress = :progress,
            result = :result,
            failed_reason = :failed_reason,
            attempts = :attempts,
            updated_at = :updated_at,
            started_at = :started_at,
            finished_at = :finished_at
        WHERE id = :id
    `, &j)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, apperr.Conflict(apperr.CodeDuplicateJob, "another live job holds the same idempotency key")
		}
		return nil, err
	}

	err = insertEvent(ctx, tx, &model.JobEvent{JobID: id, FromState: &from, ToState: j.State, Note: t.Note, CreatedAt: j.UpdatedAt})
	if err != nil {
		return nil, err
	}
	return &j, tx.Commit()
}

func (r *PGRepository) UpdateProgress(ctx context.Context, id string, progress int) (*model.Job, error) {
	var j model.Job
	err := r.DB.GetContext(ctx, &j, `
        UPDATE jobs SET progress = $2, updated_at = now()
        WHERE id = $1 AND state = 'active'
        RETURNING *
    `, id, progress)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &j, nil
}

func (r *PGRepository) ListEvents(ctx context.Context, jobID string) ([]model.JobEvent, error) {
	events := []model.JobEvent{}
	err := r.DB.SelectContext(ctx, &events, `
        SELECT * FROM job_events WHERE job_id = $1 ORDER BY id
    `, jobID)
	return events, err
}
