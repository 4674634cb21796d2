package memstore

import (
	"context"
	"sort"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/job/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
)

var errDuplicateLive = apperr.Conflict(apperr.CodeDuplicateJob, "another live job holds the same idempotency key")

type JobRepository struct {
	s *Store
}

func (r *JobRepository) Create(ctx context.Context, j *model.Job) (*model.Job, bool, error) {
	var (
		stored  model.Job
		created bool
	)
	err := r.s.write(func(t *txn) error {
		if j.IdempotencyKey != nil {
			for _, existing := range r.s.jobs {
				if existing.UserID == j.UserID &&
					existing.IdempotencyKey != nil && *existing.IdempotencyKey == *j.IdempotencyKey &&
					!existing.State.IsTerminal() {
					stored = existing
					return nil
				}
			}
		}

		t.putJob(*j)
		r.s.nextJobSeq++
		r.s.jobSeq[j.ID] = r.s.nextJobSeq
		t.addJobEvent(model.JobEvent{JobID: j.ID, ToState: j.State, Note: "enqueued", CreatedAt: j.CreatedAt})
		stored, created = *j, true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &stored, created, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*model.Job, error) {
	var out *model.Job
	err := r.s.read(func() error {
		if j, ok := r.s.jobs[id]; ok {
			out = &j
		}
		return nil
	})
	return out, err
}

func (r *JobRepository) ListWaiting(ctx context.Context, types, exclusive []string, limit int) ([]model.Job, error) {
	wanted := make(map[string]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}
	isExclusive := make(map[string]bool, len(exclusive))
	for _, t := range exclusive {
		isExclusive[t] = true
	}

	var out []model.Job
	err := r.s.read(func() error {
		busy := map[string]bool{}
		var waiting []model.Job
		for _, j := range r.s.jobs {
			switch {
			case j.State == model.JobActive && isExclusive[j.Type]:
				busy[j.UserID] = true
			case j.State == model.JobWaiting && wanted[j.Type]:
				waiting = append(waiting, j)
			}
		}
		seq := r.s.jobSeq
		sort.Slice(waiting, func(i, k int) bool {
			if !waiting[i].CreatedAt.Equal(waiting[k].CreatedAt) {
				return waiting[i].CreatedAt.Before(waiting[k].CreatedAt)
			}
			return seq[waiting[i].ID] < seq[waiting[k].ID]
		})

		for _, j := range waiting {
			if isExclusive[j.Type] {
				if busy[j.UserID] {
					continue
				}
				// Later exclusive jobs of this agent wait behind this one.
				busy[j.UserID] = true
			}
			out = append(out, j)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *JobRepository) ListActive(ctx context.Context, userID string, types []string) ([]model.Job, error) {
	wanted := make(map[string]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}
	out := []model.Job{}
	err := r.s.read(func() error {
		for _, j := range r.s.jobs {
			if j.UserID == userID && j.State == model.JobActive && wanted[j.Type] {
				out = append(out, j)
			}
		}
		return nil
	})
	return out, err
}

func (r *JobRepository) Transition(ctx context.Context, id string, tr *dto.Transition) (*model.Job, error) {
	var out *model.Job
	err := r.s.write(func(t *txn) error {
		j, ok := r.s.jobs[id]
		if !ok || !tr.Allows(j.State) {
			return nil
		}

		if tr.To == model.JobWaiting && j.IdempotencyKey != nil {
			for _, other := range r.s.jobs {
				if other.ID != j.ID && other.UserID == j.UserID && !other.State.IsTerminal() &&
					other.IdempotencyKey != nil && *other.IdempotencyKey == *j.IdempotencyKey {
					return errDuplicateLive
				}
			}
		}

		from := j.State
		tr.Apply(&j, r.s.now().UTC())
		t.putJob(j)
		t.addJobEvent(model.JobEvent{JobID: id, FromState: &from, ToState: tr.To, Note: tr.Note, CreatedAt: j.UpdatedAt})
		out = &j
		return nil
	})
	return out, err
}

func (r *JobRepository) UpdateProgress(ctx context.Context, id string, progress int) (*model.Job, error) {
	var out *model.Job
	err := r.s.write(func(t *txn) error {
		j, ok := r.s.jobs[id]
		if !ok || j.State != model.JobActive {
			return nil
		}
		j.Progress = progress
		j.UpdatedAt = r.s.now().UTC()
		t.putJob(j)
		out = &j
		return nil
	})
	return out, err
}

func (r *JobRepository) ListEvents(ctx context.Context, jobID string) ([]model.JobEvent, error) {
	out := []model.JobEvent{}
	err := r.s.read(func() error {
		out = append(out, r.s.jobEvents[jobID]...)
		return nil
	})
	return out, err
}
