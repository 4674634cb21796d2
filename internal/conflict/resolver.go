package conflict

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"go.uber.org/zap"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
	ActionSkipped Action = "skipped"
	ActionError   Action = "error"
)

const (
	ReasonServerNewer = apperr.CodeServerNewer
	ReasonForbidden   = "forbidden"
	ReasonKeyReused   = apperr.CodeKeyReused
)

type Outcome struct {
	ID              string `json:"id"`
	Action          Action `json:"action"`
	Reason          string `json:"reason,omitempty"`
	ServerUpdatedAt *int64 `json:"serverUpdatedAt,omitempty"`
	SyncID          *int64 `json:"syncId,omitempty"`
}

func (o Outcome) Applied() bool {
	return o.Action == ActionCreated || o.Action == ActionUpdated || o.Action == ActionDeleted
}

type Op string

const (
	OpUpsert Op = "upsert"
	OpDelete Op = "delete"
)

type Mutation[T Entity] struct {
	Op             Op
	Record         T
	DeviceID       string
	IdempotencyKey *string
}

type Resolver[T Entity] struct {
	store      Store[T]
	entityType model.EntityType
	logger     logger.ZapLogger
}

func NewResolver[T Entity](store Store[T], entityType model.EntityType, log logger.ZapLogger) *Resolver[T] {
	return &Resolver[T]{
		store:      store,
		entityType: entityType,
		logger:     log,
	}
}

// Apply runs one mutation for userID. The record's owner must already be set
// to userID. Store failures are returned as errors; business rejections come
// back as Outcomes.
func (r *Resolver[T]) Apply(ctx context.Context, userID string, m Mutation[T]) (Outcome, error) {
	var out Outcome
	err := r.store.InTx(ctx, func(tx Tx[T]) error {
		id := m.Record.EntityKey()

		if m.IdempotencyKey != nil {
			claim, err := tx.ClaimKey(ctx, userID, *m.IdempotencyKey, id, m.Op)
			if err != nil {
				return fmt.Errorf("claim idempotency key: %w", err)
			}
			if claim != nil {
				out = replay(id, m.Op, claim)
				return nil
			}
		}

		o, err := r.decide(ctx, tx, userID, m)
		if err != nil {
			return err
		}

		if m.IdempotencyKey != nil {
			if err := tx.SaveOutcome(ctx, userID, *m.IdempotencyKey, o); err != nil {
				return fmt.Errorf("save outcome: %w", err)
			}
		}
		out = o
		return nil
	})
	if err != nil {
		return Outcome{}, err
	}

	r.logger.Debug("mutation resolved",
		zap.String("entity_type", string(r.entityType)),
		zap.String("entity_id", out.ID),
		zap.String("action", string(out.Action)),
		zap.String("reason", out.Reason),
	)
	return out, nil
}

// replay returns the stored outcome only for the same entity and op the key
// was first used with.
func replay(id string, op Op, claim *Claim) Outcome {
	if claim.EntityID != id || claim.Op != op || claim.Outcome == nil {
		return Outcome{ID: id, Action: ActionError, Reason: ReasonKeyReused}
	}
	return *claim.Outcome
}

func (r *Resolver[T]) decide(ctx context.Context, tx Tx[T], userID string, m Mutation[T]) (Outcome, error) {
	id := m.Record.EntityKey()
	incoming := m.Record.Version()

	cur, err := tx.Current(ctx, id)
	if err != nil {
		return Outcome{}, fmt.Errorf("read current version: %w", err)
	}
	if cur != nil {
		if cur.Owner != userID {
			return Outcome{ID: id, Action: ActionError, Reason: ReasonForbidden}, nil
		}
		if cur.UpdatedAt >= incoming {
			return skipped(id, cur.UpdatedAt), nil
		}
	}

	var (
		action model.ChangeAction
		result Action
	)
	switch m.Op {
	case OpDelete:
		if cur == nil {
			return Outcome{ID: id, Action: ActionDeleted}, nil
		}
		ok, err := tx.Delete(ctx, id, userID, incoming)
		if err != nil {
			return Outcome{}, fmt.Errorf("delete: %w", err)
		}
		if !ok {
			return r.lostRace(ctx, tx, id, userID)
		}
		action, result = model.ActionDelete, ActionDeleted

	case OpUpsert:
		applied, inserted, err := tx.Upsert(ctx, m.Record)
		if err != nil {
			return Outcome{}, fmt.Errorf("upsert: %w", err)
		}
		if !applied {
			return r.lostRace(ctx, tx, id, userID)
		}
		action, result = model.ActionUpdate, ActionUpdated
		if inserted {
			action, result = model.ActionInsert, ActionCreated
		}

	default:
		return Outcome{}, apperr.Validation("unknown op " + string(m.Op))
	}

	payload, err := json.Marshal(m.Record)
	if err != nil {
		return Outcome{}, fmt.Errorf("encode payload: %w", err)
	}
	syncID, err := tx.Append(ctx, &model.ChangeLogEntry{
		UserID:         userID,
		EntityType:     r.entityType,
		EntityID:       id,
		Action:         action,
		Payload:        payload,
		DeviceID:       m.DeviceID,
		IdempotencyKey: m.IdempotencyKey,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("append change log: %w", err)
	}

	return Outcome{ID: id, Action: result, SyncID: &syncID}, nil
}

// lostRace handles a conditional write that matched nothing because a
// concurrent writer got there first.
func (r *Resolver[T]) lostRace(ctx context.Context, tx Tx[T], id, userID string) (Outcome, error) {
	cur, err := tx.Current(ctx, id)
	if err != nil {
		return Outcome{}, fmt.Errorf("re-read current version: %w", err)
	}
	if cur == nil {
		return Outcome{ID: id, Action: ActionDeleted}, nil
	}
	if cur.Owner != userID {
		return Outcome{ID: id, Action: ActionError, Reason: ReasonForbidden}, nil
	}
	return skipped(id, cur.UpdatedAt), nil
}

func skipped(id string, serverUpdatedAt int64) Outcome {
	return Outcome{ID: id, Action: ActionSkipped, Reason: ReasonServerNewer, ServerUpdatedAt: &serverUpdatedAt}
}
