package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	changelogRepo "github.com/H4tholdir/archibaldblackant-sub008/internal/changelog/repository"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/conflict"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) InTx(ctx context.Context, fn func(tx conflict.Tx[model.PendingOrder]) error) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(&pgTx{tx: tx}); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.PendingOrder, error) {
	var order model.PendingOrder
	query := `SELECT * FROM pending_orders WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &order, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *PGRepository) ListByUser(ctx context.Context, userID string) ([]model.PendingOrder, error) {
	orders := []model.PendingOrder{}
	query := `SELECT * FROM pending_orders WHERE user_id = $1 ORDER BY created_at, id`
	err := r.DB.SelectContext(ctx, &orders, query, userID)
	return orders, err
}

// boxFilter is a jsonb containment document matching any order item drawing
// from box. It is served by the GIN index on items.
func boxFilter(box string) (string, error) {
	doc := []map[string]interface{}{{
		"warehouseSources": []map[string]string{{"boxName": box}},
	}}
	b, err := json.Marshal(doc)
	return string(b), err
}

func (r *PGRepository) CountBoxReferences(ctx context.Context, userID, boxName string) (int, error) {
	filter, err := boxFilter(boxName)
	if err != nil {
		return 0, err
	}
	var n int
	err = r.DB.GetContext(ctx, &n, `
        SELECT count(*) FROM pending_orders
        WHERE user_id = $1 AND items @> $2::jsonb
    `, userID, filter)
	return n, err
}

func (r *PGRepository) RewriteBoxReferences(ctx context.Context, userID, oldName, newName string) (int, error) {
	filter, err := boxFilter(oldName)
	if err != nil {
		return 0, err
	}

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	orders := []model.PendingOrder{}
	err = tx.SelectContext(ctx, &orders, `
        SELECT * FROM pending_orders
        WHERE user_id = $1 AND items @> $2::jsonb
        ORDER BY id
        FOR UPDATE
    `, userID, filter)
	if err != nil {
		return 0, fmt.Errorf("select referencing orders: %w", err)
	}

	nowMs := time.Now().UnixMilli()
	for i := range orders {
		o := &orders[i]
		if !o.RenameBox(oldName, newName) {
			continue
		}
		o.UpdatedAt = model.NextVersion(o.UpdatedAt, nowMs)

		_, err := tx.ExecContext(ctx, `
            UPDATE pending_orders SET items = $2, updated_at = $3 WHERE id = $1
        `, o.ID, o.Items, o.UpdatedAt)
		if err != nil {
			return 0, fmt.Errorf("rewrite order %s: %w", o.ID, err)
		}

		payload, err := json.Marshal(o)
		if err != nil {
			return 0, err
		}
		_, err = changelogRepo.AppendTx(ctx, tx, &model.ChangeLogEntry{
			UserID:     userID,
			EntityType: model.EntityPendingOrder,
			EntityID:   o.ID,
			Action:     model.ActionUpdate,
			Payload:    payload,
			DeviceID:   model.ServerDeviceID,
		})
		if err != nil {
			return 0, err
		}
	}

	return len(orders), tx.Commit()
}

type pgTx struct {
	tx *sqlx.Tx
}

func (x *pgTx) ClaimKey(ctx context.Context, userID, key, entityID string, op conflict.Op) (*conflict.Claim, error) {
	// A concurrent claim on the same key blocks here until the other
	// transaction ends, then falls through to read what it recorded.
	res, err := x.tx.ExecContext(ctx, `
        INSERT INTO idempotency_keys (user_id, key, entity_id, op)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id, key) DO NOTHING
    `, userID, key, entityID, string(op))
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return nil, nil
	}

	var row struct {
		EntityID string      `db:"entity_id"`
		Op       string      `db:"op"`
		Outcome  model.JSONB `db:"outcome"`
	}
	err = x.tx.GetContext(ctx, &row, `
        SELECT entity_id, op, outcome FROM idempotency_keys WHERE user_id = $1 AND key = $2
    `, userID, key)
	if err != nil {
		return nil, err
	}

	claim := &conflict.Claim{EntityID: row.EntityID, Op: conflict.Op(row.Op)}
	if len(row.Outcome) > 0 {
		var out conflict.Outcome
		if err := json.Unmarshal(row.Outcome, &out); err != nil {
			return nil, fmt.Errorf("decode stored outcome: %w", err)
		}
		claim.Outcome = &out
	}
	return claim, nil
}

func (x *pgTx) Current(ctx context.Context, id string) (*conflict.Version, error) {
	var row struct {
		UserID    string `db:"user_id"`
		UpdatedAt int64  `db:"updated_at"`
	}
	err := x.tx.GetContext(ctx, &row, `
        SELECT user_id, updated_at FROM pending_orders WHERE id = $1 FOR UPDATE
    `, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &conflict.Version{Owner: row.UserID, UpdatedAt: row.UpdatedAt}, nil
}

func (x *pgTx) Upsert(ctx context.Context, rec model.PendingOrder) (bool, bool, error) {
	query := `
        INSERT INTO pending_orders (
            id, user_id, customer_id, customer_name, items, status,
            discount_percent, target_total, shipping_cost, shipping_tax,
            retry_count, error_message, created_at, updated_at, device_id, sub_client
        )
        VALUES (
            :id, :user_id, :customer_id, :customer_name, :items, :status,
            :discount_percent, :target_total, :shipping_cost, :shipping_tax,
            :retry_count, :error_message, :created_at, :updated_at, :device_id, :sub_client
        )
        ON CONFLICT (id) DO UPDATE SET
            customer_id = EXCLUDED.customer_id,
            customer_name = EXCLUDED.customer_name,
            items = EXCLUDED.items,
            status = EXCLUDED.status,
            discount_percent = EXCLUDED.discount_percent,
            target_total = EXCLUDED.target_total,
            shipping_cost = EXCLUDED.shipping_cost,
            shipping_tax = EXCLUDED.shipping_tax,
            retry_count = EXCLUDED.retry_count,
            error_message = EXCLUDED.error_message,
            updated_at = EXCLUDED.updated_at,
            device_id = EXCLUDED.device_id,
            sub_client = EXCLUDED.sub_client
        WHERE pending_orders.user_id = EXCLUDED.user_id
          AND pending_orders.updated_at < EXCLUDED.updated_at
        RETURNING (xmax = 0) AS inserted
    `
	q, args, err := x.tx.BindNamed(query, rec)
	if err != nil {
		return false, false, err
	}

	var inserted bool
	err = x.tx.QueryRowxContext(ctx, q, args...).Scan(&inserted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, false, nil
		}
		return false, false, err
	}
	return true, inserted, nil
}

func (x *pgTx) Delete(ctx context.Context, id, owner string, version int64) (bool, error) {
	res, err := x.tx.ExecContext(ctx, `
        DELETE FROM pending_orders
        WHERE id = $1 AND user_id = $2 AND updated_at < $3
    `, id, owner, version)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n == 1, err
}

func (x *pgTx) Append(ctx context.Context, entry *model.ChangeLogEntry) (int64, error) {
	return changelogRepo.AppendTx(ctx, x.tx, entry)
}

func (x *pgTx) SaveOutcome(ctx context.Context, userID, key string, out conflict.Outcome) error {
	raw, err := json.Marshal(out)
	if err != nil {
		return err
	}
	_, err = x.tx.ExecContext(ctx, `
        UPDATE idempotency_keys SET outcome = $3 WHERE user_id = $1 AND key = $2
    `, userID, key, model.JSONB(raw))
	return err
}
