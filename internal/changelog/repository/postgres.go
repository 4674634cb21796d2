package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/changelog/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// AppendTx assigns the next syncId for entry.UserID and writes the entry
// inside tx. The counter row stays locked until tx ends, so entries for one
// user commit in syncId order.
func AppendTx(ctx context.Context, tx *sqlx.Tx, entry *model.ChangeLogEntry) (int64, error) {
	var syncID int64
	err := tx.GetContext(ctx, &syncID, `
        INSERT INTO sync_counters (user_id, last_sync_id)
        VALUES ($1, 1)
        ON CONFLICT (user_id)
        DO UPDATE SET last_sync_id = sync_counters.last_sync_id + 1
        RETURNING last_sync_id
    `, entry.UserID)
	if err != nil {
		return 0, fmt.Errorf("next sync id: %w", err)
	}

	entry.SyncID = syncID
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err = tx.NamedExecContext(ctx, `
        INSERT INTO change_log (
            user_id, sync_id, entity_type, entity_id, action,
            payload, device_id, idempotency_key, created_at
        )
        VALUES (
            :user_id, :sync_id, :entity_type, :entity_id, :action,
            :payload, :device_id, :idempotency_key, :created_at
        )
    `, entry)
	if err != nil {
		return 0, fmt.Errorf("insert change log: %w", err)
	}
	return syncID, nil
}

func (r *PGRepository) Counter(ctx context.Context, userID string) (*model.SyncCounter, error) {
	var c model.SyncCounter
	err := r.DB.GetContext(ctx, &c, `SELECT * FROM sync_counters WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &model.SyncCounter{UserID: userID}, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGRepository) ListSince(ctx context.Context, userID string, after int64, limit int) ([]model.ChangeLogEntry, error) {
	entries := []model.ChangeLogEntry{}
	err := r.DB.SelectContext(ctx, &entries, `
        SELECT * FROM change_log
        WHERE user_id = $1 AND sync_id > $2
        ORDER BY sync_id ASC
        LIMIT $3
    `, userID, after, limit)
	return entries, err
}

func (r *PGRepository) Snapshot(ctx context.Context, userID string) (*model.FullState, error) {
	// One repeatable-read snapshot: the syncId matches exactly the rows read.
	tx, err := r.DB.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	state := &model.FullState{
		Orders:         []model.PendingOrder{},
		WarehouseItems: []model.WarehouseItem{},
	}

	err = tx.GetContext(ctx, &state.SyncID, `
        SELECT COALESCE((SELECT last_sync_id FROM sync_counters WHERE user_id = $1), 0)
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("read sync id: %w", err)
	}

	err = tx.SelectContext(ctx, &state.Orders, `
        SELECT * FROM pending_orders WHERE user_id = $1 ORDER BY created_at, id
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}

	err = tx.SelectContext(ctx, &state.WarehouseItems, `
        SELECT * FROM warehouse_items WHERE user_id = $1 ORDER BY id
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("read warehouse items: %w", err)
	}

	return state, tx.Commit()
}

func (r *PGRepository) Purge(ctx context.Context, cutoff time.Time) (*dto.PurgeResult, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res := &dto.PurgeResult{}

	// Purge whole prefixes per user so the retained log never has a hole.
	err = tx.GetContext(ctx, &res.Entries, `
        WITH cut AS (
            SELECT user_id, MAX(sync_id) AS through
            FROM change_log
            WHERE created_at < $1
            GROUP BY user_id
        ), del AS (
            DELETE FROM change_log c
            USING cut
            WHERE c.user_id = cut.user_id AND c.sync_id <= cut.through
            RETURNING c.user_id
        ), marked AS (
            UPDATE sync_counters s
            SET purged_through = cut.through
            FROM cut
            WHERE s.user_id = cut.user_id AND s.purged_through < cut.through
            RETURNING s.user_id
        )
        SELECT count(*) FROM del
    `, cutoff)
	if err != nil {
		return nil, fmt.Errorf("purge change log: %w", err)
	}

	keys, err := tx.ExecContext(ctx, `DELETE FROM idempotency_keys WHERE created_at < $1`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("purge idempotency keys: %w", err)
	}
	res.IdempotencyKeys, _ = keys.RowsAffected()

	return res, tx.Commit()
}
