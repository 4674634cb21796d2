package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	changelogRepo "github.com/H4tholdir/archibaldblackant-sub008/internal/changelog/repository"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// updateAndLog runs a conditional UPDATE ... RETURNING * and appends one
// change log entry per returned item, all in one transaction.
func (r *PGRepository) updateAndLog(ctx context.Context, deviceID, query string, args ...interface{}) ([]model.WarehouseItem, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	items := []model.WarehouseItem{}
	if err := tx.SelectContext(ctx, &items, tx.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("update items: %w", err)
	}
	if err := logItems(ctx, tx, items, model.ActionUpdate, deviceID); err != nil {
		return nil, err
	}
	return items, tx.Commit()
}

func logItems(ctx context.Context, tx *sqlx.Tx, items []model.WarehouseItem, action model.ChangeAction, deviceID string) error {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	if deviceID == "" {
		deviceID = model.ServerDeviceID
	}
	for _, it := range items {
		payload, err := json.Marshal(it)
		if err != nil {
			return err
		}
		_, err = changelogRepo.AppendTx(ctx, tx, &model.ChangeLogEntry{
			UserID:     it.UserID,
			EntityType: model.EntityWarehouseItem,
			EntityID:   strconv.FormatInt(it.ID, 10),
			Action:     action,
			Payload:    payload,
			DeviceID:   deviceID,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func trackingArgs(t *model.Tracking) []interface{} {
	if t == nil {
		return []interface{}{nil, nil, nil, nil}
	}
	return []interface{}{t.CustomerName, t.SubClientName, t.OrderDate, t.OrderNumber}
}

const setTracking = `
            customer_name = COALESCE(?, customer_name),
            sub_client_name = COALESCE(?, sub_client_name),
            order_date = COALESCE(?, order_date),
            order_number = COALESCE(?, order_number)`

func (r *PGRepository) Reserve(ctx context.Context, in *dto.BatchReserveInput) ([]model.WarehouseItem, error) {
	if len(in.ItemIDs) == 0 {
		return []model.WarehouseItem{}, nil
	}
	args := append([]interface{}{in.OrderID}, trackingArgs(in.Tracking)...)
	args = append(args, in.UserID, in.ItemIDs)

	query, args, err := sqlx.In(`
        UPDATE warehouse_items SET
            reserved_for_order = ?,`+setTracking+`,
            updated_at = now()
        WHERE user_id = ? AND id IN (?)
          AND reserved_for_order IS NULL AND sold_in_order IS NULL
        RETURNING *
    `, args...)
	if err != nil {
		return nil, err
	}
	return r.updateAndLog(ctx, in.DeviceID, query, args...)
}

func (r *PGRepository) Release(ctx context.Context, in *dto.BatchReleaseInput) ([]model.WarehouseItem, error) {
	return r.updateAndLog(ctx, in.DeviceID, `
        UPDATE warehouse_items SET
            reserved_for_order = NULL,
            customer_name = NULL,
            sub_client_name = NULL,
            order_date = NULL,
            order_number = NULL,
            updated_at = now()
        WHERE user_id = ? AND reserved_for_order = ?
        RETURNING *
    `, in.UserID, in.OrderID)
}

func (r *PGRepository) MarkSold(ctx context.Context, in *dto.BatchMarkSoldInput) ([]model.WarehouseItem, error) {
	args := trackingArgs(in.Tracking)
	args = append(args, in.UserID, in.OrderID)
	return r.updateAndLog(ctx, in.DeviceID, `
        UPDATE warehouse_items SET
            sold_in_order = reserved_for_order,
            reserved_for_order = NULL,`+setTracking+`,
            updated_at = now()
        WHERE user_id = ? AND reserved_for_order = ? AND sold_in_order IS NULL
        RETURNING *
    `, args...)
}

func (r *PGRepository) Transfer(ctx context.Context, in *dto.BatchTransferInput) ([]model.WarehouseItem, error) {
	from := make([]string, 0, len(in.FromOrderIDs))
	for _, id := range in.FromOrderIDs {
		if id != in.ToOrderID {
			from = append(from, id)
		}
	}
	if len(from) == 0 {
		return []model.WarehouseItem{}, nil
	}

	query, args, err := sqlx.In(`
        UPDATE warehouse_items SET reserved_for_order = ?, updated_at = now()
        WHERE user_id = ? AND reserved_for_order IN (?)
        RETURNING *
    `, in.ToOrderID, in.UserID, from)
	if err != nil {
		return nil, err
	}
	return r.updateAndLog(ctx, in.DeviceID, query, args...)
}

func (r *PGRepository) SaveItem(ctx context.Context, item *model.WarehouseItem, deviceID string) (*model.WarehouseItem, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var exists bool
	err = tx.GetContext(ctx, &exists, `
        SELECT EXISTS (SELECT 1 FROM warehouse_boxes WHERE user_id = $1 AND name = $2)
    `, item.UserID, item.BoxName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("box " + item.BoxName)
	}

	var saved model.WarehouseItem
	action := model.ActionInsert
	if item.ID == 0 {
		err = tx.QueryRowxContext(ctx, `
            INSERT INTO warehouse_items (user_id, article_code, description, quantity, box_name)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING *
        `, item.UserID, item.ArticleCode, item.Description, item.Quantity, item.BoxName).StructScan(&saved)
	} else {
		action = model.ActionUpdate
		err = tx.QueryRowxContext(ctx, `
            UPDATE warehouse_items SET
                article_code = $3, description = $4, quantity = $5, box_name = $6, updated_at = now()
            WHERE id = $1 AND user_id = $2
            RETURNING *
        `, item.ID, item.UserID, item.ArticleCode, item.Description, item.Quantity, item.BoxName).StructScan(&saved)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("warehouse item")
		}
		return nil, err
	}

	if err := logItems(ctx, tx, []model.WarehouseItem{saved}, action, deviceID); err != nil {
		return nil, err
	}
	return &saved, tx.Commit()
}

func (r *PGRepository) FindItems(ctx context.Context, f *dto.ItemFilters) ([]model.WarehouseItem, int, error) {
	items := []model.WarehouseItem{}
	var count int

	conditions := []string{"user_id = :user_id"}
	args := map[string]interface{}{"user_id": f.UserID}

	if f.BoxName != "" {
		conditions = append(conditions, "box_name = :box_name")
		args["box_name"] = f.BoxName
	}
	switch model.ItemState(f.State) {
	case model.ItemAvailable:
		conditions = append(conditions, "reserved_for_order IS NULL AND sold_in_order IS NULL")
	case model.ItemReserved:
		conditions = append(conditions, "reserved_for_order IS NOT NULL")
	case model.ItemSold:
		conditions = append(conditions, "sold_in_order IS NOT NULL")
	}
	if f.Query != "" {
		conditions = append(conditions, "(article_code ILIKE :search OR description ILIKE :search)")
		args["search"] = "%" + f.Query + "%"
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	rows, err := r.DB.NamedQueryContext(ctx, "SELECT count(*) FROM warehouse_items"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return nil, 0, err
		}
	}

	query := "SELECT * FROM warehouse_items" + whereClause + " ORDER BY id"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &items, args); err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

func (r *PGRepository) CreateBox(ctx context.Context, box *model.WarehouseBox) error {
	if box.CreatedAt.IsZero() {
		box.CreatedAt = time.Now().UTC()
	}
	_, err := r.DB.NamedExecContext(ctx, `
        INSERT INTO warehouse_boxes (user_id, name, created_at)
        VALUES (:user_id, :name, :created_at)
    `, box)
	if postgres.IsUniqueViolation(err) {
		return apperr.Conflict(apperr.CodeBoxExists, "box "+box.Name+" already exists")
	}
	return err
}

func (r *PGRepository) ListBoxes(ctx context.Context, userID string) ([]model.WarehouseBox, error) {
	boxes := []model.WarehouseBox{}
	err := r.DB.SelectContext(ctx, &boxes, `
        SELECT b.user_id, b.name, b.created_at, count(i.id) AS item_count
        FROM warehouse_boxes b
        LEFT JOIN warehouse_items i ON i.user_id = b.user_id AND i.box_name = b.name
        WHERE b.user_id = $1
        GROUP BY b.user_id, b.name, b.created_at
        ORDER BY b.name
    `, userID)
	return boxes, err
}

// lockBox returns NotFound when the box does not exist.
func lockBox(ctx context.Context, tx *sqlx.Tx, userID, name string) error {
	var one int
	err := tx.GetContext(ctx, &one, `
        SELECT 1 FROM warehouse_boxes WHERE user_id = $1 AND name = $2 FOR UPDATE
    `, userID, name)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("box " + name)
	}
	return err
}

func (r *PGRepository) DeleteBox(ctx context.Context, userID, name string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := lockBox(ctx, tx, userID, name); err != nil {
		return err
	}

	var items int
	err = tx.GetContext(ctx, &items, `
        SELECT count(*) FROM warehouse_items WHERE user_id = $1 AND box_name = $2
    `, userID, name)
	if err != nil {
		return err
	}
	if items > 0 {
		return apperr.Conflict(apperr.CodeBoxNotEmpty, fmt.Sprintf("box %s still has %d items", name, items))
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM warehouse_boxes WHERE user_id = $1 AND name = $2`, userID, name)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PGRepository) RenameBox(ctx context.Context, in *dto.RenameBoxInput) ([]model.WarehouseItem, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := lockBox(ctx, tx, in.UserID, in.OldName); err != nil {
		return nil, err
	}

	// The item foreign key is deferred, so the box may move first.
	_, err = tx.ExecContext(ctx, `
        UPDATE warehouse_boxes SET name = $3 WHERE user_id = $1 AND name = $2
    `, in.UserID, in.OldName, in.NewName)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, apperr.Conflict(apperr.CodeBoxExists, "box "+in.NewName+" already exists")
		}
		return nil, err
	}

	moved := []model.WarehouseItem{}
	err = tx.SelectContext(ctx, &moved, `
        UPDATE warehouse_items SET box_name = $3, updated_at = now()
        WHERE user_id = $1 AND box_name = $2
        RETURNING *
    `, in.UserID, in.OldName, in.NewName)
	if err != nil {
		return nil, fmt.Errorf("move items: %w", err)
	}

	if err := logItems(ctx, tx, moved, model.ActionUpdate, in.DeviceID); err != nil {
		return nil, err
	}
	return moved, tx.Commit()
}
