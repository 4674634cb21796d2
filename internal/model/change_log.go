package model

import "time"

type ChangeAction string

const (
	ActionInsert ChangeAction = "INSERT"
	ActionUpdate ChangeAction = "UPDATE"
	ActionDelete ChangeAction = "DELETE"
)

type EntityType string

const (
	EntityPendingOrder  EntityType = "pending_order"
	EntityWarehouseItem EntityType = "warehouse_item"
)

// ChangeLogEntry is immutable once written.
type ChangeLogEntry struct {
	SyncID         int64        `db:"sync_id" json:"syncId"`
	UserID         string       `db:"user_id" json:"-"`
	EntityType     EntityType   `db:"entity_type" json:"entityType"`
	EntityID       string       `db:"entity_id" json:"entityId"`
	Action         ChangeAction `db:"action" json:"action"`
	Payload        JSONB        `db:"payload" json:"data"`
	DeviceID       string       `db:"device_id" json:"deviceId"`
	IdempotencyKey *string      `db:"idempotency_key" json:"idempotencyKey,omitempty"`
	CreatedAt      time.Time    `db:"created_at" json:"createdAt"`
}

// SyncCounter tracks the per-user sequence. PurgedThrough is the highest
// syncId removed by retention; zero means nothing was purged yet.
type SyncCounter struct {
	UserID        string `db:"user_id"`
	LastSyncID    int64  `db:"last_sync_id"`
	PurgedThrough int64  `db:"purged_through"`
}

// FullState is a consistent snapshot of everything a user syncs, with the
// syncId that was current when the snapshot was taken.
type FullState struct {
	Orders         []PendingOrder  `json:"orders"`
	WarehouseItems []WarehouseItem `json:"warehouseItems"`
	SyncID         int64           `json:"syncId"`
}

// ServerDeviceID marks log entries written by the server itself.
const ServerDeviceID = "server"
