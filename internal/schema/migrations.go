// Package schema declares the database migrations. They run once at startup,
// before any repository is constructed.
package schema

import "github.com/H4tholdir/archibaldblackant-sub008/pkg/database/postgres"

func Migrations() []postgres.Migration {
	return []postgres.Migration{
		{
			Name: "sync_counters",
			SQL: `
CREATE TABLE sync_counters (
    user_id        TEXT PRIMARY KEY,
    last_sync_id   BIGINT NOT NULL DEFAULT 0,
    purged_through BIGINT NOT NULL DEFAULT 0
)`,
		},
		{
			Name:      "change_log",
			DependsOn: []string{"sync_counters"},
			SQL: `
CREATE TABLE change_log (
    user_id         TEXT        NOT NULL,
    sync_id         BIGINT      NOT NULL,
    entity_type     TEXT        NOT NULL,
    entity_id       TEXT        NOT NULL,
    action          TEXT        NOT NULL CHECK (action IN ('INSERT', 'UPDATE', 'DELETE')),
    payload         JSONB       NOT NULL,
    device_id       TEXT        NOT NULL DEFAULT '',
    idempotency_key TEXT,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (user_id, sync_id)
);
CREATE INDEX change_log_created_at_idx ON change_log (created_at)`,
		},
		{
			Name: "idempotency_keys",
			SQL: `
CREATE TABLE idempotency_keys (
    user_id    TEXT        NOT NULL,
    key        TEXT        NOT NULL,
    entity_id  TEXT        NOT NULL,
    op         TEXT        NOT NULL CHECK (op IN ('upsert', 'delete')),
    outcome    JSONB,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (user_id, key)
);
CREATE INDEX idempotency_keys_created_at_idx ON idempotency_keys (created_at)`,
		},
		{
			Name:      "pending_orders",
			DependsOn: []string{"change_log", "idempotency_keys"},
			SQL: `
CREATE TABLE pending_orders (
    id               TEXT PRIMARY KEY,
    user_id          TEXT    NOT NULL,
    customer_id      TEXT    NOT NULL,
    customer_name    TEXT    NOT NULL DEFAULT '',
    items            JSONB   NOT NULL DEFAULT '[]',
    status           TEXT    NOT NULL DEFAULT 'pending',
    discount_percent NUMERIC(7, 4),
    target_total     NUMERIC(14, 2),
    shipping_cost    NUMERIC(14, 2) NOT NULL DEFAULT 0,
    shipping_tax     NUMERIC(14, 2) NOT NULL DEFAULT 0,
    retry_count      INT     NOT NULL DEFAULT 0,
    error_message    TEXT,
    created_at       BIGINT  NOT NULL,
    updated_at       BIGINT  NOT NULL,
    device_id        TEXT    NOT NULL DEFAULT '',
    sub_client       JSONB
);
CREATE INDEX pending_orders_user_idx ON pending_orders (user_id);
CREATE INDEX pending_orders_items_idx ON pending_orders USING GIN (items jsonb_path_ops)`,
		},
		{
			Name:      "warehouse",
			DependsOn: []string{"change_log"},
			SQL: `
CREATE TABLE warehouse_boxes (
    user_id    TEXT        NOT NULL,
    name       TEXT        NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (user_id, name)
);
CREATE TABLE warehouse_items (
    id                 BIGSERIAL PRIMARY KEY,
    user_id            TEXT        NOT NULL,
    article_code       TEXT        NOT NULL,
    description        TEXT        NOT NULL DEFAULT '',
    quantity           INT         NOT NULL DEFAULT 1 CHECK (quantity >= 0),
    box_name           TEXT        NOT NULL,
    reserved_for_order TEXT,
    sold_in_order      TEXT,
    customer_name      TEXT,
    sub_client_name    TEXT,
    order_date         TEXT,
    order_number       TEXT,
    created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
    CHECK (reserved_for_order IS NULL OR sold_in_order IS NULL),
    FOREIGN KEY (user_id, box_name) REFERENCES warehouse_boxes (user_id, name) DEFERRABLE INITIALLY DEFERRED
);
CREATE INDEX warehouse_items_reserved_idx ON warehouse_items (user_id, reserved_for_order) WHERE reserved_for_order IS NOT NULL;
CREATE INDEX warehouse_items_box_idx ON warehouse_items (user_id, box_name)`,
		},
		{
			Name: "jobs",
			SQL: `
CREATE TABLE jobs (
    id              TEXT PRIMARY KEY,
    type            TEXT        NOT NULL,
    user_id         TEXT        NOT NULL,
    data            JSONB,
    idempotency_key TEXT,
    state           TEXT        NOT NULL CHECK (state IN ('waiting', 'active', 'completed', 'failed', 'cancelled')),
    progress        INT         NOT NULL DEFAULT 0 CHECK (progress BETWEEN 0 AND 100),
    result          JSONB,
    failed_reason   TEXT,
    attempts        INT         NOT NULL DEFAULT 0,
    created_at      TIMESTAMPTZ NOT NULL,
    updated_at      TIMESTAMPTZ NOT NULL,
    started_at      TIMESTAMPTZ,
    finished_at     TIMESTAMPTZ
);
CREATE UNIQUE INDEX jobs_live_idempotency_idx ON jobs (user_id, idempotency_key)
    WHERE idempotency_key IS NOT NULL AND state IN ('waiting', 'active');
CREATE INDEX jobs_waiting_idx ON jobs (created_at) WHERE state = 'waiting';
CREATE INDEX jobs_user_active_idx ON jobs (user_id) WHERE state = 'active'`,
		},
		{
			Name:      "job_events",
			DependsOn: []string{"jobs"},
			SQL: `
CREATE TABLE job_events (
    id         BIGSERIAL PRIMARY KEY,
    job_id     TEXT        NOT NULL REFERENCES jobs (id) ON DELETE CASCADE,
    from_state TEXT,
    to_state   TEXT        NOT NULL,
    note       TEXT        NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX job_events_job_idx ON job_events (job_id, id)`,
		},
	}
}
