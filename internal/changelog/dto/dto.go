package dto

import "github.com/H4tholdir/archibaldblackant-sub008/internal/model"

type PullInput struct {
	UserID     string `validate:"required"`
	LastSyncID *int64 `validate:"omitempty,gte=0"`
}

// PullResult is either a resync instruction or one page of entries.
type PullResult struct {
	Resync     bool
	Entries    []model.ChangeLogEntry
	LastSyncID int64
	HasMore    bool
}

type PurgeResult struct {
	Entries         int64
	IdempotencyKeys int64
}
