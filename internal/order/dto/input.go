package dto

import (
	"github.com/H4tholdir/archibaldblackant-sub008/internal/conflict"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
)

const SubmitJobType = "submit-order"

type PushInput struct {
	UserID    string
	Mutations []PushMutation
}

// PushMutation is one client-side change. For deletes only ID and UpdatedAt
// are read. ID, UpdatedAt and DeviceID override whatever Order carries.
type PushMutation struct {
	Op             string              `json:"op" validate:"required,oneof=upsert delete"`
	ID             string              `json:"id" validate:"required,max=64"`
	UpdatedAt      int64               `json:"updatedAt" validate:"gt=0"`
	DeviceID       string              `json:"deviceId" validate:"max=128"`
	IdempotencyKey *string             `json:"idempotencyKey,omitempty" validate:"omitempty,min=1,max=128"`
	Order          *model.PendingOrder `json:"order,omitempty"`
}

type SubmitInput struct {
	OrderID        string  `validate:"required"`
	IdempotencyKey *string `validate:"omitempty,min=1,max=128"`
}

type SubmitResult struct {
	JobID   string           `json:"jobId"`
	Created bool             `json:"created"`
	Order   conflict.Outcome `json:"order"`
}

type SubmitJobData struct {
	OrderID string `json:"orderId"`
}

// SubmitJobResult is what the automation worker reports once the order was
// placed in the ERP.
type SubmitJobResult struct {
	OrderNumber string `json:"orderNumber"`
	OrderDate   string `json:"orderDate"`
}
