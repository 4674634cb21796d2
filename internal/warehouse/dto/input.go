package dto

import "github.com/H4tholdir/archibaldblackant-sub008/internal/model"

type BatchReserveInput struct {
	UserID   string          `validate:"required"`
	ItemIDs  []int64         `validate:"required,min=1,max=1000,dive,gt=0"`
	OrderID  string          `validate:"required,max=64"`
	Tracking *model.Tracking `validate:"omitempty"`
	DeviceID string
}

type BatchReleaseInput struct {
	UserID   string `validate:"required"`
	OrderID  string `validate:"required,max=64"`
	DeviceID string
}

type BatchMarkSoldInput struct {
	UserID   string          `validate:"required"`
	OrderID  string          `validate:"required,max=64"`
	Tracking *model.Tracking `validate:"omitempty"`
	DeviceID string
}

type BatchTransferInput struct {
	UserID       string   `validate:"required"`
	FromOrderIDs []string `validate:"required,min=1,dive,required"`
	ToOrderID    string   `validate:"required,max=64"`
	DeviceID     string
}

type UpsertItemInput struct {
	UserID      string `validate:"required"`
	ID          int64  `validate:"gte=0"`
	ArticleCode string `validate:"required,max=64"`
	Description string `validate:"max=512"`
	Quantity    int    `validate:"gte=0"`
	BoxName     string `validate:"required,max=64"`
	DeviceID    string
}

type CreateBoxInput struct {
	UserID string `validate:"required"`
	Name   string `validate:"required,max=64"`
}

type DeleteBoxInput struct {
	UserID string `validate:"required"`
	Name   string `validate:"required"`
}

type RenameBoxInput struct {
	UserID   string `validate:"required"`
	OldName  string `validate:"required"`
	NewName  string `validate:"required,max=64,nefield=OldName"`
	DeviceID string
}
