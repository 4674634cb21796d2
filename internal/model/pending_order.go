package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusQueued  OrderStatus = "queued"
	OrderStatusError   OrderStatus = "error"
)

type PendingOrder struct {
	ID              string              `db:"id" json:"id" validate:"required,max=64"`
	UserID          string              `db:"user_id" json:"userId"`
	CustomerID      string              `db:"customer_id" json:"customerId" validate:"required"`
	CustomerName    string              `db:"customer_name" json:"customerName"`
	Items           OrderItems          `db:"items" json:"items" validate:"dive"`
	Status          OrderStatus         `db:"status" json:"status" validate:"omitempty,oneof=pending queued error"`
	DiscountPercent decimal.NullDecimal `db:"discount_percent" json:"discountPercent"`
	TargetTotal     decimal.NullDecimal `db:"target_total" json:"targetTotal"`
	ShippingCost    decimal.Decimal     `db:"shipping_cost" json:"shippingCost"`
	ShippingTax     decimal.Decimal     `db:"shipping_tax" json:"shippingTax"`
	RetryCount      int                 `db:"retry_count" json:"retryCount" validate:"gte=0"`
	ErrorMessage    *string             `db:"error_message" json:"errorMessage,omitempty"`
	CreatedAt       int64               `db:"created_at" json:"createdAt"`
	UpdatedAt       int64               `db:"updated_at" json:"updatedAt" validate:"gt=0"`
	DeviceID        string              `db:"device_id" json:"deviceId"`
	SubClient       *SubClient          `db:"sub_client" json:"subClient,omitempty"`
}

func (o PendingOrder) EntityKey() string { return o.ID }
func (o PendingOrder) Owner() string     { return o.UserID }
func (o PendingOrder) Version() int64    { return o.UpdatedAt }

// ReferencesBox reports whether any item draws stock from box.
func (o PendingOrder) ReferencesBox(box string) bool {
	for _, it := range o.Items {
		for _, src := range it.WarehouseSources {
			if src.BoxName == box {
				return true
			}
		}
	}
	return false
}

// RenameBox rewrites warehouse sources pointing at from. Returns whether
// anything changed.
func (o *PendingOrder) RenameBox(from, to string) bool {
	changed := false
	for i := range o.Items {
		for j := range o.Items[i].WarehouseSources {
			if o.Items[i].WarehouseSources[j].BoxName == from {
				o.Items[i].WarehouseSources[j].BoxName = to
				changed = true
			}
		}
	}
	return changed
}

// Clone returns a deep copy.
func (o PendingOrder) Clone() PendingOrder {
	c := o
	if o.Items != nil {
		c.Items = make(OrderItems, len(o.Items))
		for i, it := range o.Items {
			c.Items[i] = it
			if it.WarehouseSources != nil {
				c.Items[i].WarehouseSources = append([]WarehouseSource(nil), it.WarehouseSources...)
			}
		}
	}
	if o.ErrorMessage != nil {
		msg := *o.ErrorMessage
		c.ErrorMessage = &msg
	}
	if o.SubClient != nil {
		sc := *o.SubClient
		c.SubClient = &sc
	}
	return c
}

// WarehouseItemIDs lists the stock items this order draws from.
func (o PendingOrder) WarehouseItemIDs() []int64 {
	var ids []int64
	for _, it := range o.Items {
		for _, src := range it.WarehouseSources {
			ids = append(ids, src.WarehouseItemID)
		}
	}
	return ids
}

type OrderItem struct {
	ArticleCode      string            `json:"articleCode" validate:"required"`
	Description      string            `json:"description"`
	Quantity         int               `json:"quantity" validate:"gt=0"`
	Price            decimal.Decimal   `json:"price"`
	Discount         decimal.Decimal   `json:"discount"`
	WarehouseSources []WarehouseSource `json:"warehouseSources,omitempty" validate:"dive"`
}

type WarehouseSource struct {
	WarehouseItemID int64  `json:"warehouseItemId" validate:"gt=0"`
	BoxName         string `json:"boxName" validate:"required"`
	Quantity        int    `json:"quantity" validate:"gt=0"`
}

type OrderItems []OrderItem

func (o OrderItems) Value() (driver.Value, error) {
	if o == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(o)
}

func (o *OrderItems) Scan(src interface{}) error {
	*o = nil
	return scanJSON(src, o)
}

type SubClient struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (s SubClient) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SubClient) Scan(src interface{}) error {
	return scanJSON(src, s)
}

// NextVersion gives a server-side write an updatedAt that beats stored.
func NextVersion(stored, nowMs int64) int64 {
	if nowMs > stored {
		return nowMs
	}
	return stored + 1
}
