package model

import "time"

type ItemState string

const (
	ItemAvailable ItemState = "available"
	ItemReserved  ItemState = "reserved"
	ItemSold      ItemState = "sold"
)

type WarehouseItem struct {
	ID               int64     `db:"id" json:"id"`
	UserID           string    `db:"user_id" json:"userId"`
	ArticleCode      string    `db:"article_code" json:"articleCode"`
	Description      string    `db:"description" json:"description"`
	Quantity         int       `db:"quantity" json:"quantity"`
	BoxName          string    `db:"box_name" json:"boxName"`
	ReservedForOrder *string   `db:"reserved_for_order" json:"reservedForOrder,omitempty"`
	SoldInOrder      *string   `db:"sold_in_order" json:"soldInOrder,omitempty"`
	CustomerName     *string   `db:"customer_name" json:"customerName,omitempty"`
	SubClientName    *string   `db:"sub_client_name" json:"subClientName,omitempty"`
	OrderDate        *string   `db:"order_date" json:"orderDate,omitempty"`
	OrderNumber      *string   `db:"order_number" json:"orderNumber,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}

func (i WarehouseItem) State() ItemState {
	switch {
	case i.SoldInOrder != nil:
		return ItemSold
	case i.ReservedForOrder != nil:
		return ItemReserved
	default:
		return ItemAvailable
	}
}

// Tracking is copied onto items when they are reserved or sold so the agent
// can see who the stock went to.
type Tracking struct {
	CustomerName  *string `json:"customerName,omitempty"`
	SubClientName *string `json:"subClientName,omitempty"`
	OrderDate     *string `json:"orderDate,omitempty"`
	OrderNumber   *string `json:"orderNumber,omitempty"`
}

// ApplyTo overwrites the tracking fields that are set.
func (t *Tracking) ApplyTo(i *WarehouseItem) {
	if t == nil {
		return
	}
	if t.CustomerName != nil {
		i.CustomerName = t.CustomerName
	}
	if t.SubClientName != nil {
		i.SubClientName = t.SubClientName
	}
	if t.OrderDate != nil {
		i.OrderDate = t.OrderDate
	}
	if t.OrderNumber != nil {
		i.OrderNumber = t.OrderNumber
	}
}

func (i *WarehouseItem) ClearTracking() {
	i.CustomerName = nil
	i.SubClientName = nil
	i.OrderDate = nil
	i.OrderNumber = nil
}

type WarehouseBox struct {
	UserID    string    `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	ItemCount int       `db:"item_count" json:"itemCount"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
