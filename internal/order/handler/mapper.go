package handler

import (
	pb "github.com/H4tholdir/archibaldblackant-sub008/gen/go/archibald/v1"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/conflict"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/shopspring/decimal"
)

// OrderToProto and OrderFromProto are shared with the sync service, which
// carries orders in pushes and full-state snapshots.

func OrderToProto(o *model.PendingOrder) *pb.PendingOrder {
	if o == nil {
		return nil
	}

	items := make([]*pb.OrderItem, len(o.Items))
	for i, it := range o.Items {
		sources := make([]*pb.WarehouseSource, len(it.WarehouseSources))
		for j, src := range it.WarehouseSources {
			sources[j] = &pb.WarehouseSource{
				WarehouseItemId: src.WarehouseItemID,
				BoxName:         src.BoxName,
				Quantity:        int32(src.Quantity),
			}
		}
		items[i] = &pb.OrderItem{
			ArticleCode:      it.ArticleCode,
			Description:      it.Description,
			Quantity:         int32(it.Quantity),
			Price:            it.Price.String(),
			Discount:         it.Discount.String(),
			WarehouseSources: sources,
		}
	}

	out := &pb.PendingOrder{
		Id:              o.ID,
		UserId:          o.UserID,
		CustomerId:      o.CustomerID,
		CustomerName:    o.CustomerName,
		Items:           items,
		Status:          string(o.Status),
		DiscountPercent: nullDecimalToProto(o.DiscountPercent),
		TargetTotal:     nullDecimalToProto(o.TargetTotal),
		ShippingCost:    o.ShippingCost.String(),
		ShippingTax:     o.ShippingTax.String(),
		RetryCount:      int32(o.RetryCount),
		ErrorMessage:    o.ErrorMessage,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		DeviceId:        o.DeviceID,
	}
	if o.SubClient != nil {
		out.SubClient = &pb.SubClient{Code: o.SubClient.Code, Name: o.SubClient.Name}
	}
	return out
}

// OrderFromProto rejects amounts that are not decimal numbers. Empty amounts
// read as zero.
func OrderFromProto(p *pb.PendingOrder) (*model.PendingOrder, error) {
	if p == nil {
		return nil, nil
	}

	var err error
	o := &model.PendingOrder{
		ID:           p.Id,
		UserID:       p.UserId,
		CustomerID:   p.CustomerId,
		CustomerName: p.CustomerName,
		Status:       model.OrderStatus(p.Status),
		RetryCount:   int(p.RetryCount),
		ErrorMessage: p.ErrorMessage,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		DeviceID:     p.DeviceId,
	}
	if o.DiscountPercent, err = nullDecimalFromProto("discount_percent", p.DiscountPercent); err != nil {
		return nil, err
	}
	if o.TargetTotal, err = nullDecimalFromProto("target_total", p.TargetTotal); err != nil {
		return nil, err
	}
	if o.ShippingCost, err = decimalFromProto("shipping_cost", p.ShippingCost); err != nil {
		return nil, err
	}
	if o.ShippingTax, err = decimalFromProto("shipping_tax", p.ShippingTax); err != nil {
		return nil, err
	}
	if p.SubClient != nil {
		o.SubClient = &model.SubClient{Code: p.SubClient.Code, Name: p.SubClient.Name}
	}

	if len(p.Items) > 0 {
		o.Items = make(model.OrderItems, len(p.Items))
	}
	for i, it := range p.Items {
		item := model.OrderItem{
			ArticleCode: it.ArticleCode,
			Description: it.Description,
			Quantity:    int(it.Quantity),
		}
		if item.Price, err = decimalFromProto("price", it.Price); err != nil {
			return nil, err
		}
		if item.Discount, err = decimalFromProto("discount", it.Discount); err != nil {
			return nil, err
		}
		for _, src := range it.WarehouseSources {
			item.WarehouseSources = append(item.WarehouseSources, model.WarehouseSource{
				WarehouseItemID: src.WarehouseItemId,
				BoxName:         src.BoxName,
				Quantity:        int(src.Quantity),
			})
		}
		o.Items[i] = item
	}
	return o, nil
}

func OutcomeToProto(o conflict.Outcome) *pb.MutationOutcome {
	return &pb.MutationOutcome{
		Id:              o.ID,
		Action:          string(o.Action),
		Reason:          o.Reason,
		ServerUpdatedAt: o.ServerUpdatedAt,
		SyncId:          o.SyncID,
	}
}

func nullDecimalToProto(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}

func decimalFromProto(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperr.Validation(field + " is not a decimal number")
	}
	return d, nil
}

func nullDecimalFromProto(field string, s *string) (decimal.NullDecimal, error) {
	if s == nil {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimalFromProto(field, *s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}
