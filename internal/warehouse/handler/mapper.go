package handler

import (
	pb "github.com/H4tholdir/archibaldblackant-sub008/gen/go/archibald/v1"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ItemToProto is shared with the sync service's full-state snapshot.
func ItemToProto(i *model.WarehouseItem) *pb.WarehouseItem {
	if i == nil {
		return nil
	}
	return &pb.WarehouseItem{
		Id:               i.ID,
		UserId:           i.UserID,
		ArticleCode:      i.ArticleCode,
		Description:      i.Description,
		Quantity:         int32(i.Quantity),
		BoxName:          i.BoxName,
		ReservedForOrder: i.ReservedForOrder,
		SoldInOrder:      i.SoldInOrder,
		CustomerName:     i.CustomerName,
		SubClientName:    i.SubClientName,
		OrderDate:        i.OrderDate,
		OrderNumber:      i.OrderNumber,
		CreatedAt:        timestamppb.New(i.CreatedAt),
		UpdatedAt:        timestamppb.New(i.UpdatedAt),
	}
}

func boxToProto(b *model.WarehouseBox) *pb.WarehouseBox {
	if b == nil {
		return nil
	}
	return &pb.WarehouseBox{
		UserId:    b.UserID,
		Name:      b.Name,
		ItemCount: int32(b.ItemCount),
		CreatedAt: timestamppb.New(b.CreatedAt),
	}
}

func trackingFromProto(t *pb.Tracking) *model.Tracking {
	if t == nil {
		return nil
	}
	return &model.Tracking{
		CustomerName:  t.CustomerName,
		SubClientName: t.SubClientName,
		OrderDate:     t.OrderDate,
		OrderNumber:   t.OrderNumber,
	}
}
