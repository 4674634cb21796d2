package handler

import (
	"testing"

	pb "github.com/H4tholdir/archibaldblackant-sub008/gen/go/archibald/v1"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func TestOrderDecimalsSurviveTheWire(t *testing.T) {
	in := &pb.PendingOrder{
		Id:              "o1",
		CustomerId:      "C001",
		DiscountPercent: proto.String("12.5"),
		ShippingCost:    "4.90",
		Items:           []*pb.OrderItem{{ArticleCode: "A-1", Quantity: 3, Price: "0.10"}},
		UpdatedAt:       100,
	}

	o, err := OrderFromProto(in)
	require.NoError(t, err)
	assert.True(t, o.DiscountPercent.Valid)
	assert.False(t, o.TargetTotal.Valid)
	assert.True(t, o.Items[0].Discount.IsZero(), "empty amount reads as zero")

	out := OrderToProto(o)
	assert.Equal(t, "12.5", out.GetDiscountPercent())
	assert.Nil(t, out.TargetTotal)
	assert.Equal(t, "4.9", out.ShippingCost)
	assert.Equal(t, "0.1", out.Items[0].Price)
	assert.Equal(t, int64(100), out.UpdatedAt)
}

func TestOrderFromProtoRejectsBadAmounts(t *testing.T) {
	_, err := OrderFromProto(&pb.PendingOrder{Items: []*pb.OrderItem{{Price: "1,50"}}})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	o, err := OrderFromProto(nil)
	require.NoError(t, err)
	assert.Nil(t, o)
}
