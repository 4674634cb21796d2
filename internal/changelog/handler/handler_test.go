package handler

import (
	"context"
	"net"
	"testing"

	pb "github.com/H4tholdir/archibaldblackant-sub008/gen/go/archibald/v1"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/agentlock"
	changelogUC "github.com/H4tholdir/archibaldblackant-sub008/internal/changelog/usecase"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/conflict"
	jobUC "github.com/H4tholdir/archibaldblackant-sub008/internal/job/usecase"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/memstore"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/notify"
	orderUC "github.com/H4tholdir/archibaldblackant-sub008/internal/order/usecase"
	warehouseUC "github.com/H4tholdir/archibaldblackant-sub008/internal/warehouse/usecase"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoregistry"
)

func newClient(t *testing.T) pb.SyncServiceClient {
	return pb.NewSyncServiceClient(dial(t))
}

func dial(t *testing.T) *grpc.ClientConn {
	t.Helper()
	store := memstore.New()
	t.Cleanup(func() { _ = store.Close() })

	log := logger.NewNop()
	jobs := jobUC.NewJobUseCase(store.Jobs(), agentlock.NewMemoryLocker(nil), notify.NewNop(), jobUC.Options{}, log)
	stock := warehouseUC.NewWarehouseUseCase(store.Warehouse(), store.Orders(), nil, nil, notify.NewNop(), log)
	orders := orderUC.NewOrderUseCase(store.Orders(), jobs, stock, notify.NewNop(), log)
	sync := changelogUC.NewChangeLogUseCase(store.ChangeLog(), changelogUC.Options{}, log)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(middleware.ContextInterceptor()))
	pb.RegisterSyncServiceServer(srv, NewSyncHandler(sync, orders, log))
	reflection.Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func as(user string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "x-user-id", user)
}

func push(t *testing.T, client pb.SyncServiceClient, ctx context.Context, updatedAt int64) *pb.MutationOutcome {
	t.Helper()
	resp, err := client.Push(ctx, &pb.PushRequest{Mutations: []*pb.PushMutation{{
		Op:        "upsert",
		Id:        "o1",
		UpdatedAt: updatedAt,
		DeviceId:  "tablet-1",
		Order: &pb.PendingOrder{
			CustomerId:   "C001",
			ShippingCost: "4.90",
			Items: []*pb.OrderItem{{
				ArticleCode: "A-1",
				Quantity:    2,
				Price:       "12.50",
			}},
		},
	}}})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	return resp.Results[0]
}

func TestPushThenPullOverGRPC(t *testing.T) {
	client := newClient(t)
	ctx := as("u1")

	assert.Equal(t, string(conflict.ActionCreated), push(t, client, ctx, 100).Action)

	stale := push(t, client, ctx, 50)
	assert.Equal(t, string(conflict.ActionSkipped), stale.Action)
	assert.Equal(t, conflict.ReasonServerNewer, stale.Reason)
	require.NotNil(t, stale.ServerUpdatedAt)
	assert.Equal(t, int64(100), stale.GetServerUpdatedAt())

	page, err := client.Pull(ctx, &pb.PullRequest{LastSyncId: proto.Int64(0)})
	require.NoError(t, err)
	assert.False(t, page.Resync)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, "o1", page.Entries[0].EntityId)
	assert.Equal(t, "INSERT", page.Entries[0].Action)
	assert.Equal(t, "tablet-1", page.Entries[0].DeviceId)
	assert.Contains(t, page.Entries[0].Data, `"customerId":"C001"`)
	assert.NotNil(t, page.Entries[0].CreatedAt)
	assert.Equal(t, int64(1), page.LastSyncId)

	state, err := client.FullState(ctx, &pb.FullStateRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), state.SyncId)
	require.Len(t, state.Orders, 1)
	got := state.Orders[0]
	assert.Equal(t, int64(100), got.UpdatedAt)
	assert.Equal(t, "u1", got.UserId)
	assert.Equal(t, "4.9", got.ShippingCost)
	assert.Nil(t, got.DiscountPercent)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "12.5", got.Items[0].Price)
	assert.Equal(t, int32(2), got.Items[0].Quantity)
}

func TestPushRejectsMalformedAmounts(t *testing.T) {
	client := newClient(t)

	_, err := client.Push(as("u1"), &pb.PushRequest{Mutations: []*pb.PushMutation{{
		Op:        "upsert",
		Id:        "o1",
		UpdatedAt: 100,
		Order:     &pb.PendingOrder{CustomerId: "C001", ShippingCost: "four"},
	}}})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestPullWithUnknownCheckpoint(t *testing.T) {
	client := newClient(t)

	page, err := client.Pull(as("u1"), &pb.PullRequest{LastSyncId: proto.Int64(5)})
	require.NoError(t, err)
	assert.True(t, page.Resync)
	assert.Empty(t, page.Entries)

	page, err = client.Pull(as("u1"), &pb.PullRequest{})
	require.NoError(t, err)
	assert.True(t, page.Resync, "no checkpoint means start over")
}

func TestCallsNeedAnIdentity(t *testing.T) {
	client := newClient(t)

	_, err := client.Pull(context.Background(), &pb.PullRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = client.Pull(as("u1"), &pb.PullRequest{LastSyncId: proto.Int64(-1)})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestReflectionListsTheService(t *testing.T) {
	stream, err := reflectionpb.NewServerReflectionClient(dial(t)).ServerReflectionInfo(context.Background())
	require.NoError(t, err)

	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_ListServices{},
	}))
	resp, err := stream.Recv()
	require.NoError(t, err)

	var names []string
	for _, svc := range resp.GetListServicesResponse().GetService() {
		names = append(names, svc.GetName())
	}
	assert.Contains(t, names, "archibald.v1.SyncService")

	fd, err := protoregistry.GlobalFiles.FindFileByPath("archibald/v1/sync.proto")
	require.NoError(t, err)
	assert.Equal(t, "Pull", string(fd.Services().ByName("SyncService").Methods().Get(0).Name()))
}
