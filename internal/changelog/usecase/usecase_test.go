package usecase

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/changelog"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/changelog/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/conflict"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/memstore"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type fixture struct {
	store    *memstore.Store
	clock    *clock
	uc       changelog.UseCase
	resolver *conflict.Resolver[model.PendingOrder]
	version  int64
}

func newFixture(t *testing.T, pageSize int) *fixture {
	t.Helper()
	c := &clock{t: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)}
	store := memstore.New(memstore.WithClock(c.Now))
	t.Cleanup(func() { _ = store.Close() })

	log := logger.NewNop()
	return &fixture{
		store:    store,
		clock:    c,
		uc:       NewChangeLogUseCase(store.ChangeLog(), Options{PageSize: pageSize, Retention: 7 * 24 * time.Hour, Now: c.Now}, log),
		resolver: conflict.NewResolver[model.PendingOrder](store.Orders(), model.EntityPendingOrder, log),
	}
}

// write records n order changes for user.
func (f *fixture) write(t *testing.T, user string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		f.version++
		out, err := f.resolver.Apply(context.Background(), user, conflict.Mutation[model.PendingOrder]{
			Op: conflict.OpUpsert,
			Record: model.PendingOrder{
				ID:         user + "-o" + strconv.FormatInt(f.version, 10),
				UserID:     user,
				CustomerID: "C1",
				Status:     model.OrderStatusPending,
				UpdatedAt:  f.version,
			},
			DeviceID: "tablet",
		})
		require.NoError(t, err)
		require.True(t, out.Applied())
	}
}

func (f *fixture) pull(t *testing.T, user string, last *int64) *dto.PullResult {
	t.Helper()
	res, err := f.uc.Pull(context.Background(), &dto.PullInput{UserID: user, LastSyncID: last})
	require.NoError(t, err)
	return res
}

func ptr(v int64) *int64 { return &v }

func TestPullWithoutCheckpointAsksForResync(t *testing.T) {
	f := newFixture(t, 10)
	f.write(t, "u1", 2)
	assert.True(t, f.pull(t, "u1", nil).Resync)
}

func TestPullFromZeroForNewUser(t *testing.T) {
	f := newFixture(t, 10)
	res := f.pull(t, "nobody", ptr(0))
	assert.False(t, res.Resync)
	assert.Empty(t, res.Entries)
	assert.Equal(t, int64(0), res.LastSyncID)
	assert.False(t, res.HasMore)
}

func TestPullPages(t *testing.T) {
	f := newFixture(t, 3)
	f.write(t, "u1", 7)
	f.write(t, "u2", 2)

	var (
		last int64
		seen []int64
	)
	pages := 0
	for {
		res := f.pull(t, "u1", &last)
		require.False(t, res.Resync)
		pages++
		for _, e := range res.Entries {
			seen = append(seen, e.SyncID)
			assert.Equal(t, "u1", e.UserID)
		}
		last = res.LastSyncID
		if !res.HasMore {
			break
		}
	}
	assert.Equal(t, 3, pages)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7}, seen)

	// At the head: nothing new, checkpoint unchanged.
	res := f.pull(t, "u1", ptr(7))
	assert.Empty(t, res.Entries)
	assert.Equal(t, int64(7), res.LastSyncID)
	assert.False(t, res.HasMore)

	// Sequences are per user.
	res = f.pull(t, "u2", ptr(0))
	assert.Equal(t, int64(2), res.LastSyncID)
}

func TestPullFromCheckpointNeverIssued(t *testing.T) {
	f := newFixture(t, 10)
	f.write(t, "u1", 3)
	assert.True(t, f.pull(t, "u1", ptr(4)).Resync)
}

func TestPullValidatesInput(t *testing.T) {
	f := newFixture(t, 10)
	_, err := f.uc.Pull(context.Background(), &dto.PullInput{LastSyncID: ptr(0)})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = f.uc.Pull(context.Background(), &dto.PullInput{UserID: "u1", LastSyncID: ptr(-1)})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestSweepForcesResyncOnlyBehindThePurge(t *testing.T) {
	f := newFixture(t, 10)
	f.write(t, "u1", 3)
	f.clock.Advance(8 * 24 * time.Hour)
	f.write(t, "u1", 2)

	res, err := f.uc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Entries)

	assert.True(t, f.pull(t, "u1", ptr(0)).Resync)
	assert.True(t, f.pull(t, "u1", ptr(2)).Resync)

	page := f.pull(t, "u1", ptr(3))
	require.False(t, page.Resync)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, int64(4), page.Entries[0].SyncID)
	assert.Equal(t, int64(5), page.LastSyncID)

	// Ids keep increasing after a purge.
	f.write(t, "u1", 1)
	page = f.pull(t, "u1", ptr(5))
	require.Len(t, page.Entries, 1)
	assert.Equal(t, int64(6), page.Entries[0].SyncID)
}

func TestSweepKeepsRecentEntries(t *testing.T) {
	f := newFixture(t, 10)
	f.write(t, "u1", 3)
	f.clock.Advance(24 * time.Hour)

	res, err := f.uc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Entries)
	assert.Len(t, f.pull(t, "u1", ptr(0)).Entries, 3)
}

func TestFullStateCarriesCurrentSyncID(t *testing.T) {
	f := newFixture(t, 10)
	f.write(t, "u1", 4)
	f.write(t, "u2", 1)

	state, err := f.uc.FullState(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), state.SyncID)
	assert.Len(t, state.Orders, 4)
	assert.Empty(t, state.WarehouseItems)

	// A client that loaded the snapshot continues from its syncId.
	assert.Empty(t, f.pull(t, "u1", &state.SyncID).Entries)

	_, err = f.uc.FullState(context.Background(), "")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

// purgeAfterCounter runs a retention purge right after the counter is read,
// as a concurrent sweeper could.
type purgeAfterCounter struct {
	changelog.Repository
	cutoff time.Time
}

func (r *purgeAfterCounter) Counter(ctx context.Context, userID string) (*model.SyncCounter, error) {
	c, err := r.Repository.Counter(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := r.Repository.Purge(ctx, r.cutoff); err != nil {
		return nil, err
	}
	return c, nil
}

func TestPullDuringPurgeAsksForResync(t *testing.T) {
	tests := []struct {
		name  string
		fresh int
	}{
		{"newer entries remain", 2},
		{"nothing newer", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 10)
			f.write(t, "u1", 5)
			f.clock.Advance(8 * 24 * time.Hour)
			f.write(t, "u1", tt.fresh)

			racing := &purgeAfterCounter{
				Repository: f.store.ChangeLog(),
				cutoff:     f.clock.Now().Add(-7 * 24 * time.Hour),
			}
			uc := NewChangeLogUseCase(racing, Options{PageSize: 10, Now: f.clock.Now}, logger.NewNop())

			res, err := uc.Pull(context.Background(), &dto.PullInput{UserID: "u1", LastSyncID: ptr(2)})
			require.NoError(t, err)
			assert.True(t, res.Resync)
			assert.Empty(t, res.Entries)
		})
	}
}
