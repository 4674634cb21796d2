package agentlock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func TestMemoryLockerExclusive(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	l := NewMemoryLocker(clock.Now)

	ok, err := l.Acquire(ctx, "agent-1", "job-a", "submit-order", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Acquire(ctx, "agent-1", "job-b", "submit-order", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second job must not take a held lock")

	ok, _ = l.Acquire(ctx, "agent-2", "job-c", "submit-order", time.Minute)
	assert.True(t, ok, "locks are per agent")

	require.NoError(t, l.Release(ctx, "agent-1", "job-b"))
	h, err := l.Holder(ctx, "agent-1")
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, "job-a", h.JobID, "release by a non-holder is ignored")

	require.NoError(t, l.Release(ctx, "agent-1", "job-a"))
	h, _ = l.Holder(ctx, "agent-1")
	assert.Nil(t, h)
}

func TestMemoryLockerExpiryAndRefresh(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	l := NewMemoryLocker(clock.Now)

	ok, _ := l.Acquire(ctx, "agent-1", "job-a", "submit-order", time.Minute)
	require.True(t, ok)

	clock.Advance(50 * time.Second)
	refreshed, err := l.Refresh(ctx, "agent-1", "job-a", time.Minute)
	require.NoError(t, err)
	assert.True(t, refreshed)

	clock.Advance(50 * time.Second)
	ok, _ = l.Acquire(ctx, "agent-1", "job-b", "submit-order", time.Minute)
	assert.False(t, ok, "refreshed lock is still held")

	clock.Advance(11 * time.Second)
	ok, _ = l.Acquire(ctx, "agent-1", "job-b", "submit-order", time.Minute)
	assert.True(t, ok, "expired lock can be taken over")

	refreshed, _ = l.Refresh(ctx, "agent-1", "job-a", time.Minute)
	assert.False(t, refreshed, "old holder cannot refresh after losing the lock")

	require.NoError(t, l.ForceRelease(ctx, "agent-1"))
	h, _ := l.Holder(ctx, "agent-1")
	assert.Nil(t, h)
}

func TestMemoryLockerConcurrentAcquire(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLocker(nil)

	var winners int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := l.Acquire(ctx, "agent-1", string(rune('a'+i)), "submit-order", time.Minute)
			if err == nil && ok {
				atomic.AddInt32(&winners, 1)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, int32(1), winners)
}

func TestParseValue(t *testing.T) {
	h, err := parseValue("3f1c|submit-order|1700000000000")
	require.NoError(t, err)
	assert.Equal(t, "3f1c", h.JobID)
	assert.Equal(t, "submit-order", h.JobType)
	assert.Equal(t, int64(1700000000000), h.AcquiredAt.UnixMilli())

	_, err = parseValue("garbage")
	assert.Error(t, err)
}
