package agentlock

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	Holder
	expiresAt time.Time
}

type MemoryLocker struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemoryLocker(now func() time.Time) *MemoryLocker {
	if now == nil {
		now = time.Now
	}
	return &MemoryLocker{now: now, entries: map[string]memoryEntry{}}
}

// live returns the entry for userID, dropping it if expired. Caller holds mu.
func (m *MemoryLocker) live(userID string) (memoryEntry, bool) {
	e, ok := m.entries[userID]
	if ok && !m.now().Before(e.expiresAt) {
		delete(m.entries, userID)
		return memoryEntry{}, false
	}
	return e, ok
}

func (m *MemoryLocker) Acquire(ctx context.Context, userID, jobID, jobType string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.live(userID); ok {
		return e.JobID == jobID, nil
	}
	now := m.now()
	m.entries[userID] = memoryEntry{
		Holder:    Holder{JobID: jobID, JobType: jobType, AcquiredAt: now},
		expiresAt: now.Add(ttl),
	}
	return true, nil
}

func (m *MemoryLocker) Refresh(ctx context.Context, userID, jobID string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.live(userID)
	if !ok || e.JobID != jobID {
		return false, nil
	}
	e.expiresAt = m.now().Add(ttl)
	m.entries[userID] = e
	return true, nil
}

func (m *MemoryLocker) Release(ctx context.Context, userID, jobID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[userID]; ok && e.JobID == jobID {
		delete(m.entries, userID)
	}
	return nil
}

func (m *MemoryLocker) ForceRelease(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, userID)
	return nil
}

func (m *MemoryLocker) Holder(ctx context.Context, userID string) (*Holder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.live(userID)
	if !ok {
		return nil, nil
	}
	h := e.Holder
	return &h, nil
}
