// Package memstore is an in-process implementation of every repository,
// used by tests and single-node development runs. One mutex serializes all
// access; each write runs as a transaction with an undo log.
package memstore

import (
	"errors"
	"sync"
	"time"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/conflict"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
)

var ErrClosed = errors.New("memstore: store is closed")

type keyID struct {
	userID string
	key    string
}

type keyRow struct {
	entityID  string
	op        conflict.Op
	outcome   []byte
	createdAt time.Time
}

type boxID struct {
	userID string
	name   string
}

type Store struct {
	mu     sync.Mutex
	closed bool
	now    func() time.Time

	counters map[string]model.SyncCounter
	log      map[string][]model.ChangeLogEntry
	keys     map[keyID]keyRow

	orders map[string]model.PendingOrder

	boxes      map[boxID]model.WarehouseBox
	items      map[int64]model.WarehouseItem
	nextItemID int64

	jobs        map[string]model.Job
	jobSeq      map[string]int64
	nextJobSeq  int64
	jobEvents   map[string][]model.JobEvent
	nextEventID int64
}

type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(opts ...Option) *Store {
	s := &Store{
		now:       time.Now,
		counters:  map[string]model.SyncCounter{},
		log:       map[string][]model.ChangeLogEntry{},
		keys:      map[keyID]keyRow{},
		orders:    map[string]model.PendingOrder{},
		boxes:     map[boxID]model.WarehouseBox{},
		items:     map[int64]model.WarehouseItem{},
		jobs:      map[string]model.Job{},
		jobSeq:    map[string]int64{},
		jobEvents: map[string][]model.JobEvent{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Close releases the store. Every later call fails with ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	s.counters, s.log, s.keys = nil, nil, nil
	s.orders, s.boxes, s.items = nil, nil, nil
	s.jobs, s.jobSeq, s.jobEvents = nil, nil, nil
	return nil
}

func (s *Store) ChangeLog() *ChangeLogRepository { return &ChangeLogRepository{s: s} }
func (s *Store) Orders() *OrderRepository       { return &OrderRepository{s: s} }
func (s *Store) Warehouse() *WarehouseRepository { return &WarehouseRepository{s: s} }
func (s *Store) Jobs() *JobRepository           { return &JobRepository{s: s} }

type txn struct {
	s    *Store
	undo []func()
}

// write runs fn under the store lock. If fn fails every change it made
// through the txn helpers is reverted.
func (s *Store) write(fn func(t *txn) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	t := &txn{s: s}
	if err := fn(t); err != nil {
		for i := len(t.undo) - 1; i >= 0; i-- {
			t.undo[i]()
		}
		return err
	}
	return nil
}

func (s *Store) read(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return fn()
}

func (t *txn) append(entry *model.ChangeLogEntry) int64 {
	s := t.s
	prev, had := s.counters[entry.UserID]
	next := prev
	next.UserID = entry.UserID
	next.LastSyncID++
	s.counters[entry.UserID] = next

	entry.SyncID = next.LastSyncID
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now().UTC()
	}
	s.log[entry.UserID] = append(s.log[entry.UserID], *entry)

	t.undo = append(t.undo, func() {
		entries := s.log[entry.UserID]
		s.log[entry.UserID] = entries[:len(entries)-1]
		if had {
			s.counters[entry.UserID] = prev
		} else {
			delete(s.counters, entry.UserID)
		}
	})
	return entry.SyncID
}

func (t *txn) putOrder(o model.PendingOrder) {
	s := t.s
	prev, had := s.orders[o.ID]
	s.orders[o.ID] = o.Clone()
	t.undo = append(t.undo, func() {
		if had {
			s.orders[o.ID] = prev
		} else {
			delete(s.orders, o.ID)
		}
	})
}

func (t *txn) deleteOrder(id string) {
	s := t.s
	prev, had := s.orders[id]
	if !had {
		return
	}
	delete(s.orders, id)
	t.undo = append(t.undo, func() { s.orders[id] = prev })
}

func (t *txn) putKey(k keyID, row keyRow) {
	s := t.s
	prev, had := s.keys[k]
	s.keys[k] = row
	t.undo = append(t.undo, func() {
		if had {
			s.keys[k] = prev
		} else {
			delete(s.keys, k)
		}
	})
}

func (t *txn) putItem(it model.WarehouseItem) {
	s := t.s
	prev, had := s.items[it.ID]
	s.items[it.ID] = it
	t.undo = append(t.undo, func() {
		if had {
			s.items[it.ID] = prev
		} else {
			delete(s.items, it.ID)
		}
	})
}

func (t *txn) putBox(b model.WarehouseBox) {
	s := t.s
	k := boxID{b.UserID, b.Name}
	prev, had := s.boxes[k]
	s.boxes[k] = b
	t.undo = append(t.undo, func() {
		if had {
			s.boxes[k] = prev
		} else {
			delete(s.boxes, k)
		}
	})
}

func (t *txn) deleteBox(k boxID) {
	s := t.s
	prev, had := s.boxes[k]
	if !had {
		return
	}
	delete(s.boxes, k)
	t.undo = append(t.undo, func() { s.boxes[k] = prev })
}

func (t *txn) putJob(j model.Job) {
	s := t.s
	prev, had := s.jobs[j.ID]
	s.jobs[j.ID] = j
	t.undo = append(t.undo, func() {
		if had {
			s.jobs[j.ID] = prev
		} else {
			delete(s.jobs, j.ID)
		}
	})
}

func (t *txn) addJobEvent(ev model.JobEvent) {
	s := t.s
	s.nextEventID++
	ev.ID = s.nextEventID
	s.jobEvents[ev.JobID] = append(s.jobEvents[ev.JobID], ev)
	t.undo = append(t.undo, func() {
		evs := s.jobEvents[ev.JobID]
		s.jobEvents[ev.JobID] = evs[:len(evs)-1]
	})
}

func strPtr(s string) *string { return &s }
