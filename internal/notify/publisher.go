// Package notify tells connected clients about changes. It is fire and
// forget: a failed publish is logged and never affects the write it reports.
package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/H4tholdir/archibaldblackant-sub008/pkg/broker"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	EventOrderCreated  = "order.created"
	EventOrderUpdated  = "order.updated"
	EventOrderDeleted  = "order.deleted"
	EventItemsReserved = "warehouse.reserved"
	EventItemsReleased = "warehouse.released"
	EventItemsSold     = "warehouse.sold"
	EventItemsMoved    = "warehouse.transferred"
	EventBoxRenamed    = "warehouse.box_renamed"
	EventJobChanged    = "job.changed"
)

type Event struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	UserID    string      `json:"user_id"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type Publisher interface {
	Publish(ctx context.Context, userID, eventType string, payload interface{})
}

type KafkaPublisher struct {
	producer *broker.KafkaProducer
	logger   logger.ZapLogger
}

func NewKafkaPublisher(producer *broker.KafkaProducer, log logger.ZapLogger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, logger: log}
}

// Publish sends in the background, keyed by user so one user's events stay
// ordered on a partition.
func (p *KafkaPublisher) Publish(ctx context.Context, userID, eventType string, payload interface{}) {
	ev := Event{
		EventID:   uuid.New().String(),
		EventType: eventType,
		UserID:    userID,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
	body, err := json.Marshal(ev)
	if err != nil {
		p.logger.Error("failed to encode notification", zap.String("event_type", eventType), zap.Error(err))
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.producer.Publish(ctx, userID, body); err != nil {
			p.logger.Warn("failed to publish notification",
				zap.String("event_type", eventType),
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}()
}

type nopPublisher struct{}

func NewNop() Publisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, string, string, interface{}) {}

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Publish(ctx context.Context, userID, eventType string, payload interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{EventType: eventType, UserID: userID, Payload: payload, Timestamp: time.Now()})
}

func (r *Recorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.EventType
	}
	return out
}
