package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/job"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/broker"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"go.uber.org/zap"
)

const (
	EventProgress  = "job.progress"
	EventCompleted = "job.completed"
	EventFailed    = "job.failed"
)

// WorkerListener applies job reports that automation workers publish on the
// worker events topic instead of calling the gRPC API.
type WorkerListener struct {
	consumer *broker.KafkaConsumer
	uc       job.UseCase
	logger   logger.ZapLogger
}

func NewWorkerListener(consumer *broker.KafkaConsumer, uc job.UseCase, logger logger.ZapLogger) *WorkerListener {
	return &WorkerListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *WorkerListener) Start(ctx context.Context) {
	l.logger.Info("Starting worker events listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping worker events listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type WorkerEvent struct {
	EventID   string        `json:"event_id"`
	EventType string        `json:"event_type"`
	Payload   WorkerPayload `json:"payload"`
	Timestamp time.Time     `json:"timestamp"`
}

type WorkerPayload struct {
	JobID    string      `json:"job_id"`
	Progress int         `json:"progress"`
	Result   model.JSONB `json:"result"`
	Reason   string      `json:"reason"`
}

func (l *WorkerListener) processMessage(ctx context.Context, value []byte) {
	var event WorkerEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}
	if event.Payload.JobID == "" {
		l.logger.Warn("Worker event without job id", zap.String("event_id", event.EventID))
		return
	}

	var err error
	switch event.EventType {
	case EventProgress:
		err = l.uc.ReportProgress(ctx, event.Payload.JobID, event.Payload.Progress)
	case EventCompleted:
		err = l.uc.Complete(ctx, event.Payload.JobID, event.Payload.Result)
	case EventFailed:
		err = l.uc.Fail(ctx, event.Payload.JobID, event.Payload.Reason)
	default:
		return
	}

	// Reports are at-least-once; a redelivered terminal report is refused as a
	// conflict and needs no action.
	if err != nil {
		l.logger.Warn("Failed to apply worker event",
			zap.String("event_type", event.EventType),
			zap.String("job_id", event.Payload.JobID),
			zap.Error(err),
		)
	}
}
