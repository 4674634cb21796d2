package listener

import (
	"context"
	"testing"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/apperr"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/job"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/pkg/logger"
	"github.com/stretchr/testify/assert"
)

// fakeUseCase records worker reports; other methods are left to the embedded
// nil interface.
type fakeUseCase struct {
	job.UseCase
	calls []string
	err   error
}

func (f *fakeUseCase) ReportProgress(ctx context.Context, jobID string, progress int) error {
	f.calls = append(f.calls, "progress:"+jobID)
	return f.err
}

func (f *fakeUseCase) Complete(ctx context.Context, jobID string, result model.JSONB) error {
	f.calls = append(f.calls, "complete:"+jobID+":"+string(result))
	return f.err
}

func (f *fakeUseCase) Fail(ctx context.Context, jobID string, reason string) error {
	f.calls = append(f.calls, "fail:"+jobID+":"+reason)
	return f.err
}

func TestProcessMessageDispatches(t *testing.T) {
	uc := &fakeUseCase{}
	l := NewWorkerListener(nil, uc, logger.NewNop())
	ctx := context.Background()

	l.processMessage(ctx, []byte(`{"event_type":"job.progress","payload":{"job_id":"j1","progress":30}}`))
	l.processMessage(ctx, []byte(`{"event_type":"job.completed","payload":{"job_id":"j1","result":{"orderNumber":"ORD/7"}}}`))
	l.processMessage(ctx, []byte(`{"event_type":"job.failed","payload":{"job_id":"j2","reason":"timeout"}}`))

	assert.Equal(t, []string{
		"progress:j1",
		`complete:j1:{"orderNumber":"ORD/7"}`,
		"fail:j2:timeout",
	}, uc.calls)
}

func TestProcessMessageIgnoresJunk(t *testing.T) {
	uc := &fakeUseCase{}
	l := NewWorkerListener(nil, uc, logger.NewNop())
	ctx := context.Background()

	l.processMessage(ctx, []byte(`not json`))
	l.processMessage(ctx, []byte(`{"event_type":"job.completed","payload":{}}`))
	l.processMessage(ctx, []byte(`{"event_type":"job.restarted","payload":{"job_id":"j1"}}`))

	assert.Empty(t, uc.calls)
}

func TestRedeliveredReportIsSwallowed(t *testing.T) {
	uc := &fakeUseCase{err: apperr.Conflict(apperr.CodeJobTerminal, "job j1 is completed")}
	l := NewWorkerListener(nil, uc, logger.NewNop())

	assert.NotPanics(t, func() {
		l.processMessage(context.Background(), []byte(`{"event_type":"job.completed","payload":{"job_id":"j1"}}`))
	})
	assert.Len(t, uc.calls, 1)
}
