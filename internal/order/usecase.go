package order

import (
	"context"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/auth"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/conflict"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/order/dto"
)

type UseCase interface {
	Push(ctx context.Context, input *dto.PushInput) ([]conflict.Outcome, error)
	GetOrder(ctx context.Context, p auth.Principal, id string) (*model.PendingOrder, error)
	Submit(ctx context.Context, p auth.Principal, input *dto.SubmitInput) (*dto.SubmitResult, error)

	// Submission job callbacks.
	OnCompleted(ctx context.Context, job *model.Job) error
	OnFailed(ctx context.Context, job *model.Job) error
}
