package changelog

import (
	"context"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/changelog/dto"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
)

type UseCase interface {
	Pull(ctx context.Context, input *dto.PullInput) (*dto.PullResult, error)
	FullState(ctx context.Context, userID string) (*model.FullState, error)
	Sweep(ctx context.Context) (*dto.PurgeResult, error)
}
