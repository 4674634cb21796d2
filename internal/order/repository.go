package order

import (
	"context"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/conflict"
	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
)

type Repository interface {
	// Transactional writes used by the conflict resolver.
	conflict.Store[model.PendingOrder]

	FindByID(ctx context.Context, id string) (*model.PendingOrder, error)
	ListByUser(ctx context.Context, userID string) ([]model.PendingOrder, error)

	// Box references, consumed by the warehouse rename saga and box deletion.
	CountBoxReferences(ctx context.Context, userID, boxName string) (int, error)
	RewriteBoxReferences(ctx context.Context, userID, oldName, newName string) (int, error)
}
