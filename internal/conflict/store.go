package conflict

import (
	"context"

	"github.com/H4tholdir/archibaldblackant-sub008/internal/model"
)

// Entity is a whole record synced with last-writer-wins semantics.
type Entity interface {
	EntityKey() string
	Owner() string
	Version() int64
}

// Version is what the resolver needs to know about a stored record.
type Version struct {
	Owner     string
	UpdatedAt int64
}

// Claim is a previously recorded idempotency key.
type Claim struct {
	EntityID string
	Op       Op
	Outcome  *Outcome
}

// Tx is the set of operations the resolver performs inside one transaction.
type Tx[T Entity] interface {
	// ClaimKey records (userID, key) for op on entityID. A nil Claim means
	// the key was free; otherwise the earlier claim is returned untouched.
	ClaimKey(ctx context.Context, userID, key, entityID string, op Op) (*Claim, error)
	// Current returns the stored version of id, locked for the rest of the
	// transaction, or nil if none exists.
	Current(ctx context.Context, id string) (*Version, error)
	// Upsert writes rec when no row exists or the stored row belongs to the
	// same owner with an older updatedAt. applied is false if the guard failed.
	Upsert(ctx context.Context, rec T) (applied, inserted bool, err error)
	// Delete removes id under the same guard as Upsert.
	Delete(ctx context.Context, id, owner string, version int64) (bool, error)
	Append(ctx context.Context, entry *model.ChangeLogEntry) (int64, error)
	SaveOutcome(ctx context.Context, userID, key string, out Outcome) error
}

type Store[T Entity] interface {
	// InTx commits when fn returns nil and rolls back otherwise.
	InTx(ctx context.Context, fn func(tx Tx[T]) error) error
}
