package store

import (
	"context"

	"fulfilment-backend/internal/shared"
)

type StoreService interface {
	List(ctx context.Context) ([]Store, error)
	Get(ctx context.Context, id int64) (*Store, error)
	Create(ctx context.Context, req CreateRequest) (*Store, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Store, error)
	// Patch applies a partial update: a zero QuantityProductsInStock keeps
	// the stored value.
	Patch(ctx context.Context, id int64, req UpdateRequest) (*Store, error)
	Delete(ctx context.Context, id int64) error
}

// LegacySyncer hands a committed store mutation to the legacy export
// pipeline.
type LegacySyncer interface {
	EnqueueLegacyStoreSync(ctx context.Context, payload shared.LegacyStoreSyncPayload) error
}
