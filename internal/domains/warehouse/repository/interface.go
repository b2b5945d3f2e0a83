package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"fulfilment-backend/internal/domains/warehouse/model"
)

// WarehouseRepository is the persistence surface of warehouse history.
// Find methods return (nil, nil) when no row matches.
type WarehouseRepository interface {
	// WithTx returns a copy bound to tx so that all calls on the copy run
	// inside that transaction. A nil tx returns the receiver unchanged.
	WithTx(tx pgx.Tx) WarehouseRepository

	ListActive(ctx context.Context) ([]model.Warehouse, error)
	FindActiveByBusinessUnitCode(ctx context.Context, code string) (*model.Warehouse, error)
	// FindLatestByBusinessUnitCode also sees archived rows; it answers the
	// "was this code ever used" question behind global code uniqueness.
	FindLatestByBusinessUnitCode(ctx context.Context, code string) (*model.Warehouse, error)
	Create(ctx context.Context, w model.Warehouse) (*model.Warehouse, error)
	Archive(ctx context.Context, code string, at time.Time) error

	// LockLocation serializes concurrent creations at the same location for
	// the rest of the current transaction.
	LockLocation(ctx context.Context, identifier string) error
}
