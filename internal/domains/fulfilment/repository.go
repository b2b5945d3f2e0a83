package fulfilment

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// FulfilmentRepository persists and counts warehouse assignments.
type FulfilmentRepository interface {
	WithTx(tx pgx.Tx) FulfilmentRepository

	ListByStore(ctx context.Context, storeID int64) ([]Assignment, error)
	Exists(ctx context.Context, storeID, productID, warehouseID int64) (bool, error)
	CountWarehousesForStoreProduct(ctx context.Context, storeID, productID int64) (int, error)
	CountWarehousesForStore(ctx context.Context, storeID int64) (int, error)
	CountProductsForWarehouse(ctx context.Context, warehouseID int64) (int, error)
	WarehouseServesStore(ctx context.Context, storeID, warehouseID int64) (bool, error)
	WarehouseFulfilsProduct(ctx context.Context, warehouseID, productID int64) (bool, error)
	Create(ctx context.Context, a Assignment) (*Assignment, error)

	// LockStoreProduct and LockWarehouse serialize concurrent assignments
	// touching the same counters for the rest of the transaction. Both must
	// be taken in this order to avoid lock inversion.
	LockStoreProduct(ctx context.Context, storeID, productID int64) error
	LockWarehouse(ctx context.Context, warehouseID int64) error
}

// StoreChecker and ProductChecker are the narrow read surfaces the engine
// needs from the neighbouring domains.
type StoreChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type ProductChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
