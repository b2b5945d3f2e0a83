package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fulfilment-backend/internal/domains/fulfilment"
	"fulfilment-backend/pkg/database"
)

type postgresRepository struct {
	db database.Querier
}

func NewFulfilmentRepository(db *pgxpool.Pool) fulfilment.FulfilmentRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(tx pgx.Tx) fulfilment.FulfilmentRepository {
	if tx == nil {
		return r
	}
	return &postgresRepository{db: tx}
}

func (r *postgresRepository) ListByStore(ctx context.Context, storeID int64) ([]fulfilment.Assignment, error) {
	query := `
		SELECT f.id, f.store_id, f.product_id, f.warehouse_id, f.created_at, w.business_unit_code
		FROM fulfilments f
		JOIN warehouses w ON w.id = f.warehouse_id
		WHERE f.store_id = $1
		ORDER BY f.product_id, w.business_unit_code`

	rows, err := r.db.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fulfilments: %w", err)
	}
	defer rows.Close()

	assignments := make([]fulfilment.Assignment, 0)
	for rows.Next() {
		var a fulfilment.Assignment
		if err := rows.Scan(&a.ID, &a.StoreID, &a.ProductID, &a.WarehouseID, &a.CreatedAt, &a.BusinessUnitCode); err != nil {
			return nil, fmt.Errorf("failed to scan fulfilment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *postgresRepository) Exists(ctx context.Context, storeID, productID, warehouseID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM fulfilments
			WHERE store_id = $1 AND product_id = $2 AND warehouse_id = $3
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, storeID, productID, warehouseID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check fulfilment existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) CountWarehousesForStoreProduct(ctx context.Context, storeID, productID int64) (int, error) {
	query := `
		SELECT COUNT(DISTINCT warehouse_id)
		FROM fulfilments
		WHERE store_id = $1 AND product_id = $2`

	var count int
	if err := r.db.QueryRow(ctx, query, storeID, productID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count warehouses for store product: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) CountWarehousesForStore(ctx context.Context, storeID int64) (int, error) {
	query := `
		SELECT COUNT(DISTINCT warehouse_id)
		FROM fulfilments
		WHERE store_id = $1`

	var count int
	if err := r.db.QueryRow(ctx, query, storeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count warehouses for store: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) CountProductsForWarehouse(ctx context.Context, warehouseID int64) (int, error) {
	query := `
		SELECT COUNT(DISTINCT product_id)
		FROM fulfilments
		WHERE warehouse_id = $1`

	var count int
	if err := r.db.QueryRow(ctx, query, warehouseID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products for warehouse: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) WarehouseServesStore(ctx context.Context, storeID, warehouseID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM fulfilments
			WHERE store_id = $1 AND warehouse_id = $2
		)`

	var serves bool
	if err := r.db.QueryRow(ctx, query, storeID, warehouseID).Scan(&serves); err != nil {
		return false, fmt.Errorf("failed to check warehouse store relation: %w", err)
	}
	return serves, nil
}

func (r *postgresRepository) WarehouseFulfilsProduct(ctx context.Context, warehouseID, productID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM fulfilments
			WHERE warehouse_id = $1 AND product_id = $2
		)`

	var fulfils bool
	if err := r.db.QueryRow(ctx, query, warehouseID, productID).Scan(&fulfils); err != nil {
		return false, fmt.Errorf("failed to check warehouse product relation: %w", err)
	}
	return fulfils, nil
}

func (r *postgresRepository) Create(ctx context.Context, a fulfilment.Assignment) (*fulfilment.Assignment, error) {
	query := `
		INSERT INTO fulfilments (store_id, product_id, warehouse_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRow(ctx, query, a.StoreID, a.ProductID, a.WarehouseID, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create fulfilment: %w", err)
	}
	return &a, nil
}

func (r *postgresRepository) LockStoreProduct(ctx context.Context, storeID, productID int64) error {
	key := database.LockKey(fmt.Sprintf("store:%d:product:%d", storeID, productID))
	return database.AdvisoryXactLock(ctx, r.db, database.LockSpaceFulfilment, key)
}

func (r *postgresRepository) LockWarehouse(ctx context.Context, warehouseID int64) error {
	key := database.LockKey(fmt.Sprintf("warehouse:%d", warehouseID))
	return database.AdvisoryXactLock(ctx, r.db, database.LockSpaceFulfilment, key)
}
