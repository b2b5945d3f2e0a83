package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fulfilment-backend/internal/domains/warehouse/model"
	"fulfilment-backend/pkg/database"
)

type postgresRepository struct {
	db database.Querier
}

func NewWarehouseRepository(db *pgxpool.Pool) WarehouseRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(tx pgx.Tx) WarehouseRepository {
	if tx == nil {
		return r
	}
	return &postgresRepository{db: tx}
}

func (r *postgresRepository) ListActive(ctx context.Context) ([]model.Warehouse, error) {
	query := `
		SELECT id, business_unit_code, location, capacity, stock, created_at, archived_at
		FROM warehouses
		WHERE archived_at IS NULL
		ORDER BY business_unit_code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active warehouses: %w", err)
	}
	defer rows.Close()

	warehouses := make([]model.Warehouse, 0)
	for rows.Next() {
		var w model.Warehouse
		if err := scanWarehouse(rows, &w); err != nil {
			return nil, fmt.Errorf("failed to scan warehouse: %w", err)
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, rows.Err()
}

func (r *postgresRepository) FindActiveByBusinessUnitCode(ctx context.Context, code string) (*model.Warehouse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}

	query := `
		SELECT id, business_unit_code, location, capacity, stock, created_at, archived_at
		FROM warehouses
		WHERE business_unit_code = $1 AND archived_at IS NULL`

	var w model.Warehouse
	if err := scanWarehouse(r.db.QueryRow(ctx, query, code), &w); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active warehouse: %w", err)
	}
	return &w, nil
}

func (r *postgresRepository) FindLatestByBusinessUnitCode(ctx context.Context, code string) (*model.Warehouse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}

	query := `
		SELECT id, business_unit_code, location, capacity, stock, created_at, archived_at
		FROM warehouses
		WHERE business_unit_code = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	var w model.Warehouse
	if err := scanWarehouse(r.db.QueryRow(ctx, query, code), &w); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find warehouse: %w", err)
	}
	return &w, nil
}

func (r *postgresRepository) Create(ctx context.Context, w model.Warehouse) (*model.Warehouse, error) {
	query := `
		INSERT INTO warehouses (business_unit_code, location, capacity, stock, created_at, archived_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		w.BusinessUnitCode, w.Location, w.Capacity, w.Stock, w.CreatedAt, w.ArchivedAt,
	).Scan(&w.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create warehouse: %w", err)
	}
	return &w, nil
}

// Archive closes the active row for code at the given instant. It is an
// error when no active row exists; callers check liveness first.
func (r *postgresRepository) Archive(ctx context.Context, code string, at time.Time) error {
	query := `
		UPDATE warehouses
		SET archived_at = $1
		WHERE business_unit_code = $2 AND archived_at IS NULL`

	tag, err := r.db.Exec(ctx, query, at, code)
	if err != nil {
		return fmt.Errorf("failed to archive warehouse: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no active warehouse %q to archive", code)
	}
	return nil
}

func (r *postgresRepository) LockLocation(ctx context.Context, identifier string) error {
	return database.AdvisoryXactLock(ctx, r.db, database.LockSpaceWarehouseLocation, database.LockKey(identifier))
}

func scanWarehouse(row pgx.Row, w *model.Warehouse) error {
	return row.Scan(&w.ID, &w.BusinessUnitCode, &w.Location, &w.Capacity, &w.Stock, &w.CreatedAt, &w.ArchivedAt)
}
