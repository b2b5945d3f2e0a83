package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fulfilment-backend/internal/domains/store"
	"fulfilment-backend/pkg/database"
)

type postgresRepository struct {
	db database.Querier
}

func NewStoreRepository(db *pgxpool.Pool) store.StoreRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(tx pgx.Tx) store.StoreRepository {
	if tx == nil {
		return r
	}
	return &postgresRepository{db: tx}
}

func (r *postgresRepository) List(ctx context.Context) ([]store.Store, error) {
	query := `
		SELECT id, name, quantity_products_in_stock
		FROM stores
		ORDER BY name, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	stores := make([]store.Store, 0)
	for rows.Next() {
		var s store.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.QuantityProductsInStock); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*store.Store, error) {
	query := `
		SELECT id, name, quantity_products_in_stock
		FROM stores
		WHERE id = $1`

	var s store.Store
	err := r.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.QuantityProductsInStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find store: %w", err)
	}
	return &s, nil
}

func (r *postgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM stores WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check store existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, s store.Store) (*store.Store, error) {
	query := `
		INSERT INTO stores (name, quantity_products_in_stock)
		VALUES ($1, $2)
		RETURNING id`

	if err := r.db.QueryRow(ctx, query, s.Name, s.QuantityProductsInStock).Scan(&s.ID); err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return &s, nil
}

func (r *postgresRepository) Update(ctx context.Context, s store.Store) error {
	query := `
		UPDATE stores
		SET name = $1, quantity_products_in_stock = $2
		WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, s.Name, s.QuantityProductsInStock, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no store %d to update", s.ID)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no store %d to delete", id)
	}
	return nil
}
