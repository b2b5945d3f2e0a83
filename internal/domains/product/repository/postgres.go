package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fulfilment-backend/internal/domains/product"
	"fulfilment-backend/pkg/database"
)

type postgresRepository struct {
	db database.Querier
}

func NewProductRepository(db *pgxpool.Pool) product.ProductRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) WithTx(tx pgx.Tx) product.ProductRepository {
	if tx == nil {
		return r
	}
	return &postgresRepository{db: tx}
}

func (r *postgresRepository) List(ctx context.Context) ([]product.Product, error) {
	query := `
		SELECT id, name, description, price, stock
		FROM products
		ORDER BY name, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]product.Product, 0)
	for rows.Next() {
		var p product.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	query := `SELECT id, name, description, price, stock FROM products WHERE id = $1`

	var p product.Product
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &p, nil
}

func (r *postgresRepository) FindByName(ctx context.Context, name string) (*product.Product, error) {
	query := `SELECT id, name, description, price, stock FROM products WHERE name = $1`

	var p product.Product
	err := r.db.QueryRow(ctx, query, name).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product by name: %w", err)
	}
	return &p, nil
}

func (r *postgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, p product.Product) (*product.Product, error) {
	query := `
		INSERT INTO products (name, description, price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	if err := r.db.QueryRow(ctx, query, p.Name, p.Description, p.Price, p.Stock).Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &p, nil
}

func (r *postgresRepository) Update(ctx context.Context, p product.Product) error {
	query := `UPDATE products SET name = $1, description = $2, price = $3, stock = $4 WHERE id = $5`

	tag, err := r.db.Exec(ctx, query, p.Name, p.Description, p.Price, p.Stock, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no product %d to update", p.ID)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no product %d to delete", id)
	}
	return nil
}
