package product

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// ProductRepository is the persistence surface for products. Find methods
// return (nil, nil) when no row matches.
type ProductRepository interface {
	WithTx(tx pgx.Tx) ProductRepository

	List(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id int64) (*Product, error)
	FindByName(ctx context.Context, name string) (*Product, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, p Product) (*Product, error)
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id int64) error
}
