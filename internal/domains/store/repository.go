package store

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// StoreRepository is the persistence surface for stores. FindByID returns
// (nil, nil) when no row matches.
type StoreRepository interface {
	WithTx(tx pgx.Tx) StoreRepository

	List(ctx context.Context) ([]Store, error)
	FindByID(ctx context.Context, id int64) (*Store, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, s Store) (*Store, error)
	Update(ctx context.Context, s Store) error
	Delete(ctx context.Context, id int64) error
}
