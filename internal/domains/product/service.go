package product

import "context"

type ProductService interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, req CreateRequest) (*Product, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Product, error)
	Delete(ctx context.Context, id int64) error
}
