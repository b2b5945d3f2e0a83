package service

import (
	"context"

	"fulfilment-backend/internal/domains/product"
)

type productService struct {
	products product.ProductRepository
}

func NewProductService(products product.ProductRepository) product.ProductService {
	return &productService{products: products}
}

func (s *productService) List(ctx context.Context) ([]product.Product, error) {
	return s.products.List(ctx)
}

func (s *productService) Get(ctx context.Context, id int64) (*product.Product, error) {
	found, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, product.ErrNotFound(id)
	}
	return found, nil
}

func (s *productService) Create(ctx context.Context, req product.CreateRequest) (*product.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, product.ErrValidation(err.Error())
	}

	existing, err := s.products.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, product.ErrNameTaken(req.Name)
	}

	return s.products.Create(ctx, product.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
}

func (s *productService) Update(ctx context.Context, id int64, req product.UpdateRequest) (*product.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, product.ErrValidation(err.Error())
	}

	current, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, product.ErrNotFound(id)
	}

	// The name stays unique; another product holding it blocks the rename.
	holder, err := s.products.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if holder != nil && holder.ID != id {
		return nil, product.ErrNameTaken(req.Name)
	}

	next := product.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}
	if err := s.products.Update(ctx, next); err != nil {
		return nil, err
	}
	return &next, nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return product.ErrNotFound(id)
	}
	return s.products.Delete(ctx, id)
}
