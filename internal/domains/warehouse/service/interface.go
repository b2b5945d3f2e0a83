package service

import (
	"context"

	"fulfilment-backend/internal/domains/warehouse/model"
)

type WarehouseService interface {
	ListActive(ctx context.Context) ([]model.Warehouse, error)
	GetActive(ctx context.Context, businessUnitCode string) (*model.Warehouse, error)
	Create(ctx context.Context, req model.Request) (*model.Warehouse, error)
	// Replace archives the active warehouse for the request's business unit
	// code and opens its successor in the same transaction, stamping both
	// sides with the same instant.
	Replace(ctx context.Context, req model.Request) (*model.Warehouse, error)
	Archive(ctx context.Context, businessUnitCode string) (*model.Warehouse, error)
}
