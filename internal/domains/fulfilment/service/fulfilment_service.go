package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"fulfilment-backend/internal/domains/fulfilment"
	"fulfilment-backend/internal/domains/warehouse/repository"
	"fulfilment-backend/pkg/database"
	"fulfilment-backend/pkg/logger"
)

type fulfilmentService struct {
	fulfilments fulfilment.FulfilmentRepository
	warehouses  repository.WarehouseRepository
	stores      fulfilment.StoreChecker
	products    fulfilment.ProductChecker
	tx          database.TxRunner
}

func NewFulfilmentService(
	fulfilments fulfilment.FulfilmentRepository,
	warehouses repository.WarehouseRepository,
	stores fulfilment.StoreChecker,
	products fulfilment.ProductChecker,
	tx database.TxRunner,
) fulfilment.FulfilmentService {
	return &fulfilmentService{
		fulfilments: fulfilments,
		warehouses:  warehouses,
		stores:      stores,
		products:    products,
		tx:          tx,
	}
}

func (s *fulfilmentService) ListByStore(ctx context.Context, storeID int64) ([]fulfilment.Assignment, error) {
	if storeID <= 0 {
		return nil, fulfilment.ErrValidation("store id must be a positive integer")
	}

	exists, err := s.stores.Exists(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fulfilment.ErrStoreNotFound(storeID)
	}

	return s.fulfilments.ListByStore(ctx, storeID)
}

// Assign runs the full check sequence inside one transaction. The order is
// fixed: existence checks first, then the duplicate check, then the three
// multiplicity caps, so overlapping violations always surface the same error.
func (s *fulfilmentService) Assign(ctx context.Context, storeID, productID int64, businessUnitCode string) (*fulfilment.Assignment, error) {
	businessUnitCode = strings.TrimSpace(businessUnitCode)
	switch {
	case storeID <= 0:
		return nil, fulfilment.ErrValidation("store id must be a positive integer")
	case productID <= 0:
		return nil, fulfilment.ErrValidation("product id must be a positive integer")
	case businessUnitCode == "":
		return nil, fulfilment.ErrValidation("warehouse business unit code must not be blank")
	}

	var assignment *fulfilment.Assignment
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		fulfilments := s.fulfilments.WithTx(tx)
		warehouses := s.warehouses.WithTx(tx)

		storeExists, err := s.stores.Exists(ctx, storeID)
		if err != nil {
			return err
		}
		if !storeExists {
			return fulfilment.ErrStoreNotFound(storeID)
		}

		productExists, err := s.products.Exists(ctx, productID)
		if err != nil {
			return err
		}
		if !productExists {
			return fulfilment.ErrProductNotFound(productID)
		}

		warehouse, err := warehouses.FindActiveByBusinessUnitCode(ctx, businessUnitCode)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return fulfilment.ErrWarehouseNotFound(businessUnitCode)
		}

		if err := fulfilments.LockStoreProduct(ctx, storeID, productID); err != nil {
			return err
		}
		if err := fulfilments.LockWarehouse(ctx, warehouse.ID); err != nil {
			return err
		}

		duplicate, err := fulfilments.Exists(ctx, storeID, productID, warehouse.ID)
		if err != nil {
			return err
		}
		if duplicate {
			return fulfilment.ErrAlreadyAssigned(businessUnitCode)
		}

		perProduct, err := fulfilments.CountWarehousesForStoreProduct(ctx, storeID, productID)
		if err != nil {
			return err
		}
		if perProduct >= fulfilment.MaxWarehousesPerStoreProduct {
			return fulfilment.ErrMaxWarehousesPerStoreProduct()
		}

		serves, err := fulfilments.WarehouseServesStore(ctx, storeID, warehouse.ID)
		if err != nil {
			return err
		}
		if !serves {
			perStore, err := fulfilments.CountWarehousesForStore(ctx, storeID)
			if err != nil {
				return err
			}
			if perStore >= fulfilment.MaxWarehousesPerStore {
				return fulfilment.ErrMaxWarehousesPerStore()
			}
		}

		fulfils, err := fulfilments.WarehouseFulfilsProduct(ctx, warehouse.ID, productID)
		if err != nil {
			return err
		}
		if !fulfils {
			perWarehouse, err := fulfilments.CountProductsForWarehouse(ctx, warehouse.ID)
			if err != nil {
				return err
			}
			if perWarehouse >= fulfilment.MaxProductsPerWarehouse {
				return fulfilment.ErrMaxProductsPerWarehouse(businessUnitCode)
			}
		}

		assignment, err = fulfilments.Create(ctx, fulfilment.Assignment{
			StoreID:          storeID,
			ProductID:        productID,
			WarehouseID:      warehouse.ID,
			CreatedAt:        time.Now().UTC(),
			BusinessUnitCode: warehouse.BusinessUnitCode,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("fulfilment assigned", map[string]interface{}{
		"storeId":          assignment.StoreID,
		"productId":        assignment.ProductID,
		"businessUnitCode": assignment.BusinessUnitCode,
	})
	return assignment, nil
}
