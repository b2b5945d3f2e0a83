package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"fulfilment-backend/internal/domains/location"
	"fulfilment-backend/internal/domains/warehouse/model"
	"fulfilment-backend/internal/domains/warehouse/repository"
	"fulfilment-backend/pkg/database"
	"fulfilment-backend/pkg/logger"
)

type warehouseService struct {
	warehouses repository.WarehouseRepository
	locations  location.Resolver
	tx         database.TxRunner
}

func NewWarehouseService(
	warehouses repository.WarehouseRepository,
	locations location.Resolver,
	tx database.TxRunner,
) WarehouseService {
	return &warehouseService{
		warehouses: warehouses,
		locations:  locations,
		tx:         tx,
	}
}

func (s *warehouseService) ListActive(ctx context.Context) ([]model.Warehouse, error) {
	return s.warehouses.ListActive(ctx)
}

func (s *warehouseService) GetActive(ctx context.Context, businessUnitCode string) (*model.Warehouse, error) {
	businessUnitCode = strings.TrimSpace(businessUnitCode)
	if businessUnitCode == "" {
		return nil, model.ErrNotProvided()
	}

	w, err := s.warehouses.FindActiveByBusinessUnitCode(ctx, businessUnitCode)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, model.ErrNotFound(businessUnitCode)
	}
	return w, nil
}

func (s *warehouseService) Create(ctx context.Context, req model.Request) (*model.Warehouse, error) {
	if err := req.Validate(); err != nil {
		return nil, model.ErrValidation(err.Error())
	}
	req = req.Normalized()

	var created *model.Warehouse
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		warehouses := s.warehouses.WithTx(tx)

		// Code uniqueness spans the whole history, archived rows included.
		previous, err := warehouses.FindLatestByBusinessUnitCode(ctx, req.BusinessUnitCode)
		if err != nil {
			return err
		}
		if previous != nil {
			return model.ErrAlreadyExists(req.BusinessUnitCode)
		}

		loc, err := s.locations.Resolve(ctx, req.Location)
		if err != nil {
			return err
		}
		if loc == nil {
			return model.ErrInvalidLocation(req.Location)
		}

		if *req.Capacity < *req.Stock {
			return model.ErrCapacityBelowStock()
		}
		if *req.Capacity > loc.MaxCapacity {
			return model.ErrCapacityExceedsLocationLimit(loc.Identifier)
		}

		if err := warehouses.LockLocation(ctx, loc.Identifier); err != nil {
			return err
		}

		active, err := warehouses.ListActive(ctx)
		if err != nil {
			return err
		}
		if countAtLocation(active, loc.Identifier) >= loc.MaxNumberOfWarehouses {
			return model.ErrMaxWarehousesReached(loc.Identifier)
		}
		if capacityAtLocation(active, loc.Identifier)+*req.Capacity > loc.MaxCapacity {
			return model.ErrLocationCapacityExceeded(loc.Identifier)
		}

		created, err = warehouses.Create(ctx, model.Warehouse{
			BusinessUnitCode: req.BusinessUnitCode,
			Location:         loc.Identifier,
			Capacity:         *req.Capacity,
			Stock:            *req.Stock,
			CreatedAt:        time.Now().UTC(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("warehouse created", map[string]interface{}{
		"businessUnitCode": created.BusinessUnitCode,
		"location":         created.Location,
	})
	return created, nil
}

func (s *warehouseService) Replace(ctx context.Context, req model.Request) (*model.Warehouse, error) {
	if err := req.Validate(); err != nil {
		return nil, model.ErrValidation(err.Error())
	}
	req = req.Normalized()

	var replacement *model.Warehouse
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		warehouses := s.warehouses.WithTx(tx)

		current, err := warehouses.FindActiveByBusinessUnitCode(ctx, req.BusinessUnitCode)
		if err != nil {
			return err
		}
		if current == nil {
			return model.ErrNotFound(req.BusinessUnitCode)
		}

		loc, err := s.locations.Resolve(ctx, req.Location)
		if err != nil {
			return err
		}
		if loc == nil {
			return model.ErrInvalidLocation(req.Location)
		}

		// Stock carries over unchanged; the replacement must restate it
		// exactly and must be able to hold it.
		if *req.Capacity < current.Stock {
			return model.ErrCapacityBelowExistingStock(*req.Capacity, current.Stock)
		}
		if *req.Stock != current.Stock {
			return model.ErrStockMismatch(*req.Stock, current.Stock)
		}

		if err := warehouses.LockLocation(ctx, loc.Identifier); err != nil {
			return err
		}

		active, err := warehouses.ListActive(ctx)
		if err != nil {
			return err
		}

		// The warehouse count only matters when changing location; staying
		// put swaps one active row for another at the same location.
		moving := current.Location != loc.Identifier
		if moving && countAtLocation(active, loc.Identifier) >= loc.MaxNumberOfWarehouses {
			return model.ErrMaxWarehousesReached(loc.Identifier)
		}
		if *req.Capacity > loc.MaxCapacity {
			return model.ErrCapacityExceedsLocationLimit(loc.Identifier)
		}

		// When staying put the current row is about to be archived, so its
		// capacity does not count against the aggregate.
		used := capacityAtLocation(active, loc.Identifier)
		if !moving {
			used -= current.Capacity
		}
		if used+*req.Capacity > loc.MaxCapacity {
			return model.ErrLocationCapacityExceeded(loc.Identifier)
		}

		now := time.Now().UTC()
		if err := warehouses.Archive(ctx, current.BusinessUnitCode, now); err != nil {
			return err
		}

		replacement, err = warehouses.Create(ctx, model.Warehouse{
			BusinessUnitCode: req.BusinessUnitCode,
			Location:         loc.Identifier,
			Capacity:         *req.Capacity,
			Stock:            *req.Stock,
			CreatedAt:        now,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("warehouse replaced", map[string]interface{}{
		"businessUnitCode": replacement.BusinessUnitCode,
		"location":         replacement.Location,
	})
	return replacement, nil
}

func (s *warehouseService) Archive(ctx context.Context, businessUnitCode string) (*model.Warehouse, error) {
	businessUnitCode = strings.TrimSpace(businessUnitCode)
	if businessUnitCode == "" {
		return nil, model.ErrNotProvided()
	}

	var archived *model.Warehouse
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		warehouses := s.warehouses.WithTx(tx)

		latest, err := warehouses.FindLatestByBusinessUnitCode(ctx, businessUnitCode)
		if err != nil {
			return err
		}
		if latest == nil {
			return model.ErrNotFound(businessUnitCode)
		}
		if !latest.IsActive() {
			return model.ErrAlreadyArchived(businessUnitCode)
		}

		now := time.Now().UTC()
		if err := warehouses.Archive(ctx, businessUnitCode, now); err != nil {
			return err
		}

		closed := model.Archived(*latest, now)
		archived = &closed
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("warehouse archived", map[string]interface{}{
		"businessUnitCode": archived.BusinessUnitCode,
	})
	return archived, nil
}
