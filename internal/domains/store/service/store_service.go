package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"fulfilment-backend/internal/domains/store"
	"fulfilment-backend/internal/shared"
	"fulfilment-backend/pkg/database"
	"fulfilment-backend/pkg/logger"
)

type storeService struct {
	stores store.StoreRepository
	legacy store.LegacySyncer
	tx     database.TxRunner
}

func NewStoreService(
	stores store.StoreRepository,
	legacy store.LegacySyncer,
	tx database.TxRunner,
) store.StoreService {
	return &storeService{
		stores: stores,
		legacy: legacy,
		tx:     tx,
	}
}

func (s *storeService) List(ctx context.Context) ([]store.Store, error) {
	return s.stores.List(ctx)
}

func (s *storeService) Get(ctx context.Context, id int64) (*store.Store, error) {
	found, err := s.stores.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, store.ErrNotFound(id)
	}
	return found, nil
}

func (s *storeService) Create(ctx context.Context, req store.CreateRequest) (*store.Store, error) {
	if err := req.Validate(); err != nil {
		return nil, store.ErrValidation(err.Error())
	}

	var created *store.Store
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		created, err = s.stores.WithTx(tx).Create(ctx, store.Store{
			Name:                    req.Name,
			QuantityProductsInStock: req.QuantityProductsInStock,
		})
		if err != nil {
			return err
		}

		s.syncAfterCommit(ctx, shared.LegacyStoreCreated, *created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *storeService) Update(ctx context.Context, id int64, req store.UpdateRequest) (*store.Store, error) {
	if err := req.Validate(); err != nil {
		return nil, store.ErrValidation(err.Error())
	}

	var updated *store.Store
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		stores := s.stores.WithTx(tx)

		current, err := stores.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return store.ErrNotFound(id)
		}

		next := store.Store{
			ID:                      id,
			Name:                    req.Name,
			QuantityProductsInStock: req.QuantityProductsInStock,
		}
		if err := stores.Update(ctx, next); err != nil {
			return err
		}

		updated = &next
		s.syncAfterCommit(ctx, shared.LegacyStoreUpdated, next)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *storeService) Patch(ctx context.Context, id int64, req store.UpdateRequest) (*store.Store, error) {
	if err := req.Validate(); err != nil {
		return nil, store.ErrValidation(err.Error())
	}

	var patched *store.Store
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		stores := s.stores.WithTx(tx)

		current, err := stores.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return store.ErrNotFound(id)
		}

		next := *current
		next.Name = req.Name
		// Zero means "not provided" on a partial update.
		if req.QuantityProductsInStock != 0 {
			next.QuantityProductsInStock = req.QuantityProductsInStock
		}
		if err := stores.Update(ctx, next); err != nil {
			return err
		}

		patched = &next
		s.syncAfterCommit(ctx, shared.LegacyStoreUpdated, next)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return patched, nil
}

func (s *storeService) Delete(ctx context.Context, id int64) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		stores := s.stores.WithTx(tx)

		current, err := stores.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return store.ErrNotFound(id)
		}

		if err := stores.Delete(ctx, id); err != nil {
			return err
		}

		s.syncAfterCommit(ctx, shared.LegacyStoreDeleted, *current)
		return nil
	})
}

// syncAfterCommit snapshots the store now and enqueues the legacy export
// once the surrounding transaction has committed. A rolled-back mutation
// never reaches the legacy system.
func (s *storeService) syncAfterCommit(ctx context.Context, action shared.LegacyStoreSyncAction, snapshot store.Store) {
	payload := shared.LegacyStoreSyncPayload{
		Action:                  action,
		StoreID:                 snapshot.ID,
		Name:                    snapshot.Name,
		QuantityProductsInStock: snapshot.QuantityProductsInStock,
	}

	database.AfterCommit(ctx, func() {
		// The request context may already be done by the time the hook runs.
		if err := s.legacy.EnqueueLegacyStoreSync(context.WithoutCancel(ctx), payload); err != nil {
			logger.Error("failed to enqueue legacy store sync", err)
		}
	})
}
