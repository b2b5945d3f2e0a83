package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fulfilment-backend/internal/domains/store"
	"fulfilment-backend/internal/shared"
	"fulfilment-backend/internal/shared/apperror"
	"fulfilment-backend/pkg/database"
)

type mockStoreRepo struct {
	mock.Mock
}

func (m *mockStoreRepo) WithTx(tx pgx.Tx) store.StoreRepository {
	return m
}

func (m *mockStoreRepo) List(ctx context.Context) ([]store.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Store), args.Error(1)
}

func (m *mockStoreRepo) FindByID(ctx context.Context, id int64) (*store.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *mockStoreRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockStoreRepo) Create(ctx context.Context, s store.Store) (*store.Store, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *mockStoreRepo) Update(ctx context.Context, s store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockStoreRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// recordingSyncer collects the payloads the service hands to the queue.
type recordingSyncer struct {
	payloads []shared.LegacyStoreSyncPayload
}

func (r *recordingSyncer) EnqueueLegacyStoreSync(ctx context.Context, payload shared.LegacyStoreSyncPayload) error {
	r.payloads = append(r.payloads, payload)
	return nil
}

type fakeTxRunner struct{}

func (fakeTxRunner) RunInTx(ctx context.Context, fn database.TxFn) error {
	return database.RunWithAfterCommit(ctx, func(ctx context.Context) error {
		return fn(ctx, nil)
	})
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateStoreEnqueuesLegacySync(t *testing.T) {
	repo := new(mockStoreRepo)
	syncer := &recordingSyncer{}
	svc := NewStoreService(repo, syncer, fakeTxRunner{})

	var enqueuedDuringTx bool
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { enqueuedDuringTx = len(syncer.payloads) > 0 }).
		Return(&store.Store{ID: 1, Name: "STORE-ZWOLLE-NOORD", QuantityProductsInStock: 5}, nil)

	created, err := svc.Create(context.Background(), store.CreateRequest{
		Name:                    "STORE-ZWOLLE-NOORD",
		QuantityProductsInStock: 5,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, enqueuedDuringTx, "sync must wait for commit")
	if assert.Len(t, syncer.payloads, 1) {
		assert.Equal(t, shared.LegacyStoreCreated, syncer.payloads[0].Action)
		assert.Equal(t, int64(1), syncer.payloads[0].StoreID)
		assert.Equal(t, 5, syncer.payloads[0].QuantityProductsInStock)
	}
}

func TestCreateStoreRejectsClientSuppliedID(t *testing.T) {
	svc := NewStoreService(new(mockStoreRepo), &recordingSyncer{}, fakeTxRunner{})

	_, err := svc.Create(context.Background(), store.CreateRequest{
		ID:   int64Ptr(42),
		Name: "STORE-ZWOLLE-NOORD",
	})

	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
}

func TestCreateStoreRollbackSkipsLegacySync(t *testing.T) {
	repo := new(mockStoreRepo)
	syncer := &recordingSyncer{}
	svc := NewStoreService(repo, syncer, fakeTxRunner{})

	repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("insert failed"))

	_, err := svc.Create(context.Background(), store.CreateRequest{Name: "STORE-ZWOLLE-NOORD"})

	assert.Error(t, err)
	assert.Empty(t, syncer.payloads)
}

func TestUpdateStore(t *testing.T) {
	repo := new(mockStoreRepo)
	syncer := &recordingSyncer{}
	svc := NewStoreService(repo, syncer, fakeTxRunner{})

	repo.On("FindByID", mock.Anything, int64(1)).
		Return(&store.Store{ID: 1, Name: "OLD", QuantityProductsInStock: 5}, nil)
	repo.On("Update", mock.Anything, store.Store{ID: 1, Name: "NEW", QuantityProductsInStock: 0}).Return(nil)

	updated, err := svc.Update(context.Background(), 1, store.UpdateRequest{Name: "NEW"})

	assert.NoError(t, err)
	// A full update takes the body verbatim, zero included.
	assert.Equal(t, 0, updated.QuantityProductsInStock)
	if assert.Len(t, syncer.payloads, 1) {
		assert.Equal(t, shared.LegacyStoreUpdated, syncer.payloads[0].Action)
	}
}

func TestUpdateStoreRequiresName(t *testing.T) {
	svc := NewStoreService(new(mockStoreRepo), &recordingSyncer{}, fakeTxRunner{})

	_, err := svc.Update(context.Background(), 1, store.UpdateRequest{QuantityProductsInStock: 5})
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
}

func TestUpdateStoreNotFound(t *testing.T) {
	repo := new(mockStoreRepo)
	syncer := &recordingSyncer{}
	svc := NewStoreService(repo, syncer, fakeTxRunner{})

	repo.On("FindByID", mock.Anything, int64(9)).Return(nil, nil)

	_, err := svc.Update(context.Background(), 9, store.UpdateRequest{Name: "NEW"})

	assert.True(t, apperror.IsCode(err, apperror.CodeNotFound))
	assert.Empty(t, syncer.payloads)
}

func TestPatchStoreZeroQuantityKeepsStoredValue(t *testing.T) {
	repo := new(mockStoreRepo)
	syncer := &recordingSyncer{}
	svc := NewStoreService(repo, syncer, fakeTxRunner{})

	repo.On("FindByID", mock.Anything, int64(1)).
		Return(&store.Store{ID: 1, Name: "OLD", QuantityProductsInStock: 5}, nil)
	repo.On("Update", mock.Anything, store.Store{ID: 1, Name: "NEW", QuantityProductsInStock: 5}).Return(nil)

	patched, err := svc.Patch(context.Background(), 1, store.UpdateRequest{Name: "NEW"})

	assert.NoError(t, err)
	assert.Equal(t, 5, patched.QuantityProductsInStock)
}

func TestPatchStoreNonZeroQuantityOverrides(t *testing.T) {
	repo := new(mockStoreRepo)
	syncer := &recordingSyncer{}
	svc := NewStoreService(repo, syncer, fakeTxRunner{})

	repo.On("FindByID", mock.Anything, int64(1)).
		Return(&store.Store{ID: 1, Name: "OLD", QuantityProductsInStock: 5}, nil)
	repo.On("Update", mock.Anything, store.Store{ID: 1, Name: "NEW", QuantityProductsInStock: 8}).Return(nil)

	patched, err := svc.Patch(context.Background(), 1, store.UpdateRequest{Name: "NEW", QuantityProductsInStock: 8})

	assert.NoError(t, err)
	assert.Equal(t, 8, patched.QuantityProductsInStock)
}

func TestDeleteStoreEnqueuesLegacySync(t *testing.T) {
	repo := new(mockStoreRepo)
	syncer := &recordingSyncer{}
	svc := NewStoreService(repo, syncer, fakeTxRunner{})

	repo.On("FindByID", mock.Anything, int64(1)).
		Return(&store.Store{ID: 1, Name: "OLD", QuantityProductsInStock: 5}, nil)
	repo.On("Delete", mock.Anything, int64(1)).Return(nil)

	err := svc.Delete(context.Background(), 1)

	assert.NoError(t, err)
	if assert.Len(t, syncer.payloads, 1) {
		assert.Equal(t, shared.LegacyStoreDeleted, syncer.payloads[0].Action)
	}
}
