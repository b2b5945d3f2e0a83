package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fulfilment-backend/internal/domains/location"
	"fulfilment-backend/internal/domains/warehouse/model"
	"fulfilment-backend/internal/domains/warehouse/repository"
	"fulfilment-backend/internal/shared/apperror"
	"fulfilment-backend/pkg/database"
)

type mockWarehouseRepo struct {
	mock.Mock
}

func (m *mockWarehouseRepo) WithTx(tx pgx.Tx) repository.WarehouseRepository {
	return m
}

func (m *mockWarehouseRepo) ListActive(ctx context.Context) ([]model.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Warehouse), args.Error(1)
}

func (m *mockWarehouseRepo) FindActiveByBusinessUnitCode(ctx context.Context, code string) (*model.Warehouse, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Warehouse), args.Error(1)
}

func (m *mockWarehouseRepo) FindLatestByBusinessUnitCode(ctx context.Context, code string) (*model.Warehouse, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Warehouse), args.Error(1)
}

func (m *mockWarehouseRepo) Create(ctx context.Context, w model.Warehouse) (*model.Warehouse, error) {
	args := m.Called(ctx, w)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Warehouse), args.Error(1)
}

func (m *mockWarehouseRepo) Archive(ctx context.Context, code string, at time.Time) error {
	args := m.Called(ctx, code, at)
	return args.Error(0)
}

func (m *mockWarehouseRepo) LockLocation(ctx context.Context, identifier string) error {
	args := m.Called(ctx, identifier)
	return args.Error(0)
}

// mapResolver is an in-memory location resolver for tests.
type mapResolver struct {
	locations map[string]location.Location
}

func (r mapResolver) Resolve(ctx context.Context, identifier string) (*location.Location, error) {
	loc, ok := r.locations[strings.TrimSpace(identifier)]
	if !ok {
		return nil, nil
	}
	return &loc, nil
}

// fakeTxRunner executes the function without a database but with real
// after-commit semantics.
type fakeTxRunner struct{}

func (fakeTxRunner) RunInTx(ctx context.Context, fn database.TxFn) error {
	return database.RunWithAfterCommit(ctx, func(ctx context.Context) error {
		return fn(ctx, nil)
	})
}

func intPtr(v int) *int { return &v }

func testResolver() mapResolver {
	return mapResolver{locations: map[string]location.Location{
		"ZWOLLE-001":    {Identifier: "ZWOLLE-001", MaxNumberOfWarehouses: 2, MaxCapacity: 40},
		"AMSTERDAM-001": {Identifier: "AMSTERDAM-001", MaxNumberOfWarehouses: 5, MaxCapacity: 100},
		"HELMOND-001":   {Identifier: "HELMOND-001", MaxNumberOfWarehouses: 1, MaxCapacity: 40},
	}}
}

func newTestService(repo *mockWarehouseRepo) WarehouseService {
	return NewWarehouseService(repo, testResolver(), fakeTxRunner{})
}

func createRequest() model.Request {
	return model.Request{
		BusinessUnitCode: "MWH.100",
		Location:         "ZWOLLE-001",
		Capacity:         intPtr(10),
		Stock:            intPtr(5),
	}
}

func TestCreateWarehouse(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	repo.On("FindLatestByBusinessUnitCode", mock.Anything, "MWH.100").Return(nil, nil)
	repo.On("LockLocation", mock.Anything, "ZWOLLE-001").Return(nil)
	repo.On("ListActive", mock.Anything).Return([]model.Warehouse{}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(w model.Warehouse) bool {
		return w.BusinessUnitCode == "MWH.100" && w.Capacity == 10 && w.Stock == 5 && w.ArchivedAt == nil
	})).Return(&model.Warehouse{ID: 1, BusinessUnitCode: "MWH.100", Location: "ZWOLLE-001", Capacity: 10, Stock: 5}, nil)

	created, err := svc.Create(context.Background(), createRequest())

	assert.NoError(t, err)
	assert.Equal(t, "MWH.100", created.BusinessUnitCode)
	repo.AssertExpectations(t)
}

func TestCreateWarehouseTrimsIdentifiers(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	repo.On("FindLatestByBusinessUnitCode", mock.Anything, "MWH.100").Return(nil, nil)
	repo.On("LockLocation", mock.Anything, "ZWOLLE-001").Return(nil)
	repo.On("ListActive", mock.Anything).Return([]model.Warehouse{}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(w model.Warehouse) bool {
		return w.BusinessUnitCode == "MWH.100" && w.Location == "ZWOLLE-001"
	})).Return(&model.Warehouse{ID: 1, BusinessUnitCode: "MWH.100"}, nil)

	req := createRequest()
	req.BusinessUnitCode = "  MWH.100  "
	req.Location = " ZWOLLE-001 "

	_, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateWarehouseValidationError(t *testing.T) {
	svc := newTestService(new(mockWarehouseRepo))

	req := createRequest()
	req.Capacity = nil

	_, err := svc.Create(context.Background(), req)
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
}

func TestCreateWarehouseCodeAlreadyUsed(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	// An archived holder of the code still blocks reuse.
	archivedAt := time.Now()
	repo.On("FindLatestByBusinessUnitCode", mock.Anything, "MWH.100").
		Return(&model.Warehouse{BusinessUnitCode: "MWH.100", ArchivedAt: &archivedAt}, nil)

	_, err := svc.Create(context.Background(), createRequest())
	assert.True(t, apperror.IsCode(err, apperror.CodeAlreadyExists))
}

func TestCreateWarehouseUnknownLocation(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	repo.On("FindLatestByBusinessUnitCode", mock.Anything, "MWH.100").Return(nil, nil)

	req := createRequest()
	req.Location = "UNKNOWN-999"

	_, err := svc.Create(context.Background(), req)
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
}

func TestCreateWarehouseCapacityBelowStock(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	repo.On("FindLatestByBusinessUnitCode", mock.Anything, "MWH.100").Return(nil, nil)

	req := createRequest()
	req.Capacity = intPtr(3)
	req.Stock = intPtr(5)

	_, err := svc.Create(context.Background(), req)
	assert.True(t, apperror.IsCode(err, apperror.CodeCapacityBelowStock))
}

func TestCreateWarehouseCapacityExceedsLocationLimit(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	repo.On("FindLatestByBusinessUnitCode", mock.Anything, "MWH.100").Return(nil, nil)

	req := createRequest()
	req.Capacity = intPtr(50)
	req.Stock = intPtr(5)

	_, err := svc.Create(context.Background(), req)
	assert.True(t, apperror.IsCode(err, apperror.CodeCapacityExceedsLocationLimit))
}

func TestCreateWarehouseMaxWarehousesReached(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	repo.On("FindLatestByBusinessUnitCode", mock.Anything, "MWH.100").Return(nil, nil)
	repo.On("LockLocation", mock.Anything, "ZWOLLE-001").Return(nil)
	repo.On("ListActive", mock.Anything).Return([]model.Warehouse{
		{BusinessUnitCode: "MWH.001", Location: "ZWOLLE-001", Capacity: 10},
		{BusinessUnitCode: "MWH.002", Location: "ZWOLLE-001", Capacity: 10},
	}, nil)

	_, err := svc.Create(context.Background(), createRequest())
	assert.True(t, apperror.IsCode(err, apperror.CodeMaxWarehousesReached))
}

func TestCreateWarehouseLocationCapacityExceeded(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	repo.On("FindLatestByBusinessUnitCode", mock.Anything, "MWH.100").Return(nil, nil)
	repo.On("LockLocation", mock.Anything, "ZWOLLE-001").Return(nil)
	// 35 already in use of the 40 maximum; another 10 does not fit.
	repo.On("ListActive", mock.Anything).Return([]model.Warehouse{
		{BusinessUnitCode: "MWH.001", Location: "ZWOLLE-001", Capacity: 35},
	}, nil)

	_, err := svc.Create(context.Background(), createRequest())
	assert.True(t, apperror.IsCode(err, apperror.CodeLocationCapacityExceeded))
}

func TestCreateWarehouseOtherLocationsDoNotCount(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	repo.On("FindLatestByBusinessUnitCode", mock.Anything, "MWH.100").Return(nil, nil)
	repo.On("LockLocation", mock.Anything, "ZWOLLE-001").Return(nil)
	repo.On("ListActive", mock.Anything).Return([]model.Warehouse{
		{BusinessUnitCode: "MWH.012", Location: "AMSTERDAM-001", Capacity: 90},
		{BusinessUnitCode: "MWH.013", Location: "AMSTERDAM-001", Capacity: 5},
	}, nil)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(&model.Warehouse{ID: 1, BusinessUnitCode: "MWH.100"}, nil)

	_, err := svc.Create(context.Background(), createRequest())
	assert.NoError(t, err)
}

func replaceRequest() model.Request {
	return model.Request{
		BusinessUnitCode: "MWH.001",
		Location:         "ZWOLLE-001",
		Capacity:         intPtr(20),
		Stock:            intPtr(5),
	}
}

func activeWarehouse() *model.Warehouse {
	return &model.Warehouse{
		ID:               1,
		BusinessUnitCode: "MWH.001",
		Location:         "ZWOLLE-001",
		Capacity:         10,
		Stock:            5,
		CreatedAt:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestReplaceWarehouse(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	repo.On("FindActiveByBusinessUnitCode", mock.Anything, "MWH.001").Return(activeWarehouse(), nil)
	repo.On("LockLocation", mock.Anything, "ZWOLLE-001").Return(nil)
	repo.On("ListActive", mock.Anything).Return([]model.Warehouse{*activeWarehouse()}, nil)

	var archivedAt time.Time
	repo.On("Archive", mock.Anything, "MWH.001", mock.Anything).
		Run(func(args mock.Arguments) { archivedAt = args.Get(2).(time.Time) }).
		Return(nil)

	var createdAt time.Time
	repo.On("Create", mock.Anything, mock.MatchedBy(func(w model.Warehouse) bool {
		createdAt = w.CreatedAt
		return w.BusinessUnitCode == "MWH.001" && w.Capacity == 20 && w.Stock == 5
	})).Return(&model.Warehouse{ID: 2, BusinessUnitCode: "MWH.001", Capacity: 20, Stock: 5}, nil)

	replacement, err := svc.Replace(context.Background(), replaceRequest())

	assert.NoError(t, err)
	assert.Equal(t, 20, replacement.Capacity)
	// Archival and succession share one instant.
	assert.Equal(t, archivedAt, createdAt)
	repo.AssertExpectations(t)
}

func TestReplaceWarehouseNotFound(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	repo.On("FindActiveByBusinessUnitCode", mock.Anything, "MWH.001").Return(nil, nil)

	_, err := svc.Replace(context.Background(), replaceRequest())
	assert.True(t, apperror.IsCode(err, apperror.CodeNotFound))
}

func TestReplaceWarehouseCapacityBelowExistingStock(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	repo.On("FindActiveByBusinessUnitCode", mock.Anything, "MWH.001").Return(activeWarehouse(), nil)

	req := replaceRequest()
	req.Capacity = intPtr(4)
	req.Stock = intPtr(5)

	_, err := svc.Replace(context.Background(), req)
	assert.True(t, apperror.IsCode(err, apperror.CodeCapacityBelowExistingStock))
}

func TestReplaceWarehouseStockMismatch(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	repo.On("FindActiveByBusinessUnitCode", mock.Anything, "MWH.001").Return(activeWarehouse(), nil)

	req := replaceRequest()
	req.Stock = intPtr(7)

	_, err := svc.Replace(context.Background(), req)
	assert.True(t, apperror.IsCode(err, apperror.CodeStockMismatch))
}

func TestReplaceWarehouseOwnCapacityDoesNotCount(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	// 37 of the 40 maximum is in use, but 35 of it belongs to the warehouse
	// being replaced, so a 38-capacity successor still fits.
	current := activeWarehouse()
	current.Capacity = 35

	repo.On("FindActiveByBusinessUnitCode", mock.Anything, "MWH.001").Return(current, nil)
	repo.On("LockLocation", mock.Anything, "ZWOLLE-001").Return(nil)
	repo.On("ListActive", mock.Anything).Return([]model.Warehouse{
		*current,
		{BusinessUnitCode: "MWH.002", Location: "ZWOLLE-001", Capacity: 2},
	}, nil)
	repo.On("Archive", mock.Anything, "MWH.001", mock.Anything).Return(nil)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(&model.Warehouse{ID: 2, BusinessUnitCode: "MWH.001", Capacity: 38}, nil)

	req := replaceRequest()
	req.Capacity = intPtr(38)

	_, err := svc.Replace(context.Background(), req)
	assert.NoError(t, err)
}

func TestReplaceWarehouseMoveCountsAgainstTarget(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	current := activeWarehouse()

	repo.On("FindActiveByBusinessUnitCode", mock.Anything, "MWH.001").Return(current, nil)
	repo.On("LockLocation", mock.Anything, "AMSTERDAM-001").Return(nil)
	repo.On("ListActive", mock.Anything).Return([]model.Warehouse{
		*current,
		{BusinessUnitCode: "MWH.012", Location: "AMSTERDAM-001", Capacity: 95},
	}, nil)

	req := replaceRequest()
	req.Location = "AMSTERDAM-001"

	_, err := svc.Replace(context.Background(), req)
	assert.True(t, apperror.IsCode(err, apperror.CodeLocationCapacityExceeded))
}

func TestReplaceWarehouseMoveToFullLocation(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	repo.On("FindActiveByBusinessUnitCode", mock.Anything, "MWH.001").Return(activeWarehouse(), nil)
	repo.On("LockLocation", mock.Anything, "HELMOND-001").Return(nil)
	repo.On("ListActive", mock.Anything).Return([]model.Warehouse{
		*activeWarehouse(),
		{BusinessUnitCode: "MWH.050", Location: "HELMOND-001", Capacity: 30},
	}, nil)

	// The target is both full and too small for a 50-capacity warehouse;
	// the count check comes first.
	req := replaceRequest()
	req.Location = "HELMOND-001"
	req.Capacity = intPtr(50)

	_, err := svc.Replace(context.Background(), req)
	assert.True(t, apperror.IsCode(err, apperror.CodeMaxWarehousesReached))
}

func TestReplaceWarehouseStayingIgnoresCountLimit(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	// ZWOLLE-001 already holds its maximum of two warehouses, but one of
	// them is the warehouse being replaced in place.
	repo.On("FindActiveByBusinessUnitCode", mock.Anything, "MWH.001").Return(activeWarehouse(), nil)
	repo.On("LockLocation", mock.Anything, "ZWOLLE-001").Return(nil)
	repo.On("ListActive", mock.Anything).Return([]model.Warehouse{
		*activeWarehouse(),
		{BusinessUnitCode: "MWH.002", Location: "ZWOLLE-001", Capacity: 10},
	}, nil)
	repo.On("Archive", mock.Anything, "MWH.001", mock.Anything).Return(nil)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(&model.Warehouse{ID: 2, BusinessUnitCode: "MWH.001", Capacity: 20}, nil)

	_, err := svc.Replace(context.Background(), replaceRequest())
	assert.NoError(t, err)
}

func TestArchiveWarehouse(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	repo.On("FindLatestByBusinessUnitCode", mock.Anything, "MWH.001").Return(activeWarehouse(), nil)
	repo.On("Archive", mock.Anything, "MWH.001", mock.Anything).Return(nil)

	archived, err := svc.Archive(context.Background(), "MWH.001")

	assert.NoError(t, err)
	assert.NotNil(t, archived.ArchivedAt)
	assert.Equal(t, model.StatusArchived, archived.Status())
}

func TestArchiveWarehouseNotProvided(t *testing.T) {
	svc := newTestService(new(mockWarehouseRepo))

	_, err := svc.Archive(context.Background(), "   ")
	assert.True(t, apperror.IsCode(err, apperror.CodeNotProvided))
}

func TestArchiveWarehouseAlreadyArchived(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	archivedAt := time.Now()
	closed := activeWarehouse()
	closed.ArchivedAt = &archivedAt

	repo.On("FindLatestByBusinessUnitCode", mock.Anything, "MWH.001").Return(closed, nil)

	_, err := svc.Archive(context.Background(), "MWH.001")
	assert.True(t, apperror.IsCode(err, apperror.CodeAlreadyArchived))
}

func TestArchiveWarehouseUnknownCode(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	repo.On("FindLatestByBusinessUnitCode", mock.Anything, "MWH.999").Return(nil, nil)

	_, err := svc.Archive(context.Background(), "MWH.999")
	assert.True(t, apperror.IsCode(err, apperror.CodeNotFound))
}

func TestGetActiveWarehouse(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	repo.On("FindActiveByBusinessUnitCode", mock.Anything, "MWH.001").Return(activeWarehouse(), nil)

	w, err := svc.GetActive(context.Background(), " MWH.001 ")

	assert.NoError(t, err)
	assert.Equal(t, "MWH.001", w.BusinessUnitCode)
}

func TestGetActiveWarehouseNotFound(t *testing.T) {
	repo := new(mockWarehouseRepo)
	svc := newTestService(repo)

	repo.On("FindActiveByBusinessUnitCode", mock.Anything, "MWH.404").Return(nil, nil)

	_, err := svc.GetActive(context.Background(), "MWH.404")
	assert.True(t, apperror.IsCode(err, apperror.CodeNotFound))
}
