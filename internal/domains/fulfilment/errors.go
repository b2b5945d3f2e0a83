package fulfilment

import "fulfilment-backend/internal/shared/apperror"

// Multiplicity caps on fulfilment assignments. Reuse of a warehouse a store
// already knows never counts against the per-store cap.
const (
	MaxWarehousesPerStoreProduct = 2
	MaxWarehousesPerStore        = 3
	MaxProductsPerWarehouse      = 5
)

func ErrValidation(msg string) error {
	return apperror.New(apperror.CodeValidation, "%s", msg)
}

func ErrStoreNotFound(id int64) error {
	return apperror.New(apperror.CodeNotFound, "no store with id %d", id)
}

func ErrProductNotFound(id int64) error {
	return apperror.New(apperror.CodeNotFound, "no product with id %d", id)
}

func ErrWarehouseNotFound(code string) error {
	return apperror.New(apperror.CodeNotFound, "no active warehouse with business unit code %q", code)
}

func ErrAlreadyAssigned(code string) error {
	return apperror.New(apperror.CodeAlreadyExists,
		"warehouse %q already fulfils this product for this store", code)
}

func ErrMaxWarehousesPerStoreProduct() error {
	return apperror.New(apperror.CodeMaxWarehousesPerStoreProduct,
		"this product is already fulfilled from %d warehouses for this store", MaxWarehousesPerStoreProduct)
}

func ErrMaxWarehousesPerStore() error {
	return apperror.New(apperror.CodeMaxWarehousesPerStore,
		"this store is already served by %d warehouses", MaxWarehousesPerStore)
}

func ErrMaxProductsPerWarehouse(code string) error {
	return apperror.New(apperror.CodeMaxProductsPerWarehouse,
		"warehouse %q already fulfils %d products", code, MaxProductsPerWarehouse)
}
