package model

import "fulfilment-backend/internal/shared/apperror"

func ErrValidation(msg string) error {
	return apperror.New(apperror.CodeValidation, "%s", msg)
}

func ErrInvalidLocation(identifier string) error {
	return apperror.New(apperror.CodeValidation, "location %q does not exist", identifier)
}

func ErrNotProvided() error {
	return apperror.New(apperror.CodeNotProvided, "business unit code was not provided")
}

func ErrNotFound(code string) error {
	return apperror.New(apperror.CodeNotFound, "no active warehouse with business unit code %q", code)
}

func ErrAlreadyExists(code string) error {
	return apperror.New(apperror.CodeAlreadyExists, "business unit code %q is already in use", code)
}

func ErrAlreadyArchived(code string) error {
	return apperror.New(apperror.CodeAlreadyArchived, "warehouse %q is already archived", code)
}

func ErrCapacityBelowStock() error {
	return apperror.New(apperror.CodeCapacityBelowStock, "capacity must not be lower than stock")
}

func ErrCapacityBelowExistingStock(capacity, stock int) error {
	return apperror.New(apperror.CodeCapacityBelowExistingStock,
		"capacity %d does not cover the current stock of %d", capacity, stock)
}

func ErrCapacityExceedsLocationLimit(identifier string) error {
	return apperror.New(apperror.CodeCapacityExceedsLocationLimit,
		"capacity exceeds the maximum capacity of location %q", identifier)
}

func ErrLocationCapacityExceeded(identifier string) error {
	return apperror.New(apperror.CodeLocationCapacityExceeded,
		"location %q cannot hold the requested capacity", identifier)
}

func ErrMaxWarehousesReached(identifier string) error {
	return apperror.New(apperror.CodeMaxWarehousesReached,
		"location %q already holds its maximum number of warehouses", identifier)
}

func ErrStockMismatch(requested, current int) error {
	return apperror.New(apperror.CodeStockMismatch,
		"stock %d does not match the current stock of %d", requested, current)
}
