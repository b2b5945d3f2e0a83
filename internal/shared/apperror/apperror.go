// Package apperror is the canonical business-error taxonomy. Services return
// exactly one of these kinds per failure; translating a kind into an HTTP
// status is the handler layer's job, never the service's.
package apperror

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeValidation                   Code = "VALIDATION_ERROR"
	CodeNotFound                     Code = "NOT_FOUND"
	CodeAlreadyExists                Code = "ALREADY_EXISTS"
	CodeAlreadyArchived              Code = "ALREADY_ARCHIVED"
	CodeNotProvided                  Code = "NOT_PROVIDED"
	CodeCapacityBelowStock           Code = "CAPACITY_BELOW_STOCK"
	CodeCapacityBelowExistingStock   Code = "CAPACITY_BELOW_EXISTING_STOCK"
	CodeCapacityExceedsLocationLimit Code = "CAPACITY_EXCEEDS_LOCATION_LIMIT"
	CodeLocationCapacityExceeded     Code = "LOCATION_CAPACITY_EXCEEDED"
	CodeMaxWarehousesReached         Code = "MAX_WAREHOUSES_REACHED"
	CodeStockMismatch                Code = "STOCK_MISMATCH"
	CodeMaxWarehousesPerStoreProduct Code = "MAX_WAREHOUSES_PER_STORE_PRODUCT"
	CodeMaxWarehousesPerStore        Code = "MAX_WAREHOUSES_PER_STORE"
	CodeMaxProductsPerWarehouse      Code = "MAX_PRODUCTS_PER_WAREHOUSE"

	// CodeTechnical marks unexpected lower-layer failures (a repository or
	// gateway fault). These propagate unmodified and are never reinterpreted
	// as one of the business kinds above.
	CodeTechnical Code = "TECHNICAL_ERROR"
)

type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Technical wraps an infrastructure fault without reclassifying it.
func Technical(msg string, err error) *Error {
	return &Error{Code: CodeTechnical, Message: msg, Err: err}
}

// CodeOf extracts the taxonomy code of err, or CodeTechnical when err is not
// a classified application error.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeTechnical
}

func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
