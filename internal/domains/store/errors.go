package store

import "fulfilment-backend/internal/shared/apperror"

func ErrValidation(msg string) error {
	return apperror.New(apperror.CodeValidation, "%s", msg)
}

func ErrNotFound(id int64) error {
	return apperror.New(apperror.CodeNotFound, "no store with id %d", id)
}
