package product

import "fulfilment-backend/internal/shared/apperror"

func ErrValidation(msg string) error {
	return apperror.New(apperror.CodeValidation, "%s", msg)
}

func ErrNotFound(id int64) error {
	return apperror.New(apperror.CodeNotFound, "no product with id %d", id)
}

func ErrNameTaken(name string) error {
	return apperror.New(apperror.CodeAlreadyExists, "a product named %q already exists", name)
}
