package store

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateRequest carries an optional ID only so that a client supplying one
// can be rejected; new stores are always server-numbered.
type CreateRequest struct {
	ID                      *int64 `json:"id"`
	Name                    string `json:"name"`
	QuantityProductsInStock int    `json:"quantityProductsInStock"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Nil.Error("id must not be set, it is assigned by the server")),
		validation.Field(&r.QuantityProductsInStock, validation.Min(0).Error("quantityProductsInStock must not be negative")),
	)
}

// UpdateRequest is the body of both full updates and partial updates. On a
// partial update a zero QuantityProductsInStock means "leave unchanged".
type UpdateRequest struct {
	Name                    string `json:"name"`
	QuantityProductsInStock int    `json:"quantityProductsInStock"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.QuantityProductsInStock, validation.Min(0).Error("quantityProductsInStock must not be negative")),
	)
}
