package product

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	ID          *int64           `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       int              `json:"stock"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Nil.Error("id must not be set, it is assigned by the server")),
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Price, validation.By(nonNegativePrice)),
		validation.Field(&r.Stock, validation.Min(0).Error("stock must not be negative")),
	)
}

type UpdateRequest struct {
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       int              `json:"stock"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Price, validation.By(nonNegativePrice)),
		validation.Field(&r.Stock, validation.Min(0).Error("stock must not be negative")),
	)
}

func nonNegativePrice(value interface{}) error {
	price, ok := value.(*decimal.Decimal)
	if !ok || price == nil {
		return nil
	}
	if price.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
}
