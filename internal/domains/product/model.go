package product

import "github.com/shopspring/decimal"

// Product is an item a store can sell. Price is optional and carried as an
// exact decimal, never a float.
type Product struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Stock       int              `json:"stock"`
}
