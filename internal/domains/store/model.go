package store

// Store is a retail outlet that can be assigned warehouses for fulfilment.
type Store struct {
	ID                      int64  `json:"id"`
	Name                    string `json:"name"`
	QuantityProductsInStock int    `json:"quantityProductsInStock"`
}
