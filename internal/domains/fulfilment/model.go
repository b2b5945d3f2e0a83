package fulfilment

import "time"

// Assignment records that a warehouse fulfils a product for a store. The
// (store, product, warehouse) triad is unique; the same triad is never
// recorded twice.
type Assignment struct {
	ID          int64     `json:"id"`
	StoreID     int64     `json:"storeId"`
	ProductID   int64     `json:"productId"`
	WarehouseID int64     `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`

	// BusinessUnitCode is the code of the assigned warehouse, resolved for
	// API responses; it is not a column of the fulfilments table.
	BusinessUnitCode string `json:"warehouseBusinessUnitCode"`
}
