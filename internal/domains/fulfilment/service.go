package fulfilment

import "context"

type FulfilmentService interface {
	// Assign records that the warehouse identified by businessUnitCode
	// fulfils productID for storeID, enforcing the multiplicity caps.
	Assign(ctx context.Context, storeID, productID int64, businessUnitCode string) (*Assignment, error)
	ListByStore(ctx context.Context, storeID int64) ([]Assignment, error)
}
