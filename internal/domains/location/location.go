package location

import "context"

// Location is reference data describing a physical site where warehouses
// may be opened. Rows are seeded by migration and never written at runtime.
type Location struct {
	Identifier            string `json:"identifier"`
	MaxNumberOfWarehouses int    `json:"maxNumberOfWarehouses"`
	MaxCapacity           int    `json:"maxCapacity"`
}

// Resolver looks up a location by its identifier. A blank or unknown
// identifier resolves to (nil, nil); errors are reserved for technical
// failures.
type Resolver interface {
	Resolve(ctx context.Context, identifier string) (*Location, error)
}
