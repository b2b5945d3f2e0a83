package shared

// Asynq task types and queues. One queue per concern keeps the legacy sync
// isolated from anything added later.
const (
	TypeLegacyStoreSync = "legacy:store_sync"

	QueueLegacy = "legacy"
)

// LegacyStoreSyncAction tells the worker which legacy operation to mirror.
type LegacyStoreSyncAction string

const (
	LegacyStoreCreated LegacyStoreSyncAction = "created"
	LegacyStoreUpdated LegacyStoreSyncAction = "updated"
	LegacyStoreDeleted LegacyStoreSyncAction = "deleted"
)

// LegacyStoreSyncPayload is the snapshot of a store taken at commit time.
// The worker must not re-read the row: the legacy system receives the state
// the committed transaction produced, not whatever is current by the time
// the job runs.
type LegacyStoreSyncPayload struct {
	Action                  LegacyStoreSyncAction `json:"action"`
	StoreID                 int64                 `json:"storeId"`
	Name                    string                `json:"name"`
	QuantityProductsInStock int                   `json:"quantityProductsInStock"`
}
