package database

import (
	"context"
	"fmt"
	"hash/fnv"
)

// Lock namespaces for pg_advisory_xact_lock. Keeping them distinct means a
// location lock never collides with a store-product lock on the same hash.
const (
	LockSpaceWarehouseLocation = int32(1)
	LockSpaceFulfilment        = int32(2)
)

// LockKey hashes an arbitrary string identifier into the int32 keyspace of
// Postgres advisory locks.
func LockKey(identifier string) int32 {
	h := fnv.New32a()
	h.Write([]byte(identifier))
	return int32(h.Sum32())
}

// AdvisoryXactLock takes a transaction-scoped advisory lock. It blocks until
// the lock is granted and releases automatically at commit or rollback.
// Countings guarded by the same (space, key) pair are therefore serialized.
func AdvisoryXactLock(ctx context.Context, db Querier, space, key int32) error {
	if _, err := db.Exec(ctx, "SELECT pg_advisory_xact_lock($1, $2)", space, key); err != nil {
		return fmt.Errorf("failed to acquire advisory lock (%d,%d): %w", space, key, err)
	}
	return nil
}
