// Package legacy mirrors store mutations into the text-file based legacy
// store manager. The format is fixed by the consuming system; do not change
// it without coordinating with the legacy team.
package legacy

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"fulfilment-backend/internal/shared"
)

type StoreManagerGateway struct {
	exportDir string
}

func NewStoreManagerGateway(exportDir string) *StoreManagerGateway {
	return &StoreManagerGateway{exportDir: exportDir}
}

// SyncStore writes the store snapshot in the legacy line format and reads it
// back to verify the write landed. A deleted store has its file removed.
func (g *StoreManagerGateway) SyncStore(payload shared.LegacyStoreSyncPayload) error {
	path := filepath.Join(g.exportDir, fmt.Sprintf("store-%d.txt", payload.StoreID))

	if payload.Action == shared.LegacyStoreDeleted {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove legacy store file %s: %w", path, err)
		}
		return nil
	}

	content := fmt.Sprintf(
		"Store data [ name =%s ] [ items on stock =%d]",
		payload.Name,
		payload.QuantityProductsInStock,
	)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write legacy store file %s: %w", path, err)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to verify legacy store file %s: %w", path, err)
	}
	if !bytes.Equal(written, []byte(content)) {
		return fmt.Errorf("legacy store file %s verification mismatch", path)
	}

	return nil
}
