package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"fulfilment-backend/internal/shared"
	"fulfilment-backend/pkg/logger"
)

// LegacyGateway mirrors a store snapshot into the legacy store manager.
type LegacyGateway interface {
	SyncStore(payload shared.LegacyStoreSyncPayload) error
}

type LegacySyncHandler struct {
	gateway LegacyGateway
}

func NewLegacySyncHandler(gateway LegacyGateway) *LegacySyncHandler {
	return &LegacySyncHandler{gateway: gateway}
}

func (h *LegacySyncHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.LegacyStoreSyncPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		// A malformed payload will never become valid, do not retry it.
		return fmt.Errorf("invalid legacy sync payload: %v: %w", err, asynq.SkipRetry)
	}

	if err := h.gateway.SyncStore(payload); err != nil {
		return fmt.Errorf("legacy sync for store %d failed: %w", payload.StoreID, err)
	}

	logger.Info("legacy store sync completed", map[string]interface{}{
		"storeId": payload.StoreID,
		"action":  payload.Action,
	})
	return nil
}
