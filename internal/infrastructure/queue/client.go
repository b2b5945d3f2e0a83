package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"fulfilment-backend/internal/shared"
)

// Client enqueues background tasks. The API process owns one instance; the
// worker process consumes the queues.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, password string, db int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: password,
			DB:       db,
		}),
	}
}

// EnqueueLegacyStoreSync schedules a legacy-system export for a committed
// store mutation. Retries are left to asynq; the payload is a snapshot, so
// replaying it is safe.
func (c *Client) EnqueueLegacyStoreSync(ctx context.Context, payload shared.LegacyStoreSyncPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal legacy sync payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeLegacyStoreSync, data)

	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueLegacy),
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue legacy store sync: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
