package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfilment-backend/internal/shared"
)

type fakeGateway struct {
	synced []shared.LegacyStoreSyncPayload
	err    error
}

func (g *fakeGateway) SyncStore(payload shared.LegacyStoreSyncPayload) error {
	if g.err != nil {
		return g.err
	}
	g.synced = append(g.synced, payload)
	return nil
}

func syncTask(t *testing.T, payload shared.LegacyStoreSyncPayload) *asynq.Task {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return asynq.NewTask(shared.TypeLegacyStoreSync, data)
}

func TestProcessTask(t *testing.T) {
	gateway := &fakeGateway{}
	handler := NewLegacySyncHandler(gateway)

	payload := shared.LegacyStoreSyncPayload{
		Action:                  shared.LegacyStoreUpdated,
		StoreID:                 3,
		Name:                    "STORE-ZWOLLE-NOORD",
		QuantityProductsInStock: 7,
	}

	err := handler.ProcessTask(context.Background(), syncTask(t, payload))

	assert.NoError(t, err)
	require.Len(t, gateway.synced, 1)
	assert.Equal(t, payload, gateway.synced[0])
}

func TestProcessTaskInvalidPayloadSkipsRetry(t *testing.T) {
	handler := NewLegacySyncHandler(&fakeGateway{})

	err := handler.ProcessTask(context.Background(), asynq.NewTask(shared.TypeLegacyStoreSync, []byte("{broken")))

	assert.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestProcessTaskGatewayFailureIsRetryable(t *testing.T) {
	handler := NewLegacySyncHandler(&fakeGateway{err: errors.New("disk full")})

	err := handler.ProcessTask(context.Background(), syncTask(t, shared.LegacyStoreSyncPayload{StoreID: 3}))

	assert.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}
