package main

import (
	"github.com/hibiken/asynq"

	storeJob "fulfilment-backend/internal/domains/store/job"
	"fulfilment-backend/internal/infrastructure/legacy"
	"fulfilment-backend/internal/shared"
)

// HandlerRegistry holds all job handlers.
type HandlerRegistry struct {
	legacyStoreSync *storeJob.LegacySyncHandler
}

func initializeHandlers(cfg *Config) *HandlerRegistry {
	gateway := legacy.NewStoreManagerGateway(cfg.LegacyDir)

	return &HandlerRegistry{
		legacyStoreSync: storeJob.NewLegacySyncHandler(gateway),
	}
}

// RegisterHandlers registers all handlers with the mux.
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeLegacyStoreSync, h.legacyStoreSync.ProcessTask)
}
