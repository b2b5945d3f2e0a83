package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fulfilment-backend/internal/shared/middleware"
	"fulfilment-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupWarehouseRoutes(v1, c)
		setupStoreRoutes(v1, c)
		setupProductRoutes(v1, c)
		setupFulfilmentRoutes(v1, c)
	}

	return router
}

func setupWarehouseRoutes(v1 *gin.RouterGroup, c *container.Container) {
	warehouse := v1.Group("/warehouse")
	{
		warehouse.GET("", c.WarehouseHandler.List)
		warehouse.POST("", c.WarehouseHandler.Create)
		warehouse.GET("/:businessUnitCode", c.WarehouseHandler.Get)
		warehouse.DELETE("/:businessUnitCode", c.WarehouseHandler.Archive)
		warehouse.POST("/:businessUnitCode/replacement", c.WarehouseHandler.Replace)
	}
}

func setupStoreRoutes(v1 *gin.RouterGroup, c *container.Container) {
	store := v1.Group("/store")
	{
		store.GET("", c.StoreHandler.List)
		store.POST("", c.StoreHandler.Create)
		store.GET("/:id", c.StoreHandler.Get)
		store.PUT("/:id", c.StoreHandler.Update)
		store.PATCH("/:id", c.StoreHandler.Patch)
		store.DELETE("/:id", c.StoreHandler.Delete)
	}
}

func setupProductRoutes(v1 *gin.RouterGroup, c *container.Container) {
	product := v1.Group("/product")
	{
		product.GET("", c.ProductHandler.List)
		product.POST("", c.ProductHandler.Create)
		product.GET("/:id", c.ProductHandler.Get)
		product.PUT("/:id", c.ProductHandler.Update)
		product.DELETE("/:id", c.ProductHandler.Delete)
	}
}

func setupFulfilmentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	fulfilment := v1.Group("/fulfilment")
	{
		fulfilment.GET("/stores/:storeId", c.FulfilmentHandler.ListByStore)
		fulfilment.POST(
			"/stores/:storeId/products/:productId/warehouses/:businessUnitCode",
			c.FulfilmentHandler.Assign,
		)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		redisStatus := "ok"
		if appCtx.Redis == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Redis.HealthCheck(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
				// Redis only degrades the location cache, not the API.
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		status := http.StatusOK
		if health["status"] != "ok" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, health)
	}
}
