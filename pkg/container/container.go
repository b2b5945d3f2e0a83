package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"fulfilment-backend/internal/config"
	"fulfilment-backend/internal/infrastructure/cache"
	"fulfilment-backend/internal/infrastructure/database"
	"fulfilment-backend/internal/infrastructure/queue"
	pkgdb "fulfilment-backend/pkg/database"

	"fulfilment-backend/internal/domains/fulfilment"
	fulfilmentHandler "fulfilment-backend/internal/domains/fulfilment/handler"
	fulfilmentRepo "fulfilment-backend/internal/domains/fulfilment/repository"
	fulfilmentService "fulfilment-backend/internal/domains/fulfilment/service"
	"fulfilment-backend/internal/domains/location"
	locationRepo "fulfilment-backend/internal/domains/location/repository"
	"fulfilment-backend/internal/domains/product"
	productHandler "fulfilment-backend/internal/domains/product/handler"
	productRepo "fulfilment-backend/internal/domains/product/repository"
	productService "fulfilment-backend/internal/domains/product/service"
	"fulfilment-backend/internal/domains/store"
	storeHandler "fulfilment-backend/internal/domains/store/handler"
	storeRepo "fulfilment-backend/internal/domains/store/repository"
	storeService "fulfilment-backend/internal/domains/store/service"
	warehouseHandler "fulfilment-backend/internal/domains/warehouse/handler"
	warehouseRepo "fulfilment-backend/internal/domains/warehouse/repository"
	warehouseService "fulfilment-backend/internal/domains/warehouse/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then repositories, services and handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *cache.RedisClient
	Queue  *queue.Client
	Tx     pkgdb.TxRunner

	LocationResolver location.Resolver
	WarehouseRepo    warehouseRepo.WarehouseRepository
	StoreRepo        store.StoreRepository
	ProductRepo      product.ProductRepository
	FulfilmentRepo   fulfilment.FulfilmentRepository

	WarehouseService  warehouseService.WarehouseService
	StoreService      store.StoreService
	ProductService    product.ProductService
	FulfilmentService fulfilment.FulfilmentService

	WarehouseHandler  *warehouseHandler.WarehouseHandler
	StoreHandler      *storeHandler.StoreHandler
	ProductHandler    *productHandler.ProductHandler
	FulfilmentHandler *fulfilmentHandler.FulfilmentHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("config loaded (environment: %s)", cfg.App.Environment)

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Println("database connected")

	redis := cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redis.Connect(context.Background()); err != nil {
		// Redis only backs the location cache; lookups fall through to
		// Postgres when it is down.
		log.Printf("redis connection failed (non-critical): %v", err)
	} else {
		log.Println("redis connected")
	}
	c.Redis = redis

	c.Queue = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	c.Tx = pkgdb.NewPoolRunner(db.Pool)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Println("container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.LocationResolver = locationRepo.NewResolver(pool, c.Redis)
	c.WarehouseRepo = warehouseRepo.NewWarehouseRepository(pool)
	c.StoreRepo = storeRepo.NewStoreRepository(pool)
	c.ProductRepo = productRepo.NewProductRepository(pool)
	c.FulfilmentRepo = fulfilmentRepo.NewFulfilmentRepository(pool)
}

func (c *Container) initServices() {
	c.WarehouseService = warehouseService.NewWarehouseService(c.WarehouseRepo, c.LocationResolver, c.Tx)
	c.StoreService = storeService.NewStoreService(c.StoreRepo, c.Queue, c.Tx)
	c.ProductService = productService.NewProductService(c.ProductRepo)
	c.FulfilmentService = fulfilmentService.NewFulfilmentService(
		c.FulfilmentRepo,
		c.WarehouseRepo,
		c.StoreRepo,
		c.ProductRepo,
		c.Tx,
	)
}

func (c *Container) initHandlers() {
	c.WarehouseHandler = warehouseHandler.NewWarehouseHandler(c.WarehouseService)
	c.StoreHandler = storeHandler.NewStoreHandler(c.StoreService)
	c.ProductHandler = productHandler.NewProductHandler(c.ProductService)
	c.FulfilmentHandler = fulfilmentHandler.NewFulfilmentHandler(c.FulfilmentService)
}

// Cleanup releases external resources during graceful shutdown.
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Printf("failed to close queue client: %v", err)
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Printf("failed to close redis: %v", err)
		}
	}
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
	}
	log.Println("container cleanup completed")
}
