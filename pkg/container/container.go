package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"petregistry-backend/internal/config"
	infraCache "petregistry-backend/internal/infrastructure/cache"
	"petregistry-backend/internal/infrastructure/database"
	"petregistry-backend/internal/infrastructure/queue"
	"petregistry-backend/internal/infrastructure/storage"
	"petregistry-backend/pkg/cache"

	petHandler "petregistry-backend/internal/domains/pet/handler"
	petRepo "petregistry-backend/internal/domains/pet/repository"
	petService "petregistry-backend/internal/domains/pet/service"
)

// Container holds the application dependency graph.
// Initialization order: config -> infrastructure -> repositories ->
// services -> handlers.
type Container struct {
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	Storage     *storage.MinIOStorage
	QueueClient *queue.Client

	PetRepo    petRepo.Repository
	PetService petService.Service
	PetHandler *petHandler.PetHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	// Config depends on nothing, load it first.
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("[Container] Config loaded (environment: %s)", cfg.App.Environment)

	// Database
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
	log.Println("[Container] Database connected")

	// Redis cache. Failure is non-critical: the repository falls back to
	// the database on every cache error.
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Printf("[Container] Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("[Container] Redis connected")
		}
	}
	c.Cache = redisCache

	// Object storage
	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO, cfg.Storage.PublicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage
	log.Println("[Container] Object storage ready")

	// Task queue client (shares the cache Redis instance)
	c.QueueClient = queue.NewClient(cfg.Redis.Host)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Println("[Container] Initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	c.PetRepo = petRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
}

func (c *Container) initServices() {
	presignExpiry := time.Duration(c.Config.Storage.PresignExpiryMinutes) * time.Minute

	c.PetService = petService.NewPetService(
		c.PetRepo,
		c.Storage,
		c.QueueClient,
		presignExpiry,
	)
}

func (c *Container) initHandlers() {
	c.PetHandler = petHandler.NewPetHandler(c.PetService, c.PetRepo)
}

// Cleanup releases resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("[Container] Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("[Container] Failed to close Redis: %v", err)
			}
		}
	}

	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			log.Printf("[Container] Failed to close queue client: %v", err)
		}
	}
}
