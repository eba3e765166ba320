package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration.
// Populated from environment variables.
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	MinIO   MinIOConfig
	Storage StorageConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool // false for local, true for production
}

// StorageConfig tunes the avatar upload flow.
type StorageConfig struct {
	// PresignExpiryMinutes is how long a presigned PUT URL stays valid.
	PresignExpiryMinutes int
	// PublicBaseURL overrides the URL prefix for confirmed photos.
	// Empty means derive from the MinIO endpoint.
	PublicBaseURL string
	// OrphanMaxAgeHours: uploads older than this with no confirming pet
	// record are swept by the worker.
	OrphanMaxAgeHours int
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Pet Registry API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "petregistry"),
			UseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
		},
		Storage: StorageConfig{
			PresignExpiryMinutes: getEnvInt("STORAGE_PRESIGN_EXPIRY_MINUTES", 15),
			PublicBaseURL:        getEnv("STORAGE_PUBLIC_BASE_URL", ""),
			OrphanMaxAgeHours:    getEnvInt("STORAGE_ORPHAN_MAX_AGE_HOURS", 24),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the config for sanity.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.MinIO.AccessKey == "minioadmin" || c.MinIO.SecretKey == "minioadmin" {
			return fmt.Errorf("MINIO credentials must be set in production")
		}
	}

	if c.Storage.PresignExpiryMinutes <= 0 {
		return fmt.Errorf("STORAGE_PRESIGN_EXPIRY_MINUTES must be positive")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
