package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/customer-search/internal/storage/factory"
	"github.com/DjordjeVuckovic/customer-search/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type CustomersApiConfig struct {
	StorageConfig factory.StorageConfig
	SeedPath      string
}

func (as *AppConfig) Load() (*CustomersApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/customers_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &CustomersApiConfig{
		StorageConfig: *storageCfg,
		SeedPath:      os.Getenv("SEED_PATH"),
	}, nil
}
