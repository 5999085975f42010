// Package main serves the customers API: keyset pages of customers filtered
// by a search term, and creation of new customers.
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/DjordjeVuckovic/customer-search/internal/api/router"
	"github.com/DjordjeVuckovic/customer-search/internal/api/server"
	"github.com/DjordjeVuckovic/customer-search/internal/seed"
	"github.com/DjordjeVuckovic/customer-search/internal/storage/factory"
	pkgserver "github.com/DjordjeVuckovic/customer-search/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// The server context is created first so that store setup is also
	// interrupted by a shutdown signal.
	s := server.New(sCfg, nil)
	defer s.Close()

	store, err := factory.NewStore(s.Context(), &cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create customer store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Failed to close customer store", "error", err)
		}
	}()

	if cfg.SeedPath != "" {
		if err := seed.Load(s.Context(), store, cfg.SeedPath); err != nil {
			slog.Error("Failed to seed customers", "path", cfg.SeedPath, "error", err)
			os.Exit(1)
		}
	}

	s.WithHealthChecker(pkgserver.NewPingHealthChecker(store)).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks(server.HealthPath)

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Customers API is running")
	})

	router.NewCustomersRouter(s.Echo, store).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
