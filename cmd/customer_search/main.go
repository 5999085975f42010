package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/customer-search/internal/cli"
	"github.com/DjordjeVuckovic/customer-search/pkg/config/env"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelWarn)

	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/customer_search/.env"); err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.New().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
