// Package main applies or rolls back the article schema.
// Usage: article-desk-migrate [up|down]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"article-desk/internal/config"
	"article-desk/internal/infra/db"
	"article-desk/internal/observability/logging"
)

func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "Maximum time to connect and migrate")
	flag.Parse()

	direction := "up"
	if flag.NArg() > 0 {
		direction = flag.Arg(0)
	}
	if direction != "up" && direction != "down" {
		fmt.Fprintln(os.Stderr, "Usage: article-desk-migrate [-timeout 30s] [up|down]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	database, err := db.Open(ctx, db.ConnectionConfig{DSN: cfg.DatabaseURL, MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() { _ = database.Close() }()

	migrate := db.MigrateUp
	if direction == "down" {
		migrate = db.MigrateDown
	}
	if err := migrate(database); err != nil {
		logger.Error("migration failed", slog.String("direction", direction), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("migration finished", slog.String("direction", direction))
}
