// Command migrate applies the embedded database migrations.
//
// Usage:
//
//	migrate [up|down|status]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/sitedefects-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitedefects-backend/internal/app"
	"github.com/heartmarshall/sitedefects-backend/internal/config"
)

func main() {
	flag.Parse()
	direction := postgres.MigrateUp
	if flag.NArg() > 0 {
		direction = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := postgres.Migrate(ctx, cfg.Database.DSN, direction, logger); err != nil {
		logger.Error("migration failed",
			slog.String("direction", direction),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
}
