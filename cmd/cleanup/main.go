// Command cleanup deletes stored reports older than the configured retention
// period. The server runs the same job on a schedule; this command is for
// deployments that disable it and rely on an external cron instead.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/sitedefects-backend/internal/app"
	"github.com/heartmarshall/sitedefects-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	a, err := app.New(ctx, *cfg, logger)
	if err != nil {
		logger.Error("init", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer a.Close()

	deleted, err := a.Reports.Cleanup(ctx)
	if err != nil {
		logger.Error("report cleanup failed", slog.String("error", err.Error()))
		a.Close()
		os.Exit(1)
	}

	logger.Info("report cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Int("retention_days", cfg.Reports.RetentionDays),
	)
}
