// Command seeder fills a database with demo construction sites: a manager,
// engineers, projects with stages, and defects at various lifecycle points.
// It is intended for local development and demos, not production.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        report what would be written without writing
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/sitedefects-backend/internal/app"
	"github.com/heartmarshall/sitedefects-backend/internal/app/seeder"
	"github.com/heartmarshall/sitedefects-backend/internal/config"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "report what would be written without writing")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	a, err := app.New(ctx, *appCfg, logger)
	if err != nil {
		logger.Error("init", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer a.Close()

	pipeline := seeder.NewPipeline(logger, a.Users, a.Projects, a.Defects, *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("seeder failed", slog.String("error", err.Error()))
		a.Close()
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("seeder completed with errors")
		a.Close()
		os.Exit(1)
	}

	logger.Info("seeder completed successfully")
}
