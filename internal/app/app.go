package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mileusna/crontab"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/sitedefects-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitedefects-backend/internal/adapter/postgres/attachment"
	"github.com/heartmarshall/sitedefects-backend/internal/adapter/postgres/comment"
	defectrepo "github.com/heartmarshall/sitedefects-backend/internal/adapter/postgres/defect"
	"github.com/heartmarshall/sitedefects-backend/internal/adapter/postgres/history"
	projectrepo "github.com/heartmarshall/sitedefects-backend/internal/adapter/postgres/project"
	refdatarepo "github.com/heartmarshall/sitedefects-backend/internal/adapter/postgres/refdata"
	reportrepo "github.com/heartmarshall/sitedefects-backend/internal/adapter/postgres/report"
	userrepo "github.com/heartmarshall/sitedefects-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/sitedefects-backend/internal/config"
	"github.com/heartmarshall/sitedefects-backend/internal/domain"
	"github.com/heartmarshall/sitedefects-backend/internal/service/audit"
	"github.com/heartmarshall/sitedefects-backend/internal/service/defect"
	"github.com/heartmarshall/sitedefects-backend/internal/service/project"
	"github.com/heartmarshall/sitedefects-backend/internal/service/refdata"
	"github.com/heartmarshall/sitedefects-backend/internal/service/report"
	"github.com/heartmarshall/sitedefects-backend/internal/service/user"
	"github.com/heartmarshall/sitedefects-backend/internal/transport/rest"
)

// cleanupTimeout bounds one run of the report retention job.
const cleanupTimeout = 5 * time.Minute

// App holds the wired services of the defect tracker. Services are exported
// for the commands and for in-process callers embedding the tracker.
type App struct {
	cfg  config.Config
	log  *slog.Logger
	pool *pgxpool.Pool

	Refs     *domain.ReferenceData
	RefData  *refdata.Service
	Users    *user.Service
	Projects *project.Service
	Defects  *defect.Service
	Reports  *report.Service
	History  *audit.History

	handler http.Handler
}

// New connects to the database, loads reference data and wires every
// service. The caller owns the returned App and must Close it.
func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}

	a, err := newWithPool(ctx, cfg, log, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return a, nil
}

func newWithPool(ctx context.Context, cfg config.Config, log *slog.Logger, pool *pgxpool.Pool) (*App, error) {
	tx := postgres.NewTxManagerFromConfig(pool, cfg.Database)

	refSvc := refdata.NewService(log, refdatarepo.New(pool), tx)
	refs, err := refSvc.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reference data: %w", err)
	}

	users := userrepo.New(pool)
	historyRepo := history.New(pool)
	recorder := audit.NewRecorder(log, historyRepo, tx)

	a := &App{
		cfg:      cfg,
		log:      log,
		pool:     pool,
		Refs:     refs,
		RefData:  refSvc,
		Users:    user.NewService(log, users, tx, refs),
		Projects: project.NewService(log, projectrepo.New(pool), tx),
		Defects: defect.NewService(log,
			defectrepo.New(pool),
			comment.New(pool),
			attachment.New(pool),
			users,
			recorder,
			tx,
			refs,
			cfg.Attachments,
		),
		Reports: report.NewService(log, reportrepo.New(pool), tx, cfg.Reports),
		History: audit.NewHistory(historyRepo),
	}
	a.handler = rest.NewRouter(log, rest.NewHealthHandler(pool, refs, BuildVersion()))
	return a, nil
}

// Handler returns the operational HTTP handler.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Close releases the database pool.
func (a *App) Close() {
	a.pool.Close()
}

// Serve runs the operational HTTP server and the retention job until ctx is
// cancelled, then shuts both down gracefully.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		a.log.Info("http server stopped")
		return nil
	})

	g.Go(func() error {
		return a.runRetention(gctx)
	})

	return g.Wait()
}

// runRetention schedules report cleanup on the configured cron expression.
// An empty schedule disables the job.
func (a *App) runRetention(ctx context.Context) error {
	schedule := a.cfg.Reports.CleanupSchedule
	if schedule == "" {
		a.log.Info("report retention job disabled")
		return nil
	}

	ctab := crontab.New()
	err := ctab.AddJob(schedule, func() {
		jobCtx, cancel := context.WithTimeout(ctx, cleanupTimeout)
		defer cancel()
		if _, err := a.Reports.Cleanup(jobCtx); err != nil {
			a.log.Error("report retention failed", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		ctab.Shutdown()
		return fmt.Errorf("schedule report retention %q: %w", schedule, err)
	}
	a.log.Info("report retention scheduled",
		slog.String("schedule", schedule),
		slog.Int("retention_days", a.cfg.Reports.RetentionDays),
	)

	<-ctx.Done()
	ctab.Shutdown()
	return nil
}

// Run is the server entry point: it loads configuration, wires the App and
// serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(ctx, *cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}
