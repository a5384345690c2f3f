package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "article-desk/docs" // swagger docs
	"article-desk/internal/common/pagination"
	"article-desk/internal/config"
	pgRepo "article-desk/internal/infra/adapter/persistence/postgres"
	"article-desk/internal/infra/db"
	"article-desk/internal/infra/media"
	"article-desk/internal/observability/logging"
	"article-desk/internal/observability/tracing"
	"article-desk/internal/resilience/retry"

	artUC "article-desk/internal/usecase/article"

	hhttp "article-desk/internal/handler/http"
	harticle "article-desk/internal/handler/http/article"
	"article-desk/internal/handler/http/requestid"
)

// @title           Article Desk API
// @version         1.0
// @description     記事レコード管理 API
// @description     記事の作成・更新・参照・一覧とカテゴリナビゲーションを提供します。

// @BasePath  /

const serviceName = "article-desk"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	tp := tracing.NewProvider(serviceName, cfg.Version)
	tracing.Install(tp)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database := initDatabase(ctx, logger, cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()
	go db.ReportStats(ctx, database, 15*time.Second)

	mediaLookup := initMedia(logger, cfg)
	handler := setupServer(logger, cfg, database, mediaLookup)

	runServer(ctx, logger, cfg, handler)
}

// initDatabase opens the pool and creates the schema.
func initDatabase(ctx context.Context, logger *slog.Logger, cfg config.Config) *sql.DB {
	database, err := db.Open(ctx, db.ConnectionConfig{
		DSN:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
	})
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// initMedia returns the HTTP media client, or a no-op lookup when no base URL is configured.
func initMedia(logger *slog.Logger, cfg config.Config) media.Lookup {
	if !cfg.MediaEnabled() {
		logger.Warn("media service not configured; articles report no attachments")
		return media.NewNoop()
	}

	mcfg := media.DefaultConfig(cfg.MediaBaseURL)
	mcfg.Timeout = cfg.MediaTimeout
	mcfg.RequestsPerSecond = cfg.MediaRequestsPerSecond
	mcfg.Burst = cfg.MediaBurst
	mcfg.Retry = retry.MediaLookupConfig()
	mcfg.Retry.MaxAttempts = cfg.MediaMaxAttempts

	logger.Info("media lookups enabled",
		slog.String("base_url", cfg.MediaBaseURL),
		slog.Float64("requests_per_second", cfg.MediaRequestsPerSecond),
		slog.Int("max_attempts", cfg.MediaMaxAttempts))
	return media.NewClient(mcfg, nil)
}

// setupServer wires repositories, the use case and the routes, and applies middleware.
func setupServer(logger *slog.Logger, cfg config.Config, database *sql.DB, mediaLookup media.Lookup) http.Handler {
	paginationCfg := pagination.Config{
		DefaultPage:  1,
		DefaultLimit: cfg.PaginationDefaultLimit,
		MaxLimit:     cfg.PaginationMaxLimit,
	}

	svc := &artUC.Service{
		Repo:       pgRepo.NewArticleRepo(database),
		Users:      pgRepo.NewUserRepo(database, db.DriverName),
		Media:      mediaLookup,
		Logger:     logger,
		Pagination: paginationCfg,
	}

	health := &hhttp.HealthHandler{DB: database, Version: cfg.Version}
	if reporter, ok := mediaLookup.(hhttp.CircuitReporter); ok {
		health.Media = reporter
	}

	mux := http.NewServeMux()
	mux.Handle("GET /health", health)
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	harticle.Register(mux, svc, paginationCfg, logger)

	// Tracing と Metrics は mux の直前に置く (r.Pattern を読むため)
	return hhttp.Chain(mux,
		requestid.Middleware,
		hhttp.Logging(logger),
		hhttp.Recover(logger),
		hhttp.LimitRequestBody(cfg.MaxBodyBytes),
		hhttp.Timeout(cfg.RequestTimeout),
		tracing.Middleware,
		hhttp.MetricsMiddleware,
	)
}

// runServer serves until ctx is canceled, then drains in-flight requests.
func runServer(ctx context.Context, logger *slog.Logger, cfg config.Config, handler http.Handler) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting",
			slog.String("addr", cfg.HTTPAddr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("http server failed", slog.Any("error", err))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
		return
	}
	logger.Info("http server stopped")
}
