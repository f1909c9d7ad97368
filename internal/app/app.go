package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/heartmarshall/wikiparse/internal/adapter/cache"
	"github.com/heartmarshall/wikiparse/internal/adapter/postgres"
	lookuprepo "github.com/heartmarshall/wikiparse/internal/adapter/postgres/lookup"
	"github.com/heartmarshall/wikiparse/internal/adapter/provider/wiktionary"
	"github.com/heartmarshall/wikiparse/internal/config"
	"github.com/heartmarshall/wikiparse/internal/metrics"
	"github.com/heartmarshall/wikiparse/internal/service/lookup"
	"github.com/heartmarshall/wikiparse/internal/transport/middleware"
	"github.com/heartmarshall/wikiparse/internal/transport/rest"
	"github.com/heartmarshall/wikiparse/internal/wikiparse"
	"github.com/heartmarshall/wikiparse/migrations"
)

// Run is the server entry point. It loads configuration, connects the
// optional database and cache, serves HTTP and shuts down gracefully when
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, os.Stderr)
	build := CurrentBuild()

	logger.Info("starting application",
		slog.String("build", build.String()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("default_language", cfg.Parser.DefaultLanguage),
		slog.Bool("database", cfg.Database.Enabled),
		slog.Bool("cache", cfg.Cache.Enabled),
	)

	m := metrics.New()

	var (
		opts   []lookup.Option
		checks []rest.Check
	)

	if cfg.Database.Enabled {
		pool, err := postgres.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer pool.Close()

		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
				return fmt.Errorf("migrate database: %w", err)
			}
		}

		repo := lookuprepo.New(pool)
		checks = append(checks, rest.Check{Name: "database", Pinger: repo})
		if cfg.StoreEnabled() {
			opts = append(opts, lookup.WithStore(repo))
		}
		logger.Info("database connected", slog.Bool("store_enabled", cfg.StoreEnabled()))
	}

	if cfg.Cache.Enabled {
		rdb, err := cache.NewClient(ctx, cfg.Cache)
		if err != nil {
			return fmt.Errorf("connect cache: %w", err)
		}
		defer rdb.Close()

		pages := cache.NewPageCache(rdb, cfg.Cache.TTL, logger)
		checks = append(checks, rest.Check{Name: "cache", Pinger: pages})
		opts = append(opts, lookup.WithCache(pages))
		logger.Info("cache connected", slog.String("addr", cfg.Cache.Addr))
	}

	parser := wikiparse.NewParser(logger)
	parser.SetDefaultLanguage(cfg.Parser.DefaultLanguage)

	svc := lookup.NewService(
		logger,
		wiktionary.NewFetcher(cfg.Wiktionary, logger),
		parser,
		m,
		lookup.Config{Printable: cfg.Wiktionary.Printable, MaxAge: cfg.Lookup.MaxAge},
		opts...,
	)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	handler := newRouter(routerDeps{
		cfg:     cfg,
		log:     logger,
		metrics: m,
		words:   rest.NewWordsHandler(svc, logger),
		health:  rest.NewHealthHandler(build.String(), checks...),
		limiter: limiter,
	})

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, server, cfg.Server, logger)
}

// serve runs the server until ctx is cancelled, then drains in-flight
// requests within the shutdown timeout.
func serve(ctx context.Context, server *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	logger.Info("http server stopped")
	return nil
}
