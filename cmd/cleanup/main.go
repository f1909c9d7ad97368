// Command cleanup removes stored lookups that have not been refreshed within
// the configured retention period, and optionally flushes the page cache.
// It is intended to be invoked by an external cron job, not as an in-process
// goroutine.
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

	"github.com/heartmarshall/wikiparse/internal/adapter/cache"
	"github.com/heartmarshall/wikiparse/internal/adapter/postgres"
	"github.com/heartmarshall/wikiparse/internal/adapter/postgres/lookup"
	"github.com/heartmarshall/wikiparse/internal/app"
	"github.com/heartmarshall/wikiparse/internal/config"
)

func main() {
	flushCache := flag.Bool("flush-cache", false, "also delete every cached page")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if cfg.Database.Enabled {
		if err := pruneLookups(ctx, cfg, logger); err != nil {
			logger.Error("prune lookups failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	} else {
		logger.Info("database disabled, nothing to prune")
	}

	if *flushCache && cfg.Cache.Enabled {
		if err := flushPages(ctx, cfg, logger); err != nil {
			logger.Error("flush cache failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
}

func pruneLookups(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := lookup.New(pool)
	txm := postgres.NewTxManager(pool)
	threshold := time.Now().Add(-cfg.Lookup.Retention)

	var deleted int64
	err = txm.RunInTx(ctx, func(ctx context.Context) error {
		deleted, err = repo.DeleteOlderThan(ctx, threshold)
		return err
	})
	if err != nil {
		return err
	}

	logger.Info("prune lookups completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
	return nil
}

func flushPages(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	rdb, err := cache.NewClient(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	defer rdb.Close()

	removed, err := cache.NewPageCache(rdb, cfg.Cache.TTL, logger).Invalidate(ctx)
	if err != nil {
		return err
	}

	logger.Info("page cache flushed", slog.Int64("removed", removed))
	return nil
}
