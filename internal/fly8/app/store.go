package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store/cache"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store/drivers/mongo"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store/drivers/postgres"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store/drivers/sqlite"
	"github.com/redis/go-redis/v9"
)

const connectTimeout = 15 * time.Second

// openStore connects the configured driver and brings its schema up to date.
func openStore(ctx context.Context, cfg Config) (store.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	var (
		st  store.Store
		err error
	)
	switch cfg.StoreDriver {
	case DriverSQLite:
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DatabaseFile)
		st, err = sqlite.NewStore(dsn)
	case DriverPostgres:
		st, err = postgres.NewStore(ctx, cfg.PostgresDSN)
	case DriverMongo:
		st, err = mongo.NewStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		err = fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s store: %w", cfg.StoreDriver, err)
	}

	if err := st.ApplyMigrations(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to apply %s migrations: %w", cfg.StoreDriver, err)
	}
	return st, nil
}

// openCache returns nil when no redis address is configured. An unreachable
// redis is logged and kept: the cache falls back to the store per request.
func openCache(ctx context.Context, cfg Config, logger *slog.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, catalog reads go to the store", "addr", cfg.RedisAddr, "error", err)
	} else {
		logger.Info("catalog cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CatalogCacheTTL)
	}
	return rdb
}

func wrapCache(st store.Store, rdb *redis.Client, ttl time.Duration) store.Store {
	if rdb == nil {
		return st
	}
	return cache.Wrap(st, rdb, ttl)
}
