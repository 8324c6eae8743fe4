package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tinkertools/tinker-api/internal/config"
	"github.com/tinkertools/tinker-api/internal/redis"
	itemsrepo "github.com/tinkertools/tinker-api/internal/repositories/items"
)

// openStore opens the item store selected by the storage driver
func openStore(ctx context.Context, cfg config.StorageConfig) (itemsrepo.Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		store, err := itemsrepo.NewPostgres(ctx, &itemsrepo.PostgresConfig{DSN: cfg.PostgresDSN})
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		return store, nil
	default:
		store, err := itemsrepo.NewSQLite(ctx, &itemsrepo.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return store, nil
	}
}

// connectRedis connects to the configured Redis deployment
func connectRedis(ctx context.Context, cfg config.RedisConfig) (redis.Client, error) {
	client, err := redis.Connect(ctx,
		redis.Endpoints{Addrs: cfg.Addrs, MasterName: cfg.MasterName},
		&redis.Options{
			Password: cfg.Password,
			DB:       cfg.DB,
			UseTLS:   cfg.UseTLS,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	slog.InfoContext(ctx, "Connected to redis", "addrs", cfg.Addrs)
	return client, nil
}
