// Package redis は共有Redis接続を開きます。
package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_sentiment/internal/platform/config"
)

// ErrNotConfigured はRedisホストが未設定の場合に返されます。
var ErrNotConfigured = errors.New("redis host not configured")

// NewRedisClient はRedisに接続し、PINGで疎通を確認します。
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	addr := cfg.Addr()
	if addr == "" {
		return nil, ErrNotConfigured
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0,
	})

	// 接続確認
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
