package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"stock_sentiment/internal/app/di"
	"stock_sentiment/internal/app/router"
	"stock_sentiment/internal/feature/sentiment/adapters/mocknews"
	sentimenthandler "stock_sentiment/internal/feature/sentiment/transport/handler"
	"stock_sentiment/internal/feature/sentiment/usecase"
	"stock_sentiment/internal/platform/config"
	healthhandler "stock_sentiment/internal/platform/http/handler"
	"stock_sentiment/internal/platform/logger"
	infraredis "stock_sentiment/internal/platform/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	slog.SetDefault(logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis
	var rdb *redisv9.Client
	if cfg.Cache.Enabled && cfg.Redis.Host != "" {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
			slog.Warn("Redis unavailable. Falling back to in-process completion cache.", "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Gateway
	gateway, model, err := di.NewGateway(ctx, cfg, rdb)
	if err != nil {
		return err
	}
	slog.Info("LLM gateway ready", "provider", cfg.LLM.Provider, "model", model)

	// Usecase
	sentimentUC := usecase.NewSentimentUsecase(mocknews.NewSource(nil, nil), gateway, usecase.Options{
		Timeout:     cfg.LLM.Timeout,
		Concurrency: cfg.LLM.Concurrency,
	})

	// Handler
	sentimentH := sentimenthandler.NewSentimentHandler(sentimentUC)
	health := healthhandler.Health(healthhandler.BuildInfo{Provider: cfg.LLM.Provider, Model: model})

	// ルータ生成
	r := router.NewRouter(sentimentH, health, cfg.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down server", "timeout", shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
