// Package di はアプリケーションのコンポーネントを生成するファクトリーを提供します。
package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"stock_sentiment/internal/feature/sentiment/adapters/cohere"
	"stock_sentiment/internal/feature/sentiment/adapters/gemini"
	"stock_sentiment/internal/feature/sentiment/adapters/openai"
	"stock_sentiment/internal/feature/sentiment/usecase"
	"stock_sentiment/internal/platform/cache"
	"stock_sentiment/internal/platform/config"
	infrahttp "stock_sentiment/internal/platform/http"
)

// modelGateway は接続先のモデル名を返す Gateway です。
type modelGateway interface {
	usecase.Gateway
	Model() string
}

// NewGateway は cfg.LLM.Provider で選択された補完ゲートウェイを生成します。
// キャッシュが有効な場合は CachingGateway でラップします（rdb が nil ならプロセス内キャッシュ）。
// 保存対象は usecase.CacheableReply が受け付ける応答のみです。
// 2番目の戻り値は解決済みのモデル名です。
func NewGateway(ctx context.Context, cfg *config.Config, rdb *redis.Client) (usecase.Gateway, string, error) {
	gw, err := newProviderGateway(ctx, cfg.LLM)
	if err != nil {
		return nil, "", err
	}
	model := gw.Model()

	if !cfg.Cache.Enabled {
		return gw, model, nil
	}
	backend := "memory"
	if rdb != nil {
		backend = "redis"
	}
	slog.Info("completion cache enabled", "backend", backend, "ttl", cfg.Cache.TTL)
	return cache.NewCachingGateway(rdb, cfg.Cache.TTL, gw, cache.DefaultNamespace, model, usecase.CacheableReply), model, nil
}

func newProviderGateway(ctx context.Context, cfg config.LLM) (modelGateway, error) {
	// クライアントのタイムアウトは呼び出しごとの期限より長くし、contextの期限を先に発火させる
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout + cfg.Timeout/2)

	switch cfg.Provider {
	case config.ProviderOpenAI:
		return openai.NewOpenAIGateway(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.Model, httpClient)
	case config.ProviderCohere:
		return cohere.NewCohereGateway(cfg.CohereAPIKey, cfg.Model, httpClient)
	case config.ProviderGemini:
		return gemini.NewGeminiGateway(ctx, cfg.GeminiAPIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
