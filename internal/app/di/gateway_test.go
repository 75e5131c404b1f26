package di

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_sentiment/internal/feature/sentiment/adapters/cohere"
	"stock_sentiment/internal/feature/sentiment/adapters/openai"
	"stock_sentiment/internal/platform/cache"
	"stock_sentiment/internal/platform/config"
)

func testConfig(provider string) *config.Config {
	return &config.Config{
		LLM: config.LLM{
			Provider:     provider,
			OpenAIAPIKey: "sk-test",
			CohereAPIKey: "co-test",
			Timeout:      time.Second,
			Concurrency:  1,
		},
		Cache: config.Cache{TTL: time.Minute},
	}
}

// TestNewGateway_Provider はプロバイダーごとに対応するゲートウェイとモデル名が返ることを検証します。
func TestNewGateway_Provider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		provider  string
		model     string
		wantModel string
		check     func(t *testing.T, gw any)
	}{
		{
			name:      "openai default model",
			provider:  config.ProviderOpenAI,
			wantModel: openai.DefaultModel,
			check: func(t *testing.T, gw any) {
				assert.IsType(t, &openai.OpenAIGateway{}, gw)
			},
		},
		{
			name:      "cohere configured model",
			provider:  config.ProviderCohere,
			model:     "command-r-plus",
			wantModel: "command-r-plus",
			check: func(t *testing.T, gw any) {
				assert.IsType(t, &cohere.CohereGateway{}, gw)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig(tt.provider)
			cfg.LLM.Model = tt.model

			gw, model, err := NewGateway(context.Background(), cfg, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantModel, model)
			tt.check(t, gw)
		})
	}
}

// TestNewGateway_CacheEnabled はキャッシュ有効時に CachingGateway でラップされることを検証します。
func TestNewGateway_CacheEnabled(t *testing.T) {
	t.Parallel()

	cfg := testConfig(config.ProviderOpenAI)
	cfg.Cache.Enabled = true

	gw, _, err := NewGateway(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &cache.CachingGateway{}, gw)
}

func TestNewGateway_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{name: "unknown provider", cfg: testConfig("mistral")},
		{
			name: "missing openai key",
			cfg: func() *config.Config {
				c := testConfig(config.ProviderOpenAI)
				c.LLM.OpenAIAPIKey = ""
				return c
			}(),
		},
		{
			name: "missing cohere key",
			cfg: func() *config.Config {
				c := testConfig(config.ProviderCohere)
				c.LLM.CohereAPIKey = ""
				return c
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gw, _, err := NewGateway(context.Background(), tt.cfg, nil)
			require.Error(t, err)
			assert.Nil(t, gw)
		})
	}
}
