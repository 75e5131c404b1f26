// Package config は環境変数からサービス設定を読み込みます。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// サポートするLLMプロバイダー。
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderCohere = "cohere"
)

// MinGatewayTimeout は GATEWAY_TIMEOUT に許可される最小値です。
// 単位なしの "30" は30nsとして読まれ、この下限で拒否されます。
const MinGatewayTimeout = time.Second

// Config はサービス全体の設定です。
type Config struct {
	Port               string
	LogLevel           string
	LogFormat          string
	CORSAllowedOrigins []string
	LLM                LLM
	Cache              Cache
	Redis              Redis
}

// LLM はモデルゲートウェイの設定です。
type LLM struct {
	Provider      string        // "openai", "gemini" or "cohere"
	Model         string        // 空ならプロバイダーのデフォルト
	OpenAIAPIKey  string        // openai プロバイダーで使用
	OpenAIBaseURL string        // OpenAI互換エンドポイント（任意）
	CohereAPIKey  string        // cohere プロバイダーで使用
	GeminiAPIKey  string        // 任意。空ならADCを使用
	Timeout       time.Duration // ゲートウェイ呼び出し1回ごと
	Concurrency   int           // 同時に分類する見出し数。1は逐次
}

// Cache は応答キャッシュの設定です。
type Cache struct {
	Enabled bool
	TTL     time.Duration
}

// Redis は共有キャッシュの接続設定です。
type Redis struct {
	Host     string
	Port     string
	Password string
}

// Addr は host:port を返します。ホスト未設定時は空文字を返します。
func (r Redis) Addr() string {
	if r.Host == "" {
		return ""
	}
	return r.Host + ":" + r.Port
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LLM_PROVIDER", ProviderOpenAI)
	v.SetDefault("LLM_MODEL", "")
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_BASE_URL", "")
	v.SetDefault("COHERE_API_KEY", "")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GATEWAY_TIMEOUT", "30s")
	v.SetDefault("CLASSIFY_CONCURRENCY", 1)
	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("CACHE_TTL", "10m")
	v.SetDefault("REDIS_HOST", "")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
}

// Load は envFile（存在する場合）をプロセス環境に読み込み、
// 環境変数とデフォルト値から Config を構築します。
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("load %s: %w", envFile, err)
			}
			slog.Info("env file not found; using system environment variables", "path", envFile)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:               v.GetString("PORT"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          v.GetString("LOG_FORMAT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		LLM: LLM{
			Provider:      strings.ToLower(strings.TrimSpace(v.GetString("LLM_PROVIDER"))),
			Model:         v.GetString("LLM_MODEL"),
			OpenAIAPIKey:  v.GetString("OPENAI_API_KEY"),
			OpenAIBaseURL: v.GetString("OPENAI_BASE_URL"),
			CohereAPIKey:  v.GetString("COHERE_API_KEY"),
			GeminiAPIKey:  v.GetString("GEMINI_API_KEY"),
			Timeout:       v.GetDuration("GATEWAY_TIMEOUT"),
			Concurrency:   v.GetInt("CLASSIFY_CONCURRENCY"),
		},
		Cache: Cache{
			Enabled: v.GetBool("CACHE_ENABLED"),
			TTL:     v.GetDuration("CACHE_TTL"),
		},
		Redis: Redis{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は最初に見つかった不正な設定値をエラーとして返します。
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderGemini, ProviderCohere:
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q (supported: openai, gemini, cohere)", c.LLM.Provider)
	}
	if c.LLM.Timeout < MinGatewayTimeout {
		return fmt.Errorf("GATEWAY_TIMEOUT must be at least %v, got %v (use a unit, e.g. \"30s\")", MinGatewayTimeout, c.LLM.Timeout)
	}
	if c.LLM.Concurrency < 1 {
		return fmt.Errorf("CLASSIFY_CONCURRENCY must be at least 1, got %d", c.LLM.Concurrency)
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when caching is enabled, got %v", c.Cache.TTL)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
