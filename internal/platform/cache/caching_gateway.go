// Package cache はモデルゲートウェイ向けのキャッシュデコレーターを提供します。
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"stock_sentiment/internal/feature/sentiment/usecase"
)

const (
	// DefaultTTL はTTL未指定時に使用されます。
	DefaultTTL = 10 * time.Minute
	// DefaultNamespace はすべてのキャッシュキーの接頭辞です。
	DefaultNamespace = "completions"
)

// CacheableFunc は prompt への応答 reply を保存してよいかを判定します。
type CacheableFunc func(prompt, reply string) bool

// CachingGateway はモデル名とプロンプトをキーにして応答をキャッシュする Gateway デコレーターです。
// Redis が設定されていればRedisを、なければプロセス内メモリを使用します。
// エラー応答と cacheable が拒否した応答は保存しません。
type CachingGateway struct {
	inner     usecase.Gateway
	rdb       *redis.Client
	memory    *gocache.Cache
	ttl       time.Duration
	namespace string
	model     string
	cacheable CacheableFunc
}

// CachingGatewayがusecase.Gatewayを実装していることをコンパイル時に検証します。
var _ usecase.Gateway = (*CachingGateway)(nil)

// NewCachingGateway は inner をキャッシュ付きでラップします。
// rdb が nil の場合はプロセス内キャッシュを使用します。
// ttl が 0 以下なら DefaultTTL、namespace が空なら DefaultNamespace を使用します。
// cacheable が nil の場合は空でない応答をすべて保存します。
func NewCachingGateway(rdb *redis.Client, ttl time.Duration, inner usecase.Gateway, namespace, model string, cacheable CacheableFunc) *CachingGateway {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if cacheable == nil {
		cacheable = func(_, reply string) bool { return reply != "" }
	}
	c := &CachingGateway{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
		model:     model,
		cacheable: cacheable,
	}
	if rdb == nil {
		c.memory = gocache.New(ttl, 2*ttl)
	}
	return c
}

// Complete はキャッシュがあればそれを返し、なければ inner を呼び出して結果を保存します。
func (c *CachingGateway) Complete(ctx context.Context, prompt string) (string, error) {
	key := c.cacheKey(prompt)

	// 1) キャッシュ確認
	if text, ok := c.get(ctx, key); ok {
		return text, nil
	}

	// 2) モデルへフォールバック
	text, err := c.inner.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	// 3) 保存（ベストエフォート）
	if c.cacheable(prompt, text) {
		c.set(ctx, key, text)
	}
	return text, nil
}

func (c *CachingGateway) get(ctx context.Context, key string) (string, bool) {
	if c.rdb == nil {
		v, ok := c.memory.Get(key)
		if !ok {
			return "", false
		}
		s, ok := v.(string)
		return s, ok && s != ""
	}
	s, err := c.rdb.Get(ctx, key).Result()
	if err != nil || s == "" {
		return "", false
	}
	return s, true
}

func (c *CachingGateway) set(ctx context.Context, key, text string) {
	if c.rdb == nil {
		c.memory.Set(key, text, c.ttl)
		return
	}
	_ = c.rdb.Set(ctx, key, text, c.ttl).Err() // 書き込み失敗は呼び出し結果に影響させない
}

// cacheKey はプロンプト本文を含まない固定長のキーを生成します。
func (c *CachingGateway) cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(c.model + "\x00" + prompt))
	return c.namespace + ":" + safe(c.model) + ":" + hex.EncodeToString(sum[:])
}

// safe はRedisキーで問題となる文字をエスケープします。
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
