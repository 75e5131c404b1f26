package router

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stock_sentiment/internal/api"
	sentimenthandler "stock_sentiment/internal/feature/sentiment/transport/handler"
	"stock_sentiment/internal/platform/logger"
)

// NewRouter はミドルウェア、ヘルスチェック、生成されたAPIルートを登録した gin.Engine を返します。
func NewRouter(sentiment *sentimenthandler.SentimentHandler, health gin.HandlerFunc, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(cors.New(corsConfig(allowedOrigins)))

	// 導通確認用
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.OPTIONS("/healthz", health)

	// POST /api/analyze, GET /api/headlines/:ticker
	api.RegisterHandlersWithOptions(r, sentiment, api.GinServerOptions{
		ErrorHandler: sentimenthandler.BindErrorHandler,
	})

	return r
}

// corsConfig は許可オリジンが空または "*" を含む場合、すべてのオリジンを許可します。
func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", logger.HeaderRequestID},
		ExposeHeaders: []string{logger.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cfg
}
