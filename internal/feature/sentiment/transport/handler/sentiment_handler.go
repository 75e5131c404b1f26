// Package handler はセンチメント機能のHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_sentiment/internal/api"
	"stock_sentiment/internal/feature/sentiment/domain"
	"stock_sentiment/internal/feature/sentiment/domain/entity"
)

const (
	msgInvalidTicker  = "Invalid ticker symbol"
	msgAnalyzeFailed  = "Failed to analyze sentiment"
	msgHeadlineFailed = "Failed to load headlines"
)

// SentimentUsecase はハンドラーが利用するセンチメント分析の操作を定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SentimentUsecase interface {
	Analyze(ctx context.Context, ticker string) (*entity.Result, error)
	Headlines(ctx context.Context, ticker string) ([]entity.Headline, error)
}

// SentimentHandler はセンチメント関連のエンドポイントを提供します。
type SentimentHandler struct {
	uc SentimentUsecase
}

// SentimentHandlerが生成されたサーバーインターフェースを実装していることをコンパイル時に検証します。
var _ api.ServerInterface = (*SentimentHandler)(nil)

// NewSentimentHandler は SentimentHandler を生成します。
func NewSentimentHandler(uc SentimentUsecase) *SentimentHandler {
	return &SentimentHandler{uc: uc}
}

// AnalyzeSentiment はティッカーの見出しを分類し、集計結果を返します。
//
// Endpoint: POST /api/analyze
// Content-Type: application/json
func (h *SentimentHandler) AnalyzeSentiment(c *gin.Context) {
	var req api.AnalyzeSentimentJSONRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(c.Request.Context(), "invalid analyze request body", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msgInvalidTicker})
		return
	}

	result, err := h.uc.Analyze(c.Request.Context(), req.Ticker)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTicker) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msgInvalidTicker})
			return
		}
		slog.ErrorContext(c.Request.Context(), "sentiment analysis failed", "error", err, "ticker", req.Ticker)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: msgAnalyzeFailed})
		return
	}

	c.JSON(http.StatusOK, toSentimentResult(result))
}

// ListHeadlines はモデルを呼び出さずにティッカーの未分類の見出しを返します。
//
// Endpoint: GET /api/headlines/:ticker
func (h *SentimentHandler) ListHeadlines(c *gin.Context, ticker string) {
	headlines, err := h.uc.Headlines(c.Request.Context(), ticker)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTicker) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msgInvalidTicker})
			return
		}
		slog.ErrorContext(c.Request.Context(), "headline listing failed", "error", err, "ticker", ticker)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: msgHeadlineFailed})
		return
	}

	out := make([]api.Headline, 0, len(headlines))
	for _, hl := range headlines {
		out = append(out, api.Headline{
			Title:       hl.Title,
			Source:      hl.Source,
			PublishedAt: hl.PublishedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// BindErrorHandler は生成されたルーターのパラメーターバインド失敗をレスポンスに変換します。
// err の内容はログにのみ出力し、レスポンスには固定のメッセージを返します。
func BindErrorHandler(c *gin.Context, err error, statusCode int) {
	slog.WarnContext(c.Request.Context(), "request parameter binding failed", "error", err, "path", c.FullPath(), "status", statusCode)
	msg := msgInvalidTicker
	if statusCode != http.StatusBadRequest {
		msg = http.StatusText(statusCode)
	}
	c.JSON(statusCode, api.ErrorResponse{Error: msg})
}

func toSentimentResult(r *entity.Result) api.SentimentResult {
	news := make([]api.NewsItem, 0, len(r.News))
	for _, n := range r.News {
		news = append(news, api.NewsItem{
			Title:       n.Title,
			Sentiment:   api.NewsItemSentiment(n.Sentiment),
			Score:       n.Score,
			Source:      n.Source,
			PublishedAt: n.PublishedAt,
		})
	}
	return api.SentimentResult{
		Ticker:           r.Ticker,
		OverallSentiment: r.OverallSentiment,
		PositiveCount:    r.PositiveCount,
		NegativeCount:    r.NegativeCount,
		NeutralCount:     r.NeutralCount,
		News:             news,
		Summary:          r.Summary,
	}
}
