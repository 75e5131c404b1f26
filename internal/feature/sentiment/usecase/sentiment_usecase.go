// Package usecase はセンチメント分析パイプラインを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"stock_sentiment/internal/feature/sentiment/domain"
	"stock_sentiment/internal/feature/sentiment/domain/entity"
)

const (
	// MaxTickerLength はティッカーの最大文字数です。
	MaxTickerLength = 5
	// DefaultGatewayTimeout はタイムアウト未設定時のゲートウェイ呼び出し1回あたりの上限です。
	DefaultGatewayTimeout = 30 * time.Second
)

// Gateway はホスト型のテキスト補完モデルです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Gateway interface {
	// Complete は prompt をモデルに送信し、生のテキスト応答を返します。
	// 応答が正しい形式である保証はありません。
	Complete(ctx context.Context, prompt string) (string, error)
}

// HeadlineSource はティッカーごとの分析対象の見出しを提供します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type HeadlineSource interface {
	// Headlines は ticker の見出しを安定した順序で返します。
	Headlines(ctx context.Context, ticker string) ([]entity.Headline, error)
}

// Options はゲートウェイ呼び出しの振る舞いを調整します。
type Options struct {
	// Timeout はゲートウェイ呼び出し1回ごとの上限です。0なら DefaultGatewayTimeout。
	Timeout time.Duration
	// Concurrency は同時に分類する見出し数です。2未満なら逐次処理します。
	Concurrency int
}

// sentimentUsecase はゲートウェイで見出しを分類し、結果を集計します。
type sentimentUsecase struct {
	source      HeadlineSource
	gateway     Gateway
	timeout     time.Duration
	concurrency int
}

// NewSentimentUsecase は sentimentUsecase を生成します。
func NewSentimentUsecase(source HeadlineSource, gateway Gateway, opts Options) *sentimentUsecase {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultGatewayTimeout
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &sentimentUsecase{
		source:      source,
		gateway:     gateway,
		timeout:     opts.Timeout,
		concurrency: opts.Concurrency,
	}
}

// ValidateTicker は空のティッカーと MaxTickerLength を超えるティッカーを拒否します。
func ValidateTicker(ticker string) error {
	if ticker == "" || utf8.RuneCountInString(ticker) > MaxTickerLength {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTicker, ticker)
	}
	return nil
}

// Headlines は ticker を検証し、未分類の見出しを返します。
func (u *sentimentUsecase) Headlines(ctx context.Context, ticker string) ([]entity.Headline, error) {
	if err := ValidateTicker(ticker); err != nil {
		return nil, err
	}
	hs, err := u.source.Headlines(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("headline source failed for %q: %w", ticker, err)
	}
	return hs, nil
}

// ClassifyHeadline は見出し1件を分類します。失敗することはなく、
// ゲートウェイやパースのエラーはログに記録して neutral 0.5 に置き換えます。
func (u *sentimentUsecase) ClassifyHeadline(ctx context.Context, h entity.Headline) entity.ClassifiedHeadline {
	c, err := u.classify(ctx, h.Title)
	if err != nil {
		slog.WarnContext(ctx, "headline classification failed, using neutral fallback", "title", h.Title, "error", err)
		c = entity.FallbackClassification
	}
	return entity.ClassifiedHeadline{Headline: h, Sentiment: c.Sentiment, Score: c.Score}
}

// Analyze は ticker に対してパイプライン全体を実行します。
// 見出しを取得して1件ずつ分類し、件数を集計してからゲートウェイに要約を依頼します。
// 要約に失敗した場合は分類済みでもリクエスト全体を失敗とします。
func (u *sentimentUsecase) Analyze(ctx context.Context, ticker string) (*entity.Result, error) {
	headlines, err := u.Headlines(ctx, ticker)
	if err != nil {
		return nil, err
	}

	news := u.classifyAll(ctx, headlines)
	positive, negative, neutral := Tally(news)

	summary, err := u.complete(ctx, BuildSummaryPrompt(ticker, positive, negative, neutral))
	if err != nil {
		slog.ErrorContext(ctx, "summary generation failed", "ticker", ticker, "error", err)
		return nil, fmt.Errorf("%w for %q: %w", domain.ErrSummary, ticker, err)
	}

	return &entity.Result{
		Ticker:           ticker,
		OverallSentiment: OverallSentiment(positive, negative, neutral),
		PositiveCount:    positive,
		NegativeCount:    negative,
		NeutralCount:     neutral,
		News:             news,
		Summary:          strings.TrimSpace(summary),
	}, nil
}

// classifyAll はすべての見出しを分類し、並列呼び出しの完了順にかかわらず入力順で返します。
func (u *sentimentUsecase) classifyAll(ctx context.Context, headlines []entity.Headline) []entity.ClassifiedHeadline {
	out := make([]entity.ClassifiedHeadline, len(headlines))
	if u.concurrency <= 1 {
		for i, h := range headlines {
			out[i] = u.ClassifyHeadline(ctx, h)
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(u.concurrency)
	for i, h := range headlines {
		g.Go(func() error {
			out[i] = u.ClassifyHeadline(ctx, h)
			return nil
		})
	}
	_ = g.Wait() // ClassifyHeadline はエラーを返さない
	return out
}

func (u *sentimentUsecase) classify(ctx context.Context, title string) (entity.Classification, error) {
	text, err := u.complete(ctx, BuildClassificationPrompt(title))
	if err != nil {
		return entity.Classification{}, fmt.Errorf("%w: %w", domain.ErrClassification, err)
	}
	c, err := ParseClassification(text)
	if err != nil {
		return entity.Classification{}, fmt.Errorf("%w: %w", domain.ErrClassification, err)
	}
	return c, nil
}

// complete は呼び出しごとのタイムアウト付きでゲートウェイを呼び出します。
func (u *sentimentUsecase) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	return u.gateway.Complete(ctx, prompt)
}
