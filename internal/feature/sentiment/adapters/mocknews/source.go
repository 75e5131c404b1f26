// Package mocknews はテンプレートからティッカーごとのデモ用見出しを生成します。
package mocknews

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"stock_sentiment/internal/feature/sentiment/domain/entity"
	"stock_sentiment/internal/feature/sentiment/usecase"
)

const (
	// HeadlineCount はティッカーごとに返す見出し数です。
	HeadlineCount = 10
	// DateLayout は "Jan 5, 2024" 形式の公開日レイアウトです。
	DateLayout = "Jan 2, 2006"
)

// Sources は生成した見出しに割り当てる配信元ラベルです。
var Sources = []string{"Reuters", "Bloomberg", "CNBC", "Financial Times", "WSJ", "MarketWatch"}

var (
	positiveTemplates = []string{
		"%[1]s beats earnings expectations, stock surges",
		"%[1]s announces breakthrough innovation in core business",
		"Analysts upgrade %[1]s with bullish outlook",
		"%[1]s reports record quarterly revenue growth",
		"%[1]s expands market share in key segment",
	}
	negativeTemplates = []string{
		"%[1]s faces regulatory challenges in key markets",
		"%[1]s misses revenue targets, shares decline",
		"Concerns grow over %[1]s's competitive position",
		"%[1]s announces layoffs amid restructuring",
		"Analysts downgrade %[1]s citing headwinds",
	}
	neutralTemplates = []string{
		"%[1]s maintains steady performance in Q3",
		"%[1]s announces routine board meeting results",
		"Market analysts review %[1]s's quarterly report",
		"%[1]s updates guidance for fiscal year",
		"Industry report includes %[1]s in sector analysis",
	}
)

// Source は固定テンプレートによる usecase.HeadlineSource の実装です。
// タイトルは決定的で、配信元と日付はランダムです。
type Source struct {
	now func() time.Time

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// Sourceがusecase.HeadlineSourceを実装していることをコンパイル時に検証します。
var _ usecase.HeadlineSource = (*Source)(nil)

// NewSource は Source を生成します。
// now が nil なら time.Now、rng が nil ならランダムなシードの生成器を使用します。
func NewSource(now func() time.Time, rng *rand.Rand) *Source {
	if now == nil {
		now = time.Now
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Source{now: now, rng: rng}
}

// Headlines は ticker の見出しを HeadlineCount 件返します。
// テンプレートプールは positive, positive, negative, neutral, neutral（2:1:2）の順で、
// 先頭から HeadlineCount 件を使用します。時刻は呼び出しごとに1度だけ読みます。
func (s *Source) Headlines(_ context.Context, ticker string) ([]entity.Headline, error) {
	titles := Titles(ticker)
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Headline, 0, len(titles))
	for i, title := range titles {
		source := Sources[s.rng.IntN(len(Sources))]
		offset := time.Duration(float64(i) * s.rng.Float64() * float64(24*time.Hour))
		out = append(out, entity.Headline{
			Title:       title,
			Source:      source,
			PublishedAt: now.Add(-offset).Format(DateLayout),
		})
	}
	return out, nil
}

// Titles は ticker の決定的な見出しタイトルを返します。
func Titles(ticker string) []string {
	pool := make([]string, 0, 2*len(positiveTemplates)+len(negativeTemplates)+2*len(neutralTemplates))
	pool = append(pool, positiveTemplates...)
	pool = append(pool, positiveTemplates...)
	pool = append(pool, negativeTemplates...)
	pool = append(pool, neutralTemplates...)
	pool = append(pool, neutralTemplates...)

	titles := make([]string, 0, HeadlineCount)
	for _, tmpl := range pool[:HeadlineCount] {
		titles = append(titles, fmt.Sprintf(tmpl, ticker))
	}
	return titles
}
