package mocknews

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func TestSource_Headlines(t *testing.T) {
	t.Parallel()

	src := NewSource(fixedNow, rand.New(rand.NewPCG(1, 2)))

	hs, err := src.Headlines(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Len(t, hs, HeadlineCount)

	earliest := fixedNow().Add(-time.Duration(HeadlineCount) * 24 * time.Hour)
	for i, h := range hs {
		assert.Contains(t, h.Title, "AAPL", "headline %d", i)
		assert.True(t, slices.Contains(Sources, h.Source), "unexpected source %q", h.Source)

		published, err := time.Parse(DateLayout, h.PublishedAt)
		require.NoError(t, err, "headline %d date %q", i, h.PublishedAt)
		assert.False(t, published.After(fixedNow()), "date %q is in the future", h.PublishedAt)
		assert.False(t, published.Before(earliest.Truncate(24*time.Hour)), "date %q is too old", h.PublishedAt)
	}

	// 先頭の見出しは常に当日の日付
	assert.Equal(t, "Mar 15, 2024", hs[0].PublishedAt)
}

func TestSource_Headlines_StableTitles(t *testing.T) {
	t.Parallel()

	a := NewSource(fixedNow, rand.New(rand.NewPCG(1, 1)))
	b := NewSource(fixedNow, rand.New(rand.NewPCG(99, 7)))

	ha, err := a.Headlines(context.Background(), "TSLA")
	require.NoError(t, err)
	hb, err := b.Headlines(context.Background(), "TSLA")
	require.NoError(t, err)

	for i := range ha {
		assert.Equal(t, ha[i].Title, hb[i].Title, "titles must not depend on randomness")
	}
}

func TestTitles(t *testing.T) {
	t.Parallel()

	titles := Titles("MSFT")
	require.Len(t, titles, HeadlineCount)

	assert.Equal(t, "MSFT beats earnings expectations, stock surges", titles[0])
	assert.Equal(t, "MSFT expands market share in key segment", titles[4])
	assert.Equal(t, titles[:5], titles[5:], "the positive pool is repeated")
	for _, title := range titles {
		assert.NotContains(t, title, "%!", "bad format verb in %q", title)
		assert.Equal(t, 1, strings.Count(title, "MSFT"))
	}
}

func TestTitles_TickerUsedLiterally(t *testing.T) {
	t.Parallel()

	titles := Titles("brk.b")
	assert.Equal(t, "Analysts upgrade brk.b with bullish outlook", titles[2])
}

// TestNewSource_Defaults は nil の now と rng にデフォルトが設定されることを検証します。
func TestNewSource_Defaults(t *testing.T) {
	t.Parallel()

	src := NewSource(nil, nil)
	require.NotNil(t, src.now)
	require.NotNil(t, src.rng)

	before := time.Now()
	hs, err := src.Headlines(context.Background(), "GME")
	after := time.Now()
	require.NoError(t, err)
	assert.Len(t, hs, HeadlineCount)
	// 日付をまたいだ場合はどちらの日付でもよい
	assert.Contains(t, []string{before.Format(DateLayout), after.Format(DateLayout)}, hs[0].PublishedAt)
}

// TestSource_Headlines_SingleClockRead は1回の呼び出しで時刻を1度だけ読み、
// 日付をまたいでも全見出しが同じ基準時刻から計算されることを検証します。
func TestSource_Headlines_SingleClockRead(t *testing.T) {
	t.Parallel()

	calls := 0
	now := func() time.Time {
		calls++
		if calls == 1 {
			return time.Date(2024, time.March, 15, 23, 59, 59, 999_000_000, time.UTC)
		}
		return time.Date(2024, time.March, 16, 0, 0, 1, 0, time.UTC)
	}
	src := NewSource(now, rand.New(rand.NewPCG(5, 6)))

	hs, err := src.Headlines(context.Background(), "NFLX")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "Mar 15, 2024", hs[0].PublishedAt)
	for _, h := range hs {
		assert.NotEqual(t, "Mar 16, 2024", h.PublishedAt)
	}
}
