package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   string
		enabled slog.Level
		dropped slog.Level
	}{
		{"debug", slog.LevelDebug, slog.LevelDebug - 1},
		{"info", slog.LevelInfo, slog.LevelDebug},
		{"WARN", slog.LevelWarn, slog.LevelInfo},
		{"error", slog.LevelError, slog.LevelWarn},
		{"bogus", slog.LevelInfo, slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			l := New(&bytes.Buffer{}, tt.level, "json")
			assert.True(t, l.Enabled(context.Background(), tt.enabled))
			assert.False(t, l.Enabled(context.Background(), tt.dropped))
		})
	}
}

// TestNew_Format は format に応じてJSONとテキストの出力が切り替わることを検証します。
func TestNew_Format(t *testing.T) {
	t.Parallel()

	var jsonBuf, textBuf bytes.Buffer
	New(&jsonBuf, "info", "json").Info("hello", "ticker", "AAPL")
	New(&textBuf, "info", "text").Info("hello", "ticker", "AAPL")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "AAPL", rec["ticker"])

	assert.Contains(t, textBuf.String(), "msg=hello")
	assert.Contains(t, textBuf.String(), "ticker=AAPL")
}

// TestRequestLogger_RequestID はリクエストIDがレスポンスヘッダーとリクエストのcontextに設定されることを検証します。
func TestRequestLogger_RequestID(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	var seen string
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) {
		seen, _ = RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	// ヘッダーがなければ生成する
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	id := w.Header().Get(HeaderRequestID)
	_, err := uuid.Parse(id)
	require.NoError(t, err, "expected a UUID request id, got %q", id)
	assert.Equal(t, id, seen)

	// ヘッダーがあれば引き継ぐ
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "abc-123", seen)
}

// TestNew_RequestIDFromContext は ctx のリクエストIDがログに付与され、
// 明示的に渡した request_id とは重複しないことを検証します。
func TestNew_RequestIDFromContext(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-7")

	tests := []struct {
		name   string
		log    func(l *slog.Logger)
		wantID any
	}{
		{
			name:   "from context",
			log:    func(l *slog.Logger) { l.WarnContext(ctx, "fallback", "ticker", "AAPL") },
			wantID: "req-7",
		},
		{
			name:   "through With",
			log:    func(l *slog.Logger) { l.With("component", "usecase").ErrorContext(ctx, "failed") },
			wantID: "req-7",
		},
		{
			name:   "explicit attribute wins",
			log:    func(l *slog.Logger) { l.InfoContext(ctx, "done", KeyRequestID, "explicit") },
			wantID: "explicit",
		},
		{
			name:   "no id in context",
			log:    func(l *slog.Logger) { l.InfoContext(context.Background(), "done") },
			wantID: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.log(New(&buf, "debug", "json"))

			wantCount := 1
			if tt.wantID == nil {
				wantCount = 0
			}
			assert.Equal(t, wantCount, strings.Count(buf.String(), `"`+KeyRequestID+`"`))
			var rec map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
			assert.Equal(t, tt.wantID, rec[KeyRequestID])
		})
	}
}

// TestRequestLogger_PropagatesToHandlerLogs はミドルウェアで割り当てたIDが
// 後続ハンドラーのログに付与されることを検証します。
func TestRequestLogger_PropagatesToHandlerLogs(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	l := New(&buf, "info", "json")

	r := gin.New()
	r.Use(RequestLogger())
	r.POST("/api/analyze", func(c *gin.Context) {
		l.WarnContext(c.Request.Context(), "headline classification failed")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", nil)
	req.Header.Set(HeaderRequestID, "trace-99")
	r.ServeHTTP(httptest.NewRecorder(), req)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "headline classification failed", rec["msg"])
	assert.Equal(t, "trace-99", rec[KeyRequestID])
}
