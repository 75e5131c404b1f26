// Package logger は構造化ログの設定とリクエストログ用ミドルウェアを提供します。
package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID はリクエストIDを受け渡すHTTPヘッダーです。
const HeaderRequestID = "X-Request-ID"

// KeyRequestID はログレコード上のリクエストIDの属性名です。
const KeyRequestID = "request_id"

type requestIDKey struct{}

// WithRequestID は id を保持した ctx を返します。
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext は ctx に保持されたリクエストIDを返します。
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

// New は w に出力するslogロガーを生成します。
// level は "debug", "info", "warn", "error"（デフォルト "info"）。
// format が "text" ならテキスト形式、それ以外はJSON形式です。
// *Context 系のメソッドに渡した ctx にリクエストIDがあれば request_id 属性を付与します。
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var h slog.Handler
	if strings.EqualFold(format, "text") {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(contextHandler{Handler: h})
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// contextHandler は ctx のリクエストIDをレコードに付与する slog.Handler です。
type contextHandler struct {
	slog.Handler
}

func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := RequestIDFromContext(ctx); ok && !hasAttr(r, KeyRequestID) {
		r = r.Clone()
		r.AddAttrs(slog.String(KeyRequestID, id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{Handler: h.Handler.WithGroup(name)}
}

func hasAttr(r slog.Record, key string) bool {
	found := false
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			found = true
			return false
		}
		return true
	})
	return found
}

// RequestLogger は各リクエストにIDを割り当て、完了時にアクセスログを1行出力します。
// X-Request-ID ヘッダーがあればそれを使い、なければUUIDを生成します。
// IDは c.Request.Context() に格納され、後続のハンドラーやユースケースのログにも付与されます。
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)

		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= 500 {
			level = slog.LevelError
		}
		slog.Log(c.Request.Context(), level, "request completed",
			KeyRequestID, id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"remote_addr", c.ClientIP(),
		)
	}
}
