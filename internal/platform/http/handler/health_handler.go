// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BuildInfo は起動時に選択されたモデルバックエンドを表します。
type BuildInfo struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

type healthResponse struct {
	Status string `json:"status"`
	BuildInfo
}

// Health は /healthz のハンドラーを返します。モデルは呼び出しません。
// GET はJSON、HEAD は本文なしの200、OPTIONS は204を返します。
func Health(info BuildInfo) gin.HandlerFunc {
	body := healthResponse{Status: "ok", BuildInfo: info}
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			c.JSON(http.StatusOK, body)
		}
	}
}
