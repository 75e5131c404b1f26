// Package http はモデルゲートウェイが共有する外向きHTTPクライアントを生成します。
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient は外部LLM API呼び出し用のHTTPクライアントを作成します。
//
// Client.Timeout は本文の読み込みを含むリクエスト全体の上限です。
// timeout は GATEWAY_TIMEOUT 以上にしてください。
// http.DefaultClient にはタイムアウトがないため使用しないこと。
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
