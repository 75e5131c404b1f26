// Package domain はセンチメント機能のドメインエラーを定義します。
package domain

import "errors"

var (
	// ErrInvalidTicker はティッカーが空、または許容長を超えていることを示します。
	// 唯一の入力検証エラーで、ゲートウェイ呼び出しより前に返されます。
	ErrInvalidTicker = errors.New("invalid ticker symbol")

	// ErrClassification は見出し1件のゲートウェイ失敗またはパース失敗をラップします。
	// ユースケースは常に neutral へのフォールバックで回復します。
	ErrClassification = errors.New("headline classification failed")

	// ErrSummary は要約生成時のゲートウェイ失敗をラップします。
	// 分析全体が失敗になります。
	ErrSummary = errors.New("summary generation failed")
)
