package usecase

import (
	"fmt"
	"strings"
)

const classificationPromptTemplate = `Analyze the sentiment of this stock news headline and respond with ONLY a JSON object in this exact format:
{
  "sentiment": "positive" | "negative" | "neutral",
  "score": 0.0 to 1.0
}

Headline: "%s"

Rules:
- "positive" = bullish, good news, growth, success
- "negative" = bearish, bad news, decline, problems
- "neutral" = factual, no clear direction
- score = confidence level (0.0 = very uncertain, 1.0 = very certain)`

const summaryPromptTemplate = `Based on these sentiment counts for %s stock news:
- Positive: %d
- Negative: %d
- Neutral: %d

Write a brief 2-3 sentence summary of the overall market sentiment and what's trending for this stock. Be professional and concise.`

// classificationPromptPrefix は見出しタイトルより前の固定部分です。
var classificationPromptPrefix = classificationPromptTemplate[:strings.Index(classificationPromptTemplate, "%s")]

// BuildClassificationPrompt は見出し1件を採点させるプロンプトを生成します。
func BuildClassificationPrompt(title string) string {
	return fmt.Sprintf(classificationPromptTemplate, title)
}

// BuildSummaryPrompt は件数集計からサマリーを生成させるプロンプトを生成します。
func BuildSummaryPrompt(ticker string, positive, negative, neutral int) string {
	return fmt.Sprintf(summaryPromptTemplate, ticker, positive, negative, neutral)
}

// IsClassificationPrompt は prompt が BuildClassificationPrompt で生成されたものかを判定します。
func IsClassificationPrompt(prompt string) bool {
	return strings.HasPrefix(prompt, classificationPromptPrefix)
}

// CacheableReply は prompt への応答 reply を再利用してよいかを判定します。
// 分類プロンプトの応答は ParseClassification が受け付ける場合のみ対象になります。
func CacheableReply(prompt, reply string) bool {
	if strings.TrimSpace(reply) == "" {
		return false
	}
	if IsClassificationPrompt(prompt) {
		_, err := ParseClassification(reply)
		return err == nil
	}
	return true
}
