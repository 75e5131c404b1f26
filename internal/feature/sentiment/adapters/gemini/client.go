// Package gemini はGoogle Gemini APIを使用する補完ゲートウェイを提供します。
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"stock_sentiment/internal/feature/sentiment/usecase"
)

const (
	// DefaultModel はモデル未指定時に使用するGeminiモデルです。
	DefaultModel = "gemini-2.5-flash"
)

// GeminiGateway はGoogle Gemini APIを使用してプロンプトを補完します。
type GeminiGateway struct {
	client *genai.Client
	model  string
}

// GeminiGatewayがusecase.Gatewayを実装していることをコンパイル時に検証します。
var _ usecase.Gateway = (*GeminiGateway)(nil)

// NewGeminiGateway は GeminiGateway を生成します。
// apiKey が空の場合はADCと環境変数（GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT,
// GOOGLE_CLOUD_LOCATION）から設定します。
func NewGeminiGateway(ctx context.Context, apiKey, model string) (*GeminiGateway, error) {
	var cfg *genai.ClientConfig
	if apiKey != "" {
		cfg = &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &GeminiGateway{client: client, model: model}, nil
}

// Model は補完に使用するモデル名を返します。
func (g *GeminiGateway) Model() string {
	return g.model
}

// Complete は prompt をGeminiに送信し、応答テキストを返します。
func (g *GeminiGateway) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}
