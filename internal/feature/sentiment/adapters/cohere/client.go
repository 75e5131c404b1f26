// Package cohere はCohere Chat APIを使用する補完ゲートウェイを提供します。
package cohere

import (
	"context"
	"fmt"
	"net/http"

	cohereapi "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"

	"stock_sentiment/internal/feature/sentiment/usecase"
)

// DefaultModel はモデル未指定時に使用するCohereモデルです。
const DefaultModel = "command-r"

// CohereGateway はCohere Chat APIを使用してプロンプトを補完します。
type CohereGateway struct {
	client *cohereclient.Client
	model  string
}

// CohereGatewayがusecase.Gatewayを実装していることをコンパイル時に検証します。
var _ usecase.Gateway = (*CohereGateway)(nil)

// NewCohereGateway は CohereGateway を生成します。
func NewCohereGateway(apiKey, model string, httpClient *http.Client) (*CohereGateway, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Cohere API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	var client *cohereclient.Client
	if httpClient != nil {
		client = cohereclient.NewClient(
			cohereclient.WithToken(apiKey),
			cohereclient.WithHTTPClient(httpClient),
		)
	} else {
		client = cohereclient.NewClient(cohereclient.WithToken(apiKey))
	}
	return &CohereGateway{client: client, model: model}, nil
}

// Model は補完に使用するモデル名を返します。
func (g *CohereGateway) Model() string {
	return g.model
}

// Complete は prompt を1件のチャットメッセージとして送信し、応答テキストを返します。
func (g *CohereGateway) Complete(ctx context.Context, prompt string) (string, error) {
	model := g.model
	resp, err := g.client.Chat(ctx, &cohereapi.ChatRequest{
		Message: prompt,
		Model:   &model,
	})
	if err != nil {
		return "", fmt.Errorf("cohere API request failed: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("cohere returned empty response")
	}
	return resp.Text, nil
}
