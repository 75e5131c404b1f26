// Package openai はOpenAI Chat Completions APIを使用する補完ゲートウェイを提供します。
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	goopenai "github.com/sashabaranov/go-openai"

	"stock_sentiment/internal/feature/sentiment/usecase"
)

// DefaultModel はモデル未指定時に使用するOpenAIモデルです。
const DefaultModel = goopenai.GPT4oMini

// ErrEmptyResponse はAPIの応答に choices が含まれない場合に返されます。
var ErrEmptyResponse = errors.New("no response from openai")

// OpenAIGateway はOpenAI Chat Completions APIを使用してプロンプトを補完します。
type OpenAIGateway struct {
	client *goopenai.Client
	model  string
}

// OpenAIGatewayがusecase.Gatewayを実装していることをコンパイル時に検証します。
var _ usecase.Gateway = (*OpenAIGateway)(nil)

// NewOpenAIGateway は OpenAIGateway を生成します。baseURL が空なら公開エンドポイントを使用します。
func NewOpenAIGateway(apiKey, baseURL, model string, httpClient *http.Client) (*OpenAIGateway, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	if model == "" {
		model = DefaultModel
	}

	return &OpenAIGateway{client: goopenai.NewClientWithConfig(cfg), model: model}, nil
}

// Model は補完に使用するモデル名を返します。
func (g *OpenAIGateway) Model() string {
	return g.model
}

// Complete は prompt を1件のユーザーメッセージとして送信し、最初の choice を返します。
func (g *OpenAIGateway) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: g.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
