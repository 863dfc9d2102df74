package services

import (
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ErrMissingAPIKey 未配置生成式模型的 API Key
var ErrMissingAPIKey = errors.New("missing api key")

// GeminiClient 生成式模型客户端，通过 OpenAI 兼容端点访问
type GeminiClient struct {
	Chat llms.Model
}

// NewGeminiClient 创建 Gemini 客户端，apiKey 为空时返回 ErrMissingAPIKey，
// 由调用方决定如何向用户提示
func NewGeminiClient(apiKey, apiEndpoint, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	chat, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		Chat: chat,
	}, nil
}
