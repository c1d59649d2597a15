package services

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// GroqClient Groq兼容OpenAI协议，直接复用openai客户端指向Groq端点
type GroqClient struct {
	Chat llms.Model
}

func NewGroqClient(apiKey, apiEndpoint, model string) (*GroqClient, error) {
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}

	client, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Groq client: %w", err)
	}

	return &GroqClient{
		Chat: client,
	}, nil
}
