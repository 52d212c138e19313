package connector

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MGTheTrain/description-generator/internal/domain/generation"
	"github.com/MGTheTrain/description-generator/internal/pkg/config"
	"github.com/MGTheTrain/description-generator/internal/pkg/logger"
)

type groqConnector struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logger.Logger
}

// NewGroqConnector creates a ChatClient backed by the Groq chat-completions API.
func NewGroqConnector(settings *config.GroqSettings, log logger.Logger) (generation.ChatClient, error) {
	if settings.APIKey == "" {
		return nil, fmt.Errorf("missing GROQ_API_KEY or QROQ_TOKEN")
	}

	return &groqConnector{
		baseURL:    settings.BaseURL,
		apiKey:     settings.APIKey,
		httpClient: &http.Client{Timeout: settings.Timeout},
		logger:     log,
	}, nil
}

// Complete sends the request to Groq and returns the assistant message content.
func (c *groqConnector) Complete(ctx context.Context, request *generation.ChatRequest) (string, error) {
	payload := &chatCompletionRequest{
		Model:               request.Model,
		Messages:            request.Messages,
		Temperature:         request.Temperature,
		MaxCompletionTokens: request.MaxTokens,
		TopP:                1,
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}

	content, err := postChatCompletion(ctx, c.httpClient, c.baseURL+"/chat/completions", headers, payload)
	if err != nil {
		return "", fmt.Errorf("groq: %w", err)
	}

	c.logger.Debug("groq completion received for model ", request.Model)
	return content, nil
}
