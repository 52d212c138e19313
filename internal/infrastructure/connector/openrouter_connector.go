package connector

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MGTheTrain/description-generator/internal/domain/generation"
	"github.com/MGTheTrain/description-generator/internal/pkg/config"
	"github.com/MGTheTrain/description-generator/internal/pkg/logger"
)

type openRouterConnector struct {
	baseURL    string
	apiKey     string
	referer    string
	appTitle   string
	httpClient *http.Client
	logger     logger.Logger
}

// NewOpenRouterConnector creates a ChatClient backed by the OpenRouter API.
// It is only consulted after every Groq model has failed.
func NewOpenRouterConnector(settings *config.OpenRouterSettings, log logger.Logger) (generation.ChatClient, error) {
	if settings.APIKey == "" {
		return nil, fmt.Errorf("missing OPENROUTER_API_KEY")
	}

	return &openRouterConnector{
		baseURL:    settings.BaseURL,
		apiKey:     settings.APIKey,
		referer:    settings.Referer,
		appTitle:   settings.AppTitle,
		httpClient: &http.Client{Timeout: settings.Timeout},
		logger:     log,
	}, nil
}

// Complete sends the request to OpenRouter and returns the assistant message content.
func (c *openRouterConnector) Complete(ctx context.Context, request *generation.ChatRequest) (string, error) {
	payload := &chatCompletionRequest{
		Model:       request.Model,
		Messages:    request.Messages,
		Temperature: request.Temperature,
		MaxTokens:   request.MaxTokens,
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
		"HTTP-Referer":  c.referer,
		"X-Title":       c.appTitle,
	}

	content, err := postChatCompletion(ctx, c.httpClient, c.baseURL+"/chat/completions", headers, payload)
	if err != nil {
		return "", fmt.Errorf("openrouter: %w", err)
	}

	c.logger.Debug("openrouter completion received for model ", request.Model)
	return content, nil
}
