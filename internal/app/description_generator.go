package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/description-generator/internal/domain/generation"
	"github.com/MGTheTrain/description-generator/internal/pkg/config"
	"github.com/MGTheTrain/description-generator/internal/pkg/logger"
	"github.com/MGTheTrain/description-generator/internal/pkg/textutil"
)

// Sampling parameters shared by every provider, matching the tuned values of
// the production prompt.
const (
	completionTemperature = 0.4
	completionMaxTokens   = 900
)

// descriptionGenerator implements the Generator interface with Groq model
// fallback and an optional OpenRouter last resort
type descriptionGenerator struct {
	groqClient       generation.ChatClient
	openRouterClient generation.ChatClient
	models           []string
	fallbackModel    string
	maxRetries       int
	retryDelay       time.Duration
	logger           logger.Logger
}

// NewDescriptionGenerator creates a new instance of Generator. openRouterClient
// may be nil; the fallback then fails with a descriptive error when reached.
func NewDescriptionGenerator(
	groqClient generation.ChatClient,
	openRouterClient generation.ChatClient,
	groqSettings *config.GroqSettings,
	fallbackModel string,
	logger logger.Logger,
) (generation.Generator, error) {
	if groqClient == nil {
		return nil, fmt.Errorf("groq client is required")
	}

	return &descriptionGenerator{
		groqClient:       groqClient,
		openRouterClient: openRouterClient,
		models:           groqSettings.Models,
		fallbackModel:    fallbackModel,
		maxRetries:       groqSettings.MaxRetries,
		retryDelay:       groqSettings.RetryDelay,
		logger:           logger,
	}, nil
}

// Generate produces a description for one part. Models are tried in
// configured order with retries; only after every Groq model is exhausted
// does the OpenRouter fallback fire.
func (g *descriptionGenerator) Generate(ctx context.Context, article, name string) (string, error) {
	prompt := generation.BuildPrompt(article, name)
	var lastErr error

	for modelIdx, model := range g.models {
		g.logger.Info("trying model ", model)

		for attempt := 1; attempt <= g.maxRetries; attempt++ {
			text, err := g.complete(ctx, g.groqClient, model, prompt, attempt > 1)
			if err == nil {
				g.logger.Info("description generated with model ", model)
				return text, nil
			}
			if ctx.Err() != nil {
				return "", ctx.Err()
			}

			lastErr = err
			g.logger.Warn(fmt.Sprintf("generation attempt %d/%d with model %s failed: %v", attempt, g.maxRetries, model, err))

			if attempt < g.maxRetries {
				if err := sleepContext(ctx, g.retryDelay); err != nil {
					return "", err
				}
			}
		}

		if modelIdx < len(g.models)-1 {
			g.logger.Warn("model ", model, " did not produce a usable answer, trying next model")
			if err := sleepContext(ctx, g.retryDelay); err != nil {
				return "", err
			}
		}
	}

	if g.openRouterClient == nil {
		return "", fmt.Errorf(
			"all Groq models failed (last error: %v) and no OpenRouter API key is configured", lastErr,
		)
	}

	g.logger.Warn("all Groq models failed, falling back to OpenRouter: ", lastErr)
	text, err := g.complete(ctx, g.openRouterClient, g.fallbackModel, prompt, false)
	if err != nil {
		return "", fmt.Errorf("openrouter fallback failed: %w", err)
	}

	g.logger.Info("description generated through the OpenRouter fallback")
	return text, nil
}

// complete performs one chat completion and validates the answer.
func (g *descriptionGenerator) complete(ctx context.Context, client generation.ChatClient, model, prompt string, remind bool) (string, error) {
	messages := []generation.Message{
		{Role: generation.RoleSystem, Content: generation.SystemPrompt},
		{Role: generation.RoleUser, Content: prompt},
	}
	if remind {
		messages = append(messages, generation.Message{
			Role:    generation.RoleUser,
			Content: generation.RetryReminder,
		})
	}

	text, err := client.Complete(ctx, &generation.ChatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
	})
	if err != nil {
		return "", err
	}

	text = textutil.StripCodeFence(text)
	if text == "" || !textutil.HasCyrillic(text) {
		return "", fmt.Errorf("model returned an empty or non-Russian response")
	}

	return text, nil
}

// sleepContext sleeps for the duration unless the context ends first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
