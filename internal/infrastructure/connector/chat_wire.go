package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/MGTheTrain/description-generator/internal/domain/generation"
	"github.com/MGTheTrain/description-generator/internal/pkg/textutil"
)

// chatCompletionRequest is the OpenAI-compatible wire format both Groq and
// OpenRouter accept. Groq reads max_completion_tokens, OpenRouter max_tokens;
// the unused field is omitted.
type chatCompletionRequest struct {
	Model               string               `json:"model"`
	Messages            []generation.Message `json:"messages"`
	Temperature         float64              `json:"temperature"`
	MaxTokens           int                  `json:"max_tokens,omitempty"`
	MaxCompletionTokens int                  `json:"max_completion_tokens,omitempty"`
	TopP                float64              `json:"top_p,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// postChatCompletion sends the request to url and returns the first choice's
// content. headers are applied on top of Content-Type.
func postChatCompletion(ctx context.Context, client *http.Client, url string, headers map[string]string, payload *chatCompletionRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode chat completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chat completion response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("chat completion returned status %d: %s", resp.StatusCode, textutil.Truncate(string(data), 200))
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode chat completion response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned an empty choices list")
	}

	return parsed.Choices[0].Message.Content, nil
}
