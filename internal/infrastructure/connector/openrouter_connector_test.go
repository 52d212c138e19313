//go:build unit
// +build unit

package connector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MGTheTrain/description-generator/internal/pkg/config"
	"github.com/MGTheTrain/description-generator/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openRouterSettings(baseURL string) *config.OpenRouterSettings {
	return &config.OpenRouterSettings{
		APIKey:   "sk-or-test",
		BaseURL:  baseURL,
		Model:    "deepseek/deepseek-chat-v3.1",
		Referer:  "https://example.com/descgen",
		AppTitle: "Description Generator",
		Timeout:  time.Second,
	}
}

func TestOpenRouterConnector_Complete_Success(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-or-test", r.Header.Get("Authorization"))
		assert.Equal(t, "https://example.com/descgen", r.Header.Get("HTTP-Referer"))
		assert.Equal(t, "Description Generator", r.Header.Get("X-Title"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Запасной вариант"}}]}`))
	}))
	defer server.Close()

	client, err := NewOpenRouterConnector(openRouterSettings(server.URL), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	content, err := client.Complete(context.Background(), chatRequest("deepseek/deepseek-chat-v3.1"))
	require.NoError(t, err)
	assert.Equal(t, "Запасной вариант", content)

	// OpenRouter reads max_tokens, not max_completion_tokens
	assert.Equal(t, float64(900), captured["max_tokens"])
	assert.NotContains(t, captured, "max_completion_tokens")
}

func TestOpenRouterConnector_Complete_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"bad key"}`))
	}))
	defer server.Close()

	client, err := NewOpenRouterConnector(openRouterSettings(server.URL), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), chatRequest("deepseek/deepseek-chat-v3.1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openrouter")
}

func TestNewOpenRouterConnector_MissingAPIKey(t *testing.T) {
	settings := openRouterSettings("https://openrouter.ai/api/v1")
	settings.APIKey = ""

	_, err := NewOpenRouterConnector(settings, testutil.SetupTestLogger(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENROUTER_API_KEY")
}
