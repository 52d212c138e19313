//go:build unit
// +build unit

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGroqSettingsValidation(t *testing.T) {
	valid := func() *GroqSettings {
		return &GroqSettings{
			APIKey:     "gsk_test",
			BaseURL:    "https://api.groq.com/openai/v1",
			Models:     DefaultGroqModels,
			MaxRetries: 3,
			RetryDelay: 2 * time.Second,
			Timeout:    60 * time.Second,
		}
	}

	t.Run("valid settings", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing api key", func(t *testing.T) {
		settings := valid()
		settings.APIKey = ""
		err := settings.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "GROQ_API_KEY or QROQ_TOKEN")
	})

	t.Run("missing base url", func(t *testing.T) {
		settings := valid()
		settings.BaseURL = ""
		assert.Error(t, settings.Validate())
	})

	t.Run("empty model list", func(t *testing.T) {
		settings := valid()
		settings.Models = nil
		assert.Error(t, settings.Validate())
	})

	t.Run("retries out of range", func(t *testing.T) {
		settings := valid()
		settings.MaxRetries = 0
		assert.Error(t, settings.Validate())

		settings.MaxRetries = 11
		assert.Error(t, settings.Validate())
	})
}

func TestOpenRouterSettingsValidation(t *testing.T) {
	valid := func() *OpenRouterSettings {
		return &OpenRouterSettings{
			BaseURL: "https://openrouter.ai/api/v1",
			Model:   "deepseek/deepseek-chat-v3.1",
			Timeout: 60 * time.Second,
		}
	}

	t.Run("valid without api key", func(t *testing.T) {
		// The fallback provider is optional; an empty key is allowed here
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing model", func(t *testing.T) {
		settings := valid()
		settings.Model = ""
		assert.Error(t, settings.Validate())
	})

	t.Run("missing base url", func(t *testing.T) {
		settings := valid()
		settings.BaseURL = ""
		assert.Error(t, settings.Validate())
	})
}

func TestDefaultGroqModelsOrder(t *testing.T) {
	assert.Equal(t, []string{
		"openai/gpt-oss-120b",
		"openai/gpt-oss-20b",
		"llama-3.3-70b-versatile",
	}, DefaultGroqModels)
}
