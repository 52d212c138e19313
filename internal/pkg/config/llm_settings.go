package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Default Groq model fallback order. Models are tried front to back; the
// OpenRouter fallback only fires once every model here is exhausted.
var DefaultGroqModels = []string{
	"openai/gpt-oss-120b",
	"openai/gpt-oss-20b",
	"llama-3.3-70b-versatile",
}

// GroqSettings holds the configuration for the Groq chat-completions API
type GroqSettings struct {
	APIKey     string        `mapstructure:"api_key"`
	BaseURL    string        `mapstructure:"base_url" validate:"required,url"`
	Models     []string      `mapstructure:"models" validate:"required,min=1"`
	MaxRetries int           `mapstructure:"max_retries" validate:"min=1,max=10"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// Validate checks that all fields in GroqSettings are valid
func (s *GroqSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for GroqSettings: %w", err)
	}

	if s.APIKey == "" {
		return fmt.Errorf("missing GROQ_API_KEY or QROQ_TOKEN")
	}

	return nil
}

// OpenRouterSettings holds the configuration for the OpenRouter fallback provider.
// The API key may be empty; the fallback then reports an error only when reached.
type OpenRouterSettings struct {
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url" validate:"required,url"`
	Model    string        `mapstructure:"model" validate:"required"`
	Referer  string        `mapstructure:"referer"`
	AppTitle string        `mapstructure:"app_title"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Validate checks that all fields in OpenRouterSettings are valid
func (s *OpenRouterSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for OpenRouterSettings: %w", err)
	}

	return nil
}
