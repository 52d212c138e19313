//go:build unit
// +build unit

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv provides the minimum environment a valid REST config needs.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("QROQ_TOKEN", "")
	t.Setenv("SECRET_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "password123")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_TYPE", "")
}

func TestInitializeRestConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.Groq.BaseURL)
	assert.Equal(t, DefaultGroqModels, cfg.Groq.Models)
	assert.Equal(t, 3, cfg.Groq.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.Groq.RetryDelay)
	assert.Equal(t, "deepseek/deepseek-chat-v3.1", cfg.OpenRouter.Model)
	assert.Equal(t, "google_credentials.json", cfg.Google.CredentialsFile)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
}

func TestInitializeRestConfig_PortOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")

	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestInitializeRestConfig_LegacyGroqToken(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("QROQ_TOKEN", "gsk_legacy")

	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)
	assert.Equal(t, "gsk_legacy", cfg.Groq.APIKey)
}

func TestInitializeRestConfig_MissingGroqKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GROQ_API_KEY", "")

	_, err := InitializeRestConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_API_KEY or QROQ_TOKEN")
}

func TestInitializeRestConfig_MissingConfigFileTolerated(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := InitializeRestConfig("/nonexistent/rest-app.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
}

func TestInitializeRestConfig_MissingAuthSettings(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SECRET_KEY", "too-short")

	_, err := InitializeRestConfig("")
	assert.Error(t, err)
}

func TestInitializeCliConfig_NoAuthRequired(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("QROQ_TOKEN", "")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")

	cfg, err := InitializeCliConfig("")
	require.NoError(t, err)
	assert.Equal(t, "gsk_test", cfg.Groq.APIKey)
	assert.Equal(t, DefaultGroqModels, cfg.Groq.Models)
}
