package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// RestConfig aggregates every setting the REST application needs
type RestConfig struct {
	Server     ServerSettings     `mapstructure:"server"`
	Logger     LoggerSettings     `mapstructure:"logger"`
	Database   DatabaseSettings   `mapstructure:"database"`
	Groq       GroqSettings       `mapstructure:"groq"`
	OpenRouter OpenRouterSettings `mapstructure:"openrouter"`
	Google     GoogleSettings     `mapstructure:"google"`
	Auth       AuthSettings       `mapstructure:"auth"`
}

// CliConfig aggregates the settings the CLI application needs. The CLI has no
// server surface, so the server, database and auth sections are omitted.
type CliConfig struct {
	Logger     LoggerSettings     `mapstructure:"logger"`
	Groq       GroqSettings       `mapstructure:"groq"`
	OpenRouter OpenRouterSettings `mapstructure:"openrouter"`
	Google     GoogleSettings     `mapstructure:"google"`
}

// InitializeRestConfig loads the REST application configuration from the YAML
// file at configPath (optional) and from environment variables. Environment
// variables take precedence over file values.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()

	setDefaults(v)
	bindEnvVars(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			// A missing file is fine, the environment carries the settings then
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Legacy deployments exported QROQ_TOKEN instead of GROQ_API_KEY
	if cfg.Groq.APIKey == "" {
		cfg.Groq.APIKey = os.Getenv("QROQ_TOKEN")
	}

	if err := validateRestConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// InitializeCliConfig loads the CLI application configuration from the YAML
// file at configPath (optional) and from environment variables.
func InitializeCliConfig(configPath string) (*CliConfig, error) {
	v := viper.New()

	setDefaults(v)
	bindEnvVars(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
		}
	}

	var cfg CliConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Groq.APIKey == "" {
		cfg.Groq.APIKey = os.Getenv("QROQ_TOKEN")
	}

	if err := validateCliConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.debug", false)

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "")

	v.SetDefault("groq.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("groq.models", DefaultGroqModels)
	v.SetDefault("groq.max_retries", 3)
	v.SetDefault("groq.retry_delay", 2*time.Second)
	v.SetDefault("groq.timeout", 60*time.Second)

	v.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("openrouter.model", "deepseek/deepseek-chat-v3.1")
	v.SetDefault("openrouter.referer", "https://github.com/user/generate_description")
	v.SetDefault("openrouter.app_title", "Description Generator")
	v.SetDefault("openrouter.timeout", 60*time.Second)

	v.SetDefault("google.credentials_file", "google_credentials.json")

	v.SetDefault("auth.token_ttl", 12*time.Hour)
}

// bindEnvVars maps the documented deployment environment variables onto
// configuration keys. BindEnv never fails when both arguments are given.
func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("server.debug", "DEBUG")

	_ = v.BindEnv("logger.log_level", "LOG_LEVEL")

	_ = v.BindEnv("database.type", "DATABASE_TYPE")
	_ = v.BindEnv("database.dsn", "DATABASE_DSN")
	_ = v.BindEnv("database.name", "DATABASE_NAME")

	_ = v.BindEnv("groq.api_key", "GROQ_API_KEY")

	_ = v.BindEnv("openrouter.api_key", "OPENROUTER_API_KEY")
	_ = v.BindEnv("openrouter.referer", "OPENROUTER_REFERER")
	_ = v.BindEnv("openrouter.app_title", "OPENROUTER_APP_TITLE")

	_ = v.BindEnv("google.credentials_file", "GOOGLE_CREDENTIALS_FILE")

	_ = v.BindEnv("auth.secret_key", "SECRET_KEY")
	_ = v.BindEnv("auth.admin_email", "ADMIN_EMAIL")
	_ = v.BindEnv("auth.admin_password", "ADMIN_PASSWORD")
}

func validateRestConfig(cfg *RestConfig) error {
	if err := cfg.Server.Validate(); err != nil {
		return err
	}
	if err := cfg.Logger.Validate(); err != nil {
		return err
	}
	if err := cfg.Database.Validate(); err != nil {
		return err
	}
	if err := cfg.Groq.Validate(); err != nil {
		return err
	}
	if err := cfg.OpenRouter.Validate(); err != nil {
		return err
	}
	if err := cfg.Google.Validate(); err != nil {
		return err
	}
	if err := cfg.Auth.Validate(); err != nil {
		return err
	}
	return nil
}

func validateCliConfig(cfg *CliConfig) error {
	if err := cfg.Logger.Validate(); err != nil {
		return err
	}
	if err := cfg.Groq.Validate(); err != nil {
		return err
	}
	if err := cfg.OpenRouter.Validate(); err != nil {
		return err
	}
	if err := cfg.Google.Validate(); err != nil {
		return err
	}
	return nil
}
