package commands

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/description-generator/internal/pkg/config"
	"github.com/MGTheTrain/description-generator/internal/pkg/logger"
)

func setupLogger(logLevel string) (logger.Logger, error) {
	if logLevel == "" {
		logLevel = "info"
	}
	settings := &config.LoggerSettings{
		LogLevel: logLevel,
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadSettings reads the application configuration from the optional
// CONFIG_PATH file and the environment.
func loadSettings() (*config.CliConfig, error) {
	cfg, err := config.InitializeCliConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return cfg, nil
}
