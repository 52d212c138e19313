package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultPort is used when neither the config file nor the PORT
// environment variable names a port.
const DefaultPort = "5000"

// ServerSettings holds the HTTP server configuration
type ServerSettings struct {
	Port  string `mapstructure:"port" validate:"required,numeric"`
	Debug bool   `mapstructure:"debug"`
}

// Validate checks that all fields in ServerSettings are valid
func (s *ServerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ServerSettings: %w", err)
	}

	return nil
}
