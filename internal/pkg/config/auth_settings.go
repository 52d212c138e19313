package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings holds the admin login credentials and token signing material
type AuthSettings struct {
	SecretKey     string        `mapstructure:"secret_key" validate:"required,min=16"`
	AdminEmail    string        `mapstructure:"admin_email" validate:"required,email"`
	AdminPassword string        `mapstructure:"admin_password" validate:"required,min=8"`
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	return nil
}
