package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// GoogleSettings holds the location of the service-account credentials file.
// The file itself may be materialized at startup from GOOGLE_CREDENTIALS_JSON
// or GOOGLE_CREDENTIALS_BASE64 when absent on disk.
type GoogleSettings struct {
	CredentialsFile string `mapstructure:"credentials_file" validate:"required"`
}

// Validate checks that all fields in GoogleSettings are valid
func (s *GoogleSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for GoogleSettings: %w", err)
	}

	return nil
}
