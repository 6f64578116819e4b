package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PlaceholderSecretKey is the build-time default secret. It is only
// acceptable while debug mode is on.
const PlaceholderSecretKey = "your_generated_secret_key"

// AuthSettings holds configuration settings for token authentication
type AuthSettings struct {
	SecretKey         string `mapstructure:"secret_key" validate:"required"`
	AccessTTLMinutes  int    `mapstructure:"access_ttl_minutes" validate:"required,min=1,max=1440"`
	RefreshTTLMinutes int    `mapstructure:"refresh_ttl_minutes" validate:"required,min=1"`
	Debug             bool   `mapstructure:"debug"`
}

// Validate checks that all fields in AuthSettings are valid.
// A production deployment (debug off) must not run with the placeholder
// secret key.
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	if !s.Debug && s.SecretKey == PlaceholderSecretKey {
		return fmt.Errorf("secret_key must be set to a secure value in production")
	}

	if s.RefreshTTLMinutes <= s.AccessTTLMinutes {
		return fmt.Errorf("refresh_ttl_minutes must exceed access_ttl_minutes")
	}

	return nil
}
