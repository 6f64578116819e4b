package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ServerSettings holds configuration settings for the HTTP server
type ServerSettings struct {
	Port           string `mapstructure:"port" validate:"required,numeric"`
	RequestTimeout int    `mapstructure:"request_timeout" validate:"omitempty,min=1,max=600"`
}

// Validate checks that all fields in ServerSettings are valid
func (s *ServerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ServerSettings: %w", err)
	}

	return nil
}
