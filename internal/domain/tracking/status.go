package tracking

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Status is a catalog entry for application states, e.g. submitted,
// interview, rejected, offer.
type Status struct {
	ID         uint
	Status     string `validate:"required,min=1,max=255"`
	StatusType string `validate:"omitempty,max=255"`
	CreatedAt  time.Time
}

// Validate for validating Status struct
func (s *Status) Validate() error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// StatusQuery holds list filters and pagination for statuses
type StatusQuery struct {
	StatusType string
	Limit      int
	Offset     int
}

// NewStatusQuery creates a StatusQuery with default pagination
func NewStatusQuery() *StatusQuery {
	return &StatusQuery{Limit: 50}
}

// StatusEvent links an application to a status at a point in time; the
// sequence of events for an application, ordered by creation, is its status
// history.
type StatusEvent struct {
	ID            uint
	ApplicationID uint `validate:"required"`
	StatusID      uint `validate:"required"`
	CreatedAt     time.Time
}

// Validate for validating StatusEvent struct
func (e *StatusEvent) Validate() error {
	validate := validator.New()

	err := validate.Struct(e)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
