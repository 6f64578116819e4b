package profile

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Description is a single bullet line attachable to experiences. The order
// of a line within an experience lives on the join row.
type Description struct {
	ID      uint
	Content string `validate:"required"`
}

// Validate for validating Description struct
func (d *Description) Validate() error {
	validate := validator.New()

	err := validate.Struct(d)
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

// DescriptionQuery holds list filters and pagination for descriptions. An
// ExperienceID filter resolves through the experience_description join in
// line order.
type DescriptionQuery struct {
	ExperienceID *uint
	Limit        int
	Offset       int
}

// NewDescriptionQuery creates a DescriptionQuery with default pagination
func NewDescriptionQuery() *DescriptionQuery {
	return &DescriptionQuery{Limit: 50}
}
