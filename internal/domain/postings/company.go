package postings

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Company entity
type Company struct {
	ID          uint
	Name        string `validate:"required,min=1,max=255"`
	DisplayName string `validate:"omitempty,max=255"`
}

// Validate for validating Company struct
func (c *Company) Validate() error {
	validate := validator.New()

	err := validate.Struct(c)
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

// CompanyQuery holds list filters and pagination for companies
type CompanyQuery struct {
	Name   string
	Limit  int
	Offset int
}

// NewCompanyQuery creates a CompanyQuery with default pagination
func NewCompanyQuery() *CompanyQuery {
	return &CompanyQuery{Limit: 50}
}
