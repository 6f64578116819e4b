package profile

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Experience is a work history entry. Content carries the legacy free-text
// body; structured bullet points live in linked Descriptions.
type Experience struct {
	ID        uint
	Title     string `validate:"omitempty,max=255"`
	StartDate *time.Time
	EndDate   *time.Time
	Location  string `validate:"omitempty,max=255"`
	Content   string
	CompanyID *uint
}

// Validate for validating Experience struct
func (e *Experience) Validate() error {
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

// ExperienceQuery holds list filters and pagination for experiences. A
// ResumeID filter resolves through the resume_experience join.
type ExperienceQuery struct {
	ResumeID  *uint
	CompanyID *uint
	Limit     int
	Offset    int
}

// NewExperienceQuery creates an ExperienceQuery with default pagination
func NewExperienceQuery() *ExperienceQuery {
	return &ExperienceQuery{Limit: 50}
}
