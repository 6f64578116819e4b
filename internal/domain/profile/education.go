package profile

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Education is a degree or course of study entry.
type Education struct {
	ID          uint
	Degree      string `validate:"omitempty,max=255"`
	IssueDate   *time.Time
	Institution string `validate:"required,max=255"`
	Major       string `validate:"omitempty,max=255"`
	Minor       string `validate:"omitempty,max=255"`
}

// Validate for validating Education struct
func (e *Education) Validate() error {
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

// EducationQuery holds list filters and pagination for educations. A
// ResumeID filter resolves through the resume_education join.
type EducationQuery struct {
	ResumeID *uint
	Limit    int
	Offset   int
}

// NewEducationQuery creates an EducationQuery with default pagination
func NewEducationQuery() *EducationQuery {
	return &EducationQuery{Limit: 50}
}
