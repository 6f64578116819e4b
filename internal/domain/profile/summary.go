package profile

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Summary is a short pitch paragraph, optionally written for a specific job
// post or resume.
type Summary struct {
	ID        uint
	Content   string `validate:"required"`
	UserID    *uint
	JobPostID *uint
	ResumeID  *uint
}

// Validate for validating Summary struct
func (s *Summary) Validate() error {
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

// SummaryQuery holds list filters and pagination for summaries
type SummaryQuery struct {
	UserID    *uint
	JobPostID *uint
	ResumeID  *uint
	Limit     int
	Offset    int
}

// NewSummaryQuery creates a SummaryQuery with default pagination
func NewSummaryQuery() *SummaryQuery {
	return &SummaryQuery{Limit: 50}
}
