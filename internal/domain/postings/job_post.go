package postings

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// JobPost entity
type JobPost struct {
	ID             uint
	Title          string `validate:"omitempty,max=255"`
	Description    string
	Link           string `validate:"omitempty,url"`
	PostedDate     *time.Time
	ExtractionDate *time.Time
	CreatedAt      time.Time
	CompanyID      *uint
}

// Validate for validating JobPost struct
func (j *JobPost) Validate() error {
	validate := validator.New()

	err := validate.Struct(j)
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

// JobPostQuery holds list filters and pagination for job posts
type JobPostQuery struct {
	CompanyID *uint
	Limit     int
	Offset    int
}

// NewJobPostQuery creates a JobPostQuery with default pagination
func NewJobPostQuery() *JobPostQuery {
	return &JobPostQuery{Limit: 50}
}
