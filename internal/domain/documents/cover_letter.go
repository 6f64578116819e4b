package documents

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// CoverLetter entity
type CoverLetter struct {
	ID        uint
	Content   string `validate:"required"`
	Favorite  bool
	CreatedAt time.Time
	UserID    *uint
	ResumeID  *uint
	JobPostID *uint
}

// Validate for validating CoverLetter struct
func (c *CoverLetter) Validate() error {
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

// CoverLetterQuery holds list filters and pagination for cover letters
type CoverLetterQuery struct {
	UserID    *uint
	ResumeID  *uint
	JobPostID *uint
	Favorite  *bool
	Limit     int
	Offset    int
}

// NewCoverLetterQuery creates a CoverLetterQuery with default pagination
func NewCoverLetterQuery() *CoverLetterQuery {
	return &CoverLetterQuery{Limit: 50}
}
