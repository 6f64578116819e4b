package documents

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Resume entity. Content is the full resume text; FilePath records where it
// was ingested from, when it came from a file.
type Resume struct {
	ID       uint
	Content  string `validate:"required"`
	FilePath string `validate:"omitempty,max=1024"`
	Favorite bool
	UserID   *uint
}

// Validate for validating Resume struct
func (r *Resume) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
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

// ResumeQuery holds list filters and pagination for resumes
type ResumeQuery struct {
	UserID   *uint
	Favorite *bool
	Limit    int
	Offset   int
}

// NewResumeQuery creates a ResumeQuery with default pagination
func NewResumeQuery() *ResumeQuery {
	return &ResumeQuery{Limit: 50}
}
