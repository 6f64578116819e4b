package tracking

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Application entity: one submission of a resume (and optionally a cover
// letter) against a job post. Status mirrors the latest status event.
type Application struct {
	ID            uint
	UserID        *uint
	JobPostID     *uint
	CompanyID     *uint
	ResumeID      *uint
	CoverLetterID *uint
	AppliedAt     time.Time
	Status        string `validate:"omitempty,max=255"`
	TrackingURL   string `validate:"omitempty,url"`
	Notes         string
}

// Validate for validating Application struct
func (a *Application) Validate() error {
	validate := validator.New()

	err := validate.Struct(a)
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

// ApplicationQuery holds list filters and pagination for applications
type ApplicationQuery struct {
	UserID        *uint
	JobPostID     *uint
	CompanyID     *uint
	ResumeID      *uint
	CoverLetterID *uint
	Limit         int
	Offset        int
}

// NewApplicationQuery creates an ApplicationQuery with default pagination
func NewApplicationQuery() *ApplicationQuery {
	return &ApplicationQuery{Limit: 50}
}
