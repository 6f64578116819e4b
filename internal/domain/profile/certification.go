package profile

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Certification is a professional certification entry.
type Certification struct {
	ID        uint
	Issuer    string `validate:"omitempty,max=255"`
	Title     string `validate:"omitempty,max=255"`
	IssueDate *time.Time
	Content   string
}

// Validate for validating Certification struct
func (c *Certification) Validate() error {
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

// CertificationQuery holds list filters and pagination for certifications. A
// ResumeID filter resolves through the resume_certification join.
type CertificationQuery struct {
	ResumeID *uint
	Limit    int
	Offset   int
}

// NewCertificationQuery creates a CertificationQuery with default pagination
func NewCertificationQuery() *CertificationQuery {
	return &CertificationQuery{Limit: 50}
}
