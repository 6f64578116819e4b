package documents

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Score is a rich join between a job post and a resume: how well the resume
// fits, on a 1-100 scale, with a prose explanation.
type Score struct {
	ID          uint
	Score       *int `validate:"omitempty,min=1,max=100"`
	Explanation string
	ResumeID    *uint
	JobPostID   *uint
	UserID      *uint
}

// Validate for validating Score struct
func (s *Score) Validate() error {
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

// ScoreQuery holds list filters and pagination for scores
type ScoreQuery struct {
	UserID    *uint
	ResumeID  *uint
	JobPostID *uint
	Limit     int
	Offset    int
}

// NewScoreQuery creates a ScoreQuery with default pagination
func NewScoreQuery() *ScoreQuery {
	return &ScoreQuery{Limit: 50}
}
