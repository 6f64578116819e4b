package accounts

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// User entity. PasswordHash is a bcrypt hash and is never serialized to
// API clients.
type User struct {
	ID           uint
	Name         string `validate:"omitempty,max=255"`
	Username     string `validate:"omitempty,max=150"`
	FirstName    string `validate:"omitempty,max=150"`
	LastName     string `validate:"omitempty,max=150"`
	Email        string `validate:"omitempty,email,max=255"`
	Phone        string `validate:"omitempty,max=32"`
	PasswordHash string
}

// Validate for validating User struct
func (u *User) Validate() error {
	validate := validator.New()

	err := validate.Struct(u)
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

// UserQuery holds list filters and pagination for users
type UserQuery struct {
	Email  string
	Limit  int
	Offset int
}

// NewUserQuery creates a UserQuery with default pagination
func NewUserQuery() *UserQuery {
	return &UserQuery{Limit: 50}
}
