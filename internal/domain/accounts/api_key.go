package accounts

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// APIKeyPrefix marks every plain API key issued by this service. Keys are
// shaped "cc_<random>"; only a sha256 hash of the full key is stored.
const APIKeyPrefix = "cc_"

// ScopeRead allows read-only (GET) access, ScopeWrite allows mutating verbs,
// ScopeAll allows everything.
const (
	ScopeRead  = "read"
	ScopeWrite = "write"
	ScopeAll   = "*"
)

// APIKey entity. The plain key is only available at issue time; KeyHash is
// the sha256 of the plain key and KeyPrefix the first characters kept for
// operator identification.
type APIKey struct {
	ID         uint
	Name       string `validate:"required,min=1,max=255"`
	KeyHash    string `validate:"required,len=64"`
	KeyPrefix  string `validate:"required,min=3,max=16"`
	UserID     uint   `validate:"required"`
	IsActive   bool
	LastUsedAt *time.Time
	ExpiresAt  *time.Time
	Scopes     []string `validate:"omitempty,dive,oneof=read write *"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate for validating APIKey struct
func (k *APIKey) Validate() error {
	validate := validator.New()

	err := validate.Struct(k)
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

// HasScope reports whether the key grants the given scope. A key without any
// scopes grants nothing; issuance defaults to the wildcard scope so only a
// deliberately stripped key ends up scopeless.
func (k *APIKey) HasScope(scope string) bool {
	for _, s := range k.Scopes {
		if s == scope || s == ScopeAll {
			return true
		}
	}
	return false
}

// IsExpired reports whether the key has an expiry in the past
func (k *APIKey) IsExpired(now time.Time) bool {
	return k.ExpiresAt != nil && k.ExpiresAt.Before(now)
}
