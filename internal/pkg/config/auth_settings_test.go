//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *AuthSettings
		expectedError bool
	}{
		{
			name: "valid production settings",
			settings: &AuthSettings{
				SecretKey:         "a-real-secret",
				AccessTTLMinutes:  30,
				RefreshTTLMinutes: 10080,
			},
			expectedError: false,
		},
		{
			name: "placeholder secret allowed in debug",
			settings: &AuthSettings{
				SecretKey:         PlaceholderSecretKey,
				AccessTTLMinutes:  30,
				RefreshTTLMinutes: 10080,
				Debug:             true,
			},
			expectedError: false,
		},
		{
			name: "placeholder secret rejected in production",
			settings: &AuthSettings{
				SecretKey:         PlaceholderSecretKey,
				AccessTTLMinutes:  30,
				RefreshTTLMinutes: 10080,
			},
			expectedError: true,
		},
		{
			name: "missing secret",
			settings: &AuthSettings{
				AccessTTLMinutes:  30,
				RefreshTTLMinutes: 10080,
			},
			expectedError: true,
		},
		{
			name: "refresh not longer than access",
			settings: &AuthSettings{
				SecretKey:         "a-real-secret",
				AccessTTLMinutes:  60,
				RefreshTTLMinutes: 60,
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
