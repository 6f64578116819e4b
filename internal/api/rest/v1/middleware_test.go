//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"testing"

	"github.com/overcast-software/career-caddy-api/internal/domain/accounts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_MissingCredentials(t *testing.T) {
	tokenService := new(MockTokenService)
	apiKeyService := new(MockAPIKeyService)
	middleware := AuthMiddleware(tokenService, apiKeyService)

	c, w := newTestContext(t, "GET", "/api/v1/users", "")

	middleware(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "not provided")
}

func TestAuthMiddleware_ValidAccessToken(t *testing.T) {
	tokenService := new(MockTokenService)
	apiKeyService := new(MockAPIKeyService)
	middleware := AuthMiddleware(tokenService, apiKeyService)

	tokenService.On("ParseAccess", mock.Anything, "some-jwt").Return(uint(7), nil)

	c, _ := newTestContext(t, "GET", "/api/v1/users", "")
	c.Request.Header.Set("Authorization", "Bearer some-jwt")

	middleware(c)

	assert.False(t, c.IsAborted())
	userID, exists := c.Get(ContextUserID)
	require.True(t, exists)
	assert.Equal(t, uint(7), userID)
	tokenService.AssertExpectations(t)
}

func TestAuthMiddleware_InvalidAccessToken(t *testing.T) {
	tokenService := new(MockTokenService)
	apiKeyService := new(MockAPIKeyService)
	middleware := AuthMiddleware(tokenService, apiKeyService)

	tokenService.On("ParseAccess", mock.Anything, "expired-jwt").
		Return(uint(0), errors.New("token is expired"))

	c, w := newTestContext(t, "GET", "/api/v1/users", "")
	c.Request.Header.Set("Authorization", "Bearer expired-jwt")

	middleware(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token is invalid or expired")
}

func TestAuthMiddleware_APIKeyViaBearer(t *testing.T) {
	tokenService := new(MockTokenService)
	apiKeyService := new(MockAPIKeyService)
	middleware := AuthMiddleware(tokenService, apiKeyService)

	key := &accounts.APIKey{ID: 3, UserID: 7, IsActive: true, Scopes: []string{accounts.ScopeAll}}
	apiKeyService.On("Authenticate", mock.Anything, "cc_abcdef").Return(key, nil)

	c, _ := newTestContext(t, "GET", "/api/v1/users", "")
	c.Request.Header.Set("Authorization", "Bearer cc_abcdef")

	middleware(c)

	assert.False(t, c.IsAborted())
	userID, exists := c.Get(ContextUserID)
	require.True(t, exists)
	assert.Equal(t, uint(7), userID)
	apiKeyService.AssertExpectations(t)
	tokenService.AssertNotCalled(t, "ParseAccess", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_APIKeyViaHeader(t *testing.T) {
	tokenService := new(MockTokenService)
	apiKeyService := new(MockAPIKeyService)
	middleware := AuthMiddleware(tokenService, apiKeyService)

	key := &accounts.APIKey{ID: 3, UserID: 7, IsActive: true, Scopes: []string{accounts.ScopeAll}}
	apiKeyService.On("Authenticate", mock.Anything, "cc_abcdef").Return(key, nil)

	c, _ := newTestContext(t, "GET", "/api/v1/users", "")
	c.Request.Header.Set("X-API-Key", "cc_abcdef")

	middleware(c)

	assert.False(t, c.IsAborted())
	apiKeyService.AssertExpectations(t)
}

func TestAuthMiddleware_APIKeyViaQueryParameter(t *testing.T) {
	tokenService := new(MockTokenService)
	apiKeyService := new(MockAPIKeyService)
	middleware := AuthMiddleware(tokenService, apiKeyService)

	key := &accounts.APIKey{ID: 3, UserID: 7, IsActive: true, Scopes: []string{accounts.ScopeAll}}
	apiKeyService.On("Authenticate", mock.Anything, "cc_abcdef").Return(key, nil)

	c, _ := newTestContext(t, "GET", "/api/v1/users?api_key=cc_abcdef", "")

	middleware(c)

	assert.False(t, c.IsAborted())
	apiKeyService.AssertExpectations(t)
}

func TestAuthMiddleware_UnknownAPIKey(t *testing.T) {
	tokenService := new(MockTokenService)
	apiKeyService := new(MockAPIKeyService)
	middleware := AuthMiddleware(tokenService, apiKeyService)

	apiKeyService.On("Authenticate", mock.Anything, "cc_unknown").
		Return(nil, errors.New("unknown key"))

	c, w := newTestContext(t, "GET", "/api/v1/users", "")
	c.Request.Header.Set("X-API-Key", "cc_unknown")

	middleware(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid API key")
}

func TestAuthMiddleware_ReadScopeCannotWrite(t *testing.T) {
	tokenService := new(MockTokenService)
	apiKeyService := new(MockAPIKeyService)
	middleware := AuthMiddleware(tokenService, apiKeyService)

	key := &accounts.APIKey{ID: 3, UserID: 7, IsActive: true, Scopes: []string{accounts.ScopeRead}}
	apiKeyService.On("Authenticate", mock.Anything, "cc_readonly").Return(key, nil)

	c, w := newTestContext(t, "POST", "/api/v1/companies", "")
	c.Request.Header.Set("X-API-Key", "cc_readonly")

	middleware(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "scope")
}

func TestAuthMiddleware_ReadScopeCanRead(t *testing.T) {
	tokenService := new(MockTokenService)
	apiKeyService := new(MockAPIKeyService)
	middleware := AuthMiddleware(tokenService, apiKeyService)

	key := &accounts.APIKey{ID: 3, UserID: 7, IsActive: true, Scopes: []string{accounts.ScopeRead}}
	apiKeyService.On("Authenticate", mock.Anything, "cc_readonly").Return(key, nil)

	c, _ := newTestContext(t, "GET", "/api/v1/companies", "")
	c.Request.Header.Set("X-API-Key", "cc_readonly")

	middleware(c)

	assert.False(t, c.IsAborted())
}

func TestAuthMiddleware_ScopelessKeyDeniedRead(t *testing.T) {
	tokenService := new(MockTokenService)
	apiKeyService := new(MockAPIKeyService)
	middleware := AuthMiddleware(tokenService, apiKeyService)

	key := &accounts.APIKey{ID: 3, UserID: 7, IsActive: true}
	apiKeyService.On("Authenticate", mock.Anything, "cc_scopeless").Return(key, nil)

	c, w := newTestContext(t, "GET", "/api/v1/users", "")
	c.Request.Header.Set("X-API-Key", "cc_scopeless")

	middleware(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "scope")
}

func TestAuthMiddleware_ScopelessKeyDeniedWrite(t *testing.T) {
	tokenService := new(MockTokenService)
	apiKeyService := new(MockAPIKeyService)
	middleware := AuthMiddleware(tokenService, apiKeyService)

	key := &accounts.APIKey{ID: 3, UserID: 7, IsActive: true}
	apiKeyService.On("Authenticate", mock.Anything, "cc_scopeless").Return(key, nil)

	c, w := newTestContext(t, "POST", "/api/v1/companies", "")
	c.Request.Header.Set("X-API-Key", "cc_scopeless")

	middleware(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHasScope(t *testing.T) {
	scopeless := &accounts.APIKey{}
	assert.False(t, scopeless.HasScope(accounts.ScopeRead))
	assert.False(t, scopeless.HasScope(accounts.ScopeWrite))

	wildcard := &accounts.APIKey{Scopes: []string{accounts.ScopeAll}}
	assert.True(t, wildcard.HasScope(accounts.ScopeRead))
	assert.True(t, wildcard.HasScope(accounts.ScopeWrite))

	readOnly := &accounts.APIKey{Scopes: []string{accounts.ScopeRead}}
	assert.True(t, readOnly.HasScope(accounts.ScopeRead))
	assert.False(t, readOnly.HasScope(accounts.ScopeWrite))
}

func TestRequiredScope(t *testing.T) {
	assert.Equal(t, accounts.ScopeRead, requiredScope(http.MethodGet))
	assert.Equal(t, accounts.ScopeRead, requiredScope(http.MethodHead))
	assert.Equal(t, accounts.ScopeWrite, requiredScope(http.MethodPost))
	assert.Equal(t, accounts.ScopeWrite, requiredScope(http.MethodPatch))
	assert.Equal(t, accounts.ScopeWrite, requiredScope(http.MethodDelete))
}

func TestBearerToken(t *testing.T) {
	c, _ := newTestContext(t, "GET", "/api/v1/users", "")
	c.Request.Header.Set("Authorization", "Token abc")
	assert.Empty(t, bearerToken(c))

	c.Request.Header.Set("Authorization", "Bearer abc")
	assert.Equal(t, "abc", bearerToken(c))
}
