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
)

func TestTokenHandler_Obtain_Success(t *testing.T) {
	tokenService := new(MockTokenService)
	handler := NewTokenHandler(tokenService)

	pair := &accounts.TokenPair{Access: "access-jwt", Refresh: "refresh-jwt"}
	tokenService.On("ObtainPair", mock.Anything, "casey@example.com", "hunter2").Return(pair, nil)

	body := `{"email": "casey@example.com", "password": "hunter2"}`
	c, w := newTestContext(t, "POST", "/api/v1/token", body)

	handler.Obtain(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access":"access-jwt"`)
	assert.Contains(t, w.Body.String(), `"refresh":"refresh-jwt"`)
	tokenService.AssertExpectations(t)
}

func TestTokenHandler_Obtain_BadCredentials(t *testing.T) {
	tokenService := new(MockTokenService)
	handler := NewTokenHandler(tokenService)

	tokenService.On("ObtainPair", mock.Anything, "casey@example.com", "wrong").
		Return(nil, errors.New("invalid credentials"))

	body := `{"email": "casey@example.com", "password": "wrong"}`
	c, w := newTestContext(t, "POST", "/api/v1/token", body)

	handler.Obtain(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "no active account found with the given credentials")
}

func TestTokenHandler_Obtain_MissingFields(t *testing.T) {
	tokenService := new(MockTokenService)
	handler := NewTokenHandler(tokenService)

	c, w := newTestContext(t, "POST", "/api/v1/token", `{"email": "casey@example.com"}`)

	handler.Obtain(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	tokenService.AssertNotCalled(t, "ObtainPair", mock.Anything, mock.Anything, mock.Anything)
}

func TestTokenHandler_Refresh_Success(t *testing.T) {
	tokenService := new(MockTokenService)
	handler := NewTokenHandler(tokenService)

	pair := &accounts.TokenPair{Access: "new-access", Refresh: "new-refresh"}
	tokenService.On("Refresh", mock.Anything, "old-refresh").Return(pair, nil)

	c, w := newTestContext(t, "POST", "/api/v1/token/refresh", `{"refresh": "old-refresh"}`)

	handler.Refresh(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "new-access")
	tokenService.AssertExpectations(t)
}

func TestTokenHandler_Refresh_InvalidToken(t *testing.T) {
	tokenService := new(MockTokenService)
	handler := NewTokenHandler(tokenService)

	tokenService.On("Refresh", mock.Anything, "stale").Return(nil, errors.New("token is expired"))

	c, w := newTestContext(t, "POST", "/api/v1/token/refresh", `{"refresh": "stale"}`)

	handler.Refresh(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token is invalid or expired")
}

func TestTokenHandler_Verify_Success(t *testing.T) {
	tokenService := new(MockTokenService)
	handler := NewTokenHandler(tokenService)

	tokenService.On("Verify", mock.Anything, "valid-jwt").Return(nil)

	c, w := newTestContext(t, "POST", "/api/v1/token/verify", `{"token": "valid-jwt"}`)

	handler.Verify(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "{}", w.Body.String())
}

func TestTokenHandler_Verify_InvalidToken(t *testing.T) {
	tokenService := new(MockTokenService)
	handler := NewTokenHandler(tokenService)

	tokenService.On("Verify", mock.Anything, "tampered").Return(errors.New("signature is invalid"))

	c, w := newTestContext(t, "POST", "/api/v1/token/verify", `{"token": "tampered"}`)

	handler.Verify(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
