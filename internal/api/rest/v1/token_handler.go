package v1

import (
	"net/http"

	"github.com/overcast-software/career-caddy-api/internal/domain/accounts"

	"github.com/gin-gonic/gin"
)

// TokenHandler defines the interface for the JWT credential exchange
// endpoints
type TokenHandler interface {
	Obtain(ctx *gin.Context)
	Refresh(ctx *gin.Context)
	Verify(ctx *gin.Context)
}

type tokenHandler struct {
	tokenService accounts.TokenService
}

// NewTokenHandler creates a new TokenHandler
func NewTokenHandler(tokenService accounts.TokenService) TokenHandler {
	return &tokenHandler{tokenService: tokenService}
}

type obtainRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type verifyRequest struct {
	Token string `json:"token" binding:"required"`
}

type tokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Obtain exchanges email/password credentials for a token pair. Invalid
// credentials are a 401 without detail about which part failed.
func (handler *tokenHandler) Obtain(ctx *gin.Context) {
	var request obtainRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeError(ctx, http.StatusBadRequest, "email and password are required")
		return
	}

	pair, err := handler.tokenService.ObtainPair(ctx, request.Email, request.Password)
	if err != nil {
		writeError(ctx, http.StatusUnauthorized, "no active account found with the given credentials")
		return
	}

	ctx.JSON(http.StatusOK, tokenPairResponse{Access: pair.Access, Refresh: pair.Refresh})
}

// Refresh exchanges a refresh token for a fresh pair
func (handler *tokenHandler) Refresh(ctx *gin.Context) {
	var request refreshRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeError(ctx, http.StatusBadRequest, "refresh token is required")
		return
	}

	pair, err := handler.tokenService.Refresh(ctx, request.Refresh)
	if err != nil {
		writeError(ctx, http.StatusUnauthorized, "token is invalid or expired")
		return
	}

	ctx.JSON(http.StatusOK, tokenPairResponse{Access: pair.Access, Refresh: pair.Refresh})
}

// Verify checks a token's signature and expiry, responding 200 with an empty
// object on success
func (handler *tokenHandler) Verify(ctx *gin.Context) {
	var request verifyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		writeError(ctx, http.StatusBadRequest, "token is required")
		return
	}

	if err := handler.tokenService.Verify(ctx, request.Token); err != nil {
		writeError(ctx, http.StatusUnauthorized, "token is invalid or expired")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{})
}
