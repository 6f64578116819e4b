package v1

import (
	"net/http"
	"strings"

	"github.com/overcast-software/career-caddy-api/internal/domain/accounts"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware
const (
	ContextUserID = "auth_user_id"
	ContextAPIKey = "auth_api_key"
)

// AuthMiddleware authenticates requests with either a JWT access token or an
// API key. API keys are accepted as "Authorization: Bearer cc_…", via the
// X-API-Key header, or the api_key query parameter. API key scopes map to
// verbs: read covers GET/HEAD/OPTIONS, write covers everything else.
func AuthMiddleware(tokenService accounts.TokenService, apiKeyService accounts.APIKeyService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if plainKey := extractAPIKey(ctx); plainKey != "" {
			key, err := apiKeyService.Authenticate(ctx, plainKey)
			if err != nil {
				abortUnauthorized(ctx, "invalid API key")
				return
			}
			if !key.HasScope(requiredScope(ctx.Request.Method)) {
				writeError(ctx, http.StatusForbidden, "API key lacks the required scope")
				ctx.Abort()
				return
			}
			ctx.Set(ContextUserID, key.UserID)
			ctx.Set(ContextAPIKey, key)
			ctx.Next()
			return
		}

		token := bearerToken(ctx)
		if token == "" {
			abortUnauthorized(ctx, "authentication credentials were not provided")
			return
		}

		userID, err := tokenService.ParseAccess(ctx, token)
		if err != nil {
			abortUnauthorized(ctx, "token is invalid or expired")
			return
		}

		ctx.Set(ContextUserID, userID)
		ctx.Next()
	}
}

// extractAPIKey finds an API key in the request, trying the Authorization
// header, the X-API-Key header and the api_key query parameter in that order
func extractAPIKey(ctx *gin.Context) string {
	if token := bearerToken(ctx); strings.HasPrefix(token, accounts.APIKeyPrefix) {
		return token
	}
	if key := ctx.GetHeader("X-API-Key"); key != "" {
		return key
	}
	return ctx.Query("api_key")
}

// bearerToken extracts the credential from an Authorization: Bearer header
func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// requiredScope maps an HTTP verb to the API key scope it needs
func requiredScope(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return accounts.ScopeRead
	default:
		return accounts.ScopeWrite
	}
}

func abortUnauthorized(ctx *gin.Context, detail string) {
	writeError(ctx, http.StatusUnauthorized, detail)
	ctx.Abort()
}
