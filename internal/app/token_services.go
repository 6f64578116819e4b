package app

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/overcast-software/career-caddy-api/internal/domain/accounts"
	"github.com/overcast-software/career-caddy-api/internal/pkg/config"
	"github.com/overcast-software/career-caddy-api/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims are the registered claims plus the token type discriminator
type tokenClaims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// tokenService implements the TokenService interface using HS256-signed JWTs
type tokenService struct {
	accountService accounts.AccountService
	settings       config.AuthSettings
	logger         logger.Logger
	now            func() time.Time
}

// NewTokenService creates a new instance of TokenService
func NewTokenService(accountService accounts.AccountService, settings config.AuthSettings, logger logger.Logger) (accounts.TokenService, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth settings: %w", err)
	}
	return &tokenService{
		accountService: accountService,
		settings:       settings,
		logger:         logger,
		now:            time.Now,
	}, nil
}

// ObtainPair exchanges credentials for an access/refresh token pair
func (s *tokenService) ObtainPair(ctx context.Context, email, password string) (*accounts.TokenPair, error) {
	user, err := s.accountService.CheckCredentials(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	pair, err := s.issuePair(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Issued token pair for user ", user.ID)
	return pair, nil
}

// Refresh exchanges a valid refresh token for a fresh pair
func (s *tokenService) Refresh(ctx context.Context, refreshToken string) (*accounts.TokenPair, error) {
	claims, err := s.parse(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}
	if claims.TokenType != accounts.TokenTypeRefresh {
		return nil, fmt.Errorf("token is not a refresh token")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid token subject: %w", err)
	}

	// The user must still exist; a deleted account invalidates its tokens.
	if _, err := s.accountService.GetUserByID(ctx, uint(userID)); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	pair, err := s.issuePair(uint(userID))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return pair, nil
}

// Verify checks a token's signature and expiry regardless of its type
func (s *tokenService) Verify(_ context.Context, token string) error {
	if _, err := s.parse(token); err != nil {
		return fmt.Errorf("invalid token: %w", err)
	}
	return nil
}

// ParseAccess validates an access token and returns the user ID it carries
func (s *tokenService) ParseAccess(_ context.Context, token string) (uint, error) {
	claims, err := s.parse(token)
	if err != nil {
		return 0, fmt.Errorf("invalid access token: %w", err)
	}
	if claims.TokenType != accounts.TokenTypeAccess {
		return 0, fmt.Errorf("token is not an access token")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token subject: %w", err)
	}
	return uint(userID), nil
}

func (s *tokenService) issuePair(userID uint) (*accounts.TokenPair, error) {
	access, err := s.sign(userID, accounts.TokenTypeAccess, time.Duration(s.settings.AccessTTLMinutes)*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := s.sign(userID, accounts.TokenTypeRefresh, time.Duration(s.settings.RefreshTTLMinutes)*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &accounts.TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *tokenService) sign(userID uint, tokenType string, ttl time.Duration) (string, error) {
	now := s.now().UTC()
	claims := tokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.settings.SecretKey))
}

func (s *tokenService) parse(tokenString string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.settings.SecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	return claims, nil
}
