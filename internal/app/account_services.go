package app

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/overcast-software/career-caddy-api/internal/domain/accounts"
	"github.com/overcast-software/career-caddy-api/internal/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any failed credential check. Unknown
// emails and wrong passwords are indistinguishable to the caller.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials")

// accountService implements the AccountService interface for managing users
type accountService struct {
	userRepo accounts.UserRepository
	logger   logger.Logger
}

// NewAccountService creates a new instance of AccountService
func NewAccountService(userRepo accounts.UserRepository, logger logger.Logger) (accounts.AccountService, error) {
	return &accountService{
		userRepo: userRepo,
		logger:   logger,
	}, nil
}

// CreateUser stores a new user, bcrypt-hashing a non-empty password first
func (s *accountService) CreateUser(ctx context.Context, user *accounts.User, password string) error {
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("%w", err)
	}

	s.logger.Info("Created user with id ", user.ID)
	return nil
}

// ListUsers retrieves users considering a query filter when set
func (s *accountService) ListUsers(ctx context.Context, query *accounts.UserQuery) ([]*accounts.User, error) {
	users, err := s.userRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return users, nil
}

// GetUserByID retrieves a user by ID
func (s *accountService) GetUserByID(ctx context.Context, userID uint) (*accounts.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return user, nil
}

// UpdateUser updates user attributes; a non-nil password replaces the stored
// hash while nil leaves it untouched.
func (s *accountService) UpdateUser(ctx context.Context, user *accounts.User, password *string) error {
	stored, err := s.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	user.PasswordHash = stored.PasswordHash
	if password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return fmt.Errorf("%w", err)
	}

	s.logger.Info("Updated user with id ", user.ID)
	return nil
}

// DeleteUserByID deletes a user by ID
func (s *accountService) DeleteUserByID(ctx context.Context, userID uint) error {
	if err := s.userRepo.DeleteByID(ctx, userID); err != nil {
		return fmt.Errorf("%w", err)
	}

	s.logger.Info("Deleted user with id ", userID)
	return nil
}

// CheckCredentials verifies an email/password pair and returns the user on
// success
func (s *accountService) CheckCredentials(ctx context.Context, email, password string) (*accounts.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// apiKeyService implements the APIKeyService interface for issuing and
// checking API keys
type apiKeyService struct {
	apiKeyRepo accounts.APIKeyRepository
	logger     logger.Logger
}

// NewAPIKeyService creates a new instance of APIKeyService
func NewAPIKeyService(apiKeyRepo accounts.APIKeyRepository, logger logger.Logger) (accounts.APIKeyService, error) {
	return &apiKeyService{
		apiKeyRepo: apiKeyRepo,
		logger:     logger,
	}, nil
}

// Issue creates a new API key for the user. The plain key is returned exactly
// once; only its sha256 hash is stored.
func (s *apiKeyService) Issue(ctx context.Context, name string, userID uint, expiresDays *int, scopes []string) (*accounts.APIKey, string, error) {
	plainKey, err := generatePlainKey()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate key material: %w", err)
	}

	// Scopeless keys grant nothing, so an issue request without scopes gets
	// the wildcard.
	if len(scopes) == 0 {
		scopes = []string{accounts.ScopeAll}
	}

	key := &accounts.APIKey{
		Name:      name,
		KeyHash:   hashKey(plainKey),
		KeyPrefix: plainKey[:len(accounts.APIKeyPrefix)+8],
		UserID:    userID,
		IsActive:  true,
		Scopes:    scopes,
	}
	if expiresDays != nil {
		expiry := time.Now().UTC().AddDate(0, 0, *expiresDays)
		key.ExpiresAt = &expiry
	}

	if err := s.apiKeyRepo.Create(ctx, key); err != nil {
		return nil, "", fmt.Errorf("%w", err)
	}

	s.logger.Info("Issued API key with id ", key.ID)
	return key, plainKey, nil
}

// Authenticate resolves a plain key to its active, unexpired APIKey and
// touches its last-used timestamp
func (s *apiKeyService) Authenticate(ctx context.Context, plainKey string) (*accounts.APIKey, error) {
	if !strings.HasPrefix(plainKey, accounts.APIKeyPrefix) {
		return nil, fmt.Errorf("invalid API key")
	}

	// GetByHash only returns active keys
	key, err := s.apiKeyRepo.GetByHash(ctx, hashKey(plainKey))
	if err != nil {
		return nil, fmt.Errorf("invalid API key")
	}
	if key.IsExpired(time.Now().UTC()) {
		return nil, fmt.Errorf("API key expired")
	}

	now := time.Now().UTC()
	key.LastUsedAt = &now
	if err := s.apiKeyRepo.UpdateByID(ctx, key); err != nil {
		s.logger.Warn("Failed to touch API key last_used_at for key ", key.ID)
	}

	return key, nil
}

// Revoke deactivates an API key by ID. Revocation is a soft delete: the row
// stays for audit but can never authenticate again.
func (s *apiKeyService) Revoke(ctx context.Context, keyID uint) error {
	key, err := s.apiKeyRepo.GetByID(ctx, keyID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	key.IsActive = false
	if err := s.apiKeyRepo.UpdateByID(ctx, key); err != nil {
		return fmt.Errorf("%w", err)
	}

	s.logger.Info("Revoked API key with id ", keyID)
	return nil
}

// generatePlainKey returns a fresh "cc_" prefixed key with 32 bytes of
// entropy encoded URL-safe without padding
func generatePlainKey() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return accounts.APIKeyPrefix + base64.RawURLEncoding.EncodeToString(raw), nil
}

// hashKey returns the hex-encoded sha256 of a plain key
func hashKey(plainKey string) string {
	sum := sha256.Sum256([]byte(plainKey))
	return hex.EncodeToString(sum[:])
}
