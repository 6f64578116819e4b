package accounts

import (
	"context"
)

// UserRepository defines the interface for User-related persistence operations
type UserRepository interface {
	// Create adds a new User to the database
	Create(ctx context.Context, user *User) error
	// List lists Users in the database with optional filter
	List(ctx context.Context, query *UserQuery) ([]*User, error)
	// GetByID retrieves a User from the database by ID
	GetByID(ctx context.Context, userID uint) (*User, error)
	// GetByEmail retrieves a User from the database by email
	GetByEmail(ctx context.Context, email string) (*User, error)
	// UpdateByID updates a User in the database by ID
	UpdateByID(ctx context.Context, user *User) error
	// DeleteByID deletes a User in the database by ID
	DeleteByID(ctx context.Context, userID uint) error
}

// APIKeyRepository defines the interface for APIKey-related persistence operations
type APIKeyRepository interface {
	// Create adds a new APIKey to the database
	Create(ctx context.Context, key *APIKey) error
	// GetByHash retrieves an active APIKey by its sha256 hash
	GetByHash(ctx context.Context, keyHash string) (*APIKey, error)
	// GetByID retrieves an APIKey from the database by ID
	GetByID(ctx context.Context, keyID uint) (*APIKey, error)
	// ListByUser lists a user's APIKeys
	ListByUser(ctx context.Context, userID uint) ([]*APIKey, error)
	// UpdateByID updates an APIKey in the database by ID
	UpdateByID(ctx context.Context, key *APIKey) error
}

// AccountService defines methods for managing users and their credentials
type AccountService interface {
	// CreateUser stores a new user. A non-empty password is bcrypt-hashed
	// before storage.
	CreateUser(ctx context.Context, user *User, password string) error

	// ListUsers retrieves users considering a query filter when set.
	ListUsers(ctx context.Context, query *UserQuery) ([]*User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID uint) (*User, error)

	// UpdateUser updates user attributes; a non-nil password replaces the
	// stored hash.
	UpdateUser(ctx context.Context, user *User, password *string) error

	// DeleteUserByID deletes a user by ID.
	DeleteUserByID(ctx context.Context, userID uint) error

	// CheckCredentials verifies an email/password pair and returns the user
	// on success.
	CheckCredentials(ctx context.Context, email, password string) (*User, error)
}

// APIKeyService defines methods for issuing and checking API keys
type APIKeyService interface {
	// Issue creates a new API key for the user. It returns the stored entity
	// together with the plain key, which is not recoverable afterwards.
	Issue(ctx context.Context, name string, userID uint, expiresDays *int, scopes []string) (*APIKey, string, error)

	// Authenticate resolves a plain key to its active, unexpired APIKey and
	// touches its last-used timestamp. Unknown, revoked and expired keys
	// return an error.
	Authenticate(ctx context.Context, plainKey string) (*APIKey, error)

	// Revoke deactivates an API key by ID.
	Revoke(ctx context.Context, keyID uint) error
}

// TokenService defines methods for issuing and checking JWT token pairs
type TokenService interface {
	// ObtainPair exchanges credentials for an access/refresh token pair.
	ObtainPair(ctx context.Context, email, password string) (*TokenPair, error)

	// Refresh exchanges a valid refresh token for a fresh pair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Verify checks a token's signature and expiry regardless of its type.
	Verify(ctx context.Context, token string) error

	// ParseAccess validates an access token and returns the user ID it
	// carries. Refresh tokens are rejected.
	ParseAccess(ctx context.Context, token string) (uint, error)
}
