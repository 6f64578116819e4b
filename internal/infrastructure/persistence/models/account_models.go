package models

import (
	"encoding/json"
	"time"

	"github.com/overcast-software/career-caddy-api/internal/domain/accounts"
)

// UserModel is the GORM database model for users (infrastructure concern)
type UserModel struct {
	ID           uint    `gorm:"primaryKey;autoIncrement"`
	Name         *string `gorm:"type:varchar(255)"`
	Username     *string `gorm:"type:varchar(150);uniqueIndex"`
	FirstName    *string `gorm:"type:varchar(150)"`
	LastName     *string `gorm:"type:varchar(150)"`
	Email        *string `gorm:"type:varchar(255);uniqueIndex"`
	Phone        *string `gorm:"type:varchar(32)"`
	PasswordHash string  `gorm:"type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "user"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *accounts.User {
	u := &accounts.User{
		ID:           m.ID,
		PasswordHash: m.PasswordHash,
	}
	if m.Name != nil {
		u.Name = *m.Name
	}
	if m.Username != nil {
		u.Username = *m.Username
	}
	if m.FirstName != nil {
		u.FirstName = *m.FirstName
	}
	if m.LastName != nil {
		u.LastName = *m.LastName
	}
	if m.Email != nil {
		u.Email = *m.Email
	}
	if m.Phone != nil {
		u.Phone = *m.Phone
	}
	return u
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *accounts.User) {
	m.ID = u.ID
	m.PasswordHash = u.PasswordHash
	m.Name = nil
	if u.Name != "" {
		name := u.Name
		m.Name = &name
	}
	m.Username = nil
	if u.Username != "" {
		username := u.Username
		m.Username = &username
	}
	m.FirstName = nil
	if u.FirstName != "" {
		firstName := u.FirstName
		m.FirstName = &firstName
	}
	m.LastName = nil
	if u.LastName != "" {
		lastName := u.LastName
		m.LastName = &lastName
	}
	m.Email = nil
	if u.Email != "" {
		email := u.Email
		m.Email = &email
	}
	m.Phone = nil
	if u.Phone != "" {
		phone := u.Phone
		m.Phone = &phone
	}
}

// APIKeyModel is the GORM database model for API keys. Scopes are stored as
// a JSON array string, as the original schema did.
type APIKeyModel struct {
	ID         uint       `gorm:"primaryKey;autoIncrement"`
	Name       string     `gorm:"type:varchar(255);not null"`
	KeyHash    string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	KeyPrefix  string     `gorm:"type:varchar(16);not null"`
	UserID     uint       `gorm:"not null;index"`
	IsActive   bool       `gorm:"not null;default:true"`
	LastUsedAt *time.Time ``
	ExpiresAt  *time.Time ``
	Scopes     *string    `gorm:"type:text"`
	CreatedAt  time.Time  `gorm:"not null"`
	UpdatedAt  time.Time  `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (APIKeyModel) TableName() string {
	return "api_keys"
}

// ToDomain converts GORM model to domain entity
func (m *APIKeyModel) ToDomain() *accounts.APIKey {
	k := &accounts.APIKey{
		ID:         m.ID,
		Name:       m.Name,
		KeyHash:    m.KeyHash,
		KeyPrefix:  m.KeyPrefix,
		UserID:     m.UserID,
		IsActive:   m.IsActive,
		LastUsedAt: m.LastUsedAt,
		ExpiresAt:  m.ExpiresAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Scopes != nil && *m.Scopes != "" {
		// Malformed scope JSON behaves like no scopes at all.
		_ = json.Unmarshal([]byte(*m.Scopes), &k.Scopes)
	}
	return k
}

// FromDomain converts domain entity to GORM model
func (m *APIKeyModel) FromDomain(k *accounts.APIKey) {
	m.ID = k.ID
	m.Name = k.Name
	m.KeyHash = k.KeyHash
	m.KeyPrefix = k.KeyPrefix
	m.UserID = k.UserID
	m.IsActive = k.IsActive
	m.LastUsedAt = k.LastUsedAt
	m.ExpiresAt = k.ExpiresAt
	m.CreatedAt = k.CreatedAt
	m.UpdatedAt = k.UpdatedAt
	m.Scopes = nil
	if len(k.Scopes) > 0 {
		raw, err := json.Marshal(k.Scopes)
		if err == nil {
			s := string(raw)
			m.Scopes = &s
		}
	}
}
