// Package accounts defines the core entities and contracts for users and
// their credentials: bcrypt-backed passwords, hashed API keys with scopes,
// and JWT access/refresh token pairs.
package accounts
