// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to interact with databases, managing
// users, companies, job posts, application material and tracking state.
// The package includes validation and logging for traceability and error
// handling.
package persistence
