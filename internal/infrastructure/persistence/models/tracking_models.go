package models

import (
	"time"

	"github.com/overcast-software/career-caddy-api/internal/domain/tracking"
)

// ApplicationModel is the GORM database model for applications
type ApplicationModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	UserID        *uint     `gorm:"index"`
	JobPostID     *uint     `gorm:"index"`
	CompanyID     *uint     `gorm:"index"`
	ResumeID      *uint     `gorm:"index"`
	CoverLetterID *uint     `gorm:"index"`
	AppliedAt     time.Time `gorm:"not null"`
	Status        string    `gorm:"type:varchar(255)"`
	TrackingURL   string    `gorm:"type:varchar(2048)"`
	Notes         string    `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (ApplicationModel) TableName() string {
	return "application"
}

// ToDomain converts GORM model to domain entity
func (m *ApplicationModel) ToDomain() *tracking.Application {
	return &tracking.Application{
		ID:            m.ID,
		UserID:        m.UserID,
		JobPostID:     m.JobPostID,
		CompanyID:     m.CompanyID,
		ResumeID:      m.ResumeID,
		CoverLetterID: m.CoverLetterID,
		AppliedAt:     m.AppliedAt,
		Status:        m.Status,
		TrackingURL:   m.TrackingURL,
		Notes:         m.Notes,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ApplicationModel) FromDomain(a *tracking.Application) {
	m.ID = a.ID
	m.UserID = a.UserID
	m.JobPostID = a.JobPostID
	m.CompanyID = a.CompanyID
	m.ResumeID = a.ResumeID
	m.CoverLetterID = a.CoverLetterID
	m.AppliedAt = a.AppliedAt
	m.Status = a.Status
	m.TrackingURL = a.TrackingURL
	m.Notes = a.Notes
}

// StatusModel is the GORM database model for the status catalog
type StatusModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	Status     string    `gorm:"type:varchar(255);not null"`
	StatusType *string   `gorm:"type:varchar(255)"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (StatusModel) TableName() string {
	return "status"
}

// ToDomain converts GORM model to domain entity
func (m *StatusModel) ToDomain() *tracking.Status {
	s := &tracking.Status{
		ID:        m.ID,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
	if m.StatusType != nil {
		s.StatusType = *m.StatusType
	}
	return s
}

// FromDomain converts domain entity to GORM model
func (m *StatusModel) FromDomain(s *tracking.Status) {
	m.ID = s.ID
	m.Status = s.Status
	m.CreatedAt = s.CreatedAt
	m.StatusType = nil
	if s.StatusType != "" {
		statusType := s.StatusType
		m.StatusType = &statusType
	}
}

// StatusEventModel is the GORM database model for the application/status
// join recording status history.
type StatusEventModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	ApplicationID uint      `gorm:"not null;index"`
	StatusID      uint      `gorm:"not null;index"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (StatusEventModel) TableName() string {
	return "job_application_status"
}

// ToDomain converts GORM model to domain entity
func (m *StatusEventModel) ToDomain() *tracking.StatusEvent {
	return &tracking.StatusEvent{
		ID:            m.ID,
		ApplicationID: m.ApplicationID,
		StatusID:      m.StatusID,
		CreatedAt:     m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *StatusEventModel) FromDomain(e *tracking.StatusEvent) {
	m.ID = e.ID
	m.ApplicationID = e.ApplicationID
	m.StatusID = e.StatusID
	m.CreatedAt = e.CreatedAt
}
