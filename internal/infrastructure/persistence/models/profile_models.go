package models

import (
	"time"

	"github.com/overcast-software/career-caddy-api/internal/domain/profile"
)

// SummaryModel is the GORM database model for summaries
type SummaryModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Content   string `gorm:"type:text;not null"`
	UserID    *uint  `gorm:"index"`
	JobPostID *uint  `gorm:"index"`
	ResumeID  *uint  `gorm:"index"`
}

// TableName specifies the table name for GORM
func (SummaryModel) TableName() string {
	return "summary"
}

// ToDomain converts GORM model to domain entity
func (m *SummaryModel) ToDomain() *profile.Summary {
	return &profile.Summary{
		ID:        m.ID,
		Content:   m.Content,
		UserID:    m.UserID,
		JobPostID: m.JobPostID,
		ResumeID:  m.ResumeID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SummaryModel) FromDomain(s *profile.Summary) {
	m.ID = s.ID
	m.Content = s.Content
	m.UserID = s.UserID
	m.JobPostID = s.JobPostID
	m.ResumeID = s.ResumeID
}

// ExperienceModel is the GORM database model for work experiences
type ExperienceModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"type:varchar(255)"`
	StartDate *time.Time
	EndDate   *time.Time
	Location  string `gorm:"type:varchar(255)"`
	Content   string `gorm:"type:text"`
	CompanyID *uint  `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ExperienceModel) TableName() string {
	return "experience"
}

// ToDomain converts GORM model to domain entity
func (m *ExperienceModel) ToDomain() *profile.Experience {
	return &profile.Experience{
		ID:        m.ID,
		Title:     m.Title,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Location:  m.Location,
		Content:   m.Content,
		CompanyID: m.CompanyID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ExperienceModel) FromDomain(e *profile.Experience) {
	m.ID = e.ID
	m.Title = e.Title
	m.StartDate = e.StartDate
	m.EndDate = e.EndDate
	m.Location = e.Location
	m.Content = e.Content
	m.CompanyID = e.CompanyID
}

// EducationModel is the GORM database model for educations
type EducationModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Degree      string `gorm:"type:varchar(255)"`
	IssueDate   *time.Time
	Institution string `gorm:"type:varchar(255);not null"`
	Major       string `gorm:"type:varchar(255)"`
	Minor       string `gorm:"type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (EducationModel) TableName() string {
	return "education"
}

// ToDomain converts GORM model to domain entity
func (m *EducationModel) ToDomain() *profile.Education {
	return &profile.Education{
		ID:          m.ID,
		Degree:      m.Degree,
		IssueDate:   m.IssueDate,
		Institution: m.Institution,
		Major:       m.Major,
		Minor:       m.Minor,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EducationModel) FromDomain(e *profile.Education) {
	m.ID = e.ID
	m.Degree = e.Degree
	m.IssueDate = e.IssueDate
	m.Institution = e.Institution
	m.Major = e.Major
	m.Minor = e.Minor
}

// CertificationModel is the GORM database model for certifications
type CertificationModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Issuer    string `gorm:"type:varchar(255)"`
	Title     string `gorm:"type:varchar(255)"`
	IssueDate *time.Time
	Content   string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (CertificationModel) TableName() string {
	return "certification"
}

// ToDomain converts GORM model to domain entity
func (m *CertificationModel) ToDomain() *profile.Certification {
	return &profile.Certification{
		ID:        m.ID,
		Issuer:    m.Issuer,
		Title:     m.Title,
		IssueDate: m.IssueDate,
		Content:   m.Content,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CertificationModel) FromDomain(c *profile.Certification) {
	m.ID = c.ID
	m.Issuer = c.Issuer
	m.Title = c.Title
	m.IssueDate = c.IssueDate
	m.Content = c.Content
}

// DescriptionModel is the GORM database model for description lines
type DescriptionModel struct {
	ID      uint   `gorm:"primaryKey;autoIncrement"`
	Content string `gorm:"type:text;not null"`
}

// TableName specifies the table name for GORM
func (DescriptionModel) TableName() string {
	return "description"
}

// ToDomain converts GORM model to domain entity
func (m *DescriptionModel) ToDomain() *profile.Description {
	return &profile.Description{
		ID:      m.ID,
		Content: m.Content,
	}
}

// FromDomain converts domain entity to GORM model
func (m *DescriptionModel) FromDomain(d *profile.Description) {
	m.ID = d.ID
	m.Content = d.Content
}

// ResumeExperienceModel joins experiences to the resumes they appear on
type ResumeExperienceModel struct {
	ID           uint `gorm:"primaryKey;autoIncrement"`
	ResumeID     uint `gorm:"not null;index;uniqueIndex:idx_resume_experience"`
	ExperienceID uint `gorm:"not null;index;uniqueIndex:idx_resume_experience"`
}

// TableName specifies the table name for GORM
func (ResumeExperienceModel) TableName() string {
	return "resume_experience"
}

// ResumeEducationModel joins educations to the resumes they appear on
type ResumeEducationModel struct {
	ID          uint `gorm:"primaryKey;autoIncrement"`
	ResumeID    uint `gorm:"not null;index;uniqueIndex:idx_resume_education"`
	EducationID uint `gorm:"not null;index;uniqueIndex:idx_resume_education"`
}

// TableName specifies the table name for GORM
func (ResumeEducationModel) TableName() string {
	return "resume_education"
}

// ResumeCertificationModel joins certifications to the resumes they appear on
type ResumeCertificationModel struct {
	ID              uint `gorm:"primaryKey;autoIncrement"`
	ResumeID        uint `gorm:"not null;index;uniqueIndex:idx_resume_certification"`
	CertificationID uint `gorm:"not null;index;uniqueIndex:idx_resume_certification"`
}

// TableName specifies the table name for GORM
func (ResumeCertificationModel) TableName() string {
	return "resume_certification"
}

// ExperienceDescriptionModel joins description lines to experiences with a
// line order within the experience
type ExperienceDescriptionModel struct {
	ID            uint `gorm:"primaryKey;autoIncrement"`
	ExperienceID  uint `gorm:"not null;index;uniqueIndex:idx_experience_description"`
	DescriptionID uint `gorm:"not null;index;uniqueIndex:idx_experience_description"`
	Order         int  `gorm:"column:line_order;not null;default:0"`
}

// TableName specifies the table name for GORM
func (ExperienceDescriptionModel) TableName() string {
	return "experience_description"
}
