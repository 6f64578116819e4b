package models

import (
	"time"

	"github.com/overcast-software/career-caddy-api/internal/domain/documents"
)

// ResumeModel is the GORM database model for resumes
type ResumeModel struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Content  string `gorm:"type:text;not null"`
	FilePath string `gorm:"type:varchar(1024)"`
	Favorite bool   `gorm:"not null;default:false"`
	UserID   *uint  `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ResumeModel) TableName() string {
	return "resume"
}

// ToDomain converts GORM model to domain entity
func (m *ResumeModel) ToDomain() *documents.Resume {
	return &documents.Resume{
		ID:       m.ID,
		Content:  m.Content,
		FilePath: m.FilePath,
		Favorite: m.Favorite,
		UserID:   m.UserID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ResumeModel) FromDomain(r *documents.Resume) {
	m.ID = r.ID
	m.Content = r.Content
	m.FilePath = r.FilePath
	m.Favorite = r.Favorite
	m.UserID = r.UserID
}

// ScoreModel is the GORM database model for scores
type ScoreModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Score       *int   ``
	Explanation string `gorm:"type:text"`
	ResumeID    *uint  `gorm:"index"`
	JobPostID   *uint  `gorm:"index"`
	UserID      *uint  `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ScoreModel) TableName() string {
	return "score"
}

// ToDomain converts GORM model to domain entity
func (m *ScoreModel) ToDomain() *documents.Score {
	return &documents.Score{
		ID:          m.ID,
		Score:       m.Score,
		Explanation: m.Explanation,
		ResumeID:    m.ResumeID,
		JobPostID:   m.JobPostID,
		UserID:      m.UserID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ScoreModel) FromDomain(s *documents.Score) {
	m.ID = s.ID
	m.Score = s.Score
	m.Explanation = s.Explanation
	m.ResumeID = s.ResumeID
	m.JobPostID = s.JobPostID
	m.UserID = s.UserID
}

// CoverLetterModel is the GORM database model for cover letters
type CoverLetterModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Content   string    `gorm:"type:text;not null"`
	Favorite  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
	UserID    *uint     `gorm:"index"`
	ResumeID  *uint     `gorm:"index"`
	JobPostID *uint     `gorm:"index"`
}

// TableName specifies the table name for GORM
func (CoverLetterModel) TableName() string {
	return "cover_letter"
}

// ToDomain converts GORM model to domain entity
func (m *CoverLetterModel) ToDomain() *documents.CoverLetter {
	return &documents.CoverLetter{
		ID:        m.ID,
		Content:   m.Content,
		Favorite:  m.Favorite,
		CreatedAt: m.CreatedAt,
		UserID:    m.UserID,
		ResumeID:  m.ResumeID,
		JobPostID: m.JobPostID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CoverLetterModel) FromDomain(c *documents.CoverLetter) {
	m.ID = c.ID
	m.Content = c.Content
	m.Favorite = c.Favorite
	m.CreatedAt = c.CreatedAt
	m.UserID = c.UserID
	m.ResumeID = c.ResumeID
	m.JobPostID = c.JobPostID
}
