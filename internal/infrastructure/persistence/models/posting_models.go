package models

import (
	"time"

	"github.com/overcast-software/career-caddy-api/internal/domain/postings"
)

// CompanyModel is the GORM database model for companies
type CompanyModel struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);not null"`
	DisplayName *string `gorm:"type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (CompanyModel) TableName() string {
	return "company"
}

// ToDomain converts GORM model to domain entity
func (m *CompanyModel) ToDomain() *postings.Company {
	c := &postings.Company{
		ID:   m.ID,
		Name: m.Name,
	}
	if m.DisplayName != nil {
		c.DisplayName = *m.DisplayName
	}
	return c
}

// FromDomain converts domain entity to GORM model
func (m *CompanyModel) FromDomain(c *postings.Company) {
	m.ID = c.ID
	m.Name = c.Name
	m.DisplayName = nil
	if c.DisplayName != "" {
		displayName := c.DisplayName
		m.DisplayName = &displayName
	}
}

// JobPostModel is the GORM database model for job posts
type JobPostModel struct {
	ID             uint       `gorm:"primaryKey;autoIncrement"`
	Title          string     `gorm:"type:varchar(255)"`
	Description    string     `gorm:"type:text"`
	Link           string     `gorm:"type:varchar(2048)"`
	PostedDate     *time.Time ``
	ExtractionDate *time.Time ``
	CreatedAt      time.Time  `gorm:"not null"`
	CompanyID      *uint      `gorm:"index"`
}

// TableName specifies the table name for GORM
func (JobPostModel) TableName() string {
	return "job_post"
}

// ToDomain converts GORM model to domain entity
func (m *JobPostModel) ToDomain() *postings.JobPost {
	return &postings.JobPost{
		ID:             m.ID,
		Title:          m.Title,
		Description:    m.Description,
		Link:           m.Link,
		PostedDate:     m.PostedDate,
		ExtractionDate: m.ExtractionDate,
		CreatedAt:      m.CreatedAt,
		CompanyID:      m.CompanyID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *JobPostModel) FromDomain(j *postings.JobPost) {
	m.ID = j.ID
	m.Title = j.Title
	m.Description = j.Description
	m.Link = j.Link
	m.PostedDate = j.PostedDate
	m.ExtractionDate = j.ExtractionDate
	m.CreatedAt = j.CreatedAt
	m.CompanyID = j.CompanyID
}

// ScrapeModel is the GORM database model for scrapes
type ScrapeModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	URL            string    `gorm:"type:varchar(2048);not null"`
	CSSSelectors   string    `gorm:"column:css_selectors;type:text"`
	JobContent     string    `gorm:"type:text"`
	HTML           string    `gorm:"column:html;type:text"`
	ExternalLink   string    `gorm:"type:varchar(2048)"`
	ParseMethod    string    `gorm:"type:varchar(50)"`
	ScrapedAt      time.Time `gorm:"not null"`
	State          string    `gorm:"type:varchar(50)"`
	CompanyID      *uint     `gorm:"index"`
	JobPostID      *uint     `gorm:"index"`
	SourceScrapeID *uint     `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ScrapeModel) TableName() string {
	return "scrape"
}

// ToDomain converts GORM model to domain entity
func (m *ScrapeModel) ToDomain() *postings.Scrape {
	return &postings.Scrape{
		ID:             m.ID,
		URL:            m.URL,
		CSSSelectors:   m.CSSSelectors,
		JobContent:     m.JobContent,
		HTML:           m.HTML,
		ExternalLink:   m.ExternalLink,
		ParseMethod:    m.ParseMethod,
		ScrapedAt:      m.ScrapedAt,
		State:          m.State,
		CompanyID:      m.CompanyID,
		JobPostID:      m.JobPostID,
		SourceScrapeID: m.SourceScrapeID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ScrapeModel) FromDomain(s *postings.Scrape) {
	m.ID = s.ID
	m.URL = s.URL
	m.CSSSelectors = s.CSSSelectors
	m.JobContent = s.JobContent
	m.HTML = s.HTML
	m.ExternalLink = s.ExternalLink
	m.ParseMethod = s.ParseMethod
	m.ScrapedAt = s.ScrapedAt
	m.State = s.State
	m.CompanyID = s.CompanyID
	m.JobPostID = s.JobPostID
	m.SourceScrapeID = s.SourceScrapeID
}
