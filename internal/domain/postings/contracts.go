package postings

import (
	"context"
)

// CompanyRepository defines the interface for Company-related persistence operations
type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	List(ctx context.Context, query *CompanyQuery) ([]*Company, error)
	GetByID(ctx context.Context, companyID uint) (*Company, error)
	UpdateByID(ctx context.Context, company *Company) error
	DeleteByID(ctx context.Context, companyID uint) error
}

// JobPostRepository defines the interface for JobPost-related persistence operations
type JobPostRepository interface {
	Create(ctx context.Context, jobPost *JobPost) error
	List(ctx context.Context, query *JobPostQuery) ([]*JobPost, error)
	GetByID(ctx context.Context, jobPostID uint) (*JobPost, error)
	UpdateByID(ctx context.Context, jobPost *JobPost) error
	DeleteByID(ctx context.Context, jobPostID uint) error
}

// ScrapeRepository defines the interface for Scrape-related persistence operations
type ScrapeRepository interface {
	Create(ctx context.Context, scrape *Scrape) error
	List(ctx context.Context, query *ScrapeQuery) ([]*Scrape, error)
	GetByID(ctx context.Context, scrapeID uint) (*Scrape, error)
	UpdateByID(ctx context.Context, scrape *Scrape) error
	DeleteByID(ctx context.Context, scrapeID uint) error
}

// PostingService defines methods for managing companies, job posts and the
// scrapes that feed them.
type PostingService interface {
	CreateCompany(ctx context.Context, company *Company) error
	ListCompanies(ctx context.Context, query *CompanyQuery) ([]*Company, error)
	GetCompanyByID(ctx context.Context, companyID uint) (*Company, error)
	UpdateCompany(ctx context.Context, company *Company) error
	DeleteCompanyByID(ctx context.Context, companyID uint) error

	CreateJobPost(ctx context.Context, jobPost *JobPost) error
	ListJobPosts(ctx context.Context, query *JobPostQuery) ([]*JobPost, error)
	GetJobPostByID(ctx context.Context, jobPostID uint) (*JobPost, error)
	UpdateJobPost(ctx context.Context, jobPost *JobPost) error
	DeleteJobPostByID(ctx context.Context, jobPostID uint) error

	CreateScrape(ctx context.Context, scrape *Scrape) error
	ListScrapes(ctx context.Context, query *ScrapeQuery) ([]*Scrape, error)
	GetScrapeByID(ctx context.Context, scrapeID uint) (*Scrape, error)
	UpdateScrape(ctx context.Context, scrape *Scrape) error
	DeleteScrapeByID(ctx context.Context, scrapeID uint) error
}
