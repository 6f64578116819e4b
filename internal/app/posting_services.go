package app

import (
	"context"
	"fmt"

	"github.com/overcast-software/career-caddy-api/internal/domain/postings"
	"github.com/overcast-software/career-caddy-api/internal/pkg/logger"
)

// postingService implements the PostingService interface for managing
// companies, job posts and scrapes
type postingService struct {
	companyRepo postings.CompanyRepository
	jobPostRepo postings.JobPostRepository
	scrapeRepo  postings.ScrapeRepository
	logger      logger.Logger
}

// NewPostingService creates a new instance of PostingService
func NewPostingService(
	companyRepo postings.CompanyRepository,
	jobPostRepo postings.JobPostRepository,
	scrapeRepo postings.ScrapeRepository,
	logger logger.Logger,
) (postings.PostingService, error) {
	return &postingService{
		companyRepo: companyRepo,
		jobPostRepo: jobPostRepo,
		scrapeRepo:  scrapeRepo,
		logger:      logger,
	}, nil
}

func (s *postingService) CreateCompany(ctx context.Context, company *postings.Company) error {
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *postingService) ListCompanies(ctx context.Context, query *postings.CompanyQuery) ([]*postings.Company, error) {
	companies, err := s.companyRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return companies, nil
}

func (s *postingService) GetCompanyByID(ctx context.Context, companyID uint) (*postings.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return company, nil
}

func (s *postingService) UpdateCompany(ctx context.Context, company *postings.Company) error {
	if err := s.companyRepo.UpdateByID(ctx, company); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *postingService) DeleteCompanyByID(ctx context.Context, companyID uint) error {
	if err := s.companyRepo.DeleteByID(ctx, companyID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *postingService) CreateJobPost(ctx context.Context, jobPost *postings.JobPost) error {
	if jobPost.CompanyID != nil {
		if _, err := s.companyRepo.GetByID(ctx, *jobPost.CompanyID); err != nil {
			return fmt.Errorf("company lookup failed: %w", err)
		}
	}
	if err := s.jobPostRepo.Create(ctx, jobPost); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *postingService) ListJobPosts(ctx context.Context, query *postings.JobPostQuery) ([]*postings.JobPost, error) {
	jobPosts, err := s.jobPostRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return jobPosts, nil
}

func (s *postingService) GetJobPostByID(ctx context.Context, jobPostID uint) (*postings.JobPost, error) {
	jobPost, err := s.jobPostRepo.GetByID(ctx, jobPostID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return jobPost, nil
}

func (s *postingService) UpdateJobPost(ctx context.Context, jobPost *postings.JobPost) error {
	if err := s.jobPostRepo.UpdateByID(ctx, jobPost); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *postingService) DeleteJobPostByID(ctx context.Context, jobPostID uint) error {
	if err := s.jobPostRepo.DeleteByID(ctx, jobPostID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *postingService) CreateScrape(ctx context.Context, scrape *postings.Scrape) error {
	if scrape.ParseMethod == "" {
		scrape.ParseMethod = postings.DefaultParseMethod
	}
	if err := s.scrapeRepo.Create(ctx, scrape); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *postingService) ListScrapes(ctx context.Context, query *postings.ScrapeQuery) ([]*postings.Scrape, error) {
	scrapes, err := s.scrapeRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return scrapes, nil
}

func (s *postingService) GetScrapeByID(ctx context.Context, scrapeID uint) (*postings.Scrape, error) {
	scrape, err := s.scrapeRepo.GetByID(ctx, scrapeID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return scrape, nil
}

func (s *postingService) UpdateScrape(ctx context.Context, scrape *postings.Scrape) error {
	if err := s.scrapeRepo.UpdateByID(ctx, scrape); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *postingService) DeleteScrapeByID(ctx context.Context, scrapeID uint) error {
	if err := s.scrapeRepo.DeleteByID(ctx, scrapeID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
