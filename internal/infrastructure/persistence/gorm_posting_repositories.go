package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/overcast-software/career-caddy-api/internal/domain/postings"
	"github.com/overcast-software/career-caddy-api/internal/infrastructure/persistence/models"
	"github.com/overcast-software/career-caddy-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCompanyRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCompanyRepository creates a new GORM-based CompanyRepository implementation
func NewGormCompanyRepository(db *gorm.DB, logger logger.Logger) (postings.CompanyRepository, error) {
	return &gormCompanyRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCompanyRepository) Create(ctx context.Context, company *postings.Company) error {
	if err := company.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CompanyModel{}
	model.FromDomain(company)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	company.ID = model.ID

	r.logger.Info("Created company with id ", company.ID)
	return nil
}

func (r *gormCompanyRepository) List(ctx context.Context, query *postings.CompanyQuery) ([]*postings.Company, error) {
	var modelList []*models.CompanyModel
	dbQuery := r.db.WithContext(ctx).Model(&models.CompanyModel{})

	if query.Name != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Name+"%")
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch companies: %w", err)
	}

	domainList := make([]*postings.Company, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormCompanyRepository) GetByID(ctx context.Context, companyID uint) (*postings.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).Where("id = ?", companyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("company with ID %d: %w", companyID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch company: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCompanyRepository) UpdateByID(ctx context.Context, company *postings.Company) error {
	if err := company.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CompanyModel{}
	model.FromDomain(company)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}

	r.logger.Info("Updated company with id ", company.ID)
	return nil
}

func (r *gormCompanyRepository) DeleteByID(ctx context.Context, companyID uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", companyID).Delete(&models.CompanyModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	r.logger.Info("Deleted company with id ", companyID)
	return nil
}

type gormJobPostRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormJobPostRepository creates a new GORM-based JobPostRepository implementation
func NewGormJobPostRepository(db *gorm.DB, logger logger.Logger) (postings.JobPostRepository, error) {
	return &gormJobPostRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormJobPostRepository) Create(ctx context.Context, jobPost *postings.JobPost) error {
	if err := jobPost.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.JobPostModel{}
	model.FromDomain(jobPost)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create job post: %w", err)
	}
	jobPost.ID = model.ID

	r.logger.Info("Created job post with id ", jobPost.ID)
	return nil
}

func (r *gormJobPostRepository) List(ctx context.Context, query *postings.JobPostQuery) ([]*postings.JobPost, error) {
	var modelList []*models.JobPostModel
	dbQuery := r.db.WithContext(ctx).Model(&models.JobPostModel{})

	if query.CompanyID != nil {
		dbQuery = dbQuery.Where("company_id = ?", *query.CompanyID)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch job posts: %w", err)
	}

	domainList := make([]*postings.JobPost, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormJobPostRepository) GetByID(ctx context.Context, jobPostID uint) (*postings.JobPost, error) {
	var model models.JobPostModel
	if err := r.db.WithContext(ctx).Where("id = ?", jobPostID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job post with ID %d: %w", jobPostID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch job post: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormJobPostRepository) UpdateByID(ctx context.Context, jobPost *postings.JobPost) error {
	if err := jobPost.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.JobPostModel{}
	model.FromDomain(jobPost)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update job post: %w", err)
	}

	r.logger.Info("Updated job post with id ", jobPost.ID)
	return nil
}

func (r *gormJobPostRepository) DeleteByID(ctx context.Context, jobPostID uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", jobPostID).Delete(&models.JobPostModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete job post: %w", err)
	}

	r.logger.Info("Deleted job post with id ", jobPostID)
	return nil
}

type gormScrapeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormScrapeRepository creates a new GORM-based ScrapeRepository implementation
func NewGormScrapeRepository(db *gorm.DB, logger logger.Logger) (postings.ScrapeRepository, error) {
	return &gormScrapeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormScrapeRepository) Create(ctx context.Context, scrape *postings.Scrape) error {
	if scrape.ParseMethod == "" {
		scrape.ParseMethod = postings.DefaultParseMethod
	}
	if err := scrape.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ScrapeModel{}
	model.FromDomain(scrape)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create scrape: %w", err)
	}
	scrape.ID = model.ID

	r.logger.Info("Created scrape with id ", scrape.ID)
	return nil
}

func (r *gormScrapeRepository) List(ctx context.Context, query *postings.ScrapeQuery) ([]*postings.Scrape, error) {
	var modelList []*models.ScrapeModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ScrapeModel{})

	if query.CompanyID != nil {
		dbQuery = dbQuery.Where("company_id = ?", *query.CompanyID)
	}
	if query.JobPostID != nil {
		dbQuery = dbQuery.Where("job_post_id = ?", *query.JobPostID)
	}
	if query.State != "" {
		dbQuery = dbQuery.Where("state = ?", query.State)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch scrapes: %w", err)
	}

	domainList := make([]*postings.Scrape, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormScrapeRepository) GetByID(ctx context.Context, scrapeID uint) (*postings.Scrape, error) {
	var model models.ScrapeModel
	if err := r.db.WithContext(ctx).Where("id = ?", scrapeID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("scrape with ID %d: %w", scrapeID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch scrape: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormScrapeRepository) UpdateByID(ctx context.Context, scrape *postings.Scrape) error {
	if err := scrape.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ScrapeModel{}
	model.FromDomain(scrape)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update scrape: %w", err)
	}

	r.logger.Info("Updated scrape with id ", scrape.ID)
	return nil
}

func (r *gormScrapeRepository) DeleteByID(ctx context.Context, scrapeID uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", scrapeID).Delete(&models.ScrapeModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete scrape: %w", err)
	}

	r.logger.Info("Deleted scrape with id ", scrapeID)
	return nil
}
