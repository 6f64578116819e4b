package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/overcast-software/career-caddy-api/internal/domain/documents"
	"github.com/overcast-software/career-caddy-api/internal/infrastructure/persistence/models"
	"github.com/overcast-software/career-caddy-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormResumeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormResumeRepository creates a new GORM-based ResumeRepository implementation
func NewGormResumeRepository(db *gorm.DB, logger logger.Logger) (documents.ResumeRepository, error) {
	return &gormResumeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormResumeRepository) Create(ctx context.Context, resume *documents.Resume) error {
	if err := resume.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ResumeModel{}
	model.FromDomain(resume)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}
	resume.ID = model.ID

	r.logger.Info("Created resume with id ", resume.ID)
	return nil
}

func (r *gormResumeRepository) List(ctx context.Context, query *documents.ResumeQuery) ([]*documents.Resume, error) {
	var modelList []*models.ResumeModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ResumeModel{})

	if query.UserID != nil {
		dbQuery = dbQuery.Where("user_id = ?", *query.UserID)
	}
	if query.Favorite != nil {
		dbQuery = dbQuery.Where("favorite = ?", *query.Favorite)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch resumes: %w", err)
	}

	domainList := make([]*documents.Resume, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormResumeRepository) GetByID(ctx context.Context, resumeID uint) (*documents.Resume, error) {
	var model models.ResumeModel
	if err := r.db.WithContext(ctx).Where("id = ?", resumeID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("resume with ID %d: %w", resumeID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch resume: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormResumeRepository) FirstByUserAndContent(ctx context.Context, userID *uint, content string) (*documents.Resume, error) {
	var model models.ResumeModel
	dbQuery := r.db.WithContext(ctx).Where("content = ?", content)
	if userID != nil {
		dbQuery = dbQuery.Where("user_id = ?", *userID)
	} else {
		dbQuery = dbQuery.Where("user_id IS NULL")
	}

	if err := dbQuery.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch resume: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormResumeRepository) UpdateByID(ctx context.Context, resume *documents.Resume) error {
	if err := resume.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ResumeModel{}
	model.FromDomain(resume)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update resume: %w", err)
	}

	r.logger.Info("Updated resume with id ", resume.ID)
	return nil
}

func (r *gormResumeRepository) DeleteByID(ctx context.Context, resumeID uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", resumeID).Delete(&models.ResumeModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}

	r.logger.Info("Deleted resume with id ", resumeID)
	return nil
}

type gormScoreRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormScoreRepository creates a new GORM-based ScoreRepository implementation
func NewGormScoreRepository(db *gorm.DB, logger logger.Logger) (documents.ScoreRepository, error) {
	return &gormScoreRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormScoreRepository) Create(ctx context.Context, score *documents.Score) error {
	if err := score.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ScoreModel{}
	model.FromDomain(score)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create score: %w", err)
	}
	score.ID = model.ID

	r.logger.Info("Created score with id ", score.ID)
	return nil
}

func (r *gormScoreRepository) List(ctx context.Context, query *documents.ScoreQuery) ([]*documents.Score, error) {
	var modelList []*models.ScoreModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ScoreModel{})

	if query.UserID != nil {
		dbQuery = dbQuery.Where("user_id = ?", *query.UserID)
	}
	if query.ResumeID != nil {
		dbQuery = dbQuery.Where("resume_id = ?", *query.ResumeID)
	}
	if query.JobPostID != nil {
		dbQuery = dbQuery.Where("job_post_id = ?", *query.JobPostID)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch scores: %w", err)
	}

	domainList := make([]*documents.Score, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormScoreRepository) GetByID(ctx context.Context, scoreID uint) (*documents.Score, error) {
	var model models.ScoreModel
	if err := r.db.WithContext(ctx).Where("id = ?", scoreID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("score with ID %d: %w", scoreID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch score: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormScoreRepository) UpdateByID(ctx context.Context, score *documents.Score) error {
	if err := score.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ScoreModel{}
	model.FromDomain(score)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update score: %w", err)
	}

	r.logger.Info("Updated score with id ", score.ID)
	return nil
}

func (r *gormScoreRepository) DeleteByID(ctx context.Context, scoreID uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", scoreID).Delete(&models.ScoreModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete score: %w", err)
	}

	r.logger.Info("Deleted score with id ", scoreID)
	return nil
}

type gormCoverLetterRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCoverLetterRepository creates a new GORM-based CoverLetterRepository implementation
func NewGormCoverLetterRepository(db *gorm.DB, logger logger.Logger) (documents.CoverLetterRepository, error) {
	return &gormCoverLetterRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCoverLetterRepository) Create(ctx context.Context, coverLetter *documents.CoverLetter) error {
	if err := coverLetter.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CoverLetterModel{}
	model.FromDomain(coverLetter)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create cover letter: %w", err)
	}
	coverLetter.ID = model.ID

	r.logger.Info("Created cover letter with id ", coverLetter.ID)
	return nil
}

func (r *gormCoverLetterRepository) List(ctx context.Context, query *documents.CoverLetterQuery) ([]*documents.CoverLetter, error) {
	var modelList []*models.CoverLetterModel
	dbQuery := r.db.WithContext(ctx).Model(&models.CoverLetterModel{})

	if query.UserID != nil {
		dbQuery = dbQuery.Where("user_id = ?", *query.UserID)
	}
	if query.ResumeID != nil {
		dbQuery = dbQuery.Where("resume_id = ?", *query.ResumeID)
	}
	if query.JobPostID != nil {
		dbQuery = dbQuery.Where("job_post_id = ?", *query.JobPostID)
	}
	if query.Favorite != nil {
		dbQuery = dbQuery.Where("favorite = ?", *query.Favorite)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cover letters: %w", err)
	}

	domainList := make([]*documents.CoverLetter, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormCoverLetterRepository) GetByID(ctx context.Context, coverLetterID uint) (*documents.CoverLetter, error) {
	var model models.CoverLetterModel
	if err := r.db.WithContext(ctx).Where("id = ?", coverLetterID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cover letter with ID %d: %w", coverLetterID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch cover letter: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCoverLetterRepository) UpdateByID(ctx context.Context, coverLetter *documents.CoverLetter) error {
	if err := coverLetter.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CoverLetterModel{}
	model.FromDomain(coverLetter)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update cover letter: %w", err)
	}

	r.logger.Info("Updated cover letter with id ", coverLetter.ID)
	return nil
}

func (r *gormCoverLetterRepository) DeleteByID(ctx context.Context, coverLetterID uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", coverLetterID).Delete(&models.CoverLetterModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete cover letter: %w", err)
	}

	r.logger.Info("Deleted cover letter with id ", coverLetterID)
	return nil
}
