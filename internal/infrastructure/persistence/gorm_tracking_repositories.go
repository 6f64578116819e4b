package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/overcast-software/career-caddy-api/internal/domain/tracking"
	"github.com/overcast-software/career-caddy-api/internal/infrastructure/persistence/models"
	"github.com/overcast-software/career-caddy-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormApplicationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormApplicationRepository creates a new GORM-based ApplicationRepository implementation
func NewGormApplicationRepository(db *gorm.DB, logger logger.Logger) (tracking.ApplicationRepository, error) {
	return &gormApplicationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormApplicationRepository) Create(ctx context.Context, application *tracking.Application) error {
	if err := application.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ApplicationModel{}
	model.FromDomain(application)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	application.ID = model.ID

	r.logger.Info("Created application with id ", application.ID)
	return nil
}

func (r *gormApplicationRepository) List(ctx context.Context, query *tracking.ApplicationQuery) ([]*tracking.Application, error) {
	var modelList []*models.ApplicationModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ApplicationModel{})

	if query.UserID != nil {
		dbQuery = dbQuery.Where("user_id = ?", *query.UserID)
	}
	if query.JobPostID != nil {
		dbQuery = dbQuery.Where("job_post_id = ?", *query.JobPostID)
	}
	if query.CompanyID != nil {
		dbQuery = dbQuery.Where("company_id = ?", *query.CompanyID)
	}
	if query.ResumeID != nil {
		dbQuery = dbQuery.Where("resume_id = ?", *query.ResumeID)
	}
	if query.CoverLetterID != nil {
		dbQuery = dbQuery.Where("cover_letter_id = ?", *query.CoverLetterID)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}

	domainList := make([]*tracking.Application, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormApplicationRepository) GetByID(ctx context.Context, applicationID uint) (*tracking.Application, error) {
	var model models.ApplicationModel
	if err := r.db.WithContext(ctx).Where("id = ?", applicationID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("application with ID %d: %w", applicationID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormApplicationRepository) UpdateByID(ctx context.Context, application *tracking.Application) error {
	if err := application.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ApplicationModel{}
	model.FromDomain(application)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	r.logger.Info("Updated application with id ", application.ID)
	return nil
}

func (r *gormApplicationRepository) DeleteByID(ctx context.Context, applicationID uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", applicationID).Delete(&models.ApplicationModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	r.logger.Info("Deleted application with id ", applicationID)
	return nil
}

type gormStatusRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormStatusRepository creates a new GORM-based StatusRepository implementation
func NewGormStatusRepository(db *gorm.DB, logger logger.Logger) (tracking.StatusRepository, error) {
	return &gormStatusRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormStatusRepository) Create(ctx context.Context, status *tracking.Status) error {
	if err := status.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.StatusModel{}
	model.FromDomain(status)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create status: %w", err)
	}
	status.ID = model.ID

	r.logger.Info("Created status with id ", status.ID)
	return nil
}

func (r *gormStatusRepository) List(ctx context.Context, query *tracking.StatusQuery) ([]*tracking.Status, error) {
	var modelList []*models.StatusModel
	dbQuery := r.db.WithContext(ctx).Model(&models.StatusModel{})

	if query.StatusType != "" {
		dbQuery = dbQuery.Where("status_type = ?", query.StatusType)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch statuses: %w", err)
	}

	domainList := make([]*tracking.Status, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormStatusRepository) GetByID(ctx context.Context, statusID uint) (*tracking.Status, error) {
	var model models.StatusModel
	if err := r.db.WithContext(ctx).Where("id = ?", statusID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("status with ID %d: %w", statusID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch status: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormStatusRepository) UpdateByID(ctx context.Context, status *tracking.Status) error {
	if err := status.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.StatusModel{}
	model.FromDomain(status)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	r.logger.Info("Updated status with id ", status.ID)
	return nil
}

func (r *gormStatusRepository) DeleteByID(ctx context.Context, statusID uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", statusID).Delete(&models.StatusModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete status: %w", err)
	}

	r.logger.Info("Deleted status with id ", statusID)
	return nil
}

type gormStatusEventRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormStatusEventRepository creates a new GORM-based StatusEventRepository implementation
func NewGormStatusEventRepository(db *gorm.DB, logger logger.Logger) (tracking.StatusEventRepository, error) {
	return &gormStatusEventRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormStatusEventRepository) Create(ctx context.Context, event *tracking.StatusEvent) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.StatusEventModel{}
	model.FromDomain(event)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create status event: %w", err)
	}
	event.ID = model.ID

	r.logger.Info("Created status event with id ", event.ID)
	return nil
}

func (r *gormStatusEventRepository) ListByApplication(ctx context.Context, applicationID uint) ([]*tracking.StatusEvent, error) {
	var modelList []*models.StatusEventModel
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at asc, id asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch status events: %w", err)
	}

	domainList := make([]*tracking.StatusEvent, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormStatusEventRepository) DeleteByApplication(ctx context.Context, applicationID uint) error {
	if err := r.db.WithContext(ctx).Where("application_id = ?", applicationID).Delete(&models.StatusEventModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete status events: %w", err)
	}
	return nil
}
