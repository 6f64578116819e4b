package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/overcast-software/career-caddy-api/internal/domain/profile"
	"github.com/overcast-software/career-caddy-api/internal/infrastructure/persistence/models"
	"github.com/overcast-software/career-caddy-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormSummaryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSummaryRepository creates a new GORM-based SummaryRepository implementation
func NewGormSummaryRepository(db *gorm.DB, logger logger.Logger) (profile.SummaryRepository, error) {
	return &gormSummaryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSummaryRepository) Create(ctx context.Context, summary *profile.Summary) error {
	if err := summary.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SummaryModel{}
	model.FromDomain(summary)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create summary: %w", err)
	}
	summary.ID = model.ID

	r.logger.Info("Created summary with id ", summary.ID)
	return nil
}

func (r *gormSummaryRepository) List(ctx context.Context, query *profile.SummaryQuery) ([]*profile.Summary, error) {
	var modelList []*models.SummaryModel
	dbQuery := r.db.WithContext(ctx).Model(&models.SummaryModel{})

	if query.UserID != nil {
		dbQuery = dbQuery.Where("user_id = ?", *query.UserID)
	}
	if query.JobPostID != nil {
		dbQuery = dbQuery.Where("job_post_id = ?", *query.JobPostID)
	}
	if query.ResumeID != nil {
		dbQuery = dbQuery.Where("resume_id = ?", *query.ResumeID)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch summaries: %w", err)
	}

	domainList := make([]*profile.Summary, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormSummaryRepository) GetByID(ctx context.Context, summaryID uint) (*profile.Summary, error) {
	var model models.SummaryModel
	if err := r.db.WithContext(ctx).Where("id = ?", summaryID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("summary with ID %d: %w", summaryID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch summary: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSummaryRepository) UpdateByID(ctx context.Context, summary *profile.Summary) error {
	if err := summary.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SummaryModel{}
	model.FromDomain(summary)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update summary: %w", err)
	}

	r.logger.Info("Updated summary with id ", summary.ID)
	return nil
}

func (r *gormSummaryRepository) DeleteByID(ctx context.Context, summaryID uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", summaryID).Delete(&models.SummaryModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete summary: %w", err)
	}

	r.logger.Info("Deleted summary with id ", summaryID)
	return nil
}

type gormExperienceRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormExperienceRepository creates a new GORM-based ExperienceRepository implementation
func NewGormExperienceRepository(db *gorm.DB, logger logger.Logger) (profile.ExperienceRepository, error) {
	return &gormExperienceRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormExperienceRepository) Create(ctx context.Context, experience *profile.Experience) error {
	if err := experience.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ExperienceModel{}
	model.FromDomain(experience)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}
	experience.ID = model.ID

	r.logger.Info("Created experience with id ", experience.ID)
	return nil
}

func (r *gormExperienceRepository) List(ctx context.Context, query *profile.ExperienceQuery) ([]*profile.Experience, error) {
	var modelList []*models.ExperienceModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ExperienceModel{})

	if query.ResumeID != nil {
		dbQuery = dbQuery.
			Joins("JOIN resume_experience ON resume_experience.experience_id = experience.id").
			Where("resume_experience.resume_id = ?", *query.ResumeID)
	}
	if query.CompanyID != nil {
		dbQuery = dbQuery.Where("company_id = ?", *query.CompanyID)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Order("experience.id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch experiences: %w", err)
	}

	domainList := make([]*profile.Experience, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormExperienceRepository) GetByID(ctx context.Context, experienceID uint) (*profile.Experience, error) {
	var model models.ExperienceModel
	if err := r.db.WithContext(ctx).Where("id = ?", experienceID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("experience with ID %d: %w", experienceID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch experience: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormExperienceRepository) UpdateByID(ctx context.Context, experience *profile.Experience) error {
	if err := experience.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ExperienceModel{}
	model.FromDomain(experience)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update experience: %w", err)
	}

	r.logger.Info("Updated experience with id ", experience.ID)
	return nil
}

func (r *gormExperienceRepository) DeleteByID(ctx context.Context, experienceID uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", experienceID).Delete(&models.ExperienceModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}

	r.logger.Info("Deleted experience with id ", experienceID)
	return nil
}

func (r *gormExperienceRepository) LinkToResume(ctx context.Context, experienceID, resumeID uint) error {
	var link models.ResumeExperienceModel
	err := r.db.WithContext(ctx).
		Where("experience_id = ? AND resume_id = ?", experienceID, resumeID).
		First(&link).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to fetch resume link: %w", err)
	}

	link = models.ResumeExperienceModel{ResumeID: resumeID, ExperienceID: experienceID}
	if err := r.db.WithContext(ctx).Create(&link).Error; err != nil {
		return fmt.Errorf("failed to link experience to resume: %w", err)
	}

	r.logger.Info("Linked experience ", experienceID, " to resume ", resumeID)
	return nil
}

func (r *gormExperienceRepository) ListResumeIDs(ctx context.Context, experienceID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.ResumeExperienceModel{}).
		Where("experience_id = ?", experienceID).
		Order("resume_id asc").
		Pluck("resume_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resume links: %w", err)
	}
	return ids, nil
}

type gormEducationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormEducationRepository creates a new GORM-based EducationRepository implementation
func NewGormEducationRepository(db *gorm.DB, logger logger.Logger) (profile.EducationRepository, error) {
	return &gormEducationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormEducationRepository) Create(ctx context.Context, education *profile.Education) error {
	if err := education.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EducationModel{}
	model.FromDomain(education)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create education: %w", err)
	}
	education.ID = model.ID

	r.logger.Info("Created education with id ", education.ID)
	return nil
}

func (r *gormEducationRepository) List(ctx context.Context, query *profile.EducationQuery) ([]*profile.Education, error) {
	var modelList []*models.EducationModel
	dbQuery := r.db.WithContext(ctx).Model(&models.EducationModel{})

	if query.ResumeID != nil {
		dbQuery = dbQuery.
			Joins("JOIN resume_education ON resume_education.education_id = education.id").
			Where("resume_education.resume_id = ?", *query.ResumeID)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Order("education.id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch educations: %w", err)
	}

	domainList := make([]*profile.Education, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormEducationRepository) GetByID(ctx context.Context, educationID uint) (*profile.Education, error) {
	var model models.EducationModel
	if err := r.db.WithContext(ctx).Where("id = ?", educationID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("education with ID %d: %w", educationID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch education: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormEducationRepository) UpdateByID(ctx context.Context, education *profile.Education) error {
	if err := education.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EducationModel{}
	model.FromDomain(education)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update education: %w", err)
	}

	r.logger.Info("Updated education with id ", education.ID)
	return nil
}

func (r *gormEducationRepository) DeleteByID(ctx context.Context, educationID uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", educationID).Delete(&models.EducationModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete education: %w", err)
	}

	r.logger.Info("Deleted education with id ", educationID)
	return nil
}

func (r *gormEducationRepository) LinkToResume(ctx context.Context, educationID, resumeID uint) error {
	var link models.ResumeEducationModel
	err := r.db.WithContext(ctx).
		Where("education_id = ? AND resume_id = ?", educationID, resumeID).
		First(&link).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to fetch resume link: %w", err)
	}

	link = models.ResumeEducationModel{ResumeID: resumeID, EducationID: educationID}
	if err := r.db.WithContext(ctx).Create(&link).Error; err != nil {
		return fmt.Errorf("failed to link education to resume: %w", err)
	}

	r.logger.Info("Linked education ", educationID, " to resume ", resumeID)
	return nil
}

func (r *gormEducationRepository) ListResumeIDs(ctx context.Context, educationID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.ResumeEducationModel{}).
		Where("education_id = ?", educationID).
		Order("resume_id asc").
		Pluck("resume_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resume links: %w", err)
	}
	return ids, nil
}

type gormCertificationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCertificationRepository creates a new GORM-based CertificationRepository implementation
func NewGormCertificationRepository(db *gorm.DB, logger logger.Logger) (profile.CertificationRepository, error) {
	return &gormCertificationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCertificationRepository) Create(ctx context.Context, certification *profile.Certification) error {
	if err := certification.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CertificationModel{}
	model.FromDomain(certification)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create certification: %w", err)
	}
	certification.ID = model.ID

	r.logger.Info("Created certification with id ", certification.ID)
	return nil
}

func (r *gormCertificationRepository) List(ctx context.Context, query *profile.CertificationQuery) ([]*profile.Certification, error) {
	var modelList []*models.CertificationModel
	dbQuery := r.db.WithContext(ctx).Model(&models.CertificationModel{})

	if query.ResumeID != nil {
		dbQuery = dbQuery.
			Joins("JOIN resume_certification ON resume_certification.certification_id = certification.id").
			Where("resume_certification.resume_id = ?", *query.ResumeID)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Order("certification.id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch certifications: %w", err)
	}

	domainList := make([]*profile.Certification, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormCertificationRepository) GetByID(ctx context.Context, certificationID uint) (*profile.Certification, error) {
	var model models.CertificationModel
	if err := r.db.WithContext(ctx).Where("id = ?", certificationID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("certification with ID %d: %w", certificationID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch certification: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCertificationRepository) UpdateByID(ctx context.Context, certification *profile.Certification) error {
	if err := certification.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CertificationModel{}
	model.FromDomain(certification)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update certification: %w", err)
	}

	r.logger.Info("Updated certification with id ", certification.ID)
	return nil
}

func (r *gormCertificationRepository) DeleteByID(ctx context.Context, certificationID uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", certificationID).Delete(&models.CertificationModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete certification: %w", err)
	}

	r.logger.Info("Deleted certification with id ", certificationID)
	return nil
}

func (r *gormCertificationRepository) LinkToResume(ctx context.Context, certificationID, resumeID uint) error {
	var link models.ResumeCertificationModel
	err := r.db.WithContext(ctx).
		Where("certification_id = ? AND resume_id = ?", certificationID, resumeID).
		First(&link).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to fetch resume link: %w", err)
	}

	link = models.ResumeCertificationModel{ResumeID: resumeID, CertificationID: certificationID}
	if err := r.db.WithContext(ctx).Create(&link).Error; err != nil {
		return fmt.Errorf("failed to link certification to resume: %w", err)
	}

	r.logger.Info("Linked certification ", certificationID, " to resume ", resumeID)
	return nil
}

func (r *gormCertificationRepository) ListResumeIDs(ctx context.Context, certificationID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.ResumeCertificationModel{}).
		Where("certification_id = ?", certificationID).
		Order("resume_id asc").
		Pluck("resume_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resume links: %w", err)
	}
	return ids, nil
}

type gormDescriptionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormDescriptionRepository creates a new GORM-based DescriptionRepository implementation
func NewGormDescriptionRepository(db *gorm.DB, logger logger.Logger) (profile.DescriptionRepository, error) {
	return &gormDescriptionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormDescriptionRepository) Create(ctx context.Context, description *profile.Description) error {
	if err := description.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.DescriptionModel{}
	model.FromDomain(description)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create description: %w", err)
	}
	description.ID = model.ID

	r.logger.Info("Created description with id ", description.ID)
	return nil
}

func (r *gormDescriptionRepository) List(ctx context.Context, query *profile.DescriptionQuery) ([]*profile.Description, error) {
	var modelList []*models.DescriptionModel
	dbQuery := r.db.WithContext(ctx).Model(&models.DescriptionModel{})

	// Within an experience, lines come back in their stored line order.
	if query.ExperienceID != nil {
		dbQuery = dbQuery.
			Joins("JOIN experience_description ON experience_description.description_id = description.id").
			Where("experience_description.experience_id = ?", *query.ExperienceID).
			Order("experience_description.line_order asc")
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Order("description.id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch descriptions: %w", err)
	}

	domainList := make([]*profile.Description, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormDescriptionRepository) GetByID(ctx context.Context, descriptionID uint) (*profile.Description, error) {
	var model models.DescriptionModel
	if err := r.db.WithContext(ctx).Where("id = ?", descriptionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("description with ID %d: %w", descriptionID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch description: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormDescriptionRepository) UpdateByID(ctx context.Context, description *profile.Description) error {
	if err := description.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.DescriptionModel{}
	model.FromDomain(description)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update description: %w", err)
	}

	r.logger.Info("Updated description with id ", description.ID)
	return nil
}

func (r *gormDescriptionRepository) DeleteByID(ctx context.Context, descriptionID uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", descriptionID).Delete(&models.DescriptionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete description: %w", err)
	}

	r.logger.Info("Deleted description with id ", descriptionID)
	return nil
}

func (r *gormDescriptionRepository) LinkToExperience(ctx context.Context, descriptionID, experienceID uint, order int) error {
	var link models.ExperienceDescriptionModel
	err := r.db.WithContext(ctx).
		Where("description_id = ? AND experience_id = ?", descriptionID, experienceID).
		First(&link).Error
	if err == nil {
		link.Order = order
		if err := r.db.WithContext(ctx).Save(&link).Error; err != nil {
			return fmt.Errorf("failed to reorder description line: %w", err)
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to fetch experience link: %w", err)
	}

	link = models.ExperienceDescriptionModel{
		ExperienceID:  experienceID,
		DescriptionID: descriptionID,
		Order:         order,
	}
	if err := r.db.WithContext(ctx).Create(&link).Error; err != nil {
		return fmt.Errorf("failed to link description to experience: %w", err)
	}

	r.logger.Info("Linked description ", descriptionID, " to experience ", experienceID)
	return nil
}

func (r *gormDescriptionRepository) ListExperienceIDs(ctx context.Context, descriptionID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.ExperienceDescriptionModel{}).
		Where("description_id = ?", descriptionID).
		Order("experience_id asc").
		Pluck("experience_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch experience links: %w", err)
	}
	return ids, nil
}
