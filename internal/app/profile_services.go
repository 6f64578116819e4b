package app

import (
	"context"
	"fmt"

	"github.com/overcast-software/career-caddy-api/internal/domain/profile"
	"github.com/overcast-software/career-caddy-api/internal/pkg/logger"
)

// profileService implements the ProfileService interface for managing
// summaries, experiences, educations, certifications and description lines
type profileService struct {
	summaryRepo       profile.SummaryRepository
	experienceRepo    profile.ExperienceRepository
	educationRepo     profile.EducationRepository
	certificationRepo profile.CertificationRepository
	descriptionRepo   profile.DescriptionRepository
	logger            logger.Logger
}

// NewProfileService creates a new instance of ProfileService
func NewProfileService(
	summaryRepo profile.SummaryRepository,
	experienceRepo profile.ExperienceRepository,
	educationRepo profile.EducationRepository,
	certificationRepo profile.CertificationRepository,
	descriptionRepo profile.DescriptionRepository,
	logger logger.Logger,
) (profile.ProfileService, error) {
	return &profileService{
		summaryRepo:       summaryRepo,
		experienceRepo:    experienceRepo,
		educationRepo:     educationRepo,
		certificationRepo: certificationRepo,
		descriptionRepo:   descriptionRepo,
		logger:            logger,
	}, nil
}

func (s *profileService) CreateSummary(ctx context.Context, summary *profile.Summary) error {
	if err := s.summaryRepo.Create(ctx, summary); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *profileService) ListSummaries(ctx context.Context, query *profile.SummaryQuery) ([]*profile.Summary, error) {
	summaries, err := s.summaryRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return summaries, nil
}

func (s *profileService) GetSummaryByID(ctx context.Context, summaryID uint) (*profile.Summary, error) {
	summary, err := s.summaryRepo.GetByID(ctx, summaryID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return summary, nil
}

func (s *profileService) UpdateSummary(ctx context.Context, summary *profile.Summary) error {
	if err := s.summaryRepo.UpdateByID(ctx, summary); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *profileService) DeleteSummaryByID(ctx context.Context, summaryID uint) error {
	if err := s.summaryRepo.DeleteByID(ctx, summaryID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *profileService) CreateExperience(ctx context.Context, experience *profile.Experience) error {
	if err := s.experienceRepo.Create(ctx, experience); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *profileService) ListExperiences(ctx context.Context, query *profile.ExperienceQuery) ([]*profile.Experience, error) {
	experiences, err := s.experienceRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return experiences, nil
}

func (s *profileService) GetExperienceByID(ctx context.Context, experienceID uint) (*profile.Experience, error) {
	experience, err := s.experienceRepo.GetByID(ctx, experienceID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return experience, nil
}

func (s *profileService) UpdateExperience(ctx context.Context, experience *profile.Experience) error {
	if err := s.experienceRepo.UpdateByID(ctx, experience); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *profileService) DeleteExperienceByID(ctx context.Context, experienceID uint) error {
	if err := s.experienceRepo.DeleteByID(ctx, experienceID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *profileService) LinkExperienceToResume(ctx context.Context, experienceID, resumeID uint) error {
	if err := s.experienceRepo.LinkToResume(ctx, experienceID, resumeID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *profileService) ListExperienceResumeIDs(ctx context.Context, experienceID uint) ([]uint, error) {
	ids, err := s.experienceRepo.ListResumeIDs(ctx, experienceID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return ids, nil
}

func (s *profileService) CreateEducation(ctx context.Context, education *profile.Education) error {
	if err := s.educationRepo.Create(ctx, education); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *profileService) ListEducations(ctx context.Context, query *profile.EducationQuery) ([]*profile.Education, error) {
	educations, err := s.educationRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return educations, nil
}

func (s *profileService) GetEducationByID(ctx context.Context, educationID uint) (*profile.Education, error) {
	education, err := s.educationRepo.GetByID(ctx, educationID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return education, nil
}

func (s *profileService) UpdateEducation(ctx context.Context, education *profile.Education) error {
	if err := s.educationRepo.UpdateByID(ctx, education); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *profileService) DeleteEducationByID(ctx context.Context, educationID uint) error {
	if err := s.educationRepo.DeleteByID(ctx, educationID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *profileService) LinkEducationToResume(ctx context.Context, educationID, resumeID uint) error {
	if err := s.educationRepo.LinkToResume(ctx, educationID, resumeID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *profileService) ListEducationResumeIDs(ctx context.Context, educationID uint) ([]uint, error) {
	ids, err := s.educationRepo.ListResumeIDs(ctx, educationID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return ids, nil
}

func (s *profileService) CreateCertification(ctx context.Context, certification *profile.Certification) error {
	if err := s.certificationRepo.Create(ctx, certification); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *profileService) ListCertifications(ctx context.Context, query *profile.CertificationQuery) ([]*profile.Certification, error) {
	certifications, err := s.certificationRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return certifications, nil
}

func (s *profileService) GetCertificationByID(ctx context.Context, certificationID uint) (*profile.Certification, error) {
	certification, err := s.certificationRepo.GetByID(ctx, certificationID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return certification, nil
}

func (s *profileService) UpdateCertification(ctx context.Context, certification *profile.Certification) error {
	if err := s.certificationRepo.UpdateByID(ctx, certification); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *profileService) DeleteCertificationByID(ctx context.Context, certificationID uint) error {
	if err := s.certificationRepo.DeleteByID(ctx, certificationID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *profileService) LinkCertificationToResume(ctx context.Context, certificationID, resumeID uint) error {
	if err := s.certificationRepo.LinkToResume(ctx, certificationID, resumeID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *profileService) ListCertificationResumeIDs(ctx context.Context, certificationID uint) ([]uint, error) {
	ids, err := s.certificationRepo.ListResumeIDs(ctx, certificationID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return ids, nil
}

func (s *profileService) CreateDescription(ctx context.Context, description *profile.Description) error {
	if err := s.descriptionRepo.Create(ctx, description); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *profileService) ListDescriptions(ctx context.Context, query *profile.DescriptionQuery) ([]*profile.Description, error) {
	descriptions, err := s.descriptionRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return descriptions, nil
}

func (s *profileService) GetDescriptionByID(ctx context.Context, descriptionID uint) (*profile.Description, error) {
	description, err := s.descriptionRepo.GetByID(ctx, descriptionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return description, nil
}

func (s *profileService) UpdateDescription(ctx context.Context, description *profile.Description) error {
	if err := s.descriptionRepo.UpdateByID(ctx, description); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *profileService) DeleteDescriptionByID(ctx context.Context, descriptionID uint) error {
	if err := s.descriptionRepo.DeleteByID(ctx, descriptionID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *profileService) LinkDescriptionToExperience(ctx context.Context, descriptionID, experienceID uint, order int) error {
	if err := s.descriptionRepo.LinkToExperience(ctx, descriptionID, experienceID, order); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *profileService) ListDescriptionExperienceIDs(ctx context.Context, descriptionID uint) ([]uint, error) {
	ids, err := s.descriptionRepo.ListExperienceIDs(ctx, descriptionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return ids, nil
}
