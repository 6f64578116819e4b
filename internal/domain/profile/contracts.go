package profile

import (
	"context"
)

// SummaryRepository defines the interface for Summary-related persistence operations
type SummaryRepository interface {
	Create(ctx context.Context, summary *Summary) error
	List(ctx context.Context, query *SummaryQuery) ([]*Summary, error)
	GetByID(ctx context.Context, summaryID uint) (*Summary, error)
	UpdateByID(ctx context.Context, summary *Summary) error
	DeleteByID(ctx context.Context, summaryID uint) error
}

// ExperienceRepository defines the interface for Experience-related persistence operations
type ExperienceRepository interface {
	Create(ctx context.Context, experience *Experience) error
	List(ctx context.Context, query *ExperienceQuery) ([]*Experience, error)
	GetByID(ctx context.Context, experienceID uint) (*Experience, error)
	UpdateByID(ctx context.Context, experience *Experience) error
	DeleteByID(ctx context.Context, experienceID uint) error
	// LinkToResume inserts a resume_experience join row. Linking twice is not
	// an error.
	LinkToResume(ctx context.Context, experienceID, resumeID uint) error
	// ListResumeIDs returns the resumes an experience appears on.
	ListResumeIDs(ctx context.Context, experienceID uint) ([]uint, error)
}

// EducationRepository defines the interface for Education-related persistence operations
type EducationRepository interface {
	Create(ctx context.Context, education *Education) error
	List(ctx context.Context, query *EducationQuery) ([]*Education, error)
	GetByID(ctx context.Context, educationID uint) (*Education, error)
	UpdateByID(ctx context.Context, education *Education) error
	DeleteByID(ctx context.Context, educationID uint) error
	LinkToResume(ctx context.Context, educationID, resumeID uint) error
	ListResumeIDs(ctx context.Context, educationID uint) ([]uint, error)
}

// CertificationRepository defines the interface for Certification-related persistence operations
type CertificationRepository interface {
	Create(ctx context.Context, certification *Certification) error
	List(ctx context.Context, query *CertificationQuery) ([]*Certification, error)
	GetByID(ctx context.Context, certificationID uint) (*Certification, error)
	UpdateByID(ctx context.Context, certification *Certification) error
	DeleteByID(ctx context.Context, certificationID uint) error
	LinkToResume(ctx context.Context, certificationID, resumeID uint) error
	ListResumeIDs(ctx context.Context, certificationID uint) ([]uint, error)
}

// DescriptionRepository defines the interface for Description-related persistence operations
type DescriptionRepository interface {
	Create(ctx context.Context, description *Description) error
	List(ctx context.Context, query *DescriptionQuery) ([]*Description, error)
	GetByID(ctx context.Context, descriptionID uint) (*Description, error)
	UpdateByID(ctx context.Context, description *Description) error
	DeleteByID(ctx context.Context, descriptionID uint) error
	// LinkToExperience inserts an experience_description join row at the given
	// line order. Re-linking an existing pair updates the order instead.
	LinkToExperience(ctx context.Context, descriptionID, experienceID uint, order int) error
	// ListExperienceIDs returns the experiences a description line appears on.
	ListExperienceIDs(ctx context.Context, descriptionID uint) ([]uint, error)
}

// ProfileService defines methods for managing the resume building blocks:
// summaries, experiences, educations, certifications and description lines.
type ProfileService interface {
	CreateSummary(ctx context.Context, summary *Summary) error
	ListSummaries(ctx context.Context, query *SummaryQuery) ([]*Summary, error)
	GetSummaryByID(ctx context.Context, summaryID uint) (*Summary, error)
	UpdateSummary(ctx context.Context, summary *Summary) error
	DeleteSummaryByID(ctx context.Context, summaryID uint) error

	CreateExperience(ctx context.Context, experience *Experience) error
	ListExperiences(ctx context.Context, query *ExperienceQuery) ([]*Experience, error)
	GetExperienceByID(ctx context.Context, experienceID uint) (*Experience, error)
	UpdateExperience(ctx context.Context, experience *Experience) error
	DeleteExperienceByID(ctx context.Context, experienceID uint) error
	LinkExperienceToResume(ctx context.Context, experienceID, resumeID uint) error
	ListExperienceResumeIDs(ctx context.Context, experienceID uint) ([]uint, error)

	CreateEducation(ctx context.Context, education *Education) error
	ListEducations(ctx context.Context, query *EducationQuery) ([]*Education, error)
	GetEducationByID(ctx context.Context, educationID uint) (*Education, error)
	UpdateEducation(ctx context.Context, education *Education) error
	DeleteEducationByID(ctx context.Context, educationID uint) error
	LinkEducationToResume(ctx context.Context, educationID, resumeID uint) error
	ListEducationResumeIDs(ctx context.Context, educationID uint) ([]uint, error)

	CreateCertification(ctx context.Context, certification *Certification) error
	ListCertifications(ctx context.Context, query *CertificationQuery) ([]*Certification, error)
	GetCertificationByID(ctx context.Context, certificationID uint) (*Certification, error)
	UpdateCertification(ctx context.Context, certification *Certification) error
	DeleteCertificationByID(ctx context.Context, certificationID uint) error
	LinkCertificationToResume(ctx context.Context, certificationID, resumeID uint) error
	ListCertificationResumeIDs(ctx context.Context, certificationID uint) ([]uint, error)

	CreateDescription(ctx context.Context, description *Description) error
	ListDescriptions(ctx context.Context, query *DescriptionQuery) ([]*Description, error)
	GetDescriptionByID(ctx context.Context, descriptionID uint) (*Description, error)
	UpdateDescription(ctx context.Context, description *Description) error
	DeleteDescriptionByID(ctx context.Context, descriptionID uint) error
	LinkDescriptionToExperience(ctx context.Context, descriptionID, experienceID uint, order int) error
	ListDescriptionExperienceIDs(ctx context.Context, descriptionID uint) ([]uint, error)
}
