package persistence

import (
	"fmt"

	"github.com/overcast-software/career-caddy-api/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// Migrate applies the full schema. The server must never open its listener
// before this has succeeded; the CLI exposes the same call for
// init-container style deployments.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.UserModel{},
		&models.APIKeyModel{},
		&models.CompanyModel{},
		&models.JobPostModel{},
		&models.ScrapeModel{},
		&models.ResumeModel{},
		&models.ScoreModel{},
		&models.CoverLetterModel{},
		&models.ApplicationModel{},
		&models.StatusModel{},
		&models.StatusEventModel{},
		&models.SummaryModel{},
		&models.ExperienceModel{},
		&models.EducationModel{},
		&models.CertificationModel{},
		&models.DescriptionModel{},
		&models.ResumeExperienceModel{},
		&models.ResumeEducationModel{},
		&models.ResumeCertificationModel{},
		&models.ExperienceDescriptionModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
