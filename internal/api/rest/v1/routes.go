package v1

import (
	"github.com/overcast-software/career-caddy-api/internal/domain/accounts"
	"github.com/overcast-software/career-caddy-api/internal/domain/documents"
	"github.com/overcast-software/career-caddy-api/internal/domain/postings"
	"github.com/overcast-software/career-caddy-api/internal/domain/profile"
	"github.com/overcast-software/career-caddy-api/internal/domain/tracking"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes sets up all the API routes for version 1. The healthcheck and
// the token endpoints are reachable without credentials; every resource route
// requires a JWT access token or an API key.
func SetupRoutes(r *gin.Engine,
	db *gorm.DB,
	accountService accounts.AccountService,
	apiKeyService accounts.APIKeyService,
	tokenService accounts.TokenService,
	postingService postings.PostingService,
	documentService documents.DocumentService,
	ingestService documents.IngestService,
	trackingService tracking.TrackingService,
	profileService profile.ProfileService) {

	healthHandler := NewHealthHandler(db)
	r.GET("/healthcheck", healthHandler.Healthcheck)

	v1 := r.Group(BasePath) // lookup in version file

	// Token routes (exempt from authentication)
	tokenHandler := NewTokenHandler(tokenService)
	v1.POST("/token", tokenHandler.Obtain)
	v1.POST("/token/refresh", tokenHandler.Refresh)
	v1.POST("/token/verify", tokenHandler.Verify)

	protected := v1.Group("", AuthMiddleware(tokenService, apiKeyService))

	resolver := &relatedResolver{
		accountService:  accountService,
		postingService:  postingService,
		documentService: documentService,
		trackingService: trackingService,
		profileService:  profileService,
	}
	relationships := newRelationshipHandler(resolver)

	// Users Routes
	userHandler := NewUserHandler(accountService, resolver)
	protected.GET("/users", userHandler.List)
	protected.POST("/users", userHandler.Create)
	protected.GET("/users/:id", userHandler.GetByID)
	protected.PATCH("/users/:id", userHandler.Update)
	protected.PUT("/users/:id", userHandler.Update)
	protected.DELETE("/users/:id", userHandler.DeleteByID)
	protected.GET("/users/:id/relationships/:rel", relationships.Linkage(TypeUsers))
	protected.GET("/users/:id/resumes", relationships.Related(TypeUsers, "resumes"))
	protected.GET("/users/:id/scores", relationships.Related(TypeUsers, "scores"))
	protected.GET("/users/:id/cover-letters", relationships.Related(TypeUsers, "cover-letters"))
	protected.GET("/users/:id/applications", relationships.Related(TypeUsers, "applications"))
	protected.GET("/users/:id/summaries", relationships.Related(TypeUsers, "summaries"))

	// Companies Routes
	companyHandler := NewCompanyHandler(postingService, resolver)
	protected.GET("/companies", companyHandler.List)
	protected.POST("/companies", companyHandler.Create)
	protected.GET("/companies/:id", companyHandler.GetByID)
	protected.PATCH("/companies/:id", companyHandler.Update)
	protected.PUT("/companies/:id", companyHandler.Update)
	protected.DELETE("/companies/:id", companyHandler.DeleteByID)
	protected.GET("/companies/:id/relationships/:rel", relationships.Linkage(TypeCompanies))
	protected.GET("/companies/:id/job-posts", relationships.Related(TypeCompanies, "job-posts"))
	protected.GET("/companies/:id/scrapes", relationships.Related(TypeCompanies, "scrapes"))

	// Job Posts Routes
	jobPostHandler := NewJobPostHandler(postingService, resolver)
	protected.GET("/job-posts", jobPostHandler.List)
	protected.POST("/job-posts", jobPostHandler.Create)
	protected.GET("/job-posts/:id", jobPostHandler.GetByID)
	protected.PATCH("/job-posts/:id", jobPostHandler.Update)
	protected.PUT("/job-posts/:id", jobPostHandler.Update)
	protected.DELETE("/job-posts/:id", jobPostHandler.DeleteByID)
	protected.GET("/job-posts/:id/relationships/:rel", relationships.Linkage(TypeJobPosts))
	protected.GET("/job-posts/:id/scores", relationships.Related(TypeJobPosts, "scores"))
	protected.GET("/job-posts/:id/scrapes", relationships.Related(TypeJobPosts, "scrapes"))
	protected.GET("/job-posts/:id/cover-letters", relationships.Related(TypeJobPosts, "cover-letters"))
	protected.GET("/job-posts/:id/applications", relationships.Related(TypeJobPosts, "applications"))
	protected.GET("/job-posts/:id/summaries", relationships.Related(TypeJobPosts, "summaries"))

	// Scrapes Routes
	scrapeHandler := NewScrapeHandler(postingService, resolver)
	protected.GET("/scrapes", scrapeHandler.List)
	protected.POST("/scrapes", scrapeHandler.Create)
	protected.GET("/scrapes/:id", scrapeHandler.GetByID)
	protected.PATCH("/scrapes/:id", scrapeHandler.Update)
	protected.PUT("/scrapes/:id", scrapeHandler.Update)
	protected.DELETE("/scrapes/:id", scrapeHandler.DeleteByID)
	protected.GET("/scrapes/:id/relationships/:rel", relationships.Linkage(TypeScrapes))

	// Resumes Routes
	resumeHandler := NewResumeHandler(documentService, ingestService, resolver)
	protected.GET("/resumes", resumeHandler.List)
	protected.POST("/resumes", resumeHandler.Create)
	protected.GET("/resumes/:id", resumeHandler.GetByID)
	protected.PATCH("/resumes/:id", resumeHandler.Update)
	protected.PUT("/resumes/:id", resumeHandler.Update)
	protected.DELETE("/resumes/:id", resumeHandler.DeleteByID)
	protected.GET("/resumes/:id/relationships/:rel", relationships.Linkage(TypeResumes))
	protected.GET("/resumes/:id/scores", relationships.Related(TypeResumes, "scores"))
	protected.GET("/resumes/:id/cover-letters", relationships.Related(TypeResumes, "cover-letters"))
	protected.GET("/resumes/:id/applications", relationships.Related(TypeResumes, "applications"))
	protected.GET("/resumes/:id/summaries", relationships.Related(TypeResumes, "summaries"))
	protected.GET("/resumes/:id/experiences", relationships.Related(TypeResumes, "experiences"))
	protected.GET("/resumes/:id/educations", relationships.Related(TypeResumes, "educations"))
	protected.GET("/resumes/:id/certifications", relationships.Related(TypeResumes, "certifications"))

	// Scores Routes
	scoreHandler := NewScoreHandler(documentService, resolver)
	protected.GET("/scores", scoreHandler.List)
	protected.POST("/scores", scoreHandler.Create)
	protected.GET("/scores/:id", scoreHandler.GetByID)
	protected.PATCH("/scores/:id", scoreHandler.Update)
	protected.PUT("/scores/:id", scoreHandler.Update)
	protected.DELETE("/scores/:id", scoreHandler.DeleteByID)
	protected.GET("/scores/:id/relationships/:rel", relationships.Linkage(TypeScores))

	// Cover Letters Routes
	coverLetterHandler := NewCoverLetterHandler(documentService, resolver)
	protected.GET("/cover-letters", coverLetterHandler.List)
	protected.POST("/cover-letters", coverLetterHandler.Create)
	protected.GET("/cover-letters/:id", coverLetterHandler.GetByID)
	protected.PATCH("/cover-letters/:id", coverLetterHandler.Update)
	protected.PUT("/cover-letters/:id", coverLetterHandler.Update)
	protected.DELETE("/cover-letters/:id", coverLetterHandler.DeleteByID)
	protected.GET("/cover-letters/:id/relationships/:rel", relationships.Linkage(TypeCoverLetters))

	// Applications Routes
	applicationHandler := NewApplicationHandler(trackingService, resolver)
	protected.GET("/applications", applicationHandler.List)
	protected.POST("/applications", applicationHandler.Create)
	protected.GET("/applications/:id", applicationHandler.GetByID)
	protected.PATCH("/applications/:id", applicationHandler.Update)
	protected.PUT("/applications/:id", applicationHandler.Update)
	protected.DELETE("/applications/:id", applicationHandler.DeleteByID)
	protected.GET("/applications/:id/relationships/:rel", relationships.Linkage(TypeApplications))
	protected.GET("/applications/:id/statuses", applicationHandler.ListStatusHistory)
	protected.POST("/applications/:id/statuses", applicationHandler.AppendStatus)

	// Statuses Routes
	statusHandler := NewStatusHandler(trackingService)
	protected.GET("/statuses", statusHandler.List)
	protected.POST("/statuses", statusHandler.Create)
	protected.GET("/statuses/:id", statusHandler.GetByID)
	protected.PATCH("/statuses/:id", statusHandler.Update)
	protected.PUT("/statuses/:id", statusHandler.Update)
	protected.DELETE("/statuses/:id", statusHandler.DeleteByID)

	// Summaries Routes
	summaryHandler := NewSummaryHandler(profileService, resolver)
	protected.GET("/summaries", summaryHandler.List)
	protected.POST("/summaries", summaryHandler.Create)
	protected.GET("/summaries/:id", summaryHandler.GetByID)
	protected.PATCH("/summaries/:id", summaryHandler.Update)
	protected.PUT("/summaries/:id", summaryHandler.Update)
	protected.DELETE("/summaries/:id", summaryHandler.DeleteByID)
	protected.GET("/summaries/:id/relationships/:rel", relationships.Linkage(TypeSummaries))

	// Experiences Routes
	experienceHandler := NewExperienceHandler(profileService, resolver)
	protected.GET("/experiences", experienceHandler.List)
	protected.POST("/experiences", experienceHandler.Create)
	protected.GET("/experiences/:id", experienceHandler.GetByID)
	protected.PATCH("/experiences/:id", experienceHandler.Update)
	protected.PUT("/experiences/:id", experienceHandler.Update)
	protected.DELETE("/experiences/:id", experienceHandler.DeleteByID)
	protected.GET("/experiences/:id/relationships/:rel", relationships.Linkage(TypeExperiences))
	protected.GET("/experiences/:id/descriptions", relationships.Related(TypeExperiences, "descriptions"))

	// Educations Routes
	educationHandler := NewEducationHandler(profileService, resolver)
	protected.GET("/educations", educationHandler.List)
	protected.POST("/educations", educationHandler.Create)
	protected.GET("/educations/:id", educationHandler.GetByID)
	protected.PATCH("/educations/:id", educationHandler.Update)
	protected.PUT("/educations/:id", educationHandler.Update)
	protected.DELETE("/educations/:id", educationHandler.DeleteByID)
	protected.GET("/educations/:id/relationships/:rel", relationships.Linkage(TypeEducations))

	// Certifications Routes
	certificationHandler := NewCertificationHandler(profileService, resolver)
	protected.GET("/certifications", certificationHandler.List)
	protected.POST("/certifications", certificationHandler.Create)
	protected.GET("/certifications/:id", certificationHandler.GetByID)
	protected.PATCH("/certifications/:id", certificationHandler.Update)
	protected.PUT("/certifications/:id", certificationHandler.Update)
	protected.DELETE("/certifications/:id", certificationHandler.DeleteByID)
	protected.GET("/certifications/:id/relationships/:rel", relationships.Linkage(TypeCertifications))

	// Descriptions Routes
	descriptionHandler := NewDescriptionHandler(profileService, resolver)
	protected.GET("/descriptions", descriptionHandler.List)
	protected.POST("/descriptions", descriptionHandler.Create)
	protected.GET("/descriptions/:id", descriptionHandler.GetByID)
	protected.PATCH("/descriptions/:id", descriptionHandler.Update)
	protected.PUT("/descriptions/:id", descriptionHandler.Update)
	protected.DELETE("/descriptions/:id", descriptionHandler.DeleteByID)
	protected.GET("/descriptions/:id/relationships/:rel", relationships.Linkage(TypeDescriptions))
}
