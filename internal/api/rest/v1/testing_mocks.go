//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/overcast-software/career-caddy-api/internal/domain/accounts"
	"github.com/overcast-software/career-caddy-api/internal/domain/documents"
	"github.com/overcast-software/career-caddy-api/internal/domain/postings"
	"github.com/overcast-software/career-caddy-api/internal/domain/profile"
	"github.com/overcast-software/career-caddy-api/internal/domain/tracking"

	"github.com/stretchr/testify/mock"
)

// MockAccountService is a mock implementation of AccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateUser(ctx context.Context, user *accounts.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockAccountService) ListUsers(ctx context.Context, query *accounts.UserQuery) ([]*accounts.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accounts.User), args.Error(1)
}

func (m *MockAccountService) GetUserByID(ctx context.Context, userID uint) (*accounts.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockAccountService) UpdateUser(ctx context.Context, user *accounts.User, password *string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockAccountService) DeleteUserByID(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAccountService) CheckCredentials(ctx context.Context, email, password string) (*accounts.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

// MockAPIKeyService is a mock implementation of APIKeyService
type MockAPIKeyService struct {
	mock.Mock
}

func (m *MockAPIKeyService) Issue(ctx context.Context, name string, userID uint, expiresDays *int, scopes []string) (*accounts.APIKey, string, error) {
	args := m.Called(ctx, name, userID, expiresDays, scopes)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*accounts.APIKey), args.String(1), args.Error(2)
}

func (m *MockAPIKeyService) Authenticate(ctx context.Context, plainKey string) (*accounts.APIKey, error) {
	args := m.Called(ctx, plainKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.APIKey), args.Error(1)
}

func (m *MockAPIKeyService) Revoke(ctx context.Context, keyID uint) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

// MockTokenService is a mock implementation of TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) ObtainPair(ctx context.Context, email, password string) (*accounts.TokenPair, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.TokenPair), args.Error(1)
}

func (m *MockTokenService) Refresh(ctx context.Context, refreshToken string) (*accounts.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.TokenPair), args.Error(1)
}

func (m *MockTokenService) Verify(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenService) ParseAccess(ctx context.Context, token string) (uint, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uint), args.Error(1)
}

// MockPostingService is a mock implementation of PostingService
type MockPostingService struct {
	mock.Mock
}

func (m *MockPostingService) CreateCompany(ctx context.Context, company *postings.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockPostingService) ListCompanies(ctx context.Context, query *postings.CompanyQuery) ([]*postings.Company, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*postings.Company), args.Error(1)
}

func (m *MockPostingService) GetCompanyByID(ctx context.Context, companyID uint) (*postings.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postings.Company), args.Error(1)
}

func (m *MockPostingService) UpdateCompany(ctx context.Context, company *postings.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockPostingService) DeleteCompanyByID(ctx context.Context, companyID uint) error {
	args := m.Called(ctx, companyID)
	return args.Error(0)
}

func (m *MockPostingService) CreateJobPost(ctx context.Context, jobPost *postings.JobPost) error {
	args := m.Called(ctx, jobPost)
	return args.Error(0)
}

func (m *MockPostingService) ListJobPosts(ctx context.Context, query *postings.JobPostQuery) ([]*postings.JobPost, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*postings.JobPost), args.Error(1)
}

func (m *MockPostingService) GetJobPostByID(ctx context.Context, jobPostID uint) (*postings.JobPost, error) {
	args := m.Called(ctx, jobPostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postings.JobPost), args.Error(1)
}

func (m *MockPostingService) UpdateJobPost(ctx context.Context, jobPost *postings.JobPost) error {
	args := m.Called(ctx, jobPost)
	return args.Error(0)
}

func (m *MockPostingService) DeleteJobPostByID(ctx context.Context, jobPostID uint) error {
	args := m.Called(ctx, jobPostID)
	return args.Error(0)
}

func (m *MockPostingService) CreateScrape(ctx context.Context, scrape *postings.Scrape) error {
	args := m.Called(ctx, scrape)
	return args.Error(0)
}

func (m *MockPostingService) ListScrapes(ctx context.Context, query *postings.ScrapeQuery) ([]*postings.Scrape, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*postings.Scrape), args.Error(1)
}

func (m *MockPostingService) GetScrapeByID(ctx context.Context, scrapeID uint) (*postings.Scrape, error) {
	args := m.Called(ctx, scrapeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*postings.Scrape), args.Error(1)
}

func (m *MockPostingService) UpdateScrape(ctx context.Context, scrape *postings.Scrape) error {
	args := m.Called(ctx, scrape)
	return args.Error(0)
}

func (m *MockPostingService) DeleteScrapeByID(ctx context.Context, scrapeID uint) error {
	args := m.Called(ctx, scrapeID)
	return args.Error(0)
}

// MockDocumentService is a mock implementation of DocumentService
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) CreateResume(ctx context.Context, resume *documents.Resume) error {
	args := m.Called(ctx, resume)
	return args.Error(0)
}

func (m *MockDocumentService) ListResumes(ctx context.Context, query *documents.ResumeQuery) ([]*documents.Resume, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*documents.Resume), args.Error(1)
}

func (m *MockDocumentService) GetResumeByID(ctx context.Context, resumeID uint) (*documents.Resume, error) {
	args := m.Called(ctx, resumeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.Resume), args.Error(1)
}

func (m *MockDocumentService) UpdateResume(ctx context.Context, resume *documents.Resume) error {
	args := m.Called(ctx, resume)
	return args.Error(0)
}

func (m *MockDocumentService) DeleteResumeByID(ctx context.Context, resumeID uint) error {
	args := m.Called(ctx, resumeID)
	return args.Error(0)
}

func (m *MockDocumentService) CreateScore(ctx context.Context, score *documents.Score) error {
	args := m.Called(ctx, score)
	return args.Error(0)
}

func (m *MockDocumentService) ListScores(ctx context.Context, query *documents.ScoreQuery) ([]*documents.Score, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*documents.Score), args.Error(1)
}

func (m *MockDocumentService) GetScoreByID(ctx context.Context, scoreID uint) (*documents.Score, error) {
	args := m.Called(ctx, scoreID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.Score), args.Error(1)
}

func (m *MockDocumentService) UpdateScore(ctx context.Context, score *documents.Score) error {
	args := m.Called(ctx, score)
	return args.Error(0)
}

func (m *MockDocumentService) DeleteScoreByID(ctx context.Context, scoreID uint) error {
	args := m.Called(ctx, scoreID)
	return args.Error(0)
}

func (m *MockDocumentService) CreateCoverLetter(ctx context.Context, coverLetter *documents.CoverLetter) error {
	args := m.Called(ctx, coverLetter)
	return args.Error(0)
}

func (m *MockDocumentService) ListCoverLetters(ctx context.Context, query *documents.CoverLetterQuery) ([]*documents.CoverLetter, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*documents.CoverLetter), args.Error(1)
}

func (m *MockDocumentService) GetCoverLetterByID(ctx context.Context, coverLetterID uint) (*documents.CoverLetter, error) {
	args := m.Called(ctx, coverLetterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*documents.CoverLetter), args.Error(1)
}

func (m *MockDocumentService) UpdateCoverLetter(ctx context.Context, coverLetter *documents.CoverLetter) error {
	args := m.Called(ctx, coverLetter)
	return args.Error(0)
}

func (m *MockDocumentService) DeleteCoverLetterByID(ctx context.Context, coverLetterID uint) error {
	args := m.Called(ctx, coverLetterID)
	return args.Error(0)
}

// MockIngestService is a mock implementation of IngestService
type MockIngestService struct {
	mock.Mock
}

func (m *MockIngestService) IngestResume(ctx context.Context, userID *uint, content, filePath string) (*documents.Resume, bool, error) {
	args := m.Called(ctx, userID, content, filePath)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*documents.Resume), args.Bool(1), args.Error(2)
}

// MockTrackingService is a mock implementation of TrackingService
type MockTrackingService struct {
	mock.Mock
}

func (m *MockTrackingService) CreateApplication(ctx context.Context, application *tracking.Application) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockTrackingService) ListApplications(ctx context.Context, query *tracking.ApplicationQuery) ([]*tracking.Application, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tracking.Application), args.Error(1)
}

func (m *MockTrackingService) GetApplicationByID(ctx context.Context, applicationID uint) (*tracking.Application, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Application), args.Error(1)
}

func (m *MockTrackingService) UpdateApplication(ctx context.Context, application *tracking.Application) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockTrackingService) DeleteApplicationByID(ctx context.Context, applicationID uint) error {
	args := m.Called(ctx, applicationID)
	return args.Error(0)
}

func (m *MockTrackingService) CreateStatus(ctx context.Context, status *tracking.Status) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

func (m *MockTrackingService) ListStatuses(ctx context.Context, query *tracking.StatusQuery) ([]*tracking.Status, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tracking.Status), args.Error(1)
}

func (m *MockTrackingService) GetStatusByID(ctx context.Context, statusID uint) (*tracking.Status, error) {
	args := m.Called(ctx, statusID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.Status), args.Error(1)
}

func (m *MockTrackingService) UpdateStatus(ctx context.Context, status *tracking.Status) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

func (m *MockTrackingService) DeleteStatusByID(ctx context.Context, statusID uint) error {
	args := m.Called(ctx, statusID)
	return args.Error(0)
}

func (m *MockTrackingService) AppendStatusEvent(ctx context.Context, applicationID, statusID uint) (*tracking.StatusEvent, error) {
	args := m.Called(ctx, applicationID, statusID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tracking.StatusEvent), args.Error(1)
}

func (m *MockTrackingService) ListStatusEvents(ctx context.Context, applicationID uint) ([]*tracking.StatusEvent, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tracking.StatusEvent), args.Error(1)
}

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) CreateSummary(ctx context.Context, summary *profile.Summary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func (m *MockProfileService) ListSummaries(ctx context.Context, query *profile.SummaryQuery) ([]*profile.Summary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profile.Summary), args.Error(1)
}

func (m *MockProfileService) GetSummaryByID(ctx context.Context, summaryID uint) (*profile.Summary, error) {
	args := m.Called(ctx, summaryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Summary), args.Error(1)
}

func (m *MockProfileService) UpdateSummary(ctx context.Context, summary *profile.Summary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func (m *MockProfileService) DeleteSummaryByID(ctx context.Context, summaryID uint) error {
	args := m.Called(ctx, summaryID)
	return args.Error(0)
}

func (m *MockProfileService) CreateExperience(ctx context.Context, experience *profile.Experience) error {
	args := m.Called(ctx, experience)
	return args.Error(0)
}

func (m *MockProfileService) ListExperiences(ctx context.Context, query *profile.ExperienceQuery) ([]*profile.Experience, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profile.Experience), args.Error(1)
}

func (m *MockProfileService) GetExperienceByID(ctx context.Context, experienceID uint) (*profile.Experience, error) {
	args := m.Called(ctx, experienceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Experience), args.Error(1)
}

func (m *MockProfileService) UpdateExperience(ctx context.Context, experience *profile.Experience) error {
	args := m.Called(ctx, experience)
	return args.Error(0)
}

func (m *MockProfileService) DeleteExperienceByID(ctx context.Context, experienceID uint) error {
	args := m.Called(ctx, experienceID)
	return args.Error(0)
}

func (m *MockProfileService) LinkExperienceToResume(ctx context.Context, experienceID, resumeID uint) error {
	args := m.Called(ctx, experienceID, resumeID)
	return args.Error(0)
}

func (m *MockProfileService) ListExperienceResumeIDs(ctx context.Context, experienceID uint) ([]uint, error) {
	args := m.Called(ctx, experienceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockProfileService) CreateEducation(ctx context.Context, education *profile.Education) error {
	args := m.Called(ctx, education)
	return args.Error(0)
}

func (m *MockProfileService) ListEducations(ctx context.Context, query *profile.EducationQuery) ([]*profile.Education, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profile.Education), args.Error(1)
}

func (m *MockProfileService) GetEducationByID(ctx context.Context, educationID uint) (*profile.Education, error) {
	args := m.Called(ctx, educationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Education), args.Error(1)
}

func (m *MockProfileService) UpdateEducation(ctx context.Context, education *profile.Education) error {
	args := m.Called(ctx, education)
	return args.Error(0)
}

func (m *MockProfileService) DeleteEducationByID(ctx context.Context, educationID uint) error {
	args := m.Called(ctx, educationID)
	return args.Error(0)
}

func (m *MockProfileService) LinkEducationToResume(ctx context.Context, educationID, resumeID uint) error {
	args := m.Called(ctx, educationID, resumeID)
	return args.Error(0)
}

func (m *MockProfileService) ListEducationResumeIDs(ctx context.Context, educationID uint) ([]uint, error) {
	args := m.Called(ctx, educationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockProfileService) CreateCertification(ctx context.Context, certification *profile.Certification) error {
	args := m.Called(ctx, certification)
	return args.Error(0)
}

func (m *MockProfileService) ListCertifications(ctx context.Context, query *profile.CertificationQuery) ([]*profile.Certification, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profile.Certification), args.Error(1)
}

func (m *MockProfileService) GetCertificationByID(ctx context.Context, certificationID uint) (*profile.Certification, error) {
	args := m.Called(ctx, certificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Certification), args.Error(1)
}

func (m *MockProfileService) UpdateCertification(ctx context.Context, certification *profile.Certification) error {
	args := m.Called(ctx, certification)
	return args.Error(0)
}

func (m *MockProfileService) DeleteCertificationByID(ctx context.Context, certificationID uint) error {
	args := m.Called(ctx, certificationID)
	return args.Error(0)
}

func (m *MockProfileService) LinkCertificationToResume(ctx context.Context, certificationID, resumeID uint) error {
	args := m.Called(ctx, certificationID, resumeID)
	return args.Error(0)
}

func (m *MockProfileService) ListCertificationResumeIDs(ctx context.Context, certificationID uint) ([]uint, error) {
	args := m.Called(ctx, certificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockProfileService) CreateDescription(ctx context.Context, description *profile.Description) error {
	args := m.Called(ctx, description)
	return args.Error(0)
}

func (m *MockProfileService) ListDescriptions(ctx context.Context, query *profile.DescriptionQuery) ([]*profile.Description, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profile.Description), args.Error(1)
}

func (m *MockProfileService) GetDescriptionByID(ctx context.Context, descriptionID uint) (*profile.Description, error) {
	args := m.Called(ctx, descriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Description), args.Error(1)
}

func (m *MockProfileService) UpdateDescription(ctx context.Context, description *profile.Description) error {
	args := m.Called(ctx, description)
	return args.Error(0)
}

func (m *MockProfileService) DeleteDescriptionByID(ctx context.Context, descriptionID uint) error {
	args := m.Called(ctx, descriptionID)
	return args.Error(0)
}

func (m *MockProfileService) LinkDescriptionToExperience(ctx context.Context, descriptionID, experienceID uint, order int) error {
	args := m.Called(ctx, descriptionID, experienceID, order)
	return args.Error(0)
}

func (m *MockProfileService) ListDescriptionExperienceIDs(ctx context.Context, descriptionID uint) ([]uint, error) {
	args := m.Called(ctx, descriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}
