package v1

import (
	"context"
	"fmt"

	"github.com/overcast-software/career-caddy-api/internal/domain/accounts"
	"github.com/overcast-software/career-caddy-api/internal/domain/documents"
	"github.com/overcast-software/career-caddy-api/internal/domain/postings"
	"github.com/overcast-software/career-caddy-api/internal/domain/profile"
	"github.com/overcast-software/career-caddy-api/internal/domain/tracking"
)

// errUnknownRelationship marks a relationship name a resource type does not
// have
var errUnknownRelationship = fmt.Errorf("unknown relationship")

// relatedResolver loads the resources behind a named relationship. It powers
// the relationship linkage endpoints, the related-collection endpoints and
// compound-document includes.
type relatedResolver struct {
	accountService  accounts.AccountService
	postingService  postings.PostingService
	documentService documents.DocumentService
	trackingService tracking.TrackingService
	profileService  profile.ProfileService
}

// relationshipNames lists the first-level relationships of a resource type,
// in serialization order
func relationshipNames(typeName string) []string {
	switch typeName {
	case TypeUsers:
		return []string{"resumes", "scores", "cover-letters", "applications", "summaries"}
	case TypeCompanies:
		return []string{"job-posts", "scrapes"}
	case TypeJobPosts:
		return []string{"company", "scores", "scrapes", "cover-letters", "applications", "summaries"}
	case TypeScrapes:
		return []string{"company", "job-post", "source-scrape"}
	case TypeResumes:
		return []string{"user", "scores", "cover-letters", "applications", "summaries", "experiences", "educations", "certifications"}
	case TypeScores:
		return []string{"user", "resume", "job-post"}
	case TypeCoverLetters:
		return []string{"user", "resume", "job-post"}
	case TypeApplications:
		return []string{"user", "job-post", "company", "resume", "cover-letter", "statuses"}
	case TypeStatuses:
		return nil
	case TypeSummaries:
		return []string{"user", "job-post", "resume"}
	case TypeExperiences:
		return []string{"company", "resumes", "descriptions"}
	case TypeEducations:
		return []string{"resumes"}
	case TypeCertifications:
		return []string{"resumes"}
	case TypeDescriptions:
		return []string{"experiences"}
	default:
		return nil
	}
}

// resolve loads the resources a relationship points at. toOne reports the
// relationship's cardinality; a to-one relationship resolves to zero or one
// resources.
func (r *relatedResolver) resolve(ctx context.Context, typeName string, id uint, relName string) (resources []*Resource, toOne bool, err error) {
	switch typeName {
	case TypeUsers:
		return r.resolveUser(ctx, id, relName)
	case TypeCompanies:
		return r.resolveCompany(ctx, id, relName)
	case TypeJobPosts:
		return r.resolveJobPost(ctx, id, relName)
	case TypeScrapes:
		return r.resolveScrape(ctx, id, relName)
	case TypeResumes:
		return r.resolveResume(ctx, id, relName)
	case TypeScores:
		return r.resolveScore(ctx, id, relName)
	case TypeCoverLetters:
		return r.resolveCoverLetter(ctx, id, relName)
	case TypeApplications:
		return r.resolveApplication(ctx, id, relName)
	case TypeSummaries:
		return r.resolveSummary(ctx, id, relName)
	case TypeExperiences:
		return r.resolveExperience(ctx, id, relName)
	case TypeEducations:
		return r.resolveEducation(ctx, id, relName)
	case TypeCertifications:
		return r.resolveCertification(ctx, id, relName)
	case TypeDescriptions:
		return r.resolveDescription(ctx, id, relName)
	default:
		return nil, false, errUnknownRelationship
	}
}

func (r *relatedResolver) resolveUser(ctx context.Context, id uint, relName string) ([]*Resource, bool, error) {
	switch relName {
	case "resumes":
		query := documents.NewResumeQuery()
		query.UserID = &id
		resumes, err := r.documentService.ListResumes(ctx, query)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, len(resumes))
		for i, resume := range resumes {
			resources[i] = resumeResource(resume)
		}
		return resources, false, nil
	case "scores":
		query := documents.NewScoreQuery()
		query.UserID = &id
		scores, err := r.documentService.ListScores(ctx, query)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, len(scores))
		for i, score := range scores {
			resources[i] = scoreResource(score)
		}
		return resources, false, nil
	case "cover-letters":
		query := documents.NewCoverLetterQuery()
		query.UserID = &id
		coverLetters, err := r.documentService.ListCoverLetters(ctx, query)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, len(coverLetters))
		for i, coverLetter := range coverLetters {
			resources[i] = coverLetterResource(coverLetter)
		}
		return resources, false, nil
	case "applications":
		query := tracking.NewApplicationQuery()
		query.UserID = &id
		applications, err := r.trackingService.ListApplications(ctx, query)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, len(applications))
		for i, application := range applications {
			resources[i] = applicationResource(application)
		}
		return resources, false, nil
	case "summaries":
		query := profile.NewSummaryQuery()
		query.UserID = &id
		summaries, err := r.profileService.ListSummaries(ctx, query)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, len(summaries))
		for i, summary := range summaries {
			resources[i] = summaryResource(summary)
		}
		return resources, false, nil
	default:
		return nil, false, errUnknownRelationship
	}
}

func (r *relatedResolver) resolveCompany(ctx context.Context, id uint, relName string) ([]*Resource, bool, error) {
	switch relName {
	case "job-posts":
		query := postings.NewJobPostQuery()
		query.CompanyID = &id
		jobPosts, err := r.postingService.ListJobPosts(ctx, query)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, len(jobPosts))
		for i, jobPost := range jobPosts {
			resources[i] = jobPostResource(jobPost)
		}
		return resources, false, nil
	case "scrapes":
		query := postings.NewScrapeQuery()
		query.CompanyID = &id
		scrapes, err := r.postingService.ListScrapes(ctx, query)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, len(scrapes))
		for i, scrape := range scrapes {
			resources[i] = scrapeResource(scrape)
		}
		return resources, false, nil
	default:
		return nil, false, errUnknownRelationship
	}
}

func (r *relatedResolver) resolveJobPost(ctx context.Context, id uint, relName string) ([]*Resource, bool, error) {
	switch relName {
	case "company":
		jobPost, err := r.postingService.GetJobPostByID(ctx, id)
		if err != nil {
			return nil, true, err
		}
		if jobPost.CompanyID == nil {
			return nil, true, nil
		}
		company, err := r.postingService.GetCompanyByID(ctx, *jobPost.CompanyID)
		if err != nil {
			return nil, true, err
		}
		return []*Resource{companyResource(company)}, true, nil
	case "scores":
		query := documents.NewScoreQuery()
		query.JobPostID = &id
		scores, err := r.documentService.ListScores(ctx, query)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, len(scores))
		for i, score := range scores {
			resources[i] = scoreResource(score)
		}
		return resources, false, nil
	case "scrapes":
		query := postings.NewScrapeQuery()
		query.JobPostID = &id
		scrapes, err := r.postingService.ListScrapes(ctx, query)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, len(scrapes))
		for i, scrape := range scrapes {
			resources[i] = scrapeResource(scrape)
		}
		return resources, false, nil
	case "cover-letters":
		query := documents.NewCoverLetterQuery()
		query.JobPostID = &id
		coverLetters, err := r.documentService.ListCoverLetters(ctx, query)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, len(coverLetters))
		for i, coverLetter := range coverLetters {
			resources[i] = coverLetterResource(coverLetter)
		}
		return resources, false, nil
	case "applications":
		query := tracking.NewApplicationQuery()
		query.JobPostID = &id
		applications, err := r.trackingService.ListApplications(ctx, query)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, len(applications))
		for i, application := range applications {
			resources[i] = applicationResource(application)
		}
		return resources, false, nil
	case "summaries":
		query := profile.NewSummaryQuery()
		query.JobPostID = &id
		summaries, err := r.profileService.ListSummaries(ctx, query)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, len(summaries))
		for i, summary := range summaries {
			resources[i] = summaryResource(summary)
		}
		return resources, false, nil
	default:
		return nil, false, errUnknownRelationship
	}
}

func (r *relatedResolver) resolveScrape(ctx context.Context, id uint, relName string) ([]*Resource, bool, error) {
	scrape, err := r.postingService.GetScrapeByID(ctx, id)
	if err != nil {
		return nil, true, err
	}

	switch relName {
	case "company":
		if scrape.CompanyID == nil {
			return nil, true, nil
		}
		company, err := r.postingService.GetCompanyByID(ctx, *scrape.CompanyID)
		if err != nil {
			return nil, true, err
		}
		return []*Resource{companyResource(company)}, true, nil
	case "job-post":
		if scrape.JobPostID == nil {
			return nil, true, nil
		}
		jobPost, err := r.postingService.GetJobPostByID(ctx, *scrape.JobPostID)
		if err != nil {
			return nil, true, err
		}
		return []*Resource{jobPostResource(jobPost)}, true, nil
	case "source-scrape":
		if scrape.SourceScrapeID == nil {
			return nil, true, nil
		}
		source, err := r.postingService.GetScrapeByID(ctx, *scrape.SourceScrapeID)
		if err != nil {
			return nil, true, err
		}
		return []*Resource{scrapeResource(source)}, true, nil
	default:
		return nil, false, errUnknownRelationship
	}
}

func (r *relatedResolver) resolveResume(ctx context.Context, id uint, relName string) ([]*Resource, bool, error) {
	switch relName {
	case "user":
		resume, err := r.documentService.GetResumeByID(ctx, id)
		if err != nil {
			return nil, true, err
		}
		if resume.UserID == nil {
			return nil, true, nil
		}
		user, err := r.accountService.GetUserByID(ctx, *resume.UserID)
		if err != nil {
			return nil, true, err
		}
		return []*Resource{userResource(user)}, true, nil
	case "scores":
		query := documents.NewScoreQuery()
		query.ResumeID = &id
		scores, err := r.documentService.ListScores(ctx, query)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, len(scores))
		for i, score := range scores {
			resources[i] = scoreResource(score)
		}
		return resources, false, nil
	case "cover-letters":
		query := documents.NewCoverLetterQuery()
		query.ResumeID = &id
		coverLetters, err := r.documentService.ListCoverLetters(ctx, query)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, len(coverLetters))
		for i, coverLetter := range coverLetters {
			resources[i] = coverLetterResource(coverLetter)
		}
		return resources, false, nil
	case "applications":
		query := tracking.NewApplicationQuery()
		query.ResumeID = &id
		applications, err := r.trackingService.ListApplications(ctx, query)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, len(applications))
		for i, application := range applications {
			resources[i] = applicationResource(application)
		}
		return resources, false, nil
	case "summaries":
		query := profile.NewSummaryQuery()
		query.ResumeID = &id
		summaries, err := r.profileService.ListSummaries(ctx, query)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, len(summaries))
		for i, summary := range summaries {
			resources[i] = summaryResource(summary)
		}
		return resources, false, nil
	case "experiences":
		query := profile.NewExperienceQuery()
		query.ResumeID = &id
		experiences, err := r.profileService.ListExperiences(ctx, query)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, len(experiences))
		for i, experience := range experiences {
			resources[i] = experienceResource(experience)
		}
		return resources, false, nil
	case "educations":
		query := profile.NewEducationQuery()
		query.ResumeID = &id
		educations, err := r.profileService.ListEducations(ctx, query)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, len(educations))
		for i, education := range educations {
			resources[i] = educationResource(education)
		}
		return resources, false, nil
	case "certifications":
		query := profile.NewCertificationQuery()
		query.ResumeID = &id
		certifications, err := r.profileService.ListCertifications(ctx, query)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, len(certifications))
		for i, certification := range certifications {
			resources[i] = certificationResource(certification)
		}
		return resources, false, nil
	default:
		return nil, false, errUnknownRelationship
	}
}

func (r *relatedResolver) resolveScore(ctx context.Context, id uint, relName string) ([]*Resource, bool, error) {
	score, err := r.documentService.GetScoreByID(ctx, id)
	if err != nil {
		return nil, true, err
	}

	switch relName {
	case "user":
		if score.UserID == nil {
			return nil, true, nil
		}
		user, err := r.accountService.GetUserByID(ctx, *score.UserID)
		if err != nil {
			return nil, true, err
		}
		return []*Resource{userResource(user)}, true, nil
	case "resume":
		if score.ResumeID == nil {
			return nil, true, nil
		}
		resume, err := r.documentService.GetResumeByID(ctx, *score.ResumeID)
		if err != nil {
			return nil, true, err
		}
		return []*Resource{resumeResource(resume)}, true, nil
	case "job-post":
		if score.JobPostID == nil {
			return nil, true, nil
		}
		jobPost, err := r.postingService.GetJobPostByID(ctx, *score.JobPostID)
		if err != nil {
			return nil, true, err
		}
		return []*Resource{jobPostResource(jobPost)}, true, nil
	default:
		return nil, false, errUnknownRelationship
	}
}

func (r *relatedResolver) resolveCoverLetter(ctx context.Context, id uint, relName string) ([]*Resource, bool, error) {
	coverLetter, err := r.documentService.GetCoverLetterByID(ctx, id)
	if err != nil {
		return nil, true, err
	}

	switch relName {
	case "user":
		if coverLetter.UserID == nil {
			return nil, true, nil
		}
		user, err := r.accountService.GetUserByID(ctx, *coverLetter.UserID)
		if err != nil {
			return nil, true, err
		}
		return []*Resource{userResource(user)}, true, nil
	case "resume":
		if coverLetter.ResumeID == nil {
			return nil, true, nil
		}
		resume, err := r.documentService.GetResumeByID(ctx, *coverLetter.ResumeID)
		if err != nil {
			return nil, true, err
		}
		return []*Resource{resumeResource(resume)}, true, nil
	case "job-post":
		if coverLetter.JobPostID == nil {
			return nil, true, nil
		}
		jobPost, err := r.postingService.GetJobPostByID(ctx, *coverLetter.JobPostID)
		if err != nil {
			return nil, true, err
		}
		return []*Resource{jobPostResource(jobPost)}, true, nil
	default:
		return nil, false, errUnknownRelationship
	}
}

func (r *relatedResolver) resolveApplication(ctx context.Context, id uint, relName string) ([]*Resource, bool, error) {
	if relName == "statuses" {
		events, err := r.trackingService.ListStatusEvents(ctx, id)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, 0, len(events))
		for _, event := range events {
			status, err := r.trackingService.GetStatusByID(ctx, event.StatusID)
			if err != nil {
				return nil, false, err
			}
			resources = append(resources, statusResource(status))
		}
		return resources, false, nil
	}

	application, err := r.trackingService.GetApplicationByID(ctx, id)
	if err != nil {
		return nil, true, err
	}

	switch relName {
	case "user":
		if application.UserID == nil {
			return nil, true, nil
		}
		user, err := r.accountService.GetUserByID(ctx, *application.UserID)
		if err != nil {
			return nil, true, err
		}
		return []*Resource{userResource(user)}, true, nil
	case "job-post":
		if application.JobPostID == nil {
			return nil, true, nil
		}
		jobPost, err := r.postingService.GetJobPostByID(ctx, *application.JobPostID)
		if err != nil {
			return nil, true, err
		}
		return []*Resource{jobPostResource(jobPost)}, true, nil
	case "company":
		if application.CompanyID == nil {
			return nil, true, nil
		}
		company, err := r.postingService.GetCompanyByID(ctx, *application.CompanyID)
		if err != nil {
			return nil, true, err
		}
		return []*Resource{companyResource(company)}, true, nil
	case "resume":
		if application.ResumeID == nil {
			return nil, true, nil
		}
		resume, err := r.documentService.GetResumeByID(ctx, *application.ResumeID)
		if err != nil {
			return nil, true, err
		}
		return []*Resource{resumeResource(resume)}, true, nil
	case "cover-letter":
		if application.CoverLetterID == nil {
			return nil, true, nil
		}
		coverLetter, err := r.documentService.GetCoverLetterByID(ctx, *application.CoverLetterID)
		if err != nil {
			return nil, true, err
		}
		return []*Resource{coverLetterResource(coverLetter)}, true, nil
	default:
		return nil, false, errUnknownRelationship
	}
}

func (r *relatedResolver) resolveSummary(ctx context.Context, id uint, relName string) ([]*Resource, bool, error) {
	summary, err := r.profileService.GetSummaryByID(ctx, id)
	if err != nil {
		return nil, true, err
	}

	switch relName {
	case "user":
		if summary.UserID == nil {
			return nil, true, nil
		}
		user, err := r.accountService.GetUserByID(ctx, *summary.UserID)
		if err != nil {
			return nil, true, err
		}
		return []*Resource{userResource(user)}, true, nil
	case "job-post":
		if summary.JobPostID == nil {
			return nil, true, nil
		}
		jobPost, err := r.postingService.GetJobPostByID(ctx, *summary.JobPostID)
		if err != nil {
			return nil, true, err
		}
		return []*Resource{jobPostResource(jobPost)}, true, nil
	case "resume":
		if summary.ResumeID == nil {
			return nil, true, nil
		}
		resume, err := r.documentService.GetResumeByID(ctx, *summary.ResumeID)
		if err != nil {
			return nil, true, err
		}
		return []*Resource{resumeResource(resume)}, true, nil
	default:
		return nil, false, errUnknownRelationship
	}
}

func (r *relatedResolver) resolveExperience(ctx context.Context, id uint, relName string) ([]*Resource, bool, error) {
	switch relName {
	case "company":
		experience, err := r.profileService.GetExperienceByID(ctx, id)
		if err != nil {
			return nil, true, err
		}
		if experience.CompanyID == nil {
			return nil, true, nil
		}
		company, err := r.postingService.GetCompanyByID(ctx, *experience.CompanyID)
		if err != nil {
			return nil, true, err
		}
		return []*Resource{companyResource(company)}, true, nil
	case "resumes":
		ids, err := r.profileService.ListExperienceResumeIDs(ctx, id)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, 0, len(ids))
		for _, resumeID := range ids {
			resume, err := r.documentService.GetResumeByID(ctx, resumeID)
			if err != nil {
				return nil, false, err
			}
			resources = append(resources, resumeResource(resume))
		}
		return resources, false, nil
	case "descriptions":
		query := profile.NewDescriptionQuery()
		query.ExperienceID = &id
		descriptions, err := r.profileService.ListDescriptions(ctx, query)
		if err != nil {
			return nil, false, err
		}
		resources := make([]*Resource, len(descriptions))
		for i, description := range descriptions {
			resources[i] = descriptionResource(description)
		}
		return resources, false, nil
	default:
		return nil, false, errUnknownRelationship
	}
}

func (r *relatedResolver) resolveEducation(ctx context.Context, id uint, relName string) ([]*Resource, bool, error) {
	if relName != "resumes" {
		return nil, false, errUnknownRelationship
	}
	ids, err := r.profileService.ListEducationResumeIDs(ctx, id)
	if err != nil {
		return nil, false, err
	}
	resources := make([]*Resource, 0, len(ids))
	for _, resumeID := range ids {
		resume, err := r.documentService.GetResumeByID(ctx, resumeID)
		if err != nil {
			return nil, false, err
		}
		resources = append(resources, resumeResource(resume))
	}
	return resources, false, nil
}

func (r *relatedResolver) resolveCertification(ctx context.Context, id uint, relName string) ([]*Resource, bool, error) {
	if relName != "resumes" {
		return nil, false, errUnknownRelationship
	}
	ids, err := r.profileService.ListCertificationResumeIDs(ctx, id)
	if err != nil {
		return nil, false, err
	}
	resources := make([]*Resource, 0, len(ids))
	for _, resumeID := range ids {
		resume, err := r.documentService.GetResumeByID(ctx, resumeID)
		if err != nil {
			return nil, false, err
		}
		resources = append(resources, resumeResource(resume))
	}
	return resources, false, nil
}

func (r *relatedResolver) resolveDescription(ctx context.Context, id uint, relName string) ([]*Resource, bool, error) {
	if relName != "experiences" {
		return nil, false, errUnknownRelationship
	}
	ids, err := r.profileService.ListDescriptionExperienceIDs(ctx, id)
	if err != nil {
		return nil, false, err
	}
	resources := make([]*Resource, 0, len(ids))
	for _, experienceID := range ids {
		experience, err := r.profileService.GetExperienceByID(ctx, experienceID)
		if err != nil {
			return nil, false, err
		}
		resources = append(resources, experienceResource(experience))
	}
	return resources, false, nil
}

// collectIncluded gathers the included resources for a set of primary
// resources according to the include set, de-duplicated by (type, id).
// Resolution errors on individual relationships degrade to omission rather
// than failing the whole response.
func (r *relatedResolver) collectIncluded(ctx context.Context, typeName string, ids []uint, includes includeSet) []*Resource {
	if includes.Empty() {
		return nil
	}

	collector := newIncludeCollector()
	for _, id := range ids {
		for _, relName := range relationshipNames(typeName) {
			if !includes.Has(relName) {
				continue
			}
			resources, _, err := r.resolve(ctx, typeName, id, relName)
			if err != nil {
				continue
			}
			for _, resource := range resources {
				collector.Add(resource)
			}
		}
	}
	return collector.Resources()
}
