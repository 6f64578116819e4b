package v1

import (
	"time"

	"github.com/overcast-software/career-caddy-api/internal/domain/accounts"
	"github.com/overcast-software/career-caddy-api/internal/domain/documents"
	"github.com/overcast-software/career-caddy-api/internal/domain/postings"
	"github.com/overcast-software/career-caddy-api/internal/domain/profile"
	"github.com/overcast-software/career-caddy-api/internal/domain/tracking"
)

// timeAttr renders an optional timestamp as RFC3339 or nil
func timeAttr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

// timestampAttr renders a required timestamp, mapping the zero value to nil
func timestampAttr(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

// userResource serializes a user. The password hash never leaves the server.
func userResource(user *accounts.User) *Resource {
	return &Resource{
		Type: TypeUsers,
		ID:   formatID(user.ID),
		Attributes: map[string]interface{}{
			"name":       user.Name,
			"username":   user.Username,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
			"phone":      user.Phone,
		},
		Relationships: map[string]*Relationship{
			"resumes":       toManyRelationship(TypeUsers, user.ID, "resumes"),
			"scores":        toManyRelationship(TypeUsers, user.ID, "scores"),
			"cover-letters": toManyRelationship(TypeUsers, user.ID, "cover-letters"),
			"applications":  toManyRelationship(TypeUsers, user.ID, "applications"),
			"summaries":     toManyRelationship(TypeUsers, user.ID, "summaries"),
		},
		Links: &Links{Self: resourceSelfLink(TypeUsers, user.ID)},
	}
}

func companyResource(company *postings.Company) *Resource {
	return &Resource{
		Type: TypeCompanies,
		ID:   formatID(company.ID),
		Attributes: map[string]interface{}{
			"name":         company.Name,
			"display_name": company.DisplayName,
		},
		Relationships: map[string]*Relationship{
			"job-posts": toManyRelationship(TypeCompanies, company.ID, "job-posts"),
			"scrapes":   toManyRelationship(TypeCompanies, company.ID, "scrapes"),
		},
		Links: &Links{Self: resourceSelfLink(TypeCompanies, company.ID)},
	}
}

func jobPostResource(jobPost *postings.JobPost) *Resource {
	return &Resource{
		Type: TypeJobPosts,
		ID:   formatID(jobPost.ID),
		Attributes: map[string]interface{}{
			"title":           jobPost.Title,
			"description":     jobPost.Description,
			"link":            jobPost.Link,
			"posted_date":     timeAttr(jobPost.PostedDate),
			"extraction_date": timeAttr(jobPost.ExtractionDate),
			"created_at":      timestampAttr(jobPost.CreatedAt),
		},
		Relationships: map[string]*Relationship{
			"company":       toOneRelationship(TypeJobPosts, jobPost.ID, "company", TypeCompanies, jobPost.CompanyID),
			"scores":        toManyRelationship(TypeJobPosts, jobPost.ID, "scores"),
			"scrapes":       toManyRelationship(TypeJobPosts, jobPost.ID, "scrapes"),
			"cover-letters": toManyRelationship(TypeJobPosts, jobPost.ID, "cover-letters"),
			"applications":  toManyRelationship(TypeJobPosts, jobPost.ID, "applications"),
			"summaries":     toManyRelationship(TypeJobPosts, jobPost.ID, "summaries"),
		},
		Links: &Links{Self: resourceSelfLink(TypeJobPosts, jobPost.ID)},
	}
}

func scrapeResource(scrape *postings.Scrape) *Resource {
	return &Resource{
		Type: TypeScrapes,
		ID:   formatID(scrape.ID),
		Attributes: map[string]interface{}{
			"url":           scrape.URL,
			"css_selectors": scrape.CSSSelectors,
			"job_content":   scrape.JobContent,
			"html":          scrape.HTML,
			"external_link": scrape.ExternalLink,
			"parse_method":  scrape.ParseMethod,
			"scraped_at":    timestampAttr(scrape.ScrapedAt),
			"state":         scrape.State,
		},
		Relationships: map[string]*Relationship{
			"company":       toOneRelationship(TypeScrapes, scrape.ID, "company", TypeCompanies, scrape.CompanyID),
			"job-post":      toOneRelationship(TypeScrapes, scrape.ID, "job-post", TypeJobPosts, scrape.JobPostID),
			"source-scrape": toOneRelationship(TypeScrapes, scrape.ID, "source-scrape", TypeScrapes, scrape.SourceScrapeID),
		},
		Links: &Links{Self: resourceSelfLink(TypeScrapes, scrape.ID)},
	}
}

func resumeResource(resume *documents.Resume) *Resource {
	return &Resource{
		Type: TypeResumes,
		ID:   formatID(resume.ID),
		Attributes: map[string]interface{}{
			"content":   resume.Content,
			"file_path": resume.FilePath,
			"favorite":  resume.Favorite,
		},
		Relationships: map[string]*Relationship{
			"user":           toOneRelationship(TypeResumes, resume.ID, "user", TypeUsers, resume.UserID),
			"scores":         toManyRelationship(TypeResumes, resume.ID, "scores"),
			"cover-letters":  toManyRelationship(TypeResumes, resume.ID, "cover-letters"),
			"applications":   toManyRelationship(TypeResumes, resume.ID, "applications"),
			"summaries":      toManyRelationship(TypeResumes, resume.ID, "summaries"),
			"experiences":    toManyRelationship(TypeResumes, resume.ID, "experiences"),
			"educations":     toManyRelationship(TypeResumes, resume.ID, "educations"),
			"certifications": toManyRelationship(TypeResumes, resume.ID, "certifications"),
		},
		Links: &Links{Self: resourceSelfLink(TypeResumes, resume.ID)},
	}
}

func scoreResource(score *documents.Score) *Resource {
	var value interface{}
	if score.Score != nil {
		value = *score.Score
	}
	return &Resource{
		Type: TypeScores,
		ID:   formatID(score.ID),
		Attributes: map[string]interface{}{
			"score":       value,
			"explanation": score.Explanation,
		},
		Relationships: map[string]*Relationship{
			"user":     toOneRelationship(TypeScores, score.ID, "user", TypeUsers, score.UserID),
			"resume":   toOneRelationship(TypeScores, score.ID, "resume", TypeResumes, score.ResumeID),
			"job-post": toOneRelationship(TypeScores, score.ID, "job-post", TypeJobPosts, score.JobPostID),
		},
		Links: &Links{Self: resourceSelfLink(TypeScores, score.ID)},
	}
}

func coverLetterResource(coverLetter *documents.CoverLetter) *Resource {
	return &Resource{
		Type: TypeCoverLetters,
		ID:   formatID(coverLetter.ID),
		Attributes: map[string]interface{}{
			"content":    coverLetter.Content,
			"favorite":   coverLetter.Favorite,
			"created_at": timestampAttr(coverLetter.CreatedAt),
		},
		Relationships: map[string]*Relationship{
			"user":     toOneRelationship(TypeCoverLetters, coverLetter.ID, "user", TypeUsers, coverLetter.UserID),
			"resume":   toOneRelationship(TypeCoverLetters, coverLetter.ID, "resume", TypeResumes, coverLetter.ResumeID),
			"job-post": toOneRelationship(TypeCoverLetters, coverLetter.ID, "job-post", TypeJobPosts, coverLetter.JobPostID),
		},
		Links: &Links{Self: resourceSelfLink(TypeCoverLetters, coverLetter.ID)},
	}
}

func applicationResource(application *tracking.Application) *Resource {
	return &Resource{
		Type: TypeApplications,
		ID:   formatID(application.ID),
		Attributes: map[string]interface{}{
			"applied_at":   timestampAttr(application.AppliedAt),
			"status":       application.Status,
			"tracking_url": application.TrackingURL,
			"notes":        application.Notes,
		},
		Relationships: map[string]*Relationship{
			"user":         toOneRelationship(TypeApplications, application.ID, "user", TypeUsers, application.UserID),
			"job-post":     toOneRelationship(TypeApplications, application.ID, "job-post", TypeJobPosts, application.JobPostID),
			"company":      toOneRelationship(TypeApplications, application.ID, "company", TypeCompanies, application.CompanyID),
			"resume":       toOneRelationship(TypeApplications, application.ID, "resume", TypeResumes, application.ResumeID),
			"cover-letter": toOneRelationship(TypeApplications, application.ID, "cover-letter", TypeCoverLetters, application.CoverLetterID),
			"statuses":     toManyRelationship(TypeApplications, application.ID, "statuses"),
		},
		Links: &Links{Self: resourceSelfLink(TypeApplications, application.ID)},
	}
}

func statusResource(status *tracking.Status) *Resource {
	return &Resource{
		Type: TypeStatuses,
		ID:   formatID(status.ID),
		Attributes: map[string]interface{}{
			"status":      status.Status,
			"status_type": status.StatusType,
			"created_at":  timestampAttr(status.CreatedAt),
		},
		Links: &Links{Self: resourceSelfLink(TypeStatuses, status.ID)},
	}
}

func summaryResource(summary *profile.Summary) *Resource {
	return &Resource{
		Type: TypeSummaries,
		ID:   formatID(summary.ID),
		Attributes: map[string]interface{}{
			"content": summary.Content,
		},
		Relationships: map[string]*Relationship{
			"user":     toOneRelationship(TypeSummaries, summary.ID, "user", TypeUsers, summary.UserID),
			"job-post": toOneRelationship(TypeSummaries, summary.ID, "job-post", TypeJobPosts, summary.JobPostID),
			"resume":   toOneRelationship(TypeSummaries, summary.ID, "resume", TypeResumes, summary.ResumeID),
		},
		Links: &Links{Self: resourceSelfLink(TypeSummaries, summary.ID)},
	}
}

func experienceResource(experience *profile.Experience) *Resource {
	return &Resource{
		Type: TypeExperiences,
		ID:   formatID(experience.ID),
		Attributes: map[string]interface{}{
			"title":      experience.Title,
			"start_date": timeAttr(experience.StartDate),
			"end_date":   timeAttr(experience.EndDate),
			"location":   experience.Location,
			"content":    experience.Content,
		},
		Relationships: map[string]*Relationship{
			"company":      toOneRelationship(TypeExperiences, experience.ID, "company", TypeCompanies, experience.CompanyID),
			"resumes":      toManyRelationship(TypeExperiences, experience.ID, "resumes"),
			"descriptions": toManyRelationship(TypeExperiences, experience.ID, "descriptions"),
		},
		Links: &Links{Self: resourceSelfLink(TypeExperiences, experience.ID)},
	}
}

func educationResource(education *profile.Education) *Resource {
	return &Resource{
		Type: TypeEducations,
		ID:   formatID(education.ID),
		Attributes: map[string]interface{}{
			"degree":      education.Degree,
			"issue_date":  timeAttr(education.IssueDate),
			"institution": education.Institution,
			"major":       education.Major,
			"minor":       education.Minor,
		},
		Relationships: map[string]*Relationship{
			"resumes": toManyRelationship(TypeEducations, education.ID, "resumes"),
		},
		Links: &Links{Self: resourceSelfLink(TypeEducations, education.ID)},
	}
}

func certificationResource(certification *profile.Certification) *Resource {
	return &Resource{
		Type: TypeCertifications,
		ID:   formatID(certification.ID),
		Attributes: map[string]interface{}{
			"issuer":     certification.Issuer,
			"title":      certification.Title,
			"issue_date": timeAttr(certification.IssueDate),
			"content":    certification.Content,
		},
		Relationships: map[string]*Relationship{
			"resumes": toManyRelationship(TypeCertifications, certification.ID, "resumes"),
		},
		Links: &Links{Self: resourceSelfLink(TypeCertifications, certification.ID)},
	}
}

func descriptionResource(description *profile.Description) *Resource {
	return &Resource{
		Type: TypeDescriptions,
		ID:   formatID(description.ID),
		Attributes: map[string]interface{}{
			"content": description.Content,
		},
		Relationships: map[string]*Relationship{
			"experiences": toManyRelationship(TypeDescriptions, description.ID, "experiences"),
		},
		Links: &Links{Self: resourceSelfLink(TypeDescriptions, description.ID)},
	}
}
