package v1

import (
	"fmt"
	"net/http"

	"github.com/overcast-software/career-caddy-api/internal/domain/profile"
	"github.com/overcast-software/career-caddy-api/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// SummaryHandler defines the interface for handling summary resource operations
type SummaryHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type summaryHandler struct {
	profileService profile.ProfileService
	resolver       *relatedResolver
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(profileService profile.ProfileService, resolver *relatedResolver) SummaryHandler {
	return &summaryHandler{
		profileService: profileService,
		resolver:       resolver,
	}
}

func (handler *summaryHandler) List(ctx *gin.Context) {
	page := parsePage(ctx)
	query := profile.NewSummaryQuery()
	query.Limit = page.Limit()
	query.Offset = page.Offset()
	if userID := strutil.ConvertToUint(ctx.Query("filter[user]")); userID != 0 {
		query.UserID = &userID
	}
	if jobPostID := strutil.ConvertToUint(ctx.Query("filter[job-post]")); jobPostID != 0 {
		query.JobPostID = &jobPostID
	}
	if resumeID := strutil.ConvertToUint(ctx.Query("filter[resume]")); resumeID != 0 {
		query.ResumeID = &resumeID
	}

	summaries, err := handler.profileService.ListSummaries(ctx, query)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("list query failed: %v", err))
		return
	}

	resources := make([]*Resource, len(summaries))
	ids := make([]uint, len(summaries))
	for i, summary := range summaries {
		resources[i] = summaryResource(summary)
		ids[i] = summary.ID
	}

	doc := &Document{Data: resources}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeSummaries, ids, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *summaryHandler) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	summary, err := handler.profileService.GetSummaryByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("summary with id %d not found", id))
		return
	}

	doc := &Document{Data: summaryResource(summary)}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeSummaries, []uint{id}, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *summaryHandler) Create(ctx *gin.Context) {
	payload, ok := bindPayload(ctx, TypeSummaries)
	if !ok {
		return
	}

	summary := &profile.Summary{
		Content:   attrString(payload.Data.Attributes, "content"),
		UserID:    payload.relationshipID("user"),
		JobPostID: payload.relationshipID("job-post"),
		ResumeID:  payload.relationshipID("resume"),
	}

	if err := handler.profileService.CreateSummary(ctx, summary); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not create summary: %v", err))
		return
	}

	writeDocument(ctx, http.StatusCreated, &Document{Data: summaryResource(summary)})
}

func (handler *summaryHandler) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	summary, err := handler.profileService.GetSummaryByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("summary with id %d not found", id))
		return
	}

	payload, ok := bindPayload(ctx, TypeSummaries)
	if !ok {
		return
	}

	attrs := payload.Data.Attributes
	if _, present := attrs["content"]; present {
		summary.Content = attrString(attrs, "content")
	}
	if userID := payload.relationshipID("user"); userID != nil {
		summary.UserID = userID
	}
	if jobPostID := payload.relationshipID("job-post"); jobPostID != nil {
		summary.JobPostID = jobPostID
	}
	if resumeID := payload.relationshipID("resume"); resumeID != nil {
		summary.ResumeID = resumeID
	}

	if err := handler.profileService.UpdateSummary(ctx, summary); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not update summary: %v", err))
		return
	}

	writeDocument(ctx, http.StatusOK, &Document{Data: summaryResource(summary)})
}

func (handler *summaryHandler) DeleteByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := handler.profileService.DeleteSummaryByID(ctx, id); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not delete summary: %v", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ExperienceHandler defines the interface for handling experience resource operations
type ExperienceHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type experienceHandler struct {
	profileService profile.ProfileService
	resolver       *relatedResolver
}

// NewExperienceHandler creates a new ExperienceHandler
func NewExperienceHandler(profileService profile.ProfileService, resolver *relatedResolver) ExperienceHandler {
	return &experienceHandler{
		profileService: profileService,
		resolver:       resolver,
	}
}

func (handler *experienceHandler) List(ctx *gin.Context) {
	page := parsePage(ctx)
	query := profile.NewExperienceQuery()
	query.Limit = page.Limit()
	query.Offset = page.Offset()
	if resumeID := strutil.ConvertToUint(ctx.Query("filter[resume]")); resumeID != 0 {
		query.ResumeID = &resumeID
	}
	if companyID := strutil.ConvertToUint(ctx.Query("filter[company]")); companyID != 0 {
		query.CompanyID = &companyID
	}

	experiences, err := handler.profileService.ListExperiences(ctx, query)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("list query failed: %v", err))
		return
	}

	resources := make([]*Resource, len(experiences))
	ids := make([]uint, len(experiences))
	for i, experience := range experiences {
		resources[i] = experienceResource(experience)
		ids[i] = experience.ID
	}

	doc := &Document{Data: resources}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeExperiences, ids, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *experienceHandler) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	experience, err := handler.profileService.GetExperienceByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("experience with id %d not found", id))
		return
	}

	doc := &Document{Data: experienceResource(experience)}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeExperiences, []uint{id}, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *experienceHandler) Create(ctx *gin.Context) {
	payload, ok := bindPayload(ctx, TypeExperiences)
	if !ok {
		return
	}

	attrs := payload.Data.Attributes
	startDate, err := attrTime(attrs, "start_date")
	if err != nil {
		writeError(ctx, http.StatusBadRequest, err.Error())
		return
	}
	endDate, err := attrTime(attrs, "end_date")
	if err != nil {
		writeError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	experience := &profile.Experience{
		Title:     attrString(attrs, "title"),
		StartDate: startDate,
		EndDate:   endDate,
		Location:  attrString(attrs, "location"),
		Content:   attrString(attrs, "content"),
		CompanyID: payload.relationshipID("company"),
	}

	if err := handler.profileService.CreateExperience(ctx, experience); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not create experience: %v", err))
		return
	}

	writeDocument(ctx, http.StatusCreated, &Document{Data: experienceResource(experience)})
}

func (handler *experienceHandler) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	experience, err := handler.profileService.GetExperienceByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("experience with id %d not found", id))
		return
	}

	payload, ok := bindPayload(ctx, TypeExperiences)
	if !ok {
		return
	}

	attrs := payload.Data.Attributes
	if _, present := attrs["title"]; present {
		experience.Title = attrString(attrs, "title")
	}
	if _, present := attrs["start_date"]; present {
		startDate, err := attrTime(attrs, "start_date")
		if err != nil {
			writeError(ctx, http.StatusBadRequest, err.Error())
			return
		}
		experience.StartDate = startDate
	}
	if _, present := attrs["end_date"]; present {
		endDate, err := attrTime(attrs, "end_date")
		if err != nil {
			writeError(ctx, http.StatusBadRequest, err.Error())
			return
		}
		experience.EndDate = endDate
	}
	if _, present := attrs["location"]; present {
		experience.Location = attrString(attrs, "location")
	}
	if _, present := attrs["content"]; present {
		experience.Content = attrString(attrs, "content")
	}
	if companyID := payload.relationshipID("company"); companyID != nil {
		experience.CompanyID = companyID
	}

	if err := handler.profileService.UpdateExperience(ctx, experience); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not update experience: %v", err))
		return
	}

	writeDocument(ctx, http.StatusOK, &Document{Data: experienceResource(experience)})
}

func (handler *experienceHandler) DeleteByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := handler.profileService.DeleteExperienceByID(ctx, id); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not delete experience: %v", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// EducationHandler defines the interface for handling education resource operations
type EducationHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type educationHandler struct {
	profileService profile.ProfileService
	resolver       *relatedResolver
}

// NewEducationHandler creates a new EducationHandler
func NewEducationHandler(profileService profile.ProfileService, resolver *relatedResolver) EducationHandler {
	return &educationHandler{
		profileService: profileService,
		resolver:       resolver,
	}
}

func (handler *educationHandler) List(ctx *gin.Context) {
	page := parsePage(ctx)
	query := profile.NewEducationQuery()
	query.Limit = page.Limit()
	query.Offset = page.Offset()
	if resumeID := strutil.ConvertToUint(ctx.Query("filter[resume]")); resumeID != 0 {
		query.ResumeID = &resumeID
	}

	educations, err := handler.profileService.ListEducations(ctx, query)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("list query failed: %v", err))
		return
	}

	resources := make([]*Resource, len(educations))
	ids := make([]uint, len(educations))
	for i, education := range educations {
		resources[i] = educationResource(education)
		ids[i] = education.ID
	}

	doc := &Document{Data: resources}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeEducations, ids, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *educationHandler) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	education, err := handler.profileService.GetEducationByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("education with id %d not found", id))
		return
	}

	doc := &Document{Data: educationResource(education)}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeEducations, []uint{id}, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *educationHandler) Create(ctx *gin.Context) {
	payload, ok := bindPayload(ctx, TypeEducations)
	if !ok {
		return
	}

	attrs := payload.Data.Attributes
	issueDate, err := attrTime(attrs, "issue_date")
	if err != nil {
		writeError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	education := &profile.Education{
		Degree:      attrString(attrs, "degree"),
		IssueDate:   issueDate,
		Institution: attrString(attrs, "institution"),
		Major:       attrString(attrs, "major"),
		Minor:       attrString(attrs, "minor"),
	}

	if err := handler.profileService.CreateEducation(ctx, education); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not create education: %v", err))
		return
	}

	writeDocument(ctx, http.StatusCreated, &Document{Data: educationResource(education)})
}

func (handler *educationHandler) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	education, err := handler.profileService.GetEducationByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("education with id %d not found", id))
		return
	}

	payload, ok := bindPayload(ctx, TypeEducations)
	if !ok {
		return
	}

	attrs := payload.Data.Attributes
	if _, present := attrs["degree"]; present {
		education.Degree = attrString(attrs, "degree")
	}
	if _, present := attrs["issue_date"]; present {
		issueDate, err := attrTime(attrs, "issue_date")
		if err != nil {
			writeError(ctx, http.StatusBadRequest, err.Error())
			return
		}
		education.IssueDate = issueDate
	}
	if _, present := attrs["institution"]; present {
		education.Institution = attrString(attrs, "institution")
	}
	if _, present := attrs["major"]; present {
		education.Major = attrString(attrs, "major")
	}
	if _, present := attrs["minor"]; present {
		education.Minor = attrString(attrs, "minor")
	}

	if err := handler.profileService.UpdateEducation(ctx, education); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not update education: %v", err))
		return
	}

	writeDocument(ctx, http.StatusOK, &Document{Data: educationResource(education)})
}

func (handler *educationHandler) DeleteByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := handler.profileService.DeleteEducationByID(ctx, id); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not delete education: %v", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CertificationHandler defines the interface for handling certification resource operations
type CertificationHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type certificationHandler struct {
	profileService profile.ProfileService
	resolver       *relatedResolver
}

// NewCertificationHandler creates a new CertificationHandler
func NewCertificationHandler(profileService profile.ProfileService, resolver *relatedResolver) CertificationHandler {
	return &certificationHandler{
		profileService: profileService,
		resolver:       resolver,
	}
}

func (handler *certificationHandler) List(ctx *gin.Context) {
	page := parsePage(ctx)
	query := profile.NewCertificationQuery()
	query.Limit = page.Limit()
	query.Offset = page.Offset()
	if resumeID := strutil.ConvertToUint(ctx.Query("filter[resume]")); resumeID != 0 {
		query.ResumeID = &resumeID
	}

	certifications, err := handler.profileService.ListCertifications(ctx, query)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("list query failed: %v", err))
		return
	}

	resources := make([]*Resource, len(certifications))
	ids := make([]uint, len(certifications))
	for i, certification := range certifications {
		resources[i] = certificationResource(certification)
		ids[i] = certification.ID
	}

	doc := &Document{Data: resources}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeCertifications, ids, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *certificationHandler) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	certification, err := handler.profileService.GetCertificationByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("certification with id %d not found", id))
		return
	}

	doc := &Document{Data: certificationResource(certification)}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeCertifications, []uint{id}, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *certificationHandler) Create(ctx *gin.Context) {
	payload, ok := bindPayload(ctx, TypeCertifications)
	if !ok {
		return
	}

	attrs := payload.Data.Attributes
	issueDate, err := attrTime(attrs, "issue_date")
	if err != nil {
		writeError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	certification := &profile.Certification{
		Issuer:    attrString(attrs, "issuer"),
		Title:     attrString(attrs, "title"),
		IssueDate: issueDate,
		Content:   attrString(attrs, "content"),
	}

	if err := handler.profileService.CreateCertification(ctx, certification); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not create certification: %v", err))
		return
	}

	writeDocument(ctx, http.StatusCreated, &Document{Data: certificationResource(certification)})
}

func (handler *certificationHandler) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	certification, err := handler.profileService.GetCertificationByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("certification with id %d not found", id))
		return
	}

	payload, ok := bindPayload(ctx, TypeCertifications)
	if !ok {
		return
	}

	attrs := payload.Data.Attributes
	if _, present := attrs["issuer"]; present {
		certification.Issuer = attrString(attrs, "issuer")
	}
	if _, present := attrs["title"]; present {
		certification.Title = attrString(attrs, "title")
	}
	if _, present := attrs["issue_date"]; present {
		issueDate, err := attrTime(attrs, "issue_date")
		if err != nil {
			writeError(ctx, http.StatusBadRequest, err.Error())
			return
		}
		certification.IssueDate = issueDate
	}
	if _, present := attrs["content"]; present {
		certification.Content = attrString(attrs, "content")
	}

	if err := handler.profileService.UpdateCertification(ctx, certification); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not update certification: %v", err))
		return
	}

	writeDocument(ctx, http.StatusOK, &Document{Data: certificationResource(certification)})
}

func (handler *certificationHandler) DeleteByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := handler.profileService.DeleteCertificationByID(ctx, id); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not delete certification: %v", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DescriptionHandler defines the interface for handling description resource operations
type DescriptionHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type descriptionHandler struct {
	profileService profile.ProfileService
	resolver       *relatedResolver
}

// NewDescriptionHandler creates a new DescriptionHandler
func NewDescriptionHandler(profileService profile.ProfileService, resolver *relatedResolver) DescriptionHandler {
	return &descriptionHandler{
		profileService: profileService,
		resolver:       resolver,
	}
}

// List fetches description lines. Filtering by experience returns lines in
// their stored order within that experience.
func (handler *descriptionHandler) List(ctx *gin.Context) {
	page := parsePage(ctx)
	query := profile.NewDescriptionQuery()
	query.Limit = page.Limit()
	query.Offset = page.Offset()
	if experienceID := strutil.ConvertToUint(ctx.Query("filter[experience]")); experienceID != 0 {
		query.ExperienceID = &experienceID
	}

	descriptions, err := handler.profileService.ListDescriptions(ctx, query)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("list query failed: %v", err))
		return
	}

	resources := make([]*Resource, len(descriptions))
	ids := make([]uint, len(descriptions))
	for i, description := range descriptions {
		resources[i] = descriptionResource(description)
		ids[i] = description.ID
	}

	doc := &Document{Data: resources}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeDescriptions, ids, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *descriptionHandler) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	description, err := handler.profileService.GetDescriptionByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("description with id %d not found", id))
		return
	}

	doc := &Document{Data: descriptionResource(description)}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeDescriptions, []uint{id}, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *descriptionHandler) Create(ctx *gin.Context) {
	payload, ok := bindPayload(ctx, TypeDescriptions)
	if !ok {
		return
	}

	description := &profile.Description{
		Content: attrString(payload.Data.Attributes, "content"),
	}

	if err := handler.profileService.CreateDescription(ctx, description); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not create description: %v", err))
		return
	}

	writeDocument(ctx, http.StatusCreated, &Document{Data: descriptionResource(description)})
}

func (handler *descriptionHandler) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	description, err := handler.profileService.GetDescriptionByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("description with id %d not found", id))
		return
	}

	payload, ok := bindPayload(ctx, TypeDescriptions)
	if !ok {
		return
	}

	if _, present := payload.Data.Attributes["content"]; present {
		description.Content = attrString(payload.Data.Attributes, "content")
	}

	if err := handler.profileService.UpdateDescription(ctx, description); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not update description: %v", err))
		return
	}

	writeDocument(ctx, http.StatusOK, &Document{Data: descriptionResource(description)})
}

func (handler *descriptionHandler) DeleteByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := handler.profileService.DeleteDescriptionByID(ctx, id); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not delete description: %v", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
