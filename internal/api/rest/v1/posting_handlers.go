package v1

import (
	"fmt"
	"net/http"

	"github.com/overcast-software/career-caddy-api/internal/domain/postings"
	"github.com/overcast-software/career-caddy-api/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// CompanyHandler defines the interface for handling company resource
// operations
type CompanyHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type companyHandler struct {
	postingService postings.PostingService
	resolver       *relatedResolver
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(postingService postings.PostingService, resolver *relatedResolver) CompanyHandler {
	return &companyHandler{
		postingService: postingService,
		resolver:       resolver,
	}
}

func (handler *companyHandler) List(ctx *gin.Context) {
	page := parsePage(ctx)
	query := postings.NewCompanyQuery()
	query.Limit = page.Limit()
	query.Offset = page.Offset()
	if name := ctx.Query("filter[name]"); name != "" {
		query.Name = name
	}

	companies, err := handler.postingService.ListCompanies(ctx, query)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("list query failed: %v", err))
		return
	}

	resources := make([]*Resource, len(companies))
	ids := make([]uint, len(companies))
	for i, company := range companies {
		resources[i] = companyResource(company)
		ids[i] = company.ID
	}

	doc := &Document{Data: resources}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeCompanies, ids, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *companyHandler) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	company, err := handler.postingService.GetCompanyByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("company with id %d not found", id))
		return
	}

	doc := &Document{Data: companyResource(company)}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeCompanies, []uint{id}, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *companyHandler) Create(ctx *gin.Context) {
	payload, ok := bindPayload(ctx, TypeCompanies)
	if !ok {
		return
	}

	company := &postings.Company{
		Name:        attrString(payload.Data.Attributes, "name"),
		DisplayName: attrString(payload.Data.Attributes, "display_name"),
	}

	if err := handler.postingService.CreateCompany(ctx, company); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not create company: %v", err))
		return
	}

	writeDocument(ctx, http.StatusCreated, &Document{Data: companyResource(company)})
}

func (handler *companyHandler) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	company, err := handler.postingService.GetCompanyByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("company with id %d not found", id))
		return
	}

	payload, ok := bindPayload(ctx, TypeCompanies)
	if !ok {
		return
	}

	if _, present := payload.Data.Attributes["name"]; present {
		company.Name = attrString(payload.Data.Attributes, "name")
	}
	if _, present := payload.Data.Attributes["display_name"]; present {
		company.DisplayName = attrString(payload.Data.Attributes, "display_name")
	}

	if err := handler.postingService.UpdateCompany(ctx, company); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not update company: %v", err))
		return
	}

	writeDocument(ctx, http.StatusOK, &Document{Data: companyResource(company)})
}

func (handler *companyHandler) DeleteByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := handler.postingService.DeleteCompanyByID(ctx, id); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not delete company: %v", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// JobPostHandler defines the interface for handling job post resource
// operations
type JobPostHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type jobPostHandler struct {
	postingService postings.PostingService
	resolver       *relatedResolver
}

// NewJobPostHandler creates a new JobPostHandler
func NewJobPostHandler(postingService postings.PostingService, resolver *relatedResolver) JobPostHandler {
	return &jobPostHandler{
		postingService: postingService,
		resolver:       resolver,
	}
}

func (handler *jobPostHandler) List(ctx *gin.Context) {
	page := parsePage(ctx)
	query := postings.NewJobPostQuery()
	query.Limit = page.Limit()
	query.Offset = page.Offset()
	if companyID := strutil.ConvertToUint(ctx.Query("filter[company]")); companyID != 0 {
		query.CompanyID = &companyID
	}

	jobPosts, err := handler.postingService.ListJobPosts(ctx, query)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("list query failed: %v", err))
		return
	}

	resources := make([]*Resource, len(jobPosts))
	ids := make([]uint, len(jobPosts))
	for i, jobPost := range jobPosts {
		resources[i] = jobPostResource(jobPost)
		ids[i] = jobPost.ID
	}

	doc := &Document{Data: resources}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeJobPosts, ids, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *jobPostHandler) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	jobPost, err := handler.postingService.GetJobPostByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("job post with id %d not found", id))
		return
	}

	doc := &Document{Data: jobPostResource(jobPost)}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeJobPosts, []uint{id}, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *jobPostHandler) Create(ctx *gin.Context) {
	payload, ok := bindPayload(ctx, TypeJobPosts)
	if !ok {
		return
	}

	attrs := payload.Data.Attributes
	postedDate, err := attrTime(attrs, "posted_date")
	if err != nil {
		writeError(ctx, http.StatusBadRequest, err.Error())
		return
	}
	extractionDate, err := attrTime(attrs, "extraction_date")
	if err != nil {
		writeError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	jobPost := &postings.JobPost{
		Title:          attrString(attrs, "title"),
		Description:    attrString(attrs, "description"),
		Link:           attrString(attrs, "link"),
		PostedDate:     postedDate,
		ExtractionDate: extractionDate,
		CompanyID:      payload.relationshipID("company"),
	}

	if err := handler.postingService.CreateJobPost(ctx, jobPost); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not create job post: %v", err))
		return
	}

	writeDocument(ctx, http.StatusCreated, &Document{Data: jobPostResource(jobPost)})
}

func (handler *jobPostHandler) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	jobPost, err := handler.postingService.GetJobPostByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("job post with id %d not found", id))
		return
	}

	payload, ok := bindPayload(ctx, TypeJobPosts)
	if !ok {
		return
	}

	attrs := payload.Data.Attributes
	if _, present := attrs["title"]; present {
		jobPost.Title = attrString(attrs, "title")
	}
	if _, present := attrs["description"]; present {
		jobPost.Description = attrString(attrs, "description")
	}
	if _, present := attrs["link"]; present {
		jobPost.Link = attrString(attrs, "link")
	}
	if _, present := attrs["posted_date"]; present {
		postedDate, err := attrTime(attrs, "posted_date")
		if err != nil {
			writeError(ctx, http.StatusBadRequest, err.Error())
			return
		}
		jobPost.PostedDate = postedDate
	}
	if _, present := attrs["extraction_date"]; present {
		extractionDate, err := attrTime(attrs, "extraction_date")
		if err != nil {
			writeError(ctx, http.StatusBadRequest, err.Error())
			return
		}
		jobPost.ExtractionDate = extractionDate
	}
	if companyID := payload.relationshipID("company"); companyID != nil {
		jobPost.CompanyID = companyID
	}

	if err := handler.postingService.UpdateJobPost(ctx, jobPost); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not update job post: %v", err))
		return
	}

	writeDocument(ctx, http.StatusOK, &Document{Data: jobPostResource(jobPost)})
}

func (handler *jobPostHandler) DeleteByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := handler.postingService.DeleteJobPostByID(ctx, id); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not delete job post: %v", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ScrapeHandler defines the interface for handling scrape resource operations
type ScrapeHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type scrapeHandler struct {
	postingService postings.PostingService
	resolver       *relatedResolver
}

// NewScrapeHandler creates a new ScrapeHandler
func NewScrapeHandler(postingService postings.PostingService, resolver *relatedResolver) ScrapeHandler {
	return &scrapeHandler{
		postingService: postingService,
		resolver:       resolver,
	}
}

func (handler *scrapeHandler) List(ctx *gin.Context) {
	page := parsePage(ctx)
	query := postings.NewScrapeQuery()
	query.Limit = page.Limit()
	query.Offset = page.Offset()
	if companyID := strutil.ConvertToUint(ctx.Query("filter[company]")); companyID != 0 {
		query.CompanyID = &companyID
	}
	if jobPostID := strutil.ConvertToUint(ctx.Query("filter[job-post]")); jobPostID != 0 {
		query.JobPostID = &jobPostID
	}
	if state := ctx.Query("filter[state]"); state != "" {
		query.State = state
	}

	scrapes, err := handler.postingService.ListScrapes(ctx, query)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("list query failed: %v", err))
		return
	}

	resources := make([]*Resource, len(scrapes))
	ids := make([]uint, len(scrapes))
	for i, scrape := range scrapes {
		resources[i] = scrapeResource(scrape)
		ids[i] = scrape.ID
	}

	doc := &Document{Data: resources}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeScrapes, ids, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *scrapeHandler) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	scrape, err := handler.postingService.GetScrapeByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("scrape with id %d not found", id))
		return
	}

	doc := &Document{Data: scrapeResource(scrape)}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeScrapes, []uint{id}, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *scrapeHandler) Create(ctx *gin.Context) {
	payload, ok := bindPayload(ctx, TypeScrapes)
	if !ok {
		return
	}

	attrs := payload.Data.Attributes
	scrape := &postings.Scrape{
		URL:            attrString(attrs, "url"),
		CSSSelectors:   attrString(attrs, "css_selectors"),
		JobContent:     attrString(attrs, "job_content"),
		HTML:           attrString(attrs, "html"),
		ExternalLink:   attrString(attrs, "external_link"),
		ParseMethod:    attrString(attrs, "parse_method"),
		State:          attrString(attrs, "state"),
		CompanyID:      payload.relationshipID("company"),
		JobPostID:      payload.relationshipID("job-post"),
		SourceScrapeID: payload.relationshipID("source-scrape"),
	}

	if err := handler.postingService.CreateScrape(ctx, scrape); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not create scrape: %v", err))
		return
	}

	writeDocument(ctx, http.StatusCreated, &Document{Data: scrapeResource(scrape)})
}

func (handler *scrapeHandler) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	scrape, err := handler.postingService.GetScrapeByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("scrape with id %d not found", id))
		return
	}

	payload, ok := bindPayload(ctx, TypeScrapes)
	if !ok {
		return
	}

	attrs := payload.Data.Attributes
	if _, present := attrs["url"]; present {
		scrape.URL = attrString(attrs, "url")
	}
	if _, present := attrs["css_selectors"]; present {
		scrape.CSSSelectors = attrString(attrs, "css_selectors")
	}
	if _, present := attrs["job_content"]; present {
		scrape.JobContent = attrString(attrs, "job_content")
	}
	if _, present := attrs["html"]; present {
		scrape.HTML = attrString(attrs, "html")
	}
	if _, present := attrs["external_link"]; present {
		scrape.ExternalLink = attrString(attrs, "external_link")
	}
	if _, present := attrs["parse_method"]; present {
		scrape.ParseMethod = attrString(attrs, "parse_method")
	}
	if _, present := attrs["state"]; present {
		scrape.State = attrString(attrs, "state")
	}
	if companyID := payload.relationshipID("company"); companyID != nil {
		scrape.CompanyID = companyID
	}
	if jobPostID := payload.relationshipID("job-post"); jobPostID != nil {
		scrape.JobPostID = jobPostID
	}
	if sourceID := payload.relationshipID("source-scrape"); sourceID != nil {
		scrape.SourceScrapeID = sourceID
	}

	if err := handler.postingService.UpdateScrape(ctx, scrape); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not update scrape: %v", err))
		return
	}

	writeDocument(ctx, http.StatusOK, &Document{Data: scrapeResource(scrape)})
}

func (handler *scrapeHandler) DeleteByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := handler.postingService.DeleteScrapeByID(ctx, id); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not delete scrape: %v", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
