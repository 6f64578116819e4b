package v1

import (
	"fmt"
	"net/http"

	"github.com/overcast-software/career-caddy-api/internal/domain/documents"
	"github.com/overcast-software/career-caddy-api/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// ResumeHandler defines the interface for handling resume resource operations
type ResumeHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type resumeHandler struct {
	documentService documents.DocumentService
	ingestService   documents.IngestService
	resolver        *relatedResolver
}

// NewResumeHandler creates a new ResumeHandler
func NewResumeHandler(documentService documents.DocumentService, ingestService documents.IngestService, resolver *relatedResolver) ResumeHandler {
	return &resumeHandler{
		documentService: documentService,
		ingestService:   ingestService,
		resolver:        resolver,
	}
}

func (handler *resumeHandler) List(ctx *gin.Context) {
	page := parsePage(ctx)
	query := documents.NewResumeQuery()
	query.Limit = page.Limit()
	query.Offset = page.Offset()
	if userID := strutil.ConvertToUint(ctx.Query("filter[user]")); userID != 0 {
		query.UserID = &userID
	}
	if favorite := ctx.Query("filter[favorite]"); favorite != "" {
		parsed := favorite == "true"
		query.Favorite = &parsed
	}

	resumes, err := handler.documentService.ListResumes(ctx, query)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("list query failed: %v", err))
		return
	}

	resources := make([]*Resource, len(resumes))
	ids := make([]uint, len(resumes))
	for i, resume := range resumes {
		resources[i] = resumeResource(resume)
		ids[i] = resume.ID
	}

	doc := &Document{Data: resources}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeResumes, ids, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *resumeHandler) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	resume, err := handler.documentService.GetResumeByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("resume with id %d not found", id))
		return
	}

	doc := &Document{Data: resumeResource(resume)}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeResumes, []uint{id}, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

// Create stores a resume. Identical content for the same user dedups to the
// existing record and responds 200 instead of 201.
func (handler *resumeHandler) Create(ctx *gin.Context) {
	payload, ok := bindPayload(ctx, TypeResumes)
	if !ok {
		return
	}

	content := attrString(payload.Data.Attributes, "content")
	filePath := attrString(payload.Data.Attributes, "file_path")
	userID := payload.relationshipID("user")

	resume, created, err := handler.ingestService.IngestResume(ctx, userID, content, filePath)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not create resume: %v", err))
		return
	}

	if favorite := attrBool(payload.Data.Attributes, "favorite"); favorite && !resume.Favorite {
		resume.Favorite = true
		if err := handler.documentService.UpdateResume(ctx, resume); err != nil {
			writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not update resume: %v", err))
			return
		}
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	writeDocument(ctx, status, &Document{Data: resumeResource(resume)})
}

func (handler *resumeHandler) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	resume, err := handler.documentService.GetResumeByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("resume with id %d not found", id))
		return
	}

	payload, ok := bindPayload(ctx, TypeResumes)
	if !ok {
		return
	}

	attrs := payload.Data.Attributes
	if _, present := attrs["content"]; present {
		resume.Content = attrString(attrs, "content")
	}
	if _, present := attrs["file_path"]; present {
		resume.FilePath = attrString(attrs, "file_path")
	}
	if _, present := attrs["favorite"]; present {
		resume.Favorite = attrBool(attrs, "favorite")
	}
	if userID := payload.relationshipID("user"); userID != nil {
		resume.UserID = userID
	}

	if err := handler.documentService.UpdateResume(ctx, resume); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not update resume: %v", err))
		return
	}

	writeDocument(ctx, http.StatusOK, &Document{Data: resumeResource(resume)})
}

func (handler *resumeHandler) DeleteByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := handler.documentService.DeleteResumeByID(ctx, id); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not delete resume: %v", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ScoreHandler defines the interface for handling score resource operations
type ScoreHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type scoreHandler struct {
	documentService documents.DocumentService
	resolver        *relatedResolver
}

// NewScoreHandler creates a new ScoreHandler
func NewScoreHandler(documentService documents.DocumentService, resolver *relatedResolver) ScoreHandler {
	return &scoreHandler{
		documentService: documentService,
		resolver:        resolver,
	}
}

func (handler *scoreHandler) List(ctx *gin.Context) {
	page := parsePage(ctx)
	query := documents.NewScoreQuery()
	query.Limit = page.Limit()
	query.Offset = page.Offset()
	if userID := strutil.ConvertToUint(ctx.Query("filter[user]")); userID != 0 {
		query.UserID = &userID
	}
	if resumeID := strutil.ConvertToUint(ctx.Query("filter[resume]")); resumeID != 0 {
		query.ResumeID = &resumeID
	}
	if jobPostID := strutil.ConvertToUint(ctx.Query("filter[job-post]")); jobPostID != 0 {
		query.JobPostID = &jobPostID
	}

	scores, err := handler.documentService.ListScores(ctx, query)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("list query failed: %v", err))
		return
	}

	resources := make([]*Resource, len(scores))
	ids := make([]uint, len(scores))
	for i, score := range scores {
		resources[i] = scoreResource(score)
		ids[i] = score.ID
	}

	doc := &Document{Data: resources}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeScores, ids, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *scoreHandler) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	score, err := handler.documentService.GetScoreByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("score with id %d not found", id))
		return
	}

	doc := &Document{Data: scoreResource(score)}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeScores, []uint{id}, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *scoreHandler) Create(ctx *gin.Context) {
	payload, ok := bindPayload(ctx, TypeScores)
	if !ok {
		return
	}

	score := &documents.Score{
		Score:       attrIntPtr(payload.Data.Attributes, "score"),
		Explanation: attrString(payload.Data.Attributes, "explanation"),
		UserID:      payload.relationshipID("user"),
		ResumeID:    payload.relationshipID("resume"),
		JobPostID:   payload.relationshipID("job-post"),
	}

	if err := handler.documentService.CreateScore(ctx, score); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not create score: %v", err))
		return
	}

	writeDocument(ctx, http.StatusCreated, &Document{Data: scoreResource(score)})
}

func (handler *scoreHandler) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	score, err := handler.documentService.GetScoreByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("score with id %d not found", id))
		return
	}

	payload, ok := bindPayload(ctx, TypeScores)
	if !ok {
		return
	}

	attrs := payload.Data.Attributes
	if _, present := attrs["score"]; present {
		score.Score = attrIntPtr(attrs, "score")
	}
	if _, present := attrs["explanation"]; present {
		score.Explanation = attrString(attrs, "explanation")
	}
	if userID := payload.relationshipID("user"); userID != nil {
		score.UserID = userID
	}
	if resumeID := payload.relationshipID("resume"); resumeID != nil {
		score.ResumeID = resumeID
	}
	if jobPostID := payload.relationshipID("job-post"); jobPostID != nil {
		score.JobPostID = jobPostID
	}

	if err := handler.documentService.UpdateScore(ctx, score); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not update score: %v", err))
		return
	}

	writeDocument(ctx, http.StatusOK, &Document{Data: scoreResource(score)})
}

func (handler *scoreHandler) DeleteByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := handler.documentService.DeleteScoreByID(ctx, id); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not delete score: %v", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CoverLetterHandler defines the interface for handling cover letter resource
// operations
type CoverLetterHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type coverLetterHandler struct {
	documentService documents.DocumentService
	resolver        *relatedResolver
}

// NewCoverLetterHandler creates a new CoverLetterHandler
func NewCoverLetterHandler(documentService documents.DocumentService, resolver *relatedResolver) CoverLetterHandler {
	return &coverLetterHandler{
		documentService: documentService,
		resolver:        resolver,
	}
}

func (handler *coverLetterHandler) List(ctx *gin.Context) {
	page := parsePage(ctx)
	query := documents.NewCoverLetterQuery()
	query.Limit = page.Limit()
	query.Offset = page.Offset()
	if userID := strutil.ConvertToUint(ctx.Query("filter[user]")); userID != 0 {
		query.UserID = &userID
	}
	if resumeID := strutil.ConvertToUint(ctx.Query("filter[resume]")); resumeID != 0 {
		query.ResumeID = &resumeID
	}
	if jobPostID := strutil.ConvertToUint(ctx.Query("filter[job-post]")); jobPostID != 0 {
		query.JobPostID = &jobPostID
	}
	if favorite := ctx.Query("filter[favorite]"); favorite != "" {
		parsed := favorite == "true"
		query.Favorite = &parsed
	}

	coverLetters, err := handler.documentService.ListCoverLetters(ctx, query)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("list query failed: %v", err))
		return
	}

	resources := make([]*Resource, len(coverLetters))
	ids := make([]uint, len(coverLetters))
	for i, coverLetter := range coverLetters {
		resources[i] = coverLetterResource(coverLetter)
		ids[i] = coverLetter.ID
	}

	doc := &Document{Data: resources}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeCoverLetters, ids, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *coverLetterHandler) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	coverLetter, err := handler.documentService.GetCoverLetterByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("cover letter with id %d not found", id))
		return
	}

	doc := &Document{Data: coverLetterResource(coverLetter)}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeCoverLetters, []uint{id}, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *coverLetterHandler) Create(ctx *gin.Context) {
	payload, ok := bindPayload(ctx, TypeCoverLetters)
	if !ok {
		return
	}

	coverLetter := &documents.CoverLetter{
		Content:   attrString(payload.Data.Attributes, "content"),
		Favorite:  attrBool(payload.Data.Attributes, "favorite"),
		UserID:    payload.relationshipID("user"),
		ResumeID:  payload.relationshipID("resume"),
		JobPostID: payload.relationshipID("job-post"),
	}

	if err := handler.documentService.CreateCoverLetter(ctx, coverLetter); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not create cover letter: %v", err))
		return
	}

	writeDocument(ctx, http.StatusCreated, &Document{Data: coverLetterResource(coverLetter)})
}

func (handler *coverLetterHandler) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	coverLetter, err := handler.documentService.GetCoverLetterByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("cover letter with id %d not found", id))
		return
	}

	payload, ok := bindPayload(ctx, TypeCoverLetters)
	if !ok {
		return
	}

	attrs := payload.Data.Attributes
	if _, present := attrs["content"]; present {
		coverLetter.Content = attrString(attrs, "content")
	}
	if _, present := attrs["favorite"]; present {
		coverLetter.Favorite = attrBool(attrs, "favorite")
	}
	if userID := payload.relationshipID("user"); userID != nil {
		coverLetter.UserID = userID
	}
	if resumeID := payload.relationshipID("resume"); resumeID != nil {
		coverLetter.ResumeID = resumeID
	}
	if jobPostID := payload.relationshipID("job-post"); jobPostID != nil {
		coverLetter.JobPostID = jobPostID
	}

	if err := handler.documentService.UpdateCoverLetter(ctx, coverLetter); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not update cover letter: %v", err))
		return
	}

	writeDocument(ctx, http.StatusOK, &Document{Data: coverLetterResource(coverLetter)})
}

func (handler *coverLetterHandler) DeleteByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := handler.documentService.DeleteCoverLetterByID(ctx, id); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not delete cover letter: %v", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
