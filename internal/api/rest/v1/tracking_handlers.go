package v1

import (
	"fmt"
	"net/http"

	"github.com/overcast-software/career-caddy-api/internal/domain/tracking"
	"github.com/overcast-software/career-caddy-api/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler defines the interface for handling application resource
// operations, including the status history actions
type ApplicationHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	ListStatusHistory(ctx *gin.Context)
	AppendStatus(ctx *gin.Context)
}

type applicationHandler struct {
	trackingService tracking.TrackingService
	resolver        *relatedResolver
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(trackingService tracking.TrackingService, resolver *relatedResolver) ApplicationHandler {
	return &applicationHandler{
		trackingService: trackingService,
		resolver:        resolver,
	}
}

func (handler *applicationHandler) List(ctx *gin.Context) {
	page := parsePage(ctx)
	query := tracking.NewApplicationQuery()
	query.Limit = page.Limit()
	query.Offset = page.Offset()
	if userID := strutil.ConvertToUint(ctx.Query("filter[user]")); userID != 0 {
		query.UserID = &userID
	}
	if jobPostID := strutil.ConvertToUint(ctx.Query("filter[job-post]")); jobPostID != 0 {
		query.JobPostID = &jobPostID
	}
	if companyID := strutil.ConvertToUint(ctx.Query("filter[company]")); companyID != 0 {
		query.CompanyID = &companyID
	}

	applications, err := handler.trackingService.ListApplications(ctx, query)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("list query failed: %v", err))
		return
	}

	resources := make([]*Resource, len(applications))
	ids := make([]uint, len(applications))
	for i, application := range applications {
		resources[i] = applicationResource(application)
		ids[i] = application.ID
	}

	doc := &Document{Data: resources}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeApplications, ids, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *applicationHandler) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	application, err := handler.trackingService.GetApplicationByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("application with id %d not found", id))
		return
	}

	doc := &Document{Data: applicationResource(application)}
	doc.Included = handler.resolver.collectIncluded(ctx, TypeApplications, []uint{id}, parseInclude(ctx))
	writeDocument(ctx, http.StatusOK, doc)
}

func (handler *applicationHandler) Create(ctx *gin.Context) {
	payload, ok := bindPayload(ctx, TypeApplications)
	if !ok {
		return
	}

	attrs := payload.Data.Attributes
	application := &tracking.Application{
		Status:        attrString(attrs, "status"),
		TrackingURL:   attrString(attrs, "tracking_url"),
		Notes:         attrString(attrs, "notes"),
		UserID:        payload.relationshipID("user"),
		JobPostID:     payload.relationshipID("job-post"),
		CompanyID:     payload.relationshipID("company"),
		ResumeID:      payload.relationshipID("resume"),
		CoverLetterID: payload.relationshipID("cover-letter"),
	}
	appliedAt, err := attrTime(attrs, "applied_at")
	if err != nil {
		writeError(ctx, http.StatusBadRequest, err.Error())
		return
	}
	if appliedAt != nil {
		application.AppliedAt = *appliedAt
	}

	if err := handler.trackingService.CreateApplication(ctx, application); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not create application: %v", err))
		return
	}

	writeDocument(ctx, http.StatusCreated, &Document{Data: applicationResource(application)})
}

func (handler *applicationHandler) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	application, err := handler.trackingService.GetApplicationByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("application with id %d not found", id))
		return
	}

	payload, ok := bindPayload(ctx, TypeApplications)
	if !ok {
		return
	}

	attrs := payload.Data.Attributes
	if _, present := attrs["status"]; present {
		application.Status = attrString(attrs, "status")
	}
	if _, present := attrs["tracking_url"]; present {
		application.TrackingURL = attrString(attrs, "tracking_url")
	}
	if _, present := attrs["notes"]; present {
		application.Notes = attrString(attrs, "notes")
	}
	if _, present := attrs["applied_at"]; present {
		appliedAt, err := attrTime(attrs, "applied_at")
		if err != nil {
			writeError(ctx, http.StatusBadRequest, err.Error())
			return
		}
		if appliedAt != nil {
			application.AppliedAt = *appliedAt
		}
	}
	if userID := payload.relationshipID("user"); userID != nil {
		application.UserID = userID
	}
	if jobPostID := payload.relationshipID("job-post"); jobPostID != nil {
		application.JobPostID = jobPostID
	}
	if companyID := payload.relationshipID("company"); companyID != nil {
		application.CompanyID = companyID
	}
	if resumeID := payload.relationshipID("resume"); resumeID != nil {
		application.ResumeID = resumeID
	}
	if coverLetterID := payload.relationshipID("cover-letter"); coverLetterID != nil {
		application.CoverLetterID = coverLetterID
	}

	if err := handler.trackingService.UpdateApplication(ctx, application); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not update application: %v", err))
		return
	}

	writeDocument(ctx, http.StatusOK, &Document{Data: applicationResource(application)})
}

func (handler *applicationHandler) DeleteByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := handler.trackingService.DeleteApplicationByID(ctx, id); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not delete application: %v", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListStatusHistory serves an application's status history in event order
func (handler *applicationHandler) ListStatusHistory(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	events, err := handler.trackingService.ListStatusEvents(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("could not fetch status history: %v", err))
		return
	}

	resources := make([]*Resource, 0, len(events))
	for _, event := range events {
		status, err := handler.trackingService.GetStatusByID(ctx, event.StatusID)
		if err != nil {
			writeError(ctx, http.StatusNotFound, fmt.Sprintf("could not fetch status history: %v", err))
			return
		}
		resources = append(resources, statusResource(status))
	}

	writeDocument(ctx, http.StatusOK, &Document{Data: resources})
}

// AppendStatus records a status transition for an application. The request
// body carries a status resource identifier.
func (handler *applicationHandler) AppendStatus(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	payload, ok := bindPayload(ctx, TypeStatuses)
	if !ok {
		return
	}

	statusID := strutil.ConvertToUint(payload.Data.ID)
	if statusID == 0 {
		writeError(ctx, http.StatusBadRequest, "status id is required")
		return
	}

	event, err := handler.trackingService.AppendStatusEvent(ctx, id, statusID)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not append status: %v", err))
		return
	}

	status, err := handler.trackingService.GetStatusByID(ctx, event.StatusID)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("status with id %d not found", event.StatusID))
		return
	}

	writeDocument(ctx, http.StatusCreated, &Document{Data: statusResource(status)})
}

// StatusHandler defines the interface for handling status catalog operations
type StatusHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type statusHandler struct {
	trackingService tracking.TrackingService
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(trackingService tracking.TrackingService) StatusHandler {
	return &statusHandler{trackingService: trackingService}
}

func (handler *statusHandler) List(ctx *gin.Context) {
	page := parsePage(ctx)
	query := tracking.NewStatusQuery()
	query.Limit = page.Limit()
	query.Offset = page.Offset()
	if statusType := ctx.Query("filter[status_type]"); statusType != "" {
		query.StatusType = statusType
	}

	statuses, err := handler.trackingService.ListStatuses(ctx, query)
	if err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("list query failed: %v", err))
		return
	}

	resources := make([]*Resource, len(statuses))
	for i, status := range statuses {
		resources[i] = statusResource(status)
	}
	writeDocument(ctx, http.StatusOK, &Document{Data: resources})
}

func (handler *statusHandler) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	status, err := handler.trackingService.GetStatusByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("status with id %d not found", id))
		return
	}

	writeDocument(ctx, http.StatusOK, &Document{Data: statusResource(status)})
}

func (handler *statusHandler) Create(ctx *gin.Context) {
	payload, ok := bindPayload(ctx, TypeStatuses)
	if !ok {
		return
	}

	status := &tracking.Status{
		Status:     attrString(payload.Data.Attributes, "status"),
		StatusType: attrString(payload.Data.Attributes, "status_type"),
	}

	if err := handler.trackingService.CreateStatus(ctx, status); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not create status: %v", err))
		return
	}

	writeDocument(ctx, http.StatusCreated, &Document{Data: statusResource(status)})
}

func (handler *statusHandler) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	status, err := handler.trackingService.GetStatusByID(ctx, id)
	if err != nil {
		writeError(ctx, http.StatusNotFound, fmt.Sprintf("status with id %d not found", id))
		return
	}

	payload, ok := bindPayload(ctx, TypeStatuses)
	if !ok {
		return
	}

	if _, present := payload.Data.Attributes["status"]; present {
		status.Status = attrString(payload.Data.Attributes, "status")
	}
	if _, present := payload.Data.Attributes["status_type"]; present {
		status.StatusType = attrString(payload.Data.Attributes, "status_type")
	}

	if err := handler.trackingService.UpdateStatus(ctx, status); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not update status: %v", err))
		return
	}

	writeDocument(ctx, http.StatusOK, &Document{Data: statusResource(status)})
}

func (handler *statusHandler) DeleteByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := handler.trackingService.DeleteStatusByID(ctx, id); err != nil {
		writeError(ctx, http.StatusBadRequest, fmt.Sprintf("could not delete status: %v", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
