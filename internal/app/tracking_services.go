package app

import (
	"context"
	"fmt"

	"github.com/overcast-software/career-caddy-api/internal/domain/tracking"
	"github.com/overcast-software/career-caddy-api/internal/pkg/logger"
)

// trackingService implements the TrackingService interface for managing
// applications and their status history
type trackingService struct {
	applicationRepo tracking.ApplicationRepository
	statusRepo      tracking.StatusRepository
	statusEventRepo tracking.StatusEventRepository
	logger          logger.Logger
}

// NewTrackingService creates a new instance of TrackingService
func NewTrackingService(
	applicationRepo tracking.ApplicationRepository,
	statusRepo tracking.StatusRepository,
	statusEventRepo tracking.StatusEventRepository,
	logger logger.Logger,
) (tracking.TrackingService, error) {
	return &trackingService{
		applicationRepo: applicationRepo,
		statusRepo:      statusRepo,
		statusEventRepo: statusEventRepo,
		logger:          logger,
	}, nil
}

func (s *trackingService) CreateApplication(ctx context.Context, application *tracking.Application) error {
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *trackingService) ListApplications(ctx context.Context, query *tracking.ApplicationQuery) ([]*tracking.Application, error) {
	applications, err := s.applicationRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return applications, nil
}

func (s *trackingService) GetApplicationByID(ctx context.Context, applicationID uint) (*tracking.Application, error) {
	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return application, nil
}

func (s *trackingService) UpdateApplication(ctx context.Context, application *tracking.Application) error {
	if err := s.applicationRepo.UpdateByID(ctx, application); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// DeleteApplicationByID removes an application together with its status
// events. Events go first so a failed application delete never orphans them.
func (s *trackingService) DeleteApplicationByID(ctx context.Context, applicationID uint) error {
	if err := s.statusEventRepo.DeleteByApplication(ctx, applicationID); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := s.applicationRepo.DeleteByID(ctx, applicationID); err != nil {
		return fmt.Errorf("%w", err)
	}

	s.logger.Info("Deleted application with id ", applicationID)
	return nil
}

func (s *trackingService) CreateStatus(ctx context.Context, status *tracking.Status) error {
	if err := s.statusRepo.Create(ctx, status); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *trackingService) ListStatuses(ctx context.Context, query *tracking.StatusQuery) ([]*tracking.Status, error) {
	statuses, err := s.statusRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return statuses, nil
}

func (s *trackingService) GetStatusByID(ctx context.Context, statusID uint) (*tracking.Status, error) {
	status, err := s.statusRepo.GetByID(ctx, statusID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return status, nil
}

func (s *trackingService) UpdateStatus(ctx context.Context, status *tracking.Status) error {
	if err := s.statusRepo.UpdateByID(ctx, status); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *trackingService) DeleteStatusByID(ctx context.Context, statusID uint) error {
	if err := s.statusRepo.DeleteByID(ctx, statusID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// AppendStatusEvent records a status transition for an application and
// mirrors the status label onto the application itself, so the application
// row always reflects the latest event.
func (s *trackingService) AppendStatusEvent(ctx context.Context, applicationID, statusID uint) (*tracking.StatusEvent, error) {
	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	status, err := s.statusRepo.GetByID(ctx, statusID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	event := &tracking.StatusEvent{
		ApplicationID: applicationID,
		StatusID:      statusID,
	}
	if err := s.statusEventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	application.Status = status.Status
	if err := s.applicationRepo.UpdateByID(ctx, application); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.logger.Info("Appended status event with id ", event.ID)
	return event, nil
}

// ListStatusEvents returns an application's status history in order
func (s *trackingService) ListStatusEvents(ctx context.Context, applicationID uint) ([]*tracking.StatusEvent, error) {
	events, err := s.statusEventRepo.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return events, nil
}
