package tracking

import (
	"context"
)

// ApplicationRepository defines the interface for Application-related persistence operations
type ApplicationRepository interface {
	Create(ctx context.Context, application *Application) error
	List(ctx context.Context, query *ApplicationQuery) ([]*Application, error)
	GetByID(ctx context.Context, applicationID uint) (*Application, error)
	UpdateByID(ctx context.Context, application *Application) error
	DeleteByID(ctx context.Context, applicationID uint) error
}

// StatusRepository defines the interface for Status-related persistence operations
type StatusRepository interface {
	Create(ctx context.Context, status *Status) error
	List(ctx context.Context, query *StatusQuery) ([]*Status, error)
	GetByID(ctx context.Context, statusID uint) (*Status, error)
	UpdateByID(ctx context.Context, status *Status) error
	DeleteByID(ctx context.Context, statusID uint) error
}

// StatusEventRepository defines the interface for StatusEvent-related persistence operations
type StatusEventRepository interface {
	Create(ctx context.Context, event *StatusEvent) error
	// ListByApplication returns an application's status events ordered by
	// creation time.
	ListByApplication(ctx context.Context, applicationID uint) ([]*StatusEvent, error)
	DeleteByApplication(ctx context.Context, applicationID uint) error
}

// TrackingService defines methods for managing applications and their status
// history.
type TrackingService interface {
	CreateApplication(ctx context.Context, application *Application) error
	ListApplications(ctx context.Context, query *ApplicationQuery) ([]*Application, error)
	GetApplicationByID(ctx context.Context, applicationID uint) (*Application, error)
	UpdateApplication(ctx context.Context, application *Application) error
	// DeleteApplicationByID removes an application together with its status
	// events.
	DeleteApplicationByID(ctx context.Context, applicationID uint) error

	CreateStatus(ctx context.Context, status *Status) error
	ListStatuses(ctx context.Context, query *StatusQuery) ([]*Status, error)
	GetStatusByID(ctx context.Context, statusID uint) (*Status, error)
	UpdateStatus(ctx context.Context, status *Status) error
	DeleteStatusByID(ctx context.Context, statusID uint) error

	// AppendStatusEvent records a status transition for an application and
	// mirrors the status label onto the application itself.
	AppendStatusEvent(ctx context.Context, applicationID, statusID uint) (*StatusEvent, error)

	// ListStatusEvents returns an application's status history in order.
	ListStatusEvents(ctx context.Context, applicationID uint) ([]*StatusEvent, error)
}
