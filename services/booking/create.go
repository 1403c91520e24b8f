package booking

import (
	"context"

	"urbanhelp/models"

	"github.com/google/uuid"
)

// Create validates the submission and inserts a new booking in the
// pending-approval state. No side effects beyond persistence.
func (e *DefaultEngine) Create(ctx context.Context, req CreateRequest) (*models.Booking, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	svc, err := e.Services.GetByID(req.ServiceID)
	if err != nil {
		return nil, NewPersistenceError("failed to look up service", err)
	}
	if svc == nil {
		return nil, NewNotFoundError("service not found")
	}

	booking := &models.Booking{
		ID:         uuid.New().String(),
		ServiceID:  req.ServiceID,
		Duration:   req.Duration,
		Charge:     req.Charge,
		Date:       req.Date,
		Time:       req.Time,
		ClientInfo: req.ClientInfo,
		Status:     models.StatusPendingApproval,
		IsApproved: false,
		IsPaid:     false,
	}
	if err := e.Repo.Create(booking); err != nil {
		return nil, NewPersistenceError("failed to save booking", err)
	}
	return booking, nil
}

func validateCreateRequest(req CreateRequest) error {
	switch {
	case req.ServiceID == "":
		return NewValidationError("serviceId is required")
	case req.Duration == "":
		return NewValidationError("duration is required")
	case req.Charge < 0:
		return NewValidationError("charge must not be negative")
	case req.Date.IsZero():
		return NewValidationError("date is required")
	case req.Time == "":
		return NewValidationError("time is required")
	}

	ci := req.ClientInfo
	if ci.Name == "" || ci.Email == "" || ci.Phone == "" || ci.Location == "" || ci.Address == "" {
		return NewValidationError("all client info fields are required")
	}
	return nil
}
