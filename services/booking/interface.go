package booking

import (
	"context"
	"time"

	bookingRepo "urbanhelp/database/repository/booking"
	serviceRepo "urbanhelp/database/repository/service"
	workerRepo "urbanhelp/database/repository/worker"
	"urbanhelp/models"

	"go.uber.org/zap"
)

// CreateRequest carries the fields of a new booking submission.
type CreateRequest struct {
	ServiceID  string
	Duration   string
	Charge     float64
	Date       time.Time
	Time       string
	ClientInfo models.ClientInfo
}

// ApprovalResult is the outcome of a successful approval: the updated raw
// booking plus the identity of the snapshot created for it.
type ApprovalResult struct {
	Booking           *models.Booking
	ApprovedBookingID string
	Worker            *models.ApprovedWorker
}

// SideEffectDispatcher schedules the best-effort side effects of a committed
// transition (email, notification records). Implementations must never block
// the caller on delivery; a failed dispatch is logged and swallowed because
// the booking state change is the source of truth.
type SideEffectDispatcher interface {
	BookingApproved(b *models.Booking, snapshot *models.ApprovedBooking, worker *models.ApprovedWorker)
	BookingCancelled(b *models.Booking)
	PaymentConfirmed(b *models.Booking, transactionID string)
}

// Engine is the booking workflow state machine.
type Engine interface {
	Create(ctx context.Context, req CreateRequest) (*models.Booking, error)
	Approve(ctx context.Context, bookingID, workerID string) (*ApprovalResult, error)
	Cancel(ctx context.Context, bookingID, requesterEmail string) (*models.Booking, error)
	SetPaid(ctx context.Context, bookingID string, isPaid bool) (*models.Booking, error)
	CompleteGatewayPayment(ctx context.Context, bookingID, transactionID string) (*models.Booking, error)
	RecordGatewayFailure(ctx context.Context, bookingID, gatewayStatus string)
	UserHistory(ctx context.Context, email string) ([]models.BookingView, error)
	ListAll(ctx context.Context) ([]models.BookingView, error)
}

// DefaultEngine is the production implementation.
type DefaultEngine struct {
	Repo       bookingRepo.Repository
	Workers    workerRepo.Repository
	Services   serviceRepo.Repository
	Dispatcher SideEffectDispatcher
	Logger     *zap.Logger
}

func (e *DefaultEngine) logger() *zap.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return zap.L()
}
