package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "urbanhelp/database/repository/booking"
	"urbanhelp/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Approve assigns a worker to a pending booking. The approved snapshot insert
// and the raw booking mutation commit in one transaction; the approval email
// and notification are dispatched after the commit and never affect the
// outcome.
func (e *DefaultEngine) Approve(ctx context.Context, bookingID, workerID string) (*ApprovalResult, error) {
	b, err := e.Repo.GetByID(bookingID)
	if err != nil {
		return nil, NewPersistenceError("failed to look up booking", err)
	}
	if b == nil {
		return nil, NewNotFoundError("booking not found")
	}
	if b.Status == models.StatusCancelled {
		return nil, NewConflictError("cannot approve a cancelled booking")
	}
	// The payment excursion states only exist post-approval, so they count
	// as already approved alongside the flag itself.
	if b.IsApproved || b.Status != models.StatusPendingApproval {
		return nil, NewConflictError("booking is already approved")
	}

	worker, err := e.Workers.GetByID(workerID)
	if err != nil {
		return nil, NewPersistenceError("failed to look up worker", err)
	}
	if worker == nil {
		return nil, NewNotFoundError("worker not found")
	}

	snapshot := &models.ApprovedBooking{
		ID:                uuid.New().String(),
		OriginalBookingID: b.ID,
		ApprovedWorkerID:  worker.ID,
		ServiceID:         b.ServiceID,
		Duration:          b.Duration,
		Charge:            b.Charge,
		Date:              b.Date,
		Time:              b.Time,
		ClientInfo:        b.ClientInfo,
		Status:            models.StatusApproved,
		IsPaid:            false,
		FinalizedAt:       time.Now(),
	}

	if err := e.Repo.ApproveTransactionally(ctx, b.ID, snapshot); err != nil {
		if errors.Is(err, bookingRepo.ErrApprovalConflict) {
			// A concurrent approve won; surface the committed state.
			return nil, NewConflictError("booking is already approved")
		}
		return nil, NewPersistenceError("approval transaction failed", err)
	}

	updated, err := e.Repo.GetByID(b.ID)
	if err != nil || updated == nil {
		e.logger().Warn("failed to re-fetch booking after approval",
			zap.String("bookingId", b.ID), zap.Error(err))
		// Fall back to the known post-commit state.
		b.IsApproved = true
		b.ApprovedWorkerID = worker.ID
		b.Status = models.StatusApproved
		updated = b
	}

	e.Dispatcher.BookingApproved(updated, snapshot, worker)

	return &ApprovalResult{
		Booking:           updated,
		ApprovedBookingID: snapshot.ID,
		Worker:            worker,
	}, nil
}
