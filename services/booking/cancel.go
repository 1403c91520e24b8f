package booking

import (
	"context"

	"urbanhelp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Cancel marks a booking cancelled on behalf of its owner. The ID may refer
// to the raw booking or to its approved snapshot; the latter is resolved back
// to the original. The mirror write onto the snapshot is best-effort: it only
// narrows allowed future transitions, so a failure is logged rather than
// rolled back.
func (e *DefaultEngine) Cancel(ctx context.Context, bookingID, requesterEmail string) (*models.Booking, error) {
	b, err := e.Repo.GetByID(bookingID)
	if err != nil {
		return nil, NewPersistenceError("failed to look up booking", err)
	}
	if b == nil {
		// Maybe the caller holds an approved-booking ID.
		snapshot, err := e.Repo.GetApprovedByID(bookingID)
		if err != nil {
			return nil, NewPersistenceError("failed to look up approved booking", err)
		}
		if snapshot == nil {
			return nil, NewNotFoundError("booking not found")
		}
		b, err = e.Repo.GetByID(snapshot.OriginalBookingID)
		if err != nil {
			return nil, NewPersistenceError("failed to look up booking", err)
		}
		if b == nil {
			return nil, NewNotFoundError("booking not found")
		}
	}

	if b.ClientInfo.Email != requesterEmail {
		return nil, NewForbiddenError("you can only cancel your own bookings")
	}
	if b.Status == models.StatusCancelled {
		return nil, NewConflictError("booking is already cancelled")
	}

	// Cancellation leaves isApproved and isPaid as-is.
	if err := e.Repo.UpdateSetDocument(b.ID, bson.M{"status": models.StatusCancelled}); err != nil {
		return nil, NewPersistenceError("failed to cancel booking", err)
	}
	b.Status = models.StatusCancelled

	snapshot, err := e.Repo.GetApprovedByOriginalID(b.ID)
	if err != nil {
		e.logger().Warn("failed to look up approved booking for cancel mirror",
			zap.String("bookingId", b.ID), zap.Error(err))
	} else if snapshot != nil {
		if err := e.Repo.UpdateApprovedSetDocument(snapshot.ID, bson.M{"status": models.StatusCancelled}); err != nil {
			e.logger().Error("failed to mirror cancellation onto approved booking",
				zap.String("bookingId", b.ID),
				zap.String("approvedBookingId", snapshot.ID),
				zap.Error(err))
		}
	}

	e.Dispatcher.BookingCancelled(b)
	return b, nil
}
