package booking

import (
	"context"
	"errors"

	bookingRepo "urbanhelp/database/repository/booking"
	"urbanhelp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// SetPaid flips the paid flag on a booking. Idempotent: when the requested
// value equals the current one, no transaction is committed and no side
// effects fire. A 0→1 flip completes the booking unless it was cancelled,
// mirroring both fields onto the approved snapshot in the same transaction.
func (e *DefaultEngine) SetPaid(ctx context.Context, bookingID string, isPaid bool) (*models.Booking, error) {
	return e.setPaid(ctx, bookingID, isPaid, "")
}

// CompleteGatewayPayment is the gateway-triggered variant of SetPaid, keyed
// by the purchase order the gateway echoes back and carrying its transaction
// ID into the side-effect dispatch.
func (e *DefaultEngine) CompleteGatewayPayment(ctx context.Context, bookingID, transactionID string) (*models.Booking, error) {
	return e.setPaid(ctx, bookingID, true, transactionID)
}

func (e *DefaultEngine) setPaid(ctx context.Context, bookingID string, isPaid bool, transactionID string) (*models.Booking, error) {
	b, err := e.Repo.GetByID(bookingID)
	if err != nil {
		return nil, NewPersistenceError("failed to look up booking", err)
	}
	if b == nil {
		return nil, NewNotFoundError("booking not found")
	}

	if b.IsPaid == isPaid {
		// No-op: nothing written, nothing dispatched.
		return b, nil
	}

	status := b.Status
	if isPaid {
		if status != models.StatusCancelled {
			status = models.StatusCompleted
		}
	} else if status == models.StatusCompleted {
		// Unpaying a completed booking reverts it to approved so the
		// isPaid/status agreement holds.
		status = models.StatusApproved
	}

	if err := e.Repo.SetPaidTransactionally(ctx, b.ID, isPaid, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingMissing) {
			return nil, NewNotFoundError("booking not found")
		}
		return nil, NewPersistenceError("payment transaction failed", err)
	}

	updated, err := e.Repo.GetByID(b.ID)
	if err != nil || updated == nil {
		e.logger().Warn("failed to re-fetch booking after payment update",
			zap.String("bookingId", b.ID), zap.Error(err))
		// Fall back to the known post-commit state.
		b.IsPaid = isPaid
		b.Status = status
		updated = b
	}

	if isPaid {
		e.Dispatcher.PaymentConfirmed(updated, transactionID)
	}
	return updated, nil
}

// RecordGatewayFailure notes a non-completed gateway outcome on an approved
// booking. Best-effort: the gateway callback path never surfaces errors to
// the redirected browser.
func (e *DefaultEngine) RecordGatewayFailure(ctx context.Context, bookingID, gatewayStatus string) {
	b, err := e.Repo.GetByID(bookingID)
	if err != nil || b == nil {
		e.logger().Warn("gateway failure for unknown booking",
			zap.String("bookingId", bookingID), zap.Error(err))
		return
	}
	if b.Status != models.StatusApproved && b.Status != models.StatusPaymentPending {
		return
	}

	status := models.StatusPaymentFailed
	if gatewayStatus == "Pending" || gatewayStatus == "Initiated" {
		status = models.StatusPaymentPending
	}
	if err := e.Repo.UpdateSetDocument(b.ID, bson.M{"status": status}); err != nil {
		e.logger().Error("failed to record gateway payment outcome",
			zap.String("bookingId", b.ID),
			zap.String("gatewayStatus", gatewayStatus),
			zap.Error(err))
	}
}
