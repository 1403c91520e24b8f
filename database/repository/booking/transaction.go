package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"urbanhelp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrApprovalConflict is returned when the approval update matched no
// pending booking. A losing concurrent approve observes the winner's
// committed state and fails here instead of double-approving.
var ErrApprovalConflict = errors.New("booking is not pending approval")

// ErrBookingMissing is returned when a transactional update matched no
// booking document at all.
var ErrBookingMissing = errors.New("booking not found")

// withTransaction runs fn inside a session transaction, aborting on any
// failure. The session is always ended so a leaked session cannot starve the
// connection pool.
func (r *MongoBookingRepo) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

// ApproveTransactionally flags the raw booking approved and inserts the
// approved snapshot in one transaction. Both writes commit or neither does:
// a failure between the two leaves the raw booking untouched and no snapshot
// behind.
func (r *MongoBookingRepo) ApproveTransactionally(ctx context.Context, bookingID string, snapshot *models.ApprovedBooking) error {
	return r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		filter := bson.M{
			"id": bookingID,
			"status": bson.M{"$nin": bson.A{
				models.StatusApproved,
				models.StatusCompleted,
				models.StatusCancelled,
				models.StatusPaymentPending,
				models.StatusPaymentFailed,
			}},
			"is_approved": false,
		}
		update := bson.M{"$set": bson.M{
			"is_approved":        true,
			"approved_worker_id": snapshot.ApprovedWorkerID,
			"status":             models.StatusApproved,
			"is_paid":            false,
			"updated_at":         time.Now(),
		}}
		res, err := r.coll.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("flag booking approved failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrApprovalConflict
		}

		if _, err := r.approvedColl.InsertOne(sc, snapshot); err != nil {
			return fmt.Errorf("insert approved booking failed: %w", err)
		}
		return nil
	})
}

// SetPaidTransactionally flips the paid flag and status on the raw booking
// and mirrors both fields onto the approved snapshot, if one exists, in the
// same transaction.
func (r *MongoBookingRepo) SetPaidTransactionally(ctx context.Context, bookingID string, isPaid bool, status models.BookingStatus) error {
	return r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		update := bson.M{"$set": bson.M{
			"is_paid":    isPaid,
			"status":     status,
			"updated_at": time.Now(),
		}}
		res, err := r.coll.UpdateOne(sc, bson.M{"id": bookingID}, update)
		if err != nil {
			return fmt.Errorf("update booking paid flag failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrBookingMissing
		}

		// The snapshot only exists post-approval; zero matches is fine.
		mirror := bson.M{"$set": bson.M{
			"is_paid": isPaid,
			"status":  status,
		}}
		if _, err := r.approvedColl.UpdateOne(sc, bson.M{"original_booking_id": bookingID}, mirror); err != nil {
			return fmt.Errorf("mirror paid flag onto approved booking failed: %w", err)
		}
		return nil
	})
}
