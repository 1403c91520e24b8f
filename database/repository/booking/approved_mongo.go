package bookingRepo

import (
	"fmt"
	"time"

	"urbanhelp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetApprovedByID retrieves an approved booking by its own ID. Returns
// (nil, nil) when no document matches.
func (r *MongoBookingRepo) GetApprovedByID(id string) (*models.ApprovedBooking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var approved models.ApprovedBooking
	if err := r.approvedColl.FindOne(ctx, bson.M{"id": id}).Decode(&approved); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch approved booking with id %s: %w", id, err)
	}
	return &approved, nil
}

// GetApprovedByOriginalID retrieves the approved snapshot for a raw booking.
// Returns (nil, nil) when the booking has not been approved.
func (r *MongoBookingRepo) GetApprovedByOriginalID(originalID string) (*models.ApprovedBooking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var approved models.ApprovedBooking
	err := r.approvedColl.FindOne(ctx, bson.M{"original_booking_id": originalID}).Decode(&approved)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch approved booking for booking %s: %w", originalID, err)
	}
	return &approved, nil
}

// GetApprovedByClientEmail retrieves all approved bookings for a client email.
func (r *MongoBookingRepo) GetApprovedByClientEmail(email string) ([]models.ApprovedBooking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.approvedColl.Find(ctx, bson.M{"client_info.email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve approved bookings for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	var approved []models.ApprovedBooking
	if err := cursor.All(ctx, &approved); err != nil {
		return nil, fmt.Errorf("failed to decode approved bookings: %w", err)
	}
	return approved, nil
}

// UpdateApprovedSetDocument applies a $set update to an approved booking.
func (r *MongoBookingRepo) UpdateApprovedSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.approvedColl.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update approved booking with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("approved booking with id %s not found", id)
	}
	return nil
}
