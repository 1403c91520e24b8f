package bookingRepo

import (
	"context"

	"urbanhelp/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Repository owns both the raw bookings collection and the approved-bookings
// projection. It is the only component permitted to write to either; the
// multi-document operations (approval, paid-flag flip) run inside a MongoDB
// transaction.
type Repository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetAll() ([]models.Booking, error)
	GetByClientEmail(email string) ([]models.Booking, error)
	UpdateSetDocument(id string, updateDoc bson.M) error

	GetApprovedByID(id string) (*models.ApprovedBooking, error)
	GetApprovedByOriginalID(originalID string) (*models.ApprovedBooking, error)
	GetApprovedByClientEmail(email string) ([]models.ApprovedBooking, error)
	UpdateApprovedSetDocument(id string, updateDoc bson.M) error

	ApproveTransactionally(ctx context.Context, bookingID string, snapshot *models.ApprovedBooking) error
	SetPaidTransactionally(ctx context.Context, bookingID string, isPaid bool, status models.BookingStatus) error
}
