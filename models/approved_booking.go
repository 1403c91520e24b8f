package models

import "time"

// ApprovedBooking is the denormalized snapshot created when a booking is
// approved and a worker assigned. It has its own identity; the raw booking is
// referenced through OriginalBookingID. Status and IsPaid are mirrored from
// the source booking on every subsequent transition.
type ApprovedBooking struct {
	ID                string        `bson:"id" json:"id"`
	OriginalBookingID string        `bson:"original_booking_id" json:"originalBookingId"`
	ApprovedWorkerID  string        `bson:"approved_worker_id" json:"approvedWorkerId"`
	ServiceID         string        `bson:"service_id" json:"serviceId"`
	Duration          string        `bson:"duration" json:"duration"`
	Charge            float64       `bson:"charge" json:"charge"`
	Date              time.Time     `bson:"date" json:"date"`
	Time              string        `bson:"time" json:"time"`
	ClientInfo        ClientInfo    `bson:"client_info" json:"clientInfo"`
	Status            BookingStatus `bson:"status" json:"status"`
	IsPaid            bool          `bson:"is_paid" json:"isPaid"`
	FinalizedAt       time.Time     `bson:"finalized_at" json:"finalizedAt"`
}
