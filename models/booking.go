package models

import "time"

// BookingStatus enumerates the booking lifecycle states.
type BookingStatus string

const (
	StatusPendingApproval BookingStatus = "pending_approval"
	StatusApproved        BookingStatus = "approved"
	StatusCancelled       BookingStatus = "cancelled"
	StatusCompleted       BookingStatus = "completed"
	StatusPaymentPending  BookingStatus = "payment_pending"
	StatusPaymentFailed   BookingStatus = "payment_failed"
)

// Terminal reports whether no further transitions are allowed out of s.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ClientInfo holds the contact details captured when a booking is placed.
// Immutable after creation.
type ClientInfo struct {
	Name     string `bson:"name" json:"name" binding:"required"`
	Email    string `bson:"email" json:"email" binding:"required,email"`
	Phone    string `bson:"phone" json:"phone" binding:"required"`
	Location string `bson:"location" json:"location" binding:"required"`
	Address  string `bson:"address" json:"address" binding:"required"`
}

// Booking is a client's raw service request record.
type Booking struct {
	ID               string        `bson:"id" json:"id"`
	ServiceID        string        `bson:"service_id" json:"serviceId"`
	Duration         string        `bson:"duration" json:"duration"`
	Charge           float64       `bson:"charge" json:"charge"`
	Date             time.Time     `bson:"date" json:"date"`
	Time             string        `bson:"time" json:"time"`
	ClientInfo       ClientInfo    `bson:"client_info" json:"clientInfo"`
	Status           BookingStatus `bson:"status" json:"status"`
	IsApproved       bool          `bson:"is_approved" json:"isApproved"`
	IsPaid           bool          `bson:"is_paid" json:"isPaid"`
	ApprovedWorkerID string        `bson:"approved_worker_id,omitempty" json:"approvedWorkerId,omitempty"`
	CreatedAt        time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time     `bson:"updated_at" json:"updatedAt"`
}
