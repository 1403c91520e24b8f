package models

import "time"

// WorkerSummary is the resolved worker reference embedded in booking views.
type WorkerSummary struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
}

// Summary projects an ApprovedWorker onto its embeddable form.
func (w *ApprovedWorker) Summary() WorkerSummary {
	return WorkerSummary{ID: w.ID, Name: w.Name, Email: w.Email, Phone: w.Phone}
}

// BookingView is a booking with its service and worker references resolved to
// summary fields, as returned by the admin listing and user history.
type BookingView struct {
	ID                string         `json:"id"`
	ApprovedBookingID string         `json:"approvedBookingId,omitempty"`
	Service           ServiceSummary `json:"service"`
	Worker            *WorkerSummary `json:"approvedWorker,omitempty"`
	Duration          string         `json:"duration"`
	Charge            float64        `json:"charge"`
	Date              time.Time      `json:"date"`
	Time              string         `json:"time"`
	ClientInfo        ClientInfo     `json:"clientInfo"`
	Status            BookingStatus  `json:"status"`
	IsApproved        bool           `json:"isApproved"`
	IsPaid            bool           `json:"isPaid"`
	CreatedAt         time.Time      `json:"createdAt"`
}
