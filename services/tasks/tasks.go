package tasks

import (
	"encoding/json"

	"urbanhelp/models"

	"github.com/hibiken/asynq"
)

const (
	TypeBookingApproved  = "booking:approved"
	TypeBookingCancelled = "booking:cancelled"
	TypePaymentConfirmed = "payment:confirmed"
)

// BookingApprovedPayload carries everything the worker needs to send the
// approval email and write the notification record, so the handler never has
// to re-read workflow state.
type BookingApprovedPayload struct {
	Booking  models.Booking         `json:"booking"`
	Snapshot models.ApprovedBooking `json:"snapshot"`
	Worker   models.ApprovedWorker  `json:"worker"`
}

type BookingCancelledPayload struct {
	Booking models.Booking `json:"booking"`
}

type PaymentConfirmedPayload struct {
	Booking       models.Booking `json:"booking"`
	TransactionID string         `json:"transactionId,omitempty"`
}

func NewBookingApprovedTask(p BookingApprovedPayload) (*asynq.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingApproved, b), nil
}

func NewBookingCancelledTask(p BookingCancelledPayload) (*asynq.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingCancelled, b), nil
}

func NewPaymentConfirmedTask(p PaymentConfirmedPayload) (*asynq.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePaymentConfirmed, b), nil
}
