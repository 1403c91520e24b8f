package tasks

import (
	"urbanhelp/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// AsynqDispatcher schedules side-effect tasks on the Redis-backed queue.
// Enqueue failures are logged and swallowed: the booking state change has
// already committed and is the source of truth.
type AsynqDispatcher struct {
	Client *asynq.Client
	Logger *zap.Logger
}

func NewAsynqDispatcher(client *asynq.Client, logger *zap.Logger) *AsynqDispatcher {
	return &AsynqDispatcher{Client: client, Logger: logger}
}

func (d *AsynqDispatcher) BookingApproved(b *models.Booking, snapshot *models.ApprovedBooking, worker *models.ApprovedWorker) {
	task, err := NewBookingApprovedTask(BookingApprovedPayload{
		Booking:  *b,
		Snapshot: *snapshot,
		Worker:   *worker,
	})
	if err != nil {
		d.Logger.Error("failed to build approval task", zap.String("bookingId", b.ID), zap.Error(err))
		return
	}
	d.enqueue(task, b.ID)
}

func (d *AsynqDispatcher) BookingCancelled(b *models.Booking) {
	task, err := NewBookingCancelledTask(BookingCancelledPayload{Booking: *b})
	if err != nil {
		d.Logger.Error("failed to build cancellation task", zap.String("bookingId", b.ID), zap.Error(err))
		return
	}
	d.enqueue(task, b.ID)
}

func (d *AsynqDispatcher) PaymentConfirmed(b *models.Booking, transactionID string) {
	task, err := NewPaymentConfirmedTask(PaymentConfirmedPayload{
		Booking:       *b,
		TransactionID: transactionID,
	})
	if err != nil {
		d.Logger.Error("failed to build payment task", zap.String("bookingId", b.ID), zap.Error(err))
		return
	}
	d.enqueue(task, b.ID)
}

func (d *AsynqDispatcher) enqueue(task *asynq.Task, bookingID string) {
	info, err := d.Client.Enqueue(task, asynq.MaxRetry(5))
	if err != nil {
		d.Logger.Error("failed to enqueue side-effect task",
			zap.String("type", task.Type()),
			zap.String("bookingId", bookingID),
			zap.Error(err))
		return
	}
	d.Logger.Debug("side-effect task enqueued",
		zap.String("type", task.Type()),
		zap.String("taskId", info.ID),
		zap.String("bookingId", bookingID))
}
