package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"urbanhelp/config"
	serviceRepo "urbanhelp/database/repository/service"
	"urbanhelp/models"
	"urbanhelp/services/email"
	"urbanhelp/services/notification"
	"urbanhelp/services/tasks"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// SideEffectWorker processes the best-effort tasks the booking workflow
// enqueues after committing a state change. Every failure is logged; a
// returned error only triggers an asynq retry, never a rollback of the
// originating transition.
type SideEffectWorker struct {
	Mailer        email.Mailer
	Notifications notification.Service
	Services      serviceRepo.Repository
	Logger        *zap.Logger
}

// InitSideEffectWorker runs the async worker in background.
func InitSideEffectWorker(w *SideEffectWorker) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingApproved, w.handleBookingApproved)
	mux.HandleFunc(tasks.TypeBookingCancelled, w.handleBookingCancelled)
	mux.HandleFunc(tasks.TypePaymentConfirmed, w.handlePaymentConfirmed)

	go func() {
		w.Logger.Info("starting side-effect worker")
		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				w.Logger.Error("side-effect worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					w.Logger.Fatal("side-effect worker gave up starting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func (w *SideEffectWorker) handleBookingApproved(ctx context.Context, t *asynq.Task) error {
	var p tasks.BookingApprovedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("invalid approval payload: %w", err)
	}

	serviceTitle := w.serviceTitle(p.Booking.ServiceID)

	html := email.BookingApprovalEmail(&p.Booking, serviceTitle, &p.Worker)
	if err := w.Mailer.Send(ctx, p.Booking.ClientInfo.Email, "Your Booking Has Been Approved", html); err != nil {
		w.Logger.Error("approval email failed",
			zap.String("bookingId", p.Booking.ID),
			zap.String("to", p.Booking.ClientInfo.Email),
			zap.Error(err))
	}

	n := &models.Notification{
		ID:              uuid.New().String(),
		UserEmail:       p.Booking.ClientInfo.Email,
		Message:         fmt.Sprintf("Your booking for %s was approved. %s will assist you.", serviceTitle, p.Worker.Name),
		RelatedEntity:   "booking",
		RelatedEntityID: p.Booking.ID,
		Metadata: map[string]any{
			"workerName":  p.Worker.Name,
			"serviceName": serviceTitle,
			"date":        p.Booking.Date.Format("2006-01-02"),
			"charge":      p.Booking.Charge,
			"isPaid":      false,
		},
	}
	if err := w.Notifications.Create(ctx, n); err != nil {
		w.Logger.Error("approval notification failed",
			zap.String("bookingId", p.Booking.ID), zap.Error(err))
		return err
	}
	return nil
}

func (w *SideEffectWorker) handleBookingCancelled(ctx context.Context, t *asynq.Task) error {
	var p tasks.BookingCancelledPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("invalid cancellation payload: %w", err)
	}

	n := &models.Notification{
		ID:              uuid.New().String(),
		UserEmail:       config.AppConfig.AdminEmail,
		Message:         fmt.Sprintf("Booking %s was cancelled by %s.", p.Booking.ID, p.Booking.ClientInfo.Email),
		RelatedEntity:   "booking",
		RelatedEntityID: p.Booking.ID,
		Metadata: map[string]any{
			"cancelledBy": p.Booking.ClientInfo.Email,
		},
	}
	if err := w.Notifications.Create(ctx, n); err != nil {
		w.Logger.Error("cancellation notification failed",
			zap.String("bookingId", p.Booking.ID), zap.Error(err))
		return err
	}
	return nil
}

func (w *SideEffectWorker) handlePaymentConfirmed(ctx context.Context, t *asynq.Task) error {
	var p tasks.PaymentConfirmedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("invalid payment payload: %w", err)
	}

	serviceTitle := w.serviceTitle(p.Booking.ServiceID)

	html := email.PaymentConfirmationEmail(&p.Booking, serviceTitle, p.TransactionID)
	if err := w.Mailer.Send(ctx, p.Booking.ClientInfo.Email, "Payment Confirmed", html); err != nil {
		w.Logger.Error("payment confirmation email failed",
			zap.String("bookingId", p.Booking.ID),
			zap.String("to", p.Booking.ClientInfo.Email),
			zap.Error(err))
	}

	// Backfill the paid flag on the earlier approval notification.
	if err := w.Notifications.SetPaidFlag(ctx, p.Booking.ID, true); err != nil {
		w.Logger.Error("paid-flag backfill failed",
			zap.String("bookingId", p.Booking.ID), zap.Error(err))
	}

	n := &models.Notification{
		ID:              uuid.New().String(),
		UserEmail:       p.Booking.ClientInfo.Email,
		Message:         fmt.Sprintf("Payment of $%.2f for %s confirmed.", p.Booking.Charge, serviceTitle),
		RelatedEntity:   "booking",
		RelatedEntityID: p.Booking.ID,
		Metadata: map[string]any{
			"transactionId": p.TransactionID,
			"isPaid":        true,
		},
	}
	if err := w.Notifications.Create(ctx, n); err != nil {
		w.Logger.Error("payment notification failed",
			zap.String("bookingId", p.Booking.ID), zap.Error(err))
		return err
	}
	return nil
}

func (w *SideEffectWorker) serviceTitle(serviceID string) string {
	svc, err := w.Services.GetByID(serviceID)
	if err != nil || svc == nil {
		return ""
	}
	return svc.Title
}
