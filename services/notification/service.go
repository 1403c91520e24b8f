package notification

import (
	"context"

	notificationRepo "urbanhelp/database/repository/notification"
	"urbanhelp/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// userNotificationLimit caps how many records a single fetch returns.
const userNotificationLimit = 50

// Service is the notification sink: it persists user-facing records for the
// booking workflow and serves the notifications API. Workflow callers treat
// every method as fire-and-forget.
type Service interface {
	Create(ctx context.Context, n *models.Notification) error
	ListForUser(ctx context.Context, email string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) (*models.Notification, error)
	MarkAllRead(ctx context.Context, email string) (int64, error)
	Delete(ctx context.Context, id string) error
	SetPaidFlag(ctx context.Context, relatedEntityID string, isPaid bool) error
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo notificationRepo.Repository
}

// Create assigns an ID if missing and persists the record.
func (s *DefaultService) Create(ctx context.Context, n *models.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return s.Repo.Create(n)
}

// ListForUser returns the newest records for a user.
func (s *DefaultService) ListForUser(ctx context.Context, email string) ([]models.Notification, error) {
	return s.Repo.GetForUser(email, userNotificationLimit)
}

// MarkRead flips the read flag on a single record.
func (s *DefaultService) MarkRead(ctx context.Context, id string) (*models.Notification, error) {
	return s.Repo.MarkRead(id)
}

// MarkAllRead flips the read flag on all unread records for a user.
func (s *DefaultService) MarkAllRead(ctx context.Context, email string) (int64, error) {
	return s.Repo.MarkAllRead(email)
}

// Delete removes a record.
func (s *DefaultService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(id)
}

// SetPaidFlag backfills the isPaid metadata flag on every record related to
// the given entity.
func (s *DefaultService) SetPaidFlag(ctx context.Context, relatedEntityID string, isPaid bool) error {
	return s.Repo.PatchMetadataByRelatedEntity(relatedEntityID, bson.M{"isPaid": isPaid})
}
