package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"urbanhelp/database"
	"urbanhelp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository persists user-facing notification records. Records are
// append-only except for the read flag and targeted metadata patches.
type Repository interface {
	Create(n *models.Notification) error
	GetForUser(email string, limit int64) ([]models.Notification, error)
	MarkRead(id string) (*models.Notification, error)
	MarkAllRead(email string) (int64, error)
	Delete(id string) error
	PatchMetadataByRelatedEntity(relatedEntityID string, patch bson.M) error
}

// MongoNotificationRepo implements Repository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo creates a new instance of Repository using MongoDB.
func NewMongoNotificationRepo() Repository {
	repo := &MongoNotificationRepo{coll: database.Collection("notifications")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoNotificationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_email", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "related_entity_id", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create appends a new notification record.
func (r *MongoNotificationRepo) Create(n *models.Notification) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	if n.Metadata == nil {
		n.Metadata = map[string]any{}
	}
	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// GetForUser retrieves the newest notifications for a user, capped at limit.
func (r *MongoNotificationRepo) GetForUser(email string, limit int64) ([]models.Notification, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"user_email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve notifications for %s: %w", email, err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flips the read flag on a single notification and returns the
// updated record. Returns (nil, nil) when no document matches.
func (r *MongoNotificationRepo) MarkRead(id string) (*models.Notification, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var n models.Notification
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"is_read": true}}, opts).Decode(&n)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to mark notification %s read: %w", id, err)
	}
	return &n, nil
}

// MarkAllRead flips the read flag on every unread notification for a user and
// reports how many were modified.
func (r *MongoNotificationRepo) MarkAllRead(email string) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateMany(ctx,
		bson.M{"user_email": email, "is_read": false},
		bson.M{"$set": bson.M{"is_read": true}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read for %s: %w", email, err)
	}
	return res.ModifiedCount, nil
}

// Delete removes a notification by ID.
func (r *MongoNotificationRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete notification %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("notification with id %s not found", id)
	}
	return nil
}

// PatchMetadataByRelatedEntity applies a metadata patch to every notification
// tied to the given entity (e.g. the paid-flag backfill after payment).
func (r *MongoNotificationRepo) PatchMetadataByRelatedEntity(relatedEntityID string, patch bson.M) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	set := bson.M{}
	for k, v := range patch {
		set["metadata."+k] = v
	}
	if _, err := r.coll.UpdateMany(ctx, bson.M{"related_entity_id": relatedEntityID}, bson.M{"$set": set}); err != nil {
		return fmt.Errorf("failed to patch notification metadata for entity %s: %w", relatedEntityID, err)
	}
	return nil
}
