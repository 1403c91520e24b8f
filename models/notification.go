package models

import "time"

// Notification is an append-only user-facing log entry. Only the IsRead flag
// and targeted metadata patches are ever updated after creation.
type Notification struct {
	ID              string         `bson:"id" json:"id"`
	UserEmail       string         `bson:"user_email" json:"userEmail"`
	Message         string         `bson:"message" json:"message"`
	RelatedEntity   string         `bson:"related_entity,omitempty" json:"relatedEntity,omitempty"`
	RelatedEntityID string         `bson:"related_entity_id,omitempty" json:"relatedEntityId,omitempty"`
	Metadata        map[string]any `bson:"metadata" json:"metadata"`
	IsRead          bool           `bson:"is_read" json:"isRead"`
	CreatedAt       time.Time      `bson:"created_at" json:"createdAt"`
}
