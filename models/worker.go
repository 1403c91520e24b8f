package models

import "time"

// ApprovedWorker is a vetted service provider eligible for assignment.
type ApprovedWorker struct {
	ID         string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	Phone      string    `bson:"phone" json:"phone"`
	Service    string    `bson:"service" json:"service"`
	Skills     string    `bson:"skills" json:"skills"`
	Experience string    `bson:"experience" json:"experience"`
	ApprovedAt time.Time `bson:"approved_at" json:"approvedAt"`
}
