package models

import "time"

// Service is a catalog entry a booking can be placed against.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// ServiceSummary is the resolved reference embedded in booking views.
type ServiceSummary struct {
	ID    string  `bson:"id" json:"id"`
	Title string  `bson:"title" json:"title"`
	Price float64 `bson:"price" json:"price"`
}

// Summary projects a Service onto its embeddable form.
func (s *Service) Summary() ServiceSummary {
	return ServiceSummary{ID: s.ID, Title: s.Title, Price: s.Price}
}
