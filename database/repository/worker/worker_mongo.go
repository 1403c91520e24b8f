package workerRepo

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

// Repository provides read access to the approved-worker directory.
type Repository interface {
	GetByID(id string) (*models.ApprovedWorker, error)
	GetAll() ([]models.ApprovedWorker, error)
	Create(worker *models.ApprovedWorker) error
}

// MongoWorkerRepo implements Repository using MongoDB.
type MongoWorkerRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkerRepo creates a new instance of Repository using MongoDB.
func NewMongoWorkerRepo() Repository {
	repo := &MongoWorkerRepo{coll: database.Collection("approvedworkers")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoWorkerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a worker by its unique ID. Returns (nil, nil) when no
// document matches.
func (r *MongoWorkerRepo) GetByID(id string) (*models.ApprovedWorker, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var worker models.ApprovedWorker
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&worker); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch worker with id %s: %w", id, err)
	}
	return &worker, nil
}

// GetAll retrieves the full worker directory.
func (r *MongoWorkerRepo) GetAll() ([]models.ApprovedWorker, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve workers: %w", err)
	}
	defer cursor.Close(ctx)

	var workers []models.ApprovedWorker
	if err := cursor.All(ctx, &workers); err != nil {
		return nil, fmt.Errorf("failed to decode workers: %w", err)
	}
	return workers, nil
}

// Create inserts a new approved worker.
func (r *MongoWorkerRepo) Create(worker *models.ApprovedWorker) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if worker.ApprovedAt.IsZero() {
		worker.ApprovedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, worker); err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}
	return nil
}
