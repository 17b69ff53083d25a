package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"marketplace/models"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

func NewMongoAvailabilityRepo(db *mongo.Database) *MongoAvailabilityRepo {
	return &MongoAvailabilityRepo{coll: db.Collection("availabilities")}
}

func (r *MongoAvailabilityRepo) Create(ctx context.Context, av *models.Availability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Half-open overlap test: existing.start < new.end AND existing.end > new.start.
	filter := bson.M{
		"provider_id": av.ProviderID,
		"start_time":  bson.M{"$lt": av.EndTime},
		"end_time":    bson.M{"$gt": av.StartTime},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check for overlapping availabilities: %w", err)
	}
	if count > 0 {
		return models.NewConflictError("availability overlaps an existing slot for this provider")
	}

	if _, err := r.coll.InsertOne(ctx, av); err != nil {
		return fmt.Errorf("failed to insert availability: %w", err)
	}
	return nil
}

func (r *MongoAvailabilityRepo) GetByID(ctx context.Context, id string) (*models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var av models.Availability
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&av)
	if err == mongo.ErrNoDocuments {
		return nil, models.NewNotFoundError(fmt.Sprintf("availability %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	return &av, nil
}

func (r *MongoAvailabilityRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete availability: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.NewNotFoundError(fmt.Sprintf("availability %s not found", id))
	}
	return nil
}

func (r *MongoAvailabilityRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}, {Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"provider_id": providerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list availabilities: %w", err)
	}
	defer cursor.Close(ctx)

	var avs []models.Availability
	if err := cursor.All(ctx, &avs); err != nil {
		return nil, fmt.Errorf("failed to decode availabilities: %w", err)
	}
	return avs, nil
}
