package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"marketplace/models"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
// The partial unique index on availability_id scoped to CONFIRMED status
// is the concurrency guarantee for reservations: concurrent inserts for
// the same slot collide on it and all but one fail with a duplicate key.
func (r *MongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{{Key: "availability_id", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": models.BookingStatusConfirmed}).
				SetName("unique_confirmed_availability"),
		},
		{
			Keys:    bson.D{{Key: "provider_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("provider_created_idx"),
		},
		{
			Keys:    bson.D{{Key: "client_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("client_created_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
