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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll      *mongo.Collection
	availColl *mongo.Collection
}

func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{
		coll:      db.Collection("bookings"),
		availColl: db.Collection("availabilities"),
	}
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, models.NewNotFoundError(fmt.Sprintf("booking %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Flip only CONFIRMED rows; an already cancelled booking is returned
	// as-is so cancel stays idempotent.
	filter := bson.M{"id": id, "status": models.BookingStatusConfirmed}
	update := bson.M{"$set": bson.M{
		"status":     models.BookingStatusCancelled,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return r.GetByID(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) ListByProvider(ctx context.Context, providerID, statusFilter string) ([]models.Booking, error) {
	filter := bson.M{"provider_id": providerID}
	if statusFilter != "" {
		filter["status"] = statusFilter
	}
	return r.list(ctx, filter)
}

func (r *MongoBookingRepo) ListByClient(ctx context.Context, clientID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"client_id": clientID})
}

func (r *MongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) ListForAvailabilities(ctx context.Context, availabilityIDs []string) ([]models.Booking, error) {
	if len(availabilityIDs) == 0 {
		return nil, nil
	}
	return r.list(ctx, bson.M{"availability_id": bson.M{"$in": availabilityIDs}})
}

func (r *MongoBookingRepo) ConfirmedForAvailability(ctx context.Context, availabilityID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"availability_id": availabilityID,
		"status":          models.BookingStatusConfirmed,
	}
	var booking models.Booking
	err := r.coll.FindOne(ctx, filter).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up confirmed booking: %w", err)
	}
	return &booking, nil
}
