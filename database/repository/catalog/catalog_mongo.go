package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"marketplace/models"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

func NewMongoCatalogRepo(db *mongo.Database) *MongoCatalogRepo {
	return &MongoCatalogRepo{coll: db.Collection("service_variations")}
}

func (r *MongoCatalogRepo) GetServiceVariation(ctx context.Context, id string) (*models.ServiceVariation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sv models.ServiceVariation
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&sv)
	if err == mongo.ErrNoDocuments {
		return nil, models.NewNotFoundError(fmt.Sprintf("service variation %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service variation: %w", err)
	}
	return &sv, nil
}
