package availabilityRepo

import (
	"context"

	"marketplace/models"
)

// AvailabilityRepository owns the catalog of published slots per
// provider.
type AvailabilityRepository interface {
	// Create inserts a new availability after rejecting any half-open
	// interval overlap with the same provider's existing slots.
	Create(ctx context.Context, av *models.Availability) error
	GetByID(ctx context.Context, id string) (*models.Availability, error)
	Delete(ctx context.Context, id string) error
	// ListByProvider returns the provider's slots ordered by start time
	// ascending, ties broken by id.
	ListByProvider(ctx context.Context, providerID string) ([]models.Availability, error)
	EnsureIndexes(ctx context.Context) error
}
