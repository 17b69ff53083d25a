package schedule

import (
	"context"

	"marketplace/models"
)

// ScheduleService manages a provider's published availabilities and
// derives the "available slots" view clients browse before booking.
type ScheduleService interface {
	CreateAvailability(ctx context.Context, req models.CreateAvailabilityRequest) (*models.Availability, error)
	DeleteAvailability(ctx context.Context, availabilityID string) error
	// AvailableSlots returns the provider's still-open, not-yet-started
	// slots, cache-aside with a bounded TTL.
	AvailableSlots(ctx context.Context, providerID string) ([]models.Availability, error)
}
