package booking

import (
	"context"
	"time"

	"marketplace/cache"
	availabilityRepo "marketplace/database/repository/availability"
	bookingRepo "marketplace/database/repository/booking"
	catalogRepo "marketplace/database/repository/catalog"
	"marketplace/models"
	"marketplace/services/notification"
)

// BookingService is the orchestrator for the externally visible booking
// use cases: it sequences conflict check, ledger write, cache
// invalidation and notification fan-out.
type BookingService interface {
	Create(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error)
	Cancel(ctx context.Context, bookingID string) (*models.Booking, error)
	ProviderBookings(ctx context.Context, providerID string) ([]models.Booking, error)
	ProviderHistory(ctx context.Context, providerID string) ([]models.Booking, error)
	ClientBookings(ctx context.Context, clientID string) ([]models.Booking, error)
}

// ReminderScheduler schedules a booking reminder to fire at a later time.
type ReminderScheduler interface {
	Schedule(payload models.ReminderPayload, fireAt time.Time) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	BookingRepo      bookingRepo.BookingRepository
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	CatalogRepo      catalogRepo.CatalogRepository
	Cache            cache.Cache
	Bus              notification.Bus
	Reminders        ReminderScheduler
	CacheTTL         time.Duration
	ReminderLead     time.Duration
}
