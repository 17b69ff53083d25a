package bookingRepo

import (
	"context"

	"marketplace/models"
)

// BookingRepository is the ledger of confirmed and cancelled bookings.
// At most one CONFIRMED booking may reference a given availability id;
// the storage layer enforces this, not the callers.
type BookingRepository interface {
	// TryReserve atomically verifies the availability still exists and
	// inserts the booking as CONFIRMED. Losing the race for the slot
	// returns a slotTaken error; a vanished availability returns a
	// staleReference error.
	TryReserve(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// Cancel transitions the booking to CANCELLED. Cancelling an already
	// cancelled booking returns the existing record unchanged.
	Cancel(ctx context.Context, id string) (*models.Booking, error)
	// ListByProvider returns bookings newest first. statusFilter narrows
	// to one status when non-empty.
	ListByProvider(ctx context.Context, providerID, statusFilter string) ([]models.Booking, error)
	ListByClient(ctx context.Context, clientID string) ([]models.Booking, error)
	// ListForAvailabilities returns every booking referencing one of the
	// given availability ids, any status.
	ListForAvailabilities(ctx context.Context, availabilityIDs []string) ([]models.Booking, error)
	// ConfirmedForAvailability returns the CONFIRMED booking holding the
	// slot, or nil when the slot is unclaimed.
	ConfirmedForAvailability(ctx context.Context, availabilityID string) (*models.Booking, error)
	EnsureIndexes(ctx context.Context) error
}
