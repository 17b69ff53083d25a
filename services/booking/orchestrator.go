package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"marketplace/cache"
	"marketplace/models"
	"marketplace/utils"
)

// Create reserves a slot for a client. The ledger write is the only
// transactional step; cache invalidation, notification fan-out and the
// reminder enqueue run after it commits and are best-effort — a failure
// there is logged, never rolled back, and never surfaced. The caller
// sees success only once the booking is durable.
func (s *DefaultBookingService) Create(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	av, err := s.AvailabilityRepo.GetByID(ctx, req.AvailabilityID)
	if err != nil {
		return nil, err
	}
	if av.ProviderID != req.ProviderID {
		return nil, models.NewConflictError("availability does not belong to the requested provider")
	}

	if _, err := s.CatalogRepo.GetServiceVariation(ctx, req.ServiceVariationID); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:                 uuid.New().String(),
		ClientID:           req.ClientID,
		ProviderID:         req.ProviderID,
		ServiceVariationID: req.ServiceVariationID,
		AvailabilityID:     req.AvailabilityID,
	}
	if err := s.BookingRepo.TryReserve(ctx, booking); err != nil {
		return nil, err
	}

	s.invalidate(ctx,
		cache.ScheduleProviderKey(booking.ProviderID),
		cache.HistoryProviderKey(booking.ProviderID),
		cache.BookingsClientKey(booking.ClientID),
	)

	s.publish(ctx, booking.ProviderID, models.EventNewBooking, models.BookingEvent{
		BookingID: booking.ID,
		Message:   "You received a new booking!",
	})
	s.publish(ctx, booking.ClientID, models.EventBookingCreated, models.BookingEvent{
		BookingID: booking.ID,
		Message:   "Your booking is confirmed.",
	})

	s.scheduleReminder(booking, av.StartTime)

	return booking, nil
}

// Cancel transitions a booking to CANCELLED. Only the provider's history
// cache is invalidated: a cancelled booking does not return the slot to
// the available view, so the schedule key stays put.
func (s *DefaultBookingService) Cancel(ctx context.Context, bookingID string) (*models.Booking, error) {
	if bookingID == "" {
		return nil, NewValidationError("bookingId")
	}

	booking, err := s.BookingRepo.Cancel(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.HistoryProviderKey(booking.ProviderID))
	return booking, nil
}

func validateCreateRequest(req models.CreateBookingRequest) error {
	switch {
	case req.ClientID == "":
		return NewValidationError("clientId")
	case req.ProviderID == "":
		return NewValidationError("providerId")
	case req.ServiceVariationID == "":
		return NewValidationError("serviceVariationId")
	case req.AvailabilityID == "":
		return NewValidationError("availabilityId")
	}
	return nil
}

func (s *DefaultBookingService) invalidate(ctx context.Context, keys ...string) {
	if err := s.Cache.Delete(ctx, keys...); err != nil {
		utils.GetLogger().Warn("booking cache invalidation failed",
			zap.Strings("keys", keys), zap.Error(err))
	}
}

func (s *DefaultBookingService) publish(ctx context.Context, recipientID, event string, payload models.BookingEvent) {
	if s.Bus == nil {
		return
	}
	if err := s.Bus.Publish(ctx, recipientID, event, payload); err != nil {
		utils.GetLogger().Warn("notification publish failed",
			zap.String("recipient", recipientID), zap.String("event", event), zap.Error(err))
	}
}

func (s *DefaultBookingService) scheduleReminder(booking *models.Booking, slotStart time.Time) {
	if s.Reminders == nil {
		return
	}
	fireAt := slotStart.Add(-s.ReminderLead)
	if fireAt.Before(time.Now()) {
		return
	}
	payload := models.ReminderPayload{
		BookingID: booking.ID,
		ClientID:  booking.ClientID,
		StartTime: slotStart.Format(time.RFC3339),
	}
	if err := s.Reminders.Schedule(payload, fireAt); err != nil {
		utils.GetLogger().Warn("reminder enqueue failed",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
}
