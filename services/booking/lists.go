package booking

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"marketplace/cache"
	"marketplace/models"
	"marketplace/utils"
)

// ProviderBookings returns the provider's CONFIRMED bookings, newest
// first. This is the live operational view and is never cached.
func (s *DefaultBookingService) ProviderBookings(ctx context.Context, providerID string) ([]models.Booking, error) {
	return s.BookingRepo.ListByProvider(ctx, providerID, models.BookingStatusConfirmed)
}

// ProviderHistory returns every booking of the provider regardless of
// status, cache-aside under history:provider:<id>.
func (s *DefaultBookingService) ProviderHistory(ctx context.Context, providerID string) ([]models.Booking, error) {
	return s.cachedList(ctx, cache.HistoryProviderKey(providerID), func() ([]models.Booking, error) {
		return s.BookingRepo.ListByProvider(ctx, providerID, "")
	})
}

// ClientBookings returns the client's bookings, cache-aside under
// bookings:client:<id>.
func (s *DefaultBookingService) ClientBookings(ctx context.Context, clientID string) ([]models.Booking, error) {
	return s.cachedList(ctx, cache.BookingsClientKey(clientID), func() ([]models.Booking, error) {
		return s.BookingRepo.ListByClient(ctx, clientID)
	})
}

func (s *DefaultBookingService) cachedList(ctx context.Context, key string, fetch func() ([]models.Booking, error)) ([]models.Booking, error) {
	logger := utils.GetLogger()

	cached, err := s.Cache.Get(ctx, key)
	if err == nil {
		var bookings []models.Booking
		if err := json.Unmarshal([]byte(cached), &bookings); err == nil {
			return bookings, nil
		}
		logger.Warn("discarding undecodable booking cache entry", zap.String("key", key))
	} else if err != cache.ErrMiss {
		logger.Warn("booking cache read failed", zap.String("key", key), zap.Error(err))
	}

	bookings, err := fetch()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(bookings); err == nil {
		if err := s.Cache.Set(ctx, key, string(data), s.CacheTTL); err != nil {
			logger.Warn("booking cache populate failed", zap.String("key", key), zap.Error(err))
		}
	}
	return bookings, nil
}
