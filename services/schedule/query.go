package schedule

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"marketplace/cache"
	"marketplace/config"
	"marketplace/models"
	"marketplace/utils"
)

// AvailableSlots derives the bookable view: the provider's published
// availabilities minus booked ones minus slots whose start has passed.
// Reads go through the cache; a hit short-circuits the store entirely.
func (s *DefaultScheduleService) AvailableSlots(ctx context.Context, providerID string) ([]models.Availability, error) {
	logger := utils.GetLogger()
	key := cache.ScheduleProviderKey(providerID)

	cached, err := s.Cache.Get(ctx, key)
	if err == nil {
		var slots []models.Availability
		if err := json.Unmarshal([]byte(cached), &slots); err == nil {
			return slots, nil
		}
		logger.Warn("discarding undecodable schedule cache entry", zap.String("key", key))
	} else if err != cache.ErrMiss {
		logger.Warn("schedule cache read failed", zap.String("key", key), zap.Error(err))
	}

	avs, err := s.AvailabilityRepo.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if len(avs) == 0 {
		return []models.Availability{}, nil
	}

	ids := make([]string, len(avs))
	for i, av := range avs {
		ids[i] = av.ID
	}
	bookings, err := s.BookingRepo.ListForAvailabilities(ctx, ids)
	if err != nil {
		return nil, err
	}

	blocked := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		if s.BlockPolicy == config.BlockPolicyConfirmed && b.Status != models.BookingStatusConfirmed {
			continue
		}
		blocked[b.AvailabilityID] = true
	}

	now := s.now()
	available := make([]models.Availability, 0, len(avs))
	for _, av := range avs {
		if blocked[av.ID] {
			continue
		}
		if av.StartTime.Before(now) {
			continue
		}
		available = append(available, av)
	}

	if data, err := json.Marshal(available); err == nil {
		if err := s.Cache.Set(ctx, key, string(data), s.CacheTTL); err != nil {
			logger.Warn("schedule cache populate failed", zap.String("key", key), zap.Error(err))
		}
	}
	return available, nil
}
