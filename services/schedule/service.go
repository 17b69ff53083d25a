package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"marketplace/cache"
	"marketplace/config"
	availabilityRepo "marketplace/database/repository/availability"
	bookingRepo "marketplace/database/repository/booking"
	"marketplace/models"
	"marketplace/utils"
)

// DefaultScheduleService implements ScheduleService.
type DefaultScheduleService struct {
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	BookingRepo      bookingRepo.BookingRepository
	Cache            cache.Cache
	CacheTTL         time.Duration
	// BlockPolicy decides whether any booking record blocks re-listing a
	// slot or only a CONFIRMED one. DeletePolicy decides what happens to
	// a CONFIRMED booking when its availability is deleted.
	BlockPolicy  string
	DeletePolicy string
	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultScheduleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateAvailability validates the interval, rejects overlaps with the
// provider's existing slots and invalidates the schedule and history
// caches for that provider.
func (s *DefaultScheduleService) CreateAvailability(ctx context.Context, req models.CreateAvailabilityRequest) (*models.Availability, error) {
	tr, err := utils.NewTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	av := &models.Availability{
		ID:         uuid.New().String(),
		ProviderID: req.ProviderID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		DayOfWeek:  tr.DayOfWeek(),
		CreatedAt:  s.now().UTC(),
	}

	if err := s.AvailabilityRepo.Create(ctx, av); err != nil {
		return nil, err
	}

	s.invalidate(ctx,
		cache.ScheduleProviderKey(req.ProviderID),
		cache.HistoryProviderKey(req.ProviderID),
	)
	return av, nil
}

// DeleteAvailability removes a published slot. When a CONFIRMED booking
// holds the slot the configured policy applies: reject the delete
// (default) or cascade-cancel the booking first.
func (s *DefaultScheduleService) DeleteAvailability(ctx context.Context, availabilityID string) error {
	av, err := s.AvailabilityRepo.GetByID(ctx, availabilityID)
	if err != nil {
		return err
	}

	holder, err := s.BookingRepo.ConfirmedForAvailability(ctx, availabilityID)
	if err != nil {
		return err
	}
	if holder != nil {
		if s.DeletePolicy != config.DeletePolicyCascade {
			return models.NewConflictError("availability has a confirmed booking")
		}
		if _, err := s.BookingRepo.Cancel(ctx, holder.ID); err != nil {
			return err
		}
	}

	if err := s.AvailabilityRepo.Delete(ctx, availabilityID); err != nil {
		return err
	}

	keys := []string{cache.ScheduleProviderKey(av.ProviderID)}
	if holder != nil {
		keys = append(keys, cache.HistoryProviderKey(av.ProviderID))
	}
	s.invalidate(ctx, keys...)
	return nil
}

func (s *DefaultScheduleService) invalidate(ctx context.Context, keys ...string) {
	if err := s.Cache.Delete(ctx, keys...); err != nil {
		utils.GetLogger().Warn("schedule cache invalidation failed",
			zap.Strings("keys", keys), zap.Error(err))
	}
}
