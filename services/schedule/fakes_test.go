package schedule

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"marketplace/cache"
	"marketplace/models"
	"marketplace/utils"
)

// fakeAvailabilityRepo is an in-memory AvailabilityRepository applying
// the same half-open overlap rule as the mongo implementation.
type fakeAvailabilityRepo struct {
	mu    sync.Mutex
	items map[string]models.Availability
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{items: make(map[string]models.Availability)}
}

func (r *fakeAvailabilityRepo) Create(ctx context.Context, av *models.Availability) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := utils.TimeRange{Start: av.StartTime, End: av.EndTime}
	for _, existing := range r.items {
		if existing.ProviderID != av.ProviderID {
			continue
		}
		if next.Overlaps(utils.TimeRange{Start: existing.StartTime, End: existing.EndTime}) {
			return models.NewConflictError("availability overlaps an existing slot for this provider")
		}
	}
	r.items[av.ID] = *av
	return nil
}

func (r *fakeAvailabilityRepo) GetByID(ctx context.Context, id string) (*models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	av, ok := r.items[id]
	if !ok {
		return nil, models.NewNotFoundError(fmt.Sprintf("availability %s not found", id))
	}
	return &av, nil
}

func (r *fakeAvailabilityRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return models.NewNotFoundError(fmt.Sprintf("availability %s not found", id))
	}
	delete(r.items, id)
	return nil
}

func (r *fakeAvailabilityRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var avs []models.Availability
	for _, av := range r.items {
		if av.ProviderID == providerID {
			avs = append(avs, av)
		}
	}
	sort.Slice(avs, func(i, j int) bool {
		if !avs[i].StartTime.Equal(avs[j].StartTime) {
			return avs[i].StartTime.Before(avs[j].StartTime)
		}
		return avs[i].ID < avs[j].ID
	})
	return avs, nil
}

func (r *fakeAvailabilityRepo) EnsureIndexes(ctx context.Context) error { return nil }

// fakeBookingRepo is an in-memory BookingRepository enforcing the
// one-CONFIRMED-per-availability constraint under a mutex, standing in
// for the partial unique index.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *fakeBookingRepo) TryReserve(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.AvailabilityID == booking.AvailabilityID && b.Status == models.BookingStatusConfirmed {
			return models.NewSlotTakenError(fmt.Sprintf("availability %s is already booked", booking.AvailabilityID))
		}
	}
	now := time.Now().UTC()
	booking.Status = models.BookingStatusConfirmed
	booking.CreatedAt = now
	booking.UpdatedAt = now
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, models.NewNotFoundError(fmt.Sprintf("booking %s not found", id))
	}
	return &b, nil
}

func (r *fakeBookingRepo) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, models.NewNotFoundError(fmt.Sprintf("booking %s not found", id))
	}
	if b.Status != models.BookingStatusCancelled {
		b.Status = models.BookingStatusCancelled
		b.UpdatedAt = time.Now().UTC()
		r.bookings[id] = b
	}
	return &b, nil
}

func (r *fakeBookingRepo) ListByProvider(ctx context.Context, providerID, statusFilter string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID != providerID {
			continue
		}
		if statusFilter != "" && b.Status != statusFilter {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeBookingRepo) ListByClient(ctx context.Context, clientID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ClientID == clientID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeBookingRepo) ListForAvailabilities(ctx context.Context, availabilityIDs []string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := make(map[string]bool, len(availabilityIDs))
	for _, id := range availabilityIDs {
		wanted[id] = true
	}
	var out []models.Booking
	for _, b := range r.bookings {
		if wanted[b.AvailabilityID] {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ConfirmedForAvailability(ctx context.Context, availabilityID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.AvailabilityID == availabilityID && b.Status == models.BookingStatusConfirmed {
			out := b
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) EnsureIndexes(ctx context.Context) error { return nil }

// memCache records sets and deletes; entries never expire.
type memCache struct {
	mu      sync.Mutex
	entries map[string]string
	deleted []string
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]string)}
}

func (c *memCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	val, ok := c.entries[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return val, nil
}

func (c *memCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *memCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
		c.deleted = append(c.deleted, key)
	}
	return nil
}

func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}
