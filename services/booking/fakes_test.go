package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"marketplace/cache"
	"marketplace/models"
)

// memLedger enforces the one-CONFIRMED-per-availability constraint under
// a mutex, standing in for the store's partial unique index. It shares
// the availability map with memAvailabilityRepo so a deleted slot
// surfaces as a stale reference, like the transactional lookup does.
type memLedger struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
	avail    *memAvailabilityRepo
}

func newMemLedger(avail *memAvailabilityRepo) *memLedger {
	return &memLedger{bookings: make(map[string]models.Booking), avail: avail}
}

func (r *memLedger) TryReserve(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.avail.exists(booking.AvailabilityID) {
		return models.NewStaleReferenceError(fmt.Sprintf("availability %s no longer exists", booking.AvailabilityID))
	}
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

func (r *memLedger) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, models.NewNotFoundError(fmt.Sprintf("booking %s not found", id))
	}
	return &b, nil
}

func (r *memLedger) Cancel(ctx context.Context, id string) (*models.Booking, error) {
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

func (r *memLedger) ListByProvider(ctx context.Context, providerID, statusFilter string) ([]models.Booking, error) {
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
	sortNewestFirst(out)
	return out, nil
}

func (r *memLedger) ListByClient(ctx context.Context, clientID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ClientID == clientID {
			out = append(out, b)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *memLedger) ListForAvailabilities(ctx context.Context, availabilityIDs []string) ([]models.Booking, error) {
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

func (r *memLedger) ConfirmedForAvailability(ctx context.Context, availabilityID string) (*models.Booking, error) {
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

func (r *memLedger) EnsureIndexes(ctx context.Context) error { return nil }

func sortNewestFirst(bookings []models.Booking) {
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].CreatedAt.After(bookings[j].CreatedAt) })
}

// memAvailabilityRepo is a minimal availability lookup for the
// orchestrator path.
type memAvailabilityRepo struct {
	mu    sync.Mutex
	items map[string]models.Availability
}

func newMemAvailabilityRepo() *memAvailabilityRepo {
	return &memAvailabilityRepo{items: make(map[string]models.Availability)}
}

func (r *memAvailabilityRepo) add(av models.Availability) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[av.ID] = av
}

func (r *memAvailabilityRepo) exists(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[id]
	return ok
}

func (r *memAvailabilityRepo) Create(ctx context.Context, av *models.Availability) error {
	r.add(*av)
	return nil
}

func (r *memAvailabilityRepo) GetByID(ctx context.Context, id string) (*models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	av, ok := r.items[id]
	if !ok {
		return nil, models.NewNotFoundError(fmt.Sprintf("availability %s not found", id))
	}
	return &av, nil
}

func (r *memAvailabilityRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return models.NewNotFoundError(fmt.Sprintf("availability %s not found", id))
	}
	delete(r.items, id)
	return nil
}

func (r *memAvailabilityRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Availability
	for _, av := range r.items {
		if av.ProviderID == providerID {
			out = append(out, av)
		}
	}
	return out, nil
}

func (r *memAvailabilityRepo) EnsureIndexes(ctx context.Context) error { return nil }

// memCatalog resolves service variations from a fixed set.
type memCatalog struct {
	variations map[string]models.ServiceVariation
}

func newMemCatalog(ids ...string) *memCatalog {
	c := &memCatalog{variations: make(map[string]models.ServiceVariation)}
	for _, id := range ids {
		c.variations[id] = models.ServiceVariation{ID: id, Name: "svc-" + id}
	}
	return c
}

func (c *memCatalog) GetServiceVariation(ctx context.Context, id string) (*models.ServiceVariation, error) {
	sv, ok := c.variations[id]
	if !ok {
		return nil, models.NewNotFoundError(fmt.Sprintf("service variation %s not found", id))
	}
	return &sv, nil
}

// memCache records deletes and optionally fails every call.
type memCache struct {
	mu      sync.Mutex
	entries map[string]string
	deleted []string
	fail    bool
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]string)}
}

func (c *memCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return "", errors.New("cache down")
	}
	val, ok := c.entries[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return val, nil
}

func (c *memCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("cache down")
	}
	c.entries[key] = value
	return nil
}

func (c *memCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("cache down")
	}
	for _, key := range keys {
		delete(c.entries, key)
		c.deleted = append(c.deleted, key)
	}
	return nil
}

func (c *memCache) wasDeleted(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range c.deleted {
		if k == key {
			return true
		}
	}
	return false
}

func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// recordBus captures published events; optionally fails every publish.
type recordBus struct {
	mu     sync.Mutex
	events []busEvent
	fail   bool
}

type busEvent struct {
	recipient string
	event     string
	payload   models.BookingEvent
}

func (b *recordBus) Publish(ctx context.Context, recipientID, event string, payload any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fail {
		return errors.New("broker down")
	}
	be := busEvent{recipient: recipientID, event: event}
	if p, ok := payload.(models.BookingEvent); ok {
		be.payload = p
	}
	b.events = append(b.events, be)
	return nil
}

func (b *recordBus) Close() error { return nil }

func (b *recordBus) find(recipient, event string) *busEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.events {
		if b.events[i].recipient == recipient && b.events[i].event == event {
			return &b.events[i]
		}
	}
	return nil
}

// recordReminders captures scheduled reminders.
type recordReminders struct {
	mu        sync.Mutex
	scheduled []models.ReminderPayload
}

func (r *recordReminders) Schedule(payload models.ReminderPayload, fireAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scheduled = append(r.scheduled, payload)
	return nil
}
