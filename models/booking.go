package models

import "time"

// Booking statuses. CANCELLED is terminal; a cancelled booking keeps its
// row for the audit trail and does not free the slot.
const (
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
)

// Booking is a client's claim on exactly one Availability. At most one
// CONFIRMED booking may reference a given availability id; the bookings
// collection carries a partial unique index enforcing this.
type Booking struct {
	ID                 string    `bson:"id" json:"id"`
	ClientID           string    `bson:"client_id" json:"clientId"`
	ProviderID         string    `bson:"provider_id" json:"providerId"`
	ServiceVariationID string    `bson:"service_variation_id" json:"serviceVariationId"`
	AvailabilityID     string    `bson:"availability_id" json:"availabilityId"`
	Status             string    `bson:"status" json:"status"`
	CreatedAt          time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updatedAt"`
}
