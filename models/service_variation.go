package models

// ServiceVariation is a priced, timed offering a client selects when
// booking. Owned by the catalog; the booking core only reads it.
type ServiceVariation struct {
	ID              string `bson:"id" json:"id"`
	ServiceID       string `bson:"service_id" json:"serviceId"`
	Name            string `bson:"name" json:"name"`
	PriceCents      int64  `bson:"price_cents" json:"priceCents"`
	DurationMinutes int    `bson:"duration_minutes" json:"durationMinutes"`
}
