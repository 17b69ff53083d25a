package models

import "time"

// Availability is one bookable half-open interval [StartTime, EndTime)
// published by a provider.
type Availability struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"provider_id" json:"providerId"`
	StartTime  time.Time `bson:"start_time" json:"startTime"`
	EndTime    time.Time `bson:"end_time" json:"endTime"`
	DayOfWeek  int       `bson:"day_of_week" json:"dayOfWeek"` // derived from StartTime, display only
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}
