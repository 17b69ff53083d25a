package models

import "time"

// CreateAvailabilityRequest is the payload for publishing a new slot.
type CreateAvailabilityRequest struct {
	ProviderID string    `json:"providerId" binding:"required"`
	StartTime  time.Time `json:"startTime" binding:"required"`
	EndTime    time.Time `json:"endTime" binding:"required"`
}

// CreateBookingRequest is the payload for reserving a slot.
type CreateBookingRequest struct {
	ClientID           string `json:"clientId" binding:"required"`
	ProviderID         string `json:"providerId" binding:"required"`
	ServiceVariationID string `json:"serviceVariationId" binding:"required"`
	AvailabilityID     string `json:"availabilityId" binding:"required"`
}
