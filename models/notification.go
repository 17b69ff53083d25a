package models

// Event names delivered through the notification bus. Each event is
// published to the recipient's identity channel, at most once.
const (
	EventNewBooking      = "newBooking"      // to the provider
	EventBookingCreated  = "bookingCreated"  // to the client
	EventBookingReminder = "bookingReminder" // to the client, shortly before the slot
)

// BookingEvent is the payload carried by all booking events.
type BookingEvent struct {
	BookingID string `json:"bookingId"`
	Message   string `json:"message"`
}

// ReminderPayload is the asynq task payload for a scheduled booking
// reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	ClientID  string `json:"clientId"`
	StartTime string `json:"startTime"` // RFC 3339
}
