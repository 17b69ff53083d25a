package cache

import "fmt"

// Cache keys used by the booking core. Each mutating operation
// invalidates the keys it affects; populated reads carry a bounded TTL
// so stale entries self-heal.

func ScheduleProviderKey(providerID string) string {
	return fmt.Sprintf("schedule:provider:%s", providerID)
}

func HistoryProviderKey(providerID string) string {
	return fmt.Sprintf("history:provider:%s", providerID)
}

func BookingsClientKey(clientID string) string {
	return fmt.Sprintf("bookings:client:%s", clientID)
}
