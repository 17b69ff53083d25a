package utils

import (
	"time"

	"marketplace/models"
)

// TimeRange is a half-open interval [Start, End): Start inclusive, End
// exclusive. Ranges touching at a boundary do not overlap.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange validates and builds a TimeRange. End must be strictly
// after Start.
func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if !end.After(start) {
		return TimeRange{}, models.NewInvalidRangeError("end time must be after start time")
	}
	return TimeRange{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open intervals intersect:
// a.Start < b.End && a.End > b.Start.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// Expired reports whether the range's start has already passed.
func (r TimeRange) Expired(now time.Time) bool {
	return r.Start.Before(now)
}

// DayOfWeek returns the weekday of the range's start (0 = Sunday),
// derived for display only.
func (r TimeRange) DayOfWeek() int {
	return int(r.Start.Weekday())
}
