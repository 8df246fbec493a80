package appointment

import (
	"fmt"
)

// BusinessHours bounds the part of a day the clinic takes bookings in.
type BusinessHours struct {
	Start TimeOfDay
	End   TimeOfDay
}

// ParseBusinessHours parses HH:mm opening and closing times.
func ParseBusinessHours(open, close string) (BusinessHours, error) {
	start, err := ParseTimeOfDay(open)
	if err != nil {
		return BusinessHours{}, fmt.Errorf("day start: %w", err)
	}
	end, err := ParseTimeOfDay(close)
	if err != nil {
		return BusinessHours{}, fmt.Errorf("day end: %w", err)
	}
	if start >= end {
		return BusinessHours{}, fmt.Errorf("day start %s is not before day end %s", open, close)
	}
	return BusinessHours{Start: start, End: end}, nil
}

// Contains reports whether [start, end) lies within business hours.
func (h BusinessHours) Contains(start, end TimeOfDay) bool {
	return start >= h.Start && end <= h.End
}
