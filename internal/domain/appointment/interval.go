package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time as minutes after midnight.
type TimeOfDay int

// ParseTimeOfDay parses a canonical HH:mm string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil || t.Format(TimeLayout) != s {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// TimeOfDayOf returns the wall-clock time of t, truncated to the minute.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Slot is a half-open [Start, End) interval on a calendar date.
type Slot struct {
	Date  string
	Start TimeOfDay
	End   TimeOfDay
}

// NewSlot parses canonical date and time strings into a Slot.
func NewSlot(date, start, end string) (Slot, error) {
	if d, err := time.Parse(DateLayout, date); err != nil || d.Format(DateLayout) != date {
		return Slot{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Slot{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Slot{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	if s >= e {
		return Slot{}, httperr.ErrBusiness("invalid_time_range")
	}
	return Slot{Date: date, Start: s, End: e}, nil
}

// Overlaps reports whether two half-open intervals on the same day intersect.
// Touching intervals do not overlap.
func (s Slot) Overlaps(o Slot) bool {
	return s.Date == o.Date && s.Start < o.End && s.End > o.Start
}

// StartIn returns the moment the slot starts in loc.
func (s Slot) StartIn(loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s.Date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), int(s.Start)/60, int(s.Start)%60, 0, 0, loc), nil
}

// Appointment builds a record occupying the slot.
func (s Slot) Appointment(id, description string) Appointment {
	return Appointment{
		ID:          id,
		Date:        s.Date,
		StartTime:   s.Start.String(),
		EndTime:     s.End.String(),
		Description: description,
	}
}
